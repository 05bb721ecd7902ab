// Package catalog implements the catalog bounded context for item, recipe
// and realm resolution.
package catalog

import (
	"context"

	"github.com/goblinomics/craftprofit/business/catalog/app"
	catalogDI "github.com/goblinomics/craftprofit/business/catalog/di"
	"github.com/goblinomics/craftprofit/business/catalog/infra/battlenet"
	"github.com/goblinomics/craftprofit/internal/cache"
	"github.com/goblinomics/craftprofit/internal/config"
	"github.com/goblinomics/craftprofit/internal/di"
	"github.com/goblinomics/craftprofit/internal/logger"
	"github.com/goblinomics/craftprofit/internal/monolith"
)

// Module implements the catalog bounded context.
type Module struct{}

// RegisterServices registers all catalog services with the DI container.
func (m *Module) RegisterServices(c di.Container) error {
	// Shared Battle.net client (public - the market module reuses it)
	di.RegisterToken(c, catalogDI.APIClient, func(sr di.ServiceRegistry) *battlenet.Client {
		cfg := sr.Get("config").(*config.Config)
		log := sr.Get("logger").(logger.LoggerInterface)

		client, err := battlenet.NewClient(battlenet.ClientConfig{
			ClientID:          cfg.API.ClientID,
			ClientSecret:      cfg.API.ClientSecret,
			OAuthURL:          cfg.API.OAuthHost(),
			APIHost:           cfg.API.Host,
			RequestsPerSecond: cfg.API.RequestsPerSecond,
			Burst:             cfg.API.Burst,
			RequestsPerHour:   cfg.API.RequestsPerHour,
			Timeout:           cfg.API.Timeout,
		}, log)
		if err != nil {
			panic("failed to create battlenet client: " + err.Error())
		}
		return client
	})

	// Catalog provider - private dependency
	di.RegisterToken(c, catalogDI.Provider, func(sr di.ServiceRegistry) app.Provider {
		return battlenet.NewCatalogProvider(catalogDI.GetAPIClient(sr))
	})

	// Catalog service (public - exposed to other modules)
	di.RegisterToken(c, catalogDI.CatalogService, func(sr di.ServiceRegistry) *app.CatalogService {
		log := sr.Get("logger").(logger.LoggerInterface)
		ch := sr.Get("cache").(*cache.Cache)
		provider := di.Resolve(sr, catalogDI.Provider)
		return app.NewCatalogService(provider, ch, log)
	})

	return nil
}

// Startup initializes the catalog module.
func (m *Module) Startup(ctx context.Context, mono monolith.Monolith) error {
	mono.Logger().Info(ctx, "catalog module started", "region", mono.Config().API.Region)
	return nil
}
