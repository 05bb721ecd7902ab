// Package market implements the market bounded context: auction snapshots,
// price statistics and the price archive.
package market

import (
	"context"

	catalogDI "github.com/goblinomics/craftprofit/business/catalog/di"
	"github.com/goblinomics/craftprofit/business/market/app"
	marketDI "github.com/goblinomics/craftprofit/business/market/di"
	"github.com/goblinomics/craftprofit/business/market/infra/archive"
	"github.com/goblinomics/craftprofit/business/market/infra/battlenet"
	"github.com/goblinomics/craftprofit/internal/cache"
	"github.com/goblinomics/craftprofit/internal/config"
	"github.com/goblinomics/craftprofit/internal/di"
	"github.com/goblinomics/craftprofit/internal/logger"
	"github.com/goblinomics/craftprofit/internal/monolith"
)

// Module implements the market bounded context.
type Module struct {
	archive *archive.SQLiteArchive
}

// RegisterServices registers all market services with the DI container.
func (m *Module) RegisterServices(c di.Container) error {
	// Auction provider - reuses the catalog context's authenticated client
	di.RegisterToken(c, marketDI.SnapshotProvider, func(sr di.ServiceRegistry) app.SnapshotProvider {
		return battlenet.NewAuctionProvider(catalogDI.GetAPIClient(sr))
	})

	// Price archive - optional, nil when disabled
	di.RegisterToken(c, marketDI.Archive, func(sr di.ServiceRegistry) app.Archive {
		cfg := sr.Get("config").(*config.Config)
		if !cfg.Archive.Enabled {
			return nil
		}

		a, err := archive.Open(cfg.Archive.Path)
		if err != nil {
			panic("failed to open price archive: " + err.Error())
		}
		m.archive = a
		return a
	})

	// Market service (public - exposed to other modules)
	di.RegisterToken(c, marketDI.MarketService, func(sr di.ServiceRegistry) *app.MarketService {
		log := sr.Get("logger").(logger.LoggerInterface)
		ch := sr.Get("cache").(*cache.Cache)
		provider := di.Resolve(sr, marketDI.SnapshotProvider)
		arch := di.Resolve(sr, marketDI.Archive)
		return app.NewMarketService(provider, arch, ch, log)
	})

	return nil
}

// Startup initializes the market module.
func (m *Module) Startup(ctx context.Context, mono monolith.Monolith) error {
	mono.Logger().Info(ctx, "market module started",
		"archive_enabled", mono.Config().Archive.Enabled,
	)
	return nil
}

// Close releases the archive database if one was opened.
func (m *Module) Close() error {
	if m.archive == nil {
		return nil
	}
	return m.archive.Close()
}
