// Package di contains dependency injection tokens for the catalog context.
package di

import (
	"github.com/goblinomics/craftprofit/business/catalog/app"
	"github.com/goblinomics/craftprofit/business/catalog/infra/battlenet"
	"github.com/goblinomics/craftprofit/internal/di"
)

// Public service tokens - exposed to other modules
var (
	CatalogService = di.NewToken[*app.CatalogService]("catalog.CatalogService")

	// APIClient is shared with the market context, which talks to the
	// same host for auction data.
	APIClient = di.NewToken[*battlenet.Client]("catalog.APIClient")
)

// Private dependency tokens - internal to the catalog module
var (
	Provider = di.NewToken[app.Provider]("catalog:provider")
)

// GetCatalogService resolves the catalog service.
func GetCatalogService(sr di.ServiceRegistry) *app.CatalogService {
	return di.Resolve(sr, CatalogService)
}

// GetAPIClient resolves the shared Battle.net client.
func GetAPIClient(sr di.ServiceRegistry) *battlenet.Client {
	return di.Resolve(sr, APIClient)
}
