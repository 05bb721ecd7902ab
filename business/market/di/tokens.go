// Package di contains dependency injection tokens for the market context.
package di

import (
	"github.com/goblinomics/craftprofit/business/market/app"
	"github.com/goblinomics/craftprofit/internal/di"
)

// Public service tokens - exposed to other modules
var (
	MarketService = di.NewToken[*app.MarketService]("market.MarketService")
)

// Private dependency tokens - internal to the market module
var (
	SnapshotProvider = di.NewToken[app.SnapshotProvider]("market:snapshotProvider")
	Archive          = di.NewToken[app.Archive]("market:archive")
)

// GetMarketService resolves the market service.
func GetMarketService(sr di.ServiceRegistry) *app.MarketService {
	return di.Resolve(sr, MarketService)
}
