// Package profit implements the profit bounded context: the recursive cost
// analysis and shopping list engine.
package profit

import (
	"context"

	catalogDI "github.com/goblinomics/craftprofit/business/catalog/di"
	marketDI "github.com/goblinomics/craftprofit/business/market/di"
	"github.com/goblinomics/craftprofit/business/profit/app"
	profitDI "github.com/goblinomics/craftprofit/business/profit/di"
	"github.com/goblinomics/craftprofit/business/profit/domain"
	"github.com/goblinomics/craftprofit/internal/config"
	"github.com/goblinomics/craftprofit/internal/di"
	"github.com/goblinomics/craftprofit/internal/logger"
	"github.com/goblinomics/craftprofit/internal/monolith"
)

// Module implements the profit bounded context.
type Module struct{}

// RegisterServices registers the analyzer with the DI container.
func (m *Module) RegisterServices(c di.Container) error {
	di.RegisterToken(c, profitDI.Analyzer, func(sr di.ServiceRegistry) *app.Analyzer {
		cfg := sr.Get("config").(*config.Config)
		log := sr.Get("logger").(logger.LoggerInterface)

		tables := domain.Tables{
			Bonuses:    domain.DefaultBonusTable(),
			Ranks:      domain.NewRankTable(cfg.Analysis.RankLevels),
			Exclusions: domain.NewExclusionList(cfg.Analysis.ExcludedRecipes),
		}

		return app.NewAnalyzer(
			catalogDI.GetCatalogService(sr),
			marketDI.GetMarketService(sr),
			tables,
			log,
		)
	})
	return nil
}

// Startup initializes the profit module.
func (m *Module) Startup(ctx context.Context, mono monolith.Monolith) error {
	mono.Logger().Info(ctx, "profit module started",
		"excluded_recipes", len(mono.Config().Analysis.ExcludedRecipes),
		"rank_levels", mono.Config().Analysis.RankLevels,
	)
	return nil
}
