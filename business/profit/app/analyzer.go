package app

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	catalog "github.com/goblinomics/craftprofit/business/catalog/domain"
	market "github.com/goblinomics/craftprofit/business/market/domain"
	"github.com/goblinomics/craftprofit/business/profit/domain"
	"github.com/goblinomics/craftprofit/internal/apm"
	"github.com/goblinomics/craftprofit/internal/logger"
)

// Analyzer drives the recursive profit analysis: it resolves the target
// item, prices every acquisition path down to raw ingredients against one
// shared auction snapshot, and flattens the result into rank-keyed shopping
// lists.
type Analyzer struct {
	catalog CatalogPort
	market  MarketPort
	tables  domain.Tables
	logger  logger.LoggerInterface
	tracer  apm.Tracer

	// fanLimit caps concurrent reagent/recipe lookups per level.
	// 0 leaves the fan-out unbounded.
	fanLimit int
}

// NewAnalyzer creates an Analyzer. Static tables are injected once here;
// nothing in the engine reads global state.
func NewAnalyzer(cat CatalogPort, mkt MarketPort, tables domain.Tables, log logger.LoggerInterface) *Analyzer {
	return &Analyzer{
		catalog: cat,
		market:  mkt,
		tables:  tables,
		logger:  log,
		tracer:  apm.NewTracer("profit.analyzer"),
	}
}

// SetFanLimit caps the per-level lookup concurrency. Useful when the
// upstream rate limit is tighter than depth times branching factor.
func (a *Analyzer) SetFanLimit(n int) {
	a.fanLimit = n
}

// RunParams are the inputs of one analysis run.
type RunParams struct {
	Region      string
	Realm       catalog.RealmRef
	Professions []string
	Item        catalog.ItemRef
	Quantity    int64
	// Inventory is the character's on-hand stock, item id to count.
	Inventory map[int64]int64
}

// RunResult bundles the three shapes a run produces: the raw cost tree, the
// display tree with shopping lists attached, and a rendered text report.
type RunResult struct {
	Analysis *domain.Node       `json:"-"`
	Output   *domain.OutputNode `json:"output"`
	Report   string             `json:"report"`
}

// Run is the single entry point: analyze the item, project the tree, build
// the per-rank shopping lists and render the report. A resolution failure
// anywhere in the tree aborts the whole run; no partial result is returned.
func (a *Analyzer) Run(ctx context.Context, p RunParams) (*RunResult, error) {
	ctx, span := a.tracer.StartSpanFromContext(ctx, "analyzer.run")
	defer span.End()

	if p.Quantity < 1 {
		p.Quantity = 1
	}

	realmID, err := a.catalog.ResolveRealm(ctx, p.Region, p.Realm)
	if err != nil {
		apm.NoticeError(span, err)
		return nil, err
	}

	// One snapshot per run, threaded unchanged through the whole tree:
	// sibling reagents must see consistent prices.
	snap, err := a.market.Snapshot(ctx, p.Region, realmID)
	if err != nil {
		apm.NoticeError(span, err)
		return nil, err
	}

	node, err := a.analyze(ctx, p.Region, p.Item, p.Quantity, p.Professions, snap)
	if err != nil {
		apm.NoticeError(span, err)
		return nil, err
	}

	out := domain.Project(node)
	inv := domain.NewInventory(p.Inventory)
	out.ShoppingLists = domain.ConstructShoppingLists(out, inv, a.tables.Exclusions)

	a.logger.Info(ctx, "analysis complete",
		"item_id", node.ItemID,
		"item", node.Name,
		"craftable", node.Craftable,
		"recipes", len(node.Options),
		"ranks", len(out.ShoppingLists),
	)

	return &RunResult{
		Analysis: node,
		Output:   out,
		Report:   RenderReport(out),
	}, nil
}

// analyze builds the cost node for one item at an absolute required
// quantity, recursing into every reagent of every viable recipe. Quantity
// multipliers are applied on the way down, so nested nodes carry the full
// amount the top-level craft consumes.
func (a *Analyzer) analyze(ctx context.Context, region string, ref catalog.ItemRef, required int64, professions []string, snap *market.Snapshot) (*domain.Node, error) {
	item, err := a.catalog.ResolveItem(ctx, region, ref)
	if err != nil {
		return nil, err
	}

	status, err := a.catalog.CraftingStatus(ctx, region, item.ID, professions)
	if err != nil {
		return nil, err
	}

	node := &domain.Node{
		ItemID:    item.ID,
		Name:      item.Name,
		Required:  required,
		Market:    market.SnapshotStats(snap, item.ID, nil),
		Craftable: status.Craftable,
	}
	if !status.Craftable {
		node.Vendor = market.VendorUnitPrice(item)
	}

	if status.Craftable {
		node.Options, err = a.analyzeOptions(ctx, region, item, required, professions, status.Sources, snap)
		if err != nil {
			return nil, err
		}
		return node, nil
	}

	node.BonusPrices = a.bonusPrices(snap, item)
	return node, nil
}

// analyzeOptions expands every viable recipe concurrently, and inside each
// recipe fans out over its reagents. The joins are wait-for-all: one failed
// lookup fails the whole level, and with it the run.
func (a *Analyzer) analyzeOptions(ctx context.Context, region string, item *catalog.ItemDetails, required int64, professions []string, sources []catalog.RecipeSource, snap *market.Snapshot) ([]domain.RecipeOption, error) {
	// Rank is positional: the recipe's ordinal in the sorted id list.
	recipeIDs := make([]int64, 0, len(sources))
	for _, src := range sources {
		recipeIDs = append(recipeIDs, src.RecipeID)
	}
	sort.Slice(recipeIDs, func(i, j int) bool { return recipeIDs[i] < recipeIDs[j] })

	options := make([]domain.RecipeOption, len(recipeIDs))
	g, gctx := errgroup.WithContext(ctx)
	if a.fanLimit > 0 {
		g.SetLimit(a.fanLimit)
	}

	for i, recipeID := range recipeIDs {
		g.Go(func() error {
			opt, err := a.analyzeOption(gctx, region, item, required, professions, recipeID, ordinalRank(i, len(recipeIDs)), snap)
			if err != nil {
				return err
			}
			options[i] = opt
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return options, nil
}

func (a *Analyzer) analyzeOption(ctx context.Context, region string, item *catalog.ItemDetails, required int64, professions []string, recipeID int64, rank int, snap *market.Snapshot) (domain.RecipeOption, error) {
	def, err := a.catalog.Recipe(ctx, region, recipeID)
	if err != nil {
		return domain.RecipeOption{}, err
	}

	opt := domain.RecipeOption{
		Recipe:     def,
		Rank:       rank,
		RankMarket: a.rankMarket(snap, item, rank),
	}

	// A recipe can yield several units per craft; the reagent bill is per
	// craft, so size it by crafts needed, not units needed.
	units := def.Output.Units()
	crafts := (required + units - 1) / units

	opt.Reagents = make([]*domain.Node, len(def.Reagents))
	g, gctx := errgroup.WithContext(ctx)
	if a.fanLimit > 0 {
		g.SetLimit(a.fanLimit)
	}
	for j, reagent := range def.Reagents {
		g.Go(func() error {
			child, err := a.analyze(gctx, region, catalog.ItemID(reagent.ItemID), crafts*reagent.Quantity, professions, snap)
			if err != nil {
				return err
			}
			opt.Reagents[j] = child
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return domain.RecipeOption{}, err
	}
	return opt, nil
}

// rankMarket returns market stats filtered to the bonus id of this rank's
// quality variant, or nil when rank, level or bonus cannot be matched.
func (a *Analyzer) rankMarket(snap *market.Snapshot, item *catalog.ItemDetails, rank int) *market.Stats {
	level, ok := a.tables.Ranks.Level(rank)
	if !ok {
		return nil
	}
	bonusID, ok := a.tables.Bonuses.BonusForLevel(item.Level, level)
	if !ok {
		return nil
	}
	return market.SnapshotStats(snap, item.ID, &bonusID)
}

// bonusPrices records per-variant market stats for a non-craftable item
// whose listings show distinct quality variants.
func (a *Analyzer) bonusPrices(snap *market.Snapshot, item *catalog.ItemDetails) []domain.BonusPrice {
	var prices []domain.BonusPrice
	for _, set := range market.VariantBonusSets(snap, item.ID) {
		for _, bonusID := range set {
			level, ok := a.tables.Bonuses.LevelFor(bonusID, item.Level)
			if !ok {
				continue
			}
			stats := market.SnapshotStats(snap, item.ID, &bonusID)
			if stats == nil {
				continue
			}
			prices = append(prices, domain.BonusPrice{Level: level, Stats: stats})
		}
	}
	return prices
}

// ordinalRank maps a recipe's position to its rank: 0 when the item has a
// single recipe, the sorted ordinal otherwise.
func ordinalRank(position, total int) int {
	if total <= 1 {
		return 0
	}
	return position
}
