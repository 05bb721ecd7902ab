package domain

import (
	"github.com/shopspring/decimal"

	catalog "github.com/goblinomics/craftprofit/business/catalog/domain"
	market "github.com/goblinomics/craftprofit/business/market/domain"
)

// Node is one vertex of the recursive cost tree: an item, the quantity the
// parent craft needs of it, and every way of acquiring it. Required is
// absolute - quantity multipliers are applied on the way down, so a reagent
// three levels deep already carries the full amount the top-level craft
// consumes.
type Node struct {
	ItemID   int64
	Name     string
	Required int64

	// Market is nil when the snapshot holds no listing for the item.
	Market *market.Stats
	// Vendor is nil unless the item is vendor-purchasable; craftable
	// items are never vendor-priced.
	Vendor *decimal.Decimal

	Craftable bool
	Options   []RecipeOption

	// BonusPrices is populated only for non-craftable items whose
	// listings show quality variants.
	BonusPrices []BonusPrice
}

// RecipeOption is one viable recipe for a node's item, with every reagent
// analyzed recursively.
type RecipeOption struct {
	Recipe *catalog.RecipeDefinition
	// Rank is the recipe's ordinal in the sorted list of viable recipe
	// ids, 0 when only one recipe exists.
	Rank int
	// RankMarket holds market stats filtered to the bonus id of this
	// rank's quality variant, when one could be matched.
	RankMarket *market.Stats
	Reagents   []*Node
}

// BonusPrice pairs a quality variant's absolute item level with the market
// stats observed for that variant alone.
type BonusPrice struct {
	Level int64
	Stats *market.Stats
}
