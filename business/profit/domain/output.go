package domain

import (
	"github.com/shopspring/decimal"

	market "github.com/goblinomics/craftprofit/business/market/domain"
)

// OutputNode is the display-shaped mirror of a Node: same tree, with each
// recipe's aggregated cost band attached, and absent acquisition paths
// omitted instead of carried as empty values.
type OutputNode struct {
	ItemID   int64  `json:"id"`
	Name     string `json:"name"`
	Required int64  `json:"required"`

	Market *market.Stats    `json:"ah,omitempty"`
	Vendor *decimal.Decimal `json:"vendor,omitempty"`

	Recipes     []OutputRecipe     `json:"recipes,omitempty"`
	BonusPrices []OutputBonusPrice `json:"bonus_prices,omitempty"`

	// ShoppingLists is set only on the top-level node, one list per
	// distinct rank among its recipes.
	ShoppingLists map[int][]ShoppingListEntry `json:"shopping_lists,omitempty"`
}

// OutputRecipe is one acquisition-by-crafting path on an OutputNode.
type OutputRecipe struct {
	RecipeID int64         `json:"recipe_id"`
	Name     string        `json:"name"`
	Rank     int           `json:"rank"`
	Cost     Costs         `json:"cost"`
	Market   *market.Stats `json:"ah,omitempty"`
	Parts    []*OutputNode `json:"parts,omitempty"`
}

// OutputBonusPrice is the display shape of a quality variant's market price.
type OutputBonusPrice struct {
	Level int64         `json:"level"`
	Stats *market.Stats `json:"ah"`
}

// Project transforms an analyzed cost tree into its display shape. Purely
// structural: market stats survive only when backed by volume, vendor prices
// only when positive, and every recipe option gains its aggregated cost.
func Project(n *Node) *OutputNode {
	if n == nil {
		return nil
	}

	out := &OutputNode{
		ItemID:   n.ItemID,
		Name:     n.Name,
		Required: n.Required,
	}

	if n.Market != nil && n.Market.Volume > 0 {
		out.Market = n.Market
	}
	if n.Vendor != nil && n.Vendor.IsPositive() {
		out.Vendor = n.Vendor
	}

	for _, opt := range n.Options {
		rec := OutputRecipe{
			RecipeID: opt.Recipe.ID,
			Name:     opt.Recipe.Name,
			Rank:     opt.Rank,
			Cost:     AggregateOption(opt),
			Market:   opt.RankMarket,
		}
		for _, reagent := range opt.Reagents {
			rec.Parts = append(rec.Parts, Project(reagent))
		}
		out.Recipes = append(out.Recipes, rec)
	}

	for _, bp := range n.BonusPrices {
		out.BonusPrices = append(out.BonusPrices, OutputBonusPrice{
			Level: bp.Level,
			Stats: bp.Stats,
		})
	}

	return out
}
