package domain

import (
	"github.com/shopspring/decimal"

	market "github.com/goblinomics/craftprofit/business/market/domain"
)

// CostSnapshot is the purchase cost attached to a shopping list entry. Both
// fields start as per-unit figures and are scaled to the entry's final
// quantity once inventory depletion has settled it.
type CostSnapshot struct {
	Vendor *decimal.Decimal `json:"vendor,omitempty"`
	Market *market.Stats    `json:"ah,omitempty"`
}

// ShoppingListEntry is one terminal ingredient still to purchase.
type ShoppingListEntry struct {
	ItemID   int64        `json:"id"`
	Name     string       `json:"name"`
	Quantity int64        `json:"quantity"`
	Cost     CostSnapshot `json:"cost"`
}

// BuildForRank flattens the display tree into the raw shopping list for one
// quality rank. Stateless: inventory is applied afterwards by
// ConstructShoppingLists. Quantities in the tree are already absolute, so
// entries simply carry their node's required quantity up.
//
// A node with no recipes is terminal. A recipe on the exclusion list makes
// its node terminal too, regardless of rank: the crafted item is bought, not
// expanded. Only the top level discriminates by rank; nested parts always
// expand at rank 0.
func BuildForRank(node *OutputNode, rank int, exclusions ExclusionList) []ShoppingListEntry {
	if node == nil {
		return nil
	}

	if len(node.Recipes) == 0 {
		return []ShoppingListEntry{terminalEntry(node)}
	}

	var list []ShoppingListEntry
	for _, rec := range node.Recipes {
		if exclusions.Excluded(rec.RecipeID) {
			list = mergeEntries(list, terminalEntry(node))
			continue
		}
		if rec.Rank != rank {
			continue
		}
		for _, part := range rec.Parts {
			for _, entry := range BuildForRank(part, 0, exclusions) {
				list = mergeEntries(list, entry)
			}
		}
	}
	return list
}

// ConstructShoppingLists builds one inventory-depleted shopping list per
// distinct rank among the top-level node's recipes. The overlay is reset
// before each rank, so ranks never see each other's simulated consumption;
// within one rank, depletion is applied in list order, so a repeated item id
// sees availability already reduced by earlier entries.
func ConstructShoppingLists(tree *OutputNode, inv *Inventory, exclusions ExclusionList) map[int][]ShoppingListEntry {
	lists := make(map[int][]ShoppingListEntry)

	for _, rank := range distinctRanks(tree) {
		inv.Reset()
		raw := BuildForRank(tree, rank, exclusions)

		for i := range raw {
			needed := raw[i].Quantity
			available := inv.Count(raw[i].ItemID)

			switch {
			case needed <= available:
				inv.Adjust(raw[i].ItemID, -needed)
				needed = 0
			case available > 0:
				needed -= available
				inv.Adjust(raw[i].ItemID, -available)
			}

			raw[i].Quantity = needed
			raw[i].Cost = raw[i].Cost.scale(needed)
		}

		lists[rank] = raw
	}
	return lists
}

// terminalEntry emits a node as a purchase with its per-unit cost snapshot.
func terminalEntry(node *OutputNode) ShoppingListEntry {
	return ShoppingListEntry{
		ItemID:   node.ItemID,
		Name:     node.Name,
		Quantity: node.Required,
		Cost: CostSnapshot{
			Vendor: node.Vendor,
			Market: node.Market,
		},
	}
}

// mergeEntries appends entry to list, folding it into an existing entry with
// the same item id by summing quantities. The first occurrence's cost
// snapshot is kept; it is per-unit at this stage and gets scaled once, by
// the merged final quantity.
func mergeEntries(list []ShoppingListEntry, entry ShoppingListEntry) []ShoppingListEntry {
	for i := range list {
		if list[i].ItemID == entry.ItemID {
			list[i].Quantity += entry.Quantity
			return list
		}
	}
	return append(list, entry)
}

// distinctRanks returns the ranks present on the top-level recipes, in
// first-seen order. A node without recipes still gets the base rank so a
// vendor- or market-only item produces a one-entry list.
func distinctRanks(tree *OutputNode) []int {
	if len(tree.Recipes) == 0 {
		return []int{0}
	}

	seen := make(map[int]bool)
	var ranks []int
	for _, rec := range tree.Recipes {
		if !seen[rec.Rank] {
			seen[rec.Rank] = true
			ranks = append(ranks, rec.Rank)
		}
	}
	return ranks
}

// scale returns the snapshot with both cost figures multiplied by qty.
func (c CostSnapshot) scale(qty int64) CostSnapshot {
	n := decimal.NewFromInt(qty)
	out := CostSnapshot{Market: c.Market.Scale(qty)}
	if c.Vendor != nil {
		v := c.Vendor.Mul(n)
		out.Vendor = &v
	}
	return out
}
