package domain

import (
	"testing"

	market "github.com/goblinomics/craftprofit/business/market/domain"
)

func outVendor(itemID, required int64, unitPrice string) *OutputNode {
	return &OutputNode{ItemID: itemID, Required: required, Vendor: decPtr(unitPrice)}
}

func outMarket(itemID, required int64, stats *market.Stats) *OutputNode {
	return &OutputNode{ItemID: itemID, Required: required, Market: stats}
}

func TestBuildForRank_TerminalNode(t *testing.T) {
	node := outVendor(100, 4, "500")

	list := BuildForRank(node, 0, nil)
	if len(list) != 1 {
		t.Fatalf("BuildForRank() = %d entries, want 1", len(list))
	}
	if list[0].ItemID != 100 || list[0].Quantity != 4 {
		t.Errorf("entry = %+v, want item 100 quantity 4", list[0])
	}
	if list[0].Cost.Vendor == nil || !list[0].Cost.Vendor.Equal(dec("500")) {
		t.Errorf("cost = %+v, want per-unit vendor 500", list[0].Cost)
	}
}

func TestBuildForRank_MergesSharedReagents(t *testing.T) {
	// Two parts both bottom out in item 20.
	tree := &OutputNode{
		ItemID:   1,
		Required: 1,
		Recipes: []OutputRecipe{
			{
				RecipeID: 7,
				Parts: []*OutputNode{
					outVendor(20, 3, "10"),
					{
						ItemID:   10,
						Required: 1,
						Recipes: []OutputRecipe{
							{RecipeID: 8, Parts: []*OutputNode{outVendor(20, 2, "10")}},
						},
					},
				},
			},
		},
	}

	list := BuildForRank(tree, 0, nil)
	if len(list) != 1 {
		t.Fatalf("BuildForRank() = %d entries, want 1 merged", len(list))
	}
	if list[0].ItemID != 20 || list[0].Quantity != 5 {
		t.Errorf("entry = %+v, want item 20 quantity 5", list[0])
	}
}

func TestBuildForRank_ExclusionMakesNodeTerminal(t *testing.T) {
	excl := NewExclusionList([]int64{7})
	tree := &OutputNode{
		ItemID:   1,
		Name:     "Embossed Leather",
		Required: 2,
		Market:   marketStats("40", "30", "35", 10),
		Recipes: []OutputRecipe{
			{RecipeID: 7, Rank: 0, Parts: []*OutputNode{outVendor(20, 6, "10")}},
		},
	}

	list := BuildForRank(tree, 0, excl)
	if len(list) != 1 {
		t.Fatalf("BuildForRank() = %d entries, want 1", len(list))
	}
	if list[0].ItemID != 1 {
		t.Errorf("entry item = %d, want the excluded node itself (1)", list[0].ItemID)
	}
	if list[0].Quantity != 2 {
		t.Errorf("quantity = %d, want 2", list[0].Quantity)
	}
}

func TestBuildForRank_OnlyRequestedRankExpands(t *testing.T) {
	tree := &OutputNode{
		ItemID:   1,
		Required: 1,
		Recipes: []OutputRecipe{
			{RecipeID: 7, Rank: 0, Parts: []*OutputNode{outVendor(20, 2, "10")}},
			{RecipeID: 8, Rank: 1, Parts: []*OutputNode{outVendor(21, 5, "3")}},
		},
	}

	list := BuildForRank(tree, 1, nil)
	if len(list) != 1 {
		t.Fatalf("BuildForRank(rank 1) = %d entries, want 1", len(list))
	}
	if list[0].ItemID != 21 {
		t.Errorf("entry item = %d, want only the rank-1 reagent 21", list[0].ItemID)
	}
}

func TestConstructShoppingLists_InventoryDepletion(t *testing.T) {
	tree := &OutputNode{
		ItemID:   1,
		Required: 1,
		Recipes: []OutputRecipe{
			{RecipeID: 7, Rank: 0, Parts: []*OutputNode{outVendor(20, 8, "10")}},
		},
	}
	inv := NewInventory(map[int64]int64{20: 5})

	lists := ConstructShoppingLists(tree, inv, nil)
	list, ok := lists[0]
	if !ok || len(list) != 1 {
		t.Fatalf("lists[0] = %v, want one entry", lists)
	}

	// needed 8, 5 on hand: buy 3, overlay records the 5 consumed.
	if list[0].Quantity != 3 {
		t.Errorf("quantity = %d, want 3", list[0].Quantity)
	}
	if list[0].Cost.Vendor == nil || !list[0].Cost.Vendor.Equal(dec("30")) {
		t.Errorf("cost = %+v, want vendor scaled to 30", list[0].Cost)
	}
	if inv.Overlay(20) != -5 {
		t.Errorf("overlay = %d, want -5", inv.Overlay(20))
	}
}

func TestConstructShoppingLists_FullStockZeroesEntry(t *testing.T) {
	tree := &OutputNode{
		ItemID:   1,
		Required: 1,
		Recipes: []OutputRecipe{
			{RecipeID: 7, Rank: 0, Parts: []*OutputNode{outVendor(20, 3, "10")}},
		},
	}
	inv := NewInventory(map[int64]int64{20: 10})

	lists := ConstructShoppingLists(tree, inv, nil)
	if got := lists[0][0].Quantity; got != 0 {
		t.Errorf("quantity = %d, want 0 when stock covers the need", got)
	}
	// the pre-clamp need is what gets consumed, not the whole stock
	if inv.Overlay(20) != -3 {
		t.Errorf("overlay = %d, want -3", inv.Overlay(20))
	}
}

func TestConstructShoppingLists_NoStateLeakBetweenRanks(t *testing.T) {
	// Both ranks consume item 20; each must see the full 5 on hand.
	tree := &OutputNode{
		ItemID:   1,
		Required: 1,
		Recipes: []OutputRecipe{
			{RecipeID: 7, Rank: 0, Parts: []*OutputNode{outVendor(20, 8, "10")}},
			{RecipeID: 8, Rank: 1, Parts: []*OutputNode{outVendor(20, 8, "10")}},
		},
	}
	inv := NewInventory(map[int64]int64{20: 5})

	lists := ConstructShoppingLists(tree, inv, nil)
	if got := lists[0][0].Quantity; got != 3 {
		t.Errorf("rank 0 quantity = %d, want 3", got)
	}
	if got := lists[1][0].Quantity; got != 3 {
		t.Errorf("rank 1 quantity = %d, want 3 (overlay must reset between ranks)", got)
	}

	// Running the whole construction again must reproduce the result.
	inv.Reset()
	again := ConstructShoppingLists(tree, inv, nil)
	if again[0][0].Quantity != 3 || again[1][0].Quantity != 3 {
		t.Errorf("second run = %v, want identical to first", again)
	}
}

func TestConstructShoppingLists_MarketCostScaled(t *testing.T) {
	tree := &OutputNode{
		ItemID:   1,
		Required: 1,
		Recipes: []OutputRecipe{
			{RecipeID: 7, Rank: 0, Parts: []*OutputNode{
				outMarket(30, 4, marketStats("60", "45", "50", 5)),
			}},
		},
	}

	lists := ConstructShoppingLists(tree, NewInventory(nil), nil)
	got := lists[0][0]
	if got.Quantity != 4 {
		t.Fatalf("quantity = %d, want 4", got.Quantity)
	}
	if got.Cost.Market == nil || !got.Cost.Market.Average.Equal(dec("200")) {
		t.Errorf("market cost = %+v, want average scaled to 200", got.Cost.Market)
	}
}

func TestConstructShoppingLists_NoRecipesStillEmitsBaseRank(t *testing.T) {
	tree := outVendor(100, 4, "500")

	lists := ConstructShoppingLists(tree, NewInventory(nil), nil)
	list, ok := lists[0]
	if !ok || len(list) != 1 {
		t.Fatalf("lists = %v, want a rank-0 list with one entry", lists)
	}
	if list[0].Quantity != 4 || !list[0].Cost.Vendor.Equal(dec("2000")) {
		t.Errorf("entry = %+v, want quantity 4 and vendor cost 2000", list[0])
	}
}
