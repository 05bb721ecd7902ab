package domain

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestProject_VendorOnlyItem(t *testing.T) {
	node := &Node{
		ItemID:   100,
		Name:     "Coarse Thread",
		Required: 4,
		Vendor:   decPtr("500"),
	}

	out := Project(node)
	if out.Vendor == nil || !out.Vendor.Equal(dec("500")) {
		t.Fatalf("Vendor = %v, want 500", out.Vendor)
	}
	if out.Market != nil {
		t.Errorf("Market = %+v, want nil without listings", out.Market)
	}
	if len(out.Recipes) != 0 {
		t.Errorf("Recipes = %d entries, want none", len(out.Recipes))
	}

	raw, err := json.Marshal(out)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if strings.Contains(string(raw), `"ah"`) {
		t.Errorf("JSON %s carries an ah field without market data", raw)
	}
	if !strings.Contains(string(raw), `"vendor":"500"`) {
		t.Errorf("JSON %s missing vendor price", raw)
	}
}

func TestProject_DropsZeroVolumeMarket(t *testing.T) {
	node := &Node{
		ItemID:   100,
		Required: 1,
		Market:   marketStats("0", "0", "0", 0),
	}

	if out := Project(node); out.Market != nil {
		t.Errorf("Market = %+v, want nil for zero volume", out.Market)
	}
}

func TestProject_AttachesRecipeCosts(t *testing.T) {
	node := &Node{
		ItemID:    1,
		Name:      "Blade",
		Required:  1,
		Craftable: true,
		Options: []RecipeOption{
			{
				Recipe: recipe(7, "Forge Blade"),
				Rank:   1,
				Reagents: []*Node{
					vendorNode(10, 2, "10"),
					marketNode(11, 1, marketStats("60", "45", "50", 5)),
				},
			},
		},
	}

	out := Project(node)
	if len(out.Recipes) != 1 {
		t.Fatalf("Recipes = %d, want 1", len(out.Recipes))
	}

	rec := out.Recipes[0]
	if rec.RecipeID != 7 || rec.Rank != 1 {
		t.Errorf("recipe = id %d rank %d, want id 7 rank 1", rec.RecipeID, rec.Rank)
	}
	if !rec.Cost.Average.Equal(dec("70")) {
		t.Errorf("Cost.Average = %s, want 70", rec.Cost.Average)
	}
	if len(rec.Parts) != 2 {
		t.Fatalf("Parts = %d, want 2", len(rec.Parts))
	}
	if rec.Parts[0].Vendor == nil || rec.Parts[0].Required != 2 {
		t.Errorf("first part = %+v, want vendor-priced with required 2", rec.Parts[0])
	}
}

func TestProject_CarriesBonusPrices(t *testing.T) {
	node := &Node{
		ItemID:   1,
		Required: 1,
		Market:   marketStats("10", "5", "8", 3),
		BonusPrices: []BonusPrice{
			{Level: 445, Stats: marketStats("20", "15", "18", 2)},
		},
	}

	out := Project(node)
	if len(out.BonusPrices) != 1 {
		t.Fatalf("BonusPrices = %d, want 1", len(out.BonusPrices))
	}
	if out.BonusPrices[0].Level != 445 {
		t.Errorf("Level = %d, want 445", out.BonusPrices[0].Level)
	}
}
