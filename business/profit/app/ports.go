package app

import (
	"context"

	catalog "github.com/goblinomics/craftprofit/business/catalog/domain"
	market "github.com/goblinomics/craftprofit/business/market/domain"
)

// CatalogPort is the slice of the catalog context the analyzer consumes.
type CatalogPort interface {
	ResolveItem(ctx context.Context, region string, ref catalog.ItemRef) (*catalog.ItemDetails, error)
	ResolveRealm(ctx context.Context, region string, ref catalog.RealmRef) (int64, error)
	Recipe(ctx context.Context, region string, recipeID int64) (*catalog.RecipeDefinition, error)
	CraftingStatus(ctx context.Context, region string, itemID int64, professions []string) (*catalog.CraftingStatus, error)
}

// MarketPort supplies the one auction snapshot an analysis run prices
// against.
type MarketPort interface {
	Snapshot(ctx context.Context, region string, realmID int64) (*market.Snapshot, error)
}
