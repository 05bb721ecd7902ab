// Package app contains application services and port definitions for the catalog context.
package app

import (
	"context"

	"github.com/goblinomics/craftprofit/business/catalog/domain"
)

// Provider defines the remote catalog lookups the service depends on.
type Provider interface {
	// ItemByID fetches item details for a known id.
	ItemByID(ctx context.Context, region string, id int64) (*domain.ItemDetails, error)

	// SearchItemByName resolves a display name to item details. Returns an
	// ITEM_NOT_FOUND error when the search yields nothing.
	SearchItemByName(ctx context.Context, region, name string) (*domain.ItemDetails, error)

	// RecipeByID fetches a recipe definition.
	RecipeByID(ctx context.Context, region string, id int64) (*domain.RecipeDefinition, error)

	// RecipesByCraftedItem returns every (recipe, profession) pair whose
	// output is the given item, regardless of who can craft it.
	RecipesByCraftedItem(ctx context.Context, region string, itemID int64) ([]domain.RecipeSource, error)

	// ConnectedRealmBySlug resolves a realm slug to its connected-realm id.
	// Returns a REALM_NOT_FOUND error when no realm matches.
	ConnectedRealmBySlug(ctx context.Context, region, slug string) (int64, error)
}
