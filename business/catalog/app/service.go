package app

import (
	"context"
	"strings"

	"github.com/goblinomics/craftprofit/business/catalog/domain"
	"github.com/goblinomics/craftprofit/internal/cache"
	"github.com/goblinomics/craftprofit/internal/logger"
)

// CatalogService resolves items, recipes, realms and craftability, fronting
// the remote provider with an expiring cache. Catalog data is effectively
// static between game patches, so cache TTLs are long.
type CatalogService struct {
	provider Provider
	cache    *cache.Cache
	logger   logger.LoggerInterface
}

// NewCatalogService creates a CatalogService.
func NewCatalogService(provider Provider, c *cache.Cache, log logger.LoggerInterface) *CatalogService {
	return &CatalogService{
		provider: provider,
		cache:    c,
		logger:   log,
	}
}

// ResolveItem resolves a soft item reference to full details. A name search
// with zero matches fails with ITEM_NOT_FOUND and aborts the caller's run.
func (s *CatalogService) ResolveItem(ctx context.Context, region string, ref domain.ItemRef) (*domain.ItemDetails, error) {
	if ref.IsName() {
		key := cache.Key("item-name", region, strings.ToLower(ref.Name()))
		return cache.Fetch(s.cache, key, cache.TTLStatic, func() (*domain.ItemDetails, error) {
			return s.provider.SearchItemByName(ctx, region, ref.Name())
		})
	}

	key := cache.Key("item", region, ref.ID())
	return cache.Fetch(s.cache, key, cache.TTLStatic, func() (*domain.ItemDetails, error) {
		return s.provider.ItemByID(ctx, region, ref.ID())
	})
}

// ResolveRealm resolves a soft realm reference to a connected-realm id.
func (s *CatalogService) ResolveRealm(ctx context.Context, region string, ref domain.RealmRef) (int64, error) {
	if !ref.IsSlug() {
		return ref.ID(), nil
	}

	slug := normalizeSlug(ref.Slug())
	key := cache.Key("realm", region, slug)
	return cache.Fetch(s.cache, key, cache.TTLStatic, func() (int64, error) {
		return s.provider.ConnectedRealmBySlug(ctx, region, slug)
	})
}

// Recipe fetches a recipe definition by id.
func (s *CatalogService) Recipe(ctx context.Context, region string, recipeID int64) (*domain.RecipeDefinition, error) {
	key := cache.Key("recipe", region, recipeID)
	return cache.Fetch(s.cache, key, cache.TTLStatic, func() (*domain.RecipeDefinition, error) {
		return s.provider.RecipeByID(ctx, region, recipeID)
	})
}

// CraftingStatus reports whether professions can produce the item, and the
// recipe sources that do. An empty profession list means "any profession".
func (s *CatalogService) CraftingStatus(ctx context.Context, region string, itemID int64, professions []string) (*domain.CraftingStatus, error) {
	key := cache.Key("crafted-by", region, itemID)
	sources, err := cache.Fetch(s.cache, key, cache.TTLStatic, func() ([]domain.RecipeSource, error) {
		return s.provider.RecipesByCraftedItem(ctx, region, itemID)
	})
	if err != nil {
		return nil, err
	}

	viable := filterSources(sources, professions)
	return &domain.CraftingStatus{
		ItemID:    itemID,
		Craftable: len(viable) > 0,
		Sources:   viable,
	}, nil
}

// filterSources keeps sources whose profession the character knows.
func filterSources(sources []domain.RecipeSource, professions []string) []domain.RecipeSource {
	if len(professions) == 0 {
		return sources
	}

	known := make(map[string]bool, len(professions))
	for _, p := range professions {
		known[strings.ToLower(p)] = true
	}

	var viable []domain.RecipeSource
	for _, src := range sources {
		if known[strings.ToLower(src.Profession.Name)] {
			viable = append(viable, src)
		}
	}
	return viable
}

func normalizeSlug(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "-")
}
