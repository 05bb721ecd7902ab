package app

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/goblinomics/craftprofit/business/catalog/domain"
	"github.com/goblinomics/craftprofit/internal/apperror"
	"github.com/goblinomics/craftprofit/internal/cache"
	"github.com/goblinomics/craftprofit/internal/logger"
)

// countingProvider tracks how often each lookup reaches the backend.
type countingProvider struct {
	itemCalls   int
	statusCalls int
	sources     []domain.RecipeSource
}

func (p *countingProvider) ItemByID(_ context.Context, _ string, id int64) (*domain.ItemDetails, error) {
	p.itemCalls++
	return &domain.ItemDetails{ID: id, Name: "Test Item"}, nil
}

func (p *countingProvider) SearchItemByName(_ context.Context, _ string, name string) (*domain.ItemDetails, error) {
	p.itemCalls++
	if name == "missing" {
		return nil, apperror.NotFound(apperror.CodeItemNotFound, name)
	}
	return &domain.ItemDetails{ID: 42, Name: name}, nil
}

func (p *countingProvider) RecipeByID(_ context.Context, _ string, id int64) (*domain.RecipeDefinition, error) {
	return &domain.RecipeDefinition{ID: id}, nil
}

func (p *countingProvider) RecipesByCraftedItem(_ context.Context, _ string, itemID int64) ([]domain.RecipeSource, error) {
	p.statusCalls++
	return p.sources, nil
}

func (p *countingProvider) ConnectedRealmBySlug(_ context.Context, _ string, slug string) (int64, error) {
	if slug != "area-52" {
		return 0, apperror.NotFound(apperror.CodeRealmNotFound, slug)
	}
	return 1566, nil
}

func newService(p Provider) *CatalogService {
	log := logger.New(io.Discard, logger.LevelError, "test", nil)
	return NewCatalogService(p, cache.New(time.Minute), log)
}

func TestResolveItem_CachesByID(t *testing.T) {
	p := &countingProvider{}
	s := newService(p)
	ctx := context.Background()

	for range 3 {
		if _, err := s.ResolveItem(ctx, "us", domain.ItemID(42)); err != nil {
			t.Fatalf("ResolveItem() error = %v", err)
		}
	}
	if p.itemCalls != 1 {
		t.Errorf("backend calls = %d, want 1 (cached afterwards)", p.itemCalls)
	}
}

func TestResolveItem_NameMiss(t *testing.T) {
	s := newService(&countingProvider{})

	_, err := s.ResolveItem(context.Background(), "us", domain.ItemName("missing"))
	if !apperror.IsCode(err, apperror.CodeItemNotFound) {
		t.Errorf("ResolveItem() error = %v, want ITEM_NOT_FOUND", err)
	}
}

func TestResolveRealm_NormalizesSlug(t *testing.T) {
	s := newService(&countingProvider{})

	id, err := s.ResolveRealm(context.Background(), "us", domain.RealmSlug("  Area 52 "))
	if err != nil {
		t.Fatalf("ResolveRealm() error = %v", err)
	}
	if id != 1566 {
		t.Errorf("realm id = %d, want 1566", id)
	}
}

func TestCraftingStatus_ProfessionFilter(t *testing.T) {
	p := &countingProvider{
		sources: []domain.RecipeSource{
			{RecipeID: 1, Profession: domain.Profession{ID: 164, Name: "Blacksmithing"}},
			{RecipeID: 2, Profession: domain.Profession{ID: 165, Name: "Leatherworking"}},
		},
	}
	s := newService(p)
	ctx := context.Background()

	tests := []struct {
		name          string
		professions   []string
		wantCraftable bool
		wantSources   int
	}{
		{"any_profession", nil, true, 2},
		{"known_profession_case_insensitive", []string{"BLACKSMITHING"}, true, 1},
		{"unknown_profession", []string{"Tailoring"}, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, err := s.CraftingStatus(ctx, "us", 42, tt.professions)
			if err != nil {
				t.Fatalf("CraftingStatus() error = %v", err)
			}
			if status.Craftable != tt.wantCraftable {
				t.Errorf("Craftable = %v, want %v", status.Craftable, tt.wantCraftable)
			}
			if len(status.Sources) != tt.wantSources {
				t.Errorf("Sources = %d, want %d", len(status.Sources), tt.wantSources)
			}
		})
	}
}
