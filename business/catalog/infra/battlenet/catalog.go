package battlenet

import (
	"context"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/goblinomics/craftprofit/business/catalog/domain"
	"github.com/goblinomics/craftprofit/internal/apperror"
)

// CatalogProvider implements the catalog app.Provider port.
type CatalogProvider struct {
	client *Client
}

// NewCatalogProvider creates a CatalogProvider over a shared API client.
func NewCatalogProvider(client *Client) *CatalogProvider {
	return &CatalogProvider{client: client}
}

// ItemByID fetches item details for a known id.
func (p *CatalogProvider) ItemByID(ctx context.Context, region string, id int64) (*domain.ItemDetails, error) {
	var resp itemResponse
	path := fmt.Sprintf("/data/wow/item/%d", id)
	if err := p.client.Get(ctx, region, path, NamespaceStatic, nil, &resp); err != nil {
		if apperror.IsCode(err, apperror.CodeNotFound) {
			return nil, apperror.NotFound(apperror.CodeItemNotFound, strconv.FormatInt(id, 10))
		}
		return nil, err
	}
	return mapItem(resp), nil
}

// SearchItemByName resolves a display name via the item search endpoint and
// then fetches the full details of the first hit. Zero hits is a hard
// ITEM_NOT_FOUND: analysis cannot proceed on an unresolved soft identity.
func (p *CatalogProvider) SearchItemByName(ctx context.Context, region, name string) (*domain.ItemDetails, error) {
	var resp itemSearchResponse
	query := map[string]string{
		"name.en_US": name,
		"orderby":    "id",
		"_page":      "1",
	}
	if err := p.client.Get(ctx, region, "/data/wow/search/item", NamespaceStatic, query, &resp); err != nil {
		return nil, err
	}

	if len(resp.Results) == 0 {
		return nil, apperror.NotFound(apperror.CodeItemNotFound, name)
	}

	return p.ItemByID(ctx, region, resp.Results[0].Data.ID)
}

// RecipeByID fetches a recipe definition.
func (p *CatalogProvider) RecipeByID(ctx context.Context, region string, id int64) (*domain.RecipeDefinition, error) {
	var resp recipeResponse
	path := fmt.Sprintf("/data/wow/recipe/%d", id)
	if err := p.client.Get(ctx, region, path, NamespaceStatic, nil, &resp); err != nil {
		if apperror.IsCode(err, apperror.CodeNotFound) {
			return nil, apperror.NotFound(apperror.CodeRecipeNotFound, strconv.FormatInt(id, 10))
		}
		return nil, err
	}

	def := &domain.RecipeDefinition{
		ID:   resp.ID,
		Name: resp.Name,
		Output: domain.OutputQuantity{
			Value:   int64(resp.CraftedQuantity.Value),
			Minimum: int64(resp.CraftedQuantity.Minimum),
			Maximum: int64(resp.CraftedQuantity.Maximum),
		},
	}
	for _, r := range resp.Reagents {
		def.Reagents = append(def.Reagents, domain.Reagent{
			ItemID:   r.Reagent.ID,
			Name:     r.Reagent.Name,
			Quantity: r.Quantity,
		})
	}
	return def, nil
}

// RecipesByCraftedItem returns every (recipe, profession) pair producing the item.
func (p *CatalogProvider) RecipesByCraftedItem(ctx context.Context, region string, itemID int64) ([]domain.RecipeSource, error) {
	var resp recipeSearchResponse
	query := map[string]string{
		"crafted_item.id": strconv.FormatInt(itemID, 10),
		"orderby":         "id",
		"_page":           "1",
	}
	if err := p.client.Get(ctx, region, "/data/wow/search/recipe", NamespaceStatic, query, &resp); err != nil {
		return nil, err
	}

	var sources []domain.RecipeSource
	for _, r := range resp.Results {
		sources = append(sources, domain.RecipeSource{
			RecipeID: r.Data.ID,
			Profession: domain.Profession{
				ID:   r.Data.Profession.ID,
				Name: r.Data.Profession.Name.EnUS,
			},
		})
	}
	return sources, nil
}

// ConnectedRealmBySlug resolves a realm slug to its connected-realm id.
func (p *CatalogProvider) ConnectedRealmBySlug(ctx context.Context, region, slug string) (int64, error) {
	var resp realmSearchResponse
	query := map[string]string{
		"realms.slug": slug,
		"_page":       "1",
	}
	if err := p.client.Get(ctx, region, "/data/wow/search/connected-realm", NamespaceDynamic, query, &resp); err != nil {
		return 0, err
	}

	if len(resp.Results) == 0 {
		return 0, apperror.NotFound(apperror.CodeRealmNotFound, slug)
	}
	return resp.Results[0].Data.ID, nil
}

func mapItem(resp itemResponse) *domain.ItemDetails {
	details := &domain.ItemDetails{
		ID:               resp.ID,
		Name:             resp.Name,
		Level:            int64(resp.Level),
		PurchaseQuantity: resp.PurchaseQuantity,
		Description:      resp.Description,
	}
	if resp.PurchasePrice > 0 {
		price := decimal.NewFromInt(resp.PurchasePrice)
		details.PurchasePrice = &price
	}
	return details
}
