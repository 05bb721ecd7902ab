// Package battlenet adapts the auction-house endpoints of the game data API
// to the market SnapshotProvider port.
package battlenet

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	catalogbn "github.com/goblinomics/craftprofit/business/catalog/infra/battlenet"
	"github.com/goblinomics/craftprofit/business/market/domain"
)

// AuctionProvider implements the market app.SnapshotProvider port over the
// shared authenticated API client.
type AuctionProvider struct {
	client *catalogbn.Client
}

// NewAuctionProvider creates an AuctionProvider.
func NewAuctionProvider(client *catalogbn.Client) *AuctionProvider {
	return &AuctionProvider{client: client}
}

// AuctionSnapshot fetches both the realm-specific auctions and the
// region-wide commodity auctions and merges them into one snapshot.
// Reagents are mostly commodities, crafted gear mostly realm auctions, and a
// recursive analysis crosses between the two freely.
func (p *AuctionProvider) AuctionSnapshot(ctx context.Context, region string, realmID int64) (*domain.Snapshot, error) {
	var realm auctionsResponse
	path := fmt.Sprintf("/data/wow/connected-realm/%d/auctions", realmID)
	if err := p.client.Get(ctx, region, path, catalogbn.NamespaceDynamic, nil, &realm); err != nil {
		return nil, err
	}

	var commodities auctionsResponse
	if err := p.client.Get(ctx, region, "/data/wow/auctions/commodities", catalogbn.NamespaceDynamic, nil, &commodities); err != nil {
		return nil, err
	}

	listings := make([]domain.Listing, 0, len(realm.Auctions)+len(commodities.Auctions))
	listings = appendListings(listings, realm.Auctions)
	listings = appendListings(listings, commodities.Auctions)

	return &domain.Snapshot{
		RealmID:   realmID,
		FetchedAt: time.Now().UTC(),
		Listings:  listings,
	}, nil
}

func appendListings(dst []domain.Listing, auctions []auctionEntry) []domain.Listing {
	for _, a := range auctions {
		dst = append(dst, domain.Listing{
			ItemID:    a.Item.ID,
			BonusIDs:  a.Item.BonusLists,
			Quantity:  a.Quantity,
			Buyout:    decimal.NewFromInt(a.Buyout),
			UnitPrice: decimal.NewFromInt(a.UnitPrice),
		})
	}
	return dst
}
