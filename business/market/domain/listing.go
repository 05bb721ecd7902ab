// Package domain contains the core domain types for the market context.
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Listing is one active auction. The same item id can appear with different
// bonus-id lists, each list marking a distinct quality variant of the item.
type Listing struct {
	ItemID   int64
	BonusIDs []int64
	Quantity int64

	// Buyout is the lump price for the whole stack; UnitPrice is a
	// per-unit price. Commodity listings carry UnitPrice, regular
	// listings carry Buyout. Zero means absent.
	Buyout    decimal.Decimal
	UnitPrice decimal.Decimal
}

// PerUnit returns the effective per-unit price of the listing.
func (l Listing) PerUnit() decimal.Decimal {
	if l.UnitPrice.IsPositive() {
		return l.UnitPrice
	}
	qty := l.Quantity
	if qty < 1 {
		qty = 1
	}
	return l.Buyout.Div(decimal.NewFromInt(qty))
}

// HasBonus reports whether the listing carries the given bonus id.
func (l Listing) HasBonus(id int64) bool {
	for _, b := range l.BonusIDs {
		if b == id {
			return true
		}
	}
	return false
}

// Snapshot is an immutable collection of active listings for one connected
// realm. One snapshot is fetched per top-level analysis run and threaded
// unchanged through the whole recursive tree, so sibling reagents always see
// consistent prices.
type Snapshot struct {
	RealmID   int64
	FetchedAt time.Time
	Listings  []Listing
}
