package domain

import (
	"testing"

	"github.com/shopspring/decimal"

	catalog "github.com/goblinomics/craftprofit/business/catalog/domain"
)

func TestVendorUnitPrice(t *testing.T) {
	price := func(s string) *decimal.Decimal {
		d := decimal.RequireFromString(s)
		return &d
	}

	tests := []struct {
		name string
		item catalog.ItemDetails
		want *decimal.Decimal
	}{
		{
			name: "no_purchase_price",
			item: catalog.ItemDetails{ID: 1, Name: "Quest Token"},
			want: nil,
		},
		{
			name: "empty_description_is_vendor_sellable",
			item: catalog.ItemDetails{
				ID:            2,
				PurchasePrice: price("125"),
			},
			want: price("125"),
		},
		{
			name: "description_mentions_vendor",
			item: catalog.ItemDetails{
				ID:            3,
				Description:   "Sold by a Vendor in Valdrakken.",
				PurchasePrice: price("50"),
			},
			want: price("50"),
		},
		{
			name: "auction_only_description",
			item: catalog.ItemDetails{
				ID:            4,
				Description:   "Found on the auction house.",
				PurchasePrice: price("50"),
			},
			want: nil,
		},
		{
			name: "auction_and_vendor_both_mentioned",
			item: catalog.ItemDetails{
				ID:            5,
				Description:   "Buy from a vendor or the auction house.",
				PurchasePrice: price("80"),
			},
			want: price("80"),
		},
		{
			name: "unrelated_description_is_vendor_sellable",
			item: catalog.ItemDetails{
				ID:            6,
				Description:   "A fine crafting reagent.",
				PurchasePrice: price("12"),
			},
			want: price("12"),
		},
		{
			name: "batch_price_normalized_per_unit",
			item: catalog.ItemDetails{
				ID:               7,
				PurchasePrice:    price("100"),
				PurchaseQuantity: 5,
			},
			want: price("20"),
		},
		{
			name: "zero_batch_treated_as_one",
			item: catalog.ItemDetails{
				ID:               8,
				PurchasePrice:    price("30"),
				PurchaseQuantity: 0,
			},
			want: price("30"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := VendorUnitPrice(&tt.item)
			if (got == nil) != (tt.want == nil) {
				t.Fatalf("VendorUnitPrice() = %v, want %v", got, tt.want)
			}
			if got != nil && !got.Equal(*tt.want) {
				t.Errorf("VendorUnitPrice() = %s, want %s", got, tt.want)
			}
		})
	}
}
