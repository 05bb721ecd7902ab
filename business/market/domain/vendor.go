package domain

import (
	"strings"

	"github.com/shopspring/decimal"

	catalog "github.com/goblinomics/craftprofit/business/catalog/domain"
)

// VendorUnitPrice decides whether an item has a fixed non-market purchase
// price and returns it normalized per unit, or nil.
//
// The classification is a substring heuristic over the item's free-text
// description: no description, or one mentioning "vendor", or one that does
// NOT mention "auction", means vendor-sellable. This is knowingly imprecise
// (an auction-sellable item whose text omits the word "auction" is
// misclassified) but changing it changes user-visible prices, so it stays.
func VendorUnitPrice(item *catalog.ItemDetails) *decimal.Decimal {
	if item == nil || item.PurchasePrice == nil {
		return nil
	}

	desc := strings.ToLower(item.Description)
	vendorSellable := desc == "" ||
		strings.Contains(desc, "vendor") ||
		!strings.Contains(desc, "auction")
	if !vendorSellable {
		return nil
	}

	batch := item.PurchaseQuantity
	if batch < 1 {
		batch = 1
	}
	unit := item.PurchasePrice.Div(decimal.NewFromInt(batch))
	return &unit
}
