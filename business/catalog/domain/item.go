package domain

import "github.com/shopspring/decimal"

// ItemDetails is a resolved catalog item.
type ItemDetails struct {
	ID    int64
	Name  string
	Level int64

	// PurchasePrice is the fixed non-market price in copper, nil when the
	// catalog lists none. PurchaseQuantity is the batch size that price
	// buys; 0 means unspecified and is treated as 1.
	PurchasePrice    *decimal.Decimal
	PurchaseQuantity int64

	// Description is free text from the catalog. It is only consulted by
	// the vendor-price heuristic.
	Description string
}
