package battlenet

// auctionsResponse covers both the connected-realm auctions payload and the
// region-wide commodities payload, which share the auction entry shape.
type auctionsResponse struct {
	Auctions []auctionEntry `json:"auctions"`
}

type auctionEntry struct {
	ID       int64       `json:"id"`
	Item     auctionItem `json:"item"`
	Quantity int64       `json:"quantity"`
	// Prices are in copper. Buyout is the lump price of the stack,
	// UnitPrice the per-unit price of commodity listings.
	Buyout    int64 `json:"buyout"`
	UnitPrice int64 `json:"unit_price"`
}

type auctionItem struct {
	ID         int64   `json:"id"`
	BonusLists []int64 `json:"bonus_lists"`
}
