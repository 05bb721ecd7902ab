package domain

// Inventory layers a mutable consumption overlay over an immutable base
// stock. The shopping list builder deducts simulated purchases from the
// overlay; the base counts are never touched, so a reset restores the
// character's real stock.
type Inventory struct {
	base    map[int64]int64
	overlay map[int64]int64
}

// NewInventory creates an Inventory over base on-hand counts. The map is
// copied; the caller's map stays untouched.
func NewInventory(base map[int64]int64) *Inventory {
	b := make(map[int64]int64, len(base))
	for id, n := range base {
		b[id] = n
	}
	return &Inventory{
		base:    b,
		overlay: make(map[int64]int64),
	}
}

// Count returns the effective on-hand quantity: base plus overlay delta.
func (inv *Inventory) Count(itemID int64) int64 {
	return inv.base[itemID] + inv.overlay[itemID]
}

// Adjust adds delta to the overlay for an item. Consumption is a negative
// delta.
func (inv *Inventory) Adjust(itemID, delta int64) {
	inv.overlay[itemID] += delta
}

// Overlay returns the current overlay delta for an item.
func (inv *Inventory) Overlay(itemID int64) int64 {
	return inv.overlay[itemID]
}

// Reset clears the overlay without touching base counts.
func (inv *Inventory) Reset() {
	inv.overlay = make(map[int64]int64)
}
