package domain

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// Stats summarizes the observed market for one item: extremes and the
// quantity-weighted average of per-unit prices, plus matched unit volume.
type Stats struct {
	High    decimal.Decimal `json:"high"`
	Low     decimal.Decimal `json:"low"`
	Average decimal.Decimal `json:"average"`
	Volume  int64           `json:"volume"`
}

// SnapshotStats scans the snapshot for listings of itemID and returns price
// statistics, or nil when no listing matches ("no market data" is a value,
// not an error). When bonusID is non-nil only listings carrying that bonus
// id are counted; without a filter all variants of the item id are conflated.
func SnapshotStats(snap *Snapshot, itemID int64, bonusID *int64) *Stats {
	if snap == nil {
		return nil
	}

	var (
		high, low decimal.Decimal
		sumPrice  decimal.Decimal // price*qty accumulator
		volume    int64
	)

	for _, l := range snap.Listings {
		if l.ItemID != itemID {
			continue
		}
		if bonusID != nil && !l.HasBonus(*bonusID) {
			continue
		}

		unit := l.PerUnit()
		qty := l.Quantity
		if qty < 1 {
			qty = 1
		}

		if volume == 0 {
			high, low = unit, unit
		} else {
			if unit.GreaterThan(high) {
				high = unit
			}
			if unit.LessThan(low) {
				low = unit
			}
		}

		sumPrice = sumPrice.Add(unit.Mul(decimal.NewFromInt(qty)))
		volume += qty
	}

	if volume == 0 {
		return nil
	}

	return &Stats{
		High:    high,
		Low:     low,
		Average: sumPrice.Div(decimal.NewFromInt(volume)),
		Volume:  volume,
	}
}

// VariantBonusSets returns the distinct bonus-id combinations observed on
// listings of itemID, in first-seen order. Listings without bonus ids do not
// produce a set.
func VariantBonusSets(snap *Snapshot, itemID int64) [][]int64 {
	if snap == nil {
		return nil
	}

	seen := make(map[string]bool)
	var sets [][]int64

	for _, l := range snap.Listings {
		if l.ItemID != itemID || len(l.BonusIDs) == 0 {
			continue
		}

		key := bonusKey(l.BonusIDs)
		if seen[key] {
			continue
		}
		seen[key] = true
		sets = append(sets, l.BonusIDs)
	}

	return sets
}

// Scale returns a copy with every price band multiplied by qty.
func (s *Stats) Scale(qty int64) *Stats {
	if s == nil {
		return nil
	}
	n := decimal.NewFromInt(qty)
	return &Stats{
		High:    s.High.Mul(n),
		Low:     s.Low.Mul(n),
		Average: s.Average.Mul(n),
		Volume:  s.Volume,
	}
}

func bonusKey(ids []int64) string {
	key := ""
	for _, id := range ids {
		key += ":" + strconv.FormatInt(id, 10)
	}
	return key
}
