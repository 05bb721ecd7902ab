package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func listing(itemID int64, qty int64, unitPrice string, bonusIDs ...int64) Listing {
	return Listing{
		ItemID:    itemID,
		BonusIDs:  bonusIDs,
		Quantity:  qty,
		UnitPrice: decimal.RequireFromString(unitPrice),
	}
}

func TestSnapshotStats(t *testing.T) {
	snap := &Snapshot{
		RealmID: 1146,
		Listings: []Listing{
			listing(100, 5, "50"),
			listing(100, 10, "40"),
			listing(100, 1, "90"),
			listing(200, 3, "7"),
			listing(300, 2, "120", 6371),
			listing(300, 4, "80", 6372),
		},
	}

	bonus := int64(6371)

	tests := []struct {
		name        string
		itemID      int64
		bonusID     *int64
		wantHigh    string
		wantLow     string
		wantAverage string
		wantVolume  int64
	}{
		{
			name:   "weighted_average_across_listings",
			itemID: 100,
			// (50*5 + 40*10 + 90*1) / 16 = 740/16 = 46.25
			wantHigh:    "90",
			wantLow:     "40",
			wantAverage: "46.25",
			wantVolume:  16,
		},
		{
			name:        "single_listing",
			itemID:      200,
			wantHigh:    "7",
			wantLow:     "7",
			wantAverage: "7",
			wantVolume:  3,
		},
		{
			name:        "bonus_filter_restricts_variants",
			itemID:      300,
			bonusID:     &bonus,
			wantHigh:    "120",
			wantLow:     "120",
			wantAverage: "120",
			wantVolume:  2,
		},
		{
			name:        "no_filter_conflates_variants",
			itemID:      300,
			wantHigh:    "120",
			wantLow:     "80",
			wantAverage: "93.3333333333333333", // (120*2 + 80*4)/6
			wantVolume:  6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SnapshotStats(snap, tt.itemID, tt.bonusID)
			if got == nil {
				t.Fatal("SnapshotStats() = nil, want stats")
			}
			if got.Volume != tt.wantVolume {
				t.Errorf("Volume = %d, want %d", got.Volume, tt.wantVolume)
			}
			if !got.High.Equal(decimal.RequireFromString(tt.wantHigh)) {
				t.Errorf("High = %s, want %s", got.High, tt.wantHigh)
			}
			if !got.Low.Equal(decimal.RequireFromString(tt.wantLow)) {
				t.Errorf("Low = %s, want %s", got.Low, tt.wantLow)
			}
			wantAvg := decimal.RequireFromString(tt.wantAverage)
			if got.Average.Sub(wantAvg).Abs().GreaterThan(decimal.RequireFromString("0.0001")) {
				t.Errorf("Average = %s, want %s", got.Average, tt.wantAverage)
			}
		})
	}
}

func TestSnapshotStats_NoListings(t *testing.T) {
	snap := &Snapshot{Listings: []Listing{listing(100, 1, "10")}}

	if got := SnapshotStats(snap, 999, nil); got != nil {
		t.Errorf("SnapshotStats() = %+v, want nil for unlisted item", got)
	}
	if got := SnapshotStats(nil, 100, nil); got != nil {
		t.Errorf("SnapshotStats() = %+v, want nil for nil snapshot", got)
	}
}

func TestSnapshotStats_LumpBuyout(t *testing.T) {
	snap := &Snapshot{
		Listings: []Listing{
			{ItemID: 100, Quantity: 20, Buyout: decimal.RequireFromString("200")},
		},
	}

	got := SnapshotStats(snap, 100, nil)
	if got == nil {
		t.Fatal("SnapshotStats() = nil, want stats")
	}
	if !got.Average.Equal(decimal.NewFromInt(10)) {
		t.Errorf("Average = %s, want 10 (200 buyout / 20 units)", got.Average)
	}
	if got.Volume != 20 {
		t.Errorf("Volume = %d, want 20", got.Volume)
	}
}

func TestVariantBonusSets(t *testing.T) {
	snap := &Snapshot{
		Listings: []Listing{
			listing(300, 1, "10", 6371),
			listing(300, 1, "11", 6372, 4798),
			listing(300, 1, "12", 6371), // duplicate combination
			listing(300, 1, "13"),       // no bonus ids, not a variant
			listing(400, 1, "14", 6371), // different item
		},
	}

	sets := VariantBonusSets(snap, 300)
	if len(sets) != 2 {
		t.Fatalf("VariantBonusSets() returned %d sets, want 2", len(sets))
	}
	if sets[0][0] != 6371 {
		t.Errorf("first set = %v, want [6371]", sets[0])
	}
	if len(sets[1]) != 2 || sets[1][0] != 6372 {
		t.Errorf("second set = %v, want [6372 4798]", sets[1])
	}
}

func TestStats_Scale(t *testing.T) {
	s := &Stats{
		High:    decimal.NewFromInt(10),
		Low:     decimal.NewFromInt(4),
		Average: decimal.NewFromInt(6),
		Volume:  9,
	}

	got := s.Scale(3)
	if !got.High.Equal(decimal.NewFromInt(30)) || !got.Low.Equal(decimal.NewFromInt(12)) || !got.Average.Equal(decimal.NewFromInt(18)) {
		t.Errorf("Scale(3) = %+v, want bands 30/12/18", got)
	}
	if got.Volume != 9 {
		t.Errorf("Scale must not change volume, got %d", got.Volume)
	}
	// original untouched
	if !s.High.Equal(decimal.NewFromInt(10)) {
		t.Error("Scale mutated receiver")
	}

	var nilStats *Stats
	if nilStats.Scale(2) != nil {
		t.Error("Scale on nil = non-nil")
	}
}
