package domain

import "testing"

func TestBonusTable(t *testing.T) {
	delta30 := int64(30)
	delta60 := int64(60)
	table := BonusTable{
		6371: {LevelDelta: &delta30},
		6372: {LevelDelta: &delta60},
		4798: {Socketed: true},
	}

	if lvl, ok := table.LevelFor(6371, 415); !ok || lvl != 445 {
		t.Errorf("LevelFor(6371, 415) = %d,%v, want 445,true", lvl, ok)
	}
	if _, ok := table.LevelFor(4798, 415); ok {
		t.Error("LevelFor(4798) = ok, want false for a socket-only bonus")
	}
	if _, ok := table.LevelFor(9999, 415); ok {
		t.Error("LevelFor(9999) = ok, want false for unknown bonus")
	}

	if id, ok := table.BonusForLevel(415, 475); !ok || id != 6372 {
		t.Errorf("BonusForLevel(415, 475) = %d,%v, want 6372,true", id, ok)
	}
	if _, ok := table.BonusForLevel(415, 500); ok {
		t.Error("BonusForLevel(415, 500) = ok, want false")
	}
}

func TestRankTable(t *testing.T) {
	table := NewRankTable([]int64{415, 445, 475})

	if lvl, ok := table.Level(1); !ok || lvl != 445 {
		t.Errorf("Level(1) = %d,%v, want 445,true", lvl, ok)
	}
	if _, ok := table.Level(3); ok {
		t.Error("Level(3) = ok, want false beyond the table")
	}
	if _, ok := table.Level(-1); ok {
		t.Error("Level(-1) = ok, want false")
	}
}
