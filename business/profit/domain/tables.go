// Package domain contains the recursive cost tree, its aggregation rules and
// the shopping list builder.
package domain

// BonusEntry describes one bonus modifier id: an item-level delta and
// whether the bonus marks a socketed variant. The same base item id can
// trade as several distinct quality variants, told apart only by the bonus
// ids attached to each listing.
type BonusEntry struct {
	LevelDelta *int64
	Socketed   bool
}

// BonusTable maps bonus ids to their modifier data. Loaded once at startup
// and passed into the engine; never mutated.
type BonusTable map[int64]BonusEntry

// LevelFor returns the absolute item level a bonus id represents on an item
// with the given base level, or false when the bonus carries no level delta.
func (t BonusTable) LevelFor(bonusID, baseLevel int64) (int64, bool) {
	entry, ok := t[bonusID]
	if !ok || entry.LevelDelta == nil {
		return 0, false
	}
	return baseLevel + *entry.LevelDelta, true
}

// BonusForLevel searches for a bonus id whose level delta, applied to
// baseLevel, lands exactly on level.
func (t BonusTable) BonusForLevel(baseLevel, level int64) (int64, bool) {
	for id, entry := range t {
		if entry.LevelDelta != nil && baseLevel+*entry.LevelDelta == level {
			return id, true
		}
	}
	return 0, false
}

// RankTable maps a recipe's ordinal rank (position in the sorted list of
// viable recipe ids) to the item level that tier produces. Rank 0 is the
// base tier.
type RankTable struct {
	levels []int64
}

// NewRankTable creates a RankTable from per-rank item levels.
func NewRankTable(levels []int64) RankTable {
	return RankTable{levels: levels}
}

// Level returns the item level for a rank, or false when the rank is beyond
// the table.
func (t RankTable) Level(rank int) (int64, bool) {
	if rank < 0 || rank >= len(t.levels) {
		return 0, false
	}
	return t.levels[rank], true
}

// ExclusionList holds recipe ids that shopping lists never expand: their
// crafted item is treated as a terminal purchase even though a recipe
// exists (bind-on-pickup intermediates, quest-gated crafts).
type ExclusionList map[int64]bool

// NewExclusionList creates an ExclusionList from recipe ids.
func NewExclusionList(recipeIDs []int64) ExclusionList {
	l := make(ExclusionList, len(recipeIDs))
	for _, id := range recipeIDs {
		l[id] = true
	}
	return l
}

// Excluded reports whether a recipe id must not be expanded.
func (l ExclusionList) Excluded(recipeID int64) bool {
	return l[recipeID]
}

// Tables bundles the static data the engine needs, loaded once at startup.
type Tables struct {
	Bonuses    BonusTable
	Ranks      RankTable
	Exclusions ExclusionList
}
