package domain

func levelDelta(d int64) *int64 { return &d }

// DefaultBonusTable covers the bonus ids attached to tiered crafted gear:
// the level-delta entries connect a listing's quality variant to a crafting
// rank, the socket entries only mark variants and never map to a rank.
func DefaultBonusTable() BonusTable {
	return BonusTable{
		6371: {LevelDelta: levelDelta(0)},
		6372: {LevelDelta: levelDelta(30)},
		6373: {LevelDelta: levelDelta(60)},
		4798: {Socketed: true},
		6935: {Socketed: true},
	}
}
