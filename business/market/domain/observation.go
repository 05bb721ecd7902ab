package domain

import "time"

// Observation is one archived price sample: the stats of an item on a realm
// as seen in a snapshot, bucketed to the hour it was taken.
type Observation struct {
	RealmID int64     `json:"realm_id"`
	ItemID  int64     `json:"item_id"`
	Bucket  time.Time `json:"bucket"`
	Stats   Stats     `json:"stats"`
}
