package app

import (
	"context"
	"time"

	"github.com/goblinomics/craftprofit/business/market/domain"
)

// SnapshotProvider fetches the full auction state of a connected realm.
type SnapshotProvider interface {
	AuctionSnapshot(ctx context.Context, region string, realmID int64) (*domain.Snapshot, error)
}

// Archive persists price observations so past runs stay queryable.
type Archive interface {
	Record(ctx context.Context, realmID int64, at time.Time, itemID int64, stats *domain.Stats) error
	History(ctx context.Context, realmID, itemID int64, from, to time.Time) ([]domain.Observation, error)
	Close() error
}
