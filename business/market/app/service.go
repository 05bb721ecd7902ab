package app

import (
	"context"
	"time"

	"github.com/goblinomics/craftprofit/business/market/domain"
	"github.com/goblinomics/craftprofit/internal/cache"
	"github.com/goblinomics/craftprofit/internal/logger"
)

// MarketService serves realm auction snapshots. Snapshots are big and the
// upstream refreshes them roughly hourly, so one fetch is cached and shared
// across analysis runs until it expires.
type MarketService struct {
	provider SnapshotProvider
	archive  Archive // nil when archiving is disabled
	cache    *cache.Cache
	logger   logger.LoggerInterface
}

// NewMarketService creates a MarketService. archive may be nil.
func NewMarketService(provider SnapshotProvider, archive Archive, c *cache.Cache, log logger.LoggerInterface) *MarketService {
	return &MarketService{
		provider: provider,
		archive:  archive,
		cache:    c,
		logger:   log,
	}
}

// Snapshot returns the current auction snapshot for a connected realm,
// fetching from upstream at most once per cache window. A freshly fetched
// snapshot is also recorded to the archive, best effort.
func (s *MarketService) Snapshot(ctx context.Context, region string, realmID int64) (*domain.Snapshot, error) {
	key := cache.Key("snapshot", region, realmID)
	if cached, ok := s.cache.Get(key); ok {
		return cached.(*domain.Snapshot), nil
	}

	snap, err := s.provider.AuctionSnapshot(ctx, region, realmID)
	if err != nil {
		return nil, err
	}

	s.cache.SetWithTTL(key, snap, cache.TTLSnapshot)
	s.logger.Info(ctx, "auction snapshot fetched",
		"realm_id", realmID,
		"listings", len(snap.Listings),
	)

	if s.archive != nil {
		s.record(ctx, snap)
	}
	return snap, nil
}

// History returns archived price observations for an item on a realm.
func (s *MarketService) History(ctx context.Context, realmID, itemID int64, from, to time.Time) ([]domain.Observation, error) {
	if s.archive == nil {
		return nil, nil
	}
	return s.archive.History(ctx, realmID, itemID, from, to)
}

// record archives per-item stats of the snapshot. Archive failures are
// logged, never surfaced: history is an extra, the analysis is the product.
func (s *MarketService) record(ctx context.Context, snap *domain.Snapshot) {
	seen := make(map[int64]bool)
	for _, l := range snap.Listings {
		if seen[l.ItemID] {
			continue
		}
		seen[l.ItemID] = true

		stats := domain.SnapshotStats(snap, l.ItemID, nil)
		if stats == nil {
			continue
		}
		if err := s.archive.Record(ctx, snap.RealmID, snap.FetchedAt, l.ItemID, stats); err != nil {
			s.logger.Warn(ctx, "price archive write failed",
				"realm_id", snap.RealmID,
				"item_id", l.ItemID,
				"error", err,
			)
			return
		}
	}
}
