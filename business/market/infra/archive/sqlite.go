// Package archive persists price observations to a local SQLite database so
// historical prices survive process restarts.
package archive

import (
	"context"
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite"

	"github.com/goblinomics/craftprofit/business/market/domain"
	"github.com/goblinomics/craftprofit/internal/apperror"
)

const schema = `
CREATE TABLE IF NOT EXISTS price_history (
	realm_id  INTEGER NOT NULL,
	item_id   INTEGER NOT NULL,
	bucket    INTEGER NOT NULL,
	high      TEXT    NOT NULL,
	low       TEXT    NOT NULL,
	average   TEXT    NOT NULL,
	volume    INTEGER NOT NULL,
	PRIMARY KEY (realm_id, item_id, bucket)
);
CREATE INDEX IF NOT EXISTS idx_price_history_item ON price_history (item_id, bucket);
`

// SQLiteArchive implements the market app.Archive port. Observations are
// bucketed to the hour; re-recording within the same bucket overwrites, so
// repeated snapshot fetches do not inflate history.
type SQLiteArchive struct {
	db *sql.DB
}

// Open opens (and if needed initializes) the archive database at path.
// ":memory:" gives an ephemeral archive, used by tests.
func Open(path string) (*SQLiteArchive, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.CodeArchiveOpenFailed, path)
	}
	// modernc.org/sqlite serializes writes; more than one writer conn
	// just queues on the driver lock.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, apperror.Wrap(err, apperror.CodeArchiveOpenFailed, path)
	}
	return &SQLiteArchive{db: db}, nil
}

// Record upserts one observation into its hourly bucket.
func (a *SQLiteArchive) Record(ctx context.Context, realmID int64, at time.Time, itemID int64, stats *domain.Stats) error {
	if stats == nil {
		return nil
	}

	bucket := at.UTC().Truncate(time.Hour).Unix()
	_, err := a.db.ExecContext(ctx, `
		INSERT INTO price_history (realm_id, item_id, bucket, high, low, average, volume)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (realm_id, item_id, bucket) DO UPDATE SET
			high = excluded.high,
			low = excluded.low,
			average = excluded.average,
			volume = excluded.volume`,
		realmID, itemID, bucket,
		stats.High.String(), stats.Low.String(), stats.Average.String(), stats.Volume,
	)
	if err != nil {
		return apperror.Wrap(err, apperror.CodeArchiveWriteFailed, "price_history upsert")
	}
	return nil
}

// History returns the observations for an item on a realm between from and
// to, oldest first.
func (a *SQLiteArchive) History(ctx context.Context, realmID, itemID int64, from, to time.Time) ([]domain.Observation, error) {
	rows, err := a.db.QueryContext(ctx, `
		SELECT bucket, high, low, average, volume
		FROM price_history
		WHERE realm_id = ? AND item_id = ? AND bucket >= ? AND bucket <= ?
		ORDER BY bucket ASC`,
		realmID, itemID, from.UTC().Unix(), to.UTC().Unix(),
	)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.CodeArchiveQueryFailed, "price_history select")
	}
	defer rows.Close()

	var obs []domain.Observation
	for rows.Next() {
		var (
			bucket         int64
			high, low, avg string
			volume         int64
		)
		if err := rows.Scan(&bucket, &high, &low, &avg, &volume); err != nil {
			return nil, apperror.Wrap(err, apperror.CodeArchiveQueryFailed, "price_history select")
		}

		o := domain.Observation{
			RealmID: realmID,
			ItemID:  itemID,
			Bucket:  time.Unix(bucket, 0).UTC(),
		}
		o.Stats.High = decimal.RequireFromString(high)
		o.Stats.Low = decimal.RequireFromString(low)
		o.Stats.Average = decimal.RequireFromString(avg)
		o.Stats.Volume = volume
		obs = append(obs, o)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.Wrap(err, apperror.CodeArchiveQueryFailed, "price_history select")
	}
	return obs, nil
}

// Close closes the underlying database.
func (a *SQLiteArchive) Close() error {
	return a.db.Close()
}
