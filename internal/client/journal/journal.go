package journal

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/outreach/internal/client/store"
	"github.com/dmitrijs2005/outreach/internal/dbx"
	"github.com/dmitrijs2005/outreach/internal/logging"
)

// DefaultKeep is how many entries Prune leaves behind by default.
const DefaultKeep = 1000

// Journal records store events. It implements store.Recorder.
type Journal struct {
	db     *sql.DB
	repo   Repository
	logger logging.Logger
}

func New(db *sql.DB, logger logging.Logger) *Journal {
	if logger == nil {
		logger = logging.NopLogger{}
	}
	return &Journal{db: db, repo: NewSQLiteRepository(db), logger: logger.With("component", "journal")}
}

// Record writes e. A write failure is logged and never fails the action
// that produced the event.
func (j *Journal) Record(ctx context.Context, e store.Event) {
	entry := Entry{
		At:       e.At,
		Store:    e.Store,
		Action:   string(e.Action),
		EntityID: string(e.EntityID),
		OK:       e.Err == nil,
		Elapsed:  e.Elapsed,
	}
	if e.Err != nil {
		entry.Error = e.Err.Error()
	}
	if _, err := j.repo.Add(ctx, entry); err != nil {
		j.logger.Warn(ctx, "journal write failed", "action", e.Action, "error", err)
	}
}

func (j *Journal) Recent(ctx context.Context, limit int) ([]Entry, error) {
	return j.repo.Recent(ctx, limit)
}

func (j *Journal) RecentForStore(ctx context.Context, storeName string, limit int) ([]Entry, error) {
	return j.repo.RecentForStore(ctx, storeName, limit)
}

// Count returns the number of recorded entries.
func (j *Journal) Count(ctx context.Context) (int64, error) {
	return j.repo.Count(ctx)
}

// Prune keeps the newest keep entries and deletes the rest in one
// transaction. It returns the number of deleted rows.
func (j *Journal) Prune(ctx context.Context, keep int) (int64, error) {
	if keep < 0 {
		return 0, fmt.Errorf("keep must not be negative: %d", keep)
	}

	var deleted int64
	err := dbx.WithTx(ctx, j.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var cutoff sql.NullInt64
		err := tx.QueryRowContext(ctx,
			`SELECT id FROM actions ORDER BY id DESC LIMIT 1 OFFSET ?`, keep,
		).Scan(&cutoff)
		if err == sql.ErrNoRows {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to find prune cutoff: %w", err)
		}

		deleted, err = NewSQLiteRepository(tx).DeleteUpTo(ctx, cutoff.Int64)
		return err
	})
	return deleted, err
}

func (j *Journal) Close() error {
	return j.db.Close()
}
