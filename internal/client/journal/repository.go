package journal

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/outreach/internal/dbx"
)

// Entry is one journal row.
type Entry struct {
	ID       int64
	At       time.Time
	Store    string
	Action   string
	EntityID string
	OK       bool
	Error    string
	Elapsed  time.Duration
}

type Repository interface {
	Add(ctx context.Context, e Entry) (int64, error)
	Recent(ctx context.Context, limit int) ([]Entry, error)
	RecentForStore(ctx context.Context, store string, limit int) ([]Entry, error)
	Count(ctx context.Context) (int64, error)
	DeleteUpTo(ctx context.Context, id int64) (int64, error)
}

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Add(ctx context.Context, e Entry) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO actions (at_ms, store, action, entity_id, ok, error, elapsed_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, e.At.UnixMilli(), e.Store, e.Action, e.EntityID, boolToInt(e.OK), e.Error, e.Elapsed.Milliseconds())
	if err != nil {
		return 0, fmt.Errorf("failed to add journal entry: %w", err)
	}
	return res.LastInsertId()
}

const selectEntries = `SELECT id, at_ms, store, action, entity_id, ok, error, elapsed_ms FROM actions`

// Recent returns up to limit entries, newest first.
func (r *SQLiteRepository) Recent(ctx context.Context, limit int) ([]Entry, error) {
	return r.query(ctx, selectEntries+` ORDER BY id DESC LIMIT ?`, limit)
}

func (r *SQLiteRepository) RecentForStore(ctx context.Context, store string, limit int) ([]Entry, error) {
	return r.query(ctx, selectEntries+` WHERE store = ? ORDER BY id DESC LIMIT ?`, store, limit)
}

func (r *SQLiteRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM actions`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count journal entries: %w", err)
	}
	return n, nil
}

// DeleteUpTo removes every entry with id <= id.
func (r *SQLiteRepository) DeleteUpTo(ctx context.Context, id int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM actions WHERE id <= ?`, id)
	if err != nil {
		return 0, fmt.Errorf("failed to prune journal: %w", err)
	}
	return res.RowsAffected()
}

func (r *SQLiteRepository) query(ctx context.Context, q string, args ...any) ([]Entry, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list journal entries: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var (
			e         Entry
			atMS      int64
			ok        int
			elapsedMS int64
		)
		if err := rows.Scan(&e.ID, &atMS, &e.Store, &e.Action, &e.EntityID, &ok, &e.Error, &elapsedMS); err != nil {
			return nil, fmt.Errorf("failed to scan journal entry: %w", err)
		}
		e.At = time.UnixMilli(atMS)
		e.OK = ok != 0
		e.Elapsed = time.Duration(elapsedMS) * time.Millisecond
		out = append(out, e)
	}
	return out, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
