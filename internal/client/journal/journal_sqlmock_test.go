package journal

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/outreach/internal/client/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockJournal(t *testing.T) (*Journal, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return New(db, nil), mock
}

func TestRecord_WriteFailureIsSwallowed(t *testing.T) {
	j, mock := newMockJournal(t)

	mock.ExpectExec("INSERT INTO actions").
		WithArgs(sqlmock.AnyArg(), "profiles", "add_note", "42", int64(0), "boom", sqlmock.AnyArg()).
		WillReturnError(errors.New("disk I/O error"))

	j.Record(context.Background(), store.Event{
		Store:    "profiles",
		Action:   store.OpAddNote,
		EntityID: "42",
		Err:      errors.New("boom"),
		At:       time.Now(),
	})

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPrune_RollsBackWhenDeleteFails(t *testing.T) {
	j, mock := newMockJournal(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM actions").
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(5)))
	mock.ExpectExec("DELETE FROM actions").
		WithArgs(int64(5)).
		WillReturnError(errors.New("database is locked"))
	mock.ExpectRollback()

	n, err := j.Prune(context.Background(), 2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to prune journal")
	assert.Zero(t, n)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPrune_NothingToDeleteCommits(t *testing.T) {
	j, mock := newMockJournal(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM actions").
		WithArgs(int64(10)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectCommit()

	n, err := j.Prune(context.Background(), 10)
	require.NoError(t, err)
	assert.Zero(t, n)
	require.NoError(t, mock.ExpectationsWereMet())
}
