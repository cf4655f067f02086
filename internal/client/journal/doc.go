// Package journal persists a local log of store actions in SQLite so the
// operator can review what was changed, and what failed, across sessions.
//
// # Overview
//
// Journal implements store.Recorder: every settled store action becomes one
// row. Writes are best effort; a failed insert is logged and never fails the
// action that produced it. The schema is owned by goose migrations embedded
// in the migrations package and applied by OpenDB.
//
// # Data Model
//
// The actions table holds the time (unix milliseconds), store name, action
// name, entity id, outcome, error text and elapsed milliseconds. Rows are
// append-only; Prune trims everything but the newest entries in a single
// transaction.
//
// # Concurrency
//
// OpenDB caps the pool at one connection, so concurrent Record calls from
// different stores are serialised by database/sql.
//
// Key Types
//
//   - type Journal           store.Recorder plus read and prune helpers
//   - type Repository        interface over the actions table
//   - type SQLiteRepository  SQLite implementation over dbx.DBTX
//
// Typical Usage
//
//	db, _ := journal.OpenDB(ctx, "journal.db")
//	j := journal.New(db, logger)
//	stories := store.NewStoryStore(svc, nil, store.WithRecorder(j))
//	recent, _ := j.RecentForStore(ctx, "stories", 20)
//	_, _ = j.Prune(ctx, journal.DefaultKeep)
package journal
