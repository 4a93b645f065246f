// Package journal records zone-(re)load history in a small SQLite
// database so the management API and operators can see when the
// served zone last changed and how big it was, independent of
// whatever process log rotation has done to stdout.
//
// Storage uses modernc.org/sqlite (the teacher's own pure-Go SQLite
// driver, see internal/database/db.go) with the teacher's own
// idiom for schema management: an embedded, idempotent schema.sql
// applied via CREATE TABLE IF NOT EXISTS rather than a migration
// runner (see DESIGN.md for why golang-migrate's SQLite driver could
// not be wired here without an ungrounded cgo dependency).
package journal

import (
	"database/sql"
	_ "embed"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// Journal is a handle to the reload history database. It is safe for
// concurrent use; database/sql pools connections internally.
type Journal struct {
	db *sql.DB
}

// Open opens or creates the journal database at path. Passing ":memory:"
// opens a private, shared-cache in-memory database instead of touching
// disk, for tests that only need the round-trip behavior.
func Open(path string) (*Journal, error) {
	var dsn string
	maxConns := 4
	if path == ":memory:" {
		dsn = "file::memory:?cache=shared"
		maxConns = 1 // a second connection to a private cache would see an empty database.
	} else {
		dsn = fmt.Sprintf("file:%s?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL", path)
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("journal: open %s: %w", path, err)
	}
	db.SetMaxOpenConns(maxConns)

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("journal: apply schema: %w", err)
	}
	return &Journal{db: db}, nil
}

// Close closes the underlying database connection.
func (j *Journal) Close() error {
	return j.db.Close()
}

// Reload is a single zone (re)load event.
type Reload struct {
	Generation  uint64
	LoadedAt    time.Time
	Source      string
	RecordCount int
	Origin      string
}

// RecordReload appends r to the journal. Generation must be strictly
// increasing across calls; it is also the table's primary key so a
// caller that races itself will fail loudly rather than silently
// duplicate a row.
func (j *Journal) RecordReload(r Reload) error {
	_, err := j.db.Exec(
		`INSERT INTO zone_reloads (generation, loaded_at, source, record_count, origin) VALUES (?, ?, ?, ?, ?)`,
		r.Generation, r.LoadedAt.UTC().Format(time.RFC3339), r.Source, r.RecordCount, r.Origin,
	)
	if err != nil {
		return fmt.Errorf("journal: record reload: %w", err)
	}
	return nil
}

// Recent returns up to limit of the most recent reloads, newest first.
func (j *Journal) Recent(limit int) ([]Reload, error) {
	rows, err := j.db.Query(
		`SELECT generation, loaded_at, source, record_count, origin
		   FROM zone_reloads ORDER BY generation DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("journal: query recent reloads: %w", err)
	}
	defer rows.Close()

	var out []Reload
	for rows.Next() {
		var r Reload
		var loadedAt string
		if err := rows.Scan(&r.Generation, &loadedAt, &r.Source, &r.RecordCount, &r.Origin); err != nil {
			return nil, fmt.Errorf("journal: scan reload row: %w", err)
		}
		r.LoadedAt, err = time.Parse(time.RFC3339, loadedAt)
		if err != nil {
			return nil, fmt.Errorf("journal: parse loaded_at: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
