// Package db opens the SQLite database backing the blog and keeps its
// schema current through embedded, versioned migrations.
package db

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

// Open opens (or creates) a local SQLite database file and applies
// pending migrations. Migration files live under
// internal/db/migrations as NNNN_name.up.sql / NNNN_name.down.sql;
// only versions not yet recorded in schema_migrations are run.
func Open(path string) (*sql.DB, error) {
	if path == "" {
		path = "blog.db"
	}
	d, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if err := d.Ping(); err != nil {
		_ = d.Close()
		return nil, err
	}
	// journal_mode is not supported everywhere (e.g. in-memory), so
	// its error is ignored; the other pragmas must take effect.
	_, _ = d.Exec(`PRAGMA journal_mode=WAL`)
	if _, err := d.Exec(`PRAGMA busy_timeout=5000`); err != nil {
		_ = d.Close()
		return nil, err
	}
	if _, err := d.Exec(`PRAGMA foreign_keys=ON`); err != nil {
		_ = d.Close()
		return nil, err
	}
	if err := migrate(d); err != nil {
		_ = d.Close()
		return nil, err
	}
	return d, nil
}
