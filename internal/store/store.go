// Package store is the SQLite audit log of LLM requests and solves. It is
// write-mostly: the TUI never restores state from it.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// connPragmas are applied by the driver to every pooled connection.
var connPragmas = []string{
	"journal_mode(WAL)",
	"busy_timeout(5000)",
	"foreign_keys(ON)",
	"synchronous(NORMAL)",
}

// Store owns the SQLite handle. Queries are assembled with ent's
// dialect-aware SQL builder.
type Store struct {
	drv *entsql.Driver
	seq *sequenceCounter
}

// Open opens or creates the database file at path and brings the schema up
// to date.
func Open(path string) (*Store, error) {
	q := url.Values{"_pragma": connPragmas}
	db, err := sql.Open("sqlite", path+"?"+q.Encode())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := migrate(context.Background(), db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate %s: %w", path, err)
	}
	return &Store{
		drv: entsql.OpenDB(dialect.SQLite, db),
		seq: &sequenceCounter{db: db},
	}, nil
}

// DB exposes the handle for ad-hoc queries.
func (s *Store) DB() *sql.DB {
	return s.drv.DB()
}

func (s *Store) Dialect() string {
	return s.drv.Dialect()
}

func (s *Store) Close() error {
	return s.drv.Close()
}

// EventRepo returns the event repository backed by this store.
func (s *Store) EventRepo() *Events {
	return &Events{db: s.drv.DB(), b: entsql.Dialect(s.drv.Dialect()), seq: s.seq}
}

// DefaultDBPath is cybercalc/cybercalc.db under $XDG_DATA_HOME (default
// ~/.local/share). The parent directory is created.
func DefaultDBPath() (string, error) {
	base := os.Getenv("XDG_DATA_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		base = filepath.Join(home, ".local", "share")
	}
	p := filepath.Join(base, "cybercalc", "cybercalc.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
