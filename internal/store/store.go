// Package store owns the hop database: a single SQLite file holding the
// visit registry, with the fuzzy scorer registered as a deterministic
// scalar function so ranking happens inside the query itself.
package store

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
	"sync"

	"github.com/rnwolfe/hop/internal/config"
	"github.com/rnwolfe/hop/internal/fuzzy"
	"modernc.org/sqlite"
)

// DB wraps the SQLite connection.
type DB struct {
	conn *sql.DB
}

// Open opens (or creates) the hop database.
func Open() (*DB, error) {
	paths := config.GetPaths()
	if err := paths.EnsureDirs(); err != nil {
		return nil, fmt.Errorf("creating data dirs: %w", err)
	}

	return open(paths.DBFile + "?_journal_mode=WAL&_busy_timeout=5000")
}

// OpenMemory opens a throwaway in-memory database with the same schema
// and registered functions as the real one.
func OpenMemory() (*DB, error) {
	return open(":memory:")
}

func open(dsn string) (*DB, error) {
	if err := registerScoreFunc(); err != nil {
		return nil, fmt.Errorf("registering fuzzy_score: %w", err)
	}

	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Performance pragmas
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA temp_store=MEMORY",
	}
	for _, p := range pragmas {
		if _, err := conn.Exec(p); err != nil {
			conn.Close()
			return nil, fmt.Errorf("setting pragma %q: %w", p, err)
		}
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

// Conn returns the raw sql.DB for direct queries.
func (db *DB) Conn() *sql.DB {
	return db.conn
}

// migrate runs all schema migrations.
func (db *DB) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS visits (
			path TEXT PRIMARY KEY,
			visit_count INTEGER NOT NULL DEFAULT 0,
			last_visited TEXT,
			created_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_visits_last_visited ON visits(last_visited)`,
		// Key-value store for misc state
		`CREATE TABLE IF NOT EXISTS kv (
			key TEXT PRIMARY KEY,
			value TEXT,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
	}

	for _, m := range migrations {
		if _, err := db.conn.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w\nSQL: %s", err, m)
		}
	}
	return nil
}

// Function registration is process-global in modernc.org/sqlite, so it
// runs exactly once no matter how many connections open.
var (
	registerOnce sync.Once
	registerErr  error
)

func registerScoreFunc() error {
	registerOnce.Do(func() {
		registerErr = sqlite.RegisterDeterministicScalarFunction(
			"fuzzy_score", 2, scoreFunc,
		)
	})
	return registerErr
}

// scoreFunc adapts fuzzy.Score to the driver boundary. Type coercion
// failures are invocation errors surfaced here; the scorer itself is
// total and never fails.
func scoreFunc(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	query, err := textArg(args[0])
	if err != nil {
		return nil, err
	}
	candidate, err := textArg(args[1])
	if err != nil {
		return nil, err
	}
	return fuzzy.Score(query, candidate), nil
}

func textArg(v driver.Value) (string, error) {
	switch s := v.(type) {
	case string:
		return s, nil
	case []byte:
		return string(s), nil
	default:
		return "", fmt.Errorf("fuzzy_score: want text argument, got %T", v)
	}
}
