// Package sqlite implements the account and audit repositories on top of a
// SQLite database, using the pure-Go modernc.org/sqlite driver.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

const defaultTimeout = 10 * time.Second

// Config captures the minimal settings required to open the database.
type Config struct {
	// Path is the database file. Use a file path; the service owns the file.
	Path    string
	Timeout time.Duration
}

// Connect opens the database, configures the pool, verifies connectivity with
// a ping, and applies the schema. The handle is opened once at startup and
// injected into the repositories; nothing reconnects per call.
func Connect(ctx context.Context, cfg Config) (*sql.DB, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)", cfg.Path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite open: %w", err)
	}

	// SQLite serialises writers; a single connection avoids SQLITE_BUSY
	// churn under concurrent registrations while keeping the uniqueness
	// constraint as the race arbiter.
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite ping: %w", err)
	}

	if err := bootstrap(pingCtx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// bootstrap creates the schema and seeds the two roles. It is idempotent:
// re-running it never duplicates rows or errors.
func bootstrap(ctx context.Context, db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS roles (
			id   INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT UNIQUE NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS users (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			username   TEXT UNIQUE NOT NULL,
			credential BLOB NOT NULL,
			email      TEXT UNIQUE NOT NULL,
			role_id    INTEGER NOT NULL REFERENCES roles(id),
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS audit_log (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			username   TEXT NOT NULL,
			action     TEXT NOT NULL,
			detail     TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMP NOT NULL
		)`,
		`INSERT OR IGNORE INTO roles (id, name) VALUES (1, 'General User')`,
		`INSERT OR IGNORE INTO roles (id, name) VALUES (2, 'Administrator')`,
	}

	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("sqlite bootstrap: %w", err)
		}
	}
	return nil
}
