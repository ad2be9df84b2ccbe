// Package store persists accounts and messages through bun. Stores are plain
// CRUD primitives: they enforce only what the schema enforces, and report
// failures as apperr kinds.
package store

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"
)

const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "postgres"

	pqUniqueViolation = "23505"

	// sqliteBusyTimeout is how long a writer waits on a lock held by another
	// process, such as the messages tool running beside the server.
	sqliteBusyTimeout = "_busy_timeout=5000"
)

//go:embed schema/*.sql
var schemaFS embed.FS

// Open connects to the database behind dsn and checks it is reachable.
func Open(ctx context.Context, driver, dsn string) (*bun.DB, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, fmt.Errorf("store: dsn is required")
	}

	var db *bun.DB
	switch driver {
	case DriverSQLite:
		sqldb, err := sql.Open(DriverSQLite, sqliteDSN(dsn))
		if err != nil {
			return nil, fmt.Errorf("store: open sqlite: %w", err)
		}
		// One connection serialises writers and keeps shared-cache memory
		// databases alive for the lifetime of the pool.
		sqldb.SetMaxOpenConns(1)
		db = bun.NewDB(sqldb, sqlitedialect.New())
	case DriverPostgres:
		sqldb, err := sql.Open(DriverPostgres, dsn)
		if err != nil {
			return nil, fmt.Errorf("store: open postgres: %w", err)
		}
		db = bun.NewDB(sqldb, pgdialect.New())
	default:
		return nil, fmt.Errorf("store: unsupported driver %q", driver)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("store: ping %s: %w", driver, err)
	}
	return db, nil
}

// sqliteDSN adds a busy timeout unless the DSN already sets one.
func sqliteDSN(dsn string) string {
	if strings.Contains(dsn, "_timeout=") {
		return dsn
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&" + sqliteBusyTimeout
	}
	return dsn + "?" + sqliteBusyTimeout
}

// CreateSchema creates the account and message tables if they are missing.
func CreateSchema(ctx context.Context, db *bun.DB) error {
	if db == nil {
		return fmt.Errorf("store: db is required")
	}

	name := "schema/sqlite.sql"
	if db.Dialect().Name() == dialect.PG {
		name = "schema/postgres.sql"
	}
	script, err := schemaFS.ReadFile(name)
	if err != nil {
		return fmt.Errorf("store: read %s: %w", name, err)
	}

	for _, stmt := range strings.Split(string(script), ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("store: apply schema: %w", err)
		}
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code == sqlite3.ErrConstraint &&
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == pqUniqueViolation
	}
	return false
}

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
