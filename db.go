package main

import (
	"context"

	"socialmedia/internal/store"

	"github.com/uptrace/bun"
)

// openDB connects to the configured database and makes sure the tables exist.
func openDB(ctx context.Context, driver, dsn string) (*bun.DB, error) {
	db, err := store.Open(ctx, driver, dsn)
	if err != nil {
		return nil, err
	}
	if err := store.CreateSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}
