package db

import (
	"context"
	"database/sql"
	"fmt"
)

// UnitOfWork runs a callback inside one transaction. The DBTX handed to the
// callback is the open *sql.Tx; any error from the callback rolls everything
// back, so partial workspace imports never reach the database.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx DBTX) error) error
}

type sqliteUnitOfWork struct {
	db *sql.DB
}

// NewSQLiteUnitOfWork wraps the given connection in a UnitOfWork.
func NewSQLiteUnitOfWork(database *sql.DB) UnitOfWork {
	return &sqliteUnitOfWork{db: database}
}

func (u *sqliteUnitOfWork) WithinTx(ctx context.Context, fn func(ctx context.Context, tx DBTX) error) error {
	tx, err := u.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	// Roll back on panic so a poisoned connection is never reused.
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(ctx, tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("rollback failed: %v (original error: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}
