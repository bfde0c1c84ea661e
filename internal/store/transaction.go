package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/openblog/api/internal/platform/logger"
)

// TxFn is a function that executes within a database transaction.
// The transaction is committed if the function returns nil, or rolled back
// if it returns an error.
type TxFn func(ctx context.Context, tx *sql.Tx) error

// RunInTransaction executes fn within a database transaction opened with the
// given options. Write operations that touch several tables (a post and its
// association rows, a user and its role grants) go through here so partial
// graphs are never observably persisted.
func RunInTransaction(ctx context.Context, db *sql.DB, opts *sql.TxOptions, fn TxFn) error {
	log := logger.FromContext(ctx)

	tx, err := db.BeginTx(ctx, opts)
	if err != nil {
		log.Error("failed to begin transaction",
			slog.String("error", err.Error()))
		return fmt.Errorf("%w: begin: %v", ErrTransactionFailed, err)
	}

	defer func() {
		if p := recover(); p != nil {
			if txErr := tx.Rollback(); txErr != nil {
				log.Error("failed to roll back transaction after panic",
					slog.String("error", txErr.Error()),
					slog.Any("panic", p))
			}
			panic(p)
		}
	}()

	if err := fn(ctx, tx); err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			log.Error("failed to roll back transaction",
				slog.String("rollback_error", rollbackErr.Error()),
				slog.String("original_error", err.Error()))
			return fmt.Errorf("%w: rollback failed: %v (original error: %s)",
				ErrTransactionFailed, rollbackErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		log.Error("failed to commit transaction",
			slog.String("error", err.Error()))
		return fmt.Errorf("%w: commit: %v", ErrTransactionFailed, err)
	}

	return nil
}

// RunInReadOnlyTransaction executes fn in a read-only transaction. Lookup
// operations that span several queries use it to read a consistent snapshot
// without taking write locks.
func RunInReadOnlyTransaction(ctx context.Context, db *sql.DB, fn TxFn) error {
	return RunInTransaction(ctx, db, &sql.TxOptions{ReadOnly: true}, fn)
}
