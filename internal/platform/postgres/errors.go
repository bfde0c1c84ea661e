package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/openblog/api/internal/store"
)

// PostgreSQL error codes
const (
	// uniqueViolationCode is the PostgreSQL error code for unique constraint violations
	uniqueViolationCode = "23505"

	// foreignKeyViolationCode is the PostgreSQL error code for foreign key violations
	foreignKeyViolationCode = "23503"

	// checkViolationCode is the PostgreSQL error code for check constraint violations
	checkViolationCode = "23514"

	// notNullViolationCode is the PostgreSQL error code for not null violations
	notNullViolationCode = "23502"
)

// Unique constraint names from the migrations. MapError uses them to pick
// the entity-specific duplicate error, so the application-level uniqueness
// pre-check losing a race still surfaces as the right conflict.
const (
	authorEmailKey  = "authors_email_key"
	categoryNameKey = "categories_name_key"
	postTitleKey    = "posts_title_key"
	userUsernameKey = "users_username_key"
	userEmailKey    = "users_email_key"
)

// MapError maps a database error to an appropriate store error, wrapping the
// original to preserve context. Every database operation routes its errors
// through here so classification stays consistent.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %v", store.ErrNotFound, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolationCode:
			return fmt.Errorf("%w: %v", duplicateErrorFor(pgErr.ConstraintName), err)
		case foreignKeyViolationCode:
			return fmt.Errorf(
				"%w: foreign key violation (%s): %v",
				store.ErrInvalidEntity,
				pgErr.ConstraintName,
				err,
			)
		case checkViolationCode:
			return fmt.Errorf(
				"%w: check constraint violation (%s): %v",
				store.ErrInvalidEntity,
				pgErr.ConstraintName,
				err,
			)
		case notNullViolationCode:
			return fmt.Errorf(
				"%w: not null violation (%s.%s): %v",
				store.ErrInvalidEntity,
				pgErr.TableName,
				pgErr.ColumnName,
				err,
			)
		}
	}

	return err
}

// duplicateErrorFor picks the entity-specific duplicate sentinel for a
// unique constraint name, falling back to the generic duplicate error.
func duplicateErrorFor(constraint string) error {
	switch constraint {
	case authorEmailKey, userEmailKey:
		return store.ErrEmailExists
	case categoryNameKey:
		return store.ErrCategoryNameExists
	case postTitleKey:
		return store.ErrTitleExists
	case userUsernameKey:
		return store.ErrUsernameExists
	default:
		return store.ErrDuplicate
	}
}

// IsNotFound reports whether the error maps to a missing row.
func IsNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || errors.Is(err, store.ErrNotFound)
}
