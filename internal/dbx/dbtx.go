// Package dbx provides the small database abstractions shared by the
// repositories and services: the DBTX handle implemented by both *sql.DB and
// *sql.Tx, transaction runners, and driver error classification.
package dbx

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is the subset of database/sql used by the repositories.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// TxFunc is a unit of work executed against a transactional handle.
type TxFunc func(ctx context.Context, tx DBTX) error

// Runner executes a TxFunc atomically. Services depend on a Runner rather
// than on *sql.DB so that tests can substitute Direct.
type Runner func(ctx context.Context, fn TxFunc) error

// WithTx begins a transaction, runs fn and commits. Any error or panic from
// fn rolls the transaction back; panics are rethrown after the rollback.
func WithTx(ctx context.Context, db *sql.DB, opts *sql.TxOptions, fn TxFunc) (err error) {
	tx, err := db.BeginTx(ctx, opts)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		err = tx.Commit()
	}()

	return fn(ctx, tx)
}

// NewRunner returns a Runner that wraps every call in its own transaction
// on db.
func NewRunner(db *sql.DB, opts *sql.TxOptions) Runner {
	return func(ctx context.Context, fn TxFunc) error {
		return WithTx(ctx, db, opts, fn)
	}
}

// Direct returns a Runner that hands h to fn without opening a transaction.
func Direct(h DBTX) Runner {
	return func(ctx context.Context, fn TxFunc) error {
		return fn(ctx, h)
	}
}

// pgUniqueViolation is the SQLSTATE raised for unique constraint violations.
const pgUniqueViolation = "23505"

// IsUniqueViolation reports whether err carries a Postgres unique constraint
// violation.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
