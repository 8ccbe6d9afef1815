package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the store handle injected into repositories.
// Satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type DB interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type txOptionsBeginner interface {
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

var ReadOnly = pgx.TxOptions{AccessMode: pgx.ReadOnly}

// WithTx runs fn inside a single transaction: commit when fn returns nil,
// rollback when it returns an error or panics.
// Called with a pgx.Tx as db, it runs in a savepoint of that transaction.
func WithTx(ctx context.Context, db DB, fn func(tx pgx.Tx) error) error {
	return WithTxOptions(ctx, db, pgx.TxOptions{}, fn)
}

// WithTxOptions is WithTx with explicit transaction options.
// Options are ignored when db cannot begin a transaction with options (e.g. it already is one).
func WithTxOptions(ctx context.Context, db DB, opts pgx.TxOptions, fn func(tx pgx.Tx) error) (err error) {
	var tx pgx.Tx
	if b, ok := db.(txOptionsBeginner); ok {
		tx, err = b.BeginTx(ctx, opts)
	} else {
		tx, err = db.Begin(ctx)
	}
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		}

		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				err = fmt.Errorf("failed to rollback transaction: %w: %w", rollbackErr, err)
			}
			return
		}

		if commitErr := tx.Commit(ctx); commitErr != nil {
			err = fmt.Errorf("commit tx: %w", commitErr)
		}
	}()

	return fn(tx)
}
