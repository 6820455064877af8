// Package trm keeps a database transaction in the context so repositories
// take part in it without knowing who opened it.
package trm

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type Transaction interface {
	Commit() error
	Rollback() error
}

type txKey struct{}

func withTx(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

// ExtractTx returns the transaction carried by ctx, or nil.
func ExtractTx(ctx context.Context) *sqlx.Tx {
	tx, ok := ctx.Value(txKey{}).(*sqlx.Tx)
	if !ok {
		return nil
	}
	return tx
}

type Manager interface {
	BeginTx(ctx context.Context) (context.Context, Transaction, error)
	Do(ctx context.Context, callback func(ctx context.Context) error) (err error)
}

type Option func(*txManager)

// WithIsolation sets the isolation level of transactions opened by the manager.
func WithIsolation(level sql.IsolationLevel) Option {
	return func(m *txManager) {
		m.opts.Isolation = level
	}
}

type txManager struct {
	db   *sqlx.DB
	opts sql.TxOptions
}

func NewManager(db *sqlx.DB, opts ...Option) Manager {
	m := &txManager{db: db}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (t *txManager) BeginTx(ctx context.Context) (context.Context, Transaction, error) {
	tx, err := t.db.BeginTxx(ctx, &t.opts)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return withTx(ctx, tx), tx, nil
}

// Do runs callback in a transaction. A callback already running inside one
// joins it, and the outermost Do decides whether to commit.
func (t *txManager) Do(ctx context.Context, callback func(ctx context.Context) error) error {
	if ExtractTx(ctx) != nil {
		return callback(ctx)
	}

	ctx, tx, err := t.BeginTx(ctx)
	if err != nil {
		return err
	}

	if err := callback(ctx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			return errors.Join(err, fmt.Errorf("failed to rollback: %w", rbErr))
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
