package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// TxGetter returns the transaction bound to ctx, or nil.
type TxGetter func(ctx context.Context) *sqlx.Tx

// executor prefers the request transaction over the pool.
func executor(ctx context.Context, db *sqlx.DB, txGetter TxGetter) sqlx.ExtContext {
	if txGetter != nil {
		if tx := txGetter(ctx); tx != nil {
			return tx
		}
	}
	return db
}
