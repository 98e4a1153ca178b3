package tx

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
)

// TxRepository hands out the short transactions the reservation and order
// paths run in. Each reserve attempt and each webhook application is its own
// transaction; nothing here spans requests.
type TxRepository interface {
	BeginTx(ctx context.Context) (*sqlx.Tx, error)
	CommitTx(tx *sqlx.Tx) error
	RollbackTx(tx *sqlx.Tx) error
}

type sqlTx struct {
	db *sqlx.DB
}

func NewTxRepository(db *sqlx.DB) TxRepository {
	return &sqlTx{db: db}
}

func (r *sqlTx) BeginTx(ctx context.Context) (*sqlx.Tx, error) {
	return r.db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
}

func (r *sqlTx) CommitTx(tx *sqlx.Tx) error {
	return tx.Commit()
}

func (r *sqlTx) RollbackTx(tx *sqlx.Tx) error {
	return tx.Rollback()
}
