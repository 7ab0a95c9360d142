package simpletxmanager

import (
	"context"
	"database/sql"

	"github.com/hotelops/booking-service/pkg/dbmetrics"
	"github.com/hotelops/booking-service/pkg/txmanager"
)

// sqlDBBeginner adapts a plain *sql.DB to txmanager.TxBeginner.
type sqlDBBeginner struct {
	db *sql.DB
}

func (b *sqlDBBeginner) BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	tx, err := b.db.BeginTx(ctx, opts)
	if err != nil {
		return nil, err
	}
	return &dbmetrics.SqlTxWrapper{Tx: tx}, nil
}

// NewTransactionManager creates a transaction manager over a plain *sql.DB,
// for deployments running without the metrics wrapper.
func NewTransactionManager(db *sql.DB) *txmanager.TransactionManager {
	return txmanager.NewTransactionManager(&sqlDBBeginner{db: db})
}
