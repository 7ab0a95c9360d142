package contract

import (
	"context"
	"database/sql"

	"github.com/hotelops/booking-service/pkg/dbmetrics"
)

// Database executor interfaces shared with pkg/dbmetrics.
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor

// TxBeginner starts transactions. Implemented by *sql.DB and *dbmetrics.DB.
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error)
}
