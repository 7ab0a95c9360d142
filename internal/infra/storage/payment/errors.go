package payment

import "errors"

var (
	// ErrPagoNotFound is returned when no payment matches.
	ErrPagoNotFound = errors.New("payment.repository: payment not found")

	// ErrDuplicateExternalID is returned when a payment with the same
	// external transaction id already exists.
	ErrDuplicateExternalID = errors.New("payment.repository: duplicate external transaction id")

	// ErrBuildQuery is returned when the SQL query cannot be built.
	ErrBuildQuery = errors.New("payment.repository: failed to build query")

	// ErrExecQuery is returned when the SQL query fails to execute.
	ErrExecQuery = errors.New("payment.repository: failed to execute query")

	// ErrScanRow is returned when a result row cannot be scanned.
	ErrScanRow = errors.New("payment.repository: failed to scan row")
)
