package contract

import "errors"

var (
	// ErrContractNotFound is returned when the contracted service does not exist.
	ErrContractNotFound = errors.New("contract.repository: contracted service not found")

	// ErrBuildQuery is returned when the SQL query cannot be built.
	ErrBuildQuery = errors.New("contract.repository: failed to build query")

	// ErrExecQuery is returned when the SQL query fails to execute.
	ErrExecQuery = errors.New("contract.repository: failed to execute query")

	// ErrScanRow is returned when a result row cannot be scanned.
	ErrScanRow = errors.New("contract.repository: failed to scan row")
)
