package contracts

import "errors"

var (
	// ErrContractNotFound is returned when the contracted service does not exist.
	ErrContractNotFound = errors.New("contract not found")

	// ErrContractCancelled is returned when a confirmation arrives for a
	// cancelled contract. That is a data error, never silently accepted.
	ErrContractCancelled = errors.New("contract is cancelled")

	// ErrInvalidTransition is returned when a lifecycle operation is
	// attempted out of order.
	ErrInvalidTransition = errors.New("invalid contract state transition")

	// ErrMotivoTooLong is returned when the cancellation reason exceeds
	// the stored column length.
	ErrMotivoTooLong = errors.New("cancellation reason too long")

	// ErrInternal is returned on unexpected failures.
	ErrInternal = errors.New("contracts service: internal error")
)
