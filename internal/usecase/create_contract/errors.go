package create_contract

import "errors"

var (
	// ErrServicioNotFound is returned when the catalog service does not exist.
	ErrServicioNotFound = errors.New("create_contract: servicio not found")

	// ErrServicioNotAvailable is returned when the catalog service is disabled.
	ErrServicioNotAvailable = errors.New("create_contract: servicio is not available")

	// ErrReservaNotFound is returned when the referenced reservation does not exist.
	ErrReservaNotFound = errors.New("create_contract: reserva not found")

	// ErrNotBookable is returned when no availability slot covers the
	// requested date and start time.
	ErrNotBookable = errors.New("create_contract: no slot covers the requested date and time")

	// ErrCapacityExceeded is returned when the slot cannot absorb the
	// requested units.
	ErrCapacityExceeded = errors.New("create_contract: slot capacity exceeded")

	// ErrInvalidInput is returned on malformed request data.
	ErrInvalidInput = errors.New("create_contract: invalid input data")

	// ErrInternal is returned on internal usecase errors.
	ErrInternal = errors.New("create_contract: internal error")
)
