package get_availability

import "errors"

var (
	// ErrServicioNotFound is returned when the catalog service does not exist.
	ErrServicioNotFound = errors.New("get_availability: servicio not found")

	// ErrInvalidInput is returned on malformed request data.
	ErrInvalidInput = errors.New("get_availability: invalid input data")

	// ErrInternal is returned on internal usecase errors.
	ErrInternal = errors.New("get_availability: internal error")
)
