package reservations

import "errors"

var (
	ErrReservaNotFound = errors.New("reservations.service: reserva not found")
	ErrInternal        = errors.New("reservations.service: internal error")
)
