package create_payment_intent

import "errors"

var (
	// ErrReservaNotFound is returned when the reservation does not exist.
	ErrReservaNotFound = errors.New("create_payment_intent: reserva not found")

	// ErrContractNotFound is returned when the contracted service does not exist.
	ErrContractNotFound = errors.New("create_payment_intent: servicio contratado not found")

	// ErrGateway is returned when the payment provider rejects the intent.
	ErrGateway = errors.New("create_payment_intent: payment gateway error")

	// ErrInvalidInput is returned on malformed request data.
	ErrInvalidInput = errors.New("create_payment_intent: invalid input data")

	// ErrInternal is returned on internal usecase errors.
	ErrInternal = errors.New("create_payment_intent: internal error")
)
