package stripegw

import "errors"

var (
	// ErrGateway is returned when the payment gateway call fails.
	ErrGateway = errors.New("stripegw client: gateway request failed")

	// ErrInvalidSignature is returned when the webhook payload does not
	// match its signature header. Security-relevant: the caller must not
	// mutate anything on this error.
	ErrInvalidSignature = errors.New("stripegw client: invalid webhook signature")

	// ErrInvalidEvent is returned when a verified event cannot be parsed.
	ErrInvalidEvent = errors.New("stripegw client: invalid event payload")
)
