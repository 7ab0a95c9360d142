package process_webhook

import "errors"

var (
	// ErrInvalidSignature is returned when the payload fails signature
	// verification. Nothing is mutated in that case.
	ErrInvalidSignature = errors.New("process_webhook: invalid event signature")

	// ErrInternal is returned on transient failures only (storage,
	// unexpected repository errors). The provider redelivers the event,
	// and because the payment row has not been marked processed the
	// retry re-applies the effect. Permanent dispatch failures are
	// logged and acknowledged instead, so the provider stops.
	ErrInternal = errors.New("process_webhook: internal error")
)
