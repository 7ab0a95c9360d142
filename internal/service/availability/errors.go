package availability

import "errors"

var (
	// ErrServicioNotFound is returned when the bookable service does not exist.
	ErrServicioNotFound = errors.New("availability: service not found")

	// ErrNotBookable is returned when no active slot covers the requested
	// day and time. Deliberately distinct from a full slot.
	ErrNotBookable = errors.New("availability: service is not bookable at this day/time")

	// ErrCapacityExceeded is returned when the requested quantity does not
	// fit into the remaining capacity of the slot key.
	ErrCapacityExceeded = errors.New("availability: slot capacity exceeded")

	// ErrInternal is returned on unexpected failures.
	ErrInternal = errors.New("availability: internal error")
)
