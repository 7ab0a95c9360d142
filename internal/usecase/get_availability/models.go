package get_availability

import (
	"time"

	"github.com/hotelops/booking-service/pkg/types"
)

// Request selects the service whose slots are listed. Fecha is optional;
// when present the response carries occupancy for that date.
type Request struct {
	ServicioID int64
	Fecha      *time.Time
}

// Slot is one availability window of the service.
type Slot struct {
	ID         int64
	DiaSemana  *time.Weekday // nil covers every day
	HoraInicio types.TimeString
	HoraFin    *types.TimeString
	FixedTime  bool
	CupoMaximo int

	// Occupancy for the requested date, nil when no fecha was given or
	// the slot does not cover that day.
	Ocupados    *int
	Disponibles *int
}

// Response lists the active slots of a service.
type Response struct {
	ServicioID int64
	Fecha      *time.Time
	Slots      []Slot
}
