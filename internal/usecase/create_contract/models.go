package create_contract

import (
	"time"

	"github.com/hotelops/booking-service/pkg/types"
)

// Request carries the data needed to contract a service.
type Request struct {
	ServicioID     int64            // catalog service being contracted
	ReservaID      *int64           // reservation the contract belongs to (optional)
	ClienteID      *int64           // direct client when not tied to a reservation
	Fecha          time.Time        // date of the service (no time component)
	HoraInicio     types.TimeString // requested start time, e.g. "10:00"
	Cantidad       int              // contracted units
	NumeroPersonas int              // people covered by the contract
	Notas          *string          // optional free-form notes
}

// Response is the created contract as returned to the caller.
type Response struct {
	ID             int64
	ServicioID     int64
	ReservaID      *int64
	ClienteID      *int64
	Fecha          time.Time
	HoraInicio     types.TimeString
	Cantidad       int
	NumeroPersonas int
	Estado         string

	// Denormalized catalog data, frozen at contracting time.
	NombreServicio string
	PrecioUnitario float64
	Notas          *string

	CreadoEn      time.Time
	ActualizadoEn time.Time
}
