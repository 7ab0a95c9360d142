package domain

import (
	"time"

	"github.com/hotelops/booking-service/pkg/types"
)

// EstadoServicio represents the state of a contracted service.
type EstadoServicio string

const (
	EstadoPendiente  EstadoServicio = "PENDIENTE"
	EstadoConfirmado EstadoServicio = "CONFIRMADO"
	EstadoCompletado EstadoServicio = "COMPLETADO"
	EstadoCancelado  EstadoServicio = "CANCELADO"
)

// ServicioContratado is one concrete, quantity-bearing booking of a hotel
// service: the unit the availability engine measures occupancy against.
// It belongs either to a reservation or directly to a customer.
type ServicioContratado struct {
	ID             int64
	ServicioID     int64
	ReservaID      *int64 // nil when booked outside a room reservation
	ClienteID      *int64 // set when booked directly by a customer
	Fecha          time.Time
	HoraInicio     types.TimeString
	Cantidad       int
	NumeroPersonas int
	Estado         EstadoServicio

	// Denormalized catalog data, frozen at booking time
	NombreServicio string
	PrecioUnitario float64

	Notas *string

	MotivoCancelacion *string
	CanceladoEn       *time.Time

	CreadoEn      time.Time
	ActualizadoEn time.Time
}

// OccupiesCapacity reports whether the contract still consumes slot
// capacity. Occupancy is computed live, so a cancelled contract frees its
// capacity immediately.
func (s *ServicioContratado) OccupiesCapacity() bool {
	return s.Estado != EstadoCancelado
}

// CanBeConfirmed reports whether Confirmar is a state-changing transition.
func (s *ServicioContratado) CanBeConfirmed() bool {
	return s.Estado == EstadoPendiente
}

// CanBeCompleted reports whether Completar is allowed.
func (s *ServicioContratado) CanBeCompleted() bool {
	return s.Estado == EstadoConfirmado
}

// CanBeCancelled reports whether Cancelar is allowed.
func (s *ServicioContratado) CanBeCancelled() bool {
	return s.Estado == EstadoPendiente || s.Estado == EstadoConfirmado
}
