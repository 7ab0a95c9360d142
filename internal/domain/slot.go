package domain

import (
	"time"

	"github.com/hotelops/booking-service/pkg/types"
)

// AvailabilitySlot defines when and how many times a hotel service can be
// booked. Operator-managed, read-only to the booking core.
//
// FixedTime=true means one bookable instance at exactly HoraInicio;
// FixedTime=false means a continuous window [HoraInicio, HoraFin) whose
// bookings all share one occupancy pool.
type AvailabilitySlot struct {
	ID         int64
	ServicioID int64
	DiaSemana  *time.Weekday // nil = the slot applies every day
	HoraInicio types.TimeString
	HoraFin    *types.TimeString // nil for fixed-time slots
	FixedTime  bool
	CupoMaximo int
	Activo     bool

	CreadoEn      time.Time
	ActualizadoEn time.Time
}

// CoversDay reports whether the slot applies on the given calendar date.
// The slot's own calendar day decides, never a surrounding date range.
func (s *AvailabilitySlot) CoversDay(fecha time.Time) bool {
	if s.DiaSemana == nil {
		return true
	}
	return *s.DiaSemana == fecha.Weekday()
}

// CoversStart reports whether a requested start time is bookable in this
// slot. Fixed-time slots accept only their exact start; window slots accept
// any start inside [HoraInicio, HoraFin).
func (s *AvailabilitySlot) CoversStart(start types.TimeString) bool {
	if s.FixedTime {
		return start == s.HoraInicio
	}
	if s.HoraFin == nil {
		return !start.IsBefore(s.HoraInicio)
	}
	return !start.IsBefore(s.HoraInicio) && start.IsBefore(*s.HoraFin)
}

// CapacityReport is the availability engine's answer for one slot key.
type CapacityReport struct {
	Ocupados    int
	Disponibles int
	Slot        *AvailabilitySlot
}

// IsFull reports whether no capacity remains.
func (r *CapacityReport) IsFull() bool {
	return r.Disponibles <= 0
}
