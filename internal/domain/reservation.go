package domain

import "time"

// EstadoReserva is the reservation's descriptive status. It evolves
// independently of the Activa flag, which is the single source of truth for
// whether the reservation (and every line item) is in effect.
type EstadoReserva string

const (
	ReservaPendiente  EstadoReserva = "Pendiente"
	ReservaConfirmada EstadoReserva = "Confirmada"
	ReservaCompletada EstadoReserva = "Completada"
	ReservaCancelada  EstadoReserva = "Cancelada"
)

// Reserva is a multi-room reservation belonging to one customer.
type Reserva struct {
	ID          int64
	ClienteID   int64
	FechaInicio time.Time
	FechaFin    time.Time
	Activa      bool
	Estado      EstadoReserva
	CreadoEn    time.Time

	// Loaded on demand; never embedded back-references
	Habitaciones []ReservaHabitacion
}

// ReservaHabitacion is one room line item of a reservation. Its Activa flag
// must always equal the parent reservation's flag; the cascade in the
// reservation lifecycle is the only writer.
type ReservaHabitacion struct {
	ID           int64
	ReservaID    int64
	HabitacionID int64
	Activa       bool
}
