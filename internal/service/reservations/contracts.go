package reservations

import (
	"context"

	"github.com/hotelops/booking-service/internal/domain"
)

// ReservationRepository is the persistence surface for reservations and
// their room line items.
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reserva, error)
	GetLineItems(ctx context.Context, reservaID int64) ([]*domain.ReservaHabitacion, error)
	SetActiva(ctx context.Context, id int64, activa bool) error
	SetLineItemsActiva(ctx context.Context, reservaID int64, activa bool) error
}

// TransactionManager runs a function inside one database transaction.
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger is the logging surface the service needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
