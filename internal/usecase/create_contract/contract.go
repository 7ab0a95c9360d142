package create_contract

import (
	"context"
	"time"

	"github.com/hotelops/booking-service/internal/domain"
	"github.com/hotelops/booking-service/pkg/types"
)

// ContractRepository is the persistence surface for contracted services.
type ContractRepository interface {
	Create(ctx context.Context, contract *domain.ServicioContratado) (*domain.ServicioContratado, error)
}

// CatalogRepository looks up the service catalog entry being contracted.
type CatalogRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Servicio, error)
}

// ReservationRepository checks the reservation a contract is attached to.
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reserva, error)
}

// AvailabilityEngine runs the capacity admission check.
type AvailabilityEngine interface {
	CanAdmit(ctx context.Context, servicioID int64, fecha time.Time, horaInicio types.TimeString, cantidad, numeroPersonas int) error
}

// TransactionManager runs the admission check and the insert in one
// serializable transaction.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger is the logging surface the usecase needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
