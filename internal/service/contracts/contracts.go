package contracts

import (
	"context"

	"github.com/hotelops/booking-service/internal/domain"
)

// ContractRepository is the persistence surface for contracted services.
type ContractRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.ServicioContratado, error)
	GetByReservaID(ctx context.Context, reservaID int64) ([]*domain.ServicioContratado, error)
	UpdateEstado(ctx context.Context, id int64, estado domain.EstadoServicio) error
	Cancel(ctx context.Context, id int64, motivo *string) error
}

// Notifier delivers completion notifications through the external
// messaging collaborator.
type Notifier interface {
	NotifyServiceCompleted(ctx context.Context, key string, servicioContratadoID int64) error
}

// Logger is the logging surface the service needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
