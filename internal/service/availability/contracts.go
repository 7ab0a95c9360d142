package availability

import (
	"context"

	"github.com/hotelops/booking-service/internal/domain"
	"github.com/hotelops/booking-service/internal/infra/storage/contract"
)

// CatalogRepository reads the bookable-service catalog.
type CatalogRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Servicio, error)
}

// SlotRepository reads availability slot definitions.
type SlotRepository interface {
	GetActiveByServicio(ctx context.Context, servicioID int64) ([]*domain.AvailabilitySlot, error)
}

// ContractRepository reads the contracted services occupying a slot key.
type ContractRepository interface {
	GetBySlotKey(ctx context.Context, filter contract.SlotKeyFilter) ([]*domain.ServicioContratado, error)
}

// Logger is the logging surface the engine needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
