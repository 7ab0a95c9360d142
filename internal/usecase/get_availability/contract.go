package get_availability

import (
	"context"
	"time"

	"github.com/hotelops/booking-service/internal/domain"
)

// CatalogRepository looks up the catalog service whose slots are listed.
type CatalogRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Servicio, error)
}

// SlotRepository lists the availability slots of a service.
type SlotRepository interface {
	GetActiveByServicio(ctx context.Context, servicioID int64) ([]*domain.AvailabilitySlot, error)
}

// AvailabilityEngine computes per-slot occupancy for a concrete date.
type AvailabilityEngine interface {
	SlotCapacity(ctx context.Context, servicio *domain.Servicio, slot *domain.AvailabilitySlot, fecha time.Time) (*domain.CapacityReport, error)
}

// Logger is the logging surface the usecase needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
