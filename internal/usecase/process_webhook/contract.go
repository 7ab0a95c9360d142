package process_webhook

import (
	"context"

	"github.com/hotelops/booking-service/internal/domain"
	"github.com/hotelops/booking-service/internal/integrations/stripegw"
)

// EventVerifier authenticates a raw webhook payload and decodes it.
type EventVerifier interface {
	VerifyEvent(payload []byte, signature string) (*stripegw.Event, error)
}

// PaymentRepository is the persistence surface for payment rows.
type PaymentRepository interface {
	Create(ctx context.Context, pago *domain.Pago) (*domain.Pago, error)
	GetByExternalID(ctx context.Context, externalID string) (*domain.Pago, error)
	MarkProcessed(ctx context.Context, externalID string) (bool, error)
	UpdateEstado(ctx context.Context, externalID string, estado domain.EstadoPago) error
}

// ContractLifecycle drives the contracted-service state machine.
type ContractLifecycle interface {
	Confirmar(ctx context.Context, id int64) error
	Cancelar(ctx context.Context, id int64, motivo *string) error
}

// ReservationLifecycle flips reservations active and inactive.
type ReservationLifecycle interface {
	Activate(ctx context.Context, id int64) error
	Deactivate(ctx context.Context, id int64) error
}

// Logger is the logging surface the usecase needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
