package create_payment_intent

import (
	"context"

	"github.com/hotelops/booking-service/internal/domain"
	"github.com/hotelops/booking-service/internal/integrations/stripegw"
)

// PaymentRepository persists payment rows.
type PaymentRepository interface {
	Create(ctx context.Context, pago *domain.Pago) (*domain.Pago, error)
}

// ContractRepository checks that a contracted service exists.
type ContractRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.ServicioContratado, error)
}

// ReservationRepository checks that a reservation exists.
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reserva, error)
}

// PaymentGateway creates payment intents at the payment provider.
type PaymentGateway interface {
	CreatePaymentIntent(ctx context.Context, req *stripegw.PaymentIntentRequest) (*stripegw.PaymentIntentResult, error)
}

// Logger is the logging surface the usecase needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
