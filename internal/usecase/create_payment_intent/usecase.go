package create_payment_intent

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/google/uuid"

	"github.com/hotelops/booking-service/internal/domain"
	contractRepo "github.com/hotelops/booking-service/internal/infra/storage/contract"
	reservationRepo "github.com/hotelops/booking-service/internal/infra/storage/reservation"
	"github.com/hotelops/booking-service/internal/integrations/stripegw"
)

// UseCase opens a payment intent at the gateway and records a pending
// payment row correlated to a reservation or a contracted service.
type UseCase struct {
	paymentRepo     PaymentRepository
	contractRepo    ContractRepository
	reservationRepo ReservationRepository
	gateway         PaymentGateway
	currency        string
	logger          Logger
}

// NewUseCase creates the usecase. currency is the ISO code charged for
// every intent, e.g. "usd".
func NewUseCase(
	paymentRepo PaymentRepository,
	contractRepo ContractRepository,
	reservationRepo ReservationRepository,
	gateway PaymentGateway,
	currency string,
	logger Logger,
) *UseCase {
	return &UseCase{
		paymentRepo:     paymentRepo,
		contractRepo:    contractRepo,
		reservationRepo: reservationRepo,
		gateway:         gateway,
		currency:        currency,
		logger:          logger,
	}
}

// Execute runs the usecase. The gateway is called before any row is
// written, so a gateway failure leaves no pending payment behind.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Validate the request.
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreatePaymentIntent: validation failed: %v", err)
		return nil, err
	}

	// 2. Resolve the correlation target and check it exists.
	tipo, targetID, err := uc.resolveTarget(ctx, req)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreatePaymentIntent: tipo=%s, id=%d, monto=%.2f", tipo, targetID, req.Monto)

	// 3. Open the intent at the gateway. The metadata is what the
	// webhook reads back to find the domain entity.
	intent, err := uc.gateway.CreatePaymentIntent(ctx, &stripegw.PaymentIntentRequest{
		AmountCents: int64(math.Round(req.Monto * 100)),
		Currency:    uc.currency,
		Metadata: map[string]string{
			"tipo": tipo,
			"id":   strconv.FormatInt(targetID, 10),
		},
		IdempotencyKey: uuid.NewString(),
	})
	if err != nil {
		uc.logger.Error("CreatePaymentIntent: gateway error for %s id=%d: %v", tipo, targetID, err)
		return nil, fmt.Errorf("%w: %v", ErrGateway, err)
	}

	// 4. Record the pending payment keyed by the intent id.
	pago := &domain.Pago{
		ReservaID:            req.ReservaID,
		ServicioContratadoID: req.ServicioContratadoID,
		Monto:                req.Monto,
		Moneda:               uc.currency,
		Metodo:               domain.MetodoPago(req.Metodo),
		Estado:               domain.PagoPendiente,
		TransaccionExterna:   intent.ID,
	}

	created, err := uc.paymentRepo.Create(ctx, pago)
	if err != nil {
		uc.logger.Error("CreatePaymentIntent: failed to store pago for intent=%s: %v", intent.ID, err)
		return nil, fmt.Errorf("%w: failed to store pago: %v", ErrInternal, err)
	}

	uc.logger.Info("CreatePaymentIntent: created pago id=%d, intent=%s", created.ID, intent.ID)

	return &Response{
		PagoID:             created.ID,
		TransaccionExterna: intent.ID,
		ClientSecret:       intent.ClientSecret,
		Monto:              req.Monto,
		Moneda:             uc.currency,
	}, nil
}

func (uc *UseCase) resolveTarget(ctx context.Context, req *Request) (string, int64, error) {
	if req.ReservaID != nil {
		if _, err := uc.reservationRepo.GetByID(ctx, *req.ReservaID); err != nil {
			if errors.Is(err, reservationRepo.ErrReservaNotFound) {
				uc.logger.Warn("CreatePaymentIntent: reserva id=%d not found", *req.ReservaID)
				return "", 0, ErrReservaNotFound
			}
			uc.logger.Error("CreatePaymentIntent: failed to get reserva id=%d: %v", *req.ReservaID, err)
			return "", 0, fmt.Errorf("%w: failed to get reserva: %v", ErrInternal, err)
		}
		return domain.CorrelacionReserva, *req.ReservaID, nil
	}

	if _, err := uc.contractRepo.GetByID(ctx, *req.ServicioContratadoID); err != nil {
		if errors.Is(err, contractRepo.ErrContractNotFound) {
			uc.logger.Warn("CreatePaymentIntent: contract id=%d not found", *req.ServicioContratadoID)
			return "", 0, ErrContractNotFound
		}
		uc.logger.Error("CreatePaymentIntent: failed to get contract id=%d: %v", *req.ServicioContratadoID, err)
		return "", 0, fmt.Errorf("%w: failed to get contract: %v", ErrInternal, err)
	}
	return domain.CorrelacionServicio, *req.ServicioContratadoID, nil
}

func validateRequest(req *Request) error {
	if req.ReservaID == nil && req.ServicioContratadoID == nil {
		return fmt.Errorf("%w: either reservaID or servicioContratadoID is required", ErrInvalidInput)
	}
	if req.ReservaID != nil && req.ServicioContratadoID != nil {
		return fmt.Errorf("%w: reservaID and servicioContratadoID are mutually exclusive", ErrInvalidInput)
	}
	if req.ReservaID != nil && *req.ReservaID <= 0 {
		return fmt.Errorf("%w: reservaID must be positive", ErrInvalidInput)
	}
	if req.ServicioContratadoID != nil && *req.ServicioContratadoID <= 0 {
		return fmt.Errorf("%w: servicioContratadoID must be positive", ErrInvalidInput)
	}
	if req.Monto <= 0 {
		return fmt.Errorf("%w: monto must be positive", ErrInvalidInput)
	}
	return nil
}
