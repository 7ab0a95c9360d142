package process_webhook

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/hotelops/booking-service/internal/domain"
	paymentRepo "github.com/hotelops/booking-service/internal/infra/storage/payment"
	"github.com/hotelops/booking-service/internal/integrations/stripegw"
	"github.com/hotelops/booking-service/internal/service/contracts"
	"github.com/hotelops/booking-service/internal/service/reservations"
	"github.com/hotelops/booking-service/pkg/ptr"
)

// UseCase applies gateway payment events to the domain. Redelivered
// events are absorbed twice over: the lifecycle transitions are
// idempotent, and the payment row records whether the success effect
// already ran.
type UseCase struct {
	verifier     EventVerifier
	paymentRepo  PaymentRepository
	contracts    ContractLifecycle
	reservations ReservationLifecycle

	// cancelOnFailure controls whether payment_intent.payment_failed
	// cancels the correlated entity or only marks the payment rejected.
	cancelOnFailure bool

	logger Logger
}

// NewUseCase creates the usecase.
func NewUseCase(
	verifier EventVerifier,
	paymentRepo PaymentRepository,
	contracts ContractLifecycle,
	reservations ReservationLifecycle,
	cancelOnFailure bool,
	logger Logger,
) *UseCase {
	return &UseCase{
		verifier:        verifier,
		paymentRepo:     paymentRepo,
		contracts:       contracts,
		reservations:    reservations,
		cancelOnFailure: cancelOnFailure,
		logger:          logger,
	}
}

// Execute verifies the raw payload and dispatches the event. Unknown
// event types are acknowledged without effect.
func (uc *UseCase) Execute(ctx context.Context, payload []byte, signature string) error {
	// 1. Authenticate the payload before touching anything.
	event, err := uc.verifier.VerifyEvent(payload, signature)
	if err != nil {
		if errors.Is(err, stripegw.ErrInvalidSignature) {
			uc.logger.Warn("ProcessWebhook: signature verification failed: %v", err)
			return ErrInvalidSignature
		}
		uc.logger.Error("ProcessWebhook: event decoding failed: %v", err)
		return fmt.Errorf("%w: event decoding failed: %v", ErrInternal, err)
	}

	uc.logger.Info("ProcessWebhook: event id=%s, type=%s", event.ID, event.Type)

	// 2. Dispatch by event type.
	switch event.Type {
	case stripegw.EventPaymentSucceeded:
		return uc.handleSucceeded(ctx, event)
	case stripegw.EventPaymentFailed:
		return uc.handleFailed(ctx, event)
	default:
		uc.logger.Info("ProcessWebhook: ignoring event type=%s", event.Type)
		return nil
	}
}

func (uc *UseCase) handleSucceeded(ctx context.Context, event *stripegw.Event) error {
	tipo, targetID, ok := correlation(event)
	if !ok {
		uc.logger.Warn("ProcessWebhook: event id=%s has no usable correlation metadata, ignoring", event.ID)
		return nil
	}

	// 1. Replay check against the payment row.
	pago, err := uc.paymentRepo.GetByExternalID(ctx, event.Intent.ID)
	if err != nil && !errors.Is(err, paymentRepo.ErrPagoNotFound) {
		uc.logger.Error("ProcessWebhook: failed to get pago for intent=%s: %v", event.Intent.ID, err)
		return fmt.Errorf("%w: failed to get pago: %v", ErrInternal, err)
	}
	if pago != nil && pago.IsProcessed() {
		uc.logger.Info("ProcessWebhook: intent=%s already processed, no-op", event.Intent.ID)
		return nil
	}

	// 2. Apply the success effect. The transitions themselves tolerate a
	// second delivery, this is the belt to the payment row's suspenders.
	switch tipo {
	case domain.CorrelacionReserva:
		err = uc.reservations.Activate(ctx, targetID)
	case domain.CorrelacionServicio:
		err = uc.contracts.Confirmar(ctx, targetID)
	}
	if err != nil {
		// A target that does not exist or can no longer take the effect
		// will not change on redelivery. Log and acknowledge, otherwise
		// the provider redelivers the event forever. Transient failures
		// keep the error so the provider retries.
		if isPermanentDispatchFailure(err) {
			uc.logger.Warn("ProcessWebhook: %s id=%d cannot take the payment effect for intent=%s, acknowledged: %v",
				tipo, targetID, event.Intent.ID, err)
			return nil
		}
		uc.logger.Error("ProcessWebhook: %s id=%d effect failed for intent=%s: %v",
			tipo, targetID, event.Intent.ID, err)
		return fmt.Errorf("%w: %s effect failed: %v", ErrInternal, tipo, err)
	}

	// 3. Record the effect on the payment row.
	if pago == nil {
		// The intent was opened outside this service. Record it as
		// approved so a redelivery finds the marker.
		created := &domain.Pago{
			Monto:              float64(event.Intent.Amount) / 100,
			Moneda:             event.Intent.Currency,
			Metodo:             domain.PagoTarjeta,
			Estado:             domain.PagoAprobado,
			TransaccionExterna: event.Intent.ID,
		}
		switch tipo {
		case domain.CorrelacionReserva:
			created.ReservaID = ptr.Ptr(targetID)
		case domain.CorrelacionServicio:
			created.ServicioContratadoID = ptr.Ptr(targetID)
		}

		if _, err := uc.paymentRepo.Create(ctx, created); err != nil {
			if errors.Is(err, paymentRepo.ErrDuplicateExternalID) {
				uc.logger.Info("ProcessWebhook: intent=%s recorded concurrently, no-op", event.Intent.ID)
				return nil
			}
			uc.logger.Error("ProcessWebhook: failed to record pago for intent=%s: %v", event.Intent.ID, err)
			return fmt.Errorf("%w: failed to record pago: %v", ErrInternal, err)
		}
	} else {
		applied, err := uc.paymentRepo.MarkProcessed(ctx, event.Intent.ID)
		if err != nil {
			uc.logger.Error("ProcessWebhook: failed to mark intent=%s processed: %v", event.Intent.ID, err)
			return fmt.Errorf("%w: failed to mark pago processed: %v", ErrInternal, err)
		}
		if !applied {
			uc.logger.Info("ProcessWebhook: intent=%s marked processed concurrently", event.Intent.ID)
		}
	}

	uc.logger.Info("ProcessWebhook: intent=%s applied to %s id=%d", event.Intent.ID, tipo, targetID)
	return nil
}

func (uc *UseCase) handleFailed(ctx context.Context, event *stripegw.Event) error {
	// Mark the payment rejected when we hold a row for it.
	err := uc.paymentRepo.UpdateEstado(ctx, event.Intent.ID, domain.PagoRechazado)
	if err != nil && !errors.Is(err, paymentRepo.ErrPagoNotFound) {
		uc.logger.Error("ProcessWebhook: failed to mark intent=%s rejected: %v", event.Intent.ID, err)
		return fmt.Errorf("%w: failed to mark pago rejected: %v", ErrInternal, err)
	}

	if !uc.cancelOnFailure {
		uc.logger.Info("ProcessWebhook: intent=%s failed, payment marked rejected", event.Intent.ID)
		return nil
	}

	tipo, targetID, ok := correlation(event)
	if !ok {
		uc.logger.Warn("ProcessWebhook: failed event id=%s has no usable correlation metadata", event.ID)
		return nil
	}

	switch tipo {
	case domain.CorrelacionReserva:
		err = uc.reservations.Deactivate(ctx, targetID)
	case domain.CorrelacionServicio:
		err = uc.contracts.Cancelar(ctx, targetID, ptr.Ptr("pago rechazado por la pasarela"))
	}
	if err != nil {
		if isPermanentDispatchFailure(err) {
			uc.logger.Warn("ProcessWebhook: failure cleanup for %s id=%d skipped, intent=%s: %v",
				tipo, targetID, event.Intent.ID, err)
			return nil
		}
		uc.logger.Error("ProcessWebhook: failure cleanup for %s id=%d, intent=%s: %v",
			tipo, targetID, event.Intent.ID, err)
		return fmt.Errorf("%w: failure cleanup error: %v", ErrInternal, err)
	}

	uc.logger.Info("ProcessWebhook: intent=%s failed, %s id=%d cancelled", event.Intent.ID, tipo, targetID)
	return nil
}

// isPermanentDispatchFailure classifies lifecycle errors no redelivery can
// cure: the target does not exist, or its state machine rejects the effect.
func isPermanentDispatchFailure(err error) bool {
	return errors.Is(err, contracts.ErrContractNotFound) ||
		errors.Is(err, contracts.ErrContractCancelled) ||
		errors.Is(err, contracts.ErrInvalidTransition) ||
		errors.Is(err, reservations.ErrReservaNotFound)
}

// correlation extracts the target entity from the intent metadata.
func correlation(event *stripegw.Event) (string, int64, bool) {
	tipo := event.Intent.Metadata["tipo"]
	if tipo != domain.CorrelacionReserva && tipo != domain.CorrelacionServicio {
		return "", 0, false
	}

	id, err := strconv.ParseInt(event.Intent.Metadata["id"], 10, 64)
	if err != nil || id <= 0 {
		return "", 0, false
	}

	return tipo, id, true
}
