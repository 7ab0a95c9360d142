package create_payment_intent

import (
	"errors"
	"net/http"

	"github.com/hotelops/booking-service/internal/api/handlers"
	createPaymentIntent "github.com/hotelops/booking-service/internal/usecase/create_payment_intent"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud no válido"
	msgInvalidInput       = "datos de entrada no válidos"
	msgReservaNotFound    = "reserva no encontrada"
	msgContractNotFound   = "servicio contratado no encontrado"
	msgGatewayError       = "la pasarela de pagos rechazó la operación"
)

type Handler struct {
	useCase CreatePaymentIntentUseCase
	logger  Logger
}

func NewHandler(useCase CreatePaymentIntentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/stripe/payment-intent
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreatePaymentIntentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /stripe/payment-intent - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, createPaymentIntent.ErrInvalidInput):
			h.logger.Warn("POST /stripe/payment-intent - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createPaymentIntent.ErrReservaNotFound):
			h.logger.Warn("POST /stripe/payment-intent - Reserva not found")
			handlers.RespondNotFound(w, msgReservaNotFound)

		case errors.Is(err, createPaymentIntent.ErrContractNotFound):
			h.logger.Warn("POST /stripe/payment-intent - Contract not found")
			handlers.RespondNotFound(w, msgContractNotFound)

		case errors.Is(err, createPaymentIntent.ErrGateway):
			h.logger.Error("POST /stripe/payment-intent - Gateway error: %v", err)
			handlers.RespondError(w, http.StatusBadGateway, msgGatewayError)

		default:
			h.logger.Error("POST /stripe/payment-intent - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /stripe/payment-intent - Intent created: pago_id=%d, intent=%s",
		result.PagoID, result.TransaccionExterna)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
