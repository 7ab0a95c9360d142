package stripe_webhook

import (
	"errors"
	"io"
	"net/http"

	"github.com/hotelops/booking-service/internal/api/handlers"
	processWebhook "github.com/hotelops/booking-service/internal/usecase/process_webhook"
)

const (
	msgUnreadableBody   = "no se pudo leer el cuerpo de la solicitud"
	msgInvalidSignature = "firma del evento no válida"
	signatureHeader     = "Stripe-Signature"
	maxWebhookBodyBytes = 65536
)

type Handler struct {
	useCase ProcessWebhookUseCase
	logger  Logger
}

func NewHandler(useCase ProcessWebhookUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/stripe/webhook
//
// A non-2xx response makes the provider redeliver the event, so transient
// failures surface as 500 on purpose: nothing has been marked processed
// and the retry re-applies the effect. Permanent dispatch failures never
// reach this boundary; the usecase logs and swallows them so a
// malformed-but-received event is not redelivered forever.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBodyBytes))
	if err != nil {
		h.logger.Warn("POST /stripe/webhook - Failed to read body: %v", err)
		handlers.RespondBadRequest(w, msgUnreadableBody)
		return
	}

	err = h.useCase.Execute(r.Context(), payload, r.Header.Get(signatureHeader))
	if err != nil {
		switch {
		case errors.Is(err, processWebhook.ErrInvalidSignature):
			h.logger.Warn("POST /stripe/webhook - Invalid signature")
			handlers.RespondBadRequest(w, msgInvalidSignature)

		default:
			h.logger.Error("POST /stripe/webhook - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, nil)
}
