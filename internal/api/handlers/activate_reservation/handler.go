package activate_reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/hotelops/booking-service/internal/api/handlers"
	"github.com/hotelops/booking-service/internal/service/reservations"
)

const (
	msgInvalidReservaID = "ID de reserva no válido"
	msgNotFound         = "reserva no encontrada"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/reservas/{reservaId}/activate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	reservaID, err := strconv.ParseInt(vars["reservaId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /reservas/{id}/activate - Invalid reserva ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservaID)
		return
	}

	err = h.service.Activate(r.Context(), reservaID)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservaNotFound):
			h.logger.Warn("PUT /reservas/{id}/activate - Reserva not found: reserva_id=%d", reservaID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PUT /reservas/{id}/activate - Failed: reserva_id=%d, error=%v", reservaID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /reservas/{id}/activate - Reserva activated: reserva_id=%d", reservaID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
