package get_reservation_contracts

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/hotelops/booking-service/internal/api/handlers"
)

const msgInvalidReservaID = "ID de reserva no válido"

type Handler struct {
	service ContractService
	logger  Logger
}

func NewHandler(service ContractService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/reservas/{reservaId}/servicio-contratados
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	reservaID, err := strconv.ParseInt(vars["reservaId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /reservas/{id}/servicio-contratados - Invalid reserva ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservaID)
		return
	}

	list, err := h.service.GetByReserva(r.Context(), reservaID)
	if err != nil {
		h.logger.Error("GET /reservas/{id}/servicio-contratados - Failed: reserva_id=%d, error=%v", reservaID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /reservas/{id}/servicio-contratados - %d contracts retrieved: reserva_id=%d",
		len(list.Servicios), reservaID)
	handlers.RespondJSON(w, http.StatusOK, list)
}
