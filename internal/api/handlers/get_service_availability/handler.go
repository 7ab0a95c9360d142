package get_service_availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/hotelops/booking-service/internal/api/handlers"
	"github.com/hotelops/booking-service/internal/domain"
	getAvailability "github.com/hotelops/booking-service/internal/usecase/get_availability"
)

const (
	msgInvalidServicioID = "ID de servicio no válido"
	msgInvalidDate       = "formato de fecha no válido, se espera YYYY-MM-DD"
	msgServicioNotFound  = "servicio no encontrado"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/servicio-disponibilidads/servicio/{servicioId}?fecha=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	servicioID, err := strconv.ParseInt(vars["servicioId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /servicio-disponibilidads - Invalid servicio ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServicioID)
		return
	}

	req := &getAvailability.Request{ServicioID: servicioID}

	if raw := r.URL.Query().Get("fecha"); raw != "" {
		fecha, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /servicio-disponibilidads - Invalid fecha %q: %v", raw, err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.Fecha = &fecha
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrServicioNotFound):
			h.logger.Warn("GET /servicio-disponibilidads - Servicio not found: servicio_id=%d", servicioID)
			handlers.RespondNotFound(w, msgServicioNotFound)

		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("GET /servicio-disponibilidads - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidServicioID)

		default:
			h.logger.Error("GET /servicio-disponibilidads - Failed: servicio_id=%d, error=%v", servicioID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /servicio-disponibilidads - %d slots retrieved: servicio_id=%d",
		len(result.Slots), servicioID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
