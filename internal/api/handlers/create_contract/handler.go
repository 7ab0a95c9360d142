package create_contract

import (
	"errors"
	"net/http"

	"github.com/hotelops/booking-service/internal/api/handlers"
	createContract "github.com/hotelops/booking-service/internal/usecase/create_contract"
)

const (
	msgInvalidRequestBody   = "cuerpo de la solicitud no válido"
	msgInvalidDateOrTime    = "formato de fecha u hora no válido, se espera YYYY-MM-DD y HH:MM"
	msgServicioNotFound     = "servicio no encontrado"
	msgServicioNotAvailable = "el servicio no está disponible"
	msgReservaNotFound      = "reserva no encontrada"
	msgNotBookable          = "ningún horario cubre la fecha y hora solicitadas"
	msgCapacityExceeded     = "no hay cupo disponible para este horario"
	msgInvalidInput         = "datos de entrada no válidos"
)

type Handler struct {
	useCase CreateContractUseCase
	logger  Logger
}

func NewHandler(useCase CreateContractUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/servicio-contratados
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateContractRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /servicio-contratados - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /servicio-contratados - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createContract.ErrCapacityExceeded):
			h.logger.Warn("POST /servicio-contratados - Capacity exceeded: servicio_id=%d", req.ServicioID)
			handlers.RespondError(w, http.StatusConflict, msgCapacityExceeded)

		case errors.Is(err, createContract.ErrNotBookable):
			h.logger.Warn("POST /servicio-contratados - Not bookable: servicio_id=%d", req.ServicioID)
			handlers.RespondError(w, http.StatusConflict, msgNotBookable)

		case errors.Is(err, createContract.ErrServicioNotFound):
			h.logger.Warn("POST /servicio-contratados - Servicio not found: servicio_id=%d", req.ServicioID)
			handlers.RespondNotFound(w, msgServicioNotFound)

		case errors.Is(err, createContract.ErrServicioNotAvailable):
			h.logger.Warn("POST /servicio-contratados - Servicio not available: servicio_id=%d", req.ServicioID)
			handlers.RespondError(w, http.StatusConflict, msgServicioNotAvailable)

		case errors.Is(err, createContract.ErrReservaNotFound):
			h.logger.Warn("POST /servicio-contratados - Reserva not found: servicio_id=%d", req.ServicioID)
			handlers.RespondNotFound(w, msgReservaNotFound)

		case errors.Is(err, createContract.ErrInvalidInput):
			h.logger.Warn("POST /servicio-contratados - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /servicio-contratados - Failed to create contract: servicio_id=%d, error=%v",
				req.ServicioID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /servicio-contratados - Contract created: contract_id=%d, servicio_id=%d",
		result.ID, req.ServicioID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
