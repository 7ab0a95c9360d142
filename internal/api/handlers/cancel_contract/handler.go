package cancel_contract

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/hotelops/booking-service/internal/api/handlers"
	"github.com/hotelops/booking-service/internal/service/contracts"
)

const (
	msgInvalidContractID  = "ID de servicio contratado no válido"
	msgInvalidRequestBody = "cuerpo de la solicitud no válido"
	msgNotFound           = "servicio contratado no encontrado"
	msgCannotCancel       = "el servicio contratado no puede cancelarse"
	msgMotivoTooLong      = "el motivo de cancelación es demasiado largo"
)

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

// Handle PUT /api/v1/servicio-contratados/{servicioContratadoId}/cancelar
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	contractID, err := strconv.ParseInt(vars["servicioContratadoId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /servicio-contratados/{id}/cancelar - Invalid contract ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidContractID)
		return
	}

	// The body is optional.
	var req CancelContractRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("PUT /servicio-contratados/{id}/cancelar - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	err = h.service.Cancelar(r.Context(), contractID, req.Motivo)
	if err != nil {
		switch {
		case errors.Is(err, contracts.ErrContractNotFound):
			h.logger.Warn("PUT /servicio-contratados/{id}/cancelar - Contract not found: contract_id=%d", contractID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, contracts.ErrMotivoTooLong):
			h.logger.Warn("PUT /servicio-contratados/{id}/cancelar - Motivo too long: contract_id=%d", contractID)
			handlers.RespondBadRequest(w, msgMotivoTooLong)

		case errors.Is(err, contracts.ErrInvalidTransition):
			h.logger.Warn("PUT /servicio-contratados/{id}/cancelar - Invalid transition: contract_id=%d", contractID)
			handlers.RespondError(w, http.StatusConflict, msgCannotCancel)

		default:
			h.logger.Error("PUT /servicio-contratados/{id}/cancelar - Failed: contract_id=%d, error=%v",
				contractID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /servicio-contratados/{id}/cancelar - Contract cancelled: contract_id=%d", contractID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
