package confirm_contract

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/hotelops/booking-service/internal/api/handlers"
	"github.com/hotelops/booking-service/internal/service/contracts"
)

const (
	msgInvalidContractID = "ID de servicio contratado no válido"
	msgNotFound          = "servicio contratado no encontrado"
	msgCancelled         = "el servicio contratado está cancelado"
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

// Handle PUT /api/v1/servicio-contratados/{servicioContratadoId}/confirmar
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	contractID, err := strconv.ParseInt(vars["servicioContratadoId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /servicio-contratados/{id}/confirmar - Invalid contract ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidContractID)
		return
	}

	err = h.service.Confirmar(r.Context(), contractID)
	if err != nil {
		switch {
		case errors.Is(err, contracts.ErrContractNotFound):
			h.logger.Warn("PUT /servicio-contratados/{id}/confirmar - Contract not found: contract_id=%d", contractID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, contracts.ErrContractCancelled):
			h.logger.Warn("PUT /servicio-contratados/{id}/confirmar - Contract cancelled: contract_id=%d", contractID)
			handlers.RespondError(w, http.StatusConflict, msgCancelled)

		default:
			h.logger.Error("PUT /servicio-contratados/{id}/confirmar - Failed: contract_id=%d, error=%v",
				contractID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /servicio-contratados/{id}/confirmar - Contract confirmed: contract_id=%d", contractID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
