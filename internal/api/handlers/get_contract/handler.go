package get_contract

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

// Handle GET /api/v1/servicio-contratados/{servicioContratadoId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	contractID, err := strconv.ParseInt(vars["servicioContratadoId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /servicio-contratados/{id} - Invalid contract ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidContractID)
		return
	}

	contract, err := h.service.GetByID(r.Context(), contractID)
	if err != nil {
		switch {
		case errors.Is(err, contracts.ErrContractNotFound):
			h.logger.Warn("GET /servicio-contratados/{id} - Contract not found: contract_id=%d", contractID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /servicio-contratados/{id} - Failed: contract_id=%d, error=%v", contractID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /servicio-contratados/{id} - Contract retrieved: contract_id=%d", contractID)
	handlers.RespondJSON(w, http.StatusOK, contract)
}
