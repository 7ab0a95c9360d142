package create_contract

import (
	"fmt"

	"github.com/hotelops/booking-service/internal/domain"
)

func validateRequest(req *Request) error {
	if req.ServicioID <= 0 {
		return fmt.Errorf("%w: servicioID must be positive", ErrInvalidInput)
	}

	if req.ReservaID != nil && *req.ReservaID <= 0 {
		return fmt.Errorf("%w: reservaID must be positive", ErrInvalidInput)
	}

	if req.ClienteID != nil && *req.ClienteID <= 0 {
		return fmt.Errorf("%w: clienteID must be positive", ErrInvalidInput)
	}

	if req.ReservaID == nil && req.ClienteID == nil {
		return fmt.Errorf("%w: either reservaID or clienteID is required", ErrInvalidInput)
	}

	if req.Fecha.IsZero() {
		return fmt.Errorf("%w: fecha is required", ErrInvalidInput)
	}

	if req.HoraInicio.IsZero() {
		return fmt.Errorf("%w: horaInicio is required", ErrInvalidInput)
	}

	if err := req.HoraInicio.Validate(); err != nil {
		return fmt.Errorf("%w: invalid horaInicio format: %v", ErrInvalidInput, err)
	}

	if req.Cantidad < domain.MinCantidad || req.Cantidad > domain.MaxCantidad {
		return fmt.Errorf("%w: cantidad must be between %d and %d",
			ErrInvalidInput, domain.MinCantidad, domain.MaxCantidad)
	}

	if req.NumeroPersonas < 0 {
		return fmt.Errorf("%w: numeroPersonas must not be negative", ErrInvalidInput)
	}

	if req.Notas != nil && len(*req.Notas) > domain.MaxNotasLength {
		return fmt.Errorf("%w: notas exceeds %d characters", ErrInvalidInput, domain.MaxNotasLength)
	}

	return nil
}
