package get_service_availability

import (
	"github.com/hotelops/booking-service/internal/domain"
	getAvailability "github.com/hotelops/booking-service/internal/usecase/get_availability"
)

// SlotResponse HTTP model for one availability window.
type SlotResponse struct {
	ID          int64   `json:"id"`
	DiaSemana   *int    `json:"diaSemana,omitempty"` // 0=Sunday .. 6=Saturday, absent covers every day
	HoraInicio  string  `json:"horaInicio"`
	HoraFin     *string `json:"horaFin,omitempty"`
	FixedTime   bool    `json:"horaFija"`
	CupoMaximo  int     `json:"cupoMaximo"`
	Ocupados    *int    `json:"ocupados,omitempty"`
	Disponibles *int    `json:"disponibles,omitempty"`
}

// AvailabilityResponse HTTP response model.
type AvailabilityResponse struct {
	ServicioID int64          `json:"servicioId"`
	Fecha      *string        `json:"fecha,omitempty"`
	Slots      []SlotResponse `json:"horarios"`
}

// FromUseCaseResponse converts the usecase response into the HTTP model.
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	out := &AvailabilityResponse{
		ServicioID: resp.ServicioID,
		Slots:      make([]SlotResponse, 0, len(resp.Slots)),
	}

	if resp.Fecha != nil {
		fecha := resp.Fecha.Format(domain.DateFormat)
		out.Fecha = &fecha
	}

	for _, slot := range resp.Slots {
		item := SlotResponse{
			ID:          slot.ID,
			HoraInicio:  slot.HoraInicio.String(),
			FixedTime:   slot.FixedTime,
			CupoMaximo:  slot.CupoMaximo,
			Ocupados:    slot.Ocupados,
			Disponibles: slot.Disponibles,
		}
		if slot.DiaSemana != nil {
			dia := int(*slot.DiaSemana)
			item.DiaSemana = &dia
		}
		if slot.HoraFin != nil {
			fin := slot.HoraFin.String()
			item.HoraFin = &fin
		}
		out.Slots = append(out.Slots, item)
	}

	return out
}
