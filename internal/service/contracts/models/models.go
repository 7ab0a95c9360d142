package models

import (
	"time"

	"github.com/hotelops/booking-service/internal/domain"
)

// ContractResponse is the DTO for a contracted service.
type ContractResponse struct {
	ID             int64   `json:"id"`
	ServicioID     int64   `json:"servicioId"`
	ReservaID      *int64  `json:"reservaId,omitempty"`
	ClienteID      *int64  `json:"clienteId,omitempty"`
	Fecha          string  `json:"fecha"`      // "2024-06-03"
	HoraInicio     string  `json:"horaInicio"` // "10:00"
	Cantidad       int     `json:"cantidad"`
	NumeroPersonas int     `json:"numeroPersonas"`
	Estado         string  `json:"estado"`
	NombreServicio string  `json:"nombreServicio"`
	PrecioUnitario float64 `json:"precioUnitario"`
	Notas          *string `json:"notas,omitempty"`

	MotivoCancelacion *string `json:"motivoCancelacion,omitempty"`
	CanceladoEn       *string `json:"canceladoEn,omitempty"` // ISO 8601

	CreadoEn      time.Time `json:"creadoEn"`
	ActualizadoEn time.Time `json:"actualizadoEn"`
}

// ContractListResponse is the DTO for a list of contracted services.
type ContractListResponse struct {
	Servicios []ContractResponse `json:"servicios"`
}

// FromDomainContract converts the domain model into the DTO.
func FromDomainContract(s *domain.ServicioContratado) *ContractResponse {
	if s == nil {
		return nil
	}

	resp := &ContractResponse{
		ID:                s.ID,
		ServicioID:        s.ServicioID,
		ReservaID:         s.ReservaID,
		ClienteID:         s.ClienteID,
		Fecha:             s.Fecha.Format(domain.DateFormat),
		HoraInicio:        s.HoraInicio.String(),
		Cantidad:          s.Cantidad,
		NumeroPersonas:    s.NumeroPersonas,
		Estado:            string(s.Estado),
		NombreServicio:    s.NombreServicio,
		PrecioUnitario:    s.PrecioUnitario,
		Notas:             s.Notas,
		MotivoCancelacion: s.MotivoCancelacion,
		CreadoEn:          s.CreadoEn,
		ActualizadoEn:     s.ActualizadoEn,
	}

	if s.CanceladoEn != nil {
		cancelled := s.CanceladoEn.Format(time.RFC3339)
		resp.CanceladoEn = &cancelled
	}

	return resp
}

// FromDomainContractList converts a list of domain models into the DTO.
func FromDomainContractList(contracts []*domain.ServicioContratado) *ContractListResponse {
	resp := &ContractListResponse{
		Servicios: make([]ContractResponse, 0, len(contracts)),
	}

	for _, c := range contracts {
		if dto := FromDomainContract(c); dto != nil {
			resp.Servicios = append(resp.Servicios, *dto)
		}
	}

	return resp
}
