package create_contract

import (
	"time"

	"github.com/hotelops/booking-service/internal/domain"
	createContract "github.com/hotelops/booking-service/internal/usecase/create_contract"
	"github.com/hotelops/booking-service/pkg/types"
)

// CreateContractRequest HTTP request model
type CreateContractRequest struct {
	ServicioID     int64   `json:"servicioId"`
	ReservaID      *int64  `json:"reservaId,omitempty"`
	ClienteID      *int64  `json:"clienteId,omitempty"`
	Fecha          string  `json:"fecha"`      // "2024-06-03"
	HoraInicio     string  `json:"horaInicio"` // "10:00"
	Cantidad       int     `json:"cantidad"`
	NumeroPersonas int     `json:"numeroPersonas"`
	Notas          *string `json:"notas,omitempty"`
}

// ContractResponse HTTP response model
type ContractResponse struct {
	ID             int64   `json:"id"`
	ServicioID     int64   `json:"servicioId"`
	ReservaID      *int64  `json:"reservaId,omitempty"`
	ClienteID      *int64  `json:"clienteId,omitempty"`
	Fecha          string  `json:"fecha"`
	HoraInicio     string  `json:"horaInicio"`
	Cantidad       int     `json:"cantidad"`
	NumeroPersonas int     `json:"numeroPersonas"`
	Estado         string  `json:"estado"`
	NombreServicio string  `json:"nombreServicio"`
	PrecioUnitario float64 `json:"precioUnitario"`
	Notas          *string `json:"notas,omitempty"`
	CreadoEn       string  `json:"creadoEn"`
	ActualizadoEn  string  `json:"actualizadoEn"`
}

// ToUseCaseRequest converts the HTTP request into the usecase model.
func (r *CreateContractRequest) ToUseCaseRequest() (*createContract.Request, error) {
	fecha, err := time.Parse(domain.DateFormat, r.Fecha)
	if err != nil {
		return nil, err
	}

	horaInicio, err := types.NewTimeStringFromString(r.HoraInicio)
	if err != nil {
		return nil, err
	}

	return &createContract.Request{
		ServicioID:     r.ServicioID,
		ReservaID:      r.ReservaID,
		ClienteID:      r.ClienteID,
		Fecha:          fecha,
		HoraInicio:     horaInicio,
		Cantidad:       r.Cantidad,
		NumeroPersonas: r.NumeroPersonas,
		Notas:          r.Notas,
	}, nil
}

// FromUseCaseResponse converts the usecase response into the HTTP model.
func FromUseCaseResponse(resp *createContract.Response) *ContractResponse {
	return &ContractResponse{
		ID:             resp.ID,
		ServicioID:     resp.ServicioID,
		ReservaID:      resp.ReservaID,
		ClienteID:      resp.ClienteID,
		Fecha:          resp.Fecha.Format(domain.DateFormat),
		HoraInicio:     resp.HoraInicio.String(),
		Cantidad:       resp.Cantidad,
		NumeroPersonas: resp.NumeroPersonas,
		Estado:         resp.Estado,
		NombreServicio: resp.NombreServicio,
		PrecioUnitario: resp.PrecioUnitario,
		Notas:          resp.Notas,
		CreadoEn:       resp.CreadoEn.Format(time.RFC3339),
		ActualizadoEn:  resp.ActualizadoEn.Format(time.RFC3339),
	}
}
