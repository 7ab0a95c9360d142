package create_payment_intent

import (
	createPaymentIntent "github.com/hotelops/booking-service/internal/usecase/create_payment_intent"
)

// CreatePaymentIntentRequest HTTP request model. Exactly one of reservaId
// or servicioContratadoId must be present.
type CreatePaymentIntentRequest struct {
	ReservaID            *int64  `json:"reservaId,omitempty"`
	ServicioContratadoID *int64  `json:"servicioContratadoId,omitempty"`
	Monto                float64 `json:"monto"`
	Metodo               string  `json:"metodo"`
}

// PaymentIntentResponse HTTP response model.
type PaymentIntentResponse struct {
	PagoID             int64   `json:"pagoId"`
	TransaccionExterna string  `json:"transaccionExterna"`
	ClientSecret       string  `json:"clientSecret"`
	Monto              float64 `json:"monto"`
	Moneda             string  `json:"moneda"`
}

// ToUseCaseRequest converts the HTTP request into the usecase model.
func (r *CreatePaymentIntentRequest) ToUseCaseRequest() *createPaymentIntent.Request {
	return &createPaymentIntent.Request{
		ReservaID:            r.ReservaID,
		ServicioContratadoID: r.ServicioContratadoID,
		Monto:                r.Monto,
		Metodo:               r.Metodo,
	}
}

// FromUseCaseResponse converts the usecase response into the HTTP model.
func FromUseCaseResponse(resp *createPaymentIntent.Response) *PaymentIntentResponse {
	return &PaymentIntentResponse{
		PagoID:             resp.PagoID,
		TransaccionExterna: resp.TransaccionExterna,
		ClientSecret:       resp.ClientSecret,
		Monto:              resp.Monto,
		Moneda:             resp.Moneda,
	}
}
