package create_payment_intent

// Request identifies what is being paid for. Exactly one of ReservaID
// or ServicioContratadoID must be set.
type Request struct {
	ReservaID            *int64
	ServicioContratadoID *int64
	Monto                float64 // amount in major currency units
	Metodo               string  // payment method label stored on the row
}

// Response carries what the frontend needs to drive the payment widget.
type Response struct {
	PagoID             int64
	TransaccionExterna string // provider intent id
	ClientSecret       string
	Monto              float64
	Moneda             string
}
