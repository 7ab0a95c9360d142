package domain

import "time"

// MetodoPago is the payment method reported by the gateway.
type MetodoPago string

const (
	PagoTarjeta        MetodoPago = "Tarjeta"
	PagoDeposito       MetodoPago = "Deposito"
	PagoBilleteraMovil MetodoPago = "Billetera movil"
)

// EstadoPago is the payment lifecycle state.
type EstadoPago string

const (
	PagoPendiente EstadoPago = "Pendiente"
	PagoAprobado  EstadoPago = "Aprobado"
	PagoRechazado EstadoPago = "Rechazado"
)

// Correlation metadata values carried on a gateway payment intent. The
// webhook uses them to map the event back onto exactly one domain entity.
const (
	CorrelacionReserva  = "reserva"
	CorrelacionServicio = "servicio"
)

// Pago links an external gateway payment to exactly one domain entity:
// a reservation or a contracted service, never both.
type Pago struct {
	ID                   int64
	ReservaID            *int64
	ServicioContratadoID *int64
	Monto                float64
	Moneda               string
	Metodo               MetodoPago
	Estado               EstadoPago

	// Gateway payment-intent id. Unique: the idempotency anchor for
	// webhook redelivery.
	TransaccionExterna string

	CreadoEn      time.Time
	ActualizadoEn time.Time
}

// IsProcessed reports whether the success effect for this payment has
// already been applied.
func (p *Pago) IsProcessed() bool {
	return p.Estado == PagoAprobado
}
