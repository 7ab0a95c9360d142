package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MinCantidad     = 1
	MaxCantidad     = 100
	MaxNotasLength  = 500
	MaxMotivoLength = 500
)

// EstadosQueOcupanCupo lists the contract states that count against slot
// capacity. Everything except CANCELADO occupies.
var EstadosQueOcupanCupo = []EstadoServicio{
	EstadoPendiente,
	EstadoConfirmado,
	EstadoCompletado,
}
