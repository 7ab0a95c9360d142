package domain

// TipoServicio classifies a bookable service as free or paid.
type TipoServicio string

const (
	ServicioGratuito TipoServicio = "free"
	ServicioPagado   TipoServicio = "paid"
)

// UnidadCapacidad selects which contract column counts against a slot's
// capacity: units of the service itself or persons attending.
type UnidadCapacidad string

const (
	CapacidadPorCantidad UnidadCapacidad = "cantidad"
	CapacidadPorPersonas UnidadCapacidad = "personas"
)

// Servicio is a bookable hotel service from the catalog. The catalog is
// owned elsewhere; the booking core only reads it.
type Servicio struct {
	ID              int64
	Nombre          string
	Tipo            TipoServicio
	PrecioUnitario  float64
	Disponible      bool
	UnidadCapacidad UnidadCapacidad
}
