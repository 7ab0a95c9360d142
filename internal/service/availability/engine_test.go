package availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hotelops/booking-service/internal/domain"
	"github.com/hotelops/booking-service/internal/infra/storage/contract"
	"github.com/hotelops/booking-service/pkg/ptr"
	"github.com/hotelops/booking-service/pkg/types"
)

type fakeCatalog struct {
	servicio *domain.Servicio
	err      error
}

func (f *fakeCatalog) GetByID(_ context.Context, _ int64) (*domain.Servicio, error) {
	return f.servicio, f.err
}

type fakeSlots struct {
	slots []*domain.AvailabilitySlot
	err   error
}

func (f *fakeSlots) GetActiveByServicio(_ context.Context, _ int64) ([]*domain.AvailabilitySlot, error) {
	return f.slots, f.err
}

type fakeContracts struct {
	contracts  []*domain.ServicioContratado
	lastFilter contract.SlotKeyFilter
	err        error
}

func (f *fakeContracts) GetBySlotKey(_ context.Context, filter contract.SlotKeyFilter) ([]*domain.ServicioContratado, error) {
	f.lastFilter = filter
	return f.contracts, f.err
}

// dateFilteringContracts honors the filter's Fecha the way the real
// repository does, so the per-date slot key isolation is observable.
type dateFilteringContracts struct {
	contracts  []*domain.ServicioContratado
	lastFilter contract.SlotKeyFilter
}

func (f *dateFilteringContracts) GetBySlotKey(_ context.Context, filter contract.SlotKeyFilter) ([]*domain.ServicioContratado, error) {
	f.lastFilter = filter
	var matched []*domain.ServicioContratado
	for _, c := range f.contracts {
		if c.Fecha.Equal(filter.Fecha) {
			matched = append(matched, c)
		}
	}
	return matched, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func spaService() *domain.Servicio {
	return &domain.Servicio{
		ID:              7,
		Nombre:          "Circuito spa",
		Tipo:            domain.ServicioPagado,
		PrecioUnitario:  45,
		Disponible:      true,
		UnidadCapacidad: domain.CapacidadPorCantidad,
	}
}

func mondaySlot() *domain.AvailabilitySlot {
	return &domain.AvailabilitySlot{
		ID:         1,
		ServicioID: 7,
		DiaSemana:  ptr.Ptr(time.Monday),
		HoraInicio: "10:00",
		FixedTime:  true,
		CupoMaximo: 10,
		Activo:     true,
	}
}

func contractFor(estado domain.EstadoServicio, cantidad int) *domain.ServicioContratado {
	return &domain.ServicioContratado{
		ServicioID: 7,
		Fecha:      time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC),
		HoraInicio: "10:00",
		Cantidad:   cantidad,
		Estado:     estado,
	}
}

func TestRemainingCapacity(t *testing.T) {
	// Monday 2024-06-03, a weekly fixed slot with cupo 10.
	monday := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	require.Equal(t, time.Monday, monday.Weekday())

	t.Run("Sums Non-Cancelled Contracts", func(t *testing.T) {
		contracts := &fakeContracts{contracts: []*domain.ServicioContratado{
			contractFor(domain.EstadoPendiente, 3),
			contractFor(domain.EstadoConfirmado, 2),
			contractFor(domain.EstadoCompletado, 1),
			contractFor(domain.EstadoCancelado, 4),
		}}
		engine := NewEngine(&fakeCatalog{servicio: spaService()}, &fakeSlots{slots: []*domain.AvailabilitySlot{mondaySlot()}}, contracts, noopLogger{})

		report, err := engine.RemainingCapacity(context.Background(), 7, monday, "10:00")
		require.NoError(t, err)
		assert.Equal(t, 6, report.Ocupados)
		assert.Equal(t, 4, report.Disponibles)
		assert.False(t, report.IsFull())

		// Fixed slots query the exact start time.
		require.NotNil(t, contracts.lastFilter.HoraExacta)
		assert.Equal(t, types.TimeString("10:00"), *contracts.lastFilter.HoraExacta)
	})

	t.Run("Cancellation Frees Capacity", func(t *testing.T) {
		contracts := &fakeContracts{contracts: []*domain.ServicioContratado{
			contractFor(domain.EstadoCancelado, 10),
		}}
		engine := NewEngine(&fakeCatalog{servicio: spaService()}, &fakeSlots{slots: []*domain.AvailabilitySlot{mondaySlot()}}, contracts, noopLogger{})

		report, err := engine.RemainingCapacity(context.Background(), 7, monday, "10:00")
		require.NoError(t, err)
		assert.Equal(t, 0, report.Ocupados)
		assert.Equal(t, 10, report.Disponibles)
	})

	t.Run("Wrong Weekday Not Bookable", func(t *testing.T) {
		tuesday := monday.AddDate(0, 0, 1)
		engine := NewEngine(&fakeCatalog{servicio: spaService()}, &fakeSlots{slots: []*domain.AvailabilitySlot{mondaySlot()}}, &fakeContracts{}, noopLogger{})

		_, err := engine.RemainingCapacity(context.Background(), 7, tuesday, "10:00")
		assert.ErrorIs(t, err, ErrNotBookable)
	})

	t.Run("Wrong Start Time Not Bookable", func(t *testing.T) {
		engine := NewEngine(&fakeCatalog{servicio: spaService()}, &fakeSlots{slots: []*domain.AvailabilitySlot{mondaySlot()}}, &fakeContracts{}, noopLogger{})

		_, err := engine.RemainingCapacity(context.Background(), 7, monday, "11:00")
		assert.ErrorIs(t, err, ErrNotBookable)
	})

	t.Run("Unavailable Service Not Bookable", func(t *testing.T) {
		servicio := spaService()
		servicio.Disponible = false
		engine := NewEngine(&fakeCatalog{servicio: servicio}, &fakeSlots{slots: []*domain.AvailabilitySlot{mondaySlot()}}, &fakeContracts{}, noopLogger{})

		_, err := engine.RemainingCapacity(context.Background(), 7, monday, "10:00")
		assert.ErrorIs(t, err, ErrNotBookable)
	})

	t.Run("Window Slot Pools Capacity", func(t *testing.T) {
		window := &domain.AvailabilitySlot{
			ID:         2,
			ServicioID: 7,
			HoraInicio: "09:00",
			HoraFin:    ptr.Ptr(types.TimeString("18:00")),
			FixedTime:  false,
			CupoMaximo: 5,
			Activo:     true,
		}
		contracts := &fakeContracts{contracts: []*domain.ServicioContratado{
			contractFor(domain.EstadoPendiente, 2),
		}}
		engine := NewEngine(&fakeCatalog{servicio: spaService()}, &fakeSlots{slots: []*domain.AvailabilitySlot{window}}, contracts, noopLogger{})

		// Any start inside the window draws from the same pool.
		report, err := engine.RemainingCapacity(context.Background(), 7, monday, "15:30")
		require.NoError(t, err)
		assert.Equal(t, 3, report.Disponibles)

		require.NotNil(t, contracts.lastFilter.HoraDesde)
		require.NotNil(t, contracts.lastFilter.HoraHasta)
		assert.Equal(t, types.TimeString("09:00"), *contracts.lastFilter.HoraDesde)
		assert.Equal(t, types.TimeString("18:00"), *contracts.lastFilter.HoraHasta)

		// The window end is exclusive.
		_, err = engine.RemainingCapacity(context.Background(), 7, monday, "18:00")
		assert.ErrorIs(t, err, ErrNotBookable)
	})
}

func TestCanAdmit(t *testing.T) {
	monday := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)

	t.Run("Admits Up To Capacity", func(t *testing.T) {
		contracts := &fakeContracts{contracts: []*domain.ServicioContratado{
			contractFor(domain.EstadoConfirmado, 8),
		}}
		engine := NewEngine(&fakeCatalog{servicio: spaService()}, &fakeSlots{slots: []*domain.AvailabilitySlot{mondaySlot()}}, contracts, noopLogger{})

		assert.NoError(t, engine.CanAdmit(context.Background(), 7, monday, "10:00", 2, 0))
	})

	t.Run("Rejects Over Capacity", func(t *testing.T) {
		contracts := &fakeContracts{contracts: []*domain.ServicioContratado{
			contractFor(domain.EstadoConfirmado, 8),
		}}
		engine := NewEngine(&fakeCatalog{servicio: spaService()}, &fakeSlots{slots: []*domain.AvailabilitySlot{mondaySlot()}}, contracts, noopLogger{})

		err := engine.CanAdmit(context.Background(), 7, monday, "10:00", 3, 0)
		assert.ErrorIs(t, err, ErrCapacityExceeded)
	})

	t.Run("Capacity Pool Resets Per Date", func(t *testing.T) {
		// The slot is fully booked on 2024-06-03; the identical request
		// one week later draws from a fresh pool.
		contracts := &dateFilteringContracts{contracts: []*domain.ServicioContratado{
			contractFor(domain.EstadoConfirmado, 10),
		}}
		engine := NewEngine(&fakeCatalog{servicio: spaService()}, &fakeSlots{slots: []*domain.AvailabilitySlot{mondaySlot()}}, contracts, noopLogger{})

		err := engine.CanAdmit(context.Background(), 7, monday, "10:00", 1, 0)
		assert.ErrorIs(t, err, ErrCapacityExceeded)

		nextMonday := monday.AddDate(0, 0, 7)
		assert.NoError(t, engine.CanAdmit(context.Background(), 7, nextMonday, "10:00", 1, 0))
		assert.True(t, contracts.lastFilter.Fecha.Equal(nextMonday))
	})

	t.Run("Counts Persons When Configured", func(t *testing.T) {
		servicio := spaService()
		servicio.UnidadCapacidad = domain.CapacidadPorPersonas

		occupying := contractFor(domain.EstadoConfirmado, 1)
		occupying.NumeroPersonas = 7
		contracts := &fakeContracts{contracts: []*domain.ServicioContratado{occupying}}
		engine := NewEngine(&fakeCatalog{servicio: servicio}, &fakeSlots{slots: []*domain.AvailabilitySlot{mondaySlot()}}, contracts, noopLogger{})

		// cantidad is ignored, only persons count: 7 + 3 fits in 10.
		assert.NoError(t, engine.CanAdmit(context.Background(), 7, monday, "10:00", 99, 3))
		assert.ErrorIs(t, engine.CanAdmit(context.Background(), 7, monday, "10:00", 1, 4), ErrCapacityExceeded)
	})
}
