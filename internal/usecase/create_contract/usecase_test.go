package create_contract

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hotelops/booking-service/internal/domain"
	catalogRepo "github.com/hotelops/booking-service/internal/infra/storage/catalog"
	"github.com/hotelops/booking-service/internal/service/availability"
	"github.com/hotelops/booking-service/pkg/ptr"
	"github.com/hotelops/booking-service/pkg/types"
)

type fakeContracts struct {
	created *domain.ServicioContratado
}

func (f *fakeContracts) Create(_ context.Context, c *domain.ServicioContratado) (*domain.ServicioContratado, error) {
	stored := *c
	stored.ID = 100
	stored.CreadoEn = time.Now()
	stored.ActualizadoEn = stored.CreadoEn
	f.created = &stored
	return &stored, nil
}

type fakeCatalog struct {
	servicio *domain.Servicio
	err      error
}

func (f *fakeCatalog) GetByID(_ context.Context, _ int64) (*domain.Servicio, error) {
	return f.servicio, f.err
}

type fakeReservations struct {
	err error
}

func (f *fakeReservations) GetByID(_ context.Context, id int64) (*domain.Reserva, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Reserva{ID: id}, nil
}

type fakeEngine struct {
	admitErr error
	called   bool
}

func (f *fakeEngine) CanAdmit(_ context.Context, _ int64, _ time.Time, _ types.TimeString, _, _ int) error {
	f.called = true
	return f.admitErr
}

// passthroughTx runs the function directly, like a committed transaction.
type passthroughTx struct{}

func (passthroughTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func validRequest() *Request {
	return &Request{
		ServicioID:     7,
		ReservaID:      ptr.Ptr(int64(3)),
		Fecha:          time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC),
		HoraInicio:     "10:00",
		Cantidad:       2,
		NumeroPersonas: 2,
	}
}

func catalogEntry() *domain.Servicio {
	return &domain.Servicio{
		ID:              7,
		Nombre:          "Circuito spa",
		PrecioUnitario:  45,
		Disponible:      true,
		UnidadCapacidad: domain.CapacidadPorCantidad,
	}
}

func newUseCase(contracts *fakeContracts, catalog *fakeCatalog, reservations *fakeReservations, engine *fakeEngine) *UseCase {
	return NewUseCase(contracts, catalog, reservations, engine, passthroughTx{}, noopLogger{})
}

func TestExecute(t *testing.T) {
	t.Run("Creates Pendiente With Denormalized Catalog Data", func(t *testing.T) {
		contracts := &fakeContracts{}
		engine := &fakeEngine{}
		uc := newUseCase(contracts, &fakeCatalog{servicio: catalogEntry()}, &fakeReservations{}, engine)

		resp, err := uc.Execute(context.Background(), validRequest())
		require.NoError(t, err)
		assert.True(t, engine.called)
		assert.Equal(t, int64(100), resp.ID)
		assert.Equal(t, string(domain.EstadoPendiente), resp.Estado)
		assert.Equal(t, "Circuito spa", resp.NombreServicio)
		assert.Equal(t, 45.0, resp.PrecioUnitario)

		require.NotNil(t, contracts.created)
		assert.Equal(t, domain.EstadoPendiente, contracts.created.Estado)
	})

	t.Run("Capacity Exceeded Creates Nothing", func(t *testing.T) {
		contracts := &fakeContracts{}
		engine := &fakeEngine{admitErr: availability.ErrCapacityExceeded}
		uc := newUseCase(contracts, &fakeCatalog{servicio: catalogEntry()}, &fakeReservations{}, engine)

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrCapacityExceeded)
		assert.Nil(t, contracts.created)
	})

	t.Run("Not Bookable", func(t *testing.T) {
		engine := &fakeEngine{admitErr: availability.ErrNotBookable}
		uc := newUseCase(&fakeContracts{}, &fakeCatalog{servicio: catalogEntry()}, &fakeReservations{}, engine)

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrNotBookable)
	})

	t.Run("Servicio Not Found", func(t *testing.T) {
		uc := newUseCase(&fakeContracts{}, &fakeCatalog{err: catalogRepo.ErrServicioNotFound}, &fakeReservations{}, &fakeEngine{})

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrServicioNotFound)
	})

	t.Run("Servicio Not Available", func(t *testing.T) {
		servicio := catalogEntry()
		servicio.Disponible = false
		engine := &fakeEngine{}
		uc := newUseCase(&fakeContracts{}, &fakeCatalog{servicio: servicio}, &fakeReservations{}, engine)

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrServicioNotAvailable)
		assert.False(t, engine.called)
	})

	t.Run("Validation Failures", func(t *testing.T) {
		uc := newUseCase(&fakeContracts{}, &fakeCatalog{servicio: catalogEntry()}, &fakeReservations{}, &fakeEngine{})

		for name, mutate := range map[string]func(*Request){
			"No Target":        func(r *Request) { r.ReservaID = nil; r.ClienteID = nil },
			"Zero ServicioID":  func(r *Request) { r.ServicioID = 0 },
			"Zero Fecha":       func(r *Request) { r.Fecha = time.Time{} },
			"Empty HoraInicio": func(r *Request) { r.HoraInicio = "" },
			"Bad HoraInicio":   func(r *Request) { r.HoraInicio = "25:99" },
			"Zero Cantidad":    func(r *Request) { r.Cantidad = 0 },
			"Negative Personas": func(r *Request) {
				r.NumeroPersonas = -1
			},
		} {
			req := validRequest()
			mutate(req)
			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput, name)
		}
	})
}
