package reservations

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hotelops/booking-service/internal/domain"
	reservationRepo "github.com/hotelops/booking-service/internal/infra/storage/reservation"
)

type fakeRepo struct {
	reserva *domain.Reserva
	items   []*domain.ReservaHabitacion
	getErr  error

	headerSet  *bool
	itemsSet   *bool
	headerErr  error
	itemsErr   error
}

func (f *fakeRepo) GetByID(_ context.Context, _ int64) (*domain.Reserva, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	r := *f.reserva
	return &r, nil
}

func (f *fakeRepo) GetLineItems(_ context.Context, _ int64) ([]*domain.ReservaHabitacion, error) {
	return f.items, nil
}

func (f *fakeRepo) SetActiva(_ context.Context, _ int64, activa bool) error {
	if f.headerErr != nil {
		return f.headerErr
	}
	f.headerSet = &activa
	return nil
}

func (f *fakeRepo) SetLineItemsActiva(_ context.Context, _ int64, activa bool) error {
	if f.itemsErr != nil {
		return f.itemsErr
	}
	f.itemsSet = &activa
	return nil
}

// passthroughTx runs the function directly, like a committed transaction.
type passthroughTx struct{}

func (passthroughTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func inactiveReserva() *domain.Reserva {
	return &domain.Reserva{
		ID:        3,
		ClienteID: 41,
		Activa:    false,
		Estado:    domain.ReservaPendiente,
	}
}

func TestActivate(t *testing.T) {
	t.Run("Activates Header And Line Items", func(t *testing.T) {
		repo := &fakeRepo{reserva: inactiveReserva()}
		svc := NewService(repo, passthroughTx{}, noopLogger{})

		require.NoError(t, svc.Activate(context.Background(), 3))
		require.NotNil(t, repo.headerSet)
		require.NotNil(t, repo.itemsSet)
		assert.True(t, *repo.headerSet)
		assert.True(t, *repo.itemsSet)
	})

	t.Run("Already Active Is NoOp", func(t *testing.T) {
		reserva := inactiveReserva()
		reserva.Activa = true
		repo := &fakeRepo{reserva: reserva}
		svc := NewService(repo, passthroughTx{}, noopLogger{})

		require.NoError(t, svc.Activate(context.Background(), 3))
		assert.Nil(t, repo.headerSet)
		assert.Nil(t, repo.itemsSet)
	})

	t.Run("Not Found", func(t *testing.T) {
		repo := &fakeRepo{getErr: reservationRepo.ErrReservaNotFound}
		svc := NewService(repo, passthroughTx{}, noopLogger{})

		err := svc.Activate(context.Background(), 3)
		assert.ErrorIs(t, err, ErrReservaNotFound)
	})

	t.Run("Line Item Failure Fails Whole Operation", func(t *testing.T) {
		repo := &fakeRepo{reserva: inactiveReserva(), itemsErr: errors.New("disk on fire")}
		svc := NewService(repo, passthroughTx{}, noopLogger{})

		err := svc.Activate(context.Background(), 3)
		assert.ErrorIs(t, err, ErrInternal)
	})
}

func TestDeactivate(t *testing.T) {
	t.Run("Deactivates Header And Line Items", func(t *testing.T) {
		reserva := inactiveReserva()
		reserva.Activa = true
		repo := &fakeRepo{reserva: reserva}
		svc := NewService(repo, passthroughTx{}, noopLogger{})

		require.NoError(t, svc.Deactivate(context.Background(), 3))
		require.NotNil(t, repo.headerSet)
		require.NotNil(t, repo.itemsSet)
		assert.False(t, *repo.headerSet)
		assert.False(t, *repo.itemsSet)
	})

	t.Run("Already Inactive Is NoOp", func(t *testing.T) {
		repo := &fakeRepo{reserva: inactiveReserva()}
		svc := NewService(repo, passthroughTx{}, noopLogger{})

		require.NoError(t, svc.Deactivate(context.Background(), 3))
		assert.Nil(t, repo.headerSet)
	})
}

func TestGetByID(t *testing.T) {
	repo := &fakeRepo{
		reserva: inactiveReserva(),
		items: []*domain.ReservaHabitacion{
			{ID: 1, ReservaID: 3, HabitacionID: 101},
			{ID: 2, ReservaID: 3, HabitacionID: 102},
		},
	}
	svc := NewService(repo, passthroughTx{}, noopLogger{})

	reserva, err := svc.GetByID(context.Background(), 3)
	require.NoError(t, err)
	assert.Len(t, reserva.Habitaciones, 2)
	assert.Equal(t, int64(101), reserva.Habitaciones[0].HabitacionID)
}
