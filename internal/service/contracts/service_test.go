package contracts

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hotelops/booking-service/internal/domain"
	contractRepo "github.com/hotelops/booking-service/internal/infra/storage/contract"
)

type fakeRepo struct {
	contract *domain.ServicioContratado
	getErr   error

	updatedEstado *domain.EstadoServicio
	cancelMotivo  *string
	cancelCalled  bool
}

func (f *fakeRepo) GetByID(_ context.Context, _ int64) (*domain.ServicioContratado, error) {
	return f.contract, f.getErr
}

func (f *fakeRepo) GetByReservaID(_ context.Context, _ int64) ([]*domain.ServicioContratado, error) {
	if f.contract == nil {
		return nil, nil
	}
	return []*domain.ServicioContratado{f.contract}, nil
}

func (f *fakeRepo) UpdateEstado(_ context.Context, _ int64, estado domain.EstadoServicio) error {
	f.updatedEstado = &estado
	return nil
}

func (f *fakeRepo) Cancel(_ context.Context, _ int64, motivo *string) error {
	f.cancelCalled = true
	f.cancelMotivo = motivo
	return nil
}

type fakeNotifier struct {
	calledKey *string
	calledID  int64
	err       error
}

func (f *fakeNotifier) NotifyServiceCompleted(_ context.Context, key string, id int64) error {
	f.calledKey = &key
	f.calledID = id
	return f.err
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func contractIn(estado domain.EstadoServicio) *domain.ServicioContratado {
	return &domain.ServicioContratado{
		ID:         15,
		ServicioID: 7,
		Cantidad:   1,
		Estado:     estado,
	}
}

func TestConfirmar(t *testing.T) {
	t.Run("Pendiente Becomes Confirmado", func(t *testing.T) {
		repo := &fakeRepo{contract: contractIn(domain.EstadoPendiente)}
		svc := NewService(repo, &fakeNotifier{}, noopLogger{})

		require.NoError(t, svc.Confirmar(context.Background(), 15))
		require.NotNil(t, repo.updatedEstado)
		assert.Equal(t, domain.EstadoConfirmado, *repo.updatedEstado)
	})

	t.Run("Already Confirmado Is NoOp", func(t *testing.T) {
		repo := &fakeRepo{contract: contractIn(domain.EstadoConfirmado)}
		svc := NewService(repo, &fakeNotifier{}, noopLogger{})

		require.NoError(t, svc.Confirmar(context.Background(), 15))
		assert.Nil(t, repo.updatedEstado)
	})

	t.Run("Cancelado Is Rejected", func(t *testing.T) {
		repo := &fakeRepo{contract: contractIn(domain.EstadoCancelado)}
		svc := NewService(repo, &fakeNotifier{}, noopLogger{})

		err := svc.Confirmar(context.Background(), 15)
		assert.ErrorIs(t, err, ErrContractCancelled)
		assert.Nil(t, repo.updatedEstado)
	})

	t.Run("Not Found", func(t *testing.T) {
		repo := &fakeRepo{getErr: contractRepo.ErrContractNotFound}
		svc := NewService(repo, &fakeNotifier{}, noopLogger{})

		err := svc.Confirmar(context.Background(), 15)
		assert.ErrorIs(t, err, ErrContractNotFound)
	})
}

func TestCompletar(t *testing.T) {
	key := "reception-desk"

	t.Run("Confirmado Becomes Completado And Notifies", func(t *testing.T) {
		repo := &fakeRepo{contract: contractIn(domain.EstadoConfirmado)}
		notifier := &fakeNotifier{}
		svc := NewService(repo, notifier, noopLogger{})

		require.NoError(t, svc.Completar(context.Background(), 15, &key))
		require.NotNil(t, repo.updatedEstado)
		assert.Equal(t, domain.EstadoCompletado, *repo.updatedEstado)
		require.NotNil(t, notifier.calledKey)
		assert.Equal(t, key, *notifier.calledKey)
		assert.Equal(t, int64(15), notifier.calledID)
	})

	t.Run("Notification Failure Does Not Undo Transition", func(t *testing.T) {
		repo := &fakeRepo{contract: contractIn(domain.EstadoConfirmado)}
		notifier := &fakeNotifier{err: errors.New("messaging down")}
		svc := NewService(repo, notifier, noopLogger{})

		require.NoError(t, svc.Completar(context.Background(), 15, &key))
		require.NotNil(t, repo.updatedEstado)
		assert.Equal(t, domain.EstadoCompletado, *repo.updatedEstado)
	})

	t.Run("No Key No Notification", func(t *testing.T) {
		repo := &fakeRepo{contract: contractIn(domain.EstadoConfirmado)}
		notifier := &fakeNotifier{}
		svc := NewService(repo, notifier, noopLogger{})

		require.NoError(t, svc.Completar(context.Background(), 15, nil))
		assert.Nil(t, notifier.calledKey)
	})

	t.Run("Pendiente Cannot Complete", func(t *testing.T) {
		repo := &fakeRepo{contract: contractIn(domain.EstadoPendiente)}
		svc := NewService(repo, &fakeNotifier{}, noopLogger{})

		err := svc.Completar(context.Background(), 15, nil)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("Already Completado Is NoOp", func(t *testing.T) {
		repo := &fakeRepo{contract: contractIn(domain.EstadoCompletado)}
		svc := NewService(repo, &fakeNotifier{}, noopLogger{})

		require.NoError(t, svc.Completar(context.Background(), 15, nil))
		assert.Nil(t, repo.updatedEstado)
	})
}

func TestCancelar(t *testing.T) {
	motivo := "cliente no se presentó"

	t.Run("Pendiente Can Cancel", func(t *testing.T) {
		repo := &fakeRepo{contract: contractIn(domain.EstadoPendiente)}
		svc := NewService(repo, &fakeNotifier{}, noopLogger{})

		require.NoError(t, svc.Cancelar(context.Background(), 15, &motivo))
		assert.True(t, repo.cancelCalled)
		require.NotNil(t, repo.cancelMotivo)
		assert.Equal(t, motivo, *repo.cancelMotivo)
	})

	t.Run("Confirmado Can Cancel", func(t *testing.T) {
		repo := &fakeRepo{contract: contractIn(domain.EstadoConfirmado)}
		svc := NewService(repo, &fakeNotifier{}, noopLogger{})

		require.NoError(t, svc.Cancelar(context.Background(), 15, nil))
		assert.True(t, repo.cancelCalled)
	})

	t.Run("Completado Cannot Cancel", func(t *testing.T) {
		repo := &fakeRepo{contract: contractIn(domain.EstadoCompletado)}
		svc := NewService(repo, &fakeNotifier{}, noopLogger{})

		err := svc.Cancelar(context.Background(), 15, nil)
		assert.ErrorIs(t, err, ErrInvalidTransition)
		assert.False(t, repo.cancelCalled)
	})

	t.Run("Already Cancelado Is NoOp", func(t *testing.T) {
		repo := &fakeRepo{contract: contractIn(domain.EstadoCancelado)}
		svc := NewService(repo, &fakeNotifier{}, noopLogger{})

		require.NoError(t, svc.Cancelar(context.Background(), 15, nil))
		assert.False(t, repo.cancelCalled)
	})

	t.Run("Motivo Too Long Is Rejected", func(t *testing.T) {
		repo := &fakeRepo{contract: contractIn(domain.EstadoPendiente)}
		svc := NewService(repo, &fakeNotifier{}, noopLogger{})

		long := strings.Repeat("x", domain.MaxMotivoLength+1)
		err := svc.Cancelar(context.Background(), 15, &long)
		assert.ErrorIs(t, err, ErrMotivoTooLong)
		assert.False(t, repo.cancelCalled)
	})
}
