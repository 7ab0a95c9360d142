package payment

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hotelops/booking-service/internal/domain"
	"github.com/hotelops/booking-service/pkg/ptr"
)

func TestCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		now := time.Now()
		mock.ExpectQuery(`INSERT INTO pagos .+ RETURNING id, created_at, updated_at`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
				AddRow(int64(50), now, now))

		created, err := repo.Create(context.Background(), &domain.Pago{
			ServicioContratadoID: ptr.Ptr(int64(15)),
			Monto:                45,
			Moneda:               "usd",
			Metodo:               domain.PagoTarjeta,
			Estado:               domain.PagoPendiente,
			TransaccionExterna:   "pi_123",
		})
		require.NoError(t, err)
		assert.Equal(t, int64(50), created.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Duplicate External ID", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO pagos`).
			WillReturnError(&pq.Error{Code: "23505"})

		_, err := repo.Create(context.Background(), &domain.Pago{
			ServicioContratadoID: ptr.Ptr(int64(15)),
			TransaccionExterna:   "pi_123",
		})
		assert.ErrorIs(t, err, ErrDuplicateExternalID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGetByExternalID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		now := time.Now()
		mock.ExpectQuery(`SELECT .+ FROM pagos WHERE transaccion_externa = \$1`).
			WithArgs("pi_123").
			WillReturnRows(sqlmock.NewRows(pagoColumns).AddRow(
				int64(50), nil, int64(15), 45.0, "usd",
				string(domain.PagoTarjeta), string(domain.PagoPendiente),
				"pi_123", now, now,
			))

		p, err := repo.GetByExternalID(context.Background(), "pi_123")
		require.NoError(t, err)
		assert.Equal(t, int64(50), p.ID)
		assert.False(t, p.IsProcessed())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not Found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .+ FROM pagos WHERE transaccion_externa = \$1`).
			WithArgs("pi_unknown").
			WillReturnRows(sqlmock.NewRows(pagoColumns))

		_, err := repo.GetByExternalID(context.Background(), "pi_unknown")
		assert.ErrorIs(t, err, ErrPagoNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestMarkProcessed(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("First Delivery Applies", func(t *testing.T) {
		mock.ExpectExec(`UPDATE pagos SET estado = \$1, updated_at = NOW\(\) WHERE transaccion_externa = \$2 AND estado <> \$3`).
			WithArgs(string(domain.PagoAprobado), "pi_123", string(domain.PagoAprobado)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		applied, err := repo.MarkProcessed(context.Background(), "pi_123")
		require.NoError(t, err)
		assert.True(t, applied)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Redelivery Does Not Apply", func(t *testing.T) {
		mock.ExpectExec(`UPDATE pagos`).
			WithArgs(string(domain.PagoAprobado), "pi_123", string(domain.PagoAprobado)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		applied, err := repo.MarkProcessed(context.Background(), "pi_123")
		require.NoError(t, err)
		assert.False(t, applied)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUpdateEstado(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec(`UPDATE pagos SET estado = \$1, updated_at = NOW\(\) WHERE transaccion_externa = \$2`).
			WithArgs(string(domain.PagoRechazado), "pi_123").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateEstado(context.Background(), "pi_123", domain.PagoRechazado)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not Found", func(t *testing.T) {
		mock.ExpectExec(`UPDATE pagos`).
			WithArgs(string(domain.PagoRechazado), "pi_unknown").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateEstado(context.Background(), "pi_unknown", domain.PagoRechazado)
		assert.ErrorIs(t, err, ErrPagoNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
