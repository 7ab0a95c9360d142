package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hotelops/booking-service/pkg/dbmetrics"
)

type fakeTx struct {
	committed  bool
	rolledBack bool
}

func (t *fakeTx) ExecContext(context.Context, string, ...interface{}) (sql.Result, error) {
	return nil, nil
}

func (t *fakeTx) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) {
	return nil, nil
}

func (t *fakeTx) QueryRowContext(context.Context, string, ...interface{}) *sql.Row {
	return nil
}

func (t *fakeTx) Commit() error {
	t.committed = true
	return nil
}

func (t *fakeTx) Rollback() error {
	t.rolledBack = true
	return nil
}

type fakeBeginner struct {
	txs []*fakeTx
}

func (b *fakeBeginner) BeginTx(context.Context, *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	tx := &fakeTx{}
	b.txs = append(b.txs, tx)
	return tx, nil
}

func TestDo(t *testing.T) {
	t.Run("Commits On Success", func(t *testing.T) {
		beginner := &fakeBeginner{}
		m := NewTransactionManager(beginner)

		var sawTx bool
		err := m.Do(context.Background(), func(ctx context.Context) error {
			sawTx = dbmetrics.IsInTransaction(ctx)
			return nil
		})
		require.NoError(t, err)
		assert.True(t, sawTx)
		require.Len(t, beginner.txs, 1)
		assert.True(t, beginner.txs[0].committed)
		assert.False(t, beginner.txs[0].rolledBack)
	})

	t.Run("Rolls Back On Error", func(t *testing.T) {
		beginner := &fakeBeginner{}
		m := NewTransactionManager(beginner)

		boom := errors.New("boom")
		err := m.Do(context.Background(), func(ctx context.Context) error {
			return boom
		})
		assert.ErrorIs(t, err, boom)
		require.Len(t, beginner.txs, 1)
		assert.True(t, beginner.txs[0].rolledBack)
		assert.False(t, beginner.txs[0].committed)
	})
}

func TestDoSerializable(t *testing.T) {
	conflict := &pq.Error{Code: "40001"}

	t.Run("Retries On Serialization Failure", func(t *testing.T) {
		beginner := &fakeBeginner{}
		m := NewTransactionManager(beginner)

		attempts := 0
		err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
			attempts++
			if attempts < 3 {
				return conflict
			}
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 3, attempts)
		require.Len(t, beginner.txs, 3)
		assert.True(t, beginner.txs[2].committed)
	})

	t.Run("Gives Up After Budget", func(t *testing.T) {
		beginner := &fakeBeginner{}
		m := NewTransactionManager(beginner)

		attempts := 0
		err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
			attempts++
			return conflict
		})
		assert.ErrorIs(t, err, ErrRetriesExhausted)
		assert.Equal(t, maxSerializableRetries, attempts)
	})

	t.Run("Does Not Retry Other Errors", func(t *testing.T) {
		beginner := &fakeBeginner{}
		m := NewTransactionManager(beginner)

		boom := errors.New("not a conflict")
		attempts := 0
		err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
			attempts++
			return boom
		})
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, 1, attempts)
	})
}
