package payment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/hotelops/booking-service/internal/domain"
	"github.com/hotelops/booking-service/pkg/dbmetrics"
	"github.com/hotelops/booking-service/pkg/psqlbuilder"
)

// uniqueViolation is the SQLSTATE postgres reports for a unique constraint
// breach; pagos.transaccion_externa carries a unique index.
const uniqueViolation = "23505"

var pagoColumns = []string{
	"id",
	"reserva_id",
	"servicio_contratado_id",
	"monto",
	"moneda",
	"metodo",
	"estado",
	"transaccion_externa",
	"created_at",
	"updated_at",
}

// Repository persists payments. The external transaction id is the
// idempotency anchor for webhook redelivery: it is unique, and the success
// effect is applied through a conditional update that fires at most once.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository creates a payment repository.
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a payment row. A duplicate external transaction id yields
// ErrDuplicateExternalID.
func (r *Repository) Create(ctx context.Context, p *domain.Pago) (*domain.Pago, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("pagos").
		Columns(
			"reserva_id",
			"servicio_contratado_id",
			"monto",
			"moneda",
			"metodo",
			"estado",
			"transaccion_externa",
		).
		Values(
			p.ReservaID,
			p.ServicioContratadoID,
			p.Monto,
			p.Moneda,
			p.Metodo,
			p.Estado,
			p.TransaccionExterna,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&p.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return nil, ErrDuplicateExternalID
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	p.CreadoEn = createdAt.Time
	p.ActualizadoEn = updatedAt.Time

	return p, nil
}

// GetByExternalID fetches the payment correlated with a gateway transaction.
func (r *Repository) GetByExternalID(ctx context.Context, externalID string) (*domain.Pago, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(pagoColumns...).
		From("pagos").
		Where(squirrel.Eq{"transaccion_externa": externalID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByExternalID - build select query: %v", ErrBuildQuery, err)
	}

	var p domain.Pago
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&p.ID,
		&p.ReservaID,
		&p.ServicioContratadoID,
		&p.Monto,
		&p.Moneda,
		&p.Metodo,
		&p.Estado,
		&p.TransaccionExterna,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrPagoNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByExternalID - scan payment: %v", ErrScanRow, err)
	}

	p.CreadoEn = createdAt.Time
	p.ActualizadoEn = updatedAt.Time

	return &p, nil
}

// MarkProcessed flips the payment to Aprobado, conditionally: it only fires
// if the row is not Aprobado yet. The returned bool reports whether this
// call performed the transition; false means a redelivered event already
// consumed it.
func (r *Repository) MarkProcessed(ctx context.Context, externalID string) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("pagos").
		Set("estado", domain.PagoAprobado).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"transaccion_externa": externalID}).
		Where(squirrel.NotEq{"estado": string(domain.PagoAprobado)}).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: MarkProcessed - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: MarkProcessed - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: MarkProcessed - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected > 0, nil
}

// UpdateEstado sets the payment state by external transaction id.
func (r *Repository) UpdateEstado(ctx context.Context, externalID string, estado domain.EstadoPago) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("pagos").
		Set("estado", estado).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"transaccion_externa": externalID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateEstado - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateEstado - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateEstado - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrPagoNotFound
	}

	return nil
}
