package reservation

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/hotelops/booking-service/internal/domain"
	"github.com/hotelops/booking-service/pkg/dbmetrics"
	"github.com/hotelops/booking-service/pkg/psqlbuilder"
)

// Repository persists reservations and their room line items. Relationships
// are plain foreign keys looked up on demand; line items never hold a parent
// object back-reference.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository creates a reservation repository.
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID fetches a reservation without its line items.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reserva, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"cliente_id",
		"fecha_inicio",
		"fecha_fin",
		"activa",
		"estado",
		"created_at",
	).
		From("reservas").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var res domain.Reserva
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&res.ID,
		&res.ClienteID,
		&res.FechaInicio,
		&res.FechaFin,
		&res.Activa,
		&res.Estado,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrReservaNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", ErrScanRow, err)
	}

	res.CreadoEn = createdAt.Time

	return &res, nil
}

// GetLineItems lists the room line items of a reservation.
func (r *Repository) GetLineItems(ctx context.Context, reservaID int64) ([]*domain.ReservaHabitacion, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"reserva_id",
		"habitacion_id",
		"activa",
	).
		From("reserva_habitaciones").
		Where(squirrel.Eq{"reserva_id": reservaID}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetLineItems - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetLineItems - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	items := make([]*domain.ReservaHabitacion, 0)

	for rows.Next() {
		var item domain.ReservaHabitacion
		if err := rows.Scan(&item.ID, &item.ReservaID, &item.HabitacionID, &item.Activa); err != nil {
			return nil, fmt.Errorf("%w: GetLineItems - scan row: %v", ErrScanRow, err)
		}
		items = append(items, &item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetLineItems - rows error: %v", ErrScanRow, err)
	}

	return items, nil
}

// SetActiva updates the reservation's activa flag. Callers must run this and
// SetLineItemsActiva inside one transaction; the flag and its line items are
// never allowed to disagree.
func (r *Repository) SetActiva(ctx context.Context, id int64, activa bool) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservas").
		Set("activa", activa).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetActiva - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetActiva - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetActiva - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrReservaNotFound
	}

	return nil
}

// SetLineItemsActiva cascades the activa flag to every line item of the
// reservation. Zero affected rows is valid: a reservation may have no rooms
// attached yet.
func (r *Repository) SetLineItemsActiva(ctx context.Context, reservaID int64, activa bool) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reserva_habitaciones").
		Set("activa", activa).
		Where(squirrel.Eq{"reserva_id": reservaID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetLineItemsActiva - build update query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: SetLineItemsActiva - execute update: %v", ErrExecQuery, err)
	}

	return nil
}
