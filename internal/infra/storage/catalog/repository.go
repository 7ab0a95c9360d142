package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/hotelops/booking-service/internal/domain"
	"github.com/hotelops/booking-service/pkg/dbmetrics"
	"github.com/hotelops/booking-service/pkg/psqlbuilder"
)

// Repository reads the bookable-service catalog. The catalog is owned by
// catalog management; the booking core only looks services up.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository creates a catalog reader.
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID fetches one bookable service.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Servicio, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"nombre",
		"tipo",
		"precio_unitario",
		"disponible",
		"unidad_capacidad",
	).
		From("servicios").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.Servicio
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&s.Nombre,
		&s.Tipo,
		&s.PrecioUnitario,
		&s.Disponible,
		&s.UnidadCapacidad,
	)

	if err == sql.ErrNoRows {
		return nil, ErrServicioNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan service: %v", ErrScanRow, err)
	}

	return &s, nil
}
