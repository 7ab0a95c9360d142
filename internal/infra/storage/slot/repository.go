package slot

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/hotelops/booking-service/internal/domain"
	"github.com/hotelops/booking-service/pkg/dbmetrics"
	"github.com/hotelops/booking-service/pkg/psqlbuilder"
	"github.com/hotelops/booking-service/pkg/types"
)

var slotColumns = []string{
	"id",
	"servicio_id",
	"dia_semana",
	"hora_inicio",
	"hora_fin",
	"fixed_time",
	"cupo_maximo",
	"activo",
	"created_at",
	"updated_at",
}

// Repository reads availability slot definitions. Slots are operator-managed
// elsewhere; the booking core never writes them.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository creates an availability-slot repository.
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID fetches one slot definition, active or not.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.AvailabilitySlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(slotColumns...).
		From("servicio_disponibilidades").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	s, err := scanSlot(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan slot: %v", ErrScanRow, err)
	}

	return s, nil
}

// GetActiveByServicio lists the active slot definitions for a service,
// ordered by day of week and start time.
func (r *Repository) GetActiveByServicio(ctx context.Context, servicioID int64) ([]*domain.AvailabilitySlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(slotColumns...).
		From("servicio_disponibilidades").
		Where(squirrel.Eq{"servicio_id": servicioID}).
		Where(squirrel.Eq{"activo": true}).
		OrderBy("dia_semana ASC NULLS FIRST, hora_inicio ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByServicio - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByServicio - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]*domain.AvailabilitySlot, 0)

	for rows.Next() {
		s, err := scanSlot(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: GetActiveByServicio - scan row: %v", ErrScanRow, err)
		}
		slots = append(slots, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetActiveByServicio - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}

func scanSlot(scan func(dest ...interface{}) error) (*domain.AvailabilitySlot, error) {
	var s domain.AvailabilitySlot
	var diaSemana sql.NullInt64
	var horaFin sql.NullString
	var createdAt, updatedAt sql.NullTime

	err := scan(
		&s.ID,
		&s.ServicioID,
		&diaSemana,
		&s.HoraInicio,
		&horaFin,
		&s.FixedTime,
		&s.CupoMaximo,
		&s.Activo,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if diaSemana.Valid {
		wd := time.Weekday(diaSemana.Int64)
		s.DiaSemana = &wd
	}
	if horaFin.Valid {
		hf, err := types.NewTimeStringFromString(truncate(horaFin.String))
		if err != nil {
			return nil, err
		}
		s.HoraFin = &hf
	}

	s.CreadoEn = createdAt.Time
	s.ActualizadoEn = updatedAt.Time

	return &s, nil
}

// truncate drops the seconds a TIME column may carry.
func truncate(s string) string {
	if len(s) > 5 {
		return s[:5]
	}
	return s
}
