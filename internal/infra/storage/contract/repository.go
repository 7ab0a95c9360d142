package contract

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

var contractColumns = []string{
	"id",
	"servicio_id",
	"reserva_id",
	"cliente_id",
	"fecha",
	"hora_inicio",
	"cantidad",
	"numero_personas",
	"estado",
	"nombre_servicio",
	"precio_unitario",
	"notas",
	"motivo_cancelacion",
	"cancelado_en",
	"created_at",
	"updated_at",
}

// SlotKeyFilter selects the contracted services belonging to one slot key:
// a (service, date) pair, optionally narrowed to an exact start time
// (fixed-time slots) or to a [HoraDesde, HoraHasta) window (window slots).
type SlotKeyFilter struct {
	ServicioID       int64
	Fecha            time.Time
	HoraExacta       *types.TimeString
	HoraDesde        *types.TimeString
	HoraHasta        *types.TimeString
	IncludeCancelled bool
}

// Repository persists contracted services.
type Repository struct {
	db DBExecutor
}

// NewRepository creates a contracted-service repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new contracted service. When the context carries an open
// transaction the insert joins it, which is how the admission usecase makes
// the capacity check and the insert one atomic unit.
func (r *Repository) Create(ctx context.Context, s *domain.ServicioContratado) (*domain.ServicioContratado, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("servicios_contratados").
		Columns(
			"servicio_id",
			"reserva_id",
			"cliente_id",
			"fecha",
			"hora_inicio",
			"cantidad",
			"numero_personas",
			"estado",
			"nombre_servicio",
			"precio_unitario",
			"notas",
		).
		Values(
			s.ServicioID,
			s.ReservaID,
			s.ClienteID,
			s.Fecha,
			s.HoraInicio,
			s.Cantidad,
			s.NumeroPersonas,
			s.Estado,
			s.NombreServicio,
			s.PrecioUnitario,
			s.Notas,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	s.CreadoEn = createdAt.Time
	s.ActualizadoEn = updatedAt.Time

	return s, nil
}

// GetByID fetches one contracted service.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.ServicioContratado, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(contractColumns...).
		From("servicios_contratados").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	s, err := scanContract(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrContractNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan contract: %v", ErrScanRow, err)
	}

	return s, nil
}

// GetByReservaID lists the contracted services attached to a reservation.
func (r *Repository) GetByReservaID(ctx context.Context, reservaID int64) ([]*domain.ServicioContratado, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(contractColumns...).
		From("servicios_contratados").
		Where(squirrel.Eq{"reserva_id": reservaID}).
		OrderBy("fecha ASC, hora_inicio ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByReservaID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByReservaID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanContracts(rows)
}

// GetBySlotKey lists the contracts for one slot key, cancelled ones excluded
// unless asked for. Inside a transaction the rows are locked (FOR UPDATE),
// so a concurrent admission on the same slot key blocks until this unit of
// work commits; combined with the serializable transaction manager this
// closes the read-then-write capacity race.
func (r *Repository) GetBySlotKey(ctx context.Context, filter SlotKeyFilter) ([]*domain.ServicioContratado, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(contractColumns...).
		From("servicios_contratados").
		Where(squirrel.Eq{"servicio_id": filter.ServicioID}).
		Where(squirrel.Eq{"fecha": filter.Fecha})

	if !filter.IncludeCancelled {
		occupying := make([]string, 0, len(domain.EstadosQueOcupanCupo))
		for _, estado := range domain.EstadosQueOcupanCupo {
			occupying = append(occupying, string(estado))
		}
		selectBuilder = selectBuilder.Where(squirrel.Eq{"estado": occupying})
	}

	if filter.HoraExacta != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"hora_inicio": *filter.HoraExacta})
	}
	if filter.HoraDesde != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"hora_inicio": *filter.HoraDesde})
	}
	if filter.HoraHasta != nil {
		selectBuilder = selectBuilder.Where(squirrel.Lt{"hora_inicio": *filter.HoraHasta})
	}

	selectBuilder = selectBuilder.OrderBy("hora_inicio ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetBySlotKey - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetBySlotKey - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanContracts(rows)
}

// UpdateEstado moves the contract to a new state.
func (r *Repository) UpdateEstado(ctx context.Context, id int64, estado domain.EstadoServicio) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("servicios_contratados").
		Set("estado", estado).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
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
		return ErrContractNotFound
	}

	return nil
}

// Cancel moves the contract to CANCELADO with an optional reason. Occupancy
// is computed live, so the freed capacity is visible to the next admission
// query immediately.
func (r *Repository) Cancel(ctx context.Context, id int64, motivo *string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("servicios_contratados").
		Set("estado", domain.EstadoCancelado).
		Set("motivo_cancelacion", motivo).
		Set("cancelado_en", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrContractNotFound
	}

	return nil
}

func scanContract(scan func(dest ...interface{}) error) (*domain.ServicioContratado, error) {
	var s domain.ServicioContratado
	var createdAt, updatedAt sql.NullTime

	err := scan(
		&s.ID,
		&s.ServicioID,
		&s.ReservaID,
		&s.ClienteID,
		&s.Fecha,
		&s.HoraInicio,
		&s.Cantidad,
		&s.NumeroPersonas,
		&s.Estado,
		&s.NombreServicio,
		&s.PrecioUnitario,
		&s.Notas,
		&s.MotivoCancelacion,
		&s.CanceladoEn,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	s.CreadoEn = createdAt.Time
	s.ActualizadoEn = updatedAt.Time

	return &s, nil
}

func scanContracts(rows *sql.Rows) ([]*domain.ServicioContratado, error) {
	contracts := make([]*domain.ServicioContratado, 0)

	for rows.Next() {
		s, err := scanContract(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: scanContracts - scan row: %v", ErrScanRow, err)
		}
		contracts = append(contracts, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanContracts - rows error: %v", ErrScanRow, err)
	}

	return contracts, nil
}
