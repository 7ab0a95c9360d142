package availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hotelops/booking-service/internal/domain"
	"github.com/hotelops/booking-service/internal/infra/storage/catalog"
	"github.com/hotelops/booking-service/internal/infra/storage/contract"
	"github.com/hotelops/booking-service/pkg/types"
)

// Engine computes occupied and remaining capacity for a bookable service at
// a given day and time. Occupancy is never materialized as a counter: it is
// the live sum over non-cancelled contracts for the slot key, so cancelling
// a contract frees its capacity immediately.
//
// Slot key semantics:
//   - fixedTime=true:  (service, date, slot start); one bookable instance
//     per day, only the exact start time is admissible;
//   - fixedTime=false: (service, date); every start inside
//     [horaInicio, horaFin) draws from the same pool.
type Engine struct {
	catalogRepo  CatalogRepository
	slotRepo     SlotRepository
	contractRepo ContractRepository
	logger       Logger
}

// NewEngine creates an availability engine.
func NewEngine(
	catalogRepo CatalogRepository,
	slotRepo SlotRepository,
	contractRepo ContractRepository,
	logger Logger,
) *Engine {
	return &Engine{
		catalogRepo:  catalogRepo,
		slotRepo:     slotRepo,
		contractRepo: contractRepo,
		logger:       logger,
	}
}

// RemainingCapacity resolves the slot covering (servicio, fecha, horaInicio)
// and reports its occupancy. ErrNotBookable when no active slot covers the
// request; that is not the same thing as a full slot.
func (e *Engine) RemainingCapacity(ctx context.Context, servicioID int64, fecha time.Time, horaInicio types.TimeString) (*domain.CapacityReport, error) {
	servicio, err := e.catalogRepo.GetByID(ctx, servicioID)
	if err != nil {
		if errors.Is(err, catalog.ErrServicioNotFound) {
			return nil, ErrServicioNotFound
		}
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	if !servicio.Disponible {
		e.logger.Warn("RemainingCapacity: servicio id=%d is not available for booking", servicioID)
		return nil, ErrNotBookable
	}

	slot, err := e.resolveSlot(ctx, servicioID, fecha, horaInicio)
	if err != nil {
		return nil, err
	}

	return e.SlotCapacity(ctx, servicio, slot, fecha)
}

// CanAdmit checks whether a booking of the given size fits. Nil means
// admitted; ErrCapacityExceeded or ErrNotBookable otherwise. The counted
// unit (cantidad vs numero de personas) follows the service's capacity
// unit. Inside a transaction the underlying slot-key read locks the
// contract rows, making check-then-insert safe against concurrent
// admissions.
func (e *Engine) CanAdmit(ctx context.Context, servicioID int64, fecha time.Time, horaInicio types.TimeString, cantidad, numeroPersonas int) error {
	servicio, err := e.catalogRepo.GetByID(ctx, servicioID)
	if err != nil {
		if errors.Is(err, catalog.ErrServicioNotFound) {
			return ErrServicioNotFound
		}
		return fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	if !servicio.Disponible {
		return ErrNotBookable
	}

	slot, err := e.resolveSlot(ctx, servicioID, fecha, horaInicio)
	if err != nil {
		return err
	}

	report, err := e.SlotCapacity(ctx, servicio, slot, fecha)
	if err != nil {
		return err
	}

	requested := capacityUnits(servicio, cantidad, numeroPersonas)
	if requested > slot.CupoMaximo-report.Ocupados {
		e.logger.Warn("CanAdmit: capacity exceeded for servicio=%d fecha=%s: requested=%d occupied=%d max=%d",
			servicioID, fecha.Format(domain.DateFormat), requested, report.Ocupados, slot.CupoMaximo)
		return ErrCapacityExceeded
	}

	return nil
}

// SlotCapacity computes the occupancy report for one already-resolved slot
// on one calendar date.
func (e *Engine) SlotCapacity(ctx context.Context, servicio *domain.Servicio, slot *domain.AvailabilitySlot, fecha time.Time) (*domain.CapacityReport, error) {
	filter := contract.SlotKeyFilter{
		ServicioID: servicio.ID,
		Fecha:      fecha,
	}
	if slot.FixedTime {
		filter.HoraExacta = &slot.HoraInicio
	} else {
		filter.HoraDesde = &slot.HoraInicio
		filter.HoraHasta = slot.HoraFin
	}

	contracts, err := e.contractRepo.GetBySlotKey(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to load slot contracts: %v", ErrInternal, err)
	}

	occupied := 0
	for _, c := range contracts {
		if !c.OccupiesCapacity() {
			continue
		}
		occupied += capacityUnits(servicio, c.Cantidad, c.NumeroPersonas)
	}

	remaining := slot.CupoMaximo - occupied
	if remaining < 0 {
		remaining = 0
	}

	return &domain.CapacityReport{
		Ocupados:    occupied,
		Disponibles: remaining,
		Slot:        slot,
	}, nil
}

// resolveSlot finds the active slot definition covering the requested day
// and start time. The slot's own calendar day decides coverage; a request
// at exactly midnight belongs to that calendar day, never to a surrounding
// date range.
func (e *Engine) resolveSlot(ctx context.Context, servicioID int64, fecha time.Time, horaInicio types.TimeString) (*domain.AvailabilitySlot, error) {
	slots, err := e.slotRepo.GetActiveByServicio(ctx, servicioID)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to load slots: %v", ErrInternal, err)
	}

	for _, s := range slots {
		if s.CoversDay(fecha) && s.CoversStart(horaInicio) {
			return s, nil
		}
	}

	e.logger.Info("resolveSlot: no active slot covers servicio=%d fecha=%s hora=%s",
		servicioID, fecha.Format(domain.DateFormat), horaInicio)
	return nil, ErrNotBookable
}

// capacityUnits selects the column that counts against the slot capacity.
func capacityUnits(servicio *domain.Servicio, cantidad, numeroPersonas int) int {
	if servicio.UnidadCapacidad == domain.CapacidadPorPersonas {
		return numeroPersonas
	}
	return cantidad
}
