package get_availability

import (
	"context"
	"errors"
	"fmt"

	catalogRepo "github.com/hotelops/booking-service/internal/infra/storage/catalog"
	"github.com/hotelops/booking-service/pkg/ptr"
)

// UseCase lists the active availability slots of a catalog service,
// optionally with occupancy numbers for a concrete date.
type UseCase struct {
	catalogRepo CatalogRepository
	slotRepo    SlotRepository
	engine      AvailabilityEngine
	logger      Logger
}

// NewUseCase creates the usecase.
func NewUseCase(
	catalogRepo CatalogRepository,
	slotRepo SlotRepository,
	engine AvailabilityEngine,
	logger Logger,
) *UseCase {
	return &UseCase{
		catalogRepo: catalogRepo,
		slotRepo:    slotRepo,
		engine:      engine,
		logger:      logger,
	}
}

// Execute runs the usecase.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: servicio=%d", req.ServicioID)

	// 1. Validate the request.
	if req.ServicioID <= 0 {
		uc.logger.Warn("GetAvailability: validation failed: servicioID must be positive")
		return nil, fmt.Errorf("%w: servicioID must be positive", ErrInvalidInput)
	}

	// 2. Fetch the catalog entry.
	servicio, err := uc.catalogRepo.GetByID(ctx, req.ServicioID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServicioNotFound) {
			uc.logger.Warn("GetAvailability: servicio id=%d not found", req.ServicioID)
			return nil, ErrServicioNotFound
		}
		uc.logger.Error("GetAvailability: failed to get servicio id=%d: %v", req.ServicioID, err)
		return nil, fmt.Errorf("%w: failed to get servicio: %v", ErrInternal, err)
	}

	// 3. List the active slots.
	slots, err := uc.slotRepo.GetActiveByServicio(ctx, req.ServicioID)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get slots for servicio id=%d: %v", req.ServicioID, err)
		return nil, fmt.Errorf("%w: failed to get slots: %v", ErrInternal, err)
	}

	resp := &Response{
		ServicioID: req.ServicioID,
		Fecha:      req.Fecha,
		Slots:      make([]Slot, 0, len(slots)),
	}

	// 4. Map the slots, adding occupancy when a date was requested.
	for _, slot := range slots {
		item := Slot{
			ID:         slot.ID,
			DiaSemana:  slot.DiaSemana,
			HoraInicio: slot.HoraInicio,
			HoraFin:    slot.HoraFin,
			FixedTime:  slot.FixedTime,
			CupoMaximo: slot.CupoMaximo,
		}

		if req.Fecha != nil && slot.CoversDay(*req.Fecha) {
			report, err := uc.engine.SlotCapacity(ctx, servicio, slot, *req.Fecha)
			if err != nil {
				uc.logger.Error("GetAvailability: capacity for slot id=%d failed: %v", slot.ID, err)
				return nil, fmt.Errorf("%w: failed to compute capacity: %v", ErrInternal, err)
			}
			item.Ocupados = ptr.Ptr(report.Ocupados)
			item.Disponibles = ptr.Ptr(report.Disponibles)
		}

		resp.Slots = append(resp.Slots, item)
	}

	uc.logger.Info("GetAvailability: servicio=%d has %d active slots", req.ServicioID, len(resp.Slots))

	return resp, nil
}
