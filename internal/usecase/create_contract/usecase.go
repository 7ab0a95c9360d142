package create_contract

import (
	"context"
	"errors"
	"fmt"

	"github.com/hotelops/booking-service/internal/domain"
	catalogRepo "github.com/hotelops/booking-service/internal/infra/storage/catalog"
	reservationRepo "github.com/hotelops/booking-service/internal/infra/storage/reservation"
	"github.com/hotelops/booking-service/internal/service/availability"
)

// UseCase contracts a catalog service against an availability slot.
type UseCase struct {
	contractRepo    ContractRepository
	catalogRepo     CatalogRepository
	reservationRepo ReservationRepository
	engine          AvailabilityEngine
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase creates the usecase.
func NewUseCase(
	contractRepo ContractRepository,
	catalogRepo CatalogRepository,
	reservationRepo ReservationRepository,
	engine AvailabilityEngine,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		contractRepo:    contractRepo,
		catalogRepo:     catalogRepo,
		reservationRepo: reservationRepo,
		engine:          engine,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute admits the request against the slot capacity and persists the
// contract in PENDIENTE. The admission check and the insert share one
// serializable transaction, so two concurrent requests for the last spot
// cannot both pass the check.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateContract: servicio=%d, fecha=%s, hora=%s, cantidad=%d, personas=%d",
		req.ServicioID, req.Fecha.Format(domain.DateFormat), req.HoraInicio, req.Cantidad, req.NumeroPersonas)

	// 1. Validate the request.
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateContract: validation failed: %v", err)
		return nil, err
	}

	// 2. Fetch the catalog entry. Its name and price are denormalized
	// into the contract so later catalog edits do not rewrite history.
	servicio, err := uc.catalogRepo.GetByID(ctx, req.ServicioID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServicioNotFound) {
			uc.logger.Warn("CreateContract: servicio id=%d not found", req.ServicioID)
			return nil, ErrServicioNotFound
		}
		uc.logger.Error("CreateContract: failed to get servicio id=%d: %v", req.ServicioID, err)
		return nil, fmt.Errorf("%w: failed to get servicio: %v", ErrInternal, err)
	}

	if !servicio.Disponible {
		uc.logger.Warn("CreateContract: servicio id=%d is not available", req.ServicioID)
		return nil, ErrServicioNotAvailable
	}

	// 3. Check the reservation exists when the contract is attached to one.
	if req.ReservaID != nil {
		if _, err := uc.reservationRepo.GetByID(ctx, *req.ReservaID); err != nil {
			if errors.Is(err, reservationRepo.ErrReservaNotFound) {
				uc.logger.Warn("CreateContract: reserva id=%d not found", *req.ReservaID)
				return nil, ErrReservaNotFound
			}
			uc.logger.Error("CreateContract: failed to get reserva id=%d: %v", *req.ReservaID, err)
			return nil, fmt.Errorf("%w: failed to get reserva: %v", ErrInternal, err)
		}
	}

	var result *domain.ServicioContratado

	// 4. Admission check and insert in one serializable transaction.
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Ask the availability engine whether the slot can absorb
		// the requested units. Inside the transaction the engine locks
		// the competing contract rows.
		err := uc.engine.CanAdmit(txCtx, req.ServicioID, req.Fecha, req.HoraInicio, req.Cantidad, req.NumeroPersonas)
		if err != nil {
			switch {
			case errors.Is(err, availability.ErrCapacityExceeded):
				uc.logger.Warn("CreateContract: capacity exceeded for servicio=%d, fecha=%s, hora=%s",
					req.ServicioID, req.Fecha.Format(domain.DateFormat), req.HoraInicio)
				return ErrCapacityExceeded
			case errors.Is(err, availability.ErrNotBookable):
				uc.logger.Warn("CreateContract: no slot covers servicio=%d, fecha=%s, hora=%s",
					req.ServicioID, req.Fecha.Format(domain.DateFormat), req.HoraInicio)
				return ErrNotBookable
			case errors.Is(err, availability.ErrServicioNotFound):
				return ErrServicioNotFound
			}
			uc.logger.Error("CreateContract: admission check failed: %v", err)
			return fmt.Errorf("%w: admission check failed: %v", ErrInternal, err)
		}

		// 4.2. Persist the contract in PENDIENTE with denormalized
		// catalog data.
		contract := &domain.ServicioContratado{
			ServicioID:     req.ServicioID,
			ReservaID:      req.ReservaID,
			ClienteID:      req.ClienteID,
			Fecha:          req.Fecha,
			HoraInicio:     req.HoraInicio,
			Cantidad:       req.Cantidad,
			NumeroPersonas: req.NumeroPersonas,
			Estado:         domain.EstadoPendiente,
			NombreServicio: servicio.Nombre,
			PrecioUnitario: servicio.PrecioUnitario,
			Notas:          req.Notas,
		}

		created, err := uc.contractRepo.Create(txCtx, contract)
		if err != nil {
			uc.logger.Error("CreateContract: failed to create contract: %v", err)
			return fmt.Errorf("%w: failed to create contract: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateContract: created contract id=%d in estado=%s", result.ID, result.Estado)

	return &Response{
		ID:             result.ID,
		ServicioID:     result.ServicioID,
		ReservaID:      result.ReservaID,
		ClienteID:      result.ClienteID,
		Fecha:          result.Fecha,
		HoraInicio:     result.HoraInicio,
		Cantidad:       result.Cantidad,
		NumeroPersonas: result.NumeroPersonas,
		Estado:         string(result.Estado),
		NombreServicio: result.NombreServicio,
		PrecioUnitario: result.PrecioUnitario,
		Notas:          result.Notas,
		CreadoEn:       result.CreadoEn,
		ActualizadoEn:  result.ActualizadoEn,
	}, nil
}
