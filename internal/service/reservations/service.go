package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/hotelops/booking-service/internal/domain"
	reservationRepo "github.com/hotelops/booking-service/internal/infra/storage/reservation"
)

// Service flips the activa flag on a reservation and all of its room
// line items as one unit. The reservation header and the line items are
// updated inside a single transaction, so a reader never observes an
// active header with inactive rooms or the other way around.
type Service struct {
	reservationRepo ReservationRepository
	txManager       TransactionManager
	logger          Logger
}

// NewService creates the reservation lifecycle service.
func NewService(reservationRepo ReservationRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// GetByID fetches a reservation together with its room line items.
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Reserva, error) {
	reserva, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservaNotFound) {
			s.logger.Warn("GetByID: reserva id=%d not found", id)
			return nil, ErrReservaNotFound
		}
		s.logger.Error("GetByID: repository error for reserva id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	items, err := s.reservationRepo.GetLineItems(ctx, id)
	if err != nil {
		s.logger.Error("GetByID: line items error for reserva id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - line items error: %v", ErrInternal, err)
	}
	reserva.Habitaciones = make([]domain.ReservaHabitacion, 0, len(items))
	for _, item := range items {
		reserva.Habitaciones = append(reserva.Habitaciones, *item)
	}

	return reserva, nil
}

// Activate marks the reservation and its line items active. Idempotent:
// an already active reservation is a no-op, so webhook redelivery does
// not touch the rows twice.
func (s *Service) Activate(ctx context.Context, id int64) error {
	return s.setActiva(ctx, "Activate", id, true)
}

// Deactivate marks the reservation and its line items inactive.
func (s *Service) Deactivate(ctx context.Context, id int64) error {
	return s.setActiva(ctx, "Deactivate", id, false)
}

func (s *Service) setActiva(ctx context.Context, op string, id int64, activa bool) error {
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		reserva, err := s.reservationRepo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservaNotFound) {
				s.logger.Warn("%s: reserva id=%d not found", op, id)
				return ErrReservaNotFound
			}
			s.logger.Error("%s: repository error for reserva id=%d: %v", op, id, err)
			return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
		}

		if reserva.Activa == activa {
			s.logger.Info("%s: reserva id=%d already activa=%t, no-op", op, id, activa)
			return nil
		}

		if err := s.reservationRepo.SetActiva(ctx, id, activa); err != nil {
			s.logger.Error("%s: header update error for reserva id=%d: %v", op, id, err)
			return fmt.Errorf("%w: %s - header update error: %v", ErrInternal, op, err)
		}
		if err := s.reservationRepo.SetLineItemsActiva(ctx, id, activa); err != nil {
			s.logger.Error("%s: line items update error for reserva id=%d: %v", op, id, err)
			return fmt.Errorf("%w: %s - line items update error: %v", ErrInternal, op, err)
		}

		s.logger.Info("%s: reserva id=%d set activa=%t with its line items", op, id, activa)
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrReservaNotFound) || errors.Is(err, ErrInternal) {
			return err
		}
		return fmt.Errorf("%w: %s - transaction error: %v", ErrInternal, op, err)
	}
	return nil
}
