package contracts

import (
	"context"
	"errors"
	"fmt"

	"github.com/hotelops/booking-service/internal/domain"
	contractRepo "github.com/hotelops/booking-service/internal/infra/storage/contract"
	"github.com/hotelops/booking-service/internal/service/contracts/models"
)

// Service drives the contracted-service state machine:
// PENDIENTE → CONFIRMADO → COMPLETADO, with CANCELADO terminal and
// reachable from PENDIENTE or CONFIRMADO. States only move forward.
type Service struct {
	contractRepo ContractRepository
	notifier     Notifier
	logger       Logger
}

// NewService creates the contract lifecycle service.
func NewService(contractRepo ContractRepository, notifier Notifier, logger Logger) *Service {
	return &Service{
		contractRepo: contractRepo,
		notifier:     notifier,
		logger:       logger,
	}
}

// GetByID fetches one contracted service.
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ContractResponse, error) {
	contract, err := s.contractRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, contractRepo.ErrContractNotFound) {
			s.logger.Warn("GetByID: contract id=%d not found", id)
			return nil, ErrContractNotFound
		}
		s.logger.Error("GetByID: repository error for contract id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainContract(contract), nil
}

// GetByReserva lists the contracted services of a reservation.
func (s *Service) GetByReserva(ctx context.Context, reservaID int64) (*models.ContractListResponse, error) {
	contracts, err := s.contractRepo.GetByReservaID(ctx, reservaID)
	if err != nil {
		s.logger.Error("GetByReserva: repository error for reserva id=%d: %v", reservaID, err)
		return nil, fmt.Errorf("%w: GetByReserva - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainContractList(contracts), nil
}

// Confirmar moves a PENDIENTE contract to CONFIRMADO. Idempotent: an
// already CONFIRMADO or COMPLETADO contract is a no-op, which is the first
// line of defense against webhook redelivery. A CANCELADO contract is a
// data error and is reported, never silently accepted.
func (s *Service) Confirmar(ctx context.Context, id int64) error {
	contract, err := s.getContract(ctx, "Confirmar", id)
	if err != nil {
		return err
	}

	if !contract.CanBeConfirmed() {
		if contract.Estado == domain.EstadoCancelado {
			s.logger.Error("Confirmar: contract id=%d is cancelled, confirmation rejected", id)
			return ErrContractCancelled
		}
		s.logger.Info("Confirmar: contract id=%d already %s, no-op", id, contract.Estado)
		return nil
	}

	if err := s.contractRepo.UpdateEstado(ctx, id, domain.EstadoConfirmado); err != nil {
		if errors.Is(err, contractRepo.ErrContractNotFound) {
			return ErrContractNotFound
		}
		s.logger.Error("Confirmar: repository error for contract id=%d: %v", id, err)
		return fmt.Errorf("%w: Confirmar - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Confirmar: contract id=%d confirmed", id)
	return nil
}

// Completar moves a CONFIRMADO contract to COMPLETADO and, when a
// notification key is supplied, notifies through the external messaging
// collaborator. A notification failure is logged but does not undo the
// transition.
func (s *Service) Completar(ctx context.Context, id int64, notificationKey *string) error {
	contract, err := s.getContract(ctx, "Completar", id)
	if err != nil {
		return err
	}

	if contract.Estado == domain.EstadoCompletado {
		s.logger.Info("Completar: contract id=%d already completed, no-op", id)
		return nil
	}
	if !contract.CanBeCompleted() {
		s.logger.Warn("Completar: contract id=%d in state %s cannot be completed", id, contract.Estado)
		return ErrInvalidTransition
	}

	if err := s.contractRepo.UpdateEstado(ctx, id, domain.EstadoCompletado); err != nil {
		if errors.Is(err, contractRepo.ErrContractNotFound) {
			return ErrContractNotFound
		}
		s.logger.Error("Completar: repository error for contract id=%d: %v", id, err)
		return fmt.Errorf("%w: Completar - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Completar: contract id=%d completed", id)

	if notificationKey != nil && *notificationKey != "" {
		if err := s.notifier.NotifyServiceCompleted(ctx, *notificationKey, id); err != nil {
			s.logger.Error("Completar: notification failed for contract id=%d, key=%s: %v",
				id, *notificationKey, err)
		}
	}

	return nil
}

// Cancelar moves a PENDIENTE or CONFIRMADO contract to CANCELADO. Because
// occupancy excludes CANCELADO rows, the freed capacity is visible to the
// availability engine immediately; there is no counter to decrement.
// Cancelling an already cancelled contract is a no-op.
func (s *Service) Cancelar(ctx context.Context, id int64, motivo *string) error {
	if motivo != nil && len(*motivo) > domain.MaxMotivoLength {
		s.logger.Warn("Cancelar: contract id=%d motivo exceeds %d characters", id, domain.MaxMotivoLength)
		return ErrMotivoTooLong
	}

	contract, err := s.getContract(ctx, "Cancelar", id)
	if err != nil {
		return err
	}

	if contract.Estado == domain.EstadoCancelado {
		s.logger.Info("Cancelar: contract id=%d already cancelled, no-op", id)
		return nil
	}
	if !contract.CanBeCancelled() {
		s.logger.Warn("Cancelar: contract id=%d in state %s cannot be cancelled", id, contract.Estado)
		return ErrInvalidTransition
	}

	if err := s.contractRepo.Cancel(ctx, id, motivo); err != nil {
		if errors.Is(err, contractRepo.ErrContractNotFound) {
			return ErrContractNotFound
		}
		s.logger.Error("Cancelar: repository error for contract id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancelar - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancelar: contract id=%d cancelled", id)
	return nil
}

func (s *Service) getContract(ctx context.Context, op string, id int64) (*domain.ServicioContratado, error) {
	contract, err := s.contractRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, contractRepo.ErrContractNotFound) {
			s.logger.Warn("%s: contract id=%d not found", op, id)
			return nil, ErrContractNotFound
		}
		s.logger.Error("%s: repository error for contract id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return contract, nil
}
