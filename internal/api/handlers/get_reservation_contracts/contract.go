package get_reservation_contracts

import (
	"context"

	"github.com/hotelops/booking-service/internal/service/contracts/models"
)

type ContractService interface {
	GetByReserva(ctx context.Context, reservaID int64) (*models.ContractListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
