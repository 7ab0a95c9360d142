package create_contract

import (
	"context"

	createContract "github.com/hotelops/booking-service/internal/usecase/create_contract"
)

type CreateContractUseCase interface {
	Execute(ctx context.Context, req *createContract.Request) (*createContract.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
