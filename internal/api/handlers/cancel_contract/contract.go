package cancel_contract

import "context"

type ContractService interface {
	Cancelar(ctx context.Context, id int64, motivo *string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
