package complete_contract

import "context"

type ContractService interface {
	Completar(ctx context.Context, id int64, notificationKey *string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
