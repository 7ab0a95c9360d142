package stripe_webhook

import "context"

type ProcessWebhookUseCase interface {
	Execute(ctx context.Context, payload []byte, signature string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
