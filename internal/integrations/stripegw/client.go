package stripegw

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
	"github.com/stripe/stripe-go/v82/webhook"
)

// Logger is the logging surface the client needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client wraps the official Stripe SDK for payment-intent creation and
// webhook signature verification.
type Client struct {
	api           *client.API
	webhookSecret string
	log           Logger
}

// NewClient creates a Stripe gateway client.
func NewClient(secretKey, webhookSecret string, log Logger) *Client {
	api := &client.API{}
	api.Init(secretKey, nil)

	return &Client{
		api:           api,
		webhookSecret: webhookSecret,
		log:           log,
	}
}

// CreatePaymentIntent creates a payment intent carrying the domain
// correlation as opaque metadata. The idempotency key shields against
// double submission of the same outbound call.
func (c *Client) CreatePaymentIntent(ctx context.Context, req *PaymentIntentRequest) (*PaymentIntentResult, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(req.AmountCents),
		Currency: stripe.String(strings.ToLower(req.Currency)),
	}
	params.Context = ctx
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}
	if req.IdempotencyKey != "" {
		params.SetIdempotencyKey(req.IdempotencyKey)
	}

	intent, err := c.api.PaymentIntents.New(params)
	if err != nil {
		c.log.Error("CreatePaymentIntent: gateway error: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrGateway, err)
	}

	c.log.Info("CreatePaymentIntent: created intent id=%s amount=%d %s",
		intent.ID, req.AmountCents, req.Currency)

	return &PaymentIntentResult{
		ID:           intent.ID,
		ClientSecret: intent.ClientSecret,
	}, nil
}

// VerifyEvent checks the webhook signature against the pre-shared secret
// and converts the payload into a gateway-agnostic Event. A failed
// verification returns ErrInvalidSignature; callers must treat the payload
// as untrusted and mutate nothing.
func (c *Client) VerifyEvent(payload []byte, signatureHeader string) (*Event, error) {
	stripeEvent, err := webhook.ConstructEvent(payload, signatureHeader, c.webhookSecret)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}

	event := &Event{
		ID:   stripeEvent.ID,
		Type: string(stripeEvent.Type),
	}

	switch event.Type {
	case EventPaymentSucceeded, EventPaymentFailed:
		var intent stripe.PaymentIntent
		if err := json.Unmarshal(stripeEvent.Data.Raw, &intent); err != nil {
			return nil, fmt.Errorf("%w: unmarshal payment intent: %v", ErrInvalidEvent, err)
		}
		event.Intent = PaymentIntentData{
			ID:       intent.ID,
			Amount:   intent.Amount,
			Currency: string(intent.Currency),
			Metadata: intent.Metadata,
		}
	}

	return event, nil
}
