package stripegw

// Event types the reconciler reacts to. Anything else is ignored.
const (
	EventPaymentSucceeded = "payment_intent.succeeded"
	EventPaymentFailed    = "payment_intent.payment_failed"
)

// PaymentIntentRequest describes an outbound payment-intent creation.
type PaymentIntentRequest struct {
	AmountCents    int64
	Currency       string
	Metadata       map[string]string
	IdempotencyKey string
}

// PaymentIntentResult carries what the caller needs back: the client secret
// for the frontend and the intent id used as external transaction id.
type PaymentIntentResult struct {
	ID           string
	ClientSecret string
}

// Event is a verified, gateway-agnostic webhook event. Only payment-intent
// events carry Intent data.
type Event struct {
	ID     string
	Type   string
	Intent PaymentIntentData
}

// PaymentIntentData is the slice of a payment intent the reconciler needs.
type PaymentIntentData struct {
	ID       string
	Amount   int64
	Currency string
	Metadata map[string]string
}
