package create_payment_intent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hotelops/booking-service/internal/domain"
	contractRepo "github.com/hotelops/booking-service/internal/infra/storage/contract"
	reservationRepo "github.com/hotelops/booking-service/internal/infra/storage/reservation"
	"github.com/hotelops/booking-service/internal/integrations/stripegw"
	"github.com/hotelops/booking-service/pkg/ptr"
)

type fakePayments struct {
	created *domain.Pago
	err     error
}

func (f *fakePayments) Create(_ context.Context, p *domain.Pago) (*domain.Pago, error) {
	if f.err != nil {
		return nil, f.err
	}
	stored := *p
	stored.ID = 50
	f.created = &stored
	return &stored, nil
}

type fakeContracts struct {
	err error
}

func (f *fakeContracts) GetByID(_ context.Context, _ int64) (*domain.ServicioContratado, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.ServicioContratado{ID: 15}, nil
}

type fakeReservations struct {
	err error
}

func (f *fakeReservations) GetByID(_ context.Context, _ int64) (*domain.Reserva, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Reserva{ID: 3}, nil
}

type fakeGateway struct {
	lastReq *stripegw.PaymentIntentRequest
	err     error
}

func (f *fakeGateway) CreatePaymentIntent(_ context.Context, req *stripegw.PaymentIntentRequest) (*stripegw.PaymentIntentResult, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return &stripegw.PaymentIntentResult{ID: "pi_123", ClientSecret: "pi_123_secret"}, nil
}

// Pins the concrete Stripe client to the gateway seam, so a signature
// drift on either side is a compile error here.
var _ PaymentGateway = (*stripegw.Client)(nil)

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func TestExecute(t *testing.T) {
	t.Run("Servicio Target Creates Pending Pago", func(t *testing.T) {
		payments := &fakePayments{}
		gateway := &fakeGateway{}
		uc := NewUseCase(payments, &fakeContracts{}, &fakeReservations{}, gateway, "usd", noopLogger{})

		resp, err := uc.Execute(context.Background(), &Request{
			ServicioContratadoID: ptr.Ptr(int64(15)),
			Monto:                45.50,
			Metodo:               string(domain.PagoTarjeta),
		})
		require.NoError(t, err)

		assert.Equal(t, int64(50), resp.PagoID)
		assert.Equal(t, "pi_123", resp.TransaccionExterna)
		assert.Equal(t, "pi_123_secret", resp.ClientSecret)

		require.NotNil(t, gateway.lastReq)
		assert.Equal(t, int64(4550), gateway.lastReq.AmountCents)
		assert.Equal(t, "usd", gateway.lastReq.Currency)
		assert.Equal(t, domain.CorrelacionServicio, gateway.lastReq.Metadata["tipo"])
		assert.Equal(t, "15", gateway.lastReq.Metadata["id"])
		assert.NotEmpty(t, gateway.lastReq.IdempotencyKey)

		require.NotNil(t, payments.created)
		assert.Equal(t, domain.PagoPendiente, payments.created.Estado)
		assert.Equal(t, "pi_123", payments.created.TransaccionExterna)
		require.NotNil(t, payments.created.ServicioContratadoID)
		assert.Equal(t, int64(15), *payments.created.ServicioContratadoID)
	})

	t.Run("Reserva Target Carries Reserva Metadata", func(t *testing.T) {
		gateway := &fakeGateway{}
		uc := NewUseCase(&fakePayments{}, &fakeContracts{}, &fakeReservations{}, gateway, "usd", noopLogger{})

		_, err := uc.Execute(context.Background(), &Request{
			ReservaID: ptr.Ptr(int64(3)),
			Monto:     120,
			Metodo:    string(domain.PagoTarjeta),
		})
		require.NoError(t, err)
		assert.Equal(t, domain.CorrelacionReserva, gateway.lastReq.Metadata["tipo"])
		assert.Equal(t, "3", gateway.lastReq.Metadata["id"])
	})

	t.Run("Gateway Failure Leaves No Pago", func(t *testing.T) {
		payments := &fakePayments{}
		gateway := &fakeGateway{err: stripegw.ErrGateway}
		uc := NewUseCase(payments, &fakeContracts{}, &fakeReservations{}, gateway, "usd", noopLogger{})

		_, err := uc.Execute(context.Background(), &Request{
			ServicioContratadoID: ptr.Ptr(int64(15)),
			Monto:                45.50,
			Metodo:               string(domain.PagoTarjeta),
		})
		assert.ErrorIs(t, err, ErrGateway)
		assert.Nil(t, payments.created)
	})

	t.Run("Missing Targets Are Reported", func(t *testing.T) {
		uc := NewUseCase(&fakePayments{}, &fakeContracts{err: contractRepo.ErrContractNotFound},
			&fakeReservations{err: reservationRepo.ErrReservaNotFound}, &fakeGateway{}, "usd", noopLogger{})

		_, err := uc.Execute(context.Background(), &Request{
			ServicioContratadoID: ptr.Ptr(int64(99)),
			Monto:                45.50,
		})
		assert.ErrorIs(t, err, ErrContractNotFound)

		_, err = uc.Execute(context.Background(), &Request{
			ReservaID: ptr.Ptr(int64(99)),
			Monto:     45.50,
		})
		assert.ErrorIs(t, err, ErrReservaNotFound)
	})

	t.Run("Validation Failures", func(t *testing.T) {
		uc := NewUseCase(&fakePayments{}, &fakeContracts{}, &fakeReservations{}, &fakeGateway{}, "usd", noopLogger{})

		for name, req := range map[string]*Request{
			"no target":          {Monto: 10},
			"both targets":       {ReservaID: ptr.Ptr(int64(3)), ServicioContratadoID: ptr.Ptr(int64(15)), Monto: 10},
			"non-positive monto": {ReservaID: ptr.Ptr(int64(3)), Monto: 0},
			"negative reserva":   {ReservaID: ptr.Ptr(int64(-3)), Monto: 10},
		} {
			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput, name)
		}
	})
}
