package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	activateReservationHandler "github.com/hotelops/booking-service/internal/api/handlers/activate_reservation"
	cancelContractHandler "github.com/hotelops/booking-service/internal/api/handlers/cancel_contract"
	completeContractHandler "github.com/hotelops/booking-service/internal/api/handlers/complete_contract"
	confirmContractHandler "github.com/hotelops/booking-service/internal/api/handlers/confirm_contract"
	createContractHandler "github.com/hotelops/booking-service/internal/api/handlers/create_contract"
	createPaymentIntentHandler "github.com/hotelops/booking-service/internal/api/handlers/create_payment_intent"
	deactivateReservationHandler "github.com/hotelops/booking-service/internal/api/handlers/deactivate_reservation"
	getContractHandler "github.com/hotelops/booking-service/internal/api/handlers/get_contract"
	getReservationContractsHandler "github.com/hotelops/booking-service/internal/api/handlers/get_reservation_contracts"
	getServiceAvailabilityHandler "github.com/hotelops/booking-service/internal/api/handlers/get_service_availability"
	stripeWebhookHandler "github.com/hotelops/booking-service/internal/api/handlers/stripe_webhook"
	"github.com/hotelops/booking-service/internal/api/middleware"
	"github.com/hotelops/booking-service/internal/config"
	catalogRepo "github.com/hotelops/booking-service/internal/infra/storage/catalog"
	contractRepo "github.com/hotelops/booking-service/internal/infra/storage/contract"
	paymentRepo "github.com/hotelops/booking-service/internal/infra/storage/payment"
	reservationRepo "github.com/hotelops/booking-service/internal/infra/storage/reservation"
	slotRepo "github.com/hotelops/booking-service/internal/infra/storage/slot"
	notifierClient "github.com/hotelops/booking-service/internal/integrations/notifier"
	stripeClient "github.com/hotelops/booking-service/internal/integrations/stripegw"
	availabilityService "github.com/hotelops/booking-service/internal/service/availability"
	contractsService "github.com/hotelops/booking-service/internal/service/contracts"
	reservationsService "github.com/hotelops/booking-service/internal/service/reservations"
	createContractUC "github.com/hotelops/booking-service/internal/usecase/create_contract"
	createPaymentIntentUC "github.com/hotelops/booking-service/internal/usecase/create_payment_intent"
	getAvailabilityUC "github.com/hotelops/booking-service/internal/usecase/get_availability"
	processWebhookUC "github.com/hotelops/booking-service/internal/usecase/process_webhook"
	"github.com/hotelops/booking-service/pkg/dbmetrics"
	"github.com/hotelops/booking-service/pkg/logger"
	"github.com/hotelops/booking-service/pkg/metrics"
	"github.com/hotelops/booking-service/pkg/simpletxmanager"
	"github.com/hotelops/booking-service/pkg/txmanager"
)

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting booking-service...")
	log.Info("Configuration loaded from config.toml")

	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Integration clients.
	stripe := stripeClient.NewClient(cfg.Stripe.SecretKey, cfg.Stripe.WebhookSecret, log)
	notifier := notifierClient.NewClient(
		cfg.Notifier.URL,
		time.Duration(cfg.Notifier.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (Stripe, Notifier=%s timeout=%ds)",
		cfg.Notifier.URL, cfg.Notifier.Timeout)

	// Repositories and the transaction manager, with or without metrics.
	var (
		contracts    *contractRepo.Repository
		slots        *slotRepo.Repository
		reservations *reservationRepo.Repository
		payments     *paymentRepo.Repository
		catalog      *catalogRepo.Repository
		txMgr        *txmanager.TransactionManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		contracts = contractRepo.NewRepository(wrappedDB)
		slots = slotRepo.NewRepository(wrappedDB)
		reservations = reservationRepo.NewRepository(wrappedDB)
		payments = paymentRepo.NewRepository(wrappedDB)
		catalog = catalogRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		contracts = contractRepo.NewRepository(db)
		slots = slotRepo.NewRepository(db)
		reservations = reservationRepo.NewRepository(db)
		payments = paymentRepo.NewRepository(db)
		catalog = catalogRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Services.
	engine := availabilityService.NewEngine(catalog, slots, contracts, log)
	contractSvc := contractsService.NewService(contracts, notifier, log)
	reservationSvc := reservationsService.NewService(reservations, txMgr, log)

	// Use cases.
	createContractUseCase := createContractUC.NewUseCase(
		contracts,
		catalog,
		reservations,
		engine,
		txMgr,
		log,
	)
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		catalog,
		slots,
		engine,
		log,
	)
	createPaymentIntentUseCase := createPaymentIntentUC.NewUseCase(
		payments,
		contracts,
		reservations,
		stripe,
		cfg.Stripe.Currency,
		log,
	)
	processWebhookUseCase := processWebhookUC.NewUseCase(
		stripe,
		payments,
		contractSvc,
		reservationSvc,
		cfg.Stripe.CancelOnPaymentFailed,
		log,
	)

	// Handlers.
	createContract := createContractHandler.NewHandler(createContractUseCase, log)
	confirmContract := confirmContractHandler.NewHandler(contractSvc, log)
	completeContract := completeContractHandler.NewHandler(contractSvc, log)
	cancelContract := cancelContractHandler.NewHandler(contractSvc, log)
	getContract := getContractHandler.NewHandler(contractSvc, log)
	getReservationContracts := getReservationContractsHandler.NewHandler(contractSvc, log)
	getServiceAvailability := getServiceAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	activateReservation := activateReservationHandler.NewHandler(reservationSvc, log)
	deactivateReservation := deactivateReservationHandler.NewHandler(reservationSvc, log)
	createPaymentIntent := createPaymentIntentHandler.NewHandler(createPaymentIntentUseCase, log)
	stripeWebhook := stripeWebhookHandler.NewHandler(processWebhookUseCase, log)

	// Router.
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes. The webhook authenticates through its signature,
	// not through the gateway headers.
	api.HandleFunc("/servicio-disponibilidads/servicio/{servicioId}",
		getServiceAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/stripe/webhook", stripeWebhook.Handle).Methods(http.MethodPost)

	// Protected routes require the identity headers set by the gateway.
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	protected.HandleFunc("/servicio-contratados", createContract.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/servicio-contratados/{servicioContratadoId}", getContract.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reservas/{reservaId}/servicio-contratados",
		getReservationContracts.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/stripe/payment-intent", createPaymentIntent.Handle).Methods(http.MethodPost)

	// Lifecycle transitions are staff-only.
	operator := protected.PathPrefix("").Subrouter()
	operator.Use(middleware.RequireRole(middleware.RoleOperador))

	operator.HandleFunc("/servicio-contratados/{servicioContratadoId}/confirmar",
		confirmContract.Handle).Methods(http.MethodPut)
	operator.HandleFunc("/servicio-contratados/{servicioContratadoId}/completar",
		completeContract.Handle).Methods(http.MethodPut)
	operator.HandleFunc("/servicio-contratados/{servicioContratadoId}/cancelar",
		cancelContract.Handle).Methods(http.MethodPut)
	operator.HandleFunc("/reservas/{reservaId}/activate",
		activateReservation.Handle).Methods(http.MethodPut)
	operator.HandleFunc("/reservas/{reservaId}/deactivate",
		deactivateReservation.Handle).Methods(http.MethodPut)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
