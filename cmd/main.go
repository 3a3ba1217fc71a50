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

	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelReservationHandler "github.com/avlok/LMS-LodgeService/internal/api/handlers/cancel_reservation"
	createReservationHandler "github.com/avlok/LMS-LodgeService/internal/api/handlers/create_reservation"
	generateAllocationsHandler "github.com/avlok/LMS-LodgeService/internal/api/handlers/generate_allocations"
	getAvailableRoomsHandler "github.com/avlok/LMS-LodgeService/internal/api/handlers/get_available_rooms"
	getCalendarEventsHandler "github.com/avlok/LMS-LodgeService/internal/api/handlers/get_calendar_events"
	getReservationHandler "github.com/avlok/LMS-LodgeService/internal/api/handlers/get_reservation"
	listReservationsHandler "github.com/avlok/LMS-LodgeService/internal/api/handlers/list_reservations"
	listSpecialChargesHandler "github.com/avlok/LMS-LodgeService/internal/api/handlers/list_special_charges"
	quotePaymentHandler "github.com/avlok/LMS-LodgeService/internal/api/handlers/quote_payment"
	updateReservationStatusHandler "github.com/avlok/LMS-LodgeService/internal/api/handlers/update_reservation_status"
	"github.com/avlok/LMS-LodgeService/internal/api/middleware"
	"github.com/avlok/LMS-LodgeService/internal/config"
	reservationRepo "github.com/avlok/LMS-LodgeService/internal/infra/storage/reservation"
	roomRepo "github.com/avlok/LMS-LodgeService/internal/infra/storage/room"
	specialChargeRepo "github.com/avlok/LMS-LodgeService/internal/infra/storage/specialcharge"
	calendarService "github.com/avlok/LMS-LodgeService/internal/service/calendar"
	pricingService "github.com/avlok/LMS-LodgeService/internal/service/pricing"
	reservationsService "github.com/avlok/LMS-LodgeService/internal/service/reservations"
	createReservationUC "github.com/avlok/LMS-LodgeService/internal/usecase/create_reservation"
	generateAllocationsUC "github.com/avlok/LMS-LodgeService/internal/usecase/generate_allocations"
	getAvailableRoomsUC "github.com/avlok/LMS-LodgeService/internal/usecase/get_available_rooms"
	quotePaymentUC "github.com/avlok/LMS-LodgeService/internal/usecase/quote_payment"
	"github.com/avlok/LMS-LodgeService/pkg/clock"
	"github.com/avlok/LMS-LodgeService/pkg/dbmetrics"
	"github.com/avlok/LMS-LodgeService/pkg/logger"
	"github.com/avlok/LMS-LodgeService/pkg/metrics"
	"github.com/avlok/LMS-LodgeService/pkg/simpletxmanager"
	"github.com/avlok/LMS-LodgeService/pkg/txmanager"
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

	log.Info("Starting LMS-LodgeService...")
	log.Info("Configuration loaded from config.toml")

	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
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

	// Repositories and transaction manager, with or without metrics.
	var (
		roomRepository        *roomRepo.Repository
		reservationRepository *reservationRepo.Repository
		chargeRepository      *specialChargeRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")

		roomRepository = roomRepo.NewRepository(wrappedDB)
		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		chargeRepository = specialChargeRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		roomRepository = roomRepo.NewRepository(db)
		reservationRepository = reservationRepo.NewRepository(db)
		chargeRepository = specialChargeRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	systemClock := clock.System{}

	// Services
	calculator := pricingService.NewCalculator(
		pricingService.WithPerPersonChargesPerNight(cfg.Pricing.PerPersonChargesPerNight),
	)
	reservationSvc := reservationsService.NewService(reservationRepository, systemClock, log)
	calendarSvc := calendarService.NewService(roomRepository, reservationRepository, log)

	// Use cases
	getAvailableRoomsUseCase := getAvailableRoomsUC.NewUseCase(roomRepository, log)
	generateAllocationsUseCase := generateAllocationsUC.NewUseCase(roomRepository, log)
	quotePaymentUseCase := quotePaymentUC.NewUseCase(roomRepository, chargeRepository, calculator, log)
	createReservationUseCase := createReservationUC.NewUseCase(
		roomRepository,
		reservationRepository,
		chargeRepository,
		calculator,
		txMgr,
		systemClock,
		log,
	)

	// Handlers
	getAvailableRooms := getAvailableRoomsHandler.NewHandler(getAvailableRoomsUseCase, log)
	generateAllocations := generateAllocationsHandler.NewHandler(generateAllocationsUseCase, log)
	quotePayment := quotePaymentHandler.NewHandler(quotePaymentUseCase, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationSvc, log)
	listReservations := listReservationsHandler.NewHandler(reservationSvc, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationSvc, log)
	updateReservationStatus := updateReservationStatusHandler.NewHandler(reservationSvc, log)
	getCalendarEvents := getCalendarEventsHandler.NewHandler(calendarSvc, log)
	listSpecialCharges := listSpecialChargesHandler.NewHandler(chargeRepository, log)

	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes
	api.HandleFunc("/rooms/available", getAvailableRooms.Handle).Methods(http.MethodGet)
	api.HandleFunc("/allocations/generate", generateAllocations.Handle).Methods(http.MethodPost)
	api.HandleFunc("/payments/quote", quotePayment.Handle).Methods(http.MethodPost)
	api.HandleFunc("/special-charges", listSpecialCharges.Handle).Methods(http.MethodGet)
	api.HandleFunc("/calendar/events", getCalendarEvents.Handle).Methods(http.MethodGet)

	// Protected routes (require X-User-ID header)
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	protected.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/reservations", listReservations.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reservations/{reservationId}/cancel", cancelReservation.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/reservations/{reservationId}/status", updateReservationStatus.Handle).Methods(http.MethodPatch)

	cors := gorillaHandlers.CORS(
		gorillaHandlers.AllowedOrigins([]string{"*"}),
		gorillaHandlers.AllowedMethods([]string{
			http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodOptions,
		}),
		gorillaHandlers.AllowedHeaders([]string{"Content-Type", middleware.UserIDHeader}),
	)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      cors(r),
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
