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

	cancelAppointmentHandler "github.com/andrewscodinglab/salon-booking-service/internal/api/handlers/cancel_appointment"
	createAppointmentHandler "github.com/andrewscodinglab/salon-booking-service/internal/api/handlers/create_appointment"
	getAppointmentHandler "github.com/andrewscodinglab/salon-booking-service/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/andrewscodinglab/salon-booking-service/internal/api/handlers/get_available_slots"
	getClientAppointmentsHandler "github.com/andrewscodinglab/salon-booking-service/internal/api/handlers/get_client_appointments"
	getScheduleHandler "github.com/andrewscodinglab/salon-booking-service/internal/api/handlers/get_schedule"
	getStylistAppointmentsHandler "github.com/andrewscodinglab/salon-booking-service/internal/api/handlers/get_stylist_appointments"
	updateScheduleHandler "github.com/andrewscodinglab/salon-booking-service/internal/api/handlers/update_schedule"
	"github.com/andrewscodinglab/salon-booking-service/internal/api/middleware"
	"github.com/andrewscodinglab/salon-booking-service/internal/config"
	appointmentRepo "github.com/andrewscodinglab/salon-booking-service/internal/infra/storage/appointment"
	scheduleRepo "github.com/andrewscodinglab/salon-booking-service/internal/infra/storage/schedule"
	appointmentsService "github.com/andrewscodinglab/salon-booking-service/internal/service/appointments"
	scheduleService "github.com/andrewscodinglab/salon-booking-service/internal/service/schedule"
	createAppointmentUC "github.com/andrewscodinglab/salon-booking-service/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/andrewscodinglab/salon-booking-service/internal/usecase/get_available_slots"
	"github.com/andrewscodinglab/salon-booking-service/pkg/dbmetrics"
	"github.com/andrewscodinglab/salon-booking-service/pkg/logger"
	"github.com/andrewscodinglab/salon-booking-service/pkg/metrics"
	"github.com/andrewscodinglab/salon-booking-service/pkg/txmanager"
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

	log.Info("Starting salon-booking-service...")
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

	// Repositories and the transaction manager, with or without DB metrics.
	var (
		appointmentRepository *appointmentRepo.Repository
		scheduleRepository    *scheduleRepo.Repository
		txManager             *txmanager.TransactionManager
	)

	txOpts := []txmanager.Option{
		txmanager.WithTimeout(time.Duration(cfg.Booking.TxTimeout) * time.Second),
		txmanager.WithMaxAttempts(cfg.Booking.TxMaxAttempts),
	}

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		txManager = txmanager.NewTransactionManager(wrappedDB, txOpts...)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		scheduleRepository = scheduleRepo.NewRepository(db)
		txManager = txmanager.NewTransactionManager(&dbmetrics.SqlDBWrapper{DB: db}, txOpts...)
	}

	// Services
	appointmentSvc := appointmentsService.NewService(appointmentRepository, log)
	scheduleSvc := scheduleService.NewService(scheduleRepository, log)

	// Use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		txManager,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		scheduleRepository,
		appointmentRepository,
		log,
	)

	// Handlers
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentSvc, log)
	getClientAppointments := getClientAppointmentsHandler.NewHandler(appointmentSvc, log)
	getStylistAppointments := getStylistAppointmentsHandler.NewHandler(appointmentSvc, log)
	getSchedule := getScheduleHandler.NewHandler(scheduleSvc, log)
	updateSchedule := updateScheduleHandler.NewHandler(scheduleSvc, log)

	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes
	api.HandleFunc("/stylists/{stylistId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/stylists/{stylistId}/schedule", getSchedule.Handle).Methods(http.MethodGet)

	// Protected routes (require X-User-ID header)
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/{appointmentUid}", getAppointment.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{appointmentUid}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/clients/{clientId}/appointments", getClientAppointments.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/stylists/{stylistId}/appointments", getStylistAppointments.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/stylists/{stylistId}/schedule", updateSchedule.Handle).Methods(http.MethodPut)

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
