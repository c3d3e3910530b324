package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robfig/cron/v3"

	createAppointmentHandler "github.com/tigerbarber/appointment-service/internal/api/handlers/create_appointment"
	createCapsterHandler "github.com/tigerbarber/appointment-service/internal/api/handlers/create_capster"
	createServiceHandler "github.com/tigerbarber/appointment-service/internal/api/handlers/create_service"
	deleteAppointmentHandler "github.com/tigerbarber/appointment-service/internal/api/handlers/delete_appointment"
	deleteServiceHandler "github.com/tigerbarber/appointment-service/internal/api/handlers/delete_service"
	listAppointmentsHandler "github.com/tigerbarber/appointment-service/internal/api/handlers/list_appointments"
	listCapstersHandler "github.com/tigerbarber/appointment-service/internal/api/handlers/list_capsters"
	listServicesHandler "github.com/tigerbarber/appointment-service/internal/api/handlers/list_services"
	updateAppointmentHandler "github.com/tigerbarber/appointment-service/internal/api/handlers/update_appointment"
	updateStatusHandler "github.com/tigerbarber/appointment-service/internal/api/handlers/update_appointment_status"
	updateServiceHandler "github.com/tigerbarber/appointment-service/internal/api/handlers/update_service"
	"github.com/tigerbarber/appointment-service/internal/api/middleware"
	"github.com/tigerbarber/appointment-service/internal/config"
	accountRepo "github.com/tigerbarber/appointment-service/internal/infra/storage/account"
	appointmentRepo "github.com/tigerbarber/appointment-service/internal/infra/storage/appointment"
	capsterRepo "github.com/tigerbarber/appointment-service/internal/infra/storage/capster"
	historyRepo "github.com/tigerbarber/appointment-service/internal/infra/storage/history"
	serviceRepo "github.com/tigerbarber/appointment-service/internal/infra/storage/service"
	"github.com/tigerbarber/appointment-service/internal/integrations/recordstore"
	appointmentsService "github.com/tigerbarber/appointment-service/internal/service/appointments"
	"github.com/tigerbarber/appointment-service/internal/service/janitor"
	"github.com/tigerbarber/appointment-service/internal/service/slotguard"
	createAppointmentUC "github.com/tigerbarber/appointment-service/internal/usecase/create_appointment"
	updateAppointmentUC "github.com/tigerbarber/appointment-service/internal/usecase/update_appointment"
	"github.com/tigerbarber/appointment-service/pkg/logger"
	"github.com/tigerbarber/appointment-service/pkg/metrics"
	"github.com/tigerbarber/appointment-service/pkg/slotlock"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting appointment-service...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Шлюз к хранилищу записей
	var storeMetrics recordstore.MetricsRecorder
	if metricsCollector != nil {
		storeMetrics = metricsCollector
	}
	store := recordstore.NewClient(recordstore.Config{
		BaseURL:        cfg.Store.BaseURL,
		AnonKey:        cfg.Store.AnonKey,
		ServiceRoleKey: cfg.Store.ServiceRoleKey,
		Timeout:        time.Duration(cfg.Store.Timeout) * time.Second,
	}, storeMetrics, log)
	log.Info("Record store gateway initialized (base_url=%s, timeout=%ds)", cfg.Store.BaseURL, cfg.Store.Timeout)

	// Репозитории
	appointmentRepository := appointmentRepo.NewRepository(store)
	capsterRepository := capsterRepo.NewRepository(store)
	serviceRepository := serviceRepo.NewRepository(store)
	accountRepository := accountRepo.NewRepository(store)
	historyRepository := historyRepo.NewRepository(store)

	// Сервисы
	purger := janitor.New(appointmentRepository, log)
	guard := slotguard.NewGuard(appointmentRepository, log)
	slots := slotlock.New()
	appointmentsSvc := appointmentsService.NewService(
		appointmentRepository,
		capsterRepository,
		accountRepository,
		purger,
		guard,
		slots,
		log,
	)

	// Регулярная уборка прошедших записей (опционально)
	var purgeCron *cron.Cron
	if cfg.Janitor.Schedule != "" {
		purgeCron, err = purger.Schedule(cfg.Janitor.Schedule)
		if err != nil {
			log.Fatal("Failed to start janitor schedule: %v", err)
		}
	}

	// Use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		historyRepository,
		guard,
		slots,
		&createAppointmentUC.RealTimeProvider{},
		log,
	)
	updateAppointmentUseCase := updateAppointmentUC.NewUseCase(
		appointmentRepository,
		guard,
		slots,
		log,
	)

	// Handlers
	listAppointments := listAppointmentsHandler.NewHandler(appointmentsSvc, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	updateAppointment := updateAppointmentHandler.NewHandler(updateAppointmentUseCase, log)
	updateStatus := updateStatusHandler.NewHandler(appointmentsSvc, log)
	deleteAppointment := deleteAppointmentHandler.NewHandler(appointmentsSvc, log)
	listCapsters := listCapstersHandler.NewHandler(capsterRepository, log)
	createCapster := createCapsterHandler.NewHandler(capsterRepository, log)
	listServices := listServicesHandler.NewHandler(serviceRepository, log)
	createService := createServiceHandler.NewHandler(serviceRepository, log)
	updateService := updateServiceHandler.NewHandler(serviceRepository, log)
	deleteService := deleteServiceHandler.NewHandler(serviceRepository, log)

	// Роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog(log))
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api").Subrouter()

	// Записи на приём. Исторически клиенты ходят и на /appointment, и
	// на /appointments — маршруты регистрируются на оба префикса.
	for _, prefix := range []string{"/appointment", "/appointments"} {
		api.HandleFunc(prefix, listAppointments.Handle).Methods(http.MethodGet)
		api.HandleFunc(prefix, createAppointment.Handle).Methods(http.MethodPost)
		api.HandleFunc(prefix+"/{id}", updateAppointment.Handle).Methods(http.MethodPatch, http.MethodPut)
		api.HandleFunc(prefix+"/{id}/status", updateStatus.Handle).Methods(http.MethodPatch)
		api.HandleFunc(prefix+"/{id}", deleteAppointment.Handle).Methods(http.MethodDelete)
	}

	// Капстеры
	api.HandleFunc("/capsters", listCapsters.Handle).Methods(http.MethodGet)
	api.HandleFunc("/capsters", createCapster.Handle).Methods(http.MethodPost)

	// Услуги
	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/services", createService.Handle).Methods(http.MethodPost)
	api.HandleFunc("/services/{name}", updateService.Handle).Methods(http.MethodPut)
	api.HandleFunc("/services/{name}", deleteService.Handle).Methods(http.MethodDelete)

	// HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
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

	if purgeCron != nil {
		purgeCron.Stop()
		log.Info("Janitor schedule stopped")
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
