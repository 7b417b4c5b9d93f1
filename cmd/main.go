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

	bookingWizardHandler "github.com/m04kA/Salon-BookingService/internal/api/handlers/booking_wizard"
	cancelAppointmentHandler "github.com/m04kA/Salon-BookingService/internal/api/handlers/cancel_appointment"
	catalogHandler "github.com/m04kA/Salon-BookingService/internal/api/handlers/catalog"
	createAppointmentHandler "github.com/m04kA/Salon-BookingService/internal/api/handlers/create_appointment"
	getAppointmentHandler "github.com/m04kA/Salon-BookingService/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/m04kA/Salon-BookingService/internal/api/handlers/get_available_slots"
	listAppointmentsHandler "github.com/m04kA/Salon-BookingService/internal/api/handlers/list_appointments"
	listNotificationsHandler "github.com/m04kA/Salon-BookingService/internal/api/handlers/list_notifications"
	updateAppointmentHandler "github.com/m04kA/Salon-BookingService/internal/api/handlers/update_appointment"
	"github.com/m04kA/Salon-BookingService/internal/api/middleware"
	"github.com/m04kA/Salon-BookingService/internal/config"
	appointmentRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/appointment"
	catalogRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/catalog"
	"github.com/m04kA/Salon-BookingService/internal/notify"
	appointmentsService "github.com/m04kA/Salon-BookingService/internal/service/appointments"
	wizardService "github.com/m04kA/Salon-BookingService/internal/service/wizard"
	createAppointmentUC "github.com/m04kA/Salon-BookingService/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/m04kA/Salon-BookingService/internal/usecase/get_available_slots"
	"github.com/m04kA/Salon-BookingService/pkg/logger"
	"github.com/m04kA/Salon-BookingService/pkg/metrics"
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

	log.Info("Starting Salon-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем in-memory хранилища с mock-данными
	// Состояние не переживает рестарт: каждый запуск начинается с seed-набора
	appointmentRepository := appointmentRepo.NewSeededRepository()
	catalogRepository := catalogRepo.NewSeededRepository()
	log.Info("In-memory storage seeded: appointments=%d", appointmentRepository.Len())

	// Лента пользовательских уведомлений
	feed := notify.NewFeed(notify.DefaultCapacity)

	// Инициализируем сервисы и use cases
	appointmentsSvc := appointmentsService.NewService(
		appointmentRepository,
		feed,
		metricsCollectorOrNil(metricsCollector),
		log,
	)

	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		catalogRepository,
		feed,
		createMetricsOrNil(metricsCollector),
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		appointmentRepository,
		log,
	)

	wizardSvc := wizardService.NewService(
		catalogRepository,
		createAppointmentUseCase,
		feed,
		log,
	)

	// Инициализируем handlers
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	listAppointments := listAppointmentsHandler.NewHandler(appointmentsSvc, log)
	updateAppointment := updateAppointmentHandler.NewHandler(appointmentsSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentsSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	catalogH := catalogHandler.NewHandler(catalogRepository, log)
	bookingWizard := bookingWizardHandler.NewHandler(wizardSvc, log)
	listNotifications := listNotificationsHandler.NewHandler(feed, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Каталог: услуги, мастера, салоны
	api.HandleFunc("/services", catalogH.HandleListServices).Methods(http.MethodGet)
	api.HandleFunc("/services/{serviceId}", catalogH.HandleGetService).Methods(http.MethodGet)
	api.HandleFunc("/professionals", catalogH.HandleListProfessionals).Methods(http.MethodGet)
	api.HandleFunc("/professionals/{professionalId}", catalogH.HandleGetProfessional).Methods(http.MethodGet)
	api.HandleFunc("/salons", catalogH.HandleListSalons).Methods(http.MethodGet)
	api.HandleFunc("/salons/{salonId}", catalogH.HandleGetSalon).Methods(http.MethodGet)

	// Доступные и популярные слоты
	api.HandleFunc("/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/popular-slots", getAvailableSlots.HandlePopular).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Записи на услуги ---
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{appointmentId}", updateAppointment.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)

	// --- Мастер бронирования ---
	protected.HandleFunc("/wizard/sessions", bookingWizard.HandleStart).Methods(http.MethodPost)
	protected.HandleFunc("/wizard/sessions/{sessionId}", bookingWizard.HandleGet).Methods(http.MethodGet)
	protected.HandleFunc("/wizard/sessions/{sessionId}", bookingWizard.HandleAbandon).Methods(http.MethodDelete)
	protected.HandleFunc("/wizard/sessions/{sessionId}/salon", bookingWizard.HandleSelectSalon).Methods(http.MethodPost)
	protected.HandleFunc("/wizard/sessions/{sessionId}/service", bookingWizard.HandleSelectService).Methods(http.MethodPost)
	protected.HandleFunc("/wizard/sessions/{sessionId}/professional", bookingWizard.HandleSelectProfessional).Methods(http.MethodPost)
	protected.HandleFunc("/wizard/sessions/{sessionId}/datetime", bookingWizard.HandleSelectDateTime).Methods(http.MethodPost)
	protected.HandleFunc("/wizard/sessions/{sessionId}/back", bookingWizard.HandleBack).Methods(http.MethodPost)
	protected.HandleFunc("/wizard/sessions/{sessionId}/reset", bookingWizard.HandleReset).Methods(http.MethodPost)
	protected.HandleFunc("/wizard/sessions/{sessionId}/confirm", bookingWizard.HandleConfirm).Methods(http.MethodPost)

	// --- Уведомления ---
	protected.HandleFunc("/notifications", listNotifications.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
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

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

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

// metricsCollectorOrNil возвращает типизированный nil, когда метрики выключены:
// проверка metrics != nil внутри сервисов должна срабатывать корректно
func metricsCollectorOrNil(m *metrics.Metrics) appointmentsService.Metrics {
	if m == nil {
		return nil
	}
	return m
}

func createMetricsOrNil(m *metrics.Metrics) createAppointmentUC.Metrics {
	if m == nil {
		return nil
	}
	return m
}
