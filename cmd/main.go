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
	"github.com/redis/go-redis/v9"

	cancelAppointmentHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/cancel_appointment"
	createBlockedHourHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/create_blocked_hour"
	createBookingHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/create_booking"
	createServiceHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/create_service"
	deleteBlockedHourHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/delete_blocked_hour"
	deleteCustomHourHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/delete_custom_hour"
	getAppointmentHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/get_available_slots"
	getBlockedCalendarHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/get_blocked_calendar"
	getDayOverviewHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/get_day_overview"
	getGeneralHoursHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/get_general_hours"
	listAppointmentsHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/list_appointments"
	listBlockedHoursHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/list_blocked_hours"
	listCustomHoursHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/list_custom_hours"
	listServicesHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/list_services"
	putCustomHourHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/put_custom_hour"
	updateAppointmentStatusHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/update_appointment_status"
	updateGeneralHoursHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/update_general_hours"
	updateServiceHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/update_service"
	"github.com/m04kA/SMC-SalonBooking/internal/api/middleware"
	"github.com/m04kA/SMC-SalonBooking/internal/config"
	hoursCache "github.com/m04kA/SMC-SalonBooking/internal/infra/cache/hours"
	appointmentRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/appointment"
	blockedRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/blocked"
	hoursRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/hours"
	serviceRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/service"
	appointmentsService "github.com/m04kA/SMC-SalonBooking/internal/service/appointments"
	catalogService "github.com/m04kA/SMC-SalonBooking/internal/service/catalog"
	scheduleService "github.com/m04kA/SMC-SalonBooking/internal/service/schedule"
	createBookingUC "github.com/m04kA/SMC-SalonBooking/internal/usecase/create_booking"
	"github.com/m04kA/SMC-SalonBooking/internal/usecase/dayschedule"
	getAvailableSlotsUC "github.com/m04kA/SMC-SalonBooking/internal/usecase/get_available_slots"
	getBlockedCalendarUC "github.com/m04kA/SMC-SalonBooking/internal/usecase/get_blocked_calendar"
	getDayOverviewUC "github.com/m04kA/SMC-SalonBooking/internal/usecase/get_day_overview"
	"github.com/m04kA/SMC-SalonBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
	"github.com/m04kA/SMC-SalonBooking/pkg/metrics"
	"github.com/m04kA/SMC-SalonBooking/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	configPath := config.Path()
	cfg, err := config.Load(configPath)
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

	log.Info("Starting SMC-SalonBooking...")
	log.Info("Configuration loaded from %s", configPath)

	location, err := cfg.Booking.Location()
	if err != nil {
		log.Fatal("Failed to load salon timezone %q: %v", cfg.Booking.Timezone, err)
	}

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// При выключенных метриках обёртка работает как прокси, транзакции идут через неё же
	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)
	if metricsCollector != nil {
		log.Info("Database metrics collection started")
	}

	// Инициализируем репозитории
	hoursRepository := hoursRepo.NewRepository(wrappedDB)
	blockedRepository := blockedRepo.NewRepository(wrappedDB)
	appointmentRepository := appointmentRepo.NewRepository(wrappedDB)
	serviceRepository := serviceRepo.NewRepository(wrappedDB)

	// Кэш рабочих часов
	var (
		store       hoursCache.Store
		redisClient *redis.Client
	)
	switch cfg.Cache.Backend {
	case config.CacheBackendRedis:
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Cache.Redis.Addr,
			Password: cfg.Cache.Redis.Password,
			DB:       cfg.Cache.Redis.DB,
		})
		pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := redisClient.Ping(pingCtx).Err()
		pingCancel()
		if err != nil {
			log.Fatal("Failed to ping redis at %s: %v", cfg.Cache.Redis.Addr, err)
		}
		store = hoursCache.NewRedisStore(redisClient, cfg.Cache.Redis.Key)
		log.Info("Hours cache backed by redis (addr=%s, key=%s)", cfg.Cache.Redis.Addr, cfg.Cache.Redis.Key)
	default:
		store = hoursCache.NewMemoryStore()
		log.Info("Hours cache backed by memory")
	}
	generalHoursCache := hoursCache.New(store, cfg.Cache.TTL(), log)
	if cfg.Cache.TTL() <= 0 {
		log.Info("Hours cache disabled (cache.ttl_seconds = 0)")
	}

	// Общие компоненты расчета расписания
	scheduleLoader := dayschedule.NewLoader(hoursRepository, blockedRepository, appointmentRepository, generalHoursCache)
	bookingPolicy := dayschedule.NewPolicy(location, cfg.Booking.MinNoticeMinutes, cfg.Booking.AdvanceBookingDays)
	log.Info("Booking policy: timezone=%s, min_notice=%dm, advance_days=%d",
		location, cfg.Booking.MinNoticeMinutes, cfg.Booking.AdvanceBookingDays)

	// Инициализируем сервисы
	scheduleSvc := scheduleService.NewService(
		hoursRepository,
		blockedRepository,
		generalHoursCache,
		txMgr,
		log,
	)
	appointmentsSvc := appointmentsService.NewService(appointmentRepository, log)
	catalogSvc := catalogService.NewService(serviceRepository, log)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		serviceRepository,
		scheduleLoader,
		bookingPolicy,
		metricsCollector,
		log,
	)
	createBookingUseCase := createBookingUC.NewUseCase(
		serviceRepository,
		appointmentRepository,
		scheduleLoader,
		bookingPolicy,
		txMgr,
		metricsCollector,
		log,
	)
	getDayOverviewUseCase := getDayOverviewUC.NewUseCase(serviceRepository, scheduleLoader, log)
	getBlockedCalendarUseCase := getBlockedCalendarUC.NewUseCase(blockedRepository, log)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	listActiveServices := listServicesHandler.NewHandler(catalogSvc, true, log)

	listAllServices := listServicesHandler.NewHandler(catalogSvc, false, log)
	createService := createServiceHandler.NewHandler(catalogSvc, log)
	updateService := updateServiceHandler.NewHandler(catalogSvc, log)

	getGeneralHours := getGeneralHoursHandler.NewHandler(scheduleSvc, log)
	updateGeneralHours := updateGeneralHoursHandler.NewHandler(scheduleSvc, log)
	listCustomHours := listCustomHoursHandler.NewHandler(scheduleSvc, log)
	putCustomHour := putCustomHourHandler.NewHandler(scheduleSvc, log)
	deleteCustomHour := deleteCustomHourHandler.NewHandler(scheduleSvc, log)
	listBlockedHours := listBlockedHoursHandler.NewHandler(scheduleSvc, log)
	createBlockedHour := createBlockedHourHandler.NewHandler(scheduleSvc, log)
	deleteBlockedHour := deleteBlockedHourHandler.NewHandler(scheduleSvc, log)
	getBlockedCalendar := getBlockedCalendarHandler.NewHandler(getBlockedCalendarUseCase, log)

	listAppointments := listAppointmentsHandler.NewHandler(appointmentsSvc, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentsSvc, log)
	updateAppointmentStatus := updateAppointmentStatusHandler.NewHandler(appointmentsSvc, log)
	getDayOverview := getDayOverviewHandler.NewHandler(getDayOverviewUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		// Metrics endpoint (публичный, без аутентификации)
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Свободные слоты услуги на дату
	api.HandleFunc("/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Создание записи
	api.HandleFunc("/appointments", createBooking.Handle).Methods(http.MethodPost)

	// Каталог активных услуг
	api.HandleFunc("/services", listActiveServices.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (требуют X-User-ID header)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.Auth)

	// --- Услуги ---
	admin.HandleFunc("/services", listAllServices.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/services", createService.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/services/{serviceId}", updateService.Handle).Methods(http.MethodPut)

	// --- Рабочие часы ---
	admin.HandleFunc("/general-hours", getGeneralHours.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/general-hours", updateGeneralHours.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/custom-hours", listCustomHours.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/custom-hours/{date}", putCustomHour.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/custom-hours/{date}", deleteCustomHour.Handle).Methods(http.MethodDelete)

	// --- Блокировки ---
	// calendar регистрируется раньше {blockedHourId}
	admin.HandleFunc("/blocked-hours/calendar", getBlockedCalendar.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/blocked-hours", listBlockedHours.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/blocked-hours", createBlockedHour.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/blocked-hours/{blockedHourId}", deleteBlockedHour.Handle).Methods(http.MethodDelete)

	// --- Записи ---
	admin.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/appointments/{appointmentId}/status", updateAppointmentStatus.Handle).Methods(http.MethodPatch)

	// --- Обзор дня ---
	admin.HandleFunc("/days/{date}", getDayOverview.Handle).Methods(http.MethodGet)

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

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close redis client: %v", err)
		}
	}

	log.Info("Server stopped gracefully")
}
