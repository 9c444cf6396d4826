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

	buildItinerariesHandler "github.com/m04kA/BMS-SchedulingService/internal/api/handlers/build_itineraries"
	cancelAppointmentHandler "github.com/m04kA/BMS-SchedulingService/internal/api/handlers/cancel_appointment"
	createAppointmentHandler "github.com/m04kA/BMS-SchedulingService/internal/api/handlers/create_appointment"
	deleteTenantConfigHandler "github.com/m04kA/BMS-SchedulingService/internal/api/handlers/delete_tenant_config"
	getAppointmentHandler "github.com/m04kA/BMS-SchedulingService/internal/api/handlers/get_appointment"
	getCalendarAvailabilityHandler "github.com/m04kA/BMS-SchedulingService/internal/api/handlers/get_calendar_availability"
	getClientAppointmentsHandler "github.com/m04kA/BMS-SchedulingService/internal/api/handlers/get_client_appointments"
	getDailyAvailabilityHandler "github.com/m04kA/BMS-SchedulingService/internal/api/handlers/get_daily_availability"
	getServiceAvailabilityHandler "github.com/m04kA/BMS-SchedulingService/internal/api/handlers/get_service_availability"
	getTenantConfigHandler "github.com/m04kA/BMS-SchedulingService/internal/api/handlers/get_tenant_config"
	getTenantConfigsHandler "github.com/m04kA/BMS-SchedulingService/internal/api/handlers/get_tenant_configs"
	updateAppointmentStatusHandler "github.com/m04kA/BMS-SchedulingService/internal/api/handlers/update_appointment_status"
	updateTenantConfigHandler "github.com/m04kA/BMS-SchedulingService/internal/api/handlers/update_tenant_config"
	"github.com/m04kA/BMS-SchedulingService/internal/api/middleware"
	"github.com/m04kA/BMS-SchedulingService/internal/config"
	"github.com/m04kA/BMS-SchedulingService/internal/infra/cache"
	appointmentRepo "github.com/m04kA/BMS-SchedulingService/internal/infra/storage/appointment"
	calendarRepo "github.com/m04kA/BMS-SchedulingService/internal/infra/storage/calendar"
	stationRepo "github.com/m04kA/BMS-SchedulingService/internal/infra/storage/station"
	tenantConfigRepo "github.com/m04kA/BMS-SchedulingService/internal/infra/storage/tenantconfig"
	catalogServiceClient "github.com/m04kA/BMS-SchedulingService/internal/integrations/catalogservice"
	appointmentsService "github.com/m04kA/BMS-SchedulingService/internal/service/appointments"
	snapshotService "github.com/m04kA/BMS-SchedulingService/internal/service/snapshot"
	tenantConfigService "github.com/m04kA/BMS-SchedulingService/internal/service/tenantconfig"
	buildItinerariesUC "github.com/m04kA/BMS-SchedulingService/internal/usecase/build_itineraries"
	createAppointmentUC "github.com/m04kA/BMS-SchedulingService/internal/usecase/create_appointment"
	getCalendarAvailabilityUC "github.com/m04kA/BMS-SchedulingService/internal/usecase/get_calendar_availability"
	getDailyAvailabilityUC "github.com/m04kA/BMS-SchedulingService/internal/usecase/get_daily_availability"
	getServiceAvailabilityUC "github.com/m04kA/BMS-SchedulingService/internal/usecase/get_service_availability"
	"github.com/m04kA/BMS-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/BMS-SchedulingService/pkg/logger"
	"github.com/m04kA/BMS-SchedulingService/pkg/metrics"
	"github.com/m04kA/BMS-SchedulingService/pkg/simpletxmanager"
	"github.com/m04kA/BMS-SchedulingService/pkg/txmanager"
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

	log.Info("Starting BMS-SchedulingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
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

	// Инициализируем клиент каталога услуг
	catalogClient := catalogServiceClient.NewClient(
		cfg.CatalogService.URL,
		time.Duration(cfg.CatalogService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (CatalogService=%s timeout=%ds)",
		cfg.CatalogService.URL, cfg.CatalogService.Timeout)

	// Кэш помесячной доступности (опциональный)
	type MonthCache interface {
		Get(ctx context.Context, tenantID, professionalID int64, year, month int) (map[string]bool, error)
		Set(ctx context.Context, tenantID, professionalID int64, year, month int, days map[string]bool) error
		Invalidate(ctx context.Context, tenantID, professionalID int64, year, month int) error
	}
	var monthCache MonthCache

	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Fatal("Failed to ping redis: %v", err)
		}
		defer redisClient.Close()

		monthCache = cache.NewMonthAvailabilityCache(
			redisClient,
			time.Duration(cfg.Redis.TTLMinutes)*time.Minute,
		)
		log.Info("Redis month-availability cache enabled (addr=%s, ttl=%dm)",
			cfg.Redis.Addr, cfg.Redis.TTLMinutes)
	} else {
		log.Info("Redis cache disabled, calendar availability computed on every request")
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		appointmentRepository  *appointmentRepo.Repository
		calendarRepository     *calendarRepo.Repository
		stationRepository      *stationRepo.Repository
		tenantConfigRepository *tenantConfigRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		calendarRepository = calendarRepo.NewRepository(wrappedDB)
		stationRepository = stationRepo.NewRepository(wrappedDB)
		tenantConfigRepository = tenantConfigRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		calendarRepository = calendarRepo.NewRepository(db)
		stationRepository = stationRepo.NewRepository(db)
		tenantConfigRepository = tenantConfigRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	snapshotSvc := snapshotService.NewService(
		calendarRepository,
		appointmentRepository,
		tenantConfigRepository,
		log,
	)
	appointmentSvc := appointmentsService.NewService(
		appointmentRepository,
		monthCache,
		log,
	)
	tenantConfigSvc := tenantConfigService.NewService(
		tenantConfigRepository,
		log,
	)

	// Инициализируем use cases
	getDailyAvailabilityUseCase := getDailyAvailabilityUC.NewUseCase(snapshotSvc, log)
	getServiceAvailabilityUseCase := getServiceAvailabilityUC.NewUseCase(
		snapshotSvc,
		catalogClient,
		log,
	)
	getCalendarAvailabilityUseCase := getCalendarAvailabilityUC.NewUseCase(snapshotSvc, monthCache, log)
	buildItinerariesUseCase := buildItinerariesUC.NewUseCase(
		snapshotSvc,
		catalogClient,
		stationRepository,
		log,
	)
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		snapshotSvc,
		catalogClient,
		monthCache,
		txMgr,
		log,
	)

	// Инициализируем handlers
	getDailyAvailability := getDailyAvailabilityHandler.NewHandler(getDailyAvailabilityUseCase, log)
	getServiceAvailability := getServiceAvailabilityHandler.NewHandler(getServiceAvailabilityUseCase, log)
	getCalendarAvailability := getCalendarAvailabilityHandler.NewHandler(getCalendarAvailabilityUseCase, log)
	buildItineraries := buildItinerariesHandler.NewHandler(buildItinerariesUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentSvc, log)
	updateAppointmentStatus := updateAppointmentStatusHandler.NewHandler(appointmentSvc, log)
	getClientAppointments := getClientAppointmentsHandler.NewHandler(appointmentSvc, log)
	getTenantConfig := getTenantConfigHandler.NewHandler(tenantConfigSvc, log)
	getTenantConfigs := getTenantConfigsHandler.NewHandler(tenantConfigSvc, log)
	updateTenantConfig := updateTenantConfigHandler.NewHandler(tenantConfigSvc, log)
	deleteTenantConfig := deleteTenantConfigHandler.NewHandler(tenantConfigSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

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

	// Почасовая сетка доступности мастера на день
	api.HandleFunc("/tenants/{tenantId}/professionals/{professionalId}/availability",
		getDailyAvailability.Handle).Methods(http.MethodGet)

	// Окна для услуги по дням месяца у конкретного мастера
	api.HandleFunc("/tenants/{tenantId}/professionals/{professionalId}/service-availability",
		getServiceAvailability.Handle).Methods(http.MethodGet)

	// Помесячный календарь доступности мастера
	api.HandleFunc("/tenants/{tenantId}/professionals/{professionalId}/calendar",
		getCalendarAvailability.Handle).Methods(http.MethodGet)

	// Подбор маршрутов для мульти-сервисного визита
	api.HandleFunc("/tenants/{tenantId}/itineraries/search",
		buildItineraries.Handle).Methods(http.MethodPost)

	// Конфигурация размера блока расписания (с учетом иерархии)
	api.HandleFunc("/tenants/{tenantId}/config",
		getTenantConfig.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-Client-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Записи ---
	// Создание записи
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// Получение записи по ID
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)

	// Отмена записи
	protected.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)

	// Смена статуса записи (подтверждение, завершение, неявка)
	protected.HandleFunc("/appointments/{appointmentId}/status", updateAppointmentStatus.Handle).Methods(http.MethodPatch)

	// История записей клиента
	protected.HandleFunc("/clients/{clientId}/appointments", getClientAppointments.Handle).Methods(http.MethodGet)

	// --- Управление салоном (для администраторов) ---
	// Список конфигураций салона
	protected.HandleFunc("/tenants/{tenantId}/configs", getTenantConfigs.Handle).Methods(http.MethodGet)

	// Создание/обновление конфигурации салона или мастера
	protected.HandleFunc("/tenants/{tenantId}/config", updateTenantConfig.Handle).Methods(http.MethodPut)

	// Удаление конфигурации
	protected.HandleFunc("/tenants/{tenantId}/configs/{configId}", deleteTenantConfig.Handle).Methods(http.MethodDelete)

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
