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
	_ "time/tzdata"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	blockTimeHandler "github.com/m04kA/SMC-SalonAvailability/internal/api/handlers/block_time"
	cancelBookingHandler "github.com/m04kA/SMC-SalonAvailability/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/SMC-SalonAvailability/internal/api/handlers/create_booking"
	getAvailableSlotsHandler "github.com/m04kA/SMC-SalonAvailability/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/SMC-SalonAvailability/internal/api/handlers/get_booking"
	getGridHandler "github.com/m04kA/SMC-SalonAvailability/internal/api/handlers/get_grid"
	getSalonSettingsHandler "github.com/m04kA/SMC-SalonAvailability/internal/api/handlers/get_salon_settings"
	rescheduleBookingHandler "github.com/m04kA/SMC-SalonAvailability/internal/api/handlers/reschedule_booking"
	updateBookingStatusHandler "github.com/m04kA/SMC-SalonAvailability/internal/api/handlers/update_booking_status"
	updateSalonSettingsHandler "github.com/m04kA/SMC-SalonAvailability/internal/api/handlers/update_salon_settings"
	validateBookingHandler "github.com/m04kA/SMC-SalonAvailability/internal/api/handlers/validate_booking"
	"github.com/m04kA/SMC-SalonAvailability/internal/api/middleware"
	"github.com/m04kA/SMC-SalonAvailability/internal/config"
	"github.com/m04kA/SMC-SalonAvailability/internal/domain"
	"github.com/m04kA/SMC-SalonAvailability/internal/infra/lock"
	bookingRepo "github.com/m04kA/SMC-SalonAvailability/internal/infra/storage/booking"
	catalogRepo "github.com/m04kA/SMC-SalonAvailability/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-SalonAvailability/internal/infra/storage/daycontext"
	scheduleRepo "github.com/m04kA/SMC-SalonAvailability/internal/infra/storage/schedule"
	settingsRepo "github.com/m04kA/SMC-SalonAvailability/internal/infra/storage/settings"
	bookingsService "github.com/m04kA/SMC-SalonAvailability/internal/service/bookings"
	settingsService "github.com/m04kA/SMC-SalonAvailability/internal/service/settings"
	blockTimeUC "github.com/m04kA/SMC-SalonAvailability/internal/usecase/block_time"
	createBookingUC "github.com/m04kA/SMC-SalonAvailability/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-SalonAvailability/internal/usecase/get_available_slots"
	getGridUC "github.com/m04kA/SMC-SalonAvailability/internal/usecase/get_grid"
	rescheduleBookingUC "github.com/m04kA/SMC-SalonAvailability/internal/usecase/reschedule_booking"
	validateBookingUC "github.com/m04kA/SMC-SalonAvailability/internal/usecase/validate_booking"
	"github.com/m04kA/SMC-SalonAvailability/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonAvailability/pkg/logger"
	"github.com/m04kA/SMC-SalonAvailability/pkg/metrics"
	"github.com/m04kA/SMC-SalonAvailability/pkg/txmanager"
)

// staffLockWait сколько запрос ждет освобождения мастера, прежде чем вернуть 409
const staffLockWait = 3 * time.Second

// StaffLocker общий интерфейс Redis- и локальной блокировки
type StaffLocker interface {
	WithStaffLock(ctx context.Context, staffID string, fn func(ctx context.Context) error) error
}

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

	log.Info("Starting SMC-SalonAvailability...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены). nil-коллектор безопасен для всех вызовов.
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

	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil)
	}
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Блокировка мастеров: Redis для нескольких инстансов, иначе в памяти процесса
	var staffLocker StaffLocker
	if cfg.Redis.Enabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := rdb.Ping(pingCtx).Err()
		cancel()
		if err != nil {
			log.Fatal("Failed to ping redis at %s: %v", cfg.Redis.Address, err)
		}

		staffLocker = lock.NewRedisLocker(rdb, cfg.Redis.LockTTL(), staffLockWait, metricsCollector)
		log.Info("Redis staff locks enabled (address=%s, ttl=%s)", cfg.Redis.Address, cfg.Redis.LockTTL())
	} else {
		staffLocker = lock.NewLocalLocker(staffLockWait, metricsCollector)
		log.Warn("Redis disabled: staff locks are local to this instance")
	}

	// Инициализируем репозитории
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	catalogRepository := catalogRepo.NewRepository(wrappedDB)
	scheduleRepository := scheduleRepo.NewRepository(wrappedDB)
	settingsRepository := settingsRepo.NewRepository(wrappedDB)
	dayLoader := daycontext.NewLoader(scheduleRepository, bookingRepository)

	// Инициализируем сервисы
	settingsSvc := settingsService.NewService(
		settingsRepository,
		settingsService.Defaults{
			BookingMode:     domain.DefaultBookingMode,
			Timezone:        cfg.Booking.DefaultTimezone,
			SlotStepMinutes: cfg.Booking.DefaultStepMinutes,
		},
		log,
	)
	bookingSvc := bookingsService.NewService(bookingRepository, txMgr, log)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		settingsSvc,
		catalogRepository,
		dayLoader,
		metricsCollector,
		log,
	)
	getGridUseCase := getGridUC.NewUseCase(
		settingsSvc,
		catalogRepository,
		dayLoader,
		log,
	)
	validateBookingUseCase := validateBookingUC.NewUseCase(
		settingsSvc,
		catalogRepository,
		dayLoader,
		metricsCollector,
		log,
	)
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		settingsSvc,
		catalogRepository,
		dayLoader,
		staffLocker,
		txMgr,
		metricsCollector,
		log,
	)
	rescheduleBookingUseCase := rescheduleBookingUC.NewUseCase(
		bookingRepository,
		settingsSvc,
		catalogRepository,
		dayLoader,
		staffLocker,
		txMgr,
		metricsCollector,
		log,
	)
	blockTimeUseCase := blockTimeUC.NewUseCase(
		scheduleRepository,
		catalogRepository,
		settingsSvc,
		dayLoader,
		staffLocker,
		txMgr,
		metricsCollector,
		log,
	)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getGrid := getGridHandler.NewHandler(getGridUseCase, log)
	validateBooking := validateBookingHandler.NewHandler(validateBookingUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	rescheduleBooking := rescheduleBookingHandler.NewHandler(rescheduleBookingUseCase, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	blockTime := blockTimeHandler.NewHandler(blockTimeUseCase, log)
	getSalonSettings := getSalonSettingsHandler.NewHandler(settingsSvc, log)
	updateSalonSettings := updateSalonSettingsHandler.NewHandler(settingsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Свободные слоты для записи
	api.HandleFunc("/salons/{salonId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Сетка календаря мастера с причинами занятости
	api.HandleFunc("/salons/{salonId}/staff/{staffId}/grid", getGrid.Handle).Methods(http.MethodGet)

	// Пробная проверка интервала
	api.HandleFunc("/salons/{salonId}/bookings/validate", validateBooking.Handle).Methods(http.MethodPost)

	// Настройки записи салона
	api.HandleFunc("/salons/{salonId}/settings", getSalonSettings.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	protected.HandleFunc("/salons/{salonId}/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/reschedule", rescheduleBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	// --- Управление салоном ---
	protected.HandleFunc("/salons/{salonId}/staff/{staffId}/blocks", blockTime.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/salons/{salonId}/settings", updateSalonSettings.Handle).Methods(http.MethodPut)

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

	log.Info("Server stopped gracefully")
}
