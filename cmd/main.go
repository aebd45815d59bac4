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

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	checkPaymentStatusHandler "github.com/m04kA/SalonBookingService/internal/api/handlers/check_payment_status"
	confirmAppointmentsHandler "github.com/m04kA/SalonBookingService/internal/api/handlers/confirm_appointments"
	createAppointmentHandler "github.com/m04kA/SalonBookingService/internal/api/handlers/create_appointment"
	deleteWorkScheduleHandler "github.com/m04kA/SalonBookingService/internal/api/handlers/delete_work_schedule"
	getAppointmentHandler "github.com/m04kA/SalonBookingService/internal/api/handlers/get_appointment"
	getBusySlotsHandler "github.com/m04kA/SalonBookingService/internal/api/handlers/get_busy_slots"
	getAvailableDatesHandler "github.com/m04kA/SalonBookingService/internal/api/handlers/get_available_dates"
	getAvailableSlotsHandler "github.com/m04kA/SalonBookingService/internal/api/handlers/get_available_slots"
	getMasterDayHandler "github.com/m04kA/SalonBookingService/internal/api/handlers/get_master_day"
	getMastersWithSlotsHandler "github.com/m04kA/SalonBookingService/internal/api/handlers/get_masters_with_slots"
	getWeeklyBoardHandler "github.com/m04kA/SalonBookingService/internal/api/handlers/get_weekly_board"
	getWorkScheduleHandler "github.com/m04kA/SalonBookingService/internal/api/handlers/get_work_schedule"
	listPendingHandler "github.com/m04kA/SalonBookingService/internal/api/handlers/list_pending_appointments"
	setServiceParentsHandler "github.com/m04kA/SalonBookingService/internal/api/handlers/set_service_parents"
	setWorkScheduleHandler "github.com/m04kA/SalonBookingService/internal/api/handlers/set_work_schedule"
	updateWorkScheduleHandler "github.com/m04kA/SalonBookingService/internal/api/handlers/update_work_schedule"
	"github.com/m04kA/SalonBookingService/internal/api/middleware"
	"github.com/m04kA/SalonBookingService/internal/config"
	"github.com/m04kA/SalonBookingService/internal/domain"
	appointmentRepo "github.com/m04kA/SalonBookingService/internal/infra/storage/appointment"
	catalogRepo "github.com/m04kA/SalonBookingService/internal/infra/storage/catalog"
	clientRepo "github.com/m04kA/SalonBookingService/internal/infra/storage/client"
	scheduleRepo "github.com/m04kA/SalonBookingService/internal/infra/storage/schedule"
	"github.com/m04kA/SalonBookingService/internal/integrations/freedompay"
	"github.com/m04kA/SalonBookingService/internal/integrations/telegram"
	appointmentsService "github.com/m04kA/SalonBookingService/internal/service/appointments"
	catalogService "github.com/m04kA/SalonBookingService/internal/service/catalog"
	schedulesService "github.com/m04kA/SalonBookingService/internal/service/schedules"
	"github.com/m04kA/SalonBookingService/internal/service/scheduling"
	checkPaymentStatusUC "github.com/m04kA/SalonBookingService/internal/usecase/check_payment_status"
	createAppointmentUC "github.com/m04kA/SalonBookingService/internal/usecase/create_appointment"
	getAvailableDatesUC "github.com/m04kA/SalonBookingService/internal/usecase/get_available_dates"
	getAvailableSlotsUC "github.com/m04kA/SalonBookingService/internal/usecase/get_available_slots"
	getMastersWithSlotsUC "github.com/m04kA/SalonBookingService/internal/usecase/get_masters_with_slots"
	"github.com/m04kA/SalonBookingService/pkg/dbmetrics"
	"github.com/m04kA/SalonBookingService/pkg/logger"
	"github.com/m04kA/SalonBookingService/pkg/metrics"
	"github.com/m04kA/SalonBookingService/pkg/ratelimit"
	"github.com/m04kA/SalonBookingService/pkg/txmanager"
)

// database пул соединений, с метриками или без
type database interface {
	dbmetrics.DBExecutor
	dbmetrics.TxBeginner
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

	log.Info("Starting SalonBookingService...")

	loc, err := cfg.Scheduling.Location()
	if err != nil {
		log.Fatal("Failed to load timezone %s: %v", cfg.Scheduling.Timezone, err)
	}

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	sqlDB, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer sqlDB.Close()

	// Настраиваем connection pool
	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := sqlDB.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	var db database
	if cfg.Metrics.Enabled {
		db = dbmetrics.WrapWithDefault(sqlDB, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		db = dbmetrics.Plain(sqlDB)
	}
	txMgr := txmanager.NewTransactionManager(db)

	// Репозитории
	appointmentRepository := appointmentRepo.NewRepository(db)
	catalogRepository := catalogRepo.NewRepository(db)
	clientRepository := clientRepo.NewRepository(db)
	scheduleRepository := scheduleRepo.NewRepository(db)

	// Движок расписания
	schedulingCfg := domain.NewSchedulingConfig(
		cfg.Scheduling.PreBufferMinutes,
		cfg.Scheduling.PostBufferMinutes,
		cfg.Scheduling.SlotGranularityMinutes,
		cfg.Scheduling.BookingNoticeMinutes,
	)
	resolver := scheduling.NewResolver(catalogRepository)
	slotGenerator := scheduling.NewSlotGenerator(scheduleRepository, appointmentRepository, schedulingCfg, loc)
	aggregator := scheduling.NewAggregator(scheduleRepository, slotGenerator)
	detector := scheduling.NewDetector(appointmentRepository, schedulingCfg, loc)
	validator := scheduling.NewValidator(scheduleRepository, detector, loc)
	log.Info("Scheduling engine initialized (timezone=%s, buffers=%d/%d min, step=%d min, notice=%d min)",
		loc, cfg.Scheduling.PreBufferMinutes, cfg.Scheduling.PostBufferMinutes,
		cfg.Scheduling.SlotGranularityMinutes, cfg.Scheduling.BookingNoticeMinutes)

	// Интеграции после коммита записи. Выключенные остаются nil интерфейсами
	var notifier createAppointmentUC.Notifier
	if cfg.Telegram.Enabled {
		bot, err := tgbotapi.NewBotAPI(cfg.Telegram.BotToken)
		if err != nil {
			log.Fatal("Failed to initialize telegram bot: %v", err)
		}
		notifier = telegram.NewNotifier(bot, cfg.Telegram.ChatIDs, cfg.Telegram.MessagesPerSec, log)
		log.Info("Telegram notifications enabled (bot=%s, chats=%d)", bot.Self.UserName, len(cfg.Telegram.ChatIDs))
	}

	var (
		payments   createAppointmentUC.PaymentProvider
		paymentsFP *freedompay.Client
	)
	if cfg.FreedomPay.Enabled {
		paymentsFP = freedompay.NewClient(freedompay.Config{
			BaseURL:     cfg.FreedomPay.URL,
			MerchantID:  cfg.FreedomPay.MerchantID,
			SecretKey:   cfg.FreedomPay.SecretKey,
			Currency:    cfg.FreedomPay.Currency,
			TestingMode: cfg.FreedomPay.TestingMode,
			ResultURL:   cfg.FreedomPay.ResultURL,
			SuccessURL:  cfg.FreedomPay.SuccessURL,
			FailureURL:  cfg.FreedomPay.FailureURL,
			Timeout:     time.Duration(cfg.FreedomPay.Timeout) * time.Second,
		}, log)
		payments = paymentsFP
		log.Info("FreedomPay payments enabled (url=%s, timeout=%ds)", cfg.FreedomPay.URL, cfg.FreedomPay.Timeout)
	}

	// Сервисы
	appointmentSvc := appointmentsService.NewService(appointmentRepository, loc, log)
	scheduleSvc := schedulesService.NewService(scheduleRepository, catalogRepository, log)
	catalogSvc := catalogService.NewService(catalogRepository, txMgr, log)

	// Use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(resolver, scheduleRepository, slotGenerator, metricsCollector, log)
	getMastersWithSlotsUseCase := getMastersWithSlotsUC.NewUseCase(resolver, aggregator, metricsCollector, log)
	getAvailableDatesUseCase := getAvailableDatesUC.NewUseCase(resolver, aggregator, metricsCollector, log)
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		resolver,
		validator,
		appointmentRepository,
		clientRepository,
		txMgr,
		notifier,
		payments,
		metricsCollector,
		loc,
		log,
	)

	// Handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getMastersWithSlots := getMastersWithSlotsHandler.NewHandler(getMastersWithSlotsUseCase, log)
	getAvailableDates := getAvailableDatesHandler.NewHandler(getAvailableDatesUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, loc, log)
	getWorkSchedule := getWorkScheduleHandler.NewHandler(scheduleSvc, log)
	setWorkSchedule := setWorkScheduleHandler.NewHandler(scheduleSvc, log)
	updateWorkSchedule := updateWorkScheduleHandler.NewHandler(scheduleSvc, log)
	deleteWorkSchedule := deleteWorkScheduleHandler.NewHandler(scheduleSvc, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentSvc, log)
	listPending := listPendingHandler.NewHandler(appointmentSvc, log)
	confirmAppointments := confirmAppointmentsHandler.NewHandler(appointmentSvc, log)
	getMasterDay := getMasterDayHandler.NewHandler(appointmentSvc, log)
	getWeeklyBoard := getWeeklyBoardHandler.NewHandler(appointmentSvc, log)
	getBusySlots := getBusySlotsHandler.NewHandler(appointmentSvc, log)
	setServiceParents := setServiceParentsHandler.NewHandler(catalogSvc, log)

	var checkPaymentStatus *checkPaymentStatusHandler.Handler
	if paymentsFP != nil {
		checkPaymentStatus = checkPaymentStatusHandler.NewHandler(checkPaymentStatusUC.NewUseCase(appointmentSvc, paymentsFP, log), log)
	}

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации, с ограничением частоты)
	// ============================================================

	public := api.PathPrefix("").Subrouter()

	var rdb *redis.Client
	if cfg.RateLimit.Enabled {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		pingCtx, cancelPing := context.WithTimeout(context.Background(), 3*time.Second)
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			log.Warn("Redis is unavailable (addr=%s): %v", cfg.Redis.Addr, err)
		}
		cancelPing()

		limiter := ratelimit.New(rdb, cfg.RateLimit.Requests, time.Duration(cfg.RateLimit.WindowSeconds)*time.Second, cfg.RateLimit.Prefix)
		public.Use(middleware.RateLimit(limiter, cfg.RateLimit.FailOpen, log))
		log.Info("Rate limit enabled: %d requests per %ds (fail_open=%t)",
			cfg.RateLimit.Requests, cfg.RateLimit.WindowSeconds, cfg.RateLimit.FailOpen)
	}

	// --- Свободное время ---
	public.HandleFunc("/masters/{masterId:[0-9]+}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	public.HandleFunc("/services/masters-with-slots", getMastersWithSlots.Handle).Methods(http.MethodGet)
	public.HandleFunc("/services/available-dates", getAvailableDates.Handle).Methods(http.MethodGet)
	public.HandleFunc("/masters/{masterId:[0-9]+}/busy-slots", getBusySlots.Handle).Methods(http.MethodGet)

	// --- Запись клиента ---
	public.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// График работы мастера
	public.HandleFunc("/masters/{masterId:[0-9]+}/schedule", getWorkSchedule.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Графики работы ---
	protected.HandleFunc("/masters/{masterId:[0-9]+}/schedule", setWorkSchedule.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/masters/{masterId:[0-9]+}/schedule/{weekday:[0-9]+}", updateWorkSchedule.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/masters/{masterId:[0-9]+}/schedule/{weekday:[0-9]+}", deleteWorkSchedule.Handle).Methods(http.MethodDelete)

	// --- Записи ---
	protected.HandleFunc("/appointments/pending", listPending.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/weekly", getWeeklyBoard.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/confirm", confirmAppointments.HandleConfirm).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/reject", confirmAppointments.HandleReject).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/{appointmentId:[0-9]+}", getAppointment.Handle).Methods(http.MethodGet)
	if checkPaymentStatus != nil {
		protected.HandleFunc("/appointments/{appointmentId:[0-9]+}/payment-status", checkPaymentStatus.Handle).Methods(http.MethodPost)
	}

	// Доска мастера на день
	protected.HandleFunc("/masters/{masterId:[0-9]+}/appointments", getMasterDay.Handle).Methods(http.MethodGet)

	// --- Каталог услуг ---
	protected.HandleFunc("/services/{serviceId:[0-9]+}/parents", setServiceParents.Handle).Methods(http.MethodPut)

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

	if rdb != nil {
		if err := rdb.Close(); err != nil {
			log.Error("Failed to close redis client: %v", err)
		}
	}

	log.Info("Server stopped gracefully")
}
