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

	clearSelectionHandler "github.com/m04kA/SMC-MeetingRoomService/internal/api/handlers/clear_selection"
	createMeetingHandler "github.com/m04kA/SMC-MeetingRoomService/internal/api/handlers/create_meeting"
	createSessionHandler "github.com/m04kA/SMC-MeetingRoomService/internal/api/handlers/create_session"
	deleteMeetingHandler "github.com/m04kA/SMC-MeetingRoomService/internal/api/handlers/delete_meeting"
	getMeetingHandler "github.com/m04kA/SMC-MeetingRoomService/internal/api/handlers/get_meeting"
	getNotificationHandler "github.com/m04kA/SMC-MeetingRoomService/internal/api/handlers/get_notification"
	getSessionHandler "github.com/m04kA/SMC-MeetingRoomService/internal/api/handlers/get_session"
	getSupportMeetingsHandler "github.com/m04kA/SMC-MeetingRoomService/internal/api/handlers/get_support_meetings"
	listMeetingsHandler "github.com/m04kA/SMC-MeetingRoomService/internal/api/handlers/list_meetings"
	setSelectionHandler "github.com/m04kA/SMC-MeetingRoomService/internal/api/handlers/set_selection"
	toggleAdminHandler "github.com/m04kA/SMC-MeetingRoomService/internal/api/handlers/toggle_admin"
	updateMeetingHandler "github.com/m04kA/SMC-MeetingRoomService/internal/api/handlers/update_meeting"
	updatePreferencesHandler "github.com/m04kA/SMC-MeetingRoomService/internal/api/handlers/update_preferences"
	updateSupportStatusHandler "github.com/m04kA/SMC-MeetingRoomService/internal/api/handlers/update_support_status"
	"github.com/m04kA/SMC-MeetingRoomService/internal/api/middleware"
	"github.com/m04kA/SMC-MeetingRoomService/internal/config"
	meetingRepo "github.com/m04kA/SMC-MeetingRoomService/internal/infra/storage/meeting"
	sessionRepo "github.com/m04kA/SMC-MeetingRoomService/internal/infra/storage/session"
	meetingsService "github.com/m04kA/SMC-MeetingRoomService/internal/service/meetings"
	sessionService "github.com/m04kA/SMC-MeetingRoomService/internal/service/session"
	supportService "github.com/m04kA/SMC-MeetingRoomService/internal/service/support"
	saveMeetingUC "github.com/m04kA/SMC-MeetingRoomService/internal/usecase/save_meeting"
	"github.com/m04kA/SMC-MeetingRoomService/pkg/dbmetrics"
	"github.com/m04kA/SMC-MeetingRoomService/pkg/logger"
	"github.com/m04kA/SMC-MeetingRoomService/pkg/metrics"
	"github.com/m04kA/SMC-MeetingRoomService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-MeetingRoomService/pkg/txmanager"
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

	log.Info("Starting SMC-MeetingRoomService...")
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

	// Подключаемся к Redis (состояние сессий и уведомления)
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to ping redis: %v", err)
	}
	log.Info("Successfully connected to redis (addr=%s, db=%d)", cfg.Redis.Addr(), cfg.Redis.DB)

	// Инициализируем репозитории (с метриками или без)
	var meetingRepository *meetingRepo.Repository

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		meetingRepository = meetingRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		meetingRepository = meetingRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	sessionRepository := sessionRepo.NewRepository(redisClient)

	// Инициализируем сервисы
	sessionSvc := sessionService.NewService(sessionRepository, log)
	meetingsSvc := meetingsService.NewService(meetingRepository, sessionRepository, log)
	supportSvc := supportService.NewService(meetingsSvc, meetingRepository, sessionRepository, log)

	// Инициализируем use cases
	saveMeetingUseCase := saveMeetingUC.NewUseCase(
		meetingsSvc,
		meetingRepository,
		sessionRepository,
		txMgr,
		log,
	)

	// Инициализируем handlers
	createMeeting := createMeetingHandler.NewHandler(saveMeetingUseCase, log)
	updateMeeting := updateMeetingHandler.NewHandler(saveMeetingUseCase, log)
	deleteMeeting := deleteMeetingHandler.NewHandler(meetingsSvc, sessionRepository, log)
	getMeeting := getMeetingHandler.NewHandler(meetingsSvc, log)
	listMeetings := listMeetingsHandler.NewHandler(meetingsSvc, log)
	getSupportMeetings := getSupportMeetingsHandler.NewHandler(supportSvc, log)
	updateSupportStatus := updateSupportStatusHandler.NewHandler(supportSvc, log)
	createSession := createSessionHandler.NewHandler(sessionSvc, log)
	getSession := getSessionHandler.NewHandler(sessionSvc, log)
	toggleAdmin := toggleAdminHandler.NewHandler(sessionSvc, log)
	updatePreferences := updatePreferencesHandler.NewHandler(sessionSvc, log)
	setSelection := setSelectionHandler.NewHandler(meetingsSvc, log)
	clearSelection := clearSelectionHandler.NewHandler(meetingsSvc, log)
	getNotification := getNotificationHandler.NewHandler(sessionSvc, log)

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

	// Выдача анонимной сессии
	api.HandleFunc("/sessions", createSession.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-Session-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(sessionSvc))

	// --- Брони переговорных ---
	protected.HandleFunc("/meetings", createMeeting.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/meetings", listMeetings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/meetings/{meetingId}", getMeeting.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/meetings/{meetingId}", updateMeeting.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/meetings/{meetingId}", deleteMeeting.Handle).Methods(http.MethodDelete)

	// --- Дашборд поддержки (оборудование) ---
	protected.HandleFunc("/support/meetings", getSupportMeetings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/support/meetings/{meetingId}/status", updateSupportStatus.Handle).Methods(http.MethodPatch)

	// --- Сессия ---
	protected.HandleFunc("/sessions/current", getSession.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/sessions/current/admin", toggleAdmin.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/sessions/current/preferences", updatePreferences.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/sessions/current/selection", setSelection.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/sessions/current/selection", clearSelection.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/sessions/current/notification", getNotification.Handle).Methods(http.MethodGet)

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
