package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AdiSal73/jaguars-da-teamflow-sub005/config"
	deliveryHttp "github.com/AdiSal73/jaguars-da-teamflow-sub005/internal/delivery/http"
	"github.com/AdiSal73/jaguars-da-teamflow-sub005/internal/delivery/http/handler"
	"github.com/AdiSal73/jaguars-da-teamflow-sub005/internal/delivery/http/middleware"
	"github.com/AdiSal73/jaguars-da-teamflow-sub005/internal/infrastructure/cache"
	"github.com/AdiSal73/jaguars-da-teamflow-sub005/internal/infrastructure/database"
	"github.com/AdiSal73/jaguars-da-teamflow-sub005/internal/infrastructure/messaging"
	"github.com/AdiSal73/jaguars-da-teamflow-sub005/internal/repository"
	"github.com/AdiSal73/jaguars-da-teamflow-sub005/internal/scheduler"
	"github.com/AdiSal73/jaguars-da-teamflow-sub005/internal/service"
	"github.com/AdiSal73/jaguars-da-teamflow-sub005/internal/usecase"
	"github.com/AdiSal73/jaguars-da-teamflow-sub005/pkg/jwt"
	"github.com/AdiSal73/jaguars-da-teamflow-sub005/pkg/obs"
	"github.com/AdiSal73/jaguars-da-teamflow-sub005/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// eventPublisher is the messaging side the app owns and must close.
type eventPublisher interface {
	usecase.EventPublisher
	Close() error
}

// App holds all dependencies for the application
type App struct {
	Config         *config.Config
	Log            *logrus.Logger
	DB             *gorm.DB
	RedisClient    *redis.Client
	Server         *http.Server
	LockService    *service.SlotLockService
	Publisher      eventPublisher
	HorizonJob     *scheduler.HorizonJob
	TracerShutdown obs.ShutdownFunc
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg

	log := setupLogger(cfg.App.LogLevel)
	app.Log = log
	log.Info("Configuration loaded successfully")

	shutdown, err := obs.InitTracer(cfg.App.ServiceName, cfg.App.Env, cfg.Tracing.OTLPEndpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize tracing: %w", err)
	}
	app.TracerShutdown = shutdown

	if err := database.RunMigrations(cfg.DB); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	log.Info("Migrations applied")

	db, err := database.NewPostgresConnection(cfg.DB, cfg.IsProduction())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	log.Info("Database connected successfully")

	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	log.Info("Redis connected successfully")

	if cfg.RabbitMQ.URL == "" {
		app.Publisher = messaging.NoopPublisher{}
		log.Warn("RABBITMQ_URL not set, availability events are not published")
	} else {
		publisher, err := messaging.NewPublisher(cfg.RabbitMQ.URL, cfg.RabbitMQ.Exchange)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
		}
		app.Publisher = publisher
		log.Info("RabbitMQ connected successfully")
	}

	app.initialize(cfg, db, redisClient)

	return app, nil
}

func setupLogger(level string) *logrus.Logger {
	log := logrus.StandardLogger()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	log.SetLevel(parsed)
	return log
}

// initialize wires repositories, usecases and the HTTP layer.
func (app *App) initialize(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) {
	log := app.Log

	jwtService := jwt.NewJWTService(cfg.JWT)
	customValidator := validator.NewValidator()
	transactor := database.NewTransactor(db)

	// Repositories
	patternRepo := repository.NewRecurrencePatternRepository()
	slotRepo := repository.NewTimeSlotRepository()
	exceptionRepo := repository.NewRecurrenceExceptionRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	// Services
	auditService := service.NewAuditService(log, auditLogRepo)
	app.LockService = service.NewSlotLockService(redisClient, log, cfg.Lock.TTL, cfg.Lock.Wait)

	// Usecases
	patternUsecase := usecase.NewRecurrencePatternUsecase(transactor, log, patternRepo, auditService)
	generationUsecase := usecase.NewSlotGenerationUsecase(
		transactor, log, patternRepo, slotRepo, exceptionRepo, auditService, app.LockService, app.Publisher,
	)
	slotUsecase := usecase.NewTimeSlotUsecase(transactor, log, slotRepo)
	removalUsecase := usecase.NewSegmentRemovalUsecase(transactor, log, slotRepo, exceptionRepo, auditService, app.Publisher)
	auditLogUsecase := usecase.NewAuditLogUsecase(transactor, log, auditLogRepo)

	// Handlers
	recurrencePatternHandler := handler.NewRecurrencePatternHandler(patternUsecase, generationUsecase, customValidator)
	timeSlotHandler := handler.NewTimeSlotHandler(slotUsecase, removalUsecase, customValidator)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase)

	authMiddleware := middleware.NewAuthMiddleware(jwtService, cache.NewTokenRegistry(redisClient))
	corsMiddleware := middleware.NewCORSMiddleware()

	router := deliveryHttp.NewRouter(recurrencePatternHandler, timeSlotHandler, auditLogHandler, authMiddleware, corsMiddleware)

	app.Server = &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.App.Port),
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	if cfg.Scheduler.Enabled {
		app.HorizonJob = scheduler.NewHorizonJob(cfg.Scheduler, generationUsecase, log)
	}
}

// Run starts the HTTP server and the horizon job, then blocks until shutdown.
func (app *App) Run() {
	if app.HorizonJob != nil {
		if err := app.HorizonJob.Start(); err != nil {
			app.Log.Fatalf("Failed to start horizon job: %v", err)
		}
	}

	go func() {
		app.Log.Infof("Server starting on port %s", app.Config.App.Port)
		app.Log.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			app.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	app.waitForShutdown()
}

func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	app.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		app.Log.Errorf("Server forced to shutdown: %v", err)
	}

	// In-flight generation runs finish before their connections go away.
	if app.HorizonJob != nil {
		app.HorizonJob.Stop(ctx)
	}

	app.Close(ctx)

	app.Log.Info("Server shutdown complete")
}

// Close releases every connection the app holds.
func (app *App) Close(ctx context.Context) {
	if app.LockService != nil {
		app.LockService.Stop()
	}

	if app.Publisher != nil {
		if err := app.Publisher.Close(); err != nil {
			app.Log.Warnf("Failed to close publisher: %v", err)
		}
	}

	if app.TracerShutdown != nil {
		if err := app.TracerShutdown(ctx); err != nil {
			app.Log.Warnf("Failed to flush traces: %v", err)
		}
	}

	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
