package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"slotbook/config"
	"slotbook/cron"
	"slotbook/database"
	"slotbook/database/repository"
	"slotbook/handlers"
	"slotbook/middleware"
	"slotbook/routes"
	"slotbook/services/booking"
	"slotbook/services/notification"
	"slotbook/services/tasks"
	"slotbook/services/user"
	"slotbook/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()
	defer func() { _ = logger.Sync() }()

	rootCtx, stop := context.WithCancel(context.Background())
	defer stop()

	// repositories.
	var (
		repos       *repository.Repositories
		mongoClient *mongo.Client
	)
	switch config.AppConfig.DatabaseDriver {
	case "memory":
		logger.Warn("main: using in-memory store, data will not survive a restart")
		repos = repository.NewMemoryRepositories()
	default:
		client, err := database.InitDB(rootCtx, config.AppConfig.DatabaseURL)
		if err != nil {
			logger.Fatal("main: failed to connect to MongoDB", zap.Error(err))
		}
		mongoClient = client
		repos, err = repository.NewMongoRepositories(rootCtx, client.Database(config.AppConfig.DatabaseName))
		if err != nil {
			logger.Fatal("main: failed to initialize repositories", zap.Error(err))
		}
		logger.Info("main: connected to MongoDB", zap.String("database", config.AppConfig.DatabaseName))
	}

	// redis-backed session revocation and notifications.
	var (
		revocations utils.RevocationStore = utils.NopRevocationStore{}
		notifier    booking.Notifier      = tasks.NopNotifier{}
		redisClient *redis.Client
		worker      *asynq.Server
		queue       *asynq.Client
	)
	if config.RedisEnabled() {
		if err := utils.InitAuthCache(); err != nil {
			logger.Warn("main: redis unavailable, logout will only clear the cookie", zap.Error(err))
		} else {
			redisClient = utils.GetAuthCacheClient()
			revocations = utils.NewRedisRevocationStore(redisClient)
		}

		if config.AppConfig.NotificationsEnabled {
			notifSvc, err := notification.NewDefaultNotificationService(repos.Users, logger)
			if err != nil {
				logger.Fatal("main: failed to initialize notification service", zap.Error(err))
			}
			queue = asynq.NewClient(cron.RedisClientOpt())
			notifier = tasks.NewQueueNotifier(queue)
			worker = cron.InitNotificationWorker(notifSvc, logger)
		}
	}
	utils.StartHealthMonitor(rootCtx, redisClient, mongoClient)

	// services.
	tokens := utils.NewTokenManager(config.AppConfig.JWTSecret, config.AppConfig.TokenTTL)
	userService := user.NewDefaultUserService(repos.Users, tokens, revocations, logger)
	engine := booking.NewBookingEngine(repos.Availabilities, repos.Appointments, notifier, logger)

	handlerBundle := handlers.NewHandlerBundle(
		userService,
		handlers.NewAuthHandler(userService),
		handlers.NewProfessorHandler(engine),
		handlers.NewStudentHandler(engine),
	)

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))
	routes.RegisterRoutes(router, handlerBundle)

	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("main: server is shutting down...")
	stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("main: server forced to shutdown", zap.Error(err))
	}
	if worker != nil {
		worker.Shutdown()
	}
	if queue != nil {
		_ = queue.Close()
	}
	if redisClient != nil {
		_ = redisClient.Close()
	}
	if err := database.CloseDB(ctx); err != nil {
		logger.Error("main: failed to disconnect MongoDB", zap.Error(err))
	}

	logger.Info("main: server stopped gracefully")
}
