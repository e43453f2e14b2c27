package main

import (
	"context"
	"log"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/schoolroute/bustrack/internal/pkg/config"
	"github.com/schoolroute/bustrack/internal/pkg/database"
	"github.com/schoolroute/bustrack/internal/pkg/health"
	"github.com/schoolroute/bustrack/internal/pkg/logger"
	"github.com/schoolroute/bustrack/internal/pkg/middleware"
	"github.com/schoolroute/bustrack/internal/pkg/nats"
	"github.com/schoolroute/bustrack/internal/pkg/server"
	attendancehttp "github.com/schoolroute/bustrack/services/attendance/gateway/http"
	attendancehandler "github.com/schoolroute/bustrack/services/attendance/handler/http"
	attendancerepo "github.com/schoolroute/bustrack/services/attendance/repository"
	attendanceuc "github.com/schoolroute/bustrack/services/attendance/usecase"
	locationgw "github.com/schoolroute/bustrack/services/location/gateway/http"
	locationhandler "github.com/schoolroute/bustrack/services/location/handler"
	locationhttp "github.com/schoolroute/bustrack/services/location/handler/http"
	locationrepo "github.com/schoolroute/bustrack/services/location/repository"
	locationuc "github.com/schoolroute/bustrack/services/location/usecase"
	notificationnats "github.com/schoolroute/bustrack/services/notification/gateway/nats"
	notificationhandler "github.com/schoolroute/bustrack/services/notification/handler/http"
	notificationrepo "github.com/schoolroute/bustrack/services/notification/repository"
	notificationuc "github.com/schoolroute/bustrack/services/notification/usecase"
)

func main() {
	appName := "bustrack-telemetry"
	configs := config.InitConfig(".env")

	// Initialize logger
	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	// Initialize Postgres client
	pgClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Postgres", logger.Err(err))
	}
	db := pgClient.GetDB()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}

	// Initialize NATS client
	natsClient, err := nats.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}

	// Initialize repositories
	notifRepo := notificationrepo.NewNotificationRepository(db)
	dedupStore := notificationrepo.NewRedisDedupStore(redisClient)
	locRepo := locationrepo.NewLocationRepository(db)
	locCache := locationrepo.NewRedisLocationCache(redisClient)
	attRepo := attendancerepo.NewAttendanceRepository(db)

	// Initialize gateways
	notifGW := notificationnats.NewNotificationGW(natsClient)
	locRosterGW := locationgw.NewRosterGW(&configs.Roster, configs.APIKey.RosterService)
	attRosterGW := attendancehttp.NewRosterGW(&configs.Roster, configs.APIKey.RosterService)

	// Initialize usecases
	dispatcher := notificationuc.NewDispatcherUC(notifRepo, dedupStore, notifGW, &configs.Alerts)
	locUC := locationuc.NewLocationUC(configs, locRepo, locCache, locRosterGW, dispatcher)
	attUC := attendanceuc.NewAttendanceUC(attRepo, attRosterGW, dispatcher)

	// Initialize NATS telemetry consumer
	telemetryHandler := locationhandler.NewTelemetryHandler(natsClient, locUC)
	if err := telemetryHandler.InitSubscribers(); err != nil {
		zapLogger.Fatal("Failed to initialize telemetry subscribers", logger.Err(err))
	}

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(middleware.RequestLogger(zapLogger))

	health.RegisterHealthEndpoints(e, appName)

	locHandler := locationhttp.NewLocationHandler(locUC)

	v1 := e.Group("/v1", middleware.CallerJWT(&configs.JWT))
	locHandler.RegisterRoutes(v1)
	attendancehandler.NewAttendanceHandler(attUC).RegisterRoutes(v1)
	notificationhandler.NewNotificationHandler(notifRepo).RegisterRoutes(v1)

	// Sibling services push fixes with an API key instead of a user JWT
	internalAPI := e.Group("/internal", middleware.ValidateAPIKey(&configs.APIKey, "roster-service", "ops-service"))
	internalAPI.POST("/vehicles/:id/fixes", locHandler.IngestFix)

	// Register cleanup in dependency order
	shutdownManager := server.NewShutdownManager(zapLogger)
	shutdownManager.Register(func(ctx context.Context) error {
		telemetryHandler.Drain()
		return nil
	})
	shutdownManager.Register(func(ctx context.Context) error {
		natsClient.Close()
		return nil
	})
	shutdownManager.Register(func(ctx context.Context) error {
		return redisClient.Close()
	})
	shutdownManager.Register(func(ctx context.Context) error {
		return pgClient.Close()
	})

	// Start server; blocks until a shutdown signal arrives
	gracefulServer := server.NewGracefulServer(e, zapLogger, configs.Server)
	if err := gracefulServer.Start(); err != nil {
		zapLogger.Error("Server shutdown with error", logger.Err(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), gracefulServer.Grace())
	defer cancel()
	if err := shutdownManager.Shutdown(ctx); err != nil {
		zapLogger.Error("Component shutdown failed", logger.Err(err))
	}
}
