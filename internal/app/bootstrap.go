package app

import (
	"tracker/internal/app/activity"
	"tracker/internal/app/dailystats"
	"tracker/internal/app/health"
	"tracker/internal/app/profile"
	"tracker/internal/config"
	"tracker/internal/db"
	"tracker/internal/gateways/websocket"
	"tracker/internal/providers/redis"
	"tracker/internal/router"
	"tracker/internal/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Application struct {
	Router *router.Router
	DB     *gorm.DB
}

func Bootstrap(cfg *config.Config, logger *zap.Logger) (*Application, error) {
	dbConn, err := db.Connect(cfg, logger)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(dbConn, logger); err != nil {
		return nil, err
	}

	redisProvider := redis.NewRedisProvider(cfg.RedisURL, logger, cfg.RedisTTL)
	eventBus := utils.NewEventBus()

	profileRepo := profile.NewRepository(dbConn)
	statsRepo := dailystats.NewRepository(dbConn)

	profileService := profile.NewService(profileRepo, redisProvider, logger)
	statsService := dailystats.NewService(statsRepo, logger)
	activityService := activity.NewService(profileService, statsService, eventBus, logger)

	hub := websocket.NewHub(logger, activityService, eventBus)
	go hub.Run()

	healthHandler := health.NewHandler(&utils.HealthChecker{
		DB:    dbConn,
		Redis: redisProvider.Client,
	})
	activityHandler := activity.NewHandler(activityService, logger)
	profileHandler := profile.NewHandler(profileService, logger)
	statsHandler := dailystats.NewHandler(statsService, logger)

	r := router.NewRouter(logger)

	r.RegisterHealthRoutes(healthHandler)
	r.RegisterWebSocketRoutes(hub)
	r.RegisterActivityRoutes(activityHandler)
	r.RegisterProfileRoutes(profileHandler)
	r.RegisterStatsRoutes(statsHandler)

	return &Application{
		Router: r,
		DB:     dbConn,
	}, nil
}
