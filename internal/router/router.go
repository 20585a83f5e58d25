package router

import (
	"tracker/internal/app/activity"
	"tracker/internal/app/dailystats"
	"tracker/internal/app/health"
	"tracker/internal/app/profile"
	"tracker/internal/gateways/websocket"
	"tracker/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Router struct {
	Engine *gin.Engine
}

func NewRouter(logger *zap.Logger) *Router {
	engine := gin.New()
	engine.Use(middleware.CORSMiddleware())
	engine.Use(middleware.LoggerMiddleware(logger))
	engine.Use(gin.Recovery())
	return &Router{Engine: engine}
}

func (r *Router) RegisterHealthRoutes(handler health.Handler) {
	health.RegisterRoutes(r.Engine.Group("/api"), handler)
}

func (r *Router) RegisterWebSocketRoutes(hub *websocket.Hub) {
	websocket.RegisterRoutes(r.Engine, hub)
}

func (r *Router) RegisterActivityRoutes(handler activity.Handler) {
	activity.RegisterRoutes(r.Engine.Group("/api"), handler)
}

func (r *Router) RegisterProfileRoutes(handler profile.Handler) {
	profile.RegisterRoutes(r.Engine.Group("/api"), handler)
}

func (r *Router) RegisterStatsRoutes(handler dailystats.Handler) {
	dailystats.RegisterRoutes(r.Engine.Group("/api"), handler)
}

func (r *Router) Serve(addr string) error {
	return r.Engine.Run(addr)
}
