// Package router 提供 HTTP 路由配置
package router

import (
	"ai-story-api/internal/config"
	"ai-story-api/internal/interfaces/http/handler"
	"ai-story-api/internal/interfaces/http/middleware"
	"ai-story-api/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Router HTTP 路由器
type Router struct {
	engine *gin.Engine
	cfg    *config.Config

	jwtManager    *utils.JWTManager
	authHandler   *handler.AuthHandler
	userHandler   *handler.UserHandler
	storyHandler  *handler.StoryHandler
	healthHandler *handler.HealthHandler
}

// New 创建新的路由器
func New(
	cfg *config.Config,
	jwtManager *utils.JWTManager,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	storyHandler *handler.StoryHandler,
	healthHandler *handler.HealthHandler,
) *Router {
	// 设置 Gin 模式
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	r := &Router{
		engine:        engine,
		cfg:           cfg,
		jwtManager:    jwtManager,
		authHandler:   authHandler,
		userHandler:   userHandler,
		storyHandler:  storyHandler,
		healthHandler: healthHandler,
	}

	r.setupMiddleware()
	r.setupRoutes()

	return r
}

// Engine 返回 Gin Engine
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// setupMiddleware 配置中间件
func (r *Router) setupMiddleware() {
	// 基础中间件
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.RequestID())

	// CORS 中间件
	r.engine.Use(middleware.CORS(middleware.CORSConfig{
		AllowedOrigins: r.cfg.Security.CORS.AllowedOrigins,
		AllowedMethods: r.cfg.Security.CORS.AllowedMethods,
		AllowedHeaders: r.cfg.Security.CORS.AllowedHeaders,
	}))

	// 追踪中间件
	if r.cfg.Observability.Tracing.Enabled {
		r.engine.Use(middleware.Trace(r.cfg.App.Name))
		r.engine.Use(middleware.TraceContext())
	}

	// 指标中间件
	if r.cfg.Observability.Metrics.Enabled {
		r.engine.Use(middleware.Metrics())
	}
}

// setupRoutes 配置路由
func (r *Router) setupRoutes() {
	// Prometheus 指标端点
	if r.cfg.Observability.Metrics.Enabled {
		r.engine.GET(r.cfg.Observability.Metrics.Path, gin.WrapH(promhttp.Handler()))
	}

	// 就绪检查
	r.engine.GET("/ready", r.healthHandler.Ready)

	api := r.engine.Group("/api")
	{
		// 公开端点
		api.GET("/health", r.healthHandler.Health)
		api.POST("/register", r.authHandler.Register)
		api.POST("/login", r.authHandler.Login)

		// 需要认证的端点
		authed := api.Group("")
		authed.Use(middleware.Auth(r.jwtManager))
		{
			authed.GET("/me", r.userHandler.Me)
			authed.POST("/generate", r.storyHandler.Generate)
			authed.GET("/stories", r.storyHandler.List)
			authed.GET("/stories/:id", r.storyHandler.Get)
		}
	}
}
