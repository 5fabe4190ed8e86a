package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/marcos-nsantos/pixbox/docs"
	"github.com/marcos-nsantos/pixbox/internal/adapter/handler"
	"github.com/marcos-nsantos/pixbox/internal/infrastructure/middleware"
)

type Router struct {
	engine       *gin.Engine
	imageHandler *handler.ImageHandler
	logger       *zap.Logger
}

type RouterConfig struct {
	ImageHandler *handler.ImageHandler
	Logger       *zap.Logger
	Environment  string
}

func NewRouter(cfg RouterConfig) *Router {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	r := &Router{
		engine:       engine,
		imageHandler: cfg.ImageHandler,
		logger:       cfg.Logger,
	}

	r.setupMiddleware()
	r.setupRoutes()

	return r
}

func (r *Router) setupMiddleware() {
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Recovery(r.logger))
	r.engine.Use(middleware.Logger(r.logger))
}

func (r *Router) setupRoutes() {
	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.engine.Group("/api/v1")
	{
		images := api.Group("/images")
		{
			images.POST("", r.imageHandler.Upload)
			images.GET("/:id", r.imageHandler.Download)
		}
	}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
