package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/contracts-electrical/tracker/docs"
	"github.com/contracts-electrical/tracker/internal/config"
	"github.com/contracts-electrical/tracker/internal/middleware"
	"github.com/contracts-electrical/tracker/internal/modules/handler"
	"github.com/contracts-electrical/tracker/internal/modules/serializer"
)

type RouterDeps struct {
	Config            *config.Config
	Log               *zap.Logger
	AuthHandler       *handler.AuthHandler
	ProjectHandler    *handler.ProjectHandler
	AttachmentHandler *handler.AttachmentHandler
}

func NewRouter(d RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	if d.Config.Telemetry.Enabled && d.Config.Telemetry.OtlpEndpoint != "" {
		r.Use(middleware.OtelTracing(d.Config.App.Name))
		r.Use(middleware.TraceID())
	}

	r.Use(middleware.ZapLogger(d.Log))
	r.Use(middleware.CORS(d.Config.CORS.AllowOrigins))

	// health
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, serializer.Message{Message: "ok"}) })

	if d.Config.Metrics.Enabled {
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	// swagger
	r.GET("/swagger", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.POST("/signup", d.AuthHandler.Signup)
	r.POST("/login", d.AuthHandler.Login)

	projects := r.Group("/projects")
	{
		projects.POST("", d.ProjectHandler.CreateProject)
		projects.GET("", d.ProjectHandler.GetProjects)
		projects.GET("/:project_id", d.ProjectHandler.GetProject)
		projects.PUT("/:project_id", d.ProjectHandler.UpdateProject)
		projects.DELETE("/:project_id", d.ProjectHandler.DeleteProject)

		projects.POST("/:project_id/attachments", d.AttachmentHandler.PresignAttachment)
	}
	return r
}
