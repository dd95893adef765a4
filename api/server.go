package api

import (
	"fmt"
	"net/http"
	
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/katatrina/feature-dashboard/internal/event"
	"github.com/katatrina/feature-dashboard/internal/feature"
	"github.com/katatrina/feature-dashboard/internal/notification"
	"github.com/katatrina/feature-dashboard/internal/theme"
	"github.com/katatrina/feature-dashboard/internal/util"
	"github.com/katatrina/feature-dashboard/web"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Server struct {
	router        *gin.Engine
	config        util.Config
	featureStore  *feature.Store
	notifications *notification.Registry
	themeStore    *theme.Store
	eventSender   event.EventSender
}

// NewServer creates a new HTTP server and set up routing.
func NewServer(config util.Config, featureStore *feature.Store, notifications *notification.Registry, themeStore *theme.Store, eventSender event.EventSender) (*Server, error) {
	server := &Server{
		config:        config,
		featureStore:  featureStore,
		notifications: notifications,
		themeStore:    themeStore,
		eventSender:   eventSender,
	}
	
	renderer, err := newHTMLRender(web.Templates(), templateFuncs())
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	log.Info().Msg("Templates parsed successfully ✅")
	
	server.setupRouter(renderer)
	return server, nil
}

// setupRouter configures the HTTP server routes.
func (server *Server) setupRouter(renderer *htmlRender) *gin.Engine {
	if server.config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(), clientHintsMiddleware(), voterMiddleware(server.config.IsProduction()))
	router.HTMLRender = renderer
	router.StaticFS("/static", http.FS(web.Static()))
	
	router.GET("/healthz", server.healthCheck)
	
	// Pages
	router.GET("/", server.homePage)
	router.GET("/dashboard", server.dashboardPage)
	router.GET("/features", server.featuresPage)
	router.POST("/features/requests", server.submitFeatureRequestForm)
	router.POST("/features/requests/:id/upvote", server.upvoteFeatureRequestForm)
	router.GET("/timeline", server.timelinePage)
	router.GET("/timeline/:id", server.timelineItemPage)
	router.POST("/theme", server.setThemeForm)
	router.POST("/notifications/demo", server.showDemoNotification)
	router.POST("/notifications/:id/dismiss", server.dismissNotificationForm)
	router.NoRoute(server.notFoundPage)
	
	v1 := router.Group("/v1")
	v1.Use(cors.New(cors.Config{
		AllowOrigins:     server.config.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type"},
		AllowCredentials: true,
	}))
	
	featureRequestGroup := v1.Group("/feature-requests")
	{
		featureRequestGroup.GET("", server.listFeatureRequests)
		featureRequestGroup.POST("", server.createFeatureRequest)
		featureRequestGroup.GET("/stream", server.streamEvents(event.TopicFeatureRequests))
		featureRequestGroup.GET("/:id", server.getFeatureRequest)
		featureRequestGroup.POST("/:id/upvote", server.toggleFeatureRequestUpvote)
	}
	
	timelineGroup := v1.Group("/timeline")
	{
		timelineGroup.GET("", server.listTimelineItems)
		timelineGroup.GET("/:id", server.getTimelineItem)
	}
	
	v1.GET("/dashboard", server.getDashboardSummary)
	
	notificationGroup := v1.Group("/notifications")
	{
		notificationGroup.GET("", server.listNotifications)
		notificationGroup.POST("", server.addNotification)
		notificationGroup.DELETE("", server.clearNotifications)
		notificationGroup.GET("/stream", server.streamEvents(event.TopicNotifications))
		notificationGroup.DELETE("/:id", server.removeNotification)
	}
	
	themeGroup := v1.Group("/theme")
	{
		themeGroup.GET("", server.getTheme)
		themeGroup.PUT("", server.updateTheme)
	}
	
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	
	server.router = router
	return router
}

// Handler exposes the router, e.g. for an http.Server with timeouts or for tests.
func (server *Server) Handler() http.Handler {
	return server.router
}

func (server *Server) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
