package handlers

import (
	"gnroof/internal/logger"
	"gnroof/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", h.health)

	h.registerAuthRoutes(router)
	h.registerAPIRoutes(router)

	// Live status stream for the dashboard
	router.GET("/ws", h.wsConnect)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/sign-up", h.signUp)
		auth.POST("/sign-in", h.signIn)
	}
}

// Reads are public so the dashboard renders before login; every mutation
// goes through the token middleware.
func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")
	{
		api.GET("/status", h.getStatus)
		h.registerHistoryRoutes(api)
	}

	protected := api.Group("", h.userIdentity)
	{
		protected.POST("/readings", h.postReading)
		protected.POST("/vent", h.postVent)
		protected.POST("/weather/pull", h.pullWeather)
		h.registerHazardRoutes(protected)
	}
}

func (h *Handler) registerHistoryRoutes(api *gin.RouterGroup) {
	history := api.Group("/history")
	{
		history.GET("/readings", h.getReadings)
		history.GET("/:kind", h.getHazardHistory)
	}
	api.GET("/control-log", h.getControlLog)
}

func (h *Handler) registerHazardRoutes(api *gin.RouterGroup) {
	hazards := api.Group("/hazards")
	{
		// Body example: {"on": true}
		hazards.POST("/reset", h.resetHazards)
		hazards.POST("/:kind", h.setHazard)
	}
}
