package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/JBorrsad/odoonto-mobile/config"
	"github.com/JBorrsad/odoonto-mobile/internal/service"
	"github.com/JBorrsad/odoonto-mobile/internal/transport/websocket"
)

type Handler struct {
	services *service.Services
	logger   *zap.Logger
	config   *config.Config
	hub      *websocket.Hub
}

func NewHandler(services *service.Services, logger *zap.Logger, config *config.Config, hub *websocket.Hub) *Handler {
	return &Handler{
		services: services,
		logger:   logger,
		config:   config,
		hub:      hub,
	}
}

func (h *Handler) InitRoutes(router *gin.Engine) {
	router.Use(h.requestIDMiddleware())

	router.Use(h.loggerMiddleware())

	router.Use(h.errorMiddleware())

	router.Use(h.corsMiddleware())

	router.GET("/health", h.health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api/v1")
	{
		api.POST("/auth/login", h.login)

		secured := api.Group("/", h.authMiddleware())
		{
			secured.GET("/doctors", h.getDoctors)
			secured.GET("/patients", h.getPatients)
			secured.GET("/form-options", h.getFormOptions)
			secured.GET("/durations", h.getDurations)
			secured.POST("/directory/refresh", h.refreshDirectory)

			secured.GET("/appointments/:appointmentId/history", h.getAppointmentHistory)

			h.initViewRoutes(secured)
		}

		if h.hub != nil {
			api.GET("/ws", h.authMiddleware(), h.hub.HandleWebSocket)
		}
	}
}

func (h *Handler) initViewRoutes(api *gin.RouterGroup) {
	views := api.Group("/views")
	{
		views.POST("", h.openView)
		views.GET("/:id", h.getView)
		views.DELETE("/:id", h.closeView)

		views.POST("/:id/reload", h.reloadView)
		views.GET("/:id/board", h.getBoard)
		views.POST("/:id/previous", h.previousPeriod)
		views.POST("/:id/next", h.nextPeriod)
		views.POST("/:id/today", h.goToToday)
		views.PUT("/:id/view-type", h.setViewType)
		views.PUT("/:id/doctor", h.setDoctorFilter)
		views.PUT("/:id/date", h.setDate)
		views.POST("/:id/export", h.exportView)

		views.POST("/:id/slots", h.clickSlot)

		appointments := views.Group("/:id/appointments")
		{
			appointments.GET("", h.listAppointments)
			appointments.POST("", h.createAppointment)
			appointments.GET("/:appointmentId", h.getAppointment)
			appointments.GET("/:appointmentId/form", h.getAppointmentForm)
			appointments.PUT("/:appointmentId", h.updateAppointment)
			appointments.DELETE("/:appointmentId", h.deleteAppointment)
			appointments.POST("/:appointmentId/confirm", h.confirmAppointment)
			appointments.POST("/:appointmentId/cancel", h.cancelAppointment)
			appointments.PUT("/:appointmentId/status", h.changeAppointmentStatus)
		}
	}
}

func (h *Handler) health(c *gin.Context) {
	clients := 0
	if h.hub != nil {
		clients = h.hub.ConnectedClients()
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"name":    h.config.Name,
		"version": h.config.Version,
		"clients": clients,
	})
}
