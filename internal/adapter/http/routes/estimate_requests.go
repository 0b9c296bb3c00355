package routes

import (
	"estimate_request_service/internal/adapter/http/handlers"
	"estimate_request_service/internal/adapter/http/middleware"
	"estimate_request_service/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const (
	PathEstimateRequests = "/estimate-requests"
	PathUsers            = "/users"
	PathNotifications    = "/notifications"
)

func addEstimateRequestRoutes(rg *gin.RouterGroup, h *handlers.EstimateRequestHandler) {
	requests := rg.Group(PathEstimateRequests, middleware.RequireModule(entities.ModuleEstimates))
	{
		requests.GET("", h.List)
		requests.POST("", h.Create)
		requests.GET("/create", h.CreateForm)
		requests.POST("/apply-quick-action", h.ApplyQuickAction)
		requests.POST("/change-status", h.ChangeStatus)
		requests.GET("/send-request", h.SendRequestForm)
		requests.POST("/send-request", h.InviteClient)
		requests.GET("/:id", h.View)
		requests.PUT("/:id", h.Update)
		requests.DELETE("/:id", h.Delete)
		requests.GET("/:id/edit", h.EditForm)
		requests.GET("/:id/reject-confirmation", h.RejectConfirmation)
	}
}

func addUserRoutes(rg *gin.RouterGroup, h *handlers.UserHandler) {
	users := rg.Group(PathUsers)
	{
		users.POST("", h.CreateUser)
		users.POST("/:id/welcome", h.ResendWelcome)
	}
}

func addNotificationRoutes(rg *gin.RouterGroup, h *handlers.NotificationHandler) {
	notifications := rg.Group(PathNotifications)
	{
		notifications.GET("", h.ListNotifications)
		notifications.PATCH("/:id/read", h.MarkAsRead)
	}
}

func addPingRoutes(r gin.IRoutes) {
	r.GET("/ping", handlers.Ping)
}
