package handlers

import (
	"errors"
	"estimate_request_service/internal/adapter/http/dto/response"
	"estimate_request_service/internal/adapter/http/middleware"
	"estimate_request_service/internal/usecase"
	"estimate_request_service/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

var errNotificationNotFound = pkg.NewDomainErrorSimple("NOTIFICATION_NOT_FOUND", "Notification not found", http.StatusNotFound)

type NotificationHandler struct {
	usecase usecase.INotificationUseCase
}

func NewNotificationHandler(uc usecase.INotificationUseCase) *NotificationHandler {
	return &NotificationHandler{usecase: uc}
}

// ListNotifications godoc
// @Summary      In-app notifications of the current user, newest first
// @Tags         notifications
// @Produce      json
// @Security     Bearer
// @Success      200  {array}  response.NotificationResponse
// @Router       /notifications [get]
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	actor, _ := middleware.ActorFrom(c)
	items, err := h.usecase.List(c.Request.Context(), actor)
	if err != nil {
		respondError(c, mapNotificationError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromNotifications(items))
}

// MarkAsRead godoc
// @Summary      Mark a notification as read
// @Tags         notifications
// @Produce      json
// @Security     Bearer
// @Param        id  path  string  true  "Notification ID"
// @Success      200  {object}  response.NotificationResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /notifications/{id}/read [patch]
func (h *NotificationHandler) MarkAsRead(c *gin.Context) {
	actor, _ := middleware.ActorFrom(c)
	n, err := h.usecase.MarkAsRead(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondError(c, mapNotificationError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromNotification(n))
}

func mapNotificationError(err error) *pkg.AppError {
	if appErr, ok := mapCommonError(err); ok {
		return appErr
	}
	if errors.Is(err, usecase.ErrNotificationNotFound) {
		return errNotificationNotFound
	}
	return internalError(err)
}
