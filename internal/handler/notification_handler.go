package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"solarhub-backend/internal/model"
	"solarhub-backend/internal/service"
	"solarhub-backend/pkg/pagination"
	"solarhub-backend/pkg/response"
)

type NotificationHandler struct {
	notificationService service.NotificationService
}

func NewNotificationHandler(notificationService service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

func (h *NotificationHandler) RegisterRoutes(router *gin.RouterGroup) {
	notifications := router.Group("/notifications")
	{
		notifications.GET("", h.List)
		notifications.GET("/unread-count", h.UnreadCount)
		notifications.POST("/:id/read", h.MarkRead)
	}
}

// List returns the notification feed
// @Summary      List notifications
// @Description  Returns the feed in insertion order, optionally filtered to one type (order, payment, user, inventory)
// @Tags         notifications
// @Produce      json
// @Param        type   query     string  false  "Type filter"
// @Param        page   query     int     false  "Page number"
// @Param        limit  query     int     false  "Page size"
// @Success      200    {object}  response.Response{data=[]model.Notification}
// @Failure      400    {object}  response.Response
// @Router       /notifications [get]
func (h *NotificationHandler) List(c *gin.Context) {
	notifType := c.Query("type")
	if notifType != "" && !model.ValidNotificationType(notifType) {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Unknown notification type: "+notifType))
		return
	}

	params := pagination.Parse(c)
	page, meta := pagination.Slice(h.notificationService.List(notifType), params)
	c.JSON(http.StatusOK, response.Paginated(http.StatusOK, page, meta))
}

// UnreadCount returns the badge count
// @Summary      Unread count
// @Tags         notifications
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /notifications/unread-count [get]
func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"unread": h.notificationService.UnreadCount()}))
}

// MarkRead flags one notification as read
// @Summary      Mark a notification read
// @Description  Idempotent; marking an already-read notification changes nothing
// @Tags         notifications
// @Produce      json
// @Param        id   path      int  true  "Notification ID"
// @Success      200  {object}  response.Response{data=model.Notification}
// @Failure      404  {object}  response.Response
// @Router       /notifications/{id}/read [post]
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	notification, err := h.notificationService.MarkRead(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, "Notification not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, notification))
}
