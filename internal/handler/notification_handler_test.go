package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solarhub-backend/internal/model"
	"solarhub-backend/internal/service"
)

func setupNotificationRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	seed := []model.Notification{
		{ID: 1, Type: model.NotificationOrder, Message: "New order placed #12345", Read: false, Timestamp: "2m ago"},
		{ID: 2, Type: model.NotificationPayment, Message: "Payment received for order #12345", Read: true, Timestamp: "10m ago"},
		{ID: 3, Type: model.NotificationUser, Message: "New user registered: John Doe", Read: false, Timestamp: "1h ago"},
	}
	router := gin.New()
	NewNotificationHandler(service.NewNotificationService(seed, nil)).RegisterRoutes(router.Group(""))
	return router
}

func TestListNotifications(t *testing.T) {
	router := setupNotificationRouter()

	w := doJSON(router, "GET", "/notifications", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var env struct {
		Data []model.Notification `json:"data"`
		Meta struct {
			Total int `json:"total"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Len(t, env.Data, 3)
	assert.Equal(t, 3, env.Meta.Total)
}

func TestListNotificationsTypeFilter(t *testing.T) {
	router := setupNotificationRouter()

	w := doJSON(router, "GET", "/notifications?type=order", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "New order placed")
	assert.NotContains(t, w.Body.String(), "Payment received")

	w = doJSON(router, "GET", "/notifications?type=spam", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMarkNotificationRead(t *testing.T) {
	router := setupNotificationRouter()

	w := doJSON(router, "POST", "/notifications/1/read", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, "GET", "/notifications/unread-count", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"unread":1`)

	w = doJSON(router, "POST", "/notifications/99/read", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
