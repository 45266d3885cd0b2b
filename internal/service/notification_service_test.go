package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solarhub-backend/internal/model"
)

func fixtureNotifications() []model.Notification {
	return []model.Notification{
		{ID: 1, Type: model.NotificationOrder, Message: "New order placed #12345", Read: false, Timestamp: "2m ago"},
		{ID: 2, Type: model.NotificationPayment, Message: "Payment received for order #12345", Read: true, Timestamp: "10m ago"},
		{ID: 3, Type: model.NotificationUser, Message: "New user registered: John Doe", Read: false, Timestamp: "1h ago"},
		{ID: 4, Type: model.NotificationInventory, Message: "Stock alert: Solar panels low", Read: false, Timestamp: "3h ago"},
	}
}

func TestListPreservesInsertionOrder(t *testing.T) {
	svc := NewNotificationService(fixtureNotifications(), nil)

	feed := svc.List("")
	require.Len(t, feed, 4)
	assert.Equal(t, 1, feed[0].ID)
	assert.Equal(t, 4, feed[3].ID)
}

func TestListFiltersByExactType(t *testing.T) {
	svc := NewNotificationService(fixtureNotifications(), nil)

	feed := svc.List(model.NotificationOrder)
	require.Len(t, feed, 1)
	assert.Equal(t, "New order placed #12345", feed[0].Message)
}

func TestMarkReadIsIdempotent(t *testing.T) {
	svc := NewNotificationService(fixtureNotifications(), nil)

	first, err := svc.MarkRead(1)
	require.NoError(t, err)
	assert.True(t, first.Read)

	again, err := svc.MarkRead(1)
	require.NoError(t, err)
	assert.Equal(t, first, again)
	assert.Equal(t, 2, svc.UnreadCount())
}

func TestMarkReadAbsentID(t *testing.T) {
	svc := NewNotificationService(fixtureNotifications(), nil)

	_, err := svc.MarkRead(99)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 3, svc.UnreadCount())
}

func TestPushAppendsUnread(t *testing.T) {
	svc := NewNotificationService(fixtureNotifications(), nil)

	pushed := svc.Push(model.NotificationInventory, "Product added: Cable Kit")
	assert.Equal(t, 5, pushed.ID)
	assert.False(t, pushed.Read)

	feed := svc.List("")
	assert.Equal(t, pushed.ID, feed[len(feed)-1].ID)
	assert.Equal(t, 4, svc.UnreadCount())
}
