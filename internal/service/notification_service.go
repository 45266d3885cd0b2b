package service

import (
	"encoding/json"
	"sync"
	"time"

	"solarhub-backend/internal/model"
	ws "solarhub-backend/internal/websocket"
)

// NotificationService holds the ordered notification feed. Insertion order
// is preserved in every view; there is no sorting on this screen.
type NotificationService interface {
	List(notifType string) []model.Notification
	MarkRead(id int) (model.Notification, error)
	UnreadCount() int
	Push(notifType, message string) model.Notification
}

type notificationService struct {
	mu    sync.RWMutex
	items []model.Notification
	hub   *ws.Hub
}

// NewNotificationService seeds the feed. The hub may be nil in tests;
// pushed notifications are then simply not broadcast.
func NewNotificationService(seed []model.Notification, hub *ws.Hub) NotificationService {
	items := make([]model.Notification, len(seed))
	copy(items, seed)
	return &notificationService{items: items, hub: hub}
}

// List returns the feed filtered to one category, or the whole feed when
// notifType is empty.
func (s *notificationService) List(notifType string) []model.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Notification, 0, len(s.items))
	for _, n := range s.items {
		if notifType == "" || n.Type == notifType {
			out = append(out, n)
		}
	}
	return out
}

// MarkRead sets the read flag. Marking an already-read notification is a
// no-op; a notification is never un-read.
func (s *notificationService) MarkRead(id int) (model.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, n := range s.items {
		if n.ID == id {
			s.items[i].Read = true
			return s.items[i], nil
		}
	}
	return model.Notification{}, ErrNotFound
}

func (s *notificationService) UnreadCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, n := range s.items {
		if !n.Read {
			count++
		}
	}
	return count
}

// Push appends a new unread notification and broadcasts it to connected
// websocket clients.
func (s *notificationService) Push(notifType, message string) model.Notification {
	s.mu.Lock()

	maxID := 0
	for _, n := range s.items {
		if n.ID > maxID {
			maxID = n.ID
		}
	}
	notification := model.Notification{
		ID:        maxID + 1,
		Type:      notifType,
		Message:   message,
		Read:      false,
		Timestamp: time.Now().Format("3:04 PM"),
	}
	s.items = append(s.items, notification)
	s.mu.Unlock()

	if s.hub != nil {
		payload, err := json.Marshal(Event{Event: "notification", Data: notification})
		if err == nil {
			s.hub.Broadcast <- payload
		}
	}
	return notification
}
