package model

// Notification categories.
const (
	NotificationOrder     = "order"
	NotificationPayment   = "payment"
	NotificationUser      = "user"
	NotificationInventory = "inventory"
)

type Notification struct {
	ID        int    `json:"id"`
	Type      string `json:"type"`
	Message   string `json:"message"`
	Read      bool   `json:"read"`
	Timestamp string `json:"timestamp"`
}

// ValidNotificationType reports whether t is a known category.
func ValidNotificationType(t string) bool {
	switch t {
	case NotificationOrder, NotificationPayment, NotificationUser, NotificationInventory:
		return true
	}
	return false
}
