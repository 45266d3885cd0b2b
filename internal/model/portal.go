package model

// Order statuses shown in the customer portal.
const (
	OrderCompleted  = "Completed"
	OrderInProgress = "In Progress"
)

// Order is a customer's installation order.
type Order struct {
	ID     int    `json:"id"`
	Date   string `json:"date"`
	Status string `json:"status"`
	Amount string `json:"amount"`
}

// Plant is an installed solar plant belonging to the customer.
type Plant struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	Capacity        string `json:"capacity"`
	Status          string `json:"status"`
	LastMaintenance string `json:"last_maintenance"`
	Efficiency      string `json:"efficiency"`
}

// Profile holds the customer's personal information and notification
// preferences.
type Profile struct {
	Name               string `json:"name"`
	Email              string `json:"email"`
	Phone              string `json:"phone"`
	Address            string `json:"address"`
	EmailNotifications bool   `json:"email_notifications"`
	SMSNotifications   bool   `json:"sms_notifications"`
}

// EnergyReading is one day's generation for the portal chart.
type EnergyReading struct {
	Date       string `json:"date"`
	Generation int    `json:"generation"`
}

// SupportTicket is the receipt returned for a submitted support message.
type SupportTicket struct {
	Reference string `json:"reference"`
	Message   string `json:"message"`
	CreatedAt string `json:"created_at"`
}
