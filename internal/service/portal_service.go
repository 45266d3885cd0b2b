package service

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"solarhub-backend/internal/model"
)

type UpdateProfileRequest struct {
	Name               string `json:"name" binding:"required"`
	Email              string `json:"email" binding:"required,email"`
	Phone              string `json:"phone"`
	Address            string `json:"address"`
	EmailNotifications *bool  `json:"email_notifications"`
	SMSNotifications   *bool  `json:"sms_notifications"`
}

type SupportRequest struct {
	Message string `json:"message" binding:"required"`
}

// PortalOverview is the customer dashboard payload: the generation series
// for the chart plus the headline cards above it.
type PortalOverview struct {
	Cards    []model.StatCard      `json:"cards"`
	Readings []model.EnergyReading `json:"readings"`
}

// PortalService backs the customer-facing portal screens. Orders and
// plants are read-only lists; the profile is the only mutable state.
type PortalService interface {
	Overview() PortalOverview
	Orders() []model.Order
	Plants() []model.Plant
	Profile() model.Profile
	UpdateProfile(req UpdateProfileRequest) model.Profile
	SubmitSupport(req SupportRequest) model.SupportTicket
}

type portalService struct {
	mu       sync.RWMutex
	orders   []model.Order
	plants   []model.Plant
	profile  model.Profile
	readings []model.EnergyReading
}

func NewPortalService(orders []model.Order, plants []model.Plant, profile model.Profile, readings []model.EnergyReading) PortalService {
	return &portalService{
		orders:   orders,
		plants:   plants,
		profile:  profile,
		readings: readings,
	}
}

func (s *portalService) Overview() PortalOverview {
	today := 0
	if len(s.readings) > 0 {
		today = s.readings[len(s.readings)-1].Generation
	}

	return PortalOverview{
		Cards: []model.StatCard{
			{Label: "Today's Generation", Value: fmt.Sprintf("%d kWh", today), Detail: "12% increase from yesterday"},
			{Label: "Monthly Savings", Value: "₹3,450", Detail: "Saved 420 kg CO₂"},
			{Label: "System Health", Value: "Optimal", Detail: "All systems operational"},
		},
		Readings: append([]model.EnergyReading(nil), s.readings...),
	}
}

func (s *portalService) Orders() []model.Order {
	return append([]model.Order(nil), s.orders...)
}

func (s *portalService) Plants() []model.Plant {
	return append([]model.Plant(nil), s.plants...)
}

func (s *portalService) Profile() model.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile
}

func (s *portalService) UpdateProfile(req UpdateProfileRequest) model.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.profile.Name = req.Name
	s.profile.Email = req.Email
	s.profile.Phone = req.Phone
	s.profile.Address = req.Address
	if req.EmailNotifications != nil {
		s.profile.EmailNotifications = *req.EmailNotifications
	}
	if req.SMSNotifications != nil {
		s.profile.SMSNotifications = *req.SMSNotifications
	}
	return s.profile
}

// SubmitSupport accepts the message and hands back a ticket reference.
// Nothing is delivered anywhere; the reference just gives the customer
// something to quote.
func (s *portalService) SubmitSupport(req SupportRequest) model.SupportTicket {
	return model.SupportTicket{
		Reference: uuid.New().String(),
		Message:   req.Message,
		CreatedAt: time.Now().Format(time.RFC3339),
	}
}
