package service

import (
	"sync"

	"solarhub-backend/internal/model"
)

type UpdateSettingsRequest struct {
	Notifications *bool  `json:"notifications"`
	DarkMode      *bool  `json:"dark_mode"`
	Timezone      string `json:"timezone"`
	Language      string `json:"language"`
}

// SettingsService holds the admin settings screen state. Fields absent
// from an update keep their current value.
type SettingsService interface {
	Get() model.Settings
	Update(req UpdateSettingsRequest) model.Settings
}

type settingsService struct {
	mu       sync.RWMutex
	settings model.Settings
}

func NewSettingsService(seed model.Settings) SettingsService {
	return &settingsService{settings: seed}
}

func (s *settingsService) Get() model.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

func (s *settingsService) Update(req UpdateSettingsRequest) model.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()

	if req.Notifications != nil {
		s.settings.Notifications = *req.Notifications
	}
	if req.DarkMode != nil {
		s.settings.DarkMode = *req.DarkMode
	}
	if req.Timezone != "" {
		s.settings.Timezone = req.Timezone
	}
	if req.Language != "" {
		s.settings.Language = req.Language
	}
	return s.settings
}
