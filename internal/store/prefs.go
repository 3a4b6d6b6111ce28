package store

import (
	"brandistry/internal/model"
)

// Preferences and system settings are session-scoped conveniences; they are
// not written through the persistence shim.

func (s *Store) Preferences(userID string) model.UserPreferences {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p, ok := s.prefs[userID]; ok {
		return p
	}
	return model.DefaultPreferences()
}

type PreferencesUpdate struct {
	Theme            *string                  `json:"theme,omitempty"`
	DashboardWidgets *model.DashboardWidgets  `json:"dashboard_widgets,omitempty"`
	Notifications    *model.NotificationPrefs `json:"notifications,omitempty"`
}

func (s *Store) UpdatePreferences(userID string, upd PreferencesUpdate) model.UserPreferences {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.prefs[userID]
	if !ok {
		p = model.DefaultPreferences()
	}

	if upd.Theme != nil {
		p.Theme = *upd.Theme
	}
	if upd.DashboardWidgets != nil {
		p.DashboardWidgets = *upd.DashboardWidgets
	}
	if upd.Notifications != nil {
		p.Notifications = *upd.Notifications
	}

	s.prefs[userID] = p
	return p
}

func (s *Store) Settings() model.SystemSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

type SettingsUpdate struct {
	APIKeys *model.APIKeys         `json:"api_keys,omitempty"`
	General *model.GeneralSettings `json:"general,omitempty"`
}

func (s *Store) UpdateSettings(upd SettingsUpdate) model.SystemSettings {
	s.mu.Lock()
	defer s.mu.Unlock()

	if upd.APIKeys != nil {
		s.settings.APIKeys = *upd.APIKeys
	}
	if upd.General != nil {
		s.settings.General = *upd.General
	}
	return s.settings
}
