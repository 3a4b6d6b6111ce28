package store_test

import (
	"testing"

	"brandistry/internal/model"
	"brandistry/internal/store"
)

func TestPreferencesDefaultUntilSet(t *testing.T) {
	s := newTestStore(t)

	p := s.Preferences("w1")
	if p.Theme != "light" {
		t.Fatalf("expected default theme, got %q", p.Theme)
	}
	if !p.DashboardWidgets.Revenue || !p.Notifications.Push {
		t.Fatalf("defaults not applied: %+v", p)
	}
}

func TestUpdatePreferencesPartialPatch(t *testing.T) {
	s := newTestStore(t)

	theme := "dark"
	p := s.UpdatePreferences("w1", store.PreferencesUpdate{Theme: &theme})
	if p.Theme != "dark" {
		t.Fatalf("theme not patched: %q", p.Theme)
	}
	if p.Notifications.Frequency != "realtime" {
		t.Fatalf("unrelated section changed: %+v", p.Notifications)
	}

	// Preferences are per user.
	if other := s.Preferences("w2"); other.Theme != "light" {
		t.Fatalf("preference leaked across users: %q", other.Theme)
	}
}

func TestUpdateSettings(t *testing.T) {
	s := newTestStore(t)

	general := model.GeneralSettings{CompanyName: "Brandistry CRM", MaintenanceMode: true}
	got := s.UpdateSettings(store.SettingsUpdate{General: &general})
	if !got.General.MaintenanceMode {
		t.Fatalf("settings not applied: %+v", got)
	}
	if got := s.Settings(); !got.General.MaintenanceMode {
		t.Fatalf("settings not retained")
	}
}
