package model

import "time"

type UserRole string

const (
	RoleAdmin  UserRole = "ADMIN"
	RoleWorker UserRole = "WORKER"
	RoleClient UserRole = "CLIENT"
)

type AccessRequestStatus string

const (
	AccessPending  AccessRequestStatus = "PENDING"
	AccessApproved AccessRequestStatus = "APPROVED"
	AccessRejected AccessRequestStatus = "REJECTED"
)

// AccessRequest is an admin's pending request to operate as this user.
type AccessRequest struct {
	RequesterID   string              `json:"requester_id"`
	RequesterName string              `json:"requester_name"`
	Timestamp     time.Time           `json:"timestamp"`
	Status        AccessRequestStatus `json:"status"`
}

type User struct {
	ID                 string          `json:"id"`
	Name               string          `json:"name"`
	Email              string          `json:"email"`
	PasswordHash       string          `json:"-"`
	Role               UserRole        `json:"role"`
	Avatar             string          `json:"avatar"`
	Company            string          `json:"company,omitempty"`
	Specialty          string          `json:"specialty,omitempty"`
	AssignedProjectIDs []string        `json:"assigned_project_ids,omitempty"`
	AssignedClientIDs  []string        `json:"assigned_client_ids,omitempty"`
	HourlyRate         float64         `json:"hourly_rate,omitempty"`
	GeneratedByAI      bool            `json:"generated_by_ai,omitempty"`
	AccessRequests     []AccessRequest `json:"access_requests"`
}

type DashboardWidgets struct {
	Revenue          bool `json:"revenue"`
	ActiveProjects   bool `json:"active_projects"`
	TeamProductivity bool `json:"team_productivity"`
	SystemHealth     bool `json:"system_health"`
	RecentActivity   bool `json:"recent_activity"`
}

type NotificationPrefs struct {
	Email     bool   `json:"email"`
	Push      bool   `json:"push"`
	Frequency string `json:"frequency"` // realtime / daily
}

type UserPreferences struct {
	Theme            string            `json:"theme"` // light / dark / system
	DashboardWidgets DashboardWidgets  `json:"dashboard_widgets"`
	Notifications    NotificationPrefs `json:"notifications"`
}

func DefaultPreferences() UserPreferences {
	return UserPreferences{
		Theme: "light",
		DashboardWidgets: DashboardWidgets{
			Revenue:          true,
			ActiveProjects:   true,
			TeamProductivity: true,
			SystemHealth:     true,
			RecentActivity:   true,
		},
		Notifications: NotificationPrefs{Email: true, Push: true, Frequency: "realtime"},
	}
}

type APIKeys struct {
	Gemini         string `json:"gemini"`
	GoogleDrive    string `json:"google_drive"`
	GooglePhotos   string `json:"google_photos"`
	GoogleSheets   string `json:"google_sheets"`
	GoogleCalendar string `json:"google_calendar"`
}

type GeneralSettings struct {
	CompanyName     string `json:"company_name"`
	MaintenanceMode bool   `json:"maintenance_mode"`
}

type SystemSettings struct {
	APIKeys APIKeys         `json:"api_keys"`
	General GeneralSettings `json:"general"`
}
