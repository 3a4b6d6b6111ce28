package model

import "time"

type NotificationType string

const (
	NotifyInfo    NotificationType = "info"
	NotifySuccess NotificationType = "success"
	NotifyWarning NotificationType = "warning"
	NotifyError   NotificationType = "error"
)

type NotificationPriority string

const (
	PriorityCritical NotificationPriority = "CRITICAL"
	PriorityHigh     NotificationPriority = "HIGH"
	PriorityMedium   NotificationPriority = "MEDIUM"
	PriorityLow      NotificationPriority = "LOW"
)

// NotificationEvent is the fan-out input. Targeting fields are optional; an
// event with none of them set is a global broadcast.
type NotificationEvent struct {
	Title        string               `json:"title"`
	Message      string               `json:"message"`
	Type         NotificationType     `json:"type"`
	Priority     NotificationPriority `json:"priority"`
	TargetUserID string               `json:"target_user_id,omitempty"`
	TargetRole   UserRole             `json:"target_role,omitempty"`
	ProjectID    string               `json:"project_id,omitempty"`
}

func (e NotificationEvent) IsBroadcast() bool {
	return e.TargetUserID == "" && e.TargetRole == "" && e.ProjectID == ""
}

type Notification struct {
	ID        string               `json:"id"`
	Title     string               `json:"title"`
	Message   string               `json:"message"`
	Type      NotificationType     `json:"type"`
	Priority  NotificationPriority `json:"priority"`
	Read      bool                 `json:"read"`
	Timestamp time.Time            `json:"timestamp"`
}
