package store

import (
	"context"
	"time"

	"go.uber.org/zap"

	"brandistry/internal/model"
	"brandistry/pkg/metrics"
)

// Each user keeps only the most recent notifications.
const inboxCap = 10

// Notify fans an event out to every relevant user's inbox.
func (s *Store) Notify(ctx context.Context, event model.NotificationEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifyLocked(event)
}

// notifyLocked applies the relevance filter per user and prepends the
// notification to each relevant inbox. LOW priority events are dropped
// unconditionally, before any targeting is considered.
func (s *Store) notifyLocked(event model.NotificationEvent) {
	if event.Priority == model.PriorityLow {
		return
	}

	delivered := 0
	for i := range s.users {
		if !s.relevantLocked(event, &s.users[i]) {
			continue
		}

		n := model.Notification{
			ID:        newID("n"),
			Title:     event.Title,
			Message:   event.Message,
			Type:      event.Type,
			Priority:  event.Priority,
			Timestamp: time.Now(),
		}

		userID := s.users[i].ID
		inbox := append([]model.Notification{n}, s.inbox[userID]...)
		if len(inbox) > inboxCap {
			inbox = inbox[:inboxCap]
		}
		s.inbox[userID] = inbox

		delivered++
		metrics.IncrementNotificationFanout(string(event.Type))
	}

	s.logger.Debug("notification fan-out",
		zap.String("title", event.Title),
		zap.String("priority", string(event.Priority)),
		zap.Int("delivered", delivered),
	)
}

// relevantLocked decides whether an event reaches a user: targeted directly,
// targeted at the user's role, on the project's team (admins see every
// project), or a broadcast with no targeting at all.
func (s *Store) relevantLocked(event model.NotificationEvent, u *model.User) bool {
	if event.TargetUserID != "" && event.TargetUserID == u.ID {
		return true
	}
	if event.TargetRole != "" && event.TargetRole == u.Role {
		return true
	}
	if event.ProjectID != "" {
		if p := s.findProjectLocked(event.ProjectID); p != nil {
			if p.HasTeamMember(u.ID) || u.Role == model.RoleAdmin {
				return true
			}
		}
	}
	return event.IsBroadcast()
}

// Notifications returns a user's inbox, newest first.
func (s *Store) Notifications(userID string) []model.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Notification(nil), s.inbox[userID]...)
}

func (s *Store) MarkNotificationRead(userID, notificationID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	inbox := s.inbox[userID]
	for i := range inbox {
		if inbox[i].ID == notificationID {
			inbox[i].Read = true
			return nil
		}
	}
	return ErrNotFound
}
