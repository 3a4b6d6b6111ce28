package store_test

import (
	"context"
	"fmt"
	"testing"

	"brandistry/internal/model"
	"brandistry/internal/store"
)

func TestLowPriorityEventsDropped(t *testing.T) {
	s := newTestStore(t)

	s.Notify(context.Background(), model.NotificationEvent{
		Title:    "Background Sync",
		Type:     model.NotifyInfo,
		Priority: model.PriorityLow,
	})

	for _, id := range []string{"u1", "w1", "w2", "c1u"} {
		if got := s.Notifications(id); len(got) != 0 {
			t.Fatalf("LOW event reached %s: %d notifications", id, len(got))
		}
	}
}

func TestNotificationRelevance(t *testing.T) {
	tests := []struct {
		name    string
		event   model.NotificationEvent
		reaches []string
		misses  []string
	}{
		{
			name: "broadcast reaches everyone",
			event: model.NotificationEvent{
				Title: "Maintenance Window", Type: model.NotifyWarning, Priority: model.PriorityHigh,
			},
			reaches: []string{"u1", "w1", "w2", "c1u"},
		},
		{
			name: "direct target only",
			event: model.NotificationEvent{
				Title: "For Maria", Type: model.NotifyInfo, Priority: model.PriorityMedium,
				TargetUserID: "w1",
			},
			reaches: []string{"w1"},
			misses:  []string{"u1", "w2", "c1u"},
		},
		{
			name: "role target",
			event: model.NotificationEvent{
				Title: "Admin Digest", Type: model.NotifyInfo, Priority: model.PriorityMedium,
				TargetRole: model.RoleAdmin,
			},
			reaches: []string{"u1"},
			misses:  []string{"w1", "w2", "c1u"},
		},
		{
			name: "project team plus admins",
			event: model.NotificationEvent{
				Title: "MVP Update", Type: model.NotifyInfo, Priority: model.PriorityMedium,
				ProjectID: "p3",
			},
			reaches: []string{"u1", "w1", "w2"}, // p3 team is w1+w2; admins see all projects
			misses:  []string{"c1u"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStore(t)
			s.Notify(context.Background(), tt.event)

			for _, id := range tt.reaches {
				got := s.Notifications(id)
				if len(got) != 1 || got[0].Title != tt.event.Title {
					t.Fatalf("%s should have received %q, inbox: %v", id, tt.event.Title, got)
				}
			}
			for _, id := range tt.misses {
				if got := s.Notifications(id); len(got) != 0 {
					t.Fatalf("%s should not have received the event, inbox: %v", id, got)
				}
			}
		})
	}
}

func TestInboxCappedAtTenNewestFirst(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for i := 1; i <= 12; i++ {
		s.Notify(ctx, model.NotificationEvent{
			Title:        fmt.Sprintf("Event %d", i),
			Type:         model.NotifyInfo,
			Priority:     model.PriorityMedium,
			TargetUserID: "w2",
		})
	}

	got := s.Notifications("w2")
	if len(got) != 10 {
		t.Fatalf("expected inbox capped at 10, got %d", len(got))
	}
	if got[0].Title != "Event 12" {
		t.Fatalf("expected newest first, got %q", got[0].Title)
	}
	if got[9].Title != "Event 3" {
		t.Fatalf("expected oldest survivors kept, got %q", got[9].Title)
	}
}

func TestMarkNotificationRead(t *testing.T) {
	s := newTestStore(t)

	s.Notify(context.Background(), model.NotificationEvent{
		Title: "Check This", Type: model.NotifyInfo, Priority: model.PriorityMedium,
		TargetUserID: "w1",
	})

	inbox := s.Notifications("w1")
	if len(inbox) != 1 || inbox[0].Read {
		t.Fatalf("unexpected inbox state: %v", inbox)
	}

	if err := s.MarkNotificationRead("w1", inbox[0].ID); err != nil {
		t.Fatalf("MarkNotificationRead: %v", err)
	}
	if got := s.Notifications("w1"); !got[0].Read {
		t.Fatalf("notification not marked read")
	}

	if err := s.MarkNotificationRead("w1", "missing"); err != store.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
