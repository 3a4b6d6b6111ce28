package store_test

import (
	"context"
	"testing"

	"brandistry/internal/store"
)

func sessionByID(t *testing.T, s *store.Store, sessionID, userID string) (unread map[string]int) {
	t.Helper()
	c, err := s.Session(sessionID, userID)
	if err != nil {
		t.Fatalf("Session(%s, %s): %v", sessionID, userID, err)
	}
	return c.UnreadCount
}

func TestSendMessageIncrementsOtherParticipants(t *testing.T) {
	s := newTestStore(t)

	// Seed session chat_demo_1 starts with u1:1, w1:0.
	msg, err := s.SendMessage(context.Background(), "chat_demo_1", "w1", "New mockups are up.", nil)
	if err != nil {
		t.Fatalf("SendMessage: %v", err)
	}
	if msg.SenderID != "w1" {
		t.Fatalf("expected sender w1, got %s", msg.SenderID)
	}

	unread := sessionByID(t, s, "chat_demo_1", "u1")
	if unread["u1"] != 2 {
		t.Fatalf("expected u1 unread 2, got %d", unread["u1"])
	}
	if unread["w1"] != 0 {
		t.Fatalf("sender's own counter moved: got %d", unread["w1"])
	}

	c, _ := s.Session("chat_demo_1", "u1")
	if c.LastMessage == nil || c.LastMessage.ID != msg.ID {
		t.Fatalf("last message pointer not updated")
	}
}

func TestMarkChatReadZeroesOnlyCaller(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if _, err := s.SendMessage(ctx, "chat_demo_1", "u1", "ping", nil); err != nil {
		t.Fatalf("SendMessage: %v", err)
	}
	// Now u1:1, w1:1.
	if err := s.MarkChatRead(ctx, "chat_demo_1", "u1"); err != nil {
		t.Fatalf("MarkChatRead: %v", err)
	}

	unread := sessionByID(t, s, "chat_demo_1", "u1")
	if unread["u1"] != 0 {
		t.Fatalf("expected u1 unread 0, got %d", unread["u1"])
	}
	if unread["w1"] != 1 {
		t.Fatalf("other participant's counter changed: got %d", unread["w1"])
	}
}

func TestToggleChatReadStatus(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	// w1 starts at 0; toggling flips between a synthetic unread and read.
	if err := s.ToggleChatReadStatus(ctx, "chat_demo_1", "w1"); err != nil {
		t.Fatalf("ToggleChatReadStatus: %v", err)
	}
	if unread := sessionByID(t, s, "chat_demo_1", "w1"); unread["w1"] != 1 {
		t.Fatalf("expected 1 after first toggle, got %d", unread["w1"])
	}

	if err := s.ToggleChatReadStatus(ctx, "chat_demo_1", "w1"); err != nil {
		t.Fatalf("ToggleChatReadStatus: %v", err)
	}
	if unread := sessionByID(t, s, "chat_demo_1", "w1"); unread["w1"] != 0 {
		t.Fatalf("expected 0 after second toggle, got %d", unread["w1"])
	}
}

func TestDirectSessionReused(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	existing := s.CreateDirectSession(ctx, "u1", "w1")
	if existing.ID != "chat_demo_1" {
		t.Fatalf("expected seed session reuse, got %s", existing.ID)
	}

	fresh := s.CreateDirectSession(ctx, "u1", "w2")
	if fresh.ID == "chat_demo_1" {
		t.Fatalf("new pair must not reuse an unrelated session")
	}
	if fresh.UnreadCount["u1"] != 0 || fresh.UnreadCount["w2"] != 0 {
		t.Fatalf("new session counters not zeroed: %v", fresh.UnreadCount)
	}

	again := s.CreateDirectSession(ctx, "w2", "u1")
	if again.ID != fresh.ID {
		t.Fatalf("direct session not symmetric: %s vs %s", again.ID, fresh.ID)
	}
}

func TestGroupSessionAlwaysIncludesCreator(t *testing.T) {
	s := newTestStore(t)

	session := s.CreateGroupSession(context.Background(), "u1", "Launch Crew", []string{"w1", "w2"})
	if !session.IsGroup {
		t.Fatalf("expected a group session")
	}
	if !session.HasParticipant("u1") {
		t.Fatalf("creator missing from participants: %v", session.Participants)
	}
	for _, id := range session.Participants {
		if session.UnreadCount[id] != 0 {
			t.Fatalf("participant %s starts with unread %d", id, session.UnreadCount[id])
		}
	}
}

func TestSessionRestrictedToParticipants(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.Session("chat_demo_1", "w2"); err != store.ErrNotFound {
		t.Fatalf("expected ErrNotFound for non-participant, got %v", err)
	}
	if got := s.Sessions("w2"); len(got) != 0 {
		t.Fatalf("w2 should see no sessions, got %d", len(got))
	}
}

func TestEditAndDeleteMessage(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.EditMessage(ctx, "chat_demo_1", "m2", "Uploaded V2 designs."); err != nil {
		t.Fatalf("EditMessage: %v", err)
	}
	c, _ := s.Session("chat_demo_1", "u1")
	var found bool
	for _, m := range c.Messages {
		if m.ID == "m2" {
			found = true
			if m.Content != "Uploaded V2 designs." {
				t.Fatalf("content not rewritten: %q", m.Content)
			}
			if !m.IsEdited {
				t.Fatalf("edited flag not set")
			}
		}
	}
	if !found {
		t.Fatalf("message m2 missing after edit")
	}

	if err := s.DeleteMessage(ctx, "chat_demo_1", "m2"); err != nil {
		t.Fatalf("DeleteMessage: %v", err)
	}
	c, _ = s.Session("chat_demo_1", "u1")
	for _, m := range c.Messages {
		if m.ID == "m2" {
			t.Fatalf("message m2 still present after delete")
		}
	}

	if err := s.DeleteMessage(ctx, "chat_demo_1", "m2"); err != store.ErrNotFound {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}
