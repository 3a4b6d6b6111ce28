package store

import (
	"context"
	"time"

	"go.uber.org/zap"

	"brandistry/internal/model"
	"brandistry/pkg/metrics"
)

// CreateDirectSession opens (or reuses) the two-party session between the
// caller and the target.
func (s *Store) CreateDirectSession(ctx context.Context, userID, targetUserID string) model.ChatSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.chats {
		c := &s.chats[i]
		if !c.IsGroup && c.HasParticipant(userID) && c.HasParticipant(targetUserID) {
			return *c
		}
	}

	session := model.ChatSession{
		ID:           newID("chat"),
		Participants: []string{userID, targetUserID},
		UnreadCount:  map[string]int{userID: 0, targetUserID: 0},
		Messages:     []model.ChatMessage{},
	}
	s.chats = append([]model.ChatSession{session}, s.chats...)
	s.saveChatsLocked(ctx)
	metrics.IncrementStoreMutation(colChats, "create")

	return session
}

// CreateGroupSession opens a named channel; the creator is always included.
func (s *Store) CreateGroupSession(ctx context.Context, creatorID, name string, participantIDs []string) model.ChatSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	participants := append([]string{}, participantIDs...)
	included := false
	for _, id := range participants {
		if id == creatorID {
			included = true
			break
		}
	}
	if !included {
		participants = append(participants, creatorID)
	}

	unread := make(map[string]int, len(participants))
	for _, id := range participants {
		unread[id] = 0
	}

	session := model.ChatSession{
		ID:           newID("group"),
		IsGroup:      true,
		Name:         name,
		Participants: participants,
		UnreadCount:  unread,
		Messages:     []model.ChatMessage{},
	}
	s.chats = append([]model.ChatSession{session}, s.chats...)
	s.saveChatsLocked(ctx)
	metrics.IncrementStoreMutation(colChats, "create_group")

	s.logger.Info("group session created",
		zap.String("session_id", session.ID),
		zap.Int("participants", len(participants)),
	)

	return session
}

type SessionUpdate struct {
	Name        *string   `json:"name,omitempty"`
	Description *string   `json:"description,omitempty"`
	IsPinned    *bool     `json:"is_pinned,omitempty"`
	IsArchived  *bool     `json:"is_archived,omitempty"`
	Tags        *[]string `json:"tags,omitempty"`
	ProjectID   *string   `json:"project_id,omitempty"`
}

// UpdateSession patches session metadata. Linking a project raises a LOW
// info event; the fan-out filter drops LOW events, so nothing is delivered.
func (s *Store) UpdateSession(ctx context.Context, sessionID string, upd SessionUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.findSessionLocked(sessionID)
	if c == nil {
		return ErrNotFound
	}

	if upd.Name != nil {
		c.Name = *upd.Name
	}
	if upd.Description != nil {
		c.Description = *upd.Description
	}
	if upd.IsPinned != nil {
		c.IsPinned = *upd.IsPinned
	}
	if upd.IsArchived != nil {
		c.IsArchived = *upd.IsArchived
	}
	if upd.Tags != nil {
		c.Tags = *upd.Tags
	}
	if upd.ProjectID != nil {
		c.ProjectID = *upd.ProjectID
		s.notifyLocked(model.NotificationEvent{
			Title:    "Context Updated",
			Message:  "Chat stream linked to project.",
			Type:     model.NotifyInfo,
			Priority: model.PriorityLow,
		})
	}

	s.saveChatsLocked(ctx)
	metrics.IncrementStoreMutation(colChats, "update")

	return nil
}

// SendMessage appends a message and increments the unread counter of every
// participant except the sender by exactly one.
func (s *Store) SendMessage(ctx context.Context, sessionID, senderID, content string, blocks []model.MessageBlock) (model.ChatMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.findSessionLocked(sessionID)
	if c == nil {
		return model.ChatMessage{}, ErrNotFound
	}

	msg := model.ChatMessage{
		ID:        newID("m"),
		SenderID:  senderID,
		Content:   content,
		Timestamp: time.Now(),
		Blocks:    blocks,
	}

	c.Messages = append(c.Messages, msg)
	c.LastMessage = &msg
	if c.UnreadCount == nil {
		c.UnreadCount = make(map[string]int)
	}
	for _, pid := range c.Participants {
		if pid != senderID {
			c.UnreadCount[pid]++
		}
	}

	s.saveChatsLocked(ctx)
	metrics.IncrementStoreMutation(colChats, "send")

	return msg, nil
}

// EditMessage rewrites a message's content and flags it edited.
func (s *Store) EditMessage(ctx context.Context, sessionID, messageID, newContent string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.findSessionLocked(sessionID)
	if c == nil {
		return ErrNotFound
	}

	for i := range c.Messages {
		if c.Messages[i].ID == messageID {
			c.Messages[i].Content = newContent
			c.Messages[i].IsEdited = true
			s.saveChatsLocked(ctx)
			metrics.IncrementStoreMutation(colChats, "edit")
			return nil
		}
	}
	return ErrNotFound
}

func (s *Store) DeleteMessage(ctx context.Context, sessionID, messageID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.findSessionLocked(sessionID)
	if c == nil {
		return ErrNotFound
	}

	for i := range c.Messages {
		if c.Messages[i].ID == messageID {
			c.Messages = append(c.Messages[:i], c.Messages[i+1:]...)
			s.saveChatsLocked(ctx)
			metrics.IncrementStoreMutation(colChats, "delete_message")
			return nil
		}
	}
	return ErrNotFound
}

// MarkChatRead zeroes the caller's unread counter and marks messages from
// other participants read. Other counters are untouched.
func (s *Store) MarkChatRead(ctx context.Context, sessionID, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.findSessionLocked(sessionID)
	if c == nil {
		return ErrNotFound
	}

	if c.UnreadCount == nil {
		c.UnreadCount = make(map[string]int)
	}
	c.UnreadCount[userID] = 0
	for i := range c.Messages {
		if c.Messages[i].SenderID != userID {
			c.Messages[i].IsRead = true
		}
	}

	s.saveChatsLocked(ctx)
	metrics.IncrementStoreMutation(colChats, "read")

	return nil
}

// ToggleChatReadStatus flips the caller's counter between read (0) and a
// synthetic single unread.
func (s *Store) ToggleChatReadStatus(ctx context.Context, sessionID, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.findSessionLocked(sessionID)
	if c == nil {
		return ErrNotFound
	}

	if c.UnreadCount == nil {
		c.UnreadCount = make(map[string]int)
	}
	if c.UnreadCount[userID] == 0 {
		c.UnreadCount[userID] = 1
	} else {
		c.UnreadCount[userID] = 0
	}

	s.saveChatsLocked(ctx)
	metrics.IncrementStoreMutation(colChats, "toggle_read")

	return nil
}

// Sessions returns every session the user participates in.
func (s *Store) Sessions(userID string) []model.ChatSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []model.ChatSession
	for i := range s.chats {
		if s.chats[i].HasParticipant(userID) {
			out = append(out, s.chats[i])
		}
	}
	return out
}

// Session returns one session, restricted to its participants.
func (s *Store) Session(sessionID, userID string) (model.ChatSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.findSessionLocked(sessionID)
	if c == nil || !c.HasParticipant(userID) {
		return model.ChatSession{}, ErrNotFound
	}
	return *c, nil
}
