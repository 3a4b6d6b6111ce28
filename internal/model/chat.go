package model

import (
	"encoding/json"
	"time"
)

type MessageBlockType string

const (
	BlockText  MessageBlockType = "TEXT"
	BlockTask  MessageBlockType = "TASK"
	BlockAsset MessageBlockType = "ASSET"
	BlockFile  MessageBlockType = "FILE"
	BlockEvent MessageBlockType = "EVENT"
)

// MessageBlock is an interactive payload embedded in a message; Data is kept
// raw because its shape depends on the block type (a Task, an Asset, ...).
type MessageBlock struct {
	Type MessageBlockType `json:"type"`
	ID   string           `json:"id"`
	Data json.RawMessage  `json:"data"`
}

type Attachment struct {
	Type string `json:"type"` // file / image / link
	URL  string `json:"url"`
	Name string `json:"name"`
}

type ChatMessage struct {
	ID          string              `json:"id"`
	SenderID    string              `json:"sender_id"`
	Content     string              `json:"content"`
	Timestamp   time.Time           `json:"timestamp"`
	IsRead      bool                `json:"is_read"`
	IsEdited    bool                `json:"is_edited,omitempty"`
	Blocks      []MessageBlock      `json:"blocks,omitempty"`
	Attachments []Attachment        `json:"attachments,omitempty"`
	Reactions   map[string][]string `json:"reactions,omitempty"` // emoji -> user ids
	Mentions    []string            `json:"mentions,omitempty"`
	Tags        []string            `json:"tags,omitempty"`
}

// ChatSession ordering is insertion order; UnreadCount tracks per-participant
// unread messages and is the only read-receipt mechanism.
type ChatSession struct {
	ID           string         `json:"id"`
	Participants []string       `json:"participants"`
	LastMessage  *ChatMessage   `json:"last_message,omitempty"`
	UnreadCount  map[string]int `json:"unread_count"`
	Messages     []ChatMessage  `json:"messages"`
	IsGroup      bool           `json:"is_group,omitempty"`
	Name         string         `json:"name,omitempty"`
	Description  string         `json:"description,omitempty"`
	IsPinned     bool           `json:"is_pinned,omitempty"`
	IsArchived   bool           `json:"is_archived,omitempty"`
	Tags         []string       `json:"tags,omitempty"`
	ProjectID    string         `json:"project_id,omitempty"`
}

func (c *ChatSession) HasParticipant(userID string) bool {
	for _, id := range c.Participants {
		if id == userID {
			return true
		}
	}
	return false
}
