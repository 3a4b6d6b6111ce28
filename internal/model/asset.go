package model

import "time"

type AssetStatus string

const (
	AssetDraft            AssetStatus = "DRAFT"
	AssetPendingReview    AssetStatus = "PENDING_REVIEW"
	AssetChangesRequested AssetStatus = "CHANGES_REQUESTED"
	AssetApproved         AssetStatus = "APPROVED"
	AssetDelivered        AssetStatus = "DELIVERED"
	AssetRejected         AssetStatus = "REJECTED"
)

type AssetType string

const (
	AssetImage    AssetType = "IMAGE"
	AssetVideo    AssetType = "VIDEO"
	AssetDocument AssetType = "DOCUMENT"
)

type AssetComment struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Asset carries a denormalized ClientID so client-facing counters can be
// derived without walking the project collection.
type Asset struct {
	ID         string         `json:"id"`
	Title      string         `json:"title"`
	Type       AssetType      `json:"type"`
	URL        string         `json:"url"`
	ProjectID  string         `json:"project_id"`
	ClientID   string         `json:"client_id"`
	UploadedBy string         `json:"uploaded_by"`
	CreatedAt  time.Time      `json:"created_at"`
	Status     AssetStatus    `json:"status"`
	Version    int            `json:"version"`
	Comments   []AssetComment `json:"comments"`
	Tags       []string       `json:"tags,omitempty"`
}
