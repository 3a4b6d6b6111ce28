package store

import (
	"context"
	"time"

	"go.uber.org/zap"

	"brandistry/internal/model"
	"brandistry/pkg/metrics"
)

type AssetParams struct {
	Title      string          `json:"title"`
	Type       model.AssetType `json:"type"`
	URL        string          `json:"url"`
	ProjectID  string          `json:"project_id"`
	ClientID   string          `json:"client_id"`
	UploadedBy string          `json:"uploaded_by"`
	Tags       []string        `json:"tags"`
}

// AddAsset registers an uploaded asset in DRAFT at version 1. The client id is
// denormalized from the owning project when not supplied.
func (s *Store) AddAsset(ctx context.Context, p AssetParams) model.Asset {
	s.mu.Lock()
	defer s.mu.Unlock()

	clientID := p.ClientID
	if clientID == "" {
		if project := s.findProjectLocked(p.ProjectID); project != nil {
			clientID = project.ClientID
		}
	}

	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}

	asset := model.Asset{
		ID:         newID("a"),
		Title:      p.Title,
		Type:       p.Type,
		URL:        p.URL,
		ProjectID:  p.ProjectID,
		ClientID:   clientID,
		UploadedBy: p.UploadedBy,
		CreatedAt:  time.Now(),
		Status:     model.AssetDraft,
		Version:    1,
		Comments:   []model.AssetComment{},
		Tags:       tags,
	}
	// Newest first.
	s.assets = append([]model.Asset{asset}, s.assets...)

	s.recomputeClientStatsLocked()
	s.saveAssetsLocked(ctx)
	s.saveClientsLocked(ctx)
	metrics.IncrementStoreMutation(colAssets, "add")

	s.logger.Info("asset uploaded",
		zap.String("asset_id", asset.ID),
		zap.String("project_id", asset.ProjectID),
	)

	s.notifyLocked(model.NotificationEvent{
		Title:     "Asset Uploaded",
		Message:   asset.Title + " added.",
		Type:      model.NotifySuccess,
		Priority:  model.PriorityHigh,
		ProjectID: asset.ProjectID,
	})

	return asset
}

// UpdateAssetStatus moves an asset through its review workflow. Reaching
// DELIVERED is what bumps the owning client's delivered counter, via the
// recomputation pass.
func (s *Store) UpdateAssetStatus(ctx context.Context, assetID string, status model.AssetStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.assets {
		if s.assets[i].ID == assetID {
			s.assets[i].Status = status
			s.recomputeClientStatsLocked()
			s.saveAssetsLocked(ctx)
			s.saveClientsLocked(ctx)
			metrics.IncrementStoreMutation(colAssets, "status")
			return nil
		}
	}
	return ErrNotFound
}

// AddAssetComment appends a comment to the asset's embedded thread.
func (s *Store) AddAssetComment(ctx context.Context, assetID, userID, content string) (model.AssetComment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := s.findUserLocked(userID)
	userName := ""
	if u != nil {
		userName = u.Name
	}

	for i := range s.assets {
		if s.assets[i].ID == assetID {
			comment := model.AssetComment{
				ID:        newID("cm"),
				UserID:    userID,
				UserName:  userName,
				Content:   content,
				Timestamp: time.Now(),
			}
			s.assets[i].Comments = append(s.assets[i].Comments, comment)
			s.saveAssetsLocked(ctx)
			metrics.IncrementStoreMutation(colAssets, "comment")
			return comment, nil
		}
	}
	return model.AssetComment{}, ErrNotFound
}

func (s *Store) DeleteAsset(ctx context.Context, assetID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.assets {
		if s.assets[i].ID == assetID {
			s.assets = append(s.assets[:i], s.assets[i+1:]...)
			s.recomputeClientStatsLocked()
			s.saveAssetsLocked(ctx)
			s.saveClientsLocked(ctx)
			metrics.IncrementStoreMutation(colAssets, "delete")
			return nil
		}
	}
	return ErrNotFound
}

// AssetsByClient returns every asset denormalized onto the given client.
func (s *Store) AssetsByClient(clientID string) []model.Asset {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []model.Asset
	for i := range s.assets {
		if s.assets[i].ClientID == clientID {
			out = append(out, s.assets[i])
		}
	}
	return out
}
