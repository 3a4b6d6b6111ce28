package store

import (
	"context"
	"time"

	"go.uber.org/zap"

	"brandistry/internal/model"
	"brandistry/pkg/metrics"
)

type ProjectUpdate struct {
	Name         *string              `json:"name,omitempty"`
	Description  *string              `json:"description,omitempty"`
	Type         *model.ProjectType   `json:"type,omitempty"`
	Status       *model.ProjectStatus `json:"status,omitempty"`
	Budget       *float64             `json:"budget,omitempty"`
	Spent        *float64             `json:"spent,omitempty"`
	StartDate    *time.Time           `json:"start_date,omitempty"`
	EndDate      *time.Time           `json:"end_date,omitempty"`
	Deliverables *[]string            `json:"deliverables,omitempty"`
	Notes        *string              `json:"notes,omitempty"`
	Progress     *int                 `json:"progress,omitempty"`
}

// UpdateProject patches project settings. Progress is a manually entered
// percentage; it is never derived from task completion.
func (s *Store) UpdateProject(ctx context.Context, projectID string, upd ProjectUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.findProjectLocked(projectID)
	if p == nil {
		return ErrNotFound
	}

	if upd.Name != nil {
		p.Name = *upd.Name
	}
	if upd.Description != nil {
		p.Description = *upd.Description
	}
	if upd.Type != nil {
		p.Type = *upd.Type
	}
	if upd.Status != nil {
		p.Status = *upd.Status
	}
	if upd.Budget != nil {
		p.Budget = *upd.Budget
	}
	if upd.Spent != nil {
		p.Spent = *upd.Spent
	}
	if upd.StartDate != nil {
		p.StartDate = *upd.StartDate
	}
	if upd.EndDate != nil {
		p.EndDate = *upd.EndDate
	}
	if upd.Deliverables != nil {
		p.Deliverables = *upd.Deliverables
	}
	if upd.Notes != nil {
		p.Notes = *upd.Notes
	}
	if upd.Progress != nil {
		p.Progress = *upd.Progress
	}

	s.recomputeClientStatsLocked()
	s.saveProjectsLocked(ctx)
	s.saveClientsLocked(ctx)
	metrics.IncrementStoreMutation(colProjects, "update")

	return nil
}

// AssignProjectToWorker adds the user to the project team and mirrors the
// assignment onto the user record. Both sides are idempotent.
func (s *Store) AssignProjectToWorker(ctx context.Context, projectID, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.findProjectLocked(projectID)
	if p == nil {
		return ErrNotFound
	}
	u := s.findUserLocked(userID)
	if u == nil {
		return ErrNotFound
	}

	if !p.HasTeamMember(userID) {
		p.Team = append(p.Team, userID)
	}

	assigned := false
	for _, id := range u.AssignedProjectIDs {
		if id == projectID {
			assigned = true
			break
		}
	}
	if !assigned {
		u.AssignedProjectIDs = append(u.AssignedProjectIDs, projectID)
	}

	s.saveProjectsLocked(ctx)
	s.saveUsersLocked(ctx)
	metrics.IncrementStoreMutation(colProjects, "assign")

	s.logger.Info("project assigned",
		zap.String("project_id", projectID),
		zap.String("user_id", userID),
	)

	return nil
}
