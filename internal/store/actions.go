package store

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"brandistry/internal/model"
)

// ExecuteAction dispatches a tagged assistant action into the corresponding
// store mutation. View-only actions (SHOW_ASSET, NAVIGATE, GENERATE_REPORT,
// NONE) mutate nothing; the confirmation notification is raised either way.
func (s *Store) ExecuteAction(ctx context.Context, actorID string, action model.AssistantAction) error {
	var err error

	switch action.Type {
	case model.ActionCreateTask:
		var p TaskParams
		if err = json.Unmarshal(action.Payload, &p); err == nil {
			p.GeneratedByAI = true
			s.AddTask(ctx, actorID, p)
		}

	case model.ActionCreateUser:
		var p struct {
			Name      string         `json:"name"`
			Email     string         `json:"email"`
			Role      model.UserRole `json:"role"`
			Specialty string         `json:"specialty"`
		}
		if err = json.Unmarshal(action.Payload, &p); err == nil {
			_, err = s.RegisterUser(ctx, RegisterUserParams{
				Name:          p.Name,
				Email:         p.Email,
				Role:          p.Role,
				Specialty:     p.Specialty,
				GeneratedByAI: true,
			})
		}

	case model.ActionDeleteUser:
		var p struct {
			UserID string `json:"userId"`
		}
		if err = json.Unmarshal(action.Payload, &p); err == nil {
			err = s.DeleteUser(ctx, p.UserID)
		}

	case model.ActionAssignProject:
		var p struct {
			ProjectID string `json:"projectId"`
			UserID    string `json:"userId"`
		}
		if err = json.Unmarshal(action.Payload, &p); err == nil {
			err = s.AssignProjectToWorker(ctx, p.ProjectID, p.UserID)
		}

	case model.ActionUpdateStatus:
		var p struct {
			TaskID string           `json:"taskId"`
			Status model.TaskStatus `json:"status"`
		}
		if err = json.Unmarshal(action.Payload, &p); err == nil {
			err = s.UpdateTaskStatus(ctx, p.TaskID, p.Status)
		}
	}

	if err != nil {
		s.logger.Warn("assistant action failed",
			zap.String("action", string(action.Type)),
			zap.Error(err),
		)
		return err
	}

	s.Notify(ctx, model.NotificationEvent{
		Title:        "Assistant Action Executed",
		Message:      action.ConfirmationText,
		Type:         model.NotifyInfo,
		Priority:     model.PriorityMedium,
		TargetUserID: actorID,
	})

	return nil
}
