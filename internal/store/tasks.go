package store

import (
	"context"
	"time"

	"go.uber.org/zap"

	"brandistry/internal/model"
	"brandistry/pkg/logger"
	"brandistry/pkg/metrics"
)

type TaskParams struct {
	Title         string             `json:"title"`
	Description   string             `json:"description"`
	ProjectID     string             `json:"projectId"`
	Assignee      string             `json:"assignee"`
	Status        model.TaskStatus   `json:"status"`
	Priority      model.TaskPriority `json:"priority"`
	DueDate       time.Time          `json:"dueDate"`
	GeneratedByAI bool               `json:"generatedByAI"`
}

// AddTask creates a task, defaulting to TODO status, MEDIUM priority, the
// acting user as assignee and the first project as home when none is given.
// The assignee is notified with an info event.
func (s *Store) AddTask(ctx context.Context, actorID string, p TaskParams) model.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p.Title == "" {
		p.Title = "New Task"
	}
	if p.ProjectID == "" && len(s.projects) > 0 {
		p.ProjectID = s.projects[0].ID
	}
	if p.Assignee == "" {
		p.Assignee = actorID
	}
	if p.Status == "" {
		p.Status = model.TaskTodo
	}
	if p.Priority == "" {
		p.Priority = model.PriorityTaskMedium
	}
	if p.DueDate.IsZero() {
		p.DueDate = time.Now()
	}

	task := model.Task{
		ID:            newID("t"),
		Title:         p.Title,
		Description:   p.Description,
		ProjectID:     p.ProjectID,
		Assignee:      p.Assignee,
		Status:        p.Status,
		Priority:      p.Priority,
		DueDate:       p.DueDate,
		GeneratedByAI: p.GeneratedByAI,
	}
	s.tasks = append(s.tasks, task)
	s.saveTasksLocked(ctx)
	metrics.IncrementStoreMutation(colTasks, "add")

	logger.WithUser(actorID, s.logger).Info("task created",
		zap.String("task_id", task.ID),
		zap.String("project_id", task.ProjectID),
		zap.String("assignee", task.Assignee),
	)

	s.notifyLocked(model.NotificationEvent{
		Title:        "Task Created",
		Message:      "\"" + task.Title + "\" added.",
		Type:         model.NotifyInfo,
		Priority:     model.PriorityMedium,
		TargetUserID: task.Assignee,
		ProjectID:    task.ProjectID,
	})

	return task
}

// UpdateTaskStatus moves a task across the board.
func (s *Store) UpdateTaskStatus(ctx context.Context, taskID string, status model.TaskStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID == taskID {
			s.tasks[i].Status = status
			s.saveTasksLocked(ctx)
			metrics.IncrementStoreMutation(colTasks, "status")
			return nil
		}
	}
	return ErrNotFound
}

type TaskUpdate struct {
	Title       *string             `json:"title,omitempty"`
	Description *string             `json:"description,omitempty"`
	ProjectID   *string             `json:"project_id,omitempty"`
	Assignee    *string             `json:"assignee,omitempty"`
	Status      *model.TaskStatus   `json:"status,omitempty"`
	Priority    *model.TaskPriority `json:"priority,omitempty"`
	DueDate     *time.Time          `json:"due_date,omitempty"`
}

func (s *Store) UpdateTask(ctx context.Context, taskID string, upd TaskUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID != taskID {
			continue
		}
		t := &s.tasks[i]
		if upd.Title != nil {
			t.Title = *upd.Title
		}
		if upd.Description != nil {
			t.Description = *upd.Description
		}
		if upd.ProjectID != nil {
			t.ProjectID = *upd.ProjectID
		}
		if upd.Assignee != nil {
			t.Assignee = *upd.Assignee
		}
		if upd.Status != nil {
			t.Status = *upd.Status
		}
		if upd.Priority != nil {
			t.Priority = *upd.Priority
		}
		if upd.DueDate != nil {
			t.DueDate = *upd.DueDate
		}
		s.saveTasksLocked(ctx)
		metrics.IncrementStoreMutation(colTasks, "update")
		return nil
	}
	return ErrNotFound
}

func (s *Store) DeleteTask(ctx context.Context, taskID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID == taskID {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			s.saveTasksLocked(ctx)
			metrics.IncrementStoreMutation(colTasks, "delete")
			return nil
		}
	}
	return ErrNotFound
}
