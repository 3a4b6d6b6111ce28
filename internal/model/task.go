package model

import "time"

type TaskStatus string

const (
	TaskTodo       TaskStatus = "TODO"
	TaskInProgress TaskStatus = "IN_PROGRESS"
	TaskReview     TaskStatus = "REVIEW"
	TaskDone       TaskStatus = "DONE"
)

type TaskPriority string

const (
	PriorityTaskLow    TaskPriority = "LOW"
	PriorityTaskMedium TaskPriority = "MEDIUM"
	PriorityTaskHigh   TaskPriority = "HIGH"
)

type Task struct {
	ID            string       `json:"id"`
	Title         string       `json:"title"`
	Description   string       `json:"description"`
	ProjectID     string       `json:"project_id"`
	Assignee      string       `json:"assignee"`
	Status        TaskStatus   `json:"status"`
	Priority      TaskPriority `json:"priority"`
	DueDate       time.Time    `json:"due_date"`
	GeneratedByAI bool         `json:"generated_by_ai,omitempty"`
}
