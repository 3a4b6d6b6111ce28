package model

import "encoding/json"

// ActionType tags the structured commands the assistant can emit.
type ActionType string

const (
	ActionCreateTask     ActionType = "CREATE_TASK"
	ActionCreateUser     ActionType = "CREATE_USER"
	ActionDeleteUser     ActionType = "DELETE_USER"
	ActionAssignProject  ActionType = "ASSIGN_PROJECT"
	ActionUpdateStatus   ActionType = "UPDATE_STATUS"
	ActionShowAsset      ActionType = "SHOW_ASSET"
	ActionNavigate       ActionType = "NAVIGATE"
	ActionGenerateReport ActionType = "GENERATE_REPORT"
	ActionNone           ActionType = "NONE"
)

// AssistantAction is the tagged object the model is asked to produce. Payload
// stays raw until the dispatcher knows which shape to decode it into.
type AssistantAction struct {
	Type             ActionType      `json:"type"`
	Payload          json.RawMessage `json:"payload"`
	ConfirmationText string          `json:"confirmationText"`
}

type OrchestrationStep struct {
	Step         string `json:"step"`
	AssignedTeam string `json:"assignedTeam,omitempty"`
	Status       string `json:"status"` // pending / active / completed
}

// TeamMember is a specialist persona the assistant can answer as.
type TeamMember struct {
	ID           string `json:"id"`
	Role         string `json:"role"`
	Category     string `json:"category"`
	Description  string `json:"description"`
	SystemPrompt string `json:"system_prompt"`
	Icon         string `json:"icon"`
}
