package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"brandistry/internal/model"
)

const fallbackConfirmation = "I couldn't understand that command due to a system error."

// AnalyzeIntent maps an admin's natural-language request onto one of the
// tagged system actions. Any failure, network or parse, degrades to a NONE
// action with an apology; it never errors.
func (c *Client) AnalyzeIntent(ctx context.Context, message, contextData string) model.AssistantAction {
	prompt := fmt.Sprintf(`You are the core operating system of an agency CRM with full admin privileges.
You can create users and tasks, assign projects, and update task status.

Context Data: %s

User Request: %q

Map the request to exactly one of these JSON actions:

1. CREATE_USER: {"type":"CREATE_USER","payload":{"name":"Full Name","email":"email@example.com","role":"WORKER","specialty":"Job Title"},"confirmationText":"..."}
   If email is missing, generate a placeholder.
2. CREATE_TASK: {"type":"CREATE_TASK","payload":{"title":"...","assignee":"userId","projectId":"projectId","priority":"HIGH"},"confirmationText":"..."}
3. DELETE_USER: {"type":"DELETE_USER","payload":{"userId":"..."},"confirmationText":"..."}
4. ASSIGN_PROJECT: {"type":"ASSIGN_PROJECT","payload":{"projectId":"...","userId":"..."},"confirmationText":"..."}
5. UPDATE_STATUS: {"type":"UPDATE_STATUS","payload":{"taskId":"...","status":"DONE"},"confirmationText":"..."}
6. General chat, no action required: {"type":"NONE","payload":{},"confirmationText":"Response text here"}

Return ONLY raw JSON without markdown formatting.`, contextData, message)

	text, err := c.generateWithFallback(ctx, genRequest{
		Contents:         []genContent{{Role: "user", Parts: []genPart{{Text: prompt}}}},
		GenerationConfig: &genConfig{ResponseMimeType: "application/json"},
	})
	if err != nil {
		c.logger.Error("intent analysis failed after fallbacks", zap.Error(err))
		return noneAction(fallbackConfirmation)
	}

	action, err := ParseAction(text)
	if err != nil {
		c.logger.Warn("intent response did not parse", zap.Error(err))
		return noneAction(fallbackConfirmation)
	}
	return action
}

func noneAction(text string) model.AssistantAction {
	return model.AssistantAction{
		Type:             model.ActionNone,
		Payload:          json.RawMessage("{}"),
		ConfirmationText: text,
	}
}

// ParseAction decodes a model reply into a tagged action, tolerating the
// markdown fences models sometimes wrap JSON in.
func ParseAction(text string) (model.AssistantAction, error) {
	cleaned := stripFences(text)

	var action model.AssistantAction
	if err := json.Unmarshal([]byte(cleaned), &action); err != nil {
		return model.AssistantAction{}, err
	}
	if action.Type == "" {
		action.Type = model.ActionNone
	}
	if action.Payload == nil {
		action.Payload = json.RawMessage("{}")
	}
	return action, nil
}

func stripFences(text string) string {
	cleaned := strings.ReplaceAll(text, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	return strings.TrimSpace(cleaned)
}
