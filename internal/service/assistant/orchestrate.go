package assistant

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"brandistry/internal/model"
)

// Plan is the orchestrator's breakdown of a request into delegated steps.
type Plan struct {
	Text  string                    `json:"text"`
	Steps []model.OrchestrationStep `json:"steps"`
}

// Orchestrate asks the model to break a request into a delegation plan across
// the specialist teams. Failures degrade to an apologetic summary with no
// steps.
func (c *Client) Orchestrate(ctx context.Context, message string) Plan {
	prompt := fmt.Sprintf(`Act as the Chief Orchestrator for an agency CRM.
User Request: %q

Break this down into a plan involving specialized teams (Marketing, Design, Dev, Strategy).

Return a JSON object ONLY (no markdown) with this structure:
{
  "analysis": "Brief analysis of the user intent",
  "plan": [
    {"step": "Step 1 description", "assignedTeam": "Marketing", "status": "completed"},
    {"step": "Step 2 description", "assignedTeam": "Design", "status": "active"},
    {"step": "Step 3 description", "assignedTeam": "Dev", "status": "pending"}
  ],
  "finalResponse": "A summary message explaining the plan."
}`, message)

	text, err := c.generateWithFallback(ctx, genRequest{
		Contents: []genContent{{Role: "user", Parts: []genPart{{Text: prompt}}}},
		GenerationConfig: &genConfig{
			ResponseMimeType: "application/json",
			Temperature:      0.2,
		},
	})
	if err != nil {
		c.logger.Error("orchestration failed", zap.Error(err))
		return Plan{Text: "I've analyzed your request but I'm having trouble connecting to the specialist agents."}
	}

	var decoded struct {
		Analysis      string                    `json:"analysis"`
		Plan          []model.OrchestrationStep `json:"plan"`
		FinalResponse string                    `json:"finalResponse"`
	}
	if err := json.Unmarshal([]byte(stripFences(text)), &decoded); err != nil {
		c.logger.Warn("orchestration response did not parse", zap.Error(err))
		return Plan{Text: "I've analyzed your request but I'm having trouble connecting to the specialist agents."}
	}

	out := Plan{Text: decoded.FinalResponse, Steps: decoded.Plan}
	if out.Text == "" {
		out.Text = "Plan created."
	}
	return out
}

// Respond generates a specialist-persona chat reply grounded in the session
// history.
func (c *Client) Respond(ctx context.Context, message string, history []model.ChatMessage, member model.TeamMember) string {
	contents := make([]genContent, 0, len(history)+1)
	for _, m := range history {
		contents = append(contents, genContent{
			Role:  "user",
			Parts: []genPart{{Text: m.Content}},
		})
	}
	contents = append(contents, genContent{Role: "user", Parts: []genPart{{Text: message}}})

	text, err := c.generateWithFallback(ctx, genRequest{
		SystemInstruction: &genContent{
			Parts: []genPart{{Text: member.SystemPrompt + " You are a specialist within an agency CRM. Be concise."}},
		},
		Contents:         contents,
		GenerationConfig: &genConfig{Temperature: 0.7},
	})
	if err != nil {
		c.logger.Error("specialist response failed", zap.Error(err))
		return "I encountered an error processing your request."
	}
	return text
}
