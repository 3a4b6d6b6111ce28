package assistant

import (
	"brandistry/internal/model"
)

// Specialist persona catalog the orchestrator can delegate to.
var teamMembers = []model.TeamMember{
	{ID: "orch", Category: "Strategy", Role: "Chief Orchestrator", Description: "Coordinates all agents.", SystemPrompt: "You are the Chief Orchestrator. Break down requests into plans and delegate to specialists.", Icon: "Briefcase"},
	{ID: "m1", Category: "Marketing", Role: "SEO Specialist", Description: "Expert in search engine optimization strategies.", SystemPrompt: "You are an expert SEO Specialist. Focus on keywords, ranking, and organic traffic.", Icon: "Megaphone"},
	{ID: "m2", Category: "Marketing", Role: "Content Strategist", Description: "Plans content calendars and brand voice.", SystemPrompt: "You are a Content Strategist. Focus on storytelling, engagement, and editorial planning.", Icon: "PenTool"},
	{ID: "d1", Category: "Design", Role: "UI Designer", Description: "Creates user interface visuals.", SystemPrompt: "You are a UI Designer. Focus on typography, color theory, and layout.", Icon: "Palette"},
	{ID: "d2", Category: "Design", Role: "Brand Director", Description: "Guardian of the brand identity.", SystemPrompt: "You are a Brand Director. Focus on consistency, mission, and visual identity.", Icon: "Palette"},
	{ID: "dev1", Category: "Development", Role: "Frontend Engineer", Description: "Web UI implementation expert.", SystemPrompt: "You are a Senior Frontend Engineer. Focus on component architecture and CSS.", Icon: "Code2"},
	{ID: "a1", Category: "Analysis", Role: "Data Scientist", Description: "Advanced data modeling.", SystemPrompt: "You are a Data Scientist. Focus on predictive models and statistical significance.", Icon: "LineChart"},
}

// TeamMembers lists every specialist persona.
func TeamMembers() []model.TeamMember {
	return append([]model.TeamMember(nil), teamMembers...)
}

// TeamMember looks a persona up by id; the orchestrator is the fallback.
func TeamMember(id string) model.TeamMember {
	for _, m := range teamMembers {
		if m.ID == id {
			return m
		}
	}
	return teamMembers[0]
}
