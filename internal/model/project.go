package model

import "time"

type ProjectStatus string

const (
	ProjectPlanning  ProjectStatus = "PLANNING"
	ProjectActive    ProjectStatus = "ACTIVE"
	ProjectReview    ProjectStatus = "REVIEW"
	ProjectCompleted ProjectStatus = "COMPLETED"
	ProjectOnHold    ProjectStatus = "ON_HOLD"
)

type ProjectType string

const (
	ProjectCampaign        ProjectType = "CAMPAIGN"
	ProjectWebDesign       ProjectType = "WEB_DESIGN"
	ProjectSocialMedia     ProjectType = "SOCIAL_MEDIA"
	ProjectStrategy        ProjectType = "STRATEGY"
	ProjectVideoProduction ProjectType = "VIDEO_PRODUCTION"
)

// Project progress is a manually set percentage, not derived from tasks.
type Project struct {
	ID           string        `json:"id"`
	ClientID     string        `json:"client_id"`
	Name         string        `json:"name"`
	Description  string        `json:"description"`
	Type         ProjectType   `json:"type"`
	Status       ProjectStatus `json:"status"`
	Budget       float64       `json:"budget"`
	Spent        float64       `json:"spent"`
	StartDate    time.Time     `json:"start_date"`
	EndDate      time.Time     `json:"end_date"`
	Team         []string      `json:"team"`
	Deliverables []string      `json:"deliverables"`
	Notes        string        `json:"notes,omitempty"`
	Progress     int           `json:"progress"`
}

func (p *Project) HasTeamMember(userID string) bool {
	for _, id := range p.Team {
		if id == userID {
			return true
		}
	}
	return false
}
