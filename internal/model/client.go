package model

type ClientStatus string

const (
	ClientActive  ClientStatus = "Active"
	ClientLead    ClientStatus = "Lead"
	ClientChurned ClientStatus = "Churned"
)

// Client counters (TotalProjects, ActiveProjects, AssetsDelivered) are derived:
// they are recomputed from the project and asset collections after every
// project or asset mutation and must never drift from them.
type Client struct {
	ID              string       `json:"id"`
	Name            string       `json:"name"`
	Company         string       `json:"company"`
	Email           string       `json:"email"`
	Phone           string       `json:"phone,omitempty"`
	Industry        string       `json:"industry"`
	Status          ClientStatus `json:"status"`
	BudgetAllocated float64      `json:"budget_allocated"`
	InitialBrief    string       `json:"initial_brief,omitempty"`
	Notes           string       `json:"notes,omitempty"`
	TotalProjects   int          `json:"total_projects"`
	ActiveProjects  int          `json:"active_projects"`
	AssetsDelivered int          `json:"assets_delivered"`
}
