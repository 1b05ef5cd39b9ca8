package domain

import "time"

// CampaignStatus mirrors the ad platform's campaign state.
type CampaignStatus string

const (
	CampaignActive CampaignStatus = "active"
	CampaignPaused CampaignStatus = "paused"
	CampaignEnded  CampaignStatus = "ended"
)

// CampaignRef is the orchestrator's view of an eligible campaign: just
// enough to evaluate it. Budgets are stored in integer units (cents).
type CampaignRef struct {
	ID               string
	AccountID        string
	Name             string
	Status           CampaignStatus
	DailyBudgetCents int64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
