package domain

// MetricsWindowHours is the fixed observation window for campaign
// performance snapshots.
const MetricsWindowHours = 24

// CampaignMetrics is a trailing 24h performance snapshot for one campaign.
// Monetary amounts are stored in integer units (cents). The struct is
// serialised as JSON into the scaling_actions audit record, so every
// decision keeps the exact numbers that triggered it.
type CampaignMetrics struct {
	CampaignID       string `json:"campaign_id"`
	Impressions      int64  `json:"impressions"`
	Clicks           int64  `json:"clicks"`
	Conversions      int64  `json:"conversions"`
	SpendCents       int64  `json:"spend_cents"`
	RevenueCents     int64  `json:"revenue_cents"`
	DailyBudgetCents int64  `json:"daily_budget_cents"`
	WindowHours      int    `json:"window_hours"`
	HourOfDay        int    `json:"hour_of_day"`
}

// CTR returns clicks/impressions, or 0 when there are no impressions.
func (m CampaignMetrics) CTR() float64 {
	if m.Impressions == 0 {
		return 0
	}
	return float64(m.Clicks) / float64(m.Impressions)
}

// ROAS returns revenue/spend, or 0 when nothing was spent.
func (m CampaignMetrics) ROAS() float64 {
	if m.SpendCents == 0 {
		return 0
	}
	return float64(m.RevenueCents) / float64(m.SpendCents)
}

// ConversionRate returns conversions/clicks, or 0 when there are no clicks.
func (m CampaignMetrics) ConversionRate() float64 {
	if m.Clicks == 0 {
		return 0
	}
	return float64(m.Conversions) / float64(m.Clicks)
}
