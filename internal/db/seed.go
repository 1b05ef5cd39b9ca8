package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Seed inserts demo campaigns and 24 hours of hourly metrics so a cycle
// has something to chew on. Campaign 1 performs well enough to scale,
// campaign 3 runs below break-even and should end up paused.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	type profile struct {
		name        string
		dailyBudget int64 // cents
		impressions int64 // per hour
		ctr         float64
		roas        float64
	}
	profiles := []profile{
		{"Spring Sale", 100_000, 3000, 0.040, 4.6},
		{"Brand Awareness", 50_000, 2000, 0.020, 2.0},
		{"Clearance", 20_000, 1500, 0.015, 0.7},
		{"New Product Launch", 80_000, 40, 0.030, 3.0}, // too little data
	}

	for i, p := range profiles {
		id := fmt.Sprintf("camp-%d", i+1)
		_, err := db.Exec(ctx, `INSERT INTO campaigns
			(id, account_id, name, status, daily_budget, created_at, updated_at)
			VALUES ($1,$2,$3,'active',$4,now(),now()) ON CONFLICT DO NOTHING`,
			id, "acct-1", p.name, p.dailyBudget)
		if err != nil {
			return err
		}

		hourlySpend := p.dailyBudget / 24
		for h := 0; h < 24; h++ {
			hour := time.Now().UTC().Truncate(time.Hour).Add(-time.Duration(h) * time.Hour)
			impressions := p.impressions + r.Int63n(p.impressions/4+1)
			clicks := int64(float64(impressions) * p.ctr)
			conversions := clicks / 20
			revenue := int64(float64(hourlySpend) * p.roas)
			_, err = db.Exec(ctx, `INSERT INTO campaign_metrics_hourly
				(campaign_id, hour, impressions, clicks, conversions, spend, revenue)
				VALUES ($1,$2,$3,$4,$5,$6,$7) ON CONFLICT DO NOTHING`,
				id, hour, impressions, clicks, conversions, hourlySpend, revenue)
			if err != nil {
				return err
			}
		}
	}
	return nil
}
