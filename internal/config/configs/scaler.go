package configs

import "time"

// Scaler configures the budget autoscaling control loop. The cron spec
// uses the six-field format (with seconds); the default runs at the top
// of every hour. Workers bounds parallel campaign evaluation so one
// cycle cannot exceed the ad platform's rate limits. CallTimeout bounds
// every metrics fetch and platform call.
type Scaler struct {
	// Enabled controls whether the periodic cycle is scheduled at all.
	// The HTTP and CLI surfaces work regardless.
	Enabled bool `env:"ENABLED" envDefault:"true"`
	// CronSpec is the schedule for evaluation cycles.
	CronSpec string `env:"CRON" envDefault:"0 0 * * * *"`
	// Workers is the size of the bounded evaluation pool.
	Workers int `env:"WORKERS" envDefault:"4"`
	// CallTimeout bounds each metrics fetch and ad platform call.
	CallTimeout time.Duration `env:"CALL_TIMEOUT" envDefault:"30s"`
}
