package configs

import "time"

// Platform configures the ad platform management API client.
type Platform struct {
	// BaseURL is the root of the management API.
	BaseURL string `env:"BASE_URL" envDefault:"http://localhost:9090/api/v1"`
	// APIKey is sent as a bearer token when non-empty.
	APIKey string `env:"API_KEY"`
	// Timeout is the per-request HTTP timeout.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"30s"`
}
