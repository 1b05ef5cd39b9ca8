package configs

import "time"

// Notifier configures approval notifications. An empty WebhookURL
// disables delivery.
type Notifier struct {
	WebhookURL string        `env:"WEBHOOK_URL"`
	Timeout    time.Duration `env:"TIMEOUT" envDefault:"10s"`
}
