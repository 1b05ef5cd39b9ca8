// Package scheduler wraps robfig/cron to run evaluation cycles on a
// fixed schedule with a shared base context.
package scheduler

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// Runner schedules jobs with a six-field cron spec (seconds included).
type Runner struct {
	cron    *cron.Cron
	logger  *slog.Logger
	baseCtx context.Context
}

// New creates a runner. Jobs receive baseCtx so a daemon shutdown
// cancels in-flight cycles.
func New(logger *slog.Logger, baseCtx context.Context) *Runner {
	if baseCtx == nil {
		baseCtx = context.Background()
	}
	return &Runner{
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger,
		baseCtx: baseCtx,
	}
}

// Add registers a job on the given cron spec.
func (r *Runner) Add(spec string, job func(context.Context)) (cron.EntryID, error) {
	return r.cron.AddFunc(spec, func() {
		job(r.baseCtx)
	})
}

// Start begins scheduling in a background goroutine.
func (r *Runner) Start() {
	r.logger.Info("scheduler started")
	r.cron.Start()
}

// Stop halts scheduling and waits for running jobs to finish.
func (r *Runner) Stop() {
	ctx := r.cron.Stop()
	<-ctx.Done()
	r.logger.Info("scheduler stopped")
}
