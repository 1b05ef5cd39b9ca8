package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

// Deps carries the collaborators an Orchestrator is built from. One
// orchestrator instance is constructed per run with explicit injection;
// there is no hidden global state.
type Deps struct {
	Metrics   port.MetricsProvider
	Campaigns port.CampaignRepository
	Actions   port.ActionRepository
	Rules     port.RuleRepository
	Platform  port.AdPlatformClient
	Notifier  port.ApprovalNotifier
	Logger    *slog.Logger

	// Workers bounds how many campaigns are evaluated in parallel,
	// sized to respect the ad platform's rate limits. Defaults to 4.
	Workers int
	// CallTimeout bounds each metrics fetch and platform call.
	// Defaults to 30s.
	CallTimeout time.Duration
}

// Orchestrator drives one evaluation cycle across all eligible
// campaigns: fetch metrics, resolve the rule, decide, compute the
// budget, gate approval, persist the action, and execute auto-approved
// changes in the same pass. It also carries the human approval surface.
type Orchestrator struct {
	metrics   port.MetricsProvider
	campaigns port.CampaignRepository
	actions   port.ActionRepository
	rules     port.RuleRepository
	resolver  *RuleResolver
	executor  *Executor
	notifier  port.ApprovalNotifier
	logger    *slog.Logger

	workers     int
	callTimeout time.Duration
}

// NewOrchestrator wires an orchestrator from its dependencies.
func NewOrchestrator(d Deps) *Orchestrator {
	if d.Workers <= 0 {
		d.Workers = 4
	}
	if d.CallTimeout <= 0 {
		d.CallTimeout = 30 * time.Second
	}
	if d.Logger == nil {
		d.Logger = slog.Default()
	}
	return &Orchestrator{
		metrics:     d.Metrics,
		campaigns:   d.Campaigns,
		actions:     d.Actions,
		rules:       d.Rules,
		resolver:    NewRuleResolver(d.Rules),
		executor:    NewExecutor(d.Platform, d.Actions, d.CallTimeout, d.Logger),
		notifier:    d.Notifier,
		logger:      d.Logger,
		workers:     d.Workers,
		callTimeout: d.CallTimeout,
	}
}

// outcome classifies what happened to one campaign within a cycle.
type outcome int

const (
	outcomeSkipped outcome = iota
	outcomeMaintained
	outcomeCreated
	outcomeExecuted
	outcomeFailed
)

type evalResult struct {
	outcome outcome
	summary *port.DecisionSummary
}

// RunCycle evaluates every eligible campaign once. Campaigns are
// independent and run in parallel on a bounded pool; within one
// campaign, decide -> persist -> execute happens strictly in order. A
// single campaign's failure never aborts the cycle.
func (o *Orchestrator) RunCycle(ctx context.Context, opts port.CycleOptions) (*port.CycleReport, error) {
	report := &port.CycleReport{StartedAt: time.Now().UTC(), DryRun: opts.DryRun}

	campaigns, err := o.campaigns.ListEligible(ctx, opts.AccountID)
	if err != nil {
		return nil, err
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)

	for _, c := range campaigns {
		c := c
		g.Go(func() error {
			res := o.evaluate(gctx, c, opts.DryRun)

			mu.Lock()
			defer mu.Unlock()
			report.Evaluated++
			switch res.outcome {
			case outcomeSkipped:
				report.Skipped++
			case outcomeMaintained:
				report.Maintained++
			case outcomeCreated:
				report.Created++
			case outcomeExecuted:
				report.Created++
				report.Executed++
			case outcomeFailed:
				report.Created++
				report.Failed++
			}
			if res.summary != nil {
				report.Decisions = append(report.Decisions, *res.summary)
			}
			return nil
		})
	}
	_ = g.Wait()

	report.FinishedAt = time.Now().UTC()
	o.logger.Info("cycle finished",
		slog.Bool("dry_run", opts.DryRun),
		slog.Int("evaluated", report.Evaluated),
		slog.Int("skipped", report.Skipped),
		slog.Int("maintained", report.Maintained),
		slog.Int("created", report.Created),
		slog.Int("executed", report.Executed),
		slog.Int("failed", report.Failed),
	)
	return report, nil
}

// evaluate runs the full pipeline for one campaign.
func (o *Orchestrator) evaluate(ctx context.Context, c domain.CampaignRef, dryRun bool) evalResult {
	log := o.logger.With(slog.String("campaign_id", c.ID), slog.String("account_id", c.AccountID))

	fetchCtx, cancel := context.WithTimeout(ctx, o.callTimeout)
	m, err := o.metrics.Get24hMetrics(fetchCtx, c.ID)
	cancel()
	if err != nil {
		if errors.Is(err, port.ErrDataUnavailable) {
			log.Info("skipping campaign: metrics unavailable")
		} else {
			log.Error("skipping campaign: metrics fetch failed", slog.Any("error", err))
		}
		return evalResult{outcome: outcomeSkipped}
	}

	rule, err := o.resolver.Resolve(ctx, c.AccountID, c.ID)
	if err != nil {
		log.Error("skipping campaign: rule resolution failed", slog.Any("error", err))
		return evalResult{outcome: outcomeSkipped}
	}

	dec := Decide(*m, *rule)

	// Paused campaigns only come back through REACTIVATE: a scale-up
	// signal promotes to reactivation at the stored budget, anything
	// else leaves the campaign paused.
	if c.Status == domain.CampaignPaused {
		switch dec.ActionType {
		case domain.ActionScaleUp, domain.ActionScaleUpAggressive:
			dec = Decision{
				ActionType: domain.ActionReactivate,
				Multiplier: 1.0,
				Reasoning:  "performance recovered while paused: " + dec.Reasoning,
			}
		default:
			log.Info("campaign paused, no reactivation signal", slog.String("decision", string(dec.ActionType)))
			return evalResult{outcome: outcomeMaintained}
		}
	}

	if dec.ActionType == domain.ActionMaintain && dec.Multiplier == 1.0 {
		log.Info("maintaining budget", slog.String("reason", dec.Reasoning))
		return evalResult{outcome: outcomeMaintained}
	}

	before := m.DailyBudgetCents
	after := CalcBudget(before, dec.Multiplier, *rule)
	needsApproval := NeedsApproval(dec.ActionType, before, after, *rule)

	summary := &port.DecisionSummary{
		CampaignID:        c.ID,
		ActionType:        dec.ActionType,
		Multiplier:        dec.Multiplier,
		BudgetBeforeCents: before,
		BudgetAfterCents:  after,
		RequiresApproval:  needsApproval,
		Reasoning:         dec.Reasoning,
	}

	if dryRun {
		log.Info("dry run decision",
			slog.String("action", string(dec.ActionType)),
			slog.Int64("budget_before", before),
			slog.Int64("budget_after", after),
			slog.Bool("requires_approval", needsApproval),
		)
		return evalResult{outcome: outcomeCreated, summary: summary}
	}

	action := domain.NewScalingAction(c.AccountID, *m, dec.ActionType, dec.Multiplier, before, after, dec.Reasoning, needsApproval)
	if !needsApproval {
		// Auto-approved changes are persisted as APPROVED so the audit
		// trail records who released them.
		if err = action.Approve("system"); err != nil {
			log.Error("auto-approve failed", slog.Any("error", err))
			return evalResult{outcome: outcomeSkipped}
		}
	}

	if err = o.actions.CreateIfNoPending(ctx, action); err != nil {
		if errors.Is(err, port.ErrAlreadyPending) {
			log.Info("skipping campaign: action already in flight")
		} else {
			log.Error("skipping campaign: persisting action failed", slog.Any("error", err))
		}
		return evalResult{outcome: outcomeSkipped}
	}

	if needsApproval {
		if o.notifier != nil {
			if err = o.notifier.NotifyPending(ctx, action); err != nil {
				log.Warn("approval notification failed", slog.Any("error", err))
			}
		}
		log.Info("action awaiting approval",
			slog.String("action_id", action.ID.String()),
			slog.String("action", string(action.ActionType)),
		)
		return evalResult{outcome: outcomeCreated, summary: summary}
	}

	if err = o.executor.Execute(ctx, action); err != nil {
		log.Error("action execution failed",
			slog.String("action_id", action.ID.String()), slog.Any("error", err))
		return evalResult{outcome: outcomeFailed, summary: summary}
	}
	log.Info("action executed",
		slog.String("action_id", action.ID.String()),
		slog.String("action", string(action.ActionType)),
		slog.Int64("budget_before", before),
		slog.Int64("budget_after", after),
	)
	return evalResult{outcome: outcomeExecuted, summary: summary}
}

// Approve transitions a PENDING action to APPROVED and executes it in
// the same pass. The approval path never re-runs the decision engine: it
// only releases the already-computed change. Approving an EXECUTED
// action returns it unchanged; an action already in APPROVED gets its
// execution re-driven, which is how an action stranded between the
// approval write and execution is recovered.
func (o *Orchestrator) Approve(ctx context.Context, id uuid.UUID, approver string) (*domain.ScalingAction, error) {
	action, err := o.actions.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	switch action.Status {
	case domain.StatusExecuted:
		return action, nil
	case domain.StatusApproved:
		// Stranded here, the open-action index blocks every new decision
		// for the campaign. Platform calls are idempotent, so retrying
		// execution is safe.
		if err = o.executor.Execute(ctx, action); err != nil {
			o.logger.Error("approved action failed to execute",
				slog.String("action_id", action.ID.String()), slog.Any("error", err))
		}
		return action, nil
	case domain.StatusPending:
	default:
		return nil, fmt.Errorf("%w: approve from %s", domain.ErrInvalidTransition, action.Status)
	}

	if err = action.Approve(approver); err != nil {
		return nil, err
	}
	if err = o.actions.Update(ctx, action); err != nil {
		return nil, err
	}
	o.logger.Info("action approved",
		slog.String("action_id", action.ID.String()),
		slog.String("approver", approver),
	)

	// Execution outcome lands on the action itself (EXECUTED or FAILED);
	// the approval call succeeded either way.
	if err = o.executor.Execute(ctx, action); err != nil {
		o.logger.Error("approved action failed to execute",
			slog.String("action_id", action.ID.String()), slog.Any("error", err))
	}
	return action, nil
}

// Reject transitions a PENDING action to REJECTED. Rejecting an already
// REJECTED action returns it unchanged.
func (o *Orchestrator) Reject(ctx context.Context, id uuid.UUID, by, reason string) (*domain.ScalingAction, error) {
	action, err := o.actions.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if action.Status == domain.StatusRejected {
		return action, nil
	}
	if err = action.Reject(by, reason); err != nil {
		return nil, err
	}
	if err = o.actions.Update(ctx, action); err != nil {
		return nil, err
	}
	o.logger.Info("action rejected",
		slog.String("action_id", action.ID.String()),
		slog.String("by", by),
		slog.String("reason", reason),
	)
	return action, nil
}

// ListActions returns audit records matching the filter.
func (o *Orchestrator) ListActions(ctx context.Context, filter port.ActionFilter) ([]domain.ScalingAction, error) {
	return o.actions.List(ctx, filter)
}

// SaveRule validates and persists a scaling rule.
func (o *Orchestrator) SaveRule(ctx context.Context, rule *domain.ScalingRule) error {
	return o.rules.Save(ctx, rule)
}
