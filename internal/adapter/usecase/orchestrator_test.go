package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
	"adpilot/internal/core/port/mocks"
)

type orchestratorMocks struct {
	metrics   *mocks.MockMetricsProvider
	campaigns *mocks.MockCampaignRepository
	actions   *mocks.MockActionRepository
	rules     *mocks.MockRuleRepository
	platform  *mocks.MockAdPlatformClient
	notifier  *mocks.MockApprovalNotifier
}

func newOrchestratorForTest(t *testing.T) (*Orchestrator, orchestratorMocks) {
	m := orchestratorMocks{
		metrics:   mocks.NewMockMetricsProvider(t),
		campaigns: mocks.NewMockCampaignRepository(t),
		actions:   mocks.NewMockActionRepository(t),
		rules:     mocks.NewMockRuleRepository(t),
		platform:  mocks.NewMockAdPlatformClient(t),
		notifier:  mocks.NewMockApprovalNotifier(t),
	}
	o := NewOrchestrator(Deps{
		Metrics:     m.metrics,
		Campaigns:   m.campaigns,
		Actions:     m.actions,
		Rules:       m.rules,
		Platform:    m.platform,
		Notifier:    m.notifier,
		Logger:      testLogger(),
		Workers:     1,
		CallTimeout: time.Second,
	})
	return o, m
}

func activeCampaign() domain.CampaignRef {
	return domain.CampaignRef{
		ID:               "camp-1",
		AccountID:        "acct-1",
		Name:             "Spring Sale",
		Status:           domain.CampaignActive,
		DailyBudgetCents: 100_000,
	}
}

func campaignRuleFor(campaignID string) domain.ScalingRule {
	r := domain.DefaultRule("acct-1")
	r.CampaignID = &campaignID
	return r
}

// A strong performer under a generous auto-approve allowance is decided,
// persisted as APPROVED by "system" and executed within the same cycle.
func TestRunCycleAutoApprovesAndExecutes(t *testing.T) {
	o, m := newOrchestratorForTest(t)

	rule := campaignRuleFor("camp-1")
	rule.AutoApproveUpToCents = 100_000

	m.campaigns.EXPECT().ListEligible(mock.Anything, "").Return([]domain.CampaignRef{activeCampaign()}, nil)
	m.metrics.EXPECT().Get24hMetrics(mock.Anything, "camp-1").
		Return(&domain.CampaignMetrics{
			CampaignID:       "camp-1",
			Impressions:      50_000,
			Clicks:           1_750, // ctr 0.035
			SpendCents:       100_000,
			RevenueCents:     450_000, // roas 4.5
			DailyBudgetCents: 100_000,
			WindowHours:      domain.MetricsWindowHours,
		}, nil)
	m.rules.EXPECT().FindForCampaign(mock.Anything, "acct-1", "camp-1").Return(&rule, nil)

	var created *domain.ScalingAction
	m.actions.EXPECT().CreateIfNoPending(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, action *domain.ScalingAction) { created = action }).
		Return(nil)
	m.platform.EXPECT().UpdateBudget(mock.Anything, "camp-1", int64(150_000)).Return(nil)
	m.actions.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)

	report, err := o.RunCycle(context.Background(), port.CycleOptions{})
	if err != nil {
		t.Fatalf("run cycle: %v", err)
	}
	if report.Evaluated != 1 || report.Created != 1 || report.Executed != 1 || report.Failed != 0 {
		t.Fatalf("report = %+v", report)
	}

	if created == nil {
		t.Fatal("no action persisted")
	}
	if created.ActionType != domain.ActionScaleUpAggressive {
		t.Fatalf("action type = %s, want SCALE_UP_AGGRESSIVE", created.ActionType)
	}
	if created.Approver == nil || *created.Approver != "system" {
		t.Fatal("auto-approved action must record the system approver")
	}
	if created.Status != domain.StatusExecuted {
		t.Fatalf("status = %s, want EXECUTED", created.Status)
	}
	if created.BudgetBeforeCents != 100_000 || created.BudgetAfterCents != 150_000 {
		t.Fatalf("budgets = %d -> %d", created.BudgetBeforeCents, created.BudgetAfterCents)
	}
}

// A change above the auto-approve allowance is persisted PENDING, the
// approval notifier fires, and the platform is never touched.
func TestRunCycleLeavesLargeChangePending(t *testing.T) {
	o, m := newOrchestratorForTest(t)

	rule := campaignRuleFor("camp-1") // auto-approve up to $50, delta here is $200

	m.campaigns.EXPECT().ListEligible(mock.Anything, "").Return([]domain.CampaignRef{activeCampaign()}, nil)
	m.metrics.EXPECT().Get24hMetrics(mock.Anything, "camp-1").
		Return(&domain.CampaignMetrics{
			CampaignID:       "camp-1",
			Impressions:      50_000,
			Clicks:           1_000, // ctr 0.02
			SpendCents:       100_000,
			RevenueCents:     320_000, // roas 3.2
			DailyBudgetCents: 100_000,
			WindowHours:      domain.MetricsWindowHours,
		}, nil)
	m.rules.EXPECT().FindForCampaign(mock.Anything, "acct-1", "camp-1").Return(&rule, nil)

	var created *domain.ScalingAction
	m.actions.EXPECT().CreateIfNoPending(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, action *domain.ScalingAction) { created = action }).
		Return(nil)
	m.notifier.EXPECT().NotifyPending(mock.Anything, mock.Anything).Return(nil)

	report, err := o.RunCycle(context.Background(), port.CycleOptions{})
	if err != nil {
		t.Fatalf("run cycle: %v", err)
	}
	if report.Created != 1 || report.Executed != 0 {
		t.Fatalf("report = %+v", report)
	}
	if created.Status != domain.StatusPending || !created.RequiresApproval {
		t.Fatalf("expected a PENDING approval-gated action, got %+v", created)
	}
	if created.ActionType != domain.ActionScaleUp || created.BudgetAfterCents != 120_000 {
		t.Fatalf("action = %s after=%d", created.ActionType, created.BudgetAfterCents)
	}
}

// The open-action constraint makes concurrent or repeated cycles safe: a
// campaign with an in-flight action is counted as skipped, not failed.
func TestRunCycleSkipsCampaignWithOpenAction(t *testing.T) {
	o, m := newOrchestratorForTest(t)
	rule := campaignRuleFor("camp-1")

	m.campaigns.EXPECT().ListEligible(mock.Anything, "").Return([]domain.CampaignRef{activeCampaign()}, nil)
	m.metrics.EXPECT().Get24hMetrics(mock.Anything, "camp-1").
		Return(&domain.CampaignMetrics{
			CampaignID:       "camp-1",
			Impressions:      50_000,
			Clicks:           1_000,
			SpendCents:       100_000,
			RevenueCents:     320_000,
			DailyBudgetCents: 100_000,
		}, nil)
	m.rules.EXPECT().FindForCampaign(mock.Anything, "acct-1", "camp-1").Return(&rule, nil)
	m.actions.EXPECT().CreateIfNoPending(mock.Anything, mock.Anything).Return(port.ErrAlreadyPending)

	report, err := o.RunCycle(context.Background(), port.CycleOptions{})
	if err != nil {
		t.Fatalf("run cycle: %v", err)
	}
	if report.Skipped != 1 || report.Created != 0 {
		t.Fatalf("report = %+v", report)
	}
}

func TestRunCycleSkipsCampaignWithoutMetrics(t *testing.T) {
	o, m := newOrchestratorForTest(t)

	m.campaigns.EXPECT().ListEligible(mock.Anything, "").Return([]domain.CampaignRef{activeCampaign()}, nil)
	m.metrics.EXPECT().Get24hMetrics(mock.Anything, "camp-1").Return(nil, port.ErrDataUnavailable)

	report, err := o.RunCycle(context.Background(), port.CycleOptions{})
	if err != nil {
		t.Fatalf("run cycle: %v", err)
	}
	if report.Evaluated != 1 || report.Skipped != 1 {
		t.Fatalf("report = %+v", report)
	}
}

func TestRunCycleCountsMaintainWithoutPersisting(t *testing.T) {
	o, m := newOrchestratorForTest(t)
	rule := campaignRuleFor("camp-1")

	m.campaigns.EXPECT().ListEligible(mock.Anything, "").Return([]domain.CampaignRef{activeCampaign()}, nil)
	m.metrics.EXPECT().Get24hMetrics(mock.Anything, "camp-1").
		Return(&domain.CampaignMetrics{
			CampaignID:       "camp-1",
			Impressions:      50_000,
			Clicks:           1_000,
			SpendCents:       100_000,
			RevenueCents:     200_000, // roas 2.0, holding range
			DailyBudgetCents: 100_000,
		}, nil)
	m.rules.EXPECT().FindForCampaign(mock.Anything, "acct-1", "camp-1").Return(&rule, nil)

	report, err := o.RunCycle(context.Background(), port.CycleOptions{})
	if err != nil {
		t.Fatalf("run cycle: %v", err)
	}
	if report.Maintained != 1 || report.Created != 0 {
		t.Fatalf("report = %+v", report)
	}
}

// Dry run walks the whole pipeline and reports the would-be decision but
// writes nothing and calls no platform endpoint.
func TestRunCycleDryRun(t *testing.T) {
	o, m := newOrchestratorForTest(t)
	rule := campaignRuleFor("camp-1")

	m.campaigns.EXPECT().ListEligible(mock.Anything, "").Return([]domain.CampaignRef{activeCampaign()}, nil)
	m.metrics.EXPECT().Get24hMetrics(mock.Anything, "camp-1").
		Return(&domain.CampaignMetrics{
			CampaignID:       "camp-1",
			Impressions:      50_000,
			Clicks:           1_000,
			SpendCents:       100_000,
			RevenueCents:     80_000, // roas 0.8, pause territory
			DailyBudgetCents: 100_000,
		}, nil)
	m.rules.EXPECT().FindForCampaign(mock.Anything, "acct-1", "camp-1").Return(&rule, nil)

	report, err := o.RunCycle(context.Background(), port.CycleOptions{DryRun: true})
	if err != nil {
		t.Fatalf("run cycle: %v", err)
	}
	if !report.DryRun || report.Created != 1 || len(report.Decisions) != 1 {
		t.Fatalf("report = %+v", report)
	}
	d := report.Decisions[0]
	if d.ActionType != domain.ActionPause {
		t.Fatalf("decision = %s, want PAUSE", d.ActionType)
	}
	if d.BudgetAfterCents != d.BudgetBeforeCents {
		t.Fatal("pause must not change the budget")
	}
}

// A paused campaign whose metrics recover produces a REACTIVATE at the
// stored budget, gated behind approval.
func TestRunCyclePromotesRecoveredPausedCampaign(t *testing.T) {
	o, m := newOrchestratorForTest(t)
	rule := campaignRuleFor("camp-1")

	paused := activeCampaign()
	paused.Status = domain.CampaignPaused

	m.campaigns.EXPECT().ListEligible(mock.Anything, "").Return([]domain.CampaignRef{paused}, nil)
	m.metrics.EXPECT().Get24hMetrics(mock.Anything, "camp-1").
		Return(&domain.CampaignMetrics{
			CampaignID:       "camp-1",
			Impressions:      50_000,
			Clicks:           1_750,
			SpendCents:       100_000,
			RevenueCents:     450_000,
			DailyBudgetCents: 100_000,
		}, nil)
	m.rules.EXPECT().FindForCampaign(mock.Anything, "acct-1", "camp-1").Return(&rule, nil)

	var created *domain.ScalingAction
	m.actions.EXPECT().CreateIfNoPending(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, action *domain.ScalingAction) { created = action }).
		Return(nil)
	m.notifier.EXPECT().NotifyPending(mock.Anything, mock.Anything).Return(nil)

	report, err := o.RunCycle(context.Background(), port.CycleOptions{})
	if err != nil {
		t.Fatalf("run cycle: %v", err)
	}
	if report.Created != 1 || report.Executed != 0 {
		t.Fatalf("report = %+v", report)
	}
	if created.ActionType != domain.ActionReactivate || created.Multiplier != 1.0 {
		t.Fatalf("action = %+v", created)
	}
	if !created.RequiresApproval || created.Status != domain.StatusPending {
		t.Fatal("reactivation must always wait for approval")
	}
	if created.BudgetAfterCents != created.BudgetBeforeCents {
		t.Fatal("reactivation must restore the stored budget unchanged")
	}
}

// A paused campaign that has not recovered stays paused; no action row.
func TestRunCycleLeavesUnrecoveredPausedCampaignAlone(t *testing.T) {
	o, m := newOrchestratorForTest(t)
	rule := campaignRuleFor("camp-1")

	paused := activeCampaign()
	paused.Status = domain.CampaignPaused

	m.campaigns.EXPECT().ListEligible(mock.Anything, "").Return([]domain.CampaignRef{paused}, nil)
	m.metrics.EXPECT().Get24hMetrics(mock.Anything, "camp-1").
		Return(&domain.CampaignMetrics{
			CampaignID:       "camp-1",
			Impressions:      50_000,
			Clicks:           1_000,
			SpendCents:       100_000,
			RevenueCents:     80_000,
			DailyBudgetCents: 100_000,
		}, nil)
	m.rules.EXPECT().FindForCampaign(mock.Anything, "acct-1", "camp-1").Return(&rule, nil)

	report, err := o.RunCycle(context.Background(), port.CycleOptions{})
	if err != nil {
		t.Fatalf("run cycle: %v", err)
	}
	if report.Maintained != 1 || report.Created != 0 {
		t.Fatalf("report = %+v", report)
	}
}

// One failing campaign must not abort the cycle for the others.
func TestRunCycleIsolatesFailures(t *testing.T) {
	o, m := newOrchestratorForTest(t)
	rule1 := campaignRuleFor("camp-1")
	rule1.AutoApproveUpToCents = 100_000

	second := activeCampaign()
	second.ID = "camp-2"

	m.campaigns.EXPECT().ListEligible(mock.Anything, "").
		Return([]domain.CampaignRef{activeCampaign(), second}, nil)

	healthy := domain.CampaignMetrics{
		CampaignID:       "camp-1",
		Impressions:      50_000,
		Clicks:           1_750,
		SpendCents:       100_000,
		RevenueCents:     450_000,
		DailyBudgetCents: 100_000,
	}
	m.metrics.EXPECT().Get24hMetrics(mock.Anything, "camp-1").Return(&healthy, nil)
	m.metrics.EXPECT().Get24hMetrics(mock.Anything, "camp-2").Return(nil, errors.New("warehouse offline"))
	m.rules.EXPECT().FindForCampaign(mock.Anything, "acct-1", "camp-1").Return(&rule1, nil)

	m.actions.EXPECT().CreateIfNoPending(mock.Anything, mock.Anything).Return(nil)
	m.platform.EXPECT().UpdateBudget(mock.Anything, "camp-1", int64(150_000)).Return(nil)
	m.actions.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)

	report, err := o.RunCycle(context.Background(), port.CycleOptions{})
	if err != nil {
		t.Fatalf("run cycle: %v", err)
	}
	if report.Evaluated != 2 || report.Executed != 1 || report.Skipped != 1 {
		t.Fatalf("report = %+v", report)
	}
}

func TestApproveExecutesAction(t *testing.T) {
	o, m := newOrchestratorForTest(t)

	action := domain.NewScalingAction("acct-1",
		domain.CampaignMetrics{CampaignID: "camp-1", DailyBudgetCents: 100_000},
		domain.ActionScaleUp, 1.2, 100_000, 120_000, "roas above threshold", true)

	m.actions.EXPECT().FindByID(mock.Anything, action.ID).Return(action, nil)
	m.actions.EXPECT().Update(mock.Anything, action).Return(nil) // approval write, then execution write
	m.platform.EXPECT().UpdateBudget(mock.Anything, "camp-1", int64(120_000)).Return(nil)

	got, err := o.Approve(context.Background(), action.ID, "alice")
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	if got.Status != domain.StatusExecuted {
		t.Fatalf("status = %s, want EXECUTED", got.Status)
	}
	if got.Approver == nil || *got.Approver != "alice" {
		t.Fatal("approver not recorded")
	}
}

// An action stuck in APPROVED (say a crash landed between the approval
// write and execution) must be recoverable: approving it again re-drives
// execution instead of returning it unchanged, since the open-action
// index keeps blocking new decisions for the campaign until the action
// settles.
func TestApproveRedrivesStrandedApprovedAction(t *testing.T) {
	o, m := newOrchestratorForTest(t)

	action := domain.NewScalingAction("acct-1",
		domain.CampaignMetrics{CampaignID: "camp-1", DailyBudgetCents: 100_000},
		domain.ActionScaleUp, 1.2, 100_000, 120_000, "r", true)
	_ = action.Approve("alice")

	m.actions.EXPECT().FindByID(mock.Anything, action.ID).Return(action, nil)
	m.platform.EXPECT().UpdateBudget(mock.Anything, "camp-1", int64(120_000)).Return(nil)
	m.actions.EXPECT().Update(mock.Anything, action).Return(nil)

	got, err := o.Approve(context.Background(), action.ID, "bob")
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	if got.Status != domain.StatusExecuted {
		t.Fatalf("status = %s, want EXECUTED", got.Status)
	}
	if *got.Approver != "alice" {
		t.Fatal("re-driving execution must not change the original approver")
	}
}

// Approving an already settled action returns it unchanged with no
// writes and no platform calls.
func TestApproveIsIdempotentForSettledActions(t *testing.T) {
	o, m := newOrchestratorForTest(t)

	action := domain.NewScalingAction("acct-1",
		domain.CampaignMetrics{CampaignID: "camp-1", DailyBudgetCents: 100_000},
		domain.ActionScaleUp, 1.2, 100_000, 120_000, "r", true)
	_ = action.Approve("alice")
	_ = action.MarkExecuted()

	m.actions.EXPECT().FindByID(mock.Anything, action.ID).Return(action, nil)

	got, err := o.Approve(context.Background(), action.ID, "bob")
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	if got.Status != domain.StatusExecuted || *got.Approver != "alice" {
		t.Fatalf("settled action mutated: %+v", got)
	}
}

func TestApproveRejectedActionFails(t *testing.T) {
	o, m := newOrchestratorForTest(t)

	action := domain.NewScalingAction("acct-1",
		domain.CampaignMetrics{CampaignID: "camp-1", DailyBudgetCents: 100_000},
		domain.ActionScaleUp, 1.2, 100_000, 120_000, "r", true)
	_ = action.Reject("bob", "not now")

	m.actions.EXPECT().FindByID(mock.Anything, action.ID).Return(action, nil)

	if _, err := o.Approve(context.Background(), action.ID, "alice"); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

// Approval succeeds even when execution fails; the failure lands on the
// action itself.
func TestApproveSurvivesExecutionFailure(t *testing.T) {
	o, m := newOrchestratorForTest(t)

	action := domain.NewScalingAction("acct-1",
		domain.CampaignMetrics{CampaignID: "camp-1", DailyBudgetCents: 100_000},
		domain.ActionScaleUp, 1.2, 100_000, 120_000, "r", true)

	m.actions.EXPECT().FindByID(mock.Anything, action.ID).Return(action, nil)
	m.actions.EXPECT().Update(mock.Anything, action).Return(nil)
	m.platform.EXPECT().UpdateBudget(mock.Anything, "camp-1", int64(120_000)).
		Return(&port.ExecutionError{Kind: port.ExecTimeout, Message: "deadline exceeded"})

	got, err := o.Approve(context.Background(), action.ID, "alice")
	if err != nil {
		t.Fatalf("approve must not propagate the execution error, got %v", err)
	}
	if got.Status != domain.StatusFailed {
		t.Fatalf("status = %s, want FAILED", got.Status)
	}
	if got.Error == nil {
		t.Fatal("execution error not recorded")
	}
}

func TestRejectAction(t *testing.T) {
	o, m := newOrchestratorForTest(t)

	action := domain.NewScalingAction("acct-1",
		domain.CampaignMetrics{CampaignID: "camp-1", DailyBudgetCents: 100_000},
		domain.ActionScaleUp, 1.2, 100_000, 120_000, "r", true)

	m.actions.EXPECT().FindByID(mock.Anything, action.ID).Return(action, nil)
	m.actions.EXPECT().Update(mock.Anything, action).Return(nil)

	got, err := o.Reject(context.Background(), action.ID, "bob", "budget freeze")
	if err != nil {
		t.Fatalf("reject: %v", err)
	}
	if got.Status != domain.StatusRejected {
		t.Fatalf("status = %s, want REJECTED", got.Status)
	}
	if got.ReviewNote == nil || *got.ReviewNote != "budget freeze" {
		t.Fatal("rejection reason not recorded")
	}
}

func TestRejectIsIdempotent(t *testing.T) {
	o, m := newOrchestratorForTest(t)

	action := domain.NewScalingAction("acct-1",
		domain.CampaignMetrics{CampaignID: "camp-1", DailyBudgetCents: 100_000},
		domain.ActionScaleUp, 1.2, 100_000, 120_000, "r", true)
	_ = action.Reject("bob", "not now")

	m.actions.EXPECT().FindByID(mock.Anything, action.ID).Return(action, nil)

	got, err := o.Reject(context.Background(), action.ID, "carol", "again")
	if err != nil {
		t.Fatalf("reject: %v", err)
	}
	if *got.Approver != "bob" || *got.ReviewNote != "not now" {
		t.Fatalf("settled rejection mutated: %+v", got)
	}
}

func TestApproveUnknownActionPropagatesNotFound(t *testing.T) {
	o, m := newOrchestratorForTest(t)

	id := uuid.New()
	m.actions.EXPECT().FindByID(mock.Anything, id).Return(nil, port.ErrActionNotFound)

	if _, err := o.Approve(context.Background(), id, "alice"); !errors.Is(err, port.ErrActionNotFound) {
		t.Fatalf("expected ErrActionNotFound, got %v", err)
	}
}
