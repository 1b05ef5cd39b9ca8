package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port/mocks"
)

func TestResolverPrefersCampaignRule(t *testing.T) {
	rules := mocks.NewMockRuleRepository(t)
	campaignID := "camp-1"
	campaignRule := domain.DefaultRule("acct-1")
	campaignRule.CampaignID = &campaignID
	campaignRule.UpMultiplier = 1.3

	rules.EXPECT().FindForCampaign(mock.Anything, "acct-1", "camp-1").Return(&campaignRule, nil)

	got, err := NewRuleResolver(rules).Resolve(context.Background(), "acct-1", "camp-1")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got.UpMultiplier != 1.3 {
		t.Fatalf("expected the campaign rule, got %+v", got)
	}
}

func TestResolverFallsBackToAccountRule(t *testing.T) {
	rules := mocks.NewMockRuleRepository(t)
	accountRule := domain.DefaultRule("acct-1")
	accountRule.UpMultiplier = 1.1

	rules.EXPECT().FindForCampaign(mock.Anything, "acct-1", "camp-1").Return(nil, nil)
	rules.EXPECT().FindForAccount(mock.Anything, "acct-1").Return(&accountRule, nil)

	got, err := NewRuleResolver(rules).Resolve(context.Background(), "acct-1", "camp-1")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got.UpMultiplier != 1.1 {
		t.Fatalf("expected the account rule, got %+v", got)
	}
}

// A disabled campaign rule is invisible; resolution proceeds to the next
// tier.
func TestResolverSkipsDisabledRules(t *testing.T) {
	rules := mocks.NewMockRuleRepository(t)
	campaignID := "camp-1"
	disabled := domain.DefaultRule("acct-1")
	disabled.CampaignID = &campaignID
	disabled.Enabled = false
	accountRule := domain.DefaultRule("acct-1")

	rules.EXPECT().FindForCampaign(mock.Anything, "acct-1", "camp-1").Return(&disabled, nil)
	rules.EXPECT().FindForAccount(mock.Anything, "acct-1").Return(&accountRule, nil)

	got, err := NewRuleResolver(rules).Resolve(context.Background(), "acct-1", "camp-1")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if !got.Enabled {
		t.Fatal("resolved a disabled rule")
	}
}

// A disabled account rule yields the synthesized default for this cycle
// but is never overwritten: the Save upsert would clobber the operator's
// stored thresholds and flip enabled back on. The mock has no Save
// expectation, so any write fails the test.
func TestResolverLeavesDisabledAccountRuleStored(t *testing.T) {
	rules := mocks.NewMockRuleRepository(t)
	disabled := domain.DefaultRule("acct-1")
	disabled.Enabled = false
	disabled.UpMultiplier = 1.05

	rules.EXPECT().FindForCampaign(mock.Anything, "acct-1", "camp-1").Return(nil, nil)
	rules.EXPECT().FindForAccount(mock.Anything, "acct-1").Return(&disabled, nil)

	got, err := NewRuleResolver(rules).Resolve(context.Background(), "acct-1", "camp-1")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if !got.Enabled || got.UpMultiplier == 1.05 {
		t.Fatalf("expected the synthesized default, got %+v", got)
	}
}

// With no stored rule anywhere, the resolver synthesizes the built-in
// default and persists it so later cycles see the same numbers.
func TestResolverSynthesizesAndPersistsDefault(t *testing.T) {
	rules := mocks.NewMockRuleRepository(t)
	rules.EXPECT().FindForCampaign(mock.Anything, "acct-1", "camp-1").Return(nil, nil)
	rules.EXPECT().FindForAccount(mock.Anything, "acct-1").Return(nil, nil)

	var saved *domain.ScalingRule
	rules.EXPECT().Save(mock.Anything, mock.Anything).Run(func(ctx context.Context, rule *domain.ScalingRule) {
		saved = rule
	}).Return(nil)

	got, err := NewRuleResolver(rules).Resolve(context.Background(), "acct-1", "camp-1")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if saved == nil {
		t.Fatal("default rule was not persisted")
	}
	if saved.AccountID != "acct-1" || saved.CampaignID != nil {
		t.Fatalf("persisted default has wrong scope: %+v", saved)
	}
	if got != saved {
		t.Fatal("resolved rule and persisted rule differ")
	}
	if err = got.Validate(); err != nil {
		t.Fatalf("synthesized default must validate: %v", err)
	}
}
