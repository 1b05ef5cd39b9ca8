package port

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"adpilot/internal/core/domain"
)

// ErrAlreadyPending is returned by CreateIfNoPending when the campaign
// already has a PENDING or APPROVED action. The caller skips the
// campaign; the in-flight change wins.
var ErrAlreadyPending = errors.New("campaign already has a non-terminal action")

// ErrActionNotFound is returned when no action exists for the given id.
var ErrActionNotFound = errors.New("scaling action not found")

// ActionFilter narrows List results. Zero values mean "any".
type ActionFilter struct {
	AccountID  string
	CampaignID string
	Status     domain.ActionStatus
	Limit      int
}

// ActionRepository persists the scaling action audit trail. It is the
// only shared mutable resource in the system; implementations must make
// CreateIfNoPending atomic so concurrent cycles racing on one campaign
// cannot both create actions.
type ActionRepository interface {
	// CreateIfNoPending inserts the action unless the campaign already has
	// a non-terminal one, in which case it returns ErrAlreadyPending.
	CreateIfNoPending(ctx context.Context, action *domain.ScalingAction) error
	// Update writes the mutable lifecycle fields of an existing action.
	Update(ctx context.Context, action *domain.ScalingAction) error
	// FindByID returns the action or ErrActionNotFound.
	FindByID(ctx context.Context, id uuid.UUID) (*domain.ScalingAction, error)
	// FindPending returns the campaign's non-terminal action, or nil when
	// there is none.
	FindPending(ctx context.Context, campaignID string) (*domain.ScalingAction, error)
	// List returns actions matching the filter, newest first.
	List(ctx context.Context, filter ActionFilter) ([]domain.ScalingAction, error)
}
