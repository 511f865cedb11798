package service

import (
	"context"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk/internal/domain"
	"github.com/spec-kit/helpdesk/internal/events"
	"github.com/spec-kit/helpdesk/internal/store"
	apperrors "github.com/spec-kit/helpdesk/pkg/util"
)

// ClaimService keeps the bidirectional item/user ownership relation
// consistent. One instance per work-item family.
type ClaimService[T domain.WorkItem] struct {
	kind       domain.ItemKind
	items      *store.Store[T]
	registry   *store.Registry
	dispatcher events.Dispatcher
	logger     *zap.Logger
	ops        *sync.Mutex
}

// ClaimDependencies bundles collaborators.
type ClaimDependencies[T domain.WorkItem] struct {
	Kind       domain.ItemKind
	Items      *store.Store[T]
	Registry   *store.Registry
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
	// OpLock serializes the multi-step claim, reassignment, and
	// resolution sequences for one work-item family.
	OpLock *sync.Mutex
}

// NewClaimService creates the service.
func NewClaimService[T domain.WorkItem](deps ClaimDependencies[T]) *ClaimService[T] {
	return &ClaimService[T]{
		kind:       deps.Kind,
		items:      deps.Items,
		registry:   deps.Registry,
		dispatcher: deps.Dispatcher,
		logger:     deps.Logger,
		ops:        deps.OpLock,
	}
}

// Claim assigns the item to user and records the id in user's claimed set.
// Claiming an item already held by the same user is an idempotent no-op
// success. When a different user holds the item it is unclaimed from that
// holder first, so at most one owner exists at any time.
func (s *ClaimService[T]) Claim(ctx context.Context, id int, user *domain.User) (T, error) {
	var zero T
	s.ops.Lock()
	defer s.ops.Unlock()

	item, ok := s.items.Get(id)
	if !ok {
		return zero, apperrors.NewNotFound(s.resourceName(), map[string]any{"id": id})
	}

	if holder := item.AssigneeID(); holder != nil && *holder == user.ID {
		user.AddClaim(s.kind, id)
		return item, nil
	}

	var previous *int
	if holder := item.AssigneeID(); holder != nil {
		previous = holder
		if prev, found := s.registry.GetByID(*holder); found {
			prev.RemoveClaim(s.kind, id)
		}
	}

	s.items.Assign(id, user.ID)
	user.AddClaim(s.kind, id)

	s.publish(ctx, events.Event{
		Type:   events.EventItemClaimed,
		Kind:   s.kind,
		ItemID: id,
		Actor:  eventActor(user),
		Payload: events.ItemClaimedPayload{
			AssigneeID:     user.ID,
			PreviousHolder: previous,
		},
	})
	return item, nil
}

// Unclaim removes the id from user's claimed set when present. It never
// fails for a user who never held the item. Active ownership on the item
// is cleared when that user holds it; the last-assignee audit field stays.
func (s *ClaimService[T]) Unclaim(ctx context.Context, id int, user *domain.User) error {
	s.ops.Lock()
	defer s.ops.Unlock()
	s.unclaimLocked(ctx, id, user)
	return nil
}

// Candidates lists reassignment targets for the acting user: active users
// excluding current. When exclusion empties the list the unfiltered active
// roster is returned instead, so escalation always has somewhere to go.
func (s *ClaimService[T]) Candidates(current *domain.User) []*domain.User {
	candidates := s.registry.ListActiveExcluding(current)
	if len(candidates) == 0 {
		candidates = s.registry.ListActiveExcluding(nil)
	}
	return candidates
}

// Reassign atomically transfers ownership to target: every user in the
// registry is unclaimed first, then target claims the item. A target
// outside the candidate list for current is rejected without mutating the
// item or any claimed set.
func (s *ClaimService[T]) Reassign(ctx context.Context, id int, target, current *domain.User) (T, error) {
	var zero T
	s.ops.Lock()
	defer s.ops.Unlock()

	item, ok := s.items.Get(id)
	if !ok {
		return zero, apperrors.NewNotFound(s.resourceName(), map[string]any{"id": id})
	}

	inList := false
	for _, candidate := range s.Candidates(current) {
		if candidate.ID == target.ID {
			inList = true
			break
		}
	}
	if !inList {
		return zero, apperrors.NewNotInCandidateSet(map[string]any{"target_id": target.ID})
	}

	for _, user := range s.registry.ListUsers() {
		user.RemoveClaim(s.kind, id)
	}

	s.items.Assign(id, target.ID)
	target.AddClaim(s.kind, id)

	actor := current
	if actor == nil {
		actor = target
	}
	s.publish(ctx, events.Event{
		Type:    events.EventItemReassigned,
		Kind:    s.kind,
		ItemID:  id,
		Actor:   eventActor(actor),
		Payload: events.ItemReassignedPayload{TargetID: target.ID},
	})
	return item, nil
}

func (s *ClaimService[T]) unclaimLocked(ctx context.Context, id int, user *domain.User) {
	removed := user.RemoveClaim(s.kind, id)
	s.items.Unassign(id, user.ID)
	if removed {
		s.publish(ctx, events.Event{
			Type:    events.EventItemUnclaimed,
			Kind:    s.kind,
			ItemID:  id,
			Actor:   eventActor(user),
			Payload: events.ItemUnclaimedPayload{HolderID: user.ID},
		})
	}
}

func (s *ClaimService[T]) resourceName() string {
	return strings.ToLower(string(s.kind))
}

func (s *ClaimService[T]) publish(ctx context.Context, event events.Event) {
	publishEvent(ctx, s.dispatcher, s.logger, event)
}
