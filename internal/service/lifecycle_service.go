package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk/internal/domain"
	"github.com/spec-kit/helpdesk/internal/events"
	"github.com/spec-kit/helpdesk/internal/store"
	apperrors "github.com/spec-kit/helpdesk/pkg/util"
)

// LifecycleService governs the Open/Resolved transition, creation, notes,
// and the explicit admin delete for one work-item family.
type LifecycleService[T domain.WorkItem] struct {
	kind       domain.ItemKind
	items      *store.Store[T]
	registry   *store.Registry
	dispatcher events.Dispatcher
	logger     *zap.Logger
	ops        *sync.Mutex
}

// LifecycleDependencies bundles collaborators.
type LifecycleDependencies[T domain.WorkItem] struct {
	Kind       domain.ItemKind
	Items      *store.Store[T]
	Registry   *store.Registry
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
	// OpLock must be the same lock the family's ClaimService holds, so
	// resolution and reassignment never interleave.
	OpLock *sync.Mutex
}

// NewLifecycleService creates the service.
func NewLifecycleService[T domain.WorkItem](deps LifecycleDependencies[T]) *LifecycleService[T] {
	return &LifecycleService[T]{
		kind:       deps.Kind,
		items:      deps.Items,
		registry:   deps.Registry,
		dispatcher: deps.Dispatcher,
		logger:     deps.Logger,
		ops:        deps.OpLock,
	}
}

// Create inserts a new item. The only internal validation is a non-empty
// label; richer form validation is the UI collaborator's job.
func (s *LifecycleService[T]) Create(ctx context.Context, item T, actor *domain.User) (T, error) {
	var zero T
	if strings.TrimSpace(item.Label()) == "" {
		return zero, apperrors.NewInvalidInput("label required", map[string]any{"kind": s.kind})
	}

	s.ops.Lock()
	created := s.items.Create(item)
	s.ops.Unlock()

	s.publish(ctx, events.Event{
		Type:    events.EventItemCreated,
		Kind:    s.kind,
		ItemID:  created.ItemID(),
		Actor:   eventActor(actor),
		Payload: events.ItemCreatedPayload{Label: created.Label()},
	})
	return created, nil
}

// SetStatus applies an Open/Resolved transition. Resolution removes the
// item from the active store, increments the resolved total, and then
// best-effort unclaims the item from the acting user; a miss there is
// logged and swallowed, never surfaced. Setting Open on an active item is
// a valid no-op. There is no unresolve.
func (s *LifecycleService[T]) SetStatus(ctx context.Context, id int, status domain.ItemStatus, actor *domain.User) (T, error) {
	var zero T
	if status != domain.ItemStatusOpen && status != domain.ItemStatusResolved {
		return zero, apperrors.NewInvalidInput("unknown status", map[string]any{"status": status})
	}

	s.ops.Lock()
	defer s.ops.Unlock()

	item, ok := s.items.Get(id)
	if !ok {
		return zero, apperrors.NewNotFound(s.resourceName(), map[string]any{"id": id})
	}

	oldStatus := item.ItemStatus()
	s.items.SetStatus(id, status)
	if status != domain.ItemStatusResolved {
		if oldStatus != status {
			s.publishStatusChange(ctx, id, actor, oldStatus, status)
		}
		return item, nil
	}

	s.items.Resolve(id)
	if !actor.RemoveClaim(s.kind, id) {
		s.logger.Debug("resolve unclaim skipped",
			zap.String("kind", string(s.kind)),
			zap.Int("item_id", id),
			zap.Int("actor_id", actor.ID))
	}
	s.publishStatusChange(ctx, id, actor, oldStatus, status)
	return item, nil
}

// Delete removes an item outright and increments the deleted total. Claimed
// sets of every user are scrubbed so no dangling ids remain.
func (s *LifecycleService[T]) Delete(ctx context.Context, id int, actor *domain.User) error {
	s.ops.Lock()
	defer s.ops.Unlock()

	if !s.items.Delete(id) {
		return apperrors.NewNotFound(s.resourceName(), map[string]any{"id": id})
	}
	for _, user := range s.registry.ListUsers() {
		user.RemoveClaim(s.kind, id)
	}
	s.publish(ctx, events.Event{
		Type:   events.EventItemDeleted,
		Kind:   s.kind,
		ItemID: id,
		Actor:  eventActor(actor),
	})
	return nil
}

// AddNote appends an internal note. The author display name is captured at
// write time.
func (s *LifecycleService[T]) AddNote(ctx context.Context, id int, actor *domain.User, text string) (T, error) {
	var zero T
	if strings.TrimSpace(text) == "" {
		return zero, apperrors.NewInvalidInput("note text required", nil)
	}

	s.ops.Lock()
	defer s.ops.Unlock()

	item, ok := s.items.Get(id)
	if !ok {
		return zero, apperrors.NewNotFound(s.resourceName(), map[string]any{"id": id})
	}

	note := domain.Note{
		ID:        uuid.NewString(),
		Author:    actor.Name,
		Text:      strings.TrimSpace(text),
		CreatedAt: time.Now(),
	}
	s.items.AppendNote(id, note)

	s.publish(ctx, events.Event{
		Type:   events.EventItemNoteAdded,
		Kind:   s.kind,
		ItemID: id,
		Actor:  eventActor(actor),
		Payload: events.ItemNoteAddedPayload{
			NoteID:      note.ID,
			BodyPreview: stringPreview(note.Text, 120),
		},
	})
	return item, nil
}

func (s *LifecycleService[T]) publishStatusChange(ctx context.Context, id int, actor *domain.User, oldStatus, newStatus domain.ItemStatus) {
	s.publish(ctx, events.Event{
		Type:   events.EventItemStatusChanged,
		Kind:   s.kind,
		ItemID: id,
		Actor:  eventActor(actor),
		Payload: events.ItemStatusChangedPayload{
			OldStatus: oldStatus,
			NewStatus: newStatus,
		},
	})
}

func (s *LifecycleService[T]) resourceName() string {
	return strings.ToLower(string(s.kind))
}

func (s *LifecycleService[T]) publish(ctx context.Context, event events.Event) {
	publishEvent(ctx, s.dispatcher, s.logger, event)
}
