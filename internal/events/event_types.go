package events

import (
	"time"

	"github.com/spec-kit/helpdesk/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventItemCreated       EventType = "item_created"
	EventItemClaimed       EventType = "item_claimed"
	EventItemUnclaimed     EventType = "item_unclaimed"
	EventItemReassigned    EventType = "item_reassigned"
	EventItemStatusChanged EventType = "item_status_changed"
	EventItemDeleted       EventType = "item_deleted"
	EventItemNoteAdded     EventType = "item_note_added"
	EventArticleCreated    EventType = "article_created"
)

// Actor identifies the user performing a mutation.
type Actor struct {
	UserID int    `json:"user_id"`
	Name   string `json:"name"`
}

// Event represents a domain event emitted by services.
type Event struct {
	ID        string          `json:"id"`
	Type      EventType       `json:"type"`
	Kind      domain.ItemKind `json:"kind,omitempty"`
	ItemID    int             `json:"item_id,omitempty"`
	Actor     Actor           `json:"actor"`
	Timestamp time.Time       `json:"timestamp"`
	Payload   interface{}     `json:"payload,omitempty"`
}

// ItemCreatedPayload payload.
type ItemCreatedPayload struct {
	Label string `json:"label"`
}

// ItemClaimedPayload payload.
type ItemClaimedPayload struct {
	AssigneeID     int  `json:"assignee_id"`
	PreviousHolder *int `json:"previous_holder,omitempty"`
}

// ItemUnclaimedPayload payload.
type ItemUnclaimedPayload struct {
	HolderID int `json:"holder_id"`
}

// ItemReassignedPayload payload.
type ItemReassignedPayload struct {
	TargetID int `json:"target_id"`
}

// ItemStatusChangedPayload payload.
type ItemStatusChangedPayload struct {
	OldStatus domain.ItemStatus `json:"old_status"`
	NewStatus domain.ItemStatus `json:"new_status"`
}

// ItemNoteAddedPayload payload.
type ItemNoteAddedPayload struct {
	NoteID      string `json:"note_id"`
	BodyPreview string `json:"body_preview"`
}

// ArticleCreatedPayload payload.
type ArticleCreatedPayload struct {
	ArticleID      int    `json:"article_id"`
	Title          string `json:"title"`
	SourceTicketID *int   `json:"source_ticket_id,omitempty"`
}
