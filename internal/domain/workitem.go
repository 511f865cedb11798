package domain

import "time"

// ItemKind distinguishes the two work-item families.
type ItemKind string

const (
	KindTicket ItemKind = "TICKET"
	KindTask   ItemKind = "TASK"
)

// ItemStatus enumerates lifecycle states for work items.
type ItemStatus string

const (
	ItemStatusOpen     ItemStatus = "Open"
	ItemStatusResolved ItemStatus = "Resolved"
)

// Note is an internal note appended to a work item.
type Note struct {
	ID        string
	Author    string
	Text      string
	CreatedAt time.Time
}

// WorkItem is the behavior shared by Ticket and Task. Assignment is a
// foreign-key relation to a user id; display names are resolved at
// presentation time only.
type WorkItem interface {
	ItemID() int
	SetItemID(id int)
	ItemStatus() ItemStatus
	SetItemStatus(status ItemStatus)
	AssigneeID() *int
	SetAssigneeID(id *int)
	ClearAssignee()
	LastAssigneeID() *int
	Notes() []Note
	AppendNote(note Note)
	SetCreatedAt(t time.Time)
	Kind() ItemKind
	Label() string
}

// ItemCore carries the fields common to every work item. Ticket and Task
// embed it by pointer-receiver methods.
type ItemCore struct {
	ID         int
	Status     ItemStatus
	Assignee   *int
	LastHolder *int
	NoteList   []Note
	CreatedAt  time.Time
}

func (c *ItemCore) ItemID() int                { return c.ID }
func (c *ItemCore) SetItemID(id int)           { c.ID = id }
func (c *ItemCore) ItemStatus() ItemStatus     { return c.Status }
func (c *ItemCore) SetItemStatus(s ItemStatus) { c.Status = s }
func (c *ItemCore) AssigneeID() *int           { return c.Assignee }
func (c *ItemCore) LastAssigneeID() *int       { return c.LastHolder }
func (c *ItemCore) Notes() []Note              { return c.NoteList }
func (c *ItemCore) AppendNote(note Note)       { c.NoteList = append(c.NoteList, note) }
func (c *ItemCore) SetCreatedAt(t time.Time)   { c.CreatedAt = t }

// SetAssigneeID establishes active ownership and records the holder in the
// last-assignee audit field.
func (c *ItemCore) SetAssigneeID(id *int) {
	c.Assignee = id
	if id != nil {
		holder := *id
		c.LastHolder = &holder
	}
}

// ClearAssignee drops active ownership while keeping the last-assignee
// audit field intact.
func (c *ItemCore) ClearAssignee() {
	c.Assignee = nil
}
