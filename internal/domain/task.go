package domain

// Task is an internal unit of work, optionally linked to a ticket.
type Task struct {
	ItemCore
	Title          string
	Department     string
	LinkedTicketID *int
	Description    string
}

func (t *Task) Kind() ItemKind { return KindTask }
func (t *Task) Label() string  { return t.Title }
