package domain

// TicketPriority enumerates urgency levels shown in the ticket list.
type TicketPriority string

const (
	TicketPriorityLow    TicketPriority = "Low"
	TicketPriorityNormal TicketPriority = "Normal"
	TicketPriorityHigh   TicketPriority = "High"
)

// Ticket is a support request worked by agents.
type Ticket struct {
	ItemCore
	Subject   string
	Requester string
	Priority  TicketPriority
	SLAPlan   string
	HelpTopic string
	Printing  bool
}

func (t *Ticket) Kind() ItemKind { return KindTicket }
func (t *Ticket) Label() string  { return t.Subject }
