package valueobjects

// TicketStatus is the lifecycle state of a ticket. The workflow is
// new -> assigned -> in_progress -> resolved -> closed, but any valid status
// may be written by an authorized caller: help-desk staff routinely jump
// states (new straight to resolved) and administrative overrides move
// backward.
type TicketStatus string

const (
	StatusNew        TicketStatus = "new"
	StatusAssigned   TicketStatus = "assigned"
	StatusInProgress TicketStatus = "in_progress"
	StatusResolved   TicketStatus = "resolved"
	StatusClosed     TicketStatus = "closed"
)

var validStatuses = map[TicketStatus]bool{
	StatusNew:        true,
	StatusAssigned:   true,
	StatusInProgress: true,
	StatusResolved:   true,
	StatusClosed:     true,
}

func (s TicketStatus) String() string {
	return string(s)
}

func (s TicketStatus) IsValid() bool {
	return validStatuses[s]
}

func (s TicketStatus) IsNew() bool {
	return s == StatusNew
}

func (s TicketStatus) IsResolved() bool {
	return s == StatusResolved
}

func (s TicketStatus) IsClosed() bool {
	return s == StatusClosed
}

// IsOpen reports whether the ticket still counts against a school's active
// ticket total.
func (s TicketStatus) IsOpen() bool {
	return s != StatusResolved && s != StatusClosed
}
