package ticket

import (
	"context"

	vo "campusdesk/internal/domain/ticket/valueobjects"
)

// Filter narrows ticket listings. When Restrict is set the listing is
// limited to SchoolIDs; an empty restricted set matches no rows.
type Filter struct {
	SchoolID   *uint
	Status     *vo.TicketStatus
	Priority   *vo.Priority
	AssigneeID *uint
	Restrict   bool
	SchoolIDs  []uint
	Page       int
	PageSize   int
}

// StatusCount is one row of the ticket stats aggregation.
type StatusCount struct {
	Status vo.TicketStatus
	Count  int64
}

type Repository interface {
	Save(ctx context.Context, t *Ticket) error
	// Update persists the aggregate guarded by its version: a stale write
	// (version already advanced by a concurrent caller) updates no rows.
	Update(ctx context.Context, t *Ticket) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*Ticket, error)
	FindByNumber(ctx context.Context, number string) (*Ticket, error)
	List(ctx context.Context, filter Filter) ([]*Ticket, int64, error)
	CountByStatus(ctx context.Context, filter Filter) ([]StatusCount, error)
	CountOverdue(ctx context.Context, filter Filter) (int64, error)
	CountOpenBySchool(ctx context.Context, schoolID uint) (int64, error)
}
