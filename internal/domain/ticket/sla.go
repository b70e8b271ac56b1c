package ticket

import (
	"time"

	vo "campusdesk/internal/domain/ticket/valueobjects"
)

// SLA holds the response and resolution deadlines frozen at ticket creation.
// Deadlines are never recomputed, even when the priority later changes.
// Compliance is derived on read against these deadlines; no met/missed flags
// are stored.
type SLA struct {
	ResponseDeadline   time.Time
	ResolutionDeadline time.Time
}

// NewSLA computes the deadlines for a ticket created at createdAt with the
// given priority.
func NewSLA(priority vo.Priority, createdAt time.Time) SLA {
	return SLA{
		ResponseDeadline:   createdAt.Add(priority.ResponseWindow()),
		ResolutionDeadline: createdAt.Add(priority.ResolutionWindow()),
	}
}

// ResponseMet reports SLA response compliance at the given instant: true when
// a first response happened before the deadline, or while the deadline has
// not yet passed on an unanswered ticket.
func (s SLA) ResponseMet(firstResponseAt *time.Time, now time.Time) bool {
	if firstResponseAt != nil {
		return !firstResponseAt.After(s.ResponseDeadline)
	}
	return !now.After(s.ResponseDeadline)
}

// ResolutionMet reports SLA resolution compliance at the given instant,
// using the resolution timestamp when one exists.
func (s SLA) ResolutionMet(resolvedAt *time.Time, now time.Time) bool {
	if resolvedAt != nil {
		return !resolvedAt.After(s.ResolutionDeadline)
	}
	return !now.After(s.ResolutionDeadline)
}
