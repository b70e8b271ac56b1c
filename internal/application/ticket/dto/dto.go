package dto

import (
	"time"

	"campusdesk/internal/domain/ticket"
)

type ContactDTO struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// SLADTO carries the frozen deadlines plus compliance derived at read time.
type SLADTO struct {
	ResponseDeadline   time.Time `json:"response_deadline"`
	ResolutionDeadline time.Time `json:"resolution_deadline"`
	ResponseMet        bool      `json:"response_met"`
	ResolutionMet      bool      `json:"resolution_met"`
	IsOverdue          bool      `json:"is_overdue"`
}

type TicketDTO struct {
	ID              uint       `json:"id"`
	Number          string     `json:"number"`
	SchoolID        uint       `json:"school_id"`
	AssetID         *uint      `json:"asset_id,omitempty"`
	Category        string     `json:"category"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Priority        string     `json:"priority"`
	Status          string     `json:"status"`
	Contact         ContactDTO `json:"contact"`
	SLA             SLADTO     `json:"sla"`
	AssigneeID      *uint      `json:"assignee_id,omitempty"`
	FirstResponseAt *time.Time `json:"first_response_at,omitempty"`
	ResolvedAt      *time.Time `json:"resolved_at,omitempty"`
	ClosedAt        *time.Time `json:"closed_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type StatusCountDTO struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type TicketStatsDTO struct {
	ByStatus []StatusCountDTO `json:"by_status"`
	Overdue  int64            `json:"overdue"`
}

func ToTicketDTO(t *ticket.Ticket, now time.Time) *TicketDTO {
	if t == nil {
		return nil
	}
	return &TicketDTO{
		ID:          t.ID(),
		Number:      t.Number(),
		SchoolID:    t.SchoolID(),
		AssetID:     t.AssetID(),
		Category:    t.Category().String(),
		Title:       t.Title(),
		Description: t.Description(),
		Priority:    t.Priority().String(),
		Status:      t.Status().String(),
		Contact: ContactDTO{
			Name:  t.Contact().Name,
			Email: t.Contact().Email,
			Phone: t.Contact().Phone,
		},
		SLA: SLADTO{
			ResponseDeadline:   t.SLA().ResponseDeadline,
			ResolutionDeadline: t.SLA().ResolutionDeadline,
			ResponseMet:        t.ResponseMet(now),
			ResolutionMet:      t.ResolutionMet(now),
			IsOverdue:          t.IsOverdue(now),
		},
		AssigneeID:      t.AssigneeID(),
		FirstResponseAt: t.FirstResponseAt(),
		ResolvedAt:      t.ResolvedAt(),
		ClosedAt:        t.ClosedAt(),
		CreatedAt:       t.CreatedAt(),
		UpdatedAt:       t.UpdatedAt(),
	}
}
