package mappers

import (
	"campusdesk/internal/domain/ticket"
	vo "campusdesk/internal/domain/ticket/valueobjects"
	"campusdesk/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between Ticket domain entities and persistence models.
type TicketMapper interface {
	ToModel(t *ticket.Ticket) *models.TicketModel
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)
}

type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	return &models.TicketModel{
		ID:                 t.ID(),
		Number:             t.Number(),
		SchoolID:           t.SchoolID(),
		AssetID:            t.AssetID(),
		Category:           t.Category().String(),
		Title:              t.Title(),
		Description:        t.Description(),
		Priority:           t.Priority().String(),
		Status:             t.Status().String(),
		ContactName:        t.Contact().Name,
		ContactEmail:       t.Contact().Email,
		ContactPhone:       t.Contact().Phone,
		ResponseDeadline:   t.SLA().ResponseDeadline.UnixMilli(),
		ResolutionDeadline: t.SLA().ResolutionDeadline.UnixMilli(),
		AssigneeID:         t.AssigneeID(),
		FirstResponseAt:    timeToMillisPtr(t.FirstResponseAt()),
		ResolvedAt:         timeToMillisPtr(t.ResolvedAt()),
		ClosedAt:           timeToMillisPtr(t.ClosedAt()),
		Version:            t.Version(),
		CreatedAt:          t.CreatedAt().UnixMilli(),
		UpdatedAt:          t.UpdatedAt().UnixMilli(),
	}
}

func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	return ticket.ReconstructTicket(
		model.ID,
		model.Number,
		model.SchoolID,
		model.AssetID,
		vo.Category(model.Category),
		model.Title,
		model.Description,
		vo.Priority(model.Priority),
		vo.TicketStatus(model.Status),
		ticket.Contact{
			Name:  model.ContactName,
			Email: model.ContactEmail,
			Phone: model.ContactPhone,
		},
		ticket.SLA{
			ResponseDeadline:   millisToTime(model.ResponseDeadline),
			ResolutionDeadline: millisToTime(model.ResolutionDeadline),
		},
		model.AssigneeID,
		millisToTimePtr(model.FirstResponseAt),
		millisToTimePtr(model.ResolvedAt),
		millisToTimePtr(model.ClosedAt),
		model.Version,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}
