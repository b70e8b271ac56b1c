package usecases

import (
	"context"
	"time"

	"campusdesk/internal/application/ticket/dto"
	"campusdesk/internal/domain/ticket"
	vo "campusdesk/internal/domain/ticket/valueobjects"
	"campusdesk/internal/domain/user"
	"campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
	"campusdesk/internal/shared/mapper"
)

type ListTicketsQuery struct {
	ActorID    uint
	SchoolID   uint
	Status     string
	Priority   string
	AssigneeID uint
	Page       int
	PageSize   int
}

type ListTicketsResult struct {
	Tickets []*dto.TicketDTO
	Total   int64
}

type ListTicketsUseCase struct {
	ticketRepo ticket.Repository
	userRepo   user.Repository
	logger     logger.Interface
}

func NewListTicketsUseCase(
	ticketRepo ticket.Repository,
	userRepo user.Repository,
	logger logger.Interface,
) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	scope, err := resolveScope(ctx, uc.userRepo, query.ActorID)
	if err != nil {
		return nil, err
	}

	filter := ticket.Filter{
		Restrict:  !scope.Unrestricted(),
		SchoolIDs: scope.SchoolIDs(),
		Page:      query.Page,
		PageSize:  query.PageSize,
	}
	if query.SchoolID != 0 {
		filter.SchoolID = &query.SchoolID
	}
	if query.AssigneeID != 0 {
		filter.AssigneeID = &query.AssigneeID
	}
	if query.Status != "" {
		status := vo.TicketStatus(query.Status)
		if !status.IsValid() {
			return nil, errors.NewValidationError("invalid status filter")
		}
		filter.Status = &status
	}
	if query.Priority != "" {
		priority := vo.Priority(query.Priority)
		if !priority.IsValid() {
			return nil, errors.NewValidationError("invalid priority filter")
		}
		filter.Priority = &priority
	}

	tickets, total, err := uc.ticketRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, err
	}

	now := time.Now()
	dtos := mapper.MapSlice(tickets, func(t *ticket.Ticket) *dto.TicketDTO {
		return dto.ToTicketDTO(t, now)
	})

	return &ListTicketsResult{Tickets: dtos, Total: total}, nil
}
