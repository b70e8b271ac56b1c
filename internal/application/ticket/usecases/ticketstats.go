package usecases

import (
	"context"

	"campusdesk/internal/application/ticket/dto"
	"campusdesk/internal/domain/ticket"
	"campusdesk/internal/domain/user"
	"campusdesk/internal/shared/logger"
)

type TicketStatsQuery struct {
	ActorID uint
}

// TicketStatsUseCase aggregates ticket counts by status plus the number of
// open tickets past their resolution deadline, computed within the actor's
// scope.
type TicketStatsUseCase struct {
	ticketRepo ticket.Repository
	userRepo   user.Repository
	logger     logger.Interface
}

func NewTicketStatsUseCase(
	ticketRepo ticket.Repository,
	userRepo user.Repository,
	logger logger.Interface,
) *TicketStatsUseCase {
	return &TicketStatsUseCase{
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

func (uc *TicketStatsUseCase) Execute(ctx context.Context, query TicketStatsQuery) (*dto.TicketStatsDTO, error) {
	scope, err := resolveScope(ctx, uc.userRepo, query.ActorID)
	if err != nil {
		return nil, err
	}

	filter := ticket.Filter{
		Restrict:  !scope.Unrestricted(),
		SchoolIDs: scope.SchoolIDs(),
	}

	counts, err := uc.ticketRepo.CountByStatus(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to aggregate ticket counts", "error", err)
		return nil, err
	}

	overdue, err := uc.ticketRepo.CountOverdue(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to count overdue tickets", "error", err)
		return nil, err
	}

	stats := &dto.TicketStatsDTO{
		ByStatus: make([]dto.StatusCountDTO, 0, len(counts)),
		Overdue:  overdue,
	}
	for _, c := range counts {
		stats.ByStatus = append(stats.ByStatus, dto.StatusCountDTO{
			Status: c.Status.String(),
			Count:  c.Count,
		})
	}

	return stats, nil
}
