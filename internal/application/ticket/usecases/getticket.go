package usecases

import (
	"context"
	"time"

	"campusdesk/internal/application/ticket/dto"
	"campusdesk/internal/domain/ticket"
	"campusdesk/internal/domain/user"
	"campusdesk/internal/shared/authorization"
	"campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
)

type GetTicketQuery struct {
	TicketID uint
	ActorID  uint
}

type GetTicketUseCase struct {
	ticketRepo ticket.Repository
	userRepo   user.Repository
	logger     logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.Repository,
	userRepo user.Repository,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

// Execute returns the ticket with SLA compliance derived at read time.
// Out-of-scope tickets read as not found.
func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error) {
	t, err := uc.ticketRepo.FindByID(ctx, query.TicketID)
	if err != nil {
		return nil, err
	}

	scope, err := resolveScope(ctx, uc.userRepo, query.ActorID)
	if err != nil {
		return nil, err
	}
	if !scope.Allows(t.SchoolID()) {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	return dto.ToTicketDTO(t, time.Now()), nil
}

func resolveScope(ctx context.Context, userRepo user.Repository, actorID uint) (authorization.Scope, error) {
	actor, err := userRepo.FindByID(ctx, actorID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return authorization.Scope{}, errors.NewUnauthorizedError("account no longer exists")
		}
		return authorization.Scope{}, err
	}
	return authorization.ScopeForUser(actor), nil
}
