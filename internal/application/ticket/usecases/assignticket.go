package usecases

import (
	"context"
	"time"

	"campusdesk/internal/application/ticket/dto"
	"campusdesk/internal/domain/ticket"
	"campusdesk/internal/domain/user"
	"campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
)

type AssignTicketCommand struct {
	TicketID   uint
	AssigneeID uint
}

type AssignTicketUseCase struct {
	ticketRepo ticket.Repository
	userRepo   user.Repository
	logger     logger.Interface
}

func NewAssignTicketUseCase(
	ticketRepo ticket.Repository,
	userRepo user.Repository,
	logger logger.Interface,
) *AssignTicketUseCase {
	return &AssignTicketUseCase{
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

func (uc *AssignTicketUseCase) Execute(ctx context.Context, cmd AssignTicketCommand) (*dto.TicketDTO, error) {
	t, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	assignee, err := uc.userRepo.FindByID(ctx, cmd.AssigneeID)
	if err != nil {
		return nil, err
	}
	if !assignee.IsActive() {
		return nil, errors.NewConflictError("assignee is inactive")
	}

	if err := t.AssignTo(assignee.ID()); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to assign ticket",
			"ticket_id", cmd.TicketID, "assignee_id", cmd.AssigneeID, "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket assigned",
		"ticket_id", t.ID(), "number", t.Number(), "assignee_id", cmd.AssigneeID)

	return dto.ToTicketDTO(t, time.Now()), nil
}
