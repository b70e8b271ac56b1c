package usecases

import (
	"context"
	"time"

	"campusdesk/internal/application/ticket/dto"
	"campusdesk/internal/domain/ticket"
	vo "campusdesk/internal/domain/ticket/valueobjects"
	"campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
)

type SetTicketStatusCommand struct {
	TicketID uint
	Status   string
}

// SetTicketStatusUseCase writes any valid status value. Staff judgment wins
// over a transition table; the aggregate stamps the lifecycle milestones and
// the version guard turns the two-writers race into a conflict.
type SetTicketStatusUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewSetTicketStatusUseCase(ticketRepo ticket.Repository, logger logger.Interface) *SetTicketStatusUseCase {
	return &SetTicketStatusUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *SetTicketStatusUseCase) Execute(ctx context.Context, cmd SetTicketStatusCommand) (*dto.TicketDTO, error) {
	status := vo.TicketStatus(cmd.Status)
	if !status.IsValid() {
		return nil, errors.NewValidationError("invalid status")
	}

	t, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	if err := t.SetStatus(status); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket status",
			"ticket_id", cmd.TicketID, "status", cmd.Status, "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket status changed",
		"ticket_id", t.ID(), "number", t.Number(), "status", t.Status().String())

	return dto.ToTicketDTO(t, time.Now()), nil
}
