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

type ChangeTicketPriorityCommand struct {
	TicketID uint
	Priority string
}

// ChangeTicketPriorityUseCase reclassifies a ticket. The SLA deadlines were
// frozen at creation and do not move.
type ChangeTicketPriorityUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewChangeTicketPriorityUseCase(ticketRepo ticket.Repository, logger logger.Interface) *ChangeTicketPriorityUseCase {
	return &ChangeTicketPriorityUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ChangeTicketPriorityUseCase) Execute(ctx context.Context, cmd ChangeTicketPriorityCommand) (*dto.TicketDTO, error) {
	priority := vo.Priority(cmd.Priority)
	if !priority.IsValid() {
		return nil, errors.NewValidationError("invalid priority")
	}

	t, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	// Same priority is a no-op: the aggregate does not advance its version,
	// so a write here would trip the stale-version guard.
	if t.Priority() == priority {
		return dto.ToTicketDTO(t, time.Now()), nil
	}

	if err := t.ChangePriority(priority); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to change ticket priority",
			"ticket_id", cmd.TicketID, "priority", cmd.Priority, "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket priority changed",
		"ticket_id", t.ID(), "number", t.Number(), "priority", t.Priority().String())

	return dto.ToTicketDTO(t, time.Now()), nil
}
