package usecases

import (
	"context"
	"fmt"
	"time"

	"campusdesk/internal/application/ticket/dto"
	"campusdesk/internal/domain/asset"
	"campusdesk/internal/domain/school"
	"campusdesk/internal/domain/ticket"
	vo "campusdesk/internal/domain/ticket/valueobjects"
	"campusdesk/internal/domain/user"
	"campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/goroutine"
	"campusdesk/internal/shared/logger"
)

type CreateTicketCommand struct {
	ActorID      uint
	SchoolID     uint
	AssetID      *uint
	Category     string
	Title        string
	Description  string
	Priority     string
	ContactName  string
	ContactEmail string
	ContactPhone string
}

// Notifier delivers best-effort outbound mail. Failures are logged, never
// surfaced to the caller.
type Notifier interface {
	Notify(to, subject, body string) error
}

type CreateTicketUseCase struct {
	ticketRepo ticket.Repository
	schoolRepo school.Repository
	assetRepo  asset.Repository
	userRepo   user.Repository
	notifier   Notifier
	logger     logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.Repository,
	schoolRepo school.Repository,
	assetRepo asset.Repository,
	userRepo user.Repository,
	notifier Notifier,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		schoolRepo: schoolRepo,
		assetRepo:  assetRepo,
		userRepo:   userRepo,
		notifier:   notifier,
		logger:     logger,
	}
}

// Execute opens a ticket for a school the actor can see. Every role,
// including admins, is held to its school scope here.
func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*dto.TicketDTO, error) {
	scope, err := resolveScope(ctx, uc.userRepo, cmd.ActorID)
	if err != nil {
		return nil, err
	}
	if !scope.Allows(cmd.SchoolID) {
		return nil, errors.NewForbiddenError("school is outside your scope")
	}

	if _, err := uc.schoolRepo.FindByID(ctx, cmd.SchoolID); err != nil {
		return nil, err
	}

	if cmd.AssetID != nil {
		a, err := uc.assetRepo.FindByID(ctx, *cmd.AssetID)
		if err != nil {
			return nil, err
		}
		if a.SchoolID() != cmd.SchoolID {
			return nil, errors.NewValidationError("asset does not belong to the school")
		}
	}

	t, err := ticket.NewTicket(
		cmd.SchoolID,
		cmd.AssetID,
		vo.Category(cmd.Category),
		cmd.Title,
		cmd.Description,
		vo.NormalizePriority(cmd.Priority),
		ticket.Contact{Name: cmd.ContactName, Email: cmd.ContactEmail, Phone: cmd.ContactPhone},
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Save(ctx, t); err != nil {
		uc.logger.Errorw("failed to create ticket", "school_id", cmd.SchoolID, "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket created",
		"ticket_id", t.ID(), "number", t.Number(),
		"school_id", t.SchoolID(), "priority", t.Priority().String())

	if t.Contact().Email != "" {
		number := t.Number()
		email := t.Contact().Email
		goroutine.SafeGo(uc.logger, "ticket-confirmation-email", func() {
			subject := fmt.Sprintf("Ticket %s received", number)
			body := fmt.Sprintf("Your support request has been registered as %s. We will respond within the service window for its priority.", number)
			if err := uc.notifier.Notify(email, subject, body); err != nil {
				uc.logger.Warnw("ticket confirmation email failed", "number", number, "error", err)
			}
		})
	}

	return dto.ToTicketDTO(t, time.Now()), nil
}
