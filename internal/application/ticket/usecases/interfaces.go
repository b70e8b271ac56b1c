package usecases

import (
	"context"

	"campusdesk/internal/application/ticket/dto"
)

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*dto.TicketDTO, error)
}

type SetTicketStatusExecutor interface {
	Execute(ctx context.Context, cmd SetTicketStatusCommand) (*dto.TicketDTO, error)
}

type AssignTicketExecutor interface {
	Execute(ctx context.Context, cmd AssignTicketCommand) (*dto.TicketDTO, error)
}

type ChangeTicketPriorityExecutor interface {
	Execute(ctx context.Context, cmd ChangeTicketPriorityCommand) (*dto.TicketDTO, error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error)
}

type TicketStatsExecutor interface {
	Execute(ctx context.Context, query TicketStatsQuery) (*dto.TicketStatsDTO, error)
}
