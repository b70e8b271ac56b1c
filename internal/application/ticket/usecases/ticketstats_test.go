package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusdesk/internal/domain/ticket"
	vo "campusdesk/internal/domain/ticket/valueobjects"
	"campusdesk/internal/domain/user"
	"campusdesk/internal/shared/authorization"
)

func TestTicketStatsUseCase_Execute_SuperAdminUnrestricted(t *testing.T) {
	repo := &mockTicketRepository{
		CountByStatusFunc: func(ctx context.Context, filter ticket.Filter) ([]ticket.StatusCount, error) {
			assert.False(t, filter.Restrict)
			return []ticket.StatusCount{
				{Status: vo.StatusNew, Count: 4},
				{Status: vo.StatusResolved, Count: 9},
			}, nil
		},
		CountOverdueFunc: func(ctx context.Context, filter ticket.Filter) (int64, error) {
			return 2, nil
		},
	}
	userRepo := &mockUserRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return ticketActor(t, authorization.RoleSuperAdmin, nil, nil), nil
		},
	}

	uc := NewTicketStatsUseCase(repo, userRepo, mockLogger{})
	stats, err := uc.Execute(context.Background(), TicketStatsQuery{ActorID: 10})

	require.NoError(t, err)
	require.Len(t, stats.ByStatus, 2)
	assert.Equal(t, "new", stats.ByStatus[0].Status)
	assert.Equal(t, int64(4), stats.ByStatus[0].Count)
	assert.Equal(t, int64(2), stats.Overdue)
}

func TestTicketStatsUseCase_Execute_AdminScopeFlowsIntoFilter(t *testing.T) {
	repo := &mockTicketRepository{
		CountByStatusFunc: func(ctx context.Context, filter ticket.Filter) ([]ticket.StatusCount, error) {
			assert.True(t, filter.Restrict)
			assert.Equal(t, []uint{3, 4}, filter.SchoolIDs)
			return nil, nil
		},
		CountOverdueFunc: func(ctx context.Context, filter ticket.Filter) (int64, error) {
			assert.True(t, filter.Restrict)
			assert.Equal(t, []uint{3, 4}, filter.SchoolIDs)
			return 0, nil
		},
	}
	userRepo := &mockUserRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return ticketActor(t, authorization.RoleAdmin, nil, []uint{3, 4}), nil
		},
	}

	uc := NewTicketStatsUseCase(repo, userRepo, mockLogger{})
	stats, err := uc.Execute(context.Background(), TicketStatsQuery{ActorID: 10})

	require.NoError(t, err)
	assert.Empty(t, stats.ByStatus)
	assert.Equal(t, int64(0), stats.Overdue)
}

func TestListTicketsUseCase_Execute_SchoolAdminScope(t *testing.T) {
	repo := &mockTicketRepository{
		ListFunc: func(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, int64, error) {
			assert.True(t, filter.Restrict)
			assert.Equal(t, []uint{7}, filter.SchoolIDs)
			require.NotNil(t, filter.Status)
			assert.Equal(t, vo.StatusNew, *filter.Status)
			return nil, 0, nil
		},
	}
	userRepo := &mockUserRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return ticketActor(t, authorization.RoleSchoolAdmin, []uint{7}, nil), nil
		},
	}

	uc := NewListTicketsUseCase(repo, userRepo, mockLogger{})
	result, err := uc.Execute(context.Background(), ListTicketsQuery{ActorID: 10, Status: "new"})

	require.NoError(t, err)
	assert.Equal(t, int64(0), result.Total)
}
