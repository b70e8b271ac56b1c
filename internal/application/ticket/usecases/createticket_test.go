package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusdesk/internal/domain/asset"
	"campusdesk/internal/domain/school"
	"campusdesk/internal/domain/ticket"
	"campusdesk/internal/domain/user"
	"campusdesk/internal/shared/authorization"
	"campusdesk/internal/shared/errors"
)

func ticketActor(t *testing.T, role authorization.Role, schoolIDs, assignedIDs []uint) *user.User {
	t.Helper()
	u, err := user.ReconstructUser(10, "actor@example.edu", "Actor", "hash", role,
		schoolIDs, assignedIDs, user.StatusActive, nil, time.Now(), time.Now())
	require.NoError(t, err)
	return u
}

func ticketSchool(t *testing.T, id uint) *school.School {
	t.Helper()
	s, err := school.ReconstructSchool(id, "Lincoln High", "LHS", "", "",
		school.Contact{}, school.StatusActive, time.Now(), time.Now())
	require.NoError(t, err)
	return s
}

func TestCreateTicketUseCase_Execute_Success(t *testing.T) {
	var saved *ticket.Ticket
	notified := make(chan string, 1)

	ticketRepo := &mockTicketRepository{
		SaveFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			saved = tk
			return nil
		},
	}
	schoolRepo := &mockSchoolRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*school.School, error) {
			return ticketSchool(t, id), nil
		},
	}
	userRepo := &mockUserRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return ticketActor(t, authorization.RoleSuperAdmin, nil, nil), nil
		},
	}
	notifier := &mockNotifier{
		NotifyFunc: func(to, subject, body string) error {
			notified <- to
			return nil
		},
	}

	uc := NewCreateTicketUseCase(ticketRepo, schoolRepo, &mockAssetRepository{}, userRepo, notifier, mockLogger{})
	result, err := uc.Execute(context.Background(), CreateTicketCommand{
		ActorID:      10,
		SchoolID:     5,
		Category:     "hardware",
		Title:        "Projector flickers",
		Description:  "The projector in room 101 flickers after ten minutes.",
		Priority:     "p2",
		ContactName:  "Dana",
		ContactEmail: "dana@lincoln.edu",
	})

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "new", result.Status)
	assert.Equal(t, "P2", result.Priority)
	assert.Contains(t, result.Number, "TKT-")
	assert.Equal(t, saved.CreatedAt().Add(8*time.Hour), result.SLA.ResponseDeadline)
	assert.Equal(t, saved.CreatedAt().Add(48*time.Hour), result.SLA.ResolutionDeadline)

	select {
	case to := <-notified:
		assert.Equal(t, "dana@lincoln.edu", to)
	case <-time.After(time.Second):
		t.Fatal("expected a confirmation email")
	}
}

func TestCreateTicketUseCase_Execute_UnrecognizedPriorityDefaults(t *testing.T) {
	ticketRepo := &mockTicketRepository{}
	schoolRepo := &mockSchoolRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*school.School, error) {
			return ticketSchool(t, id), nil
		},
	}
	userRepo := &mockUserRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return ticketActor(t, authorization.RoleSuperAdmin, nil, nil), nil
		},
	}

	uc := NewCreateTicketUseCase(ticketRepo, schoolRepo, &mockAssetRepository{}, userRepo, &mockNotifier{}, mockLogger{})
	result, err := uc.Execute(context.Background(), CreateTicketCommand{
		ActorID:     10,
		SchoolID:    5,
		Category:    "software",
		Title:       "LMS login loop",
		Description: "Students are bounced back to the login page.",
		Priority:    "urgent",
	})

	require.NoError(t, err)
	assert.Equal(t, "P4", result.Priority)
}

func TestCreateTicketUseCase_Execute_AdminRestrictedToAssignedSchools(t *testing.T) {
	ticketRepo := &mockTicketRepository{
		SaveFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			t.Fatal("ticket must not be created outside the actor's scope")
			return nil
		},
	}
	userRepo := &mockUserRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return ticketActor(t, authorization.RoleAdmin, nil, []uint{1, 2}), nil
		},
	}

	uc := NewCreateTicketUseCase(ticketRepo, &mockSchoolRepository{}, &mockAssetRepository{}, userRepo, &mockNotifier{}, mockLogger{})
	_, err := uc.Execute(context.Background(), CreateTicketCommand{
		ActorID:     10,
		SchoolID:    7,
		Category:    "network",
		Title:       "Wifi down",
		Description: "Whole east wing is offline.",
	})

	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeForbidden, appErr.Type)
}

func TestCreateTicketUseCase_Execute_AssetMustBelongToSchool(t *testing.T) {
	otherSchoolAsset, err := asset.ReconstructAsset(3, "AST-PRJ-AAAAAA", 1, 9, time.Now(),
		"good", "", asset.StatusInService, time.Now(), time.Now())
	require.NoError(t, err)

	schoolRepo := &mockSchoolRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*school.School, error) {
			return ticketSchool(t, id), nil
		},
	}
	assetRepo := &mockAssetRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*asset.Asset, error) {
			return otherSchoolAsset, nil
		},
	}
	userRepo := &mockUserRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return ticketActor(t, authorization.RoleSuperAdmin, nil, nil), nil
		},
	}

	assetID := uint(3)
	uc := NewCreateTicketUseCase(&mockTicketRepository{}, schoolRepo, assetRepo, userRepo, &mockNotifier{}, mockLogger{})
	_, err = uc.Execute(context.Background(), CreateTicketCommand{
		ActorID:     10,
		SchoolID:    5,
		AssetID:     &assetID,
		Category:    "hardware",
		Title:       "Cart missing",
		Description: "Laptop cart is not in the library.",
	})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}
