package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusdesk/internal/domain/user"
	"campusdesk/internal/shared/authorization"
	"campusdesk/internal/shared/errors"
)

func reconstructUser(t *testing.T, id uint, email string, role authorization.Role, status user.Status) *user.User {
	t.Helper()
	u, err := user.ReconstructUser(id, email, "Test User", "stored-hash", role, nil, nil, status, nil, time.Now(), time.Now())
	require.NoError(t, err)
	return u
}

func TestLoginUseCase_Execute_Success(t *testing.T) {
	existing := reconstructUser(t, 7, "admin@example.edu", authorization.RoleAdmin, user.StatusActive)

	var updated bool
	repo := &mockUserRepository{
		FindByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			assert.Equal(t, "admin@example.edu", email)
			return existing, nil
		},
		UpdateFunc: func(ctx context.Context, u *user.User) error {
			updated = true
			return nil
		},
	}

	uc := NewLoginUseCase(repo, &mockHasher{}, &mockTokenIssuer{}, mockLogger{})
	result, err := uc.Execute(context.Background(), LoginCommand{
		Email:    "admin@example.edu",
		Password: "correct-password",
	})

	require.NoError(t, err)
	assert.Equal(t, "access", result.AccessToken)
	assert.Equal(t, "refresh", result.RefreshToken)
	assert.Equal(t, uint(7), result.User.ID)
	assert.Equal(t, "admin", result.User.Role)
	assert.True(t, updated)
}

func TestLoginUseCase_Execute_WrongPassword(t *testing.T) {
	existing := reconstructUser(t, 7, "admin@example.edu", authorization.RoleAdmin, user.StatusActive)

	repo := &mockUserRepository{
		FindByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			return existing, nil
		},
	}
	hasher := &mockHasher{
		VerifyFunc: func(password, hash string) error {
			return errors.NewInvalidCredentialsError()
		},
	}

	uc := NewLoginUseCase(repo, hasher, &mockTokenIssuer{}, mockLogger{})
	_, err := uc.Execute(context.Background(), LoginCommand{
		Email:    "admin@example.edu",
		Password: "wrong",
	})

	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeUnauthorized, appErr.Type)
}

func TestLoginUseCase_Execute_UnknownEmailLooksLikeWrongPassword(t *testing.T) {
	repo := &mockUserRepository{
		FindByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			return nil, errors.NewNotFoundError("user not found")
		},
	}

	uc := NewLoginUseCase(repo, &mockHasher{}, &mockTokenIssuer{}, mockLogger{})
	_, err := uc.Execute(context.Background(), LoginCommand{
		Email:    "nobody@example.edu",
		Password: "whatever",
	})

	require.Error(t, err)
	assert.False(t, errors.IsNotFoundError(err))
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeUnauthorized, appErr.Type)
}

func TestLoginUseCase_Execute_InactiveAccount(t *testing.T) {
	existing := reconstructUser(t, 7, "gone@example.edu", authorization.RoleTechnician, user.StatusInactive)

	repo := &mockUserRepository{
		FindByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			return existing, nil
		},
	}

	uc := NewLoginUseCase(repo, &mockHasher{}, &mockTokenIssuer{}, mockLogger{})
	_, err := uc.Execute(context.Background(), LoginCommand{
		Email:    "gone@example.edu",
		Password: "correct-password",
	})

	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
}
