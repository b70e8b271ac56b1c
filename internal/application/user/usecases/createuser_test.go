package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusdesk/internal/domain/user"
	"campusdesk/internal/shared/errors"
)

func TestCreateUserUseCase_Execute_Success(t *testing.T) {
	var saved *user.User
	repo := &mockUserRepository{
		SaveFunc: func(ctx context.Context, u *user.User) error {
			require.NoError(t, u.SetID(42))
			saved = u
			return nil
		},
	}

	uc := NewCreateUserUseCase(repo, &mockHasher{}, mockLogger{})
	result, err := uc.Execute(context.Background(), CreateUserCommand{
		Email:             "Tech@Example.edu",
		Name:              "Field Tech",
		Password:          "long-enough-password",
		Role:              "technician",
		AssignedSchoolIDs: []uint{1, 2},
	})

	require.NoError(t, err)
	assert.Equal(t, uint(42), result.ID)
	assert.Equal(t, "tech@example.edu", result.Email)
	assert.Equal(t, "technician", result.Role)
	require.NotNil(t, saved)
	assert.Equal(t, "hashed:long-enough-password", saved.PasswordHash())
}

func TestCreateUserUseCase_Execute_InvalidRole(t *testing.T) {
	uc := NewCreateUserUseCase(&mockUserRepository{}, &mockHasher{}, mockLogger{})

	_, err := uc.Execute(context.Background(), CreateUserCommand{
		Email:    "x@example.edu",
		Name:     "X",
		Password: "long-enough-password",
		Role:     "principal",
	})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestCreateUserUseCase_Execute_ShortPassword(t *testing.T) {
	uc := NewCreateUserUseCase(&mockUserRepository{}, &mockHasher{}, mockLogger{})

	_, err := uc.Execute(context.Background(), CreateUserCommand{
		Email:    "x@example.edu",
		Name:     "X",
		Password: "short",
		Role:     "technician",
	})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestCreateUserUseCase_Execute_DuplicateEmail(t *testing.T) {
	repo := &mockUserRepository{
		SaveFunc: func(ctx context.Context, u *user.User) error {
			return errors.NewConflictError("email already exists")
		},
	}

	uc := NewCreateUserUseCase(repo, &mockHasher{}, mockLogger{})
	_, err := uc.Execute(context.Background(), CreateUserCommand{
		Email:    "dup@example.edu",
		Name:     "Dup",
		Password: "long-enough-password",
		Role:     "school_user",
	})

	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
}
