package usecases

import (
	"context"

	"campusdesk/internal/application/user/dto"
	"campusdesk/internal/domain/user"
	"campusdesk/internal/shared/authorization"
	"campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
)

type UpdateUserCommand struct {
	UserID            uint
	Email             *string
	Name              *string
	Password          *string
	Role              *string
	Status            *string
	SchoolIDs         []uint
	AssignedSchoolIDs []uint
	// SetSchools signals that the affiliation slices should be applied even
	// when empty.
	SetSchools bool
}

type UpdateUserUseCase struct {
	userRepo user.Repository
	hasher   user.PasswordHasher
	logger   logger.Interface
}

func NewUpdateUserUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	logger logger.Interface,
) *UpdateUserUseCase {
	return &UpdateUserUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

func (uc *UpdateUserUseCase) Execute(ctx context.Context, cmd UpdateUserCommand) (*dto.UserDTO, error) {
	u, err := uc.userRepo.FindByID(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}

	if cmd.Email != nil || cmd.Name != nil {
		email := u.Email()
		name := u.Name()
		if cmd.Email != nil {
			email = *cmd.Email
		}
		if cmd.Name != nil {
			name = *cmd.Name
		}
		if err := u.UpdateProfile(email, name); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if cmd.Role != nil {
		role, ok := authorization.ParseRole(*cmd.Role)
		if !ok {
			return nil, errors.NewValidationError("invalid role")
		}
		if err := u.ChangeRole(role); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if cmd.Status != nil {
		switch user.Status(*cmd.Status) {
		case user.StatusActive:
			u.Activate()
		case user.StatusInactive:
			u.Deactivate()
		default:
			return nil, errors.NewValidationError("invalid status")
		}
	}

	if cmd.SetSchools {
		u.SetSchools(cmd.SchoolIDs, cmd.AssignedSchoolIDs)
	}

	if cmd.Password != nil {
		if len(*cmd.Password) < 8 {
			return nil, errors.NewValidationError("password must be at least 8 characters")
		}
		hash, err := uc.hasher.Hash(*cmd.Password)
		if err != nil {
			uc.logger.Errorw("failed to hash password", "error", err)
			return nil, errors.NewInternalError("failed to hash password")
		}
		if err := u.ChangePasswordHash(hash); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Errorw("failed to update user", "user_id", cmd.UserID, "error", err)
		return nil, err
	}

	uc.logger.Infow("user updated", "user_id", u.ID())

	return dto.ToUserDTO(u), nil
}
