package usecases

import (
	"context"

	"campusdesk/internal/application/user/dto"
	"campusdesk/internal/domain/user"
	"campusdesk/internal/shared/authorization"
	"campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
)

type CreateUserCommand struct {
	Email             string
	Name              string
	Password          string
	Role              string
	SchoolIDs         []uint
	AssignedSchoolIDs []uint
}

type CreateUserUseCase struct {
	userRepo user.Repository
	hasher   user.PasswordHasher
	logger   logger.Interface
}

func NewCreateUserUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	logger logger.Interface,
) *CreateUserUseCase {
	return &CreateUserUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

func (uc *CreateUserUseCase) Execute(ctx context.Context, cmd CreateUserCommand) (*dto.UserDTO, error) {
	role, ok := authorization.ParseRole(cmd.Role)
	if !ok {
		return nil, errors.NewValidationError("invalid role")
	}
	if len(cmd.Password) < 8 {
		return nil, errors.NewValidationError("password must be at least 8 characters")
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to hash password")
	}

	u, err := user.NewUser(cmd.Email, cmd.Name, hash, role, cmd.SchoolIDs, cmd.AssignedSchoolIDs)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Save(ctx, u); err != nil {
		uc.logger.Errorw("failed to save user", "email", cmd.Email, "error", err)
		return nil, err
	}

	uc.logger.Infow("user created", "user_id", u.ID(), "role", role.String())

	return dto.ToUserDTO(u), nil
}
