package usecases

import (
	"context"

	"campusdesk/internal/application/user/dto"
	"campusdesk/internal/domain/user"
	"campusdesk/internal/shared/authorization"
	"campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
	"campusdesk/internal/shared/mapper"
)

type ListUsersQuery struct {
	Role     string
	Status   string
	Page     int
	PageSize int
}

type ListUsersResult struct {
	Users []*dto.UserDTO
	Total int64
}

type ListUsersUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewListUsersUseCase(userRepo user.Repository, logger logger.Interface) *ListUsersUseCase {
	return &ListUsersUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context, query ListUsersQuery) (*ListUsersResult, error) {
	filter := user.Filter{
		Page:     query.Page,
		PageSize: query.PageSize,
	}

	if query.Role != "" {
		role, ok := authorization.ParseRole(query.Role)
		if !ok {
			return nil, errors.NewValidationError("invalid role filter")
		}
		filter.Role = &role
	}
	if query.Status != "" {
		status := user.Status(query.Status)
		if !status.IsValid() {
			return nil, errors.NewValidationError("invalid status filter")
		}
		filter.Status = &status
	}

	users, total, err := uc.userRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list users", "error", err)
		return nil, err
	}

	dtos := mapper.MapSlice(users, dto.ToUserDTO)

	return &ListUsersResult{Users: dtos, Total: total}, nil
}
