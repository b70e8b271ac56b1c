package usecases

import (
	"context"

	"campusdesk/internal/application/school/dto"
	"campusdesk/internal/domain/school"
	"campusdesk/internal/domain/user"
	"campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
	"campusdesk/internal/shared/mapper"
)

type ListSchoolsQuery struct {
	ActorID  uint
	Region   string
	Status   string
	Page     int
	PageSize int
}

type ListSchoolsResult struct {
	Schools []*dto.SchoolDTO
	Total   int64
}

type ListSchoolsUseCase struct {
	schoolRepo school.Repository
	userRepo   user.Repository
	logger     logger.Interface
}

func NewListSchoolsUseCase(
	schoolRepo school.Repository,
	userRepo user.Repository,
	logger logger.Interface,
) *ListSchoolsUseCase {
	return &ListSchoolsUseCase{
		schoolRepo: schoolRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

func (uc *ListSchoolsUseCase) Execute(ctx context.Context, query ListSchoolsQuery) (*ListSchoolsResult, error) {
	scope, err := resolveScope(ctx, uc.userRepo, query.ActorID)
	if err != nil {
		return nil, err
	}

	filter := school.Filter{
		Restrict:  !scope.Unrestricted(),
		SchoolIDs: scope.SchoolIDs(),
		Page:      query.Page,
		PageSize:  query.PageSize,
	}
	if query.Region != "" {
		filter.Region = &query.Region
	}
	if query.Status != "" {
		status := school.Status(query.Status)
		if !status.IsValid() {
			return nil, errors.NewValidationError("invalid status filter")
		}
		filter.Status = &status
	}

	schools, total, err := uc.schoolRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list schools", "error", err)
		return nil, err
	}

	dtos := mapper.MapSlice(schools, dto.ToSchoolDTO)

	return &ListSchoolsResult{Schools: dtos, Total: total}, nil
}
