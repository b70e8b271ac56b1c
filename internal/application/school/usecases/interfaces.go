package usecases

import (
	"context"

	"campusdesk/internal/application/school/dto"
)

type CreateSchoolExecutor interface {
	Execute(ctx context.Context, cmd CreateSchoolCommand) (*dto.SchoolDTO, error)
}

type UpdateSchoolExecutor interface {
	Execute(ctx context.Context, cmd UpdateSchoolCommand) (*dto.SchoolDTO, error)
}

type DeleteSchoolExecutor interface {
	Execute(ctx context.Context, cmd DeleteSchoolCommand) error
}

type GetSchoolExecutor interface {
	Execute(ctx context.Context, query GetSchoolQuery) (*dto.SchoolDetailDTO, error)
}

type ListSchoolsExecutor interface {
	Execute(ctx context.Context, query ListSchoolsQuery) (*ListSchoolsResult, error)
}
