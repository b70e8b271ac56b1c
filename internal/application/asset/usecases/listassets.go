package usecases

import (
	"context"

	"campusdesk/internal/application/asset/dto"
	"campusdesk/internal/domain/asset"
	"campusdesk/internal/domain/user"
	"campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
	"campusdesk/internal/shared/mapper"
)

type ListAssetsQuery struct {
	ActorID  uint
	SchoolID uint
	Status   string
	Page     int
	PageSize int
}

type ListAssetsResult struct {
	Assets []*dto.AssetDTO
	Total  int64
}

type ListAssetsUseCase struct {
	assetRepo asset.Repository
	userRepo  user.Repository
	logger    logger.Interface
}

func NewListAssetsUseCase(
	assetRepo asset.Repository,
	userRepo user.Repository,
	logger logger.Interface,
) *ListAssetsUseCase {
	return &ListAssetsUseCase{
		assetRepo: assetRepo,
		userRepo:  userRepo,
		logger:    logger,
	}
}

func (uc *ListAssetsUseCase) Execute(ctx context.Context, query ListAssetsQuery) (*ListAssetsResult, error) {
	scope, err := resolveScope(ctx, uc.userRepo, query.ActorID)
	if err != nil {
		return nil, err
	}

	filter := asset.Filter{
		Restrict:  !scope.Unrestricted(),
		SchoolIDs: scope.SchoolIDs(),
		Page:      query.Page,
		PageSize:  query.PageSize,
	}
	if query.SchoolID != 0 {
		filter.SchoolID = &query.SchoolID
	}
	if query.Status != "" {
		status := asset.Status(query.Status)
		if !status.IsValid() {
			return nil, errors.NewValidationError("invalid status filter")
		}
		filter.Status = &status
	}

	assets, total, err := uc.assetRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list assets", "error", err)
		return nil, err
	}

	dtos := mapper.MapSlice(assets, dto.ToAssetDTO)

	return &ListAssetsResult{Assets: dtos, Total: total}, nil
}
