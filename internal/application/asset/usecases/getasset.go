package usecases

import (
	"context"

	"campusdesk/internal/application/asset/dto"
	"campusdesk/internal/domain/asset"
	"campusdesk/internal/domain/user"
	"campusdesk/internal/shared/authorization"
	"campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
)

type GetAssetQuery struct {
	AssetID uint
	ActorID uint
}

type GetAssetUseCase struct {
	assetRepo asset.Repository
	userRepo  user.Repository
	logger    logger.Interface
}

func NewGetAssetUseCase(
	assetRepo asset.Repository,
	userRepo user.Repository,
	logger logger.Interface,
) *GetAssetUseCase {
	return &GetAssetUseCase{
		assetRepo: assetRepo,
		userRepo:  userRepo,
		logger:    logger,
	}
}

// Execute returns the asset when the actor's scope covers its school;
// out-of-scope assets read as not found.
func (uc *GetAssetUseCase) Execute(ctx context.Context, query GetAssetQuery) (*dto.AssetDTO, error) {
	a, err := uc.assetRepo.FindByID(ctx, query.AssetID)
	if err != nil {
		return nil, err
	}

	scope, err := resolveScope(ctx, uc.userRepo, query.ActorID)
	if err != nil {
		return nil, err
	}
	if !scope.Allows(a.SchoolID()) {
		return nil, errors.NewNotFoundError("asset not found")
	}

	return dto.ToAssetDTO(a), nil
}

func resolveScope(ctx context.Context, userRepo user.Repository, actorID uint) (authorization.Scope, error) {
	actor, err := userRepo.FindByID(ctx, actorID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return authorization.Scope{}, errors.NewUnauthorizedError("account no longer exists")
		}
		return authorization.Scope{}, err
	}
	return authorization.ScopeForUser(actor), nil
}
