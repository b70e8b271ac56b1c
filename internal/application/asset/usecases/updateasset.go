package usecases

import (
	"context"

	"campusdesk/internal/application/asset/dto"
	"campusdesk/internal/domain/asset"
	"campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
)

type UpdateAssetCommand struct {
	AssetID   uint
	Status    string
	Condition string
	Location  string
}

type UpdateAssetUseCase struct {
	assetRepo asset.Repository
	logger    logger.Interface
}

func NewUpdateAssetUseCase(assetRepo asset.Repository, logger logger.Interface) *UpdateAssetUseCase {
	return &UpdateAssetUseCase{
		assetRepo: assetRepo,
		logger:    logger,
	}
}

func (uc *UpdateAssetUseCase) Execute(ctx context.Context, cmd UpdateAssetCommand) (*dto.AssetDTO, error) {
	a, err := uc.assetRepo.FindByID(ctx, cmd.AssetID)
	if err != nil {
		return nil, err
	}

	if err := a.UpdateDetails(asset.Status(cmd.Status), cmd.Condition, cmd.Location); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.assetRepo.Update(ctx, a); err != nil {
		uc.logger.Errorw("failed to update asset", "asset_id", cmd.AssetID, "error", err)
		return nil, err
	}

	uc.logger.Infow("asset updated", "asset_id", a.ID(), "status", a.Status().String())

	return dto.ToAssetDTO(a), nil
}
