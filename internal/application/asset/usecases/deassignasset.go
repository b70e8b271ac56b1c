package usecases

import (
	"context"

	"campusdesk/internal/domain/asset"
	"campusdesk/internal/domain/product"
	"campusdesk/internal/shared/logger"
)

type DeassignAssetCommand struct {
	AssetID uint
}

// DeassignAssetUseCase removes a deployment and returns the product to the
// available pool. Deleting an asset and deassigning it are the same
// operation.
type DeassignAssetUseCase struct {
	assetRepo   asset.Repository
	productRepo product.Repository
	txRunner    TransactionRunner
	logger      logger.Interface
}

func NewDeassignAssetUseCase(
	assetRepo asset.Repository,
	productRepo product.Repository,
	txRunner TransactionRunner,
	logger logger.Interface,
) *DeassignAssetUseCase {
	return &DeassignAssetUseCase{
		assetRepo:   assetRepo,
		productRepo: productRepo,
		txRunner:    txRunner,
		logger:      logger,
	}
}

func (uc *DeassignAssetUseCase) Execute(ctx context.Context, cmd DeassignAssetCommand) error {
	err := uc.txRunner.RunInTransaction(ctx, func(txCtx context.Context) error {
		a, err := uc.assetRepo.FindByID(txCtx, cmd.AssetID)
		if err != nil {
			return err
		}

		p, err := uc.productRepo.FindByID(txCtx, a.ProductID())
		if err != nil {
			return err
		}

		if err := uc.assetRepo.Delete(txCtx, a.ID()); err != nil {
			return err
		}

		p.Release()
		return uc.productRepo.Update(txCtx, p)
	})
	if err != nil {
		uc.logger.Errorw("asset deassignment failed", "asset_id", cmd.AssetID, "error", err)
		return err
	}

	uc.logger.Infow("asset deassigned", "asset_id", cmd.AssetID)
	return nil
}
