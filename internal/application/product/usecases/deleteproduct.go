package usecases

import (
	"context"

	"campusdesk/internal/domain/asset"
	"campusdesk/internal/domain/product"
	"campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
)

type DeleteProductCommand struct {
	ProductID uint
}

type DeleteProductUseCase struct {
	productRepo product.Repository
	assetRepo   asset.Repository
	logger      logger.Interface
}

func NewDeleteProductUseCase(
	productRepo product.Repository,
	assetRepo asset.Repository,
	logger logger.Interface,
) *DeleteProductUseCase {
	return &DeleteProductUseCase{
		productRepo: productRepo,
		assetRepo:   assetRepo,
		logger:      logger,
	}
}

// Execute deletes a product from inventory. Refused while the product is
// deployed; the asset must be deassigned first.
func (uc *DeleteProductUseCase) Execute(ctx context.Context, cmd DeleteProductCommand) error {
	if _, err := uc.productRepo.FindByID(ctx, cmd.ProductID); err != nil {
		return err
	}

	if _, err := uc.assetRepo.FindByProductID(ctx, cmd.ProductID); err == nil {
		return errors.NewConflictError("product is deployed as an asset")
	} else if !errors.IsNotFoundError(err) {
		return err
	}

	if err := uc.productRepo.Delete(ctx, cmd.ProductID); err != nil {
		return err
	}

	uc.logger.Infow("product deleted", "product_id", cmd.ProductID)
	return nil
}
