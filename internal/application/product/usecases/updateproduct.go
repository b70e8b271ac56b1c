package usecases

import (
	"context"
	"time"

	"campusdesk/internal/application/product/dto"
	"campusdesk/internal/domain/product"
	"campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
)

type UpdateProductCommand struct {
	ProductID    uint
	Category     string
	Manufacturer string
	Model        string
	PurchaseDate *time.Time
	WarrantyEnd  *time.Time
	// Retire moves the product out of circulation. The available/assigned
	// states are owned by the asset lifecycle and cannot be set here.
	Retire bool
}

type UpdateProductUseCase struct {
	productRepo product.Repository
	logger      logger.Interface
}

func NewUpdateProductUseCase(productRepo product.Repository, logger logger.Interface) *UpdateProductUseCase {
	return &UpdateProductUseCase{
		productRepo: productRepo,
		logger:      logger,
	}
}

func (uc *UpdateProductUseCase) Execute(ctx context.Context, cmd UpdateProductCommand) (*dto.ProductDTO, error) {
	p, err := uc.productRepo.FindByID(ctx, cmd.ProductID)
	if err != nil {
		return nil, err
	}

	if err := p.UpdateDetails(cmd.Category, cmd.Manufacturer, cmd.Model, cmd.PurchaseDate, cmd.WarrantyEnd); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if cmd.Retire {
		if err := p.Retire(); err != nil {
			return nil, errors.NewConflictError(err.Error())
		}
	}

	if err := uc.productRepo.Update(ctx, p); err != nil {
		uc.logger.Errorw("failed to update product", "product_id", cmd.ProductID, "error", err)
		return nil, err
	}

	uc.logger.Infow("product updated", "product_id", p.ID())

	return dto.ToProductDTO(p), nil
}
