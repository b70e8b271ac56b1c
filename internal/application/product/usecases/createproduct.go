package usecases

import (
	"context"
	"time"

	"campusdesk/internal/application/product/dto"
	"campusdesk/internal/domain/product"
	"campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
)

type CreateProductCommand struct {
	Category     string
	Manufacturer string
	Model        string
	SerialNumber string
	PurchaseDate *time.Time
	WarrantyEnd  *time.Time
}

type CreateProductUseCase struct {
	productRepo product.Repository
	logger      logger.Interface
}

func NewCreateProductUseCase(productRepo product.Repository, logger logger.Interface) *CreateProductUseCase {
	return &CreateProductUseCase{
		productRepo: productRepo,
		logger:      logger,
	}
}

func (uc *CreateProductUseCase) Execute(ctx context.Context, cmd CreateProductCommand) (*dto.ProductDTO, error) {
	p, err := product.NewProduct(cmd.Category, cmd.Manufacturer, cmd.Model, cmd.SerialNumber,
		cmd.PurchaseDate, cmd.WarrantyEnd)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.productRepo.Save(ctx, p); err != nil {
		uc.logger.Errorw("failed to save product", "serial_number", cmd.SerialNumber, "error", err)
		return nil, err
	}

	uc.logger.Infow("product created", "product_id", p.ID(), "category", p.Category())

	return dto.ToProductDTO(p), nil
}
