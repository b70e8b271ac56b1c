package usecases

import (
	"context"

	"campusdesk/internal/application/product/dto"
	"campusdesk/internal/domain/product"
	"campusdesk/internal/shared/logger"
)

type GetProductQuery struct {
	ProductID uint
}

type GetProductUseCase struct {
	productRepo product.Repository
	logger      logger.Interface
}

func NewGetProductUseCase(productRepo product.Repository, logger logger.Interface) *GetProductUseCase {
	return &GetProductUseCase{
		productRepo: productRepo,
		logger:      logger,
	}
}

func (uc *GetProductUseCase) Execute(ctx context.Context, query GetProductQuery) (*dto.ProductDTO, error) {
	p, err := uc.productRepo.FindByID(ctx, query.ProductID)
	if err != nil {
		return nil, err
	}
	return dto.ToProductDTO(p), nil
}
