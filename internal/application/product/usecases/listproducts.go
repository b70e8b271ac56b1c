package usecases

import (
	"context"

	"campusdesk/internal/application/product/dto"
	"campusdesk/internal/domain/product"
	"campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
	"campusdesk/internal/shared/mapper"
)

type ListProductsQuery struct {
	Category string
	Status   string
	Page     int
	PageSize int
}

type ListProductsResult struct {
	Products []*dto.ProductDTO
	Total    int64
}

type ListProductsUseCase struct {
	productRepo product.Repository
	logger      logger.Interface
}

func NewListProductsUseCase(productRepo product.Repository, logger logger.Interface) *ListProductsUseCase {
	return &ListProductsUseCase{
		productRepo: productRepo,
		logger:      logger,
	}
}

func (uc *ListProductsUseCase) Execute(ctx context.Context, query ListProductsQuery) (*ListProductsResult, error) {
	filter := product.Filter{
		Page:     query.Page,
		PageSize: query.PageSize,
	}
	if query.Category != "" {
		filter.Category = &query.Category
	}
	if query.Status != "" {
		status := product.Status(query.Status)
		if !status.IsValid() {
			return nil, errors.NewValidationError("invalid status filter")
		}
		filter.Status = &status
	}

	products, total, err := uc.productRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list products", "error", err)
		return nil, err
	}

	dtos := mapper.MapSlice(products, dto.ToProductDTO)

	return &ListProductsResult{Products: dtos, Total: total}, nil
}
