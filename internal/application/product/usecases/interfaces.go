package usecases

import (
	"context"

	"campusdesk/internal/application/product/dto"
)

type CreateProductExecutor interface {
	Execute(ctx context.Context, cmd CreateProductCommand) (*dto.ProductDTO, error)
}

type UpdateProductExecutor interface {
	Execute(ctx context.Context, cmd UpdateProductCommand) (*dto.ProductDTO, error)
}

type DeleteProductExecutor interface {
	Execute(ctx context.Context, cmd DeleteProductCommand) error
}

type GetProductExecutor interface {
	Execute(ctx context.Context, query GetProductQuery) (*dto.ProductDTO, error)
}

type ListProductsExecutor interface {
	Execute(ctx context.Context, query ListProductsQuery) (*ListProductsResult, error)
}
