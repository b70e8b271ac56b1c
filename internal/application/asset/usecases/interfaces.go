package usecases

import (
	"context"

	"campusdesk/internal/application/asset/dto"
)

type AssignAssetExecutor interface {
	Execute(ctx context.Context, cmd AssignAssetCommand) (*dto.AssetDTO, error)
}

type DeassignAssetExecutor interface {
	Execute(ctx context.Context, cmd DeassignAssetCommand) error
}

type UpdateAssetExecutor interface {
	Execute(ctx context.Context, cmd UpdateAssetCommand) (*dto.AssetDTO, error)
}

type GetAssetExecutor interface {
	Execute(ctx context.Context, query GetAssetQuery) (*dto.AssetDTO, error)
}

type ListAssetsExecutor interface {
	Execute(ctx context.Context, query ListAssetsQuery) (*ListAssetsResult, error)
}
