package usecases

import (
	"context"

	"campusdesk/internal/application/asset/dto"
	"campusdesk/internal/domain/asset"
	"campusdesk/internal/domain/product"
	"campusdesk/internal/domain/school"
	"campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
)

type AssignAssetCommand struct {
	ProductID uint
	SchoolID  uint
	Condition string
	Location  string
}

// TransactionRunner abstracts the transaction manager so usecases can be
// tested without a database.
type TransactionRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// AssignAssetUseCase deploys an available product to a school. The asset
// insert and the product status flip are a single transaction; a concurrent
// assignment of the same product loses on the unique product constraint and
// rolls back.
type AssignAssetUseCase struct {
	assetRepo   asset.Repository
	productRepo product.Repository
	schoolRepo  school.Repository
	txRunner    TransactionRunner
	logger      logger.Interface
}

func NewAssignAssetUseCase(
	assetRepo asset.Repository,
	productRepo product.Repository,
	schoolRepo school.Repository,
	txRunner TransactionRunner,
	logger logger.Interface,
) *AssignAssetUseCase {
	return &AssignAssetUseCase{
		assetRepo:   assetRepo,
		productRepo: productRepo,
		schoolRepo:  schoolRepo,
		txRunner:    txRunner,
		logger:      logger,
	}
}

func (uc *AssignAssetUseCase) Execute(ctx context.Context, cmd AssignAssetCommand) (*dto.AssetDTO, error) {
	if cmd.ProductID == 0 || cmd.SchoolID == 0 {
		return nil, errors.NewValidationError("product ID and school ID are required")
	}

	var created *asset.Asset
	err := uc.txRunner.RunInTransaction(ctx, func(txCtx context.Context) error {
		p, err := uc.productRepo.FindByID(txCtx, cmd.ProductID)
		if err != nil {
			return err
		}
		if !p.IsAvailable() {
			return errors.NewConflictError("product is not available")
		}

		s, err := uc.schoolRepo.FindByID(txCtx, cmd.SchoolID)
		if err != nil {
			return err
		}
		if !s.IsActive() {
			return errors.NewConflictError("school is inactive")
		}

		a, err := asset.NewAsset(p.ID(), s.ID(), p.Category(), cmd.Condition, cmd.Location)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}

		if err := uc.assetRepo.Save(txCtx, a); err != nil {
			return err
		}

		if err := p.MarkAssigned(); err != nil {
			return errors.NewConflictError(err.Error())
		}
		if err := uc.productRepo.Update(txCtx, p); err != nil {
			return err
		}

		created = a
		return nil
	})
	if err != nil {
		uc.logger.Errorw("asset assignment failed",
			"product_id", cmd.ProductID, "school_id", cmd.SchoolID, "error", err)
		return nil, err
	}

	uc.logger.Infow("asset assigned",
		"asset_id", created.ID(), "code", created.Code(),
		"product_id", cmd.ProductID, "school_id", cmd.SchoolID)

	return dto.ToAssetDTO(created), nil
}
