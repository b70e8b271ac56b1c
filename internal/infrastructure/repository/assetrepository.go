package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"campusdesk/internal/domain/asset"
	"campusdesk/internal/infrastructure/persistence/mappers"
	"campusdesk/internal/infrastructure/persistence/models"
	"campusdesk/internal/shared/db"
	"campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/utils"
)

type AssetRepository struct {
	db     *gorm.DB
	mapper mappers.AssetMapper
}

func NewAssetRepository(database *gorm.DB) *AssetRepository {
	return &AssetRepository{
		db:     database,
		mapper: mappers.NewAssetMapper(),
	}
}

func (r *AssetRepository) Save(ctx context.Context, a *asset.Asset) error {
	model := r.mapper.ToModel(a)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("product is already deployed")
		}
		return fmt.Errorf("failed to save asset: %w", err)
	}

	return a.SetID(model.ID)
}

func (r *AssetRepository) Update(ctx context.Context, a *asset.Asset) error {
	model := r.mapper.ToModel(a)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.AssetModel{}).
		Where("id = ?", model.ID).
		Select("condition", "location", "status", "updated_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update asset: %w", result.Error)
	}

	return nil
}

func (r *AssetRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.AssetModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete asset: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("asset not found")
	}

	return nil
}

func (r *AssetRepository) FindByID(ctx context.Context, id uint) (*asset.Asset, error) {
	var model models.AssetModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("asset not found")
		}
		return nil, fmt.Errorf("failed to find asset: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *AssetRepository) FindByProductID(ctx context.Context, productID uint) (*asset.Asset, error) {
	var model models.AssetModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("product_id = ?", productID).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("asset not found")
		}
		return nil, fmt.Errorf("failed to find asset by product: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *AssetRepository) List(ctx context.Context, filter asset.Filter) ([]*asset.Asset, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.AssetModel{})

	if filter.SchoolID != nil {
		query = query.Where("school_id = ?", *filter.SchoolID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	query = applySchoolScope(query, "school_id", filter.Restrict, filter.SchoolIDs)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count assets: %w", err)
	}

	p := utils.ValidatePagination(filter.Page, filter.PageSize)

	var rows []models.AssetModel
	if err := query.
		Order("id DESC").
		Offset((p.Page - 1) * p.PageSize).
		Limit(p.PageSize).
		Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list assets: %w", err)
	}

	assets := make([]*asset.Asset, 0, len(rows))
	for i := range rows {
		a, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, 0, err
		}
		assets = append(assets, a)
	}

	return assets, total, nil
}

func (r *AssetRepository) CountBySchool(ctx context.Context, schoolID uint) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.
		Model(&models.AssetModel{}).
		Where("school_id = ?", schoolID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count assets by school: %w", err)
	}
	return count, nil
}
