package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"campusdesk/internal/domain/product"
	"campusdesk/internal/infrastructure/persistence/mappers"
	"campusdesk/internal/infrastructure/persistence/models"
	"campusdesk/internal/shared/db"
	"campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/utils"
)

type ProductRepository struct {
	db     *gorm.DB
	mapper mappers.ProductMapper
}

func NewProductRepository(database *gorm.DB) *ProductRepository {
	return &ProductRepository{
		db:     database,
		mapper: mappers.NewProductMapper(),
	}
}

func (r *ProductRepository) Save(ctx context.Context, p *product.Product) error {
	model := r.mapper.ToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("serial number already exists")
		}
		return fmt.Errorf("failed to save product: %w", err)
	}

	return p.SetID(model.ID)
}

func (r *ProductRepository) Update(ctx context.Context, p *product.Product) error {
	model := r.mapper.ToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)

	// Status must be written even when it transitions back to the zero-ish
	// "available" value, so the update selects its columns explicitly.
	result := tx.
		Model(&models.ProductModel{}).
		Where("id = ?", model.ID).
		Select("category", "manufacturer", "model", "serial_number",
			"purchase_date", "warranty_end", "status", "updated_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update product: %w", result.Error)
	}

	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.ProductModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("product not found")
	}

	return nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id uint) (*product.Product, error) {
	var model models.ProductModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("product not found")
		}
		return nil, fmt.Errorf("failed to find product: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ProductRepository) FindBySerialNumber(ctx context.Context, serial string) (*product.Product, error) {
	var model models.ProductModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("serial_number = ?", serial).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("product not found")
		}
		return nil, fmt.Errorf("failed to find product by serial number: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ProductRepository) List(ctx context.Context, filter product.Filter) ([]*product.Product, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.ProductModel{})

	if filter.Category != nil {
		query = query.Where("category = ?", *filter.Category)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	p := utils.ValidatePagination(filter.Page, filter.PageSize)

	var rows []models.ProductModel
	if err := query.
		Order("id DESC").
		Offset((p.Page - 1) * p.PageSize).
		Limit(p.PageSize).
		Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}

	products := make([]*product.Product, 0, len(rows))
	for i := range rows {
		pr, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, 0, err
		}
		products = append(products, pr)
	}

	return products, total, nil
}
