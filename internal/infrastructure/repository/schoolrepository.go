// Package repository implements the domain repository interfaces on GORM.
package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"campusdesk/internal/domain/school"
	"campusdesk/internal/infrastructure/persistence/mappers"
	"campusdesk/internal/infrastructure/persistence/models"
	"campusdesk/internal/shared/db"
	"campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/utils"
)

type SchoolRepository struct {
	db     *gorm.DB
	mapper mappers.SchoolMapper
}

func NewSchoolRepository(database *gorm.DB) *SchoolRepository {
	return &SchoolRepository{
		db:     database,
		mapper: mappers.NewSchoolMapper(),
	}
}

func (r *SchoolRepository) Save(ctx context.Context, s *school.School) error {
	model := r.mapper.ToModel(s)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("school code already exists")
		}
		return fmt.Errorf("failed to save school: %w", err)
	}

	return s.SetID(model.ID)
}

func (r *SchoolRepository) Update(ctx context.Context, s *school.School) error {
	model := r.mapper.ToModel(s)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.SchoolModel{}).
		Where("id = ?", model.ID).
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update school: %w", result.Error)
	}

	return nil
}

func (r *SchoolRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.SchoolModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete school: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("school not found")
	}

	return nil
}

func (r *SchoolRepository) FindByID(ctx context.Context, id uint) (*school.School, error) {
	var model models.SchoolModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("school not found")
		}
		return nil, fmt.Errorf("failed to find school: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *SchoolRepository) FindByCode(ctx context.Context, code string) (*school.School, error) {
	var model models.SchoolModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("code = ?", code).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("school not found")
		}
		return nil, fmt.Errorf("failed to find school by code: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *SchoolRepository) List(ctx context.Context, filter school.Filter) ([]*school.School, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.SchoolModel{})

	if filter.Region != nil {
		query = query.Where("region = ?", *filter.Region)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	query = applySchoolScope(query, "id", filter.Restrict, filter.SchoolIDs)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count schools: %w", err)
	}

	p := utils.ValidatePagination(filter.Page, filter.PageSize)

	var rows []models.SchoolModel
	if err := query.
		Order("name ASC").
		Offset((p.Page - 1) * p.PageSize).
		Limit(p.PageSize).
		Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list schools: %w", err)
	}

	schools := make([]*school.School, 0, len(rows))
	for i := range rows {
		s, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, 0, err
		}
		schools = append(schools, s)
	}

	return schools, total, nil
}

func (r *SchoolRepository) CountAssets(ctx context.Context, schoolID uint) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.
		Model(&models.AssetModel{}).
		Where("school_id = ?", schoolID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count assets: %w", err)
	}
	return count, nil
}

func (r *SchoolRepository) CountOpenTickets(ctx context.Context, schoolID uint) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.
		Model(&models.TicketModel{}).
		Where("school_id = ? AND status NOT IN ?", schoolID, []string{"resolved", "closed"}).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count open tickets: %w", err)
	}
	return count, nil
}

// applySchoolScope narrows a query to the given school set. An empty
// restricted set matches no rows rather than all rows.
func applySchoolScope(query *gorm.DB, column string, restrict bool, schoolIDs []uint) *gorm.DB {
	if !restrict {
		return query
	}
	if len(schoolIDs) == 0 {
		return query.Where("1 = 0")
	}
	return query.Where(column+" IN ?", schoolIDs)
}
