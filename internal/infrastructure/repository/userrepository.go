package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"campusdesk/internal/domain/user"
	"campusdesk/internal/infrastructure/persistence/mappers"
	"campusdesk/internal/infrastructure/persistence/models"
	"campusdesk/internal/shared/db"
	"campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/utils"
)

type UserRepository struct {
	db     *gorm.DB
	mapper mappers.UserMapper
}

func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{
		db:     database,
		mapper: mappers.NewUserMapper(),
	}
}

func (r *UserRepository) Save(ctx context.Context, u *user.User) error {
	tx := db.GetTxFromContext(ctx, r.db)

	return tx.Transaction(func(tx *gorm.DB) error {
		model := r.mapper.ToModel(u)
		if err := tx.Create(model).Error; err != nil {
			if errors.IsDuplicateError(err) {
				return errors.NewConflictError("email already exists")
			}
			return fmt.Errorf("failed to save user: %w", err)
		}
		if err := u.SetID(model.ID); err != nil {
			return err
		}
		return r.replaceSchoolRows(tx, u)
	})
}

func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	tx := db.GetTxFromContext(ctx, r.db)

	return tx.Transaction(func(tx *gorm.DB) error {
		model := r.mapper.ToModel(u)
		result := tx.
			Model(&models.UserModel{}).
			Where("id = ?", model.ID).
			Select("email", "name", "password_hash", "role", "status",
				"last_login_at", "updated_at").
			Updates(model)
		if result.Error != nil {
			if errors.IsDuplicateError(result.Error) {
				return errors.NewConflictError("email already exists")
			}
			return fmt.Errorf("failed to update user: %w", result.Error)
		}
		return r.replaceSchoolRows(tx, u)
	})
}

// replaceSchoolRows rewrites both affiliation sets for the user.
func (r *UserRepository) replaceSchoolRows(tx *gorm.DB, u *user.User) error {
	if err := tx.
		Where("user_id = ?", u.ID()).
		Delete(&models.UserSchoolModel{}).Error; err != nil {
		return fmt.Errorf("failed to clear user school links: %w", err)
	}

	rows := r.mapper.ToSchoolModels(u)
	if len(rows) == 0 {
		return nil
	}
	if err := tx.Create(&rows).Error; err != nil {
		return fmt.Errorf("failed to save user school links: %w", err)
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	return tx.Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&models.UserModel{}, id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete user: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return errors.NewNotFoundError("user not found")
		}
		if err := tx.
			Where("user_id = ?", id).
			Delete(&models.UserSchoolModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete user school links: %w", err)
		}
		return nil
	})
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (*user.User, error) {
	var model models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("user not found")
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return r.loadDomain(tx, &model)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	var model models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("email = ?", email).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("user not found")
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}

	return r.loadDomain(tx, &model)
}

func (r *UserRepository) List(ctx context.Context, filter user.Filter) ([]*user.User, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.UserModel{})

	if filter.Role != nil {
		query = query.Where("role = ?", filter.Role.String())
	}
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	p := utils.ValidatePagination(filter.Page, filter.PageSize)

	var rows []models.UserModel
	if err := query.
		Order("id ASC").
		Offset((p.Page - 1) * p.PageSize).
		Limit(p.PageSize).
		Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}

	users := make([]*user.User, 0, len(rows))
	for i := range rows {
		u, err := r.loadDomain(tx, &rows[i])
		if err != nil {
			return nil, 0, err
		}
		users = append(users, u)
	}

	return users, total, nil
}

func (r *UserRepository) loadDomain(tx *gorm.DB, model *models.UserModel) (*user.User, error) {
	var schoolRows []*models.UserSchoolModel
	if err := tx.
		Where("user_id = ?", model.ID).
		Find(&schoolRows).Error; err != nil {
		return nil, fmt.Errorf("failed to load user school links: %w", err)
	}
	return r.mapper.ToDomain(model, schoolRows)
}
