package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"campusdesk/internal/domain/lead"
	"campusdesk/internal/infrastructure/persistence/mappers"
	"campusdesk/internal/infrastructure/persistence/models"
	"campusdesk/internal/shared/db"
	"campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/utils"
)

type InquiryRepository struct {
	db     *gorm.DB
	mapper mappers.LeadMapper
}

func NewInquiryRepository(database *gorm.DB) *InquiryRepository {
	return &InquiryRepository{
		db:     database,
		mapper: mappers.NewLeadMapper(),
	}
}

func (r *InquiryRepository) Save(ctx context.Context, i *lead.Inquiry) error {
	model := r.mapper.InquiryToModel(i)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save inquiry: %w", err)
	}

	return i.SetID(model.ID)
}

func (r *InquiryRepository) Update(ctx context.Context, i *lead.Inquiry) error {
	model := r.mapper.InquiryToModel(i)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.InquiryModel{}).
		Where("id = ?", model.ID).
		Select("status", "updated_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update inquiry: %w", result.Error)
	}

	return nil
}

func (r *InquiryRepository) FindByID(ctx context.Context, id uint) (*lead.Inquiry, error) {
	var model models.InquiryModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("inquiry not found")
		}
		return nil, fmt.Errorf("failed to find inquiry: %w", err)
	}

	return r.mapper.InquiryToDomain(&model)
}

func (r *InquiryRepository) List(ctx context.Context, filter lead.InquiryFilter) ([]*lead.Inquiry, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.InquiryModel{})

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count inquiries: %w", err)
	}

	p := utils.ValidatePagination(filter.Page, filter.PageSize)

	var rows []models.InquiryModel
	if err := query.
		Order("created_at DESC").
		Offset((p.Page - 1) * p.PageSize).
		Limit(p.PageSize).
		Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list inquiries: %w", err)
	}

	inquiries := make([]*lead.Inquiry, 0, len(rows))
	for i := range rows {
		inq, err := r.mapper.InquiryToDomain(&rows[i])
		if err != nil {
			return nil, 0, err
		}
		inquiries = append(inquiries, inq)
	}

	return inquiries, total, nil
}

type SubscriptionRepository struct {
	db     *gorm.DB
	mapper mappers.LeadMapper
}

func NewSubscriptionRepository(database *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{
		db:     database,
		mapper: mappers.NewLeadMapper(),
	}
}

func (r *SubscriptionRepository) Save(ctx context.Context, s *lead.Subscription) error {
	model := r.mapper.SubscriptionToModel(s)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("email already subscribed")
		}
		return fmt.Errorf("failed to save subscription: %w", err)
	}

	return s.SetID(model.ID)
}

func (r *SubscriptionRepository) Update(ctx context.Context, s *lead.Subscription) error {
	model := r.mapper.SubscriptionToModel(s)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.SubscriptionModel{}).
		Where("id = ?", model.ID).
		Select("subscribed_at", "unsubscribed").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update subscription: %w", result.Error)
	}

	return nil
}

func (r *SubscriptionRepository) FindByEmail(ctx context.Context, email string) (*lead.Subscription, error) {
	var model models.SubscriptionModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("email = ?", email).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("subscription not found")
		}
		return nil, fmt.Errorf("failed to find subscription: %w", err)
	}

	return r.mapper.SubscriptionToDomain(&model)
}
