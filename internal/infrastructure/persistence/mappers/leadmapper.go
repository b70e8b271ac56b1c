package mappers

import (
	"campusdesk/internal/domain/lead"
	"campusdesk/internal/infrastructure/persistence/models"
)

// LeadMapper handles the conversion between lead capture entities and persistence models.
type LeadMapper interface {
	InquiryToModel(i *lead.Inquiry) *models.InquiryModel
	InquiryToDomain(model *models.InquiryModel) (*lead.Inquiry, error)
	SubscriptionToModel(s *lead.Subscription) *models.SubscriptionModel
	SubscriptionToDomain(model *models.SubscriptionModel) (*lead.Subscription, error)
}

type LeadMapperImpl struct{}

func NewLeadMapper() LeadMapper {
	return &LeadMapperImpl{}
}

func (m *LeadMapperImpl) InquiryToModel(i *lead.Inquiry) *models.InquiryModel {
	return &models.InquiryModel{
		ID:         i.ID(),
		Name:       i.Name(),
		Email:      i.Email(),
		Phone:      i.Phone(),
		Subject:    i.Subject(),
		Message:    i.Message(),
		SourcePage: i.SourcePage(),
		Status:     i.Status().String(),
		CreatedAt:  i.CreatedAt().UnixMilli(),
		UpdatedAt:  i.UpdatedAt().UnixMilli(),
	}
}

func (m *LeadMapperImpl) InquiryToDomain(model *models.InquiryModel) (*lead.Inquiry, error) {
	return lead.ReconstructInquiry(
		model.ID,
		model.Name,
		model.Email,
		model.Phone,
		model.Subject,
		model.Message,
		model.SourcePage,
		lead.InquiryStatus(model.Status),
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}

func (m *LeadMapperImpl) SubscriptionToModel(s *lead.Subscription) *models.SubscriptionModel {
	return &models.SubscriptionModel{
		ID:           s.ID(),
		Email:        s.Email(),
		SubscribedAt: s.SubscribedAt().UnixMilli(),
		Unsubscribed: s.Unsubscribed(),
	}
}

func (m *LeadMapperImpl) SubscriptionToDomain(model *models.SubscriptionModel) (*lead.Subscription, error) {
	return lead.ReconstructSubscription(
		model.ID,
		model.Email,
		millisToTime(model.SubscribedAt),
		model.Unsubscribed,
	)
}
