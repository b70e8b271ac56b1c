package dto

import (
	"time"

	"campusdesk/internal/domain/lead"
)

type InquiryDTO struct {
	ID         uint      `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone,omitempty"`
	Subject    string    `json:"subject,omitempty"`
	Message    string    `json:"message"`
	SourcePage string    `json:"source_page,omitempty"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func ToInquiryDTO(i *lead.Inquiry) *InquiryDTO {
	if i == nil {
		return nil
	}
	return &InquiryDTO{
		ID:         i.ID(),
		Name:       i.Name(),
		Email:      i.Email(),
		Phone:      i.Phone(),
		Subject:    i.Subject(),
		Message:    i.Message(),
		SourcePage: i.SourcePage(),
		Status:     i.Status().String(),
		CreatedAt:  i.CreatedAt(),
		UpdatedAt:  i.UpdatedAt(),
	}
}
