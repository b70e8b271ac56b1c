package dto

import (
	"time"

	"campusdesk/internal/domain/school"
)

type ContactDTO struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type SchoolDTO struct {
	ID        uint       `json:"id"`
	Name      string     `json:"name"`
	Code      string     `json:"code"`
	Address   string     `json:"address"`
	Region    string     `json:"region"`
	Contact   ContactDTO `json:"contact"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// SchoolDetailDTO adds the counters computed at read time.
type SchoolDetailDTO struct {
	SchoolDTO
	AssetCount      int64 `json:"asset_count"`
	OpenTicketCount int64 `json:"open_ticket_count"`
}

func ToSchoolDTO(s *school.School) *SchoolDTO {
	if s == nil {
		return nil
	}
	return &SchoolDTO{
		ID:      s.ID(),
		Name:    s.Name(),
		Code:    s.Code(),
		Address: s.Address(),
		Region:  s.Region(),
		Contact: ContactDTO{
			Name:  s.Contact().Name,
			Email: s.Contact().Email,
			Phone: s.Contact().Phone,
		},
		Status:    s.Status().String(),
		CreatedAt: s.CreatedAt(),
		UpdatedAt: s.UpdatedAt(),
	}
}
