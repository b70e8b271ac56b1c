package dto

import (
	"time"

	"campusdesk/internal/domain/user"
)

type UserDTO struct {
	ID                uint       `json:"id"`
	Email             string     `json:"email"`
	Name              string     `json:"name"`
	Role              string     `json:"role"`
	Status            string     `json:"status"`
	SchoolIDs         []uint     `json:"school_ids"`
	AssignedSchoolIDs []uint     `json:"assigned_school_ids"`
	LastLoginAt       *time.Time `json:"last_login_at,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

func ToUserDTO(u *user.User) *UserDTO {
	if u == nil {
		return nil
	}
	return &UserDTO{
		ID:                u.ID(),
		Email:             u.Email(),
		Name:              u.Name(),
		Role:              u.Role().String(),
		Status:            u.Status().String(),
		SchoolIDs:         u.SchoolIDs(),
		AssignedSchoolIDs: u.AssignedSchoolIDs(),
		LastLoginAt:       u.LastLoginAt(),
		CreatedAt:         u.CreatedAt(),
		UpdatedAt:         u.UpdatedAt(),
	}
}
