package dto

import (
	"time"

	"campusdesk/internal/domain/asset"
)

type AssetDTO struct {
	ID           uint      `json:"id"`
	Code         string    `json:"code"`
	ProductID    uint      `json:"product_id"`
	SchoolID     uint      `json:"school_id"`
	AssignedDate time.Time `json:"assigned_date"`
	Condition    string    `json:"condition"`
	Location     string    `json:"location"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func ToAssetDTO(a *asset.Asset) *AssetDTO {
	if a == nil {
		return nil
	}
	return &AssetDTO{
		ID:           a.ID(),
		Code:         a.Code(),
		ProductID:    a.ProductID(),
		SchoolID:     a.SchoolID(),
		AssignedDate: a.AssignedDate(),
		Condition:    a.Condition(),
		Location:     a.Location(),
		Status:       a.Status().String(),
		CreatedAt:    a.CreatedAt(),
		UpdatedAt:    a.UpdatedAt(),
	}
}
