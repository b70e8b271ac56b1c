package dto

import (
	"time"

	"campusdesk/internal/domain/product"
)

type ProductDTO struct {
	ID           uint       `json:"id"`
	Category     string     `json:"category"`
	Manufacturer string     `json:"manufacturer"`
	Model        string     `json:"model"`
	SerialNumber string     `json:"serial_number"`
	PurchaseDate *time.Time `json:"purchase_date,omitempty"`
	WarrantyEnd  *time.Time `json:"warranty_end,omitempty"`
	Status       string     `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func ToProductDTO(p *product.Product) *ProductDTO {
	if p == nil {
		return nil
	}
	return &ProductDTO{
		ID:           p.ID(),
		Category:     p.Category(),
		Manufacturer: p.Manufacturer(),
		Model:        p.Model(),
		SerialNumber: p.SerialNumber(),
		PurchaseDate: p.PurchaseDate(),
		WarrantyEnd:  p.WarrantyEnd(),
		Status:       p.Status().String(),
		CreatedAt:    p.CreatedAt(),
		UpdatedAt:    p.UpdatedAt(),
	}
}
