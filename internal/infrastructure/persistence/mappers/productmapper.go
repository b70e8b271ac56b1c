package mappers

import (
	"campusdesk/internal/domain/product"
	"campusdesk/internal/infrastructure/persistence/models"
)

// ProductMapper handles the conversion between Product domain entities and persistence models.
type ProductMapper interface {
	ToModel(p *product.Product) *models.ProductModel
	ToDomain(model *models.ProductModel) (*product.Product, error)
}

type ProductMapperImpl struct{}

func NewProductMapper() ProductMapper {
	return &ProductMapperImpl{}
}

func (m *ProductMapperImpl) ToModel(p *product.Product) *models.ProductModel {
	return &models.ProductModel{
		ID:           p.ID(),
		Category:     p.Category(),
		Manufacturer: p.Manufacturer(),
		Model:        p.Model(),
		SerialNumber: p.SerialNumber(),
		PurchaseDate: timeToMillisPtr(p.PurchaseDate()),
		WarrantyEnd:  timeToMillisPtr(p.WarrantyEnd()),
		Status:       p.Status().String(),
		CreatedAt:    p.CreatedAt().UnixMilli(),
		UpdatedAt:    p.UpdatedAt().UnixMilli(),
	}
}

func (m *ProductMapperImpl) ToDomain(model *models.ProductModel) (*product.Product, error) {
	return product.ReconstructProduct(
		model.ID,
		model.Category,
		model.Manufacturer,
		model.Model,
		model.SerialNumber,
		millisToTimePtr(model.PurchaseDate),
		millisToTimePtr(model.WarrantyEnd),
		product.Status(model.Status),
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}
