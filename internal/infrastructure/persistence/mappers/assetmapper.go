package mappers

import (
	"campusdesk/internal/domain/asset"
	"campusdesk/internal/infrastructure/persistence/models"
)

// AssetMapper handles the conversion between Asset domain entities and persistence models.
type AssetMapper interface {
	ToModel(a *asset.Asset) *models.AssetModel
	ToDomain(model *models.AssetModel) (*asset.Asset, error)
}

type AssetMapperImpl struct{}

func NewAssetMapper() AssetMapper {
	return &AssetMapperImpl{}
}

func (m *AssetMapperImpl) ToModel(a *asset.Asset) *models.AssetModel {
	return &models.AssetModel{
		ID:           a.ID(),
		Code:         a.Code(),
		ProductID:    a.ProductID(),
		SchoolID:     a.SchoolID(),
		AssignedDate: a.AssignedDate().UnixMilli(),
		Condition:    a.Condition(),
		Location:     a.Location(),
		Status:       a.Status().String(),
		CreatedAt:    a.CreatedAt().UnixMilli(),
		UpdatedAt:    a.UpdatedAt().UnixMilli(),
	}
}

func (m *AssetMapperImpl) ToDomain(model *models.AssetModel) (*asset.Asset, error) {
	return asset.ReconstructAsset(
		model.ID,
		model.Code,
		model.ProductID,
		model.SchoolID,
		millisToTime(model.AssignedDate),
		model.Condition,
		model.Location,
		asset.Status(model.Status),
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}
