package mappers

import (
	"campusdesk/internal/domain/school"
	"campusdesk/internal/infrastructure/persistence/models"
)

// SchoolMapper handles the conversion between School domain entities and persistence models.
type SchoolMapper interface {
	ToModel(s *school.School) *models.SchoolModel
	ToDomain(model *models.SchoolModel) (*school.School, error)
}

type SchoolMapperImpl struct{}

func NewSchoolMapper() SchoolMapper {
	return &SchoolMapperImpl{}
}

func (m *SchoolMapperImpl) ToModel(s *school.School) *models.SchoolModel {
	return &models.SchoolModel{
		ID:           s.ID(),
		Name:         s.Name(),
		Code:         s.Code(),
		Address:      s.Address(),
		Region:       s.Region(),
		ContactName:  s.Contact().Name,
		ContactEmail: s.Contact().Email,
		ContactPhone: s.Contact().Phone,
		Status:       s.Status().String(),
		CreatedAt:    s.CreatedAt().UnixMilli(),
		UpdatedAt:    s.UpdatedAt().UnixMilli(),
	}
}

func (m *SchoolMapperImpl) ToDomain(model *models.SchoolModel) (*school.School, error) {
	return school.ReconstructSchool(
		model.ID,
		model.Name,
		model.Code,
		model.Address,
		model.Region,
		school.Contact{
			Name:  model.ContactName,
			Email: model.ContactEmail,
			Phone: model.ContactPhone,
		},
		school.Status(model.Status),
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}
