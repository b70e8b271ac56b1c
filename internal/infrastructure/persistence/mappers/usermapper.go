package mappers

import (
	"fmt"

	"campusdesk/internal/domain/user"
	"campusdesk/internal/infrastructure/persistence/models"
	"campusdesk/internal/shared/authorization"
)

// UserMapper handles the conversion between User domain entities and persistence models.
type UserMapper interface {
	ToModel(u *user.User) *models.UserModel

	// ToSchoolModels flattens both affiliation sets into join rows.
	ToSchoolModels(u *user.User) []*models.UserSchoolModel

	// ToDomain rebuilds a user from its row plus its join rows.
	ToDomain(model *models.UserModel, schools []*models.UserSchoolModel) (*user.User, error)
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:           u.ID(),
		Email:        u.Email(),
		Name:         u.Name(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
		Status:       u.Status().String(),
		LastLoginAt:  timeToMillisPtr(u.LastLoginAt()),
		CreatedAt:    u.CreatedAt().UnixMilli(),
		UpdatedAt:    u.UpdatedAt().UnixMilli(),
	}
}

func (m *UserMapperImpl) ToSchoolModels(u *user.User) []*models.UserSchoolModel {
	rows := make([]*models.UserSchoolModel, 0, len(u.SchoolIDs())+len(u.AssignedSchoolIDs()))
	for _, schoolID := range u.SchoolIDs() {
		rows = append(rows, &models.UserSchoolModel{
			UserID:   u.ID(),
			SchoolID: schoolID,
			Relation: models.UserSchoolRelationMember,
		})
	}
	for _, schoolID := range u.AssignedSchoolIDs() {
		rows = append(rows, &models.UserSchoolModel{
			UserID:   u.ID(),
			SchoolID: schoolID,
			Relation: models.UserSchoolRelationAssigned,
		})
	}
	return rows
}

func (m *UserMapperImpl) ToDomain(model *models.UserModel, schools []*models.UserSchoolModel) (*user.User, error) {
	role, ok := authorization.ParseRole(model.Role)
	if !ok {
		return nil, fmt.Errorf("unknown role %q (user id=%d)", model.Role, model.ID)
	}

	var schoolIDs, assignedSchoolIDs []uint
	for _, row := range schools {
		switch row.Relation {
		case models.UserSchoolRelationMember:
			schoolIDs = append(schoolIDs, row.SchoolID)
		case models.UserSchoolRelationAssigned:
			assignedSchoolIDs = append(assignedSchoolIDs, row.SchoolID)
		}
	}

	return user.ReconstructUser(
		model.ID,
		model.Email,
		model.Name,
		model.PasswordHash,
		role,
		schoolIDs,
		assignedSchoolIDs,
		user.Status(model.Status),
		millisToTimePtr(model.LastLoginAt),
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}
