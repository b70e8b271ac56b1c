package usecases

import (
	"context"

	"campusdesk/internal/application/school/dto"
	"campusdesk/internal/domain/school"
	"campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
)

type UpdateSchoolCommand struct {
	SchoolID     uint
	Name         string
	Address      string
	Region       string
	ContactName  string
	ContactEmail string
	ContactPhone string
	Status       *string
}

type UpdateSchoolUseCase struct {
	schoolRepo school.Repository
	logger     logger.Interface
}

func NewUpdateSchoolUseCase(schoolRepo school.Repository, logger logger.Interface) *UpdateSchoolUseCase {
	return &UpdateSchoolUseCase{
		schoolRepo: schoolRepo,
		logger:     logger,
	}
}

func (uc *UpdateSchoolUseCase) Execute(ctx context.Context, cmd UpdateSchoolCommand) (*dto.SchoolDTO, error) {
	s, err := uc.schoolRepo.FindByID(ctx, cmd.SchoolID)
	if err != nil {
		return nil, err
	}

	if err := s.UpdateDetails(cmd.Name, cmd.Address, cmd.Region, school.Contact{
		Name:  cmd.ContactName,
		Email: cmd.ContactEmail,
		Phone: cmd.ContactPhone,
	}); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if cmd.Status != nil {
		switch school.Status(*cmd.Status) {
		case school.StatusActive:
			s.Activate()
		case school.StatusInactive:
			s.Deactivate()
		default:
			return nil, errors.NewValidationError("invalid status")
		}
	}

	if err := uc.schoolRepo.Update(ctx, s); err != nil {
		uc.logger.Errorw("failed to update school", "school_id", cmd.SchoolID, "error", err)
		return nil, err
	}

	uc.logger.Infow("school updated", "school_id", s.ID())

	return dto.ToSchoolDTO(s), nil
}
