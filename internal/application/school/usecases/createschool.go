package usecases

import (
	"context"

	"campusdesk/internal/application/school/dto"
	"campusdesk/internal/domain/school"
	"campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
)

type CreateSchoolCommand struct {
	Name         string
	Code         string
	Address      string
	Region       string
	ContactName  string
	ContactEmail string
	ContactPhone string
}

type CreateSchoolUseCase struct {
	schoolRepo school.Repository
	logger     logger.Interface
}

func NewCreateSchoolUseCase(schoolRepo school.Repository, logger logger.Interface) *CreateSchoolUseCase {
	return &CreateSchoolUseCase{
		schoolRepo: schoolRepo,
		logger:     logger,
	}
}

func (uc *CreateSchoolUseCase) Execute(ctx context.Context, cmd CreateSchoolCommand) (*dto.SchoolDTO, error) {
	s, err := school.NewSchool(cmd.Name, cmd.Code, cmd.Address, cmd.Region, school.Contact{
		Name:  cmd.ContactName,
		Email: cmd.ContactEmail,
		Phone: cmd.ContactPhone,
	})
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.schoolRepo.Save(ctx, s); err != nil {
		uc.logger.Errorw("failed to save school", "code", cmd.Code, "error", err)
		return nil, err
	}

	uc.logger.Infow("school created", "school_id", s.ID(), "code", s.Code())

	return dto.ToSchoolDTO(s), nil
}
