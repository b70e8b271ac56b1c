package usecases

import (
	"context"

	"campusdesk/internal/domain/school"
	"campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
)

type DeleteSchoolCommand struct {
	SchoolID uint
}

type DeleteSchoolUseCase struct {
	schoolRepo school.Repository
	logger     logger.Interface
}

func NewDeleteSchoolUseCase(schoolRepo school.Repository, logger logger.Interface) *DeleteSchoolUseCase {
	return &DeleteSchoolUseCase{
		schoolRepo: schoolRepo,
		logger:     logger,
	}
}

// Execute deletes a school. Refused while assets are deployed there or
// tickets remain open; those must be cleaned up or closed first.
func (uc *DeleteSchoolUseCase) Execute(ctx context.Context, cmd DeleteSchoolCommand) error {
	if _, err := uc.schoolRepo.FindByID(ctx, cmd.SchoolID); err != nil {
		return err
	}

	assetCount, err := uc.schoolRepo.CountAssets(ctx, cmd.SchoolID)
	if err != nil {
		return err
	}
	if assetCount > 0 {
		return errors.NewConflictError("school still has deployed assets")
	}

	openTickets, err := uc.schoolRepo.CountOpenTickets(ctx, cmd.SchoolID)
	if err != nil {
		return err
	}
	if openTickets > 0 {
		return errors.NewConflictError("school still has open tickets")
	}

	if err := uc.schoolRepo.Delete(ctx, cmd.SchoolID); err != nil {
		return err
	}

	uc.logger.Infow("school deleted", "school_id", cmd.SchoolID)
	return nil
}
