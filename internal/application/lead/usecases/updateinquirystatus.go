package usecases

import (
	"context"

	"campusdesk/internal/application/lead/dto"
	"campusdesk/internal/domain/lead"
	"campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
)

type UpdateInquiryStatusCommand struct {
	InquiryID uint
	Status    string
}

type UpdateInquiryStatusUseCase struct {
	inquiryRepo lead.InquiryRepository
	logger      logger.Interface
}

func NewUpdateInquiryStatusUseCase(inquiryRepo lead.InquiryRepository, logger logger.Interface) *UpdateInquiryStatusUseCase {
	return &UpdateInquiryStatusUseCase{
		inquiryRepo: inquiryRepo,
		logger:      logger,
	}
}

func (uc *UpdateInquiryStatusUseCase) Execute(ctx context.Context, cmd UpdateInquiryStatusCommand) (*dto.InquiryDTO, error) {
	status := lead.InquiryStatus(cmd.Status)
	if !status.IsValid() {
		return nil, errors.NewValidationError("invalid status")
	}

	i, err := uc.inquiryRepo.FindByID(ctx, cmd.InquiryID)
	if err != nil {
		return nil, err
	}

	if err := i.SetStatus(status); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.inquiryRepo.Update(ctx, i); err != nil {
		uc.logger.Errorw("failed to update inquiry", "inquiry_id", cmd.InquiryID, "error", err)
		return nil, err
	}

	uc.logger.Infow("inquiry status changed", "inquiry_id", i.ID(), "status", i.Status().String())

	return dto.ToInquiryDTO(i), nil
}
