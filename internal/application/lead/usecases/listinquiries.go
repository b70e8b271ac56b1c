package usecases

import (
	"context"

	"campusdesk/internal/application/lead/dto"
	"campusdesk/internal/domain/lead"
	"campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
	"campusdesk/internal/shared/mapper"
)

type ListInquiriesQuery struct {
	Status   string
	Page     int
	PageSize int
}

type ListInquiriesResult struct {
	Inquiries []*dto.InquiryDTO
	Total     int64
}

type ListInquiriesUseCase struct {
	inquiryRepo lead.InquiryRepository
	logger      logger.Interface
}

func NewListInquiriesUseCase(inquiryRepo lead.InquiryRepository, logger logger.Interface) *ListInquiriesUseCase {
	return &ListInquiriesUseCase{
		inquiryRepo: inquiryRepo,
		logger:      logger,
	}
}

func (uc *ListInquiriesUseCase) Execute(ctx context.Context, query ListInquiriesQuery) (*ListInquiriesResult, error) {
	filter := lead.InquiryFilter{
		Page:     query.Page,
		PageSize: query.PageSize,
	}
	if query.Status != "" {
		status := lead.InquiryStatus(query.Status)
		if !status.IsValid() {
			return nil, errors.NewValidationError("invalid status filter")
		}
		filter.Status = &status
	}

	inquiries, total, err := uc.inquiryRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list inquiries", "error", err)
		return nil, err
	}

	dtos := mapper.MapSlice(inquiries, dto.ToInquiryDTO)

	return &ListInquiriesResult{Inquiries: dtos, Total: total}, nil
}
