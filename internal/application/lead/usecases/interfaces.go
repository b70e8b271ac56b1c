package usecases

import (
	"context"

	"campusdesk/internal/application/lead/dto"
)

type SubmitInquiryExecutor interface {
	Execute(ctx context.Context, cmd SubmitInquiryCommand) (*dto.InquiryDTO, error)
}

type SubscribeNewsletterExecutor interface {
	Execute(ctx context.Context, cmd SubscribeNewsletterCommand) error
}

type ListInquiriesExecutor interface {
	Execute(ctx context.Context, query ListInquiriesQuery) (*ListInquiriesResult, error)
}

type UpdateInquiryStatusExecutor interface {
	Execute(ctx context.Context, cmd UpdateInquiryStatusCommand) (*dto.InquiryDTO, error)
}
