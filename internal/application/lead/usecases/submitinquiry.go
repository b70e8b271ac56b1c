package usecases

import (
	"context"
	"fmt"

	"github.com/microcosm-cc/bluemonday"

	"campusdesk/internal/application/lead/dto"
	"campusdesk/internal/domain/lead"
	"campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/goroutine"
	"campusdesk/internal/shared/logger"
)

type SubmitInquiryCommand struct {
	Name       string
	Email      string
	Phone      string
	Subject    string
	Message    string
	SourcePage string
}

// Notifier delivers best-effort outbound mail. Failures are logged, never
// surfaced to the caller.
type Notifier interface {
	Notify(to, subject, body string) error
}

// SubmitInquiryUseCase records a contact-form submission from the public
// site. All free-text fields are stripped of markup before they are stored.
type SubmitInquiryUseCase struct {
	inquiryRepo lead.InquiryRepository
	notifier    Notifier
	sanitizer   *bluemonday.Policy
	logger      logger.Interface
}

func NewSubmitInquiryUseCase(
	inquiryRepo lead.InquiryRepository,
	notifier Notifier,
	logger logger.Interface,
) *SubmitInquiryUseCase {
	return &SubmitInquiryUseCase{
		inquiryRepo: inquiryRepo,
		notifier:    notifier,
		sanitizer:   bluemonday.StrictPolicy(),
		logger:      logger,
	}
}

func (uc *SubmitInquiryUseCase) Execute(ctx context.Context, cmd SubmitInquiryCommand) (*dto.InquiryDTO, error) {
	i, err := lead.NewInquiry(
		uc.sanitizer.Sanitize(cmd.Name),
		cmd.Email,
		uc.sanitizer.Sanitize(cmd.Phone),
		uc.sanitizer.Sanitize(cmd.Subject),
		uc.sanitizer.Sanitize(cmd.Message),
		uc.sanitizer.Sanitize(cmd.SourcePage),
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.inquiryRepo.Save(ctx, i); err != nil {
		uc.logger.Errorw("failed to save inquiry", "email", i.Email(), "error", err)
		return nil, err
	}

	uc.logger.Infow("inquiry received", "inquiry_id", i.ID(), "source_page", i.SourcePage())

	email := i.Email()
	name := i.Name()
	goroutine.SafeGo(uc.logger, "inquiry-ack-email", func() {
		body := fmt.Sprintf("Hello %s,\n\nThanks for reaching out. Our team will get back to you within one business day.", name)
		if err := uc.notifier.Notify(email, "We received your inquiry", body); err != nil {
			uc.logger.Warnw("inquiry acknowledgement email failed", "email", email, "error", err)
		}
	})

	return dto.ToInquiryDTO(i), nil
}
