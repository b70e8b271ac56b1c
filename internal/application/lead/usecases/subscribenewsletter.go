package usecases

import (
	"context"

	"campusdesk/internal/domain/lead"
	"campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
)

type SubscribeNewsletterCommand struct {
	Email string
}

// SubscribeNewsletterUseCase adds an email to the newsletter list. A
// duplicate subscription is a no-op success; a previously unsubscribed
// address is reactivated.
type SubscribeNewsletterUseCase struct {
	subscriptionRepo lead.SubscriptionRepository
	logger           logger.Interface
}

func NewSubscribeNewsletterUseCase(
	subscriptionRepo lead.SubscriptionRepository,
	logger logger.Interface,
) *SubscribeNewsletterUseCase {
	return &SubscribeNewsletterUseCase{
		subscriptionRepo: subscriptionRepo,
		logger:           logger,
	}
}

func (uc *SubscribeNewsletterUseCase) Execute(ctx context.Context, cmd SubscribeNewsletterCommand) error {
	existing, err := uc.subscriptionRepo.FindByEmail(ctx, cmd.Email)
	if err == nil {
		if !existing.Unsubscribed() {
			return nil
		}
		existing.Resubscribe()
		return uc.subscriptionRepo.Update(ctx, existing)
	}
	if !errors.IsNotFoundError(err) {
		return err
	}

	s, err := lead.NewSubscription(cmd.Email)
	if err != nil {
		return errors.NewValidationError(err.Error())
	}

	if err := uc.subscriptionRepo.Save(ctx, s); err != nil {
		// Lost a race with a concurrent subscribe for the same address.
		if errors.IsConflictError(err) {
			return nil
		}
		uc.logger.Errorw("failed to save subscription", "error", err)
		return err
	}

	uc.logger.Infow("newsletter subscription added", "subscription_id", s.ID())
	return nil
}
