package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusdesk/internal/domain/lead"
	"campusdesk/internal/shared/errors"
)

func TestSubscribeNewsletterUseCase_Execute_NewEmail(t *testing.T) {
	var saved *lead.Subscription
	repo := &mockSubscriptionRepository{
		FindByEmailFunc: func(ctx context.Context, email string) (*lead.Subscription, error) {
			return nil, errors.NewNotFoundError("subscription not found")
		},
		SaveFunc: func(ctx context.Context, s *lead.Subscription) error {
			saved = s
			return nil
		},
	}

	uc := NewSubscribeNewsletterUseCase(repo, mockLogger{})
	err := uc.Execute(context.Background(), SubscribeNewsletterCommand{Email: "news@lincoln.edu"})

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "news@lincoln.edu", saved.Email())
	assert.False(t, saved.Unsubscribed())
}

func TestSubscribeNewsletterUseCase_Execute_DuplicateIsNoOp(t *testing.T) {
	existing, err := lead.ReconstructSubscription(1, "news@lincoln.edu", time.Now(), false)
	require.NoError(t, err)

	repo := &mockSubscriptionRepository{
		FindByEmailFunc: func(ctx context.Context, email string) (*lead.Subscription, error) {
			return existing, nil
		},
		SaveFunc: func(ctx context.Context, s *lead.Subscription) error {
			t.Fatal("duplicate subscription must not be saved again")
			return nil
		},
	}

	uc := NewSubscribeNewsletterUseCase(repo, mockLogger{})
	err = uc.Execute(context.Background(), SubscribeNewsletterCommand{Email: "news@lincoln.edu"})
	require.NoError(t, err)
}

func TestSubscribeNewsletterUseCase_Execute_ReactivatesUnsubscribed(t *testing.T) {
	existing, err := lead.ReconstructSubscription(1, "news@lincoln.edu", time.Now(), true)
	require.NoError(t, err)

	var updated *lead.Subscription
	repo := &mockSubscriptionRepository{
		FindByEmailFunc: func(ctx context.Context, email string) (*lead.Subscription, error) {
			return existing, nil
		},
		UpdateFunc: func(ctx context.Context, s *lead.Subscription) error {
			updated = s
			return nil
		},
	}

	uc := NewSubscribeNewsletterUseCase(repo, mockLogger{})
	err = uc.Execute(context.Background(), SubscribeNewsletterCommand{Email: "news@lincoln.edu"})

	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.False(t, updated.Unsubscribed())
}

func TestSubscribeNewsletterUseCase_Execute_InvalidEmailRejected(t *testing.T) {
	repo := &mockSubscriptionRepository{
		FindByEmailFunc: func(ctx context.Context, email string) (*lead.Subscription, error) {
			return nil, errors.NewNotFoundError("subscription not found")
		},
	}

	uc := NewSubscribeNewsletterUseCase(repo, mockLogger{})
	err := uc.Execute(context.Background(), SubscribeNewsletterCommand{Email: "not-an-email"})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}
