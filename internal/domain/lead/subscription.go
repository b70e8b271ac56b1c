package lead

import (
	"fmt"
	"strings"
	"time"
)

// Subscription is a newsletter signup. Emails are unique; re-subscribing an
// existing address is a no-op success at the usecase level.
type Subscription struct {
	id           uint
	email        string
	subscribedAt time.Time
	unsubscribed bool
}

func NewSubscription(email string) (*Subscription, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if len(email) == 0 || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("a valid email is required")
	}

	return &Subscription{
		email:        email,
		subscribedAt: time.Now(),
	}, nil
}

func ReconstructSubscription(id uint, email string, subscribedAt time.Time, unsubscribed bool) (*Subscription, error) {
	if id == 0 {
		return nil, fmt.Errorf("subscription ID cannot be zero")
	}
	if len(email) == 0 {
		return nil, fmt.Errorf("email is required")
	}

	return &Subscription{
		id:           id,
		email:        email,
		subscribedAt: subscribedAt,
		unsubscribed: unsubscribed,
	}, nil
}

func (s *Subscription) ID() uint                { return s.id }
func (s *Subscription) Email() string           { return s.email }
func (s *Subscription) SubscribedAt() time.Time { return s.subscribedAt }
func (s *Subscription) Unsubscribed() bool      { return s.unsubscribed }

func (s *Subscription) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("subscription ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("subscription ID cannot be zero")
	}
	s.id = id
	return nil
}

// Resubscribe reactivates a previously unsubscribed address.
func (s *Subscription) Resubscribe() {
	s.unsubscribed = false
	s.subscribedAt = time.Now()
}

func (s *Subscription) Unsubscribe() {
	s.unsubscribed = true
}
