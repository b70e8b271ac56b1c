package lead

import "context"

type InquiryFilter struct {
	Status   *InquiryStatus
	Page     int
	PageSize int
}

type InquiryRepository interface {
	Save(ctx context.Context, i *Inquiry) error
	Update(ctx context.Context, i *Inquiry) error
	FindByID(ctx context.Context, id uint) (*Inquiry, error)
	List(ctx context.Context, filter InquiryFilter) ([]*Inquiry, int64, error)
}

type SubscriptionRepository interface {
	Save(ctx context.Context, s *Subscription) error
	Update(ctx context.Context, s *Subscription) error
	FindByEmail(ctx context.Context, email string) (*Subscription, error)
}
