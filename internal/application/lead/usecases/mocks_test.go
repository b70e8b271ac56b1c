package usecases

import (
	"context"

	"campusdesk/internal/domain/lead"
	"campusdesk/internal/shared/logger"
)

type mockInquiryRepository struct {
	SaveFunc     func(ctx context.Context, i *lead.Inquiry) error
	UpdateFunc   func(ctx context.Context, i *lead.Inquiry) error
	FindByIDFunc func(ctx context.Context, id uint) (*lead.Inquiry, error)
	ListFunc     func(ctx context.Context, filter lead.InquiryFilter) ([]*lead.Inquiry, int64, error)
}

func (m *mockInquiryRepository) Save(ctx context.Context, i *lead.Inquiry) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, i)
	}
	return nil
}

func (m *mockInquiryRepository) Update(ctx context.Context, i *lead.Inquiry) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, i)
	}
	return nil
}

func (m *mockInquiryRepository) FindByID(ctx context.Context, id uint) (*lead.Inquiry, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockInquiryRepository) List(ctx context.Context, filter lead.InquiryFilter) ([]*lead.Inquiry, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

type mockSubscriptionRepository struct {
	SaveFunc        func(ctx context.Context, s *lead.Subscription) error
	UpdateFunc      func(ctx context.Context, s *lead.Subscription) error
	FindByEmailFunc func(ctx context.Context, email string) (*lead.Subscription, error)
}

func (m *mockSubscriptionRepository) Save(ctx context.Context, s *lead.Subscription) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, s)
	}
	return nil
}

func (m *mockSubscriptionRepository) Update(ctx context.Context, s *lead.Subscription) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, s)
	}
	return nil
}

func (m *mockSubscriptionRepository) FindByEmail(ctx context.Context, email string) (*lead.Subscription, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, nil
}

type mockNotifier struct {
	NotifyFunc func(to, subject, body string) error
}

func (m *mockNotifier) Notify(to, subject, body string) error {
	if m.NotifyFunc != nil {
		return m.NotifyFunc(to, subject, body)
	}
	return nil
}

type mockLogger struct{}

func (mockLogger) Debug(msg string, args ...any)                   {}
func (mockLogger) Info(msg string, args ...any)                    {}
func (mockLogger) Warn(msg string, args ...any)                    {}
func (mockLogger) Error(msg string, args ...any)                   {}
func (m mockLogger) With(args ...any) logger.Interface             { return m }
func (m mockLogger) Named(name string) logger.Interface            { return m }
func (mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
