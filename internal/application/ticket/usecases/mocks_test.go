package usecases

import (
	"context"

	"campusdesk/internal/domain/asset"
	"campusdesk/internal/domain/school"
	"campusdesk/internal/domain/ticket"
	"campusdesk/internal/domain/user"
	"campusdesk/internal/shared/logger"
)

type mockTicketRepository struct {
	SaveFunc          func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc        func(ctx context.Context, t *ticket.Ticket) error
	FindByIDFunc      func(ctx context.Context, id uint) (*ticket.Ticket, error)
	ListFunc          func(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, int64, error)
	CountByStatusFunc func(ctx context.Context, filter ticket.Filter) ([]ticket.StatusCount, error)
	CountOverdueFunc  func(ctx context.Context, filter ticket.Filter) (int64, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Delete(ctx context.Context, id uint) error { return nil }

func (m *mockTicketRepository) FindByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTicketRepository) FindByNumber(ctx context.Context, number string) (*ticket.Ticket, error) {
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockTicketRepository) CountByStatus(ctx context.Context, filter ticket.Filter) ([]ticket.StatusCount, error) {
	if m.CountByStatusFunc != nil {
		return m.CountByStatusFunc(ctx, filter)
	}
	return nil, nil
}

func (m *mockTicketRepository) CountOverdue(ctx context.Context, filter ticket.Filter) (int64, error) {
	if m.CountOverdueFunc != nil {
		return m.CountOverdueFunc(ctx, filter)
	}
	return 0, nil
}

func (m *mockTicketRepository) CountOpenBySchool(ctx context.Context, schoolID uint) (int64, error) {
	return 0, nil
}

type mockSchoolRepository struct {
	FindByIDFunc func(ctx context.Context, id uint) (*school.School, error)
}

func (m *mockSchoolRepository) Save(ctx context.Context, s *school.School) error   { return nil }
func (m *mockSchoolRepository) Update(ctx context.Context, s *school.School) error { return nil }
func (m *mockSchoolRepository) Delete(ctx context.Context, id uint) error          { return nil }

func (m *mockSchoolRepository) FindByID(ctx context.Context, id uint) (*school.School, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockSchoolRepository) FindByCode(ctx context.Context, code string) (*school.School, error) {
	return nil, nil
}

func (m *mockSchoolRepository) List(ctx context.Context, filter school.Filter) ([]*school.School, int64, error) {
	return nil, 0, nil
}

func (m *mockSchoolRepository) CountAssets(ctx context.Context, schoolID uint) (int64, error) {
	return 0, nil
}

func (m *mockSchoolRepository) CountOpenTickets(ctx context.Context, schoolID uint) (int64, error) {
	return 0, nil
}

type mockAssetRepository struct {
	FindByIDFunc func(ctx context.Context, id uint) (*asset.Asset, error)
}

func (m *mockAssetRepository) Save(ctx context.Context, a *asset.Asset) error   { return nil }
func (m *mockAssetRepository) Update(ctx context.Context, a *asset.Asset) error { return nil }
func (m *mockAssetRepository) Delete(ctx context.Context, id uint) error        { return nil }

func (m *mockAssetRepository) FindByID(ctx context.Context, id uint) (*asset.Asset, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockAssetRepository) FindByProductID(ctx context.Context, productID uint) (*asset.Asset, error) {
	return nil, nil
}

func (m *mockAssetRepository) List(ctx context.Context, filter asset.Filter) ([]*asset.Asset, int64, error) {
	return nil, 0, nil
}

func (m *mockAssetRepository) CountBySchool(ctx context.Context, schoolID uint) (int64, error) {
	return 0, nil
}

type mockUserRepository struct {
	FindByIDFunc func(ctx context.Context, id uint) (*user.User, error)
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error   { return nil }
func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error { return nil }
func (m *mockUserRepository) Delete(ctx context.Context, id uint) error      { return nil }

func (m *mockUserRepository) FindByID(ctx context.Context, id uint) (*user.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	return nil, nil
}

func (m *mockUserRepository) List(ctx context.Context, filter user.Filter) ([]*user.User, int64, error) {
	return nil, 0, nil
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
