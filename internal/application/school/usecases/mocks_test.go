package usecases

import (
	"context"

	"campusdesk/internal/domain/school"
	"campusdesk/internal/domain/user"
	"campusdesk/internal/shared/logger"
)

type mockSchoolRepository struct {
	SaveFunc             func(ctx context.Context, s *school.School) error
	UpdateFunc           func(ctx context.Context, s *school.School) error
	DeleteFunc           func(ctx context.Context, id uint) error
	FindByIDFunc         func(ctx context.Context, id uint) (*school.School, error)
	FindByCodeFunc       func(ctx context.Context, code string) (*school.School, error)
	ListFunc             func(ctx context.Context, filter school.Filter) ([]*school.School, int64, error)
	CountAssetsFunc      func(ctx context.Context, schoolID uint) (int64, error)
	CountOpenTicketsFunc func(ctx context.Context, schoolID uint) (int64, error)
}

func (m *mockSchoolRepository) Save(ctx context.Context, s *school.School) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, s)
	}
	return nil
}

func (m *mockSchoolRepository) Update(ctx context.Context, s *school.School) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, s)
	}
	return nil
}

func (m *mockSchoolRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockSchoolRepository) FindByID(ctx context.Context, id uint) (*school.School, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockSchoolRepository) FindByCode(ctx context.Context, code string) (*school.School, error) {
	if m.FindByCodeFunc != nil {
		return m.FindByCodeFunc(ctx, code)
	}
	return nil, nil
}

func (m *mockSchoolRepository) List(ctx context.Context, filter school.Filter) ([]*school.School, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockSchoolRepository) CountAssets(ctx context.Context, schoolID uint) (int64, error) {
	if m.CountAssetsFunc != nil {
		return m.CountAssetsFunc(ctx, schoolID)
	}
	return 0, nil
}

func (m *mockSchoolRepository) CountOpenTickets(ctx context.Context, schoolID uint) (int64, error) {
	if m.CountOpenTicketsFunc != nil {
		return m.CountOpenTicketsFunc(ctx, schoolID)
	}
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
