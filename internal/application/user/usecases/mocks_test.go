package usecases

import (
	"context"

	"campusdesk/internal/domain/user"
	"campusdesk/internal/infrastructure/auth"
	"campusdesk/internal/shared/logger"
)

type mockUserRepository struct {
	SaveFunc        func(ctx context.Context, u *user.User) error
	UpdateFunc      func(ctx context.Context, u *user.User) error
	DeleteFunc      func(ctx context.Context, id uint) error
	FindByIDFunc    func(ctx context.Context, id uint) (*user.User, error)
	FindByEmailFunc func(ctx context.Context, email string) (*user.User, error)
	ListFunc        func(ctx context.Context, filter user.Filter) ([]*user.User, int64, error)
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uint) (*user.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepository) List(ctx context.Context, filter user.Filter) ([]*user.User, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

type mockHasher struct {
	HashFunc   func(password string) (string, error)
	VerifyFunc func(password, hash string) error
}

func (m *mockHasher) Hash(password string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(password)
	}
	return "hashed:" + password, nil
}

func (m *mockHasher) Verify(password, hash string) error {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(password, hash)
	}
	return nil
}

type mockTokenIssuer struct {
	GenerateFunc func(userID uint, role string) (*auth.TokenPair, error)
	ValidateFunc func(tokenString, expectedType string) (*auth.Claims, error)
}

func (m *mockTokenIssuer) GenerateTokenPair(userID uint, role string) (*auth.TokenPair, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(userID, role)
	}
	return &auth.TokenPair{AccessToken: "access", RefreshToken: "refresh", ExpiresIn: 900}, nil
}

func (m *mockTokenIssuer) ValidateToken(tokenString, expectedType string) (*auth.Claims, error) {
	if m.ValidateFunc != nil {
		return m.ValidateFunc(tokenString, expectedType)
	}
	return nil, nil
}

type mockLogger struct{}

func (mockLogger) Debug(msg string, args ...any)                     {}
func (mockLogger) Info(msg string, args ...any)                      {}
func (mockLogger) Warn(msg string, args ...any)                      {}
func (mockLogger) Error(msg string, args ...any)                     {}
func (m mockLogger) With(args ...any) logger.Interface               { return m }
func (m mockLogger) Named(name string) logger.Interface              { return m }
func (mockLogger) Debugw(msg string, keysAndValues ...interface{})   {}
func (mockLogger) Infow(msg string, keysAndValues ...interface{})    {}
func (mockLogger) Warnw(msg string, keysAndValues ...interface{})    {}
func (mockLogger) Errorw(msg string, keysAndValues ...interface{})   {}
