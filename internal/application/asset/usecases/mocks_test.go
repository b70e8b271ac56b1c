package usecases

import (
	"context"

	"campusdesk/internal/domain/asset"
	"campusdesk/internal/domain/product"
	"campusdesk/internal/domain/school"
	"campusdesk/internal/domain/user"
	"campusdesk/internal/shared/logger"
)

type mockAssetRepository struct {
	SaveFunc            func(ctx context.Context, a *asset.Asset) error
	UpdateFunc          func(ctx context.Context, a *asset.Asset) error
	DeleteFunc          func(ctx context.Context, id uint) error
	FindByIDFunc        func(ctx context.Context, id uint) (*asset.Asset, error)
	FindByProductIDFunc func(ctx context.Context, productID uint) (*asset.Asset, error)
	ListFunc            func(ctx context.Context, filter asset.Filter) ([]*asset.Asset, int64, error)
}

func (m *mockAssetRepository) Save(ctx context.Context, a *asset.Asset) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, a)
	}
	return nil
}

func (m *mockAssetRepository) Update(ctx context.Context, a *asset.Asset) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, a)
	}
	return nil
}

func (m *mockAssetRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockAssetRepository) FindByID(ctx context.Context, id uint) (*asset.Asset, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockAssetRepository) FindByProductID(ctx context.Context, productID uint) (*asset.Asset, error) {
	if m.FindByProductIDFunc != nil {
		return m.FindByProductIDFunc(ctx, productID)
	}
	return nil, nil
}

func (m *mockAssetRepository) List(ctx context.Context, filter asset.Filter) ([]*asset.Asset, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockAssetRepository) CountBySchool(ctx context.Context, schoolID uint) (int64, error) {
	return 0, nil
}

type mockProductRepository struct {
	FindByIDFunc func(ctx context.Context, id uint) (*product.Product, error)
	UpdateFunc   func(ctx context.Context, p *product.Product) error
}

func (m *mockProductRepository) Save(ctx context.Context, p *product.Product) error { return nil }

func (m *mockProductRepository) Update(ctx context.Context, p *product.Product) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, p)
	}
	return nil
}

func (m *mockProductRepository) Delete(ctx context.Context, id uint) error { return nil }

func (m *mockProductRepository) FindByID(ctx context.Context, id uint) (*product.Product, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockProductRepository) FindBySerialNumber(ctx context.Context, serial string) (*product.Product, error) {
	return nil, nil
}

func (m *mockProductRepository) List(ctx context.Context, filter product.Filter) ([]*product.Product, int64, error) {
	return nil, 0, nil
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

// mockTxRunner executes the function inline so transactional usecases can be
// tested without a database.
type mockTxRunner struct{}

func (mockTxRunner) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
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
