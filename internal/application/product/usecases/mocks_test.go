package usecases

import (
	"context"

	"campusdesk/internal/domain/asset"
	"campusdesk/internal/domain/product"
	"campusdesk/internal/shared/logger"
)

type mockProductRepository struct {
	SaveFunc               func(ctx context.Context, p *product.Product) error
	UpdateFunc             func(ctx context.Context, p *product.Product) error
	DeleteFunc             func(ctx context.Context, id uint) error
	FindByIDFunc           func(ctx context.Context, id uint) (*product.Product, error)
	FindBySerialNumberFunc func(ctx context.Context, serial string) (*product.Product, error)
	ListFunc               func(ctx context.Context, filter product.Filter) ([]*product.Product, int64, error)
}

func (m *mockProductRepository) Save(ctx context.Context, p *product.Product) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, p)
	}
	return nil
}

func (m *mockProductRepository) Update(ctx context.Context, p *product.Product) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, p)
	}
	return nil
}

func (m *mockProductRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockProductRepository) FindByID(ctx context.Context, id uint) (*product.Product, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockProductRepository) FindBySerialNumber(ctx context.Context, serial string) (*product.Product, error) {
	if m.FindBySerialNumberFunc != nil {
		return m.FindBySerialNumberFunc(ctx, serial)
	}
	return nil, nil
}

func (m *mockProductRepository) List(ctx context.Context, filter product.Filter) ([]*product.Product, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

type mockAssetRepository struct {
	FindByProductIDFunc func(ctx context.Context, productID uint) (*asset.Asset, error)
}

func (m *mockAssetRepository) Save(ctx context.Context, a *asset.Asset) error   { return nil }
func (m *mockAssetRepository) Update(ctx context.Context, a *asset.Asset) error { return nil }
func (m *mockAssetRepository) Delete(ctx context.Context, id uint) error        { return nil }

func (m *mockAssetRepository) FindByID(ctx context.Context, id uint) (*asset.Asset, error) {
	return nil, nil
}

func (m *mockAssetRepository) FindByProductID(ctx context.Context, productID uint) (*asset.Asset, error) {
	if m.FindByProductIDFunc != nil {
		return m.FindByProductIDFunc(ctx, productID)
	}
	return nil, nil
}

func (m *mockAssetRepository) List(ctx context.Context, filter asset.Filter) ([]*asset.Asset, int64, error) {
	return nil, 0, nil
}

func (m *mockAssetRepository) CountBySchool(ctx context.Context, schoolID uint) (int64, error) {
	return 0, nil
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
