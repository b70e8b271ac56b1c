package product

import "context"

type Filter struct {
	Category *string
	Status   *Status
	Page     int
	PageSize int
}

type Repository interface {
	Save(ctx context.Context, p *Product) error
	Update(ctx context.Context, p *Product) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*Product, error)
	FindBySerialNumber(ctx context.Context, serial string) (*Product, error)
	List(ctx context.Context, filter Filter) ([]*Product, int64, error)
}
