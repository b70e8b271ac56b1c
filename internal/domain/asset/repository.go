package asset

import "context"

// Filter narrows asset listings. When Restrict is set the listing is limited
// to SchoolIDs; an empty restricted set matches no rows.
type Filter struct {
	SchoolID  *uint
	Status    *Status
	Restrict  bool
	SchoolIDs []uint
	Page      int
	PageSize  int
}

type Repository interface {
	Save(ctx context.Context, a *Asset) error
	Update(ctx context.Context, a *Asset) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*Asset, error)
	FindByProductID(ctx context.Context, productID uint) (*Asset, error)
	List(ctx context.Context, filter Filter) ([]*Asset, int64, error)
	CountBySchool(ctx context.Context, schoolID uint) (int64, error)
}
