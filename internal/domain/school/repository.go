package school

import "context"

// Filter narrows school listings. When Restrict is set the listing is
// limited to SchoolIDs; an empty restricted set matches no rows.
type Filter struct {
	Region    *string
	Status    *Status
	Restrict  bool
	SchoolIDs []uint
	Page      int
	PageSize  int
}

type Repository interface {
	Save(ctx context.Context, s *School) error
	Update(ctx context.Context, s *School) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*School, error)
	FindByCode(ctx context.Context, code string) (*School, error)
	List(ctx context.Context, filter Filter) ([]*School, int64, error)
	// CountAssets and CountOpenTickets back the computed aggregates exposed
	// on school detail responses.
	CountAssets(ctx context.Context, schoolID uint) (int64, error)
	CountOpenTickets(ctx context.Context, schoolID uint) (int64, error)
}
