package customer

import "context"

type CustomerFilter struct {
	// Search matches against name and company name.
	Search   string
	Page     int
	PageSize int
}

type CustomerRepository interface {
	Save(ctx context.Context, c *Customer) error
	Update(ctx context.Context, c *Customer) error
	Delete(ctx context.Context, customerID uint) error
	FindByID(ctx context.Context, customerID uint) (*Customer, error)
	// FindExistingIDs returns the subset of the given customer IDs that
	// exist, for bulk referential checks during report writes.
	FindExistingIDs(ctx context.Context, ids []uint) ([]uint, error)
	List(ctx context.Context, filter CustomerFilter) ([]*Customer, int64, error)
}
