package lead

import "context"

type Repository interface {
	Create(ctx context.Context, l *Lead) error
	// CreateEach inserts rows one by one; the result holds one entry per row, nil on success.
	CreateEach(ctx context.Context, leads []*Lead) []error
	GetByID(ctx context.Context, id uint64) (*Lead, error)
	GetByIDForUpdate(ctx context.Context, id uint64) (*Lead, error)
	Save(ctx context.Context, l *Lead) error
}

type InvalidRepository interface {
	CreateBatch(ctx context.Context, rows []*InvalidLead) error
}
