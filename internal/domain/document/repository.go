package document

import "context"

type Repository interface {
	CreateBatch(ctx context.Context, rows []*LeadDocument) error
	SoftDelete(ctx context.Context, id, updatedBy uint64) (int64, error)
}
