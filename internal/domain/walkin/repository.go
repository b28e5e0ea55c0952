package walkin

import "context"

type Repository interface {
	Create(ctx context.Context, w *WalkIn) error
	GetByID(ctx context.Context, id uint64) (*WalkIn, error)
	GetByIDForUpdate(ctx context.Context, id uint64) (*WalkIn, error)
	Save(ctx context.Context, w *WalkIn) error
}
