package activity

import "context"

type Repository interface {
	Create(ctx context.Context, a *Activity) error
	GetByID(ctx context.Context, id uint64) (*Activity, error)
	// LatestByLeadID returns gorm.ErrRecordNotFound when the lead has no activity yet.
	LatestByLeadID(ctx context.Context, leadID uint64) (*Activity, error)
	Save(ctx context.Context, a *Activity) error
}
