package activitymock

import (
	"context"

	domain "leadcrm-backend/internal/domain/activity"

	"gorm.io/gorm"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
// An unset LatestByLeadIDFn behaves like a lead with no history.
type Repo struct {
	CreateFn         func(ctx context.Context, a *domain.Activity) error
	GetByIDFn        func(ctx context.Context, id uint64) (*domain.Activity, error)
	LatestByLeadIDFn func(ctx context.Context, leadID uint64) (*domain.Activity, error)
	SaveFn           func(ctx context.Context, a *domain.Activity) error
}

func (m *Repo) Create(ctx context.Context, a *domain.Activity) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, a)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Activity, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) LatestByLeadID(ctx context.Context, leadID uint64) (*domain.Activity, error) {
	if m.LatestByLeadIDFn != nil {
		return m.LatestByLeadIDFn(ctx, leadID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) Save(ctx context.Context, a *domain.Activity) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, a)
	}
	return nil
}
