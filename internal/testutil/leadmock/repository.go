package leadmock

import (
	"context"

	domain "leadcrm-backend/internal/domain/lead"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
// Unset reads return context.Canceled; unset writes succeed.
type Repo struct {
	CreateFn           func(ctx context.Context, l *domain.Lead) error
	CreateEachFn       func(ctx context.Context, leads []*domain.Lead) []error
	GetByIDFn          func(ctx context.Context, id uint64) (*domain.Lead, error)
	GetByIDForUpdateFn func(ctx context.Context, id uint64) (*domain.Lead, error)
	SaveFn             func(ctx context.Context, l *domain.Lead) error
}

func (m *Repo) Create(ctx context.Context, l *domain.Lead) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}

func (m *Repo) CreateEach(ctx context.Context, leads []*domain.Lead) []error {
	if m.CreateEachFn != nil {
		return m.CreateEachFn(ctx, leads)
	}
	return make([]error, len(leads))
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Lead, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByIDForUpdate(ctx context.Context, id uint64) (*domain.Lead, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) Save(ctx context.Context, l *domain.Lead) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, l)
	}
	return nil
}
