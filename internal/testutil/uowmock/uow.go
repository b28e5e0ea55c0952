package uowmock

import (
	"context"
	"errors"

	"leadcrm-backend/internal/domain/lead"
	"leadcrm-backend/internal/domain/uow"
)

// Ensure compile-time compliance
var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock that satisfies uow.UnitOfWork.
// Fill in the function fields you need in a test; unfilled ones return errUnimplemented.
type UoW struct {
	WithinTxFn     func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinLeadTxFn func(ctx context.Context, leadID uint64, fn func(r uow.Repos, l *lead.Lead) error) error
}

func New() *UoW { return &UoW{} }

func (m *UoW) WithWithinTx(fn func(context.Context, func(uow.Repos) error) error) *UoW {
	m.WithinTxFn = fn
	return m
}

func (m *UoW) WithWithinLeadTx(fn func(context.Context, uint64, func(uow.Repos, *lead.Lead) error) error) *UoW {
	m.WithinLeadTxFn = fn
	return m
}

// Passthrough runs every callback against repos; WithinLeadTx loads the lead
// through repos.Leads.GetByIDForUpdate like the real implementation.
func Passthrough(repos uow.Repos) *UoW {
	return &UoW{
		WithinTxFn: func(_ context.Context, fn func(uow.Repos) error) error {
			return fn(repos)
		},
		WithinLeadTxFn: func(ctx context.Context, leadID uint64, fn func(uow.Repos, *lead.Lead) error) error {
			l, err := repos.Leads.GetByIDForUpdate(ctx, leadID)
			if err != nil {
				return err
			}
			return fn(repos, l)
		},
	}
}

func (m *UoW) Reset() { *m = UoW{} }

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}

func (m *UoW) WithinLeadTx(ctx context.Context, leadID uint64, fn func(r uow.Repos, l *lead.Lead) error) error {
	if m.WithinLeadTxFn != nil {
		return m.WithinLeadTxFn(ctx, leadID, fn)
	}
	return errUnimplemented
}
