package mysql

import (
	"context"

	"leadcrm-backend/internal/domain/lead"
	"leadcrm-backend/internal/domain/uow"

	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func reposFor(tx *gorm.DB) uow.Repos {
	return uow.Repos{
		Leads:        &LeadRepository{db: tx},
		InvalidLeads: &InvalidLeadRepository{db: tx},
		Activities:   &ActivityRepository{db: tx},
		WalkIns:      &WalkInRepository{db: tx},
		Assignments:  &AssignmentRepository{db: tx},
		Users:        &UserRepository{db: tx},
		Reports:      &ReportRepository{db: tx},
		Documents:    &DocumentRepository{db: tx},
	}
}

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(reposFor(tx))
	})
}

func (u *GormUoW) WithinLeadTx(ctx context.Context, leadID uint64, fn func(r uow.Repos, l *lead.Lead) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := reposFor(tx)
		// lock the lead row up-front so concurrent transitions serialize
		l, err := r.Leads.GetByIDForUpdate(ctx, leadID)
		if err != nil {
			return err
		}
		return fn(r, l)
	})
}
