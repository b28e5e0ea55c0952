package mysql

import (
	"context"

	leadDomain "leadcrm-backend/internal/domain/lead"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LeadRepository struct{ db *gorm.DB }

func NewLeadRepository(db *gorm.DB) *LeadRepository { return &LeadRepository{db: db} }

func (r *LeadRepository) Create(ctx context.Context, l *leadDomain.Lead) error {
	return r.db.WithContext(ctx).Create(l).Error
}

// CreateEach wraps every insert in its own (nested) transaction so one bad row
// rolls back to its savepoint without poisoning the rest of the batch.
func (r *LeadRepository) CreateEach(ctx context.Context, leads []*leadDomain.Lead) []error {
	errs := make([]error, len(leads))
	db := r.db.WithContext(ctx)
	for i, l := range leads {
		errs[i] = db.Transaction(func(tx *gorm.DB) error {
			return tx.Create(l).Error
		})
	}
	return errs
}

func (r *LeadRepository) GetByID(ctx context.Context, id uint64) (*leadDomain.Lead, error) {
	var out leadDomain.Lead
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	return &out, res.Error
}

// GetByIDForUpdate takes the row lock; only meaningful inside a transaction.
func (r *LeadRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*leadDomain.Lead, error) {
	var out leadDomain.Lead
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&out)
	return &out, res.Error
}

func (r *LeadRepository) Save(ctx context.Context, l *leadDomain.Lead) error {
	return r.db.WithContext(ctx).Save(l).Error
}

type InvalidLeadRepository struct{ db *gorm.DB }

func NewInvalidLeadRepository(db *gorm.DB) *InvalidLeadRepository {
	return &InvalidLeadRepository{db: db}
}

func (r *InvalidLeadRepository) CreateBatch(ctx context.Context, rows []*leadDomain.InvalidLead) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&rows).Error
}
