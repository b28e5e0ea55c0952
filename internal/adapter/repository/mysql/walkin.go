package mysql

import (
	"context"

	walkinDomain "leadcrm-backend/internal/domain/walkin"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type WalkInRepository struct{ db *gorm.DB }

func NewWalkInRepository(db *gorm.DB) *WalkInRepository { return &WalkInRepository{db: db} }

func (r *WalkInRepository) Create(ctx context.Context, w *walkinDomain.WalkIn) error {
	return r.db.WithContext(ctx).Create(w).Error
}

func (r *WalkInRepository) GetByID(ctx context.Context, id uint64) (*walkinDomain.WalkIn, error) {
	var out walkinDomain.WalkIn
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	return &out, res.Error
}

func (r *WalkInRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*walkinDomain.WalkIn, error) {
	var out walkinDomain.WalkIn
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&out)
	return &out, res.Error
}

func (r *WalkInRepository) Save(ctx context.Context, w *walkinDomain.WalkIn) error {
	return r.db.WithContext(ctx).Save(w).Error
}
