package mysql

import (
	"context"

	activityDomain "leadcrm-backend/internal/domain/activity"

	"gorm.io/gorm"
)

type ActivityRepository struct{ db *gorm.DB }

func NewActivityRepository(db *gorm.DB) *ActivityRepository { return &ActivityRepository{db: db} }

func (r *ActivityRepository) Create(ctx context.Context, a *activityDomain.Activity) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *ActivityRepository) GetByID(ctx context.Context, id uint64) (*activityDomain.Activity, error) {
	var out activityDomain.Activity
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	return &out, res.Error
}

func (r *ActivityRepository) LatestByLeadID(ctx context.Context, leadID uint64) (*activityDomain.Activity, error) {
	var out activityDomain.Activity
	res := r.db.WithContext(ctx).
		Where("lead_id = ?", leadID).
		Order("id DESC").
		First(&out)
	return &out, res.Error
}

func (r *ActivityRepository) Save(ctx context.Context, a *activityDomain.Activity) error {
	return r.db.WithContext(ctx).Save(a).Error
}
