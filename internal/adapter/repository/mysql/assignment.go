package mysql

import (
	"context"

	assignmentDomain "leadcrm-backend/internal/domain/assignment"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AssignmentRepository struct{ db *gorm.DB }

func NewAssignmentRepository(db *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

// Upsert relies on the unique index on lead_id (ON DUPLICATE KEY UPDATE on MySQL).
func (r *AssignmentRepository) Upsert(ctx context.Context, rows []*assignmentDomain.LeadAssignment) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "lead_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"assigned_to", "assigned_by", "status", "updated_at"}),
		}).
		Create(&rows).Error
}

func (r *AssignmentRepository) GetByLeadID(ctx context.Context, leadID uint64) (*assignmentDomain.LeadAssignment, error) {
	var out assignmentDomain.LeadAssignment
	res := r.db.WithContext(ctx).Where("lead_id = ?", leadID).First(&out)
	return &out, res.Error
}
