package mysql

import (
	"context"

	leadDomain "leadcrm-backend/internal/domain/lead"
	reportDomain "leadcrm-backend/internal/domain/report"

	"gorm.io/gorm"
)

type ReportRepository struct{ db *gorm.DB }

func NewReportRepository(db *gorm.DB) *ReportRepository { return &ReportRepository{db: db} }

func (r *ReportRepository) CreateLoanReports(ctx context.Context, rows []*reportDomain.LoanReport) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&rows).Error
}

func (r *ReportRepository) CreateCreditReports(ctx context.Context, rows []*reportDomain.CreditReport) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&rows).Error
}

func (r *ReportRepository) SoftDeleteLoanReport(ctx context.Context, id, updatedBy uint64) (int64, error) {
	return softDelete(ctx, r.db, &reportDomain.LoanReport{}, id, updatedBy)
}

func (r *ReportRepository) SoftDeleteCreditReport(ctx context.Context, id, updatedBy uint64) (int64, error) {
	return softDelete(ctx, r.db, &reportDomain.CreditReport{}, id, updatedBy)
}

// softDelete flips status to deleted; already deleted rows are not counted.
func softDelete(ctx context.Context, db *gorm.DB, model any, id, updatedBy uint64) (int64, error) {
	res := db.WithContext(ctx).
		Model(model).
		Where("id = ? AND status <> ?", id, leadDomain.RecordDeleted).
		Updates(map[string]any{
			"status":     leadDomain.RecordDeleted,
			"updated_by": updatedBy,
		})
	return res.RowsAffected, res.Error
}
