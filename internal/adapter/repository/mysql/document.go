package mysql

import (
	"context"

	documentDomain "leadcrm-backend/internal/domain/document"

	"gorm.io/gorm"
)

type DocumentRepository struct{ db *gorm.DB }

func NewDocumentRepository(db *gorm.DB) *DocumentRepository { return &DocumentRepository{db: db} }

func (r *DocumentRepository) CreateBatch(ctx context.Context, rows []*documentDomain.LeadDocument) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&rows).Error
}

func (r *DocumentRepository) SoftDelete(ctx context.Context, id, updatedBy uint64) (int64, error) {
	return softDelete(ctx, r.db, &documentDomain.LeadDocument{}, id, updatedBy)
}
