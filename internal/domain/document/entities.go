package document

import (
	"time"

	"leadcrm-backend/internal/domain/lead"
)

// LeadDocument points at a file that was already uploaded to blob storage.
type LeadDocument struct {
	ID           uint64            `gorm:"primaryKey;column:id" json:"id"`
	LeadID       uint64            `gorm:"column:lead_id;not null;index:ix_lead_documents_lead_id" json:"lead_id"`
	DocumentURL  string            `gorm:"column:document_url;size:1024;not null" json:"document_url"`
	DocumentType string            `gorm:"column:document_type;size:64;not null" json:"document_type"`
	DocumentName string            `gorm:"column:document_name;size:255" json:"document_name"`
	Status       lead.RecordStatus `gorm:"column:status;size:16;not null" json:"status"`
	CreatedBy    uint64            `gorm:"column:created_by;not null" json:"created_by"`
	UpdatedBy    *uint64           `gorm:"column:updated_by" json:"updated_by"`
	CreatedAt    time.Time         `gorm:"column:created_at" json:"created_at"`
	UpdatedAt    time.Time         `gorm:"column:updated_at" json:"updated_at"`
}

func (LeadDocument) TableName() string { return "lead_documents" }
