package assignment

import "time"

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// LeadAssignment is the current owner of a lead; one row per lead, rewritten in place.
type LeadAssignment struct {
	ID         uint64    `gorm:"primaryKey;column:id" json:"id"`
	LeadID     uint64    `gorm:"column:lead_id;not null;uniqueIndex:ux_lead_assignments_lead_id" json:"lead_id"`
	AssignedTo uint64    `gorm:"column:assigned_to;not null;index:ix_lead_assignments_assigned_to" json:"assigned_to"`
	AssignedBy uint64    `gorm:"column:assigned_by;not null" json:"assigned_by"`
	Status     Status    `gorm:"column:status;size:16;not null" json:"status"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (LeadAssignment) TableName() string { return "lead_assignments" }
