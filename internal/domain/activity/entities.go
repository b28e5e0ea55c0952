package activity

import (
	"errors"
	"time"

	"leadcrm-backend/internal/domain/lead"
)

type TaskStatus string

const (
	TaskUpcoming  TaskStatus = "Upcoming"
	TaskPending   TaskStatus = "Pending"
	TaskCompleted TaskStatus = "Completed"
)

var ErrUnknownTaskStatus = errors.New("unknown task status")

func ParseTaskStatus(s string) (TaskStatus, error) {
	switch t := TaskStatus(s); t {
	case TaskUpcoming, TaskPending, TaskCompleted:
		return t, nil
	}
	return "", ErrUnknownTaskStatus
}

// Activity is one logged contact event. Rows are append-only except for TaskStatus.
type Activity struct {
	ID             uint64          `gorm:"primaryKey;column:id" json:"id"`
	LeadID         uint64          `gorm:"column:lead_id;not null;index:ix_activities_lead_id" json:"lead_id"`
	ActivityStatus lead.LeadStatus `gorm:"column:activity_status;size:64;not null" json:"activity_status"`
	Description    string          `gorm:"column:description;type:text" json:"description"`
	DocsCollected  bool            `gorm:"column:docs_collected;not null;default:false" json:"docs_collected"`
	FollowUp       *time.Time      `gorm:"column:follow_up" json:"follow_up"`
	TaskStatus     TaskStatus      `gorm:"column:task_status;size:16;not null" json:"task_status"`
	CreatedBy      uint64          `gorm:"column:created_by;not null" json:"created_by"`
	CreatedAt      time.Time       `gorm:"column:created_at" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"column:updated_at" json:"updated_at"`
}

func (Activity) TableName() string { return "activities" }
