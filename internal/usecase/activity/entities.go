package activity

import (
	"time"

	"leadcrm-backend/internal/domain/activity"
	"leadcrm-backend/internal/domain/lead"
	"leadcrm-backend/internal/domain/pipeline"
)

type AddInput struct {
	LeadID         uint64
	ActivityStatus string
	Description    string
	DocsCollected  bool
	FollowUp       *time.Time
	Actor          pipeline.Actor
}

type UpdateTaskStatusInput struct {
	ActivityID uint64
	TaskStatus string
}

type ActivityDTO struct {
	ID             uint64         `json:"id"`
	LeadID         uint64         `json:"lead_id"`
	ActivityStatus string         `json:"activity_status"`
	Description    string         `json:"description"`
	DocsCollected  bool           `json:"docs_collected"`
	FollowUp       *time.Time     `json:"follow_up,omitempty"`
	TaskStatus     string         `json:"task_status"`
	CreatedBy      uint64         `json:"created_by"`
	CreatedAt      time.Time      `json:"created_at"`
	Lead           *lead.Pipeline `json:"lead,omitempty"`
}

func toDTO(a *activity.Activity, p *lead.Pipeline) *ActivityDTO {
	return &ActivityDTO{
		ID:             a.ID,
		LeadID:         a.LeadID,
		ActivityStatus: string(a.ActivityStatus),
		Description:    a.Description,
		DocsCollected:  a.DocsCollected,
		FollowUp:       a.FollowUp,
		TaskStatus:     string(a.TaskStatus),
		CreatedBy:      a.CreatedBy,
		CreatedAt:      a.CreatedAt,
		Lead:           p,
	}
}
