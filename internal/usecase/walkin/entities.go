package walkin

import (
	"time"

	"leadcrm-backend/internal/domain/lead"
	"leadcrm-backend/internal/domain/pipeline"
	"leadcrm-backend/internal/domain/walkin"
)

type ScheduleInput struct {
	LeadID         uint64
	WalkInDateTime time.Time
	Note           string
	// Status defaults to Upcoming.
	Status string
	Actor  pipeline.Actor
}

type RescheduleInput struct {
	WalkInID    uint64
	NewDateTime time.Time
	Note        string
}

type UpdateStatusInput struct {
	WalkInID uint64
	Status   string
}

type WalkInDTO struct {
	ID                  uint64         `json:"id"`
	LeadID              uint64         `json:"lead_id"`
	WalkInStatus        string         `json:"walk_in_status"`
	WalkInDateTime      time.Time      `json:"walk_in_date_time"`
	IsRescheduled       bool           `json:"is_rescheduled"`
	RescheduledDateTime *time.Time     `json:"rescheduled_date_time,omitempty"`
	AppointmentAt       time.Time      `json:"appointment_at"`
	Note                string         `json:"note"`
	CreatedBy           uint64         `json:"created_by"`
	Lead                *lead.Pipeline `json:"lead,omitempty"`
}

func toDTO(w *walkin.WalkIn, p *lead.Pipeline) *WalkInDTO {
	return &WalkInDTO{
		ID:                  w.ID,
		LeadID:              w.LeadID,
		WalkInStatus:        string(w.WalkInStatus),
		WalkInDateTime:      w.WalkInDateTime,
		IsRescheduled:       w.IsRescheduled,
		RescheduledDateTime: w.RescheduledDateTime,
		AppointmentAt:       w.AppointmentAt(),
		Note:                w.Note,
		CreatedBy:           w.CreatedBy,
		Lead:                p,
	}
}
