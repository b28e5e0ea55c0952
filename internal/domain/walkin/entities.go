package walkin

import (
	"errors"
	"time"
)

type Status string

const (
	StatusUpcoming    Status = "Upcoming"
	StatusRescheduled Status = "Rescheduled"
	StatusCompleted   Status = "Completed"
)

var ErrUnknownStatus = errors.New("unknown walk-in status")

func ParseStatus(s string) (Status, error) {
	switch v := Status(s); v {
	case StatusUpcoming, StatusRescheduled, StatusCompleted:
		return v, nil
	}
	return "", ErrUnknownStatus
}

type WalkIn struct {
	ID                  uint64     `gorm:"primaryKey;column:id" json:"id"`
	LeadID              uint64     `gorm:"column:lead_id;not null;index:ix_walk_ins_lead_id" json:"lead_id"`
	WalkInStatus        Status     `gorm:"column:walk_in_status;size:16;not null" json:"walk_in_status"`
	WalkInDateTime      time.Time  `gorm:"column:walk_in_date_time;not null" json:"walk_in_date_time"`
	IsRescheduled       bool       `gorm:"column:is_rescheduled;not null;default:false" json:"is_rescheduled"`
	RescheduledDateTime *time.Time `gorm:"column:rescheduled_date_time" json:"rescheduled_date_time"`
	Note                string     `gorm:"column:note;type:text" json:"note"`
	CreatedBy           uint64     `gorm:"column:created_by;not null" json:"created_by"`
	CreatedAt           time.Time  `gorm:"column:created_at" json:"created_at"`
	UpdatedAt           time.Time  `gorm:"column:updated_at" json:"updated_at"`
}

func (WalkIn) TableName() string { return "walk_ins" }

// AppointmentAt is the authoritative appointment time.
func (w *WalkIn) AppointmentAt() time.Time {
	if w.IsRescheduled && w.RescheduledDateTime != nil {
		return *w.RescheduledDateTime
	}
	return w.WalkInDateTime
}

// Reschedule moves the appointment; the lead is not touched.
func (w *WalkIn) Reschedule(at time.Time, note string) {
	at = at.UTC()
	w.IsRescheduled = true
	w.RescheduledDateTime = &at
	w.WalkInStatus = StatusRescheduled
	w.Note = note
}
