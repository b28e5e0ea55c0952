package db

import (
	"leadcrm-backend/internal/domain/activity"
	"leadcrm-backend/internal/domain/assignment"
	"leadcrm-backend/internal/domain/document"
	"leadcrm-backend/internal/domain/lead"
	"leadcrm-backend/internal/domain/report"
	"leadcrm-backend/internal/domain/user"
	"leadcrm-backend/internal/domain/walkin"

	"gorm.io/gorm"
)

// Models lists every persisted entity in dependency order.
func Models() []any {
	return []any{
		&user.User{},
		&lead.Lead{},
		&lead.InvalidLead{},
		&activity.Activity{},
		&walkin.WalkIn{},
		&assignment.LeadAssignment{},
		&report.LoanReport{},
		&report.CreditReport{},
		&document.LeadDocument{},
	}
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
