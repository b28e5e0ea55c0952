package uow

import (
	"context"

	"leadcrm-backend/internal/domain/activity"
	"leadcrm-backend/internal/domain/assignment"
	"leadcrm-backend/internal/domain/document"
	"leadcrm-backend/internal/domain/lead"
	"leadcrm-backend/internal/domain/report"
	"leadcrm-backend/internal/domain/user"
	"leadcrm-backend/internal/domain/walkin"
)

// Repos are bound to one transaction.
type Repos struct {
	Leads        lead.Repository
	InvalidLeads lead.InvalidRepository
	Activities   activity.Repository
	WalkIns      walkin.Repository
	Assignments  assignment.Repository
	Users        user.Repository
	Reports      report.Repository
	Documents    document.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// lock the lead row first, then hand it to fn; the lead is never re-read inside fn
	WithinLeadTx(ctx context.Context, leadID uint64, fn func(r Repos, l *lead.Lead) error) error
}
