package assignment

import "context"

type Repository interface {
	// Upsert writes all rows keyed by lead_id, overwriting assigned_to, assigned_by and status.
	Upsert(ctx context.Context, rows []*LeadAssignment) error
	GetByLeadID(ctx context.Context, leadID uint64) (*LeadAssignment, error)
}
