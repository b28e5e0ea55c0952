package report

import "context"

type Repository interface {
	CreateLoanReports(ctx context.Context, rows []*LoanReport) error
	CreateCreditReports(ctx context.Context, rows []*CreditReport) error
	// Soft deletes report the number of rows touched; zero means no such live row.
	SoftDeleteLoanReport(ctx context.Context, id, updatedBy uint64) (int64, error)
	SoftDeleteCreditReport(ctx context.Context, id, updatedBy uint64) (int64, error)
}
