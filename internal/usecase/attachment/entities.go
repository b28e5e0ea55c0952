package attachment

import "leadcrm-backend/internal/domain/pipeline"

type DocumentInput struct {
	DocumentURL  string
	DocumentType string
	DocumentName string
}

type AddDocumentsInput struct {
	LeadID    uint64
	Documents []DocumentInput
	Actor     pipeline.Actor
}

// Target names the satellite table a soft delete applies to.
type Target string

const (
	TargetLoanReport   Target = "loan report"
	TargetCreditReport Target = "credit report"
	TargetDocument     Target = "document"
)

type DeleteInput struct {
	Target Target
	ID     uint64
	Actor  pipeline.Actor
}
