package lead

import (
	"strings"
	"time"

	"leadcrm-backend/internal/domain/activity"
	domainLead "leadcrm-backend/internal/domain/lead"
	"leadcrm-backend/internal/domain/pipeline"
	"leadcrm-backend/internal/domain/report"

	"github.com/shopspring/decimal"
)

// RawLead is one unvalidated import row.
type RawLead struct {
	Name              string
	Email             string
	Phone             string
	City              string
	Company           string
	LeadSource        string
	Address           string
	CompanyCategoryID *uint64
}

func (r RawLead) normalized() RawLead {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Phone = strings.TrimSpace(r.Phone)
	r.City = strings.TrimSpace(r.City)
	r.Company = strings.TrimSpace(r.Company)
	r.LeadSource = strings.TrimSpace(r.LeadSource)
	r.Address = strings.TrimSpace(r.Address)
	return r
}

type CreateInput struct {
	Lead   RawLead
	Salary decimal.NullDecimal
	Actor  pipeline.Actor
}

type ImportInput struct {
	Rows  []RawLead
	Actor pipeline.Actor
}

// DecisionInput carries one requested status value for a pipeline axis.
type DecisionInput struct {
	LeadID uint64
	Value  string
	Actor  pipeline.Actor
}

type LoanReportInput struct {
	LoanAmount  decimal.Decimal
	BankName    string
	LoanType    string
	EMI         decimal.Decimal
	Outstanding decimal.Decimal
}

type CreditReportInput struct {
	CreditCardName   string
	TotalOutstanding decimal.Decimal
}

type DetailsActivityInput struct {
	ActivityStatus string
	Description    string
	DocsCollected  bool
	FollowUp       *time.Time
}

// DetailsInput overwrites only the contact fields that are non-nil.
type DetailsInput struct {
	LeadID            uint64
	Name              *string
	Email             *string
	Phone             *string
	City              *string
	Company           *string
	LeadSource        *string
	CompanyCategoryID *uint64
	Salary            decimal.NullDecimal
	LoanReports       []LoanReportInput
	CreditReports     []CreditReportInput
	Activity          *DetailsActivityInput
	Actor             pipeline.Actor
}

type LeadDTO struct {
	ID                uint64              `json:"id"`
	Name              string              `json:"name"`
	Email             string              `json:"email"`
	Phone             string              `json:"phone"`
	City              string              `json:"city"`
	Company           string              `json:"company"`
	LeadSource        string              `json:"lead_source"`
	CompanyCategoryID *uint64             `json:"company_category_id"`
	Salary            decimal.NullDecimal `json:"salary"`
	domainLead.Pipeline
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toDTO(l *domainLead.Lead) *LeadDTO {
	return &LeadDTO{
		ID:                l.ID,
		Name:              l.Name,
		Email:             l.Email,
		Phone:             l.Phone,
		City:              l.City,
		Company:           l.Company,
		LeadSource:        l.LeadSource,
		CompanyCategoryID: l.CompanyCategoryID,
		Salary:            l.Salary,
		Pipeline:          l.Pipeline,
		Status:            string(l.Status),
		CreatedAt:         l.CreatedAt,
		UpdatedAt:         l.UpdatedAt,
	}
}

type CreatedLeadDTO struct {
	ID         uint64 `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	LeadSource string `json:"lead_source"`
}

type InvalidLeadDTO struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	LeadSource string `json:"lead_source"`
	Reason     string `json:"reason"`
}

type ImportResult struct {
	TotalValid   int              `json:"total_valid_leads"`
	TotalInvalid int              `json:"total_invalid_leads"`
	Created      []CreatedLeadDTO `json:"created_leads"`
	Invalid      []InvalidLeadDTO `json:"invalid_leads"`
}

type DetailsResult struct {
	Lead          *LeadDTO               `json:"lead"`
	LoanReports   []*report.LoanReport   `json:"loan_reports"`
	CreditReports []*report.CreditReport `json:"credit_reports"`
	Activity      *activity.Activity     `json:"activity,omitempty"`
}
