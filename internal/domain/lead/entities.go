package lead

import (
	"time"

	"github.com/shopspring/decimal"
)

// Pipeline holds the three status axes driven by the status engine.
type Pipeline struct {
	LeadStatus         LeadStatus         `gorm:"column:lead_status;size:64;not null;default:'Not Contacted'" json:"lead_status"`
	VerificationStatus VerificationStatus `gorm:"column:verification_status;size:64;not null;default:'Under Review'" json:"verification_status"`
	ApplicationStatus  *ApplicationStatus `gorm:"column:application_status;size:64" json:"application_status"`
}

// InitialPipeline is the state of a freshly imported lead.
func InitialPipeline() Pipeline {
	return Pipeline{LeadStatus: StatusNotContacted, VerificationStatus: VerificationUnderReview}
}

type Lead struct {
	ID                uint64              `gorm:"primaryKey;column:id" json:"id"`
	Name              string              `gorm:"column:name;size:255;not null" json:"name"`
	Email             string              `gorm:"column:email;size:255" json:"email"`
	Phone             string              `gorm:"column:phone;size:20;not null;uniqueIndex:ux_leads_phone" json:"phone"`
	City              string              `gorm:"column:city;size:128" json:"city"`
	Company           string              `gorm:"column:company;size:255" json:"company"`
	LeadSource        string              `gorm:"column:lead_source;size:128;not null" json:"lead_source"`
	CompanyCategoryID *uint64             `gorm:"column:company_category_id" json:"company_category_id"`
	Salary            decimal.NullDecimal `gorm:"column:salary;type:decimal(12,2)" json:"salary"`
	Pipeline          `gorm:"embedded"`
	Status            RecordStatus `gorm:"column:status;size:16;not null;default:active" json:"status"`
	CreatedBy         *uint64      `gorm:"column:created_by" json:"created_by"`
	CreatedAt         time.Time    `gorm:"column:created_at" json:"created_at"`
	UpdatedAt         time.Time    `gorm:"column:updated_at" json:"updated_at"`
}

func (Lead) TableName() string { return "leads" }

// InvalidLead is the rejection log for import rows that never became leads.
type InvalidLead struct {
	ID         uint64       `gorm:"primaryKey;column:id" json:"id"`
	Name       string       `gorm:"column:name;size:255" json:"name"`
	Email      string       `gorm:"column:email;size:255" json:"email"`
	Phone      string       `gorm:"column:phone;size:32" json:"phone"`
	Address    string       `gorm:"column:address;size:512" json:"address"`
	LeadSource string       `gorm:"column:lead_source;size:128" json:"lead_source"`
	Reason     string       `gorm:"column:reason;size:512;not null" json:"reason"`
	Status     RecordStatus `gorm:"column:status;size:16;not null;default:active" json:"status"`
	CreatedBy  *uint64      `gorm:"column:created_by" json:"created_by"`
	CreatedAt  time.Time    `gorm:"column:created_at" json:"created_at"`
}

func (InvalidLead) TableName() string { return "invalid_leads" }
