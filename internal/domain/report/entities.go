package report

import (
	"time"

	"github.com/shopspring/decimal"

	"leadcrm-backend/internal/domain/lead"
)

type LoanReport struct {
	ID          uint64            `gorm:"primaryKey;column:id" json:"id"`
	LeadID      uint64            `gorm:"column:lead_id;not null;index:ix_loan_reports_lead_id" json:"lead_id"`
	LoanAmount  decimal.Decimal   `gorm:"column:loan_amount;type:decimal(15,2);not null" json:"loan_amount"`
	BankName    string            `gorm:"column:bank_name;size:255;not null" json:"bank_name"`
	LoanType    string            `gorm:"column:loan_type;size:128" json:"loan_type"`
	EMI         decimal.Decimal   `gorm:"column:emi;type:decimal(15,2);not null" json:"emi"`
	Outstanding decimal.Decimal   `gorm:"column:outstanding;type:decimal(15,2);not null" json:"outstanding"`
	Status      lead.RecordStatus `gorm:"column:status;size:16;not null" json:"status"`
	CreatedBy   uint64            `gorm:"column:created_by;not null" json:"created_by"`
	UpdatedBy   *uint64           `gorm:"column:updated_by" json:"updated_by"`
	CreatedAt   time.Time         `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time         `gorm:"column:updated_at" json:"updated_at"`
}

func (LoanReport) TableName() string { return "loan_reports" }

type CreditReport struct {
	ID               uint64            `gorm:"primaryKey;column:id" json:"id"`
	LeadID           uint64            `gorm:"column:lead_id;not null;index:ix_credit_reports_lead_id" json:"lead_id"`
	CreditCardName   string            `gorm:"column:credit_card_name;size:255;not null" json:"credit_card_name"`
	TotalOutstanding decimal.Decimal   `gorm:"column:total_outstanding;type:decimal(15,2);not null" json:"total_outstanding"`
	Status           lead.RecordStatus `gorm:"column:status;size:16;not null" json:"status"`
	CreatedBy        uint64            `gorm:"column:created_by;not null" json:"created_by"`
	UpdatedBy        *uint64           `gorm:"column:updated_by" json:"updated_by"`
	CreatedAt        time.Time         `gorm:"column:created_at" json:"created_at"`
	UpdatedAt        time.Time         `gorm:"column:updated_at" json:"updated_at"`
}

func (CreditReport) TableName() string { return "credit_reports" }
