package mysql

import (
	"context"
	"testing"

	documentDomain "leadcrm-backend/internal/domain/document"
	leadDomain "leadcrm-backend/internal/domain/lead"
	reportDomain "leadcrm-backend/internal/domain/report"
	"leadcrm-backend/internal/testutil/sqlitedb"

	"github.com/shopspring/decimal"
)

func TestReportRepository_CreateAndSoftDelete(t *testing.T) {
	db := sqlitedb.Open(t)
	repo := NewReportRepository(db)
	ctx := context.Background()

	loans := []*reportDomain.LoanReport{{
		LeadID: 1, LoanAmount: decimal.RequireFromString("250000.50"), BankName: "HDFC",
		EMI: decimal.RequireFromString("8200"), Outstanding: decimal.RequireFromString("120000"),
		Status: leadDomain.RecordActive, CreatedBy: 5,
	}}
	credits := []*reportDomain.CreditReport{{
		LeadID: 1, CreditCardName: "Visa", TotalOutstanding: decimal.RequireFromString("15000.75"),
		Status: leadDomain.RecordActive, CreatedBy: 5,
	}}
	if err := repo.CreateLoanReports(ctx, loans); err != nil {
		t.Fatalf("CreateLoanReports: %v", err)
	}
	if err := repo.CreateCreditReports(ctx, credits); err != nil {
		t.Fatalf("CreateCreditReports: %v", err)
	}

	var stored reportDomain.LoanReport
	if err := db.First(&stored, loans[0].ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if !stored.LoanAmount.Equal(decimal.RequireFromString("250000.5")) {
		t.Fatalf("loan amount = %s", stored.LoanAmount)
	}

	n, err := repo.SoftDeleteLoanReport(ctx, loans[0].ID, 9)
	if err != nil || n != 1 {
		t.Fatalf("SoftDeleteLoanReport = %d, %v", n, err)
	}
	if n, _ := repo.SoftDeleteLoanReport(ctx, loans[0].ID, 9); n != 0 {
		t.Fatalf("second delete touched %d rows", n)
	}
	if err := db.First(&stored, loans[0].ID).Error; err != nil {
		t.Fatalf("row must still exist: %v", err)
	}
	if stored.Status != leadDomain.RecordDeleted || stored.UpdatedBy == nil || *stored.UpdatedBy != 9 {
		t.Fatalf("soft delete not applied: %+v", stored)
	}

	if n, err := repo.SoftDeleteCreditReport(ctx, credits[0].ID, 9); err != nil || n != 1 {
		t.Fatalf("SoftDeleteCreditReport = %d, %v", n, err)
	}
	if n, _ := repo.SoftDeleteCreditReport(ctx, 999, 9); n != 0 {
		t.Fatalf("missing credit report touched %d rows", n)
	}
}

func TestDocumentRepository_CreateAndSoftDelete(t *testing.T) {
	db := sqlitedb.Open(t)
	repo := NewDocumentRepository(db)
	ctx := context.Background()

	docs := []*documentDomain.LeadDocument{
		{LeadID: 1, DocumentURL: "https://files.example.com/pan.pdf", DocumentType: "PAN", Status: leadDomain.RecordActive, CreatedBy: 2},
		{LeadID: 1, DocumentURL: "https://files.example.com/aadhaar.pdf", DocumentType: "AADHAAR", Status: leadDomain.RecordActive, CreatedBy: 2},
	}
	if err := repo.CreateBatch(ctx, docs); err != nil {
		t.Fatalf("CreateBatch: %v", err)
	}
	if docs[0].ID == 0 || docs[1].ID == 0 {
		t.Fatalf("ids not set")
	}
	if n, err := repo.SoftDelete(ctx, docs[1].ID, 3); err != nil || n != 1 {
		t.Fatalf("SoftDelete = %d, %v", n, err)
	}

	var live int64
	db.Model(&documentDomain.LeadDocument{}).Where("status = ?", leadDomain.RecordActive).Count(&live)
	if live != 1 {
		t.Fatalf("live documents = %d, want 1", live)
	}
}
