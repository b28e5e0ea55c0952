package attachment

import (
	"context"
	"strings"

	"leadcrm-backend/internal/domain/apperr"
	"leadcrm-backend/internal/domain/document"
	"leadcrm-backend/internal/domain/lead"
	"leadcrm-backend/internal/domain/uow"
)

type Usecase struct {
	uow uow.UnitOfWork
}

func NewUsecase(tx uow.UnitOfWork) *Usecase { return &Usecase{uow: tx} }

// AddDocuments records already-uploaded files against a lead.
func (u *Usecase) AddDocuments(ctx context.Context, in AddDocumentsInput) ([]*document.LeadDocument, error) {
	if u.uow == nil {
		return nil, apperr.New(apperr.KindInternal, "unit of work not configured")
	}
	if in.LeadID == 0 {
		return nil, apperr.MissingField("lead_id")
	}
	if len(in.Documents) == 0 {
		return nil, apperr.MissingField("documents")
	}
	rows := make([]*document.LeadDocument, 0, len(in.Documents))
	for _, d := range in.Documents {
		url := strings.TrimSpace(d.DocumentURL)
		if url == "" {
			return nil, apperr.MissingField("document_url")
		}
		typ := strings.TrimSpace(d.DocumentType)
		if typ == "" {
			return nil, apperr.MissingField("document_type")
		}
		rows = append(rows, &document.LeadDocument{
			LeadID:       in.LeadID,
			DocumentURL:  url,
			DocumentType: typ,
			DocumentName: strings.TrimSpace(d.DocumentName),
			Status:       lead.RecordActive,
			CreatedBy:    in.Actor.UserID,
		})
	}

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if _, err := r.Leads.GetByID(ctx, in.LeadID); err != nil {
			return apperr.FromStore(err, "lead")
		}
		return r.Documents.CreateBatch(ctx, rows)
	})
	if err != nil {
		return nil, apperr.FromStore(err, "document")
	}
	return rows, nil
}

// Delete soft-deletes one satellite row. The owning lead is not touched.
func (u *Usecase) Delete(ctx context.Context, in DeleteInput) error {
	if u.uow == nil {
		return apperr.New(apperr.KindInternal, "unit of work not configured")
	}
	if in.ID == 0 {
		return apperr.MissingField("id")
	}
	what := string(in.Target)

	return apperr.FromStore(u.uow.WithinTx(ctx, func(r uow.Repos) error {
		var (
			n   int64
			err error
		)
		switch in.Target {
		case TargetLoanReport:
			n, err = r.Reports.SoftDeleteLoanReport(ctx, in.ID, in.Actor.UserID)
		case TargetCreditReport:
			n, err = r.Reports.SoftDeleteCreditReport(ctx, in.ID, in.Actor.UserID)
		case TargetDocument:
			n, err = r.Documents.SoftDelete(ctx, in.ID, in.Actor.UserID)
		default:
			return apperr.New(apperr.KindInternal, "unknown delete target %q", what)
		}
		if err != nil {
			return err
		}
		if n == 0 {
			return apperr.NotFound(what)
		}
		return nil
	}), what)
}
