package lead

import (
	"context"
	"strings"

	"leadcrm-backend/internal/domain/apperr"
	domainLead "leadcrm-backend/internal/domain/lead"
	"leadcrm-backend/internal/domain/pipeline"
	"leadcrm-backend/internal/domain/uow"
)

type Usecase struct {
	uow uow.UnitOfWork
}

func NewUsecase(tx uow.UnitOfWork) *Usecase { return &Usecase{uow: tx} }

func newLead(row RawLead, actor pipeline.Actor) *domainLead.Lead {
	l := &domainLead.Lead{
		Name:              row.Name,
		Email:             row.Email,
		Phone:             row.Phone,
		City:              row.City,
		Company:           row.Company,
		LeadSource:        row.LeadSource,
		CompanyCategoryID: row.CompanyCategoryID,
		Pipeline:          domainLead.InitialPipeline(),
		Status:            domainLead.RecordActive,
	}
	if actor.UserID != 0 {
		by := actor.UserID
		l.CreatedBy = &by
	}
	return l
}

// Create inserts one lead with the import checks applied as typed errors.
func (u *Usecase) Create(ctx context.Context, in CreateInput) (*LeadDTO, error) {
	if u.uow == nil {
		return nil, apperr.New(apperr.KindInternal, "unit of work not configured")
	}
	row := in.Lead.normalized()
	if err := checkErr(row); err != nil {
		return nil, err
	}
	l := newLead(row, in.Actor)
	l.Salary = in.Salary

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		return r.Leads.Create(ctx, l)
	})
	if err != nil {
		return nil, apperr.FromStore(err, "lead")
	}
	return toDTO(l), nil
}

// Import partitions the batch, inserts valid rows one by one and logs every
// rejected row. Rows the store refuses are moved to the rejected set instead of
// failing the batch.
func (u *Usecase) Import(ctx context.Context, in ImportInput) (*ImportResult, error) {
	if u.uow == nil {
		return nil, apperr.New(apperr.KindInternal, "unit of work not configured")
	}
	if len(in.Rows) == 0 {
		return nil, apperr.MissingField("leads")
	}
	part := Split(in.Rows)

	var res *ImportResult
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		rejected := append([]Rejection(nil), part.Invalid...)
		created := make([]CreatedLeadDTO, 0, len(part.Valid))

		if len(part.Valid) > 0 {
			leads := make([]*domainLead.Lead, len(part.Valid))
			for i, row := range part.Valid {
				leads[i] = newLead(row, in.Actor)
			}
			errs := r.Leads.CreateEach(ctx, leads)
			for i, l := range leads {
				if i < len(errs) && errs[i] != nil {
					rejected = append(rejected, Rejection{Row: part.Valid[i], Reason: reasonDatabasePrefix + errs[i].Error()})
					continue
				}
				created = append(created, CreatedLeadDTO{
					ID:         l.ID,
					Name:       l.Name,
					Email:      l.Email,
					Phone:      l.Phone,
					LeadSource: l.LeadSource,
				})
			}
		}

		rows := make([]*domainLead.InvalidLead, 0, len(rejected))
		invalid := make([]InvalidLeadDTO, 0, len(rejected))
		for _, rj := range rejected {
			il := &domainLead.InvalidLead{
				Name:       rj.Row.Name,
				Email:      rj.Row.Email,
				Phone:      rj.Row.Phone,
				Address:    rj.Row.Address,
				LeadSource: rj.Row.LeadSource,
				Reason:     rj.Reason,
				Status:     domainLead.RecordActive,
			}
			if in.Actor.UserID != 0 {
				by := in.Actor.UserID
				il.CreatedBy = &by
			}
			rows = append(rows, il)
			invalid = append(invalid, InvalidLeadDTO{
				Name:       il.Name,
				Email:      il.Email,
				Phone:      il.Phone,
				LeadSource: il.LeadSource,
				Reason:     il.Reason,
			})
		}
		if err := r.InvalidLeads.CreateBatch(ctx, rows); err != nil {
			return err
		}

		res = &ImportResult{
			TotalValid:   len(created),
			TotalInvalid: len(invalid),
			Created:      created,
			Invalid:      invalid,
		}
		return nil
	})
	if err != nil {
		return nil, apperr.FromStore(err, "lead import")
	}
	return res, nil
}

func (u *Usecase) UpdateVerificationStatus(ctx context.Context, in DecisionInput) (*LeadDTO, error) {
	return u.decide(ctx, pipeline.EventVerificationDecision, "verification_status", in)
}

// UpdateApplicationStatus is gated on the stored lead_status, never on the request.
func (u *Usecase) UpdateApplicationStatus(ctx context.Context, in DecisionInput) (*LeadDTO, error) {
	return u.decide(ctx, pipeline.EventApplicationDecision, "application_status", in)
}

func (u *Usecase) UpdateLeadStatus(ctx context.Context, in DecisionInput) (*LeadDTO, error) {
	return u.decide(ctx, pipeline.EventLeadStatusDecision, "lead_status", in)
}

func (u *Usecase) decide(ctx context.Context, kind pipeline.EventKind, field string, in DecisionInput) (*LeadDTO, error) {
	if u.uow == nil {
		return nil, apperr.New(apperr.KindInternal, "unit of work not configured")
	}
	if in.LeadID == 0 {
		return nil, apperr.MissingField("lead_id")
	}
	if strings.TrimSpace(in.Value) == "" {
		return nil, apperr.MissingField(field)
	}

	var dto *LeadDTO
	err := u.uow.WithinLeadTx(ctx, in.LeadID, func(r uow.Repos, l *domainLead.Lead) error {
		if err := pipeline.Apply(l, pipeline.Event{Kind: kind, Value: in.Value}, in.Actor); err != nil {
			return err
		}
		if err := r.Leads.Save(ctx, l); err != nil {
			return err
		}
		dto = toDTO(l)
		return nil
	})
	if err != nil {
		return nil, apperr.FromStore(err, "lead")
	}
	return dto, nil
}
