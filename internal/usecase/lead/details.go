package lead

import (
	"context"
	"strings"

	"leadcrm-backend/internal/domain/apperr"
	domainLead "leadcrm-backend/internal/domain/lead"
	"leadcrm-backend/internal/domain/pipeline"
	"leadcrm-backend/internal/domain/report"
	"leadcrm-backend/internal/domain/uow"
	activityUsecase "leadcrm-backend/internal/usecase/activity"
)

// UpdateDetails overwrites contact fields, attaches loan and credit reports and
// optionally logs an activity, all against one locked lead. Pipeline fields move
// only through the activity.
func (u *Usecase) UpdateDetails(ctx context.Context, in DetailsInput) (*DetailsResult, error) {
	if u.uow == nil {
		return nil, apperr.New(apperr.KindInternal, "unit of work not configured")
	}
	if err := validateDetails(in); err != nil {
		return nil, err
	}

	var res *DetailsResult
	err := u.uow.WithinLeadTx(ctx, in.LeadID, func(r uow.Repos, l *domainLead.Lead) error {
		if _, err := r.Users.GetByID(ctx, in.Actor.UserID); err != nil {
			return apperr.FromStore(err, "user")
		}

		applyDetails(l, in)
		if err := r.Leads.Save(ctx, l); err != nil {
			return apperr.FromStore(err, "lead")
		}

		by := in.Actor.UserID
		loans := make([]*report.LoanReport, 0, len(in.LoanReports))
		for _, lr := range in.LoanReports {
			loans = append(loans, &report.LoanReport{
				LeadID:      l.ID,
				LoanAmount:  lr.LoanAmount,
				BankName:    strings.TrimSpace(lr.BankName),
				LoanType:    strings.TrimSpace(lr.LoanType),
				EMI:         lr.EMI,
				Outstanding: lr.Outstanding,
				Status:      domainLead.RecordActive,
				CreatedBy:   by,
			})
		}
		if err := r.Reports.CreateLoanReports(ctx, loans); err != nil {
			return apperr.FromStore(err, "loan report")
		}

		credits := make([]*report.CreditReport, 0, len(in.CreditReports))
		for _, cr := range in.CreditReports {
			credits = append(credits, &report.CreditReport{
				LeadID:           l.ID,
				CreditCardName:   strings.TrimSpace(cr.CreditCardName),
				TotalOutstanding: cr.TotalOutstanding,
				Status:           domainLead.RecordActive,
				CreatedBy:        by,
			})
		}
		if err := r.Reports.CreateCreditReports(ctx, credits); err != nil {
			return apperr.FromStore(err, "credit report")
		}

		res = &DetailsResult{LoanReports: loans, CreditReports: credits}
		if in.Activity != nil {
			a, err := activityUsecase.Record(ctx, r, l, activityUsecase.AddInput{
				LeadID:         l.ID,
				ActivityStatus: in.Activity.ActivityStatus,
				Description:    in.Activity.Description,
				DocsCollected:  in.Activity.DocsCollected,
				FollowUp:       in.Activity.FollowUp,
				Actor:          in.Actor,
			})
			if err != nil {
				return err
			}
			res.Activity = a
		}
		res.Lead = toDTO(l)
		return nil
	})
	if err != nil {
		return nil, apperr.FromStore(err, "lead")
	}
	return res, nil
}

// validateDetails rejects everything that can be judged without the store.
func validateDetails(in DetailsInput) error {
	if in.LeadID == 0 {
		return apperr.MissingField("lead_id")
	}
	if in.Actor.UserID == 0 {
		return apperr.MissingField("user_id")
	}
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return apperr.MissingField("name")
	}
	if in.LeadSource != nil && strings.TrimSpace(*in.LeadSource) == "" {
		return apperr.MissingField("lead_source")
	}
	if in.Phone != nil {
		p := strings.TrimSpace(*in.Phone)
		if p == "" {
			return apperr.MissingField("phone")
		}
		if !phonePattern.MatchString(p) {
			return apperr.InvalidField("phone", p)
		}
	}
	if in.Email != nil {
		if e := strings.TrimSpace(*in.Email); e != "" && !emailPattern.MatchString(e) {
			return apperr.InvalidField("email", e)
		}
	}
	for _, lr := range in.LoanReports {
		if strings.TrimSpace(lr.BankName) == "" {
			return apperr.MissingField("loan_reports.bank_name")
		}
	}
	for _, cr := range in.CreditReports {
		if strings.TrimSpace(cr.CreditCardName) == "" {
			return apperr.MissingField("credit_reports.credit_card_name")
		}
	}
	if in.Activity != nil {
		// activity checks do not depend on the current pipeline
		_, err := pipeline.Decide(domainLead.Pipeline{}, pipeline.Event{
			Kind:  pipeline.EventActivityLogged,
			Value: in.Activity.ActivityStatus,
		}, in.Actor)
		if err != nil {
			return err
		}
	}
	return nil
}

func applyDetails(l *domainLead.Lead, in DetailsInput) {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = strings.TrimSpace(*src)
		}
	}
	set(&l.Name, in.Name)
	set(&l.Email, in.Email)
	set(&l.Phone, in.Phone)
	set(&l.City, in.City)
	set(&l.Company, in.Company)
	set(&l.LeadSource, in.LeadSource)
	if in.CompanyCategoryID != nil {
		l.CompanyCategoryID = in.CompanyCategoryID
	}
	if in.Salary.Valid {
		l.Salary = in.Salary
	}
}
