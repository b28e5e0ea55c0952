package walkin

import (
	"context"
	"strings"

	"leadcrm-backend/internal/domain/apperr"
	"leadcrm-backend/internal/domain/lead"
	"leadcrm-backend/internal/domain/pipeline"
	"leadcrm-backend/internal/domain/uow"
	domainWalkin "leadcrm-backend/internal/domain/walkin"
)

type Usecase struct {
	uow uow.UnitOfWork
}

func NewUsecase(tx uow.UnitOfWork) *Usecase { return &Usecase{uow: tx} }

// Schedule creates the walk-in and forces the lead into "Scheduled For Walk-In".
// Both writes share one transaction.
func (u *Usecase) Schedule(ctx context.Context, in ScheduleInput) (*WalkInDTO, error) {
	if u.uow == nil {
		return nil, apperr.New(apperr.KindInternal, "unit of work not configured")
	}
	if in.LeadID == 0 {
		return nil, apperr.MissingField("lead_id")
	}
	if in.WalkInDateTime.IsZero() {
		return nil, apperr.MissingField("walk_in_date_time")
	}
	status := domainWalkin.StatusUpcoming
	if s := strings.TrimSpace(in.Status); s != "" {
		parsed, err := domainWalkin.ParseStatus(s)
		if err != nil {
			return nil, apperr.InvalidEnum("walk_in_status", s)
		}
		status = parsed
	}

	var dto *WalkInDTO
	err := u.uow.WithinLeadTx(ctx, in.LeadID, func(r uow.Repos, l *lead.Lead) error {
		if err := pipeline.Apply(l, pipeline.Event{Kind: pipeline.EventWalkInScheduled}, in.Actor); err != nil {
			return err
		}
		if err := r.Leads.Save(ctx, l); err != nil {
			return err
		}

		w := &domainWalkin.WalkIn{
			LeadID:         l.ID,
			WalkInStatus:   status,
			WalkInDateTime: in.WalkInDateTime.UTC(),
			Note:           in.Note,
			CreatedBy:      in.Actor.UserID,
		}
		if err := r.WalkIns.Create(ctx, w); err != nil {
			return apperr.FromStore(err, "walk-in")
		}
		p := l.Pipeline
		dto = toDTO(w, &p)
		return nil
	})
	if err != nil {
		return nil, apperr.FromStore(err, "lead")
	}
	return dto, nil
}

// Reschedule only touches the walk-in row.
func (u *Usecase) Reschedule(ctx context.Context, in RescheduleInput) (*WalkInDTO, error) {
	if u.uow == nil {
		return nil, apperr.New(apperr.KindInternal, "unit of work not configured")
	}
	if in.WalkInID == 0 {
		return nil, apperr.MissingField("walk_in_id")
	}
	if in.NewDateTime.IsZero() {
		return nil, apperr.MissingField("rescheduled_date_time")
	}

	var dto *WalkInDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		w, err := r.WalkIns.GetByIDForUpdate(ctx, in.WalkInID)
		if err != nil {
			return err
		}
		w.Reschedule(in.NewDateTime, in.Note)
		if err := r.WalkIns.Save(ctx, w); err != nil {
			return err
		}
		dto = toDTO(w, nil)
		return nil
	})
	if err != nil {
		return nil, apperr.FromStore(err, "walk-in")
	}
	return dto, nil
}

func (u *Usecase) UpdateStatus(ctx context.Context, in UpdateStatusInput) (*WalkInDTO, error) {
	if u.uow == nil {
		return nil, apperr.New(apperr.KindInternal, "unit of work not configured")
	}
	if in.WalkInID == 0 {
		return nil, apperr.MissingField("walk_in_id")
	}
	raw := strings.TrimSpace(in.Status)
	if raw == "" {
		return nil, apperr.MissingField("walk_in_status")
	}
	status, err := domainWalkin.ParseStatus(raw)
	if err != nil {
		return nil, apperr.InvalidEnum("walk_in_status", raw)
	}

	var dto *WalkInDTO
	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		w, err := r.WalkIns.GetByIDForUpdate(ctx, in.WalkInID)
		if err != nil {
			return err
		}
		w.WalkInStatus = status
		if err := r.WalkIns.Save(ctx, w); err != nil {
			return err
		}
		dto = toDTO(w, nil)
		return nil
	})
	if err != nil {
		return nil, apperr.FromStore(err, "walk-in")
	}
	return dto, nil
}
