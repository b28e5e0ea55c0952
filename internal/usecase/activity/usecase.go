package activity

import (
	"context"
	"errors"
	"strings"
	"time"

	domainActivity "leadcrm-backend/internal/domain/activity"
	"leadcrm-backend/internal/domain/apperr"
	"leadcrm-backend/internal/domain/lead"
	"leadcrm-backend/internal/domain/pipeline"
	"leadcrm-backend/internal/domain/uow"

	"gorm.io/gorm"
)

type Usecase struct {
	uow uow.UnitOfWork
}

func NewUsecase(tx uow.UnitOfWork) *Usecase { return &Usecase{uow: tx} }

// Add appends an activity and moves the lead's pipeline in the same transaction.
func (u *Usecase) Add(ctx context.Context, in AddInput) (*ActivityDTO, error) {
	if u.uow == nil {
		return nil, apperr.New(apperr.KindInternal, "unit of work not configured")
	}
	if in.LeadID == 0 {
		return nil, apperr.MissingField("lead_id")
	}
	if strings.TrimSpace(in.ActivityStatus) == "" {
		return nil, apperr.MissingField("activity_status")
	}

	var dto *ActivityDTO
	err := u.uow.WithinLeadTx(ctx, in.LeadID, func(r uow.Repos, l *lead.Lead) error {
		a, err := Record(ctx, r, l, in)
		if err != nil {
			return err
		}
		p := l.Pipeline
		dto = toDTO(a, &p)
		return nil
	})
	if err != nil {
		return nil, apperr.FromStore(err, "lead")
	}
	return dto, nil
}

// Record is the activity step shared by every flow that logs contact inside an
// open lead transaction. l must be the row locked by that transaction; it is
// updated in place and saved.
func Record(ctx context.Context, r uow.Repos, l *lead.Lead, in AddInput) (*domainActivity.Activity, error) {
	next, err := pipeline.Decide(l.Pipeline, pipeline.Event{
		Kind:  pipeline.EventActivityLogged,
		Value: in.ActivityStatus,
	}, in.Actor)
	if err != nil {
		return nil, err
	}

	// docs_collected never regresses once the latest activity has it
	docs := in.DocsCollected
	prev, err := r.Activities.LatestByLeadID(ctx, l.ID)
	switch {
	case err == nil:
		docs = docs || prev.DocsCollected
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, apperr.FromStore(err, "activity")
	}

	task := domainActivity.TaskCompleted
	var follow *time.Time
	if in.FollowUp != nil {
		f := in.FollowUp.UTC()
		follow = &f
		task = domainActivity.TaskUpcoming
	}

	a := &domainActivity.Activity{
		LeadID:         l.ID,
		ActivityStatus: next.LeadStatus,
		Description:    in.Description,
		DocsCollected:  docs,
		FollowUp:       follow,
		TaskStatus:     task,
		CreatedBy:      in.Actor.UserID,
	}
	if err := r.Activities.Create(ctx, a); err != nil {
		return nil, apperr.FromStore(err, "activity")
	}

	l.Pipeline = next
	if err := r.Leads.Save(ctx, l); err != nil {
		return nil, apperr.FromStore(err, "lead")
	}
	return a, nil
}

func (u *Usecase) UpdateTaskStatus(ctx context.Context, in UpdateTaskStatusInput) (*ActivityDTO, error) {
	if u.uow == nil {
		return nil, apperr.New(apperr.KindInternal, "unit of work not configured")
	}
	if in.ActivityID == 0 {
		return nil, apperr.MissingField("activity_id")
	}
	if strings.TrimSpace(in.TaskStatus) == "" {
		return nil, apperr.MissingField("task_status")
	}
	status, err := domainActivity.ParseTaskStatus(in.TaskStatus)
	if err != nil {
		return nil, apperr.InvalidEnum("task_status", in.TaskStatus)
	}

	var dto *ActivityDTO
	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		a, err := r.Activities.GetByID(ctx, in.ActivityID)
		if err != nil {
			return err
		}
		a.TaskStatus = status
		if err := r.Activities.Save(ctx, a); err != nil {
			return err
		}
		dto = toDTO(a, nil)
		return nil
	})
	if err != nil {
		return nil, apperr.FromStore(err, "activity")
	}
	return dto, nil
}
