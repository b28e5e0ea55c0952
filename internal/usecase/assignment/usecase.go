package assignment

import (
	"context"

	"leadcrm-backend/internal/domain/apperr"
	domainAssignment "leadcrm-backend/internal/domain/assignment"
	"leadcrm-backend/internal/domain/uow"
)

type Usecase struct {
	uow uow.UnitOfWork
}

func NewUsecase(tx uow.UnitOfWork) *Usecase { return &Usecase{uow: tx} }

// Assign upserts one assignment row per lead; the whole batch commits or none of it does.
func (u *Usecase) Assign(ctx context.Context, in AssignInput) (*AssignmentDTO, error) {
	if u.uow == nil {
		return nil, apperr.New(apperr.KindInternal, "unit of work not configured")
	}
	if len(in.LeadIDs) == 0 {
		return nil, apperr.MissingField("lead_ids")
	}
	if in.AssignedTo == 0 {
		return nil, apperr.MissingField("assigned_to")
	}
	assignedBy := in.AssignedBy
	if assignedBy == 0 {
		assignedBy = in.Actor.UserID
	}
	if assignedBy == 0 {
		return nil, apperr.MissingField("assigned_by")
	}
	leadIDs, err := dedupe(in.LeadIDs)
	if err != nil {
		return nil, err
	}

	var dto *AssignmentDTO
	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		to, err := r.Users.GetByID(ctx, in.AssignedTo)
		if err != nil {
			return apperr.FromStore(err, "assigned user")
		}
		by, err := r.Users.GetByID(ctx, assignedBy)
		if err != nil {
			return apperr.FromStore(err, "assigning user")
		}

		rows := make([]*domainAssignment.LeadAssignment, 0, len(leadIDs))
		for _, id := range leadIDs {
			rows = append(rows, &domainAssignment.LeadAssignment{
				LeadID:     id,
				AssignedTo: to.ID,
				AssignedBy: by.ID,
				Status:     domainAssignment.StatusActive,
			})
		}
		if err := r.Assignments.Upsert(ctx, rows); err != nil {
			return err
		}

		dto = &AssignmentDTO{
			LeadIDs:        leadIDs,
			AssignedTo:     to.ID,
			AssignedToName: to.Name,
			AssignedBy:     by.ID,
			AssignedByName: by.Name,
			Status:         string(domainAssignment.StatusActive),
		}
		return nil
	})
	if err != nil {
		return nil, apperr.FromStore(err, "lead assignment")
	}
	return dto, nil
}

// dedupe keeps first-seen order; zero ids are rejected.
func dedupe(ids []uint64) ([]uint64, error) {
	seen := make(map[uint64]struct{}, len(ids))
	out := make([]uint64, 0, len(ids))
	for _, id := range ids {
		if id == 0 {
			return nil, apperr.New(apperr.KindMissingField, "lead_ids must not contain 0")
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out, nil
}
