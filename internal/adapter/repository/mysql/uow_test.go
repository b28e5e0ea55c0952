package mysql

import (
	"context"
	"errors"
	"testing"

	activityDomain "leadcrm-backend/internal/domain/activity"
	leadDomain "leadcrm-backend/internal/domain/lead"
	"leadcrm-backend/internal/domain/uow"
	userDomain "leadcrm-backend/internal/domain/user"
	"leadcrm-backend/internal/testutil/sqlitedb"

	"gorm.io/gorm"
)

func TestGormUoW_WithinTx_Commit(t *testing.T) {
	db := sqlitedb.Open(t)
	ctx := context.Background()
	guow := NewGormUoW(db)

	var leadID uint64
	err := guow.WithinTx(ctx, func(r uow.Repos) error {
		l := makeLead("Commit", "9111111111")
		if err := r.Leads.Create(ctx, l); err != nil {
			return err
		}
		leadID = l.ID
		return r.Activities.Create(ctx, &activityDomain.Activity{
			LeadID: l.ID, ActivityStatus: leadDomain.StatusInterested,
			TaskStatus: activityDomain.TaskCompleted, CreatedBy: 1,
		})
	})
	if err != nil {
		t.Fatalf("WithinTx commit err: %v", err)
	}

	if _, err := NewLeadRepository(db).GetByID(ctx, leadID); err != nil {
		t.Fatalf("lead not visible after commit: %v", err)
	}
	if _, err := NewActivityRepository(db).LatestByLeadID(ctx, leadID); err != nil {
		t.Fatalf("activity not visible after commit: %v", err)
	}
}

func TestGormUoW_WithinTx_Rollback(t *testing.T) {
	db := sqlitedb.Open(t)
	ctx := context.Background()
	sentinel := errors.New("boom")

	err := NewGormUoW(db).WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Leads.Create(ctx, makeLead("Rollback", "9222222222")); err != nil {
			return err
		}
		return sentinel
	})
	if !errors.Is(err, sentinel) {
		t.Fatalf("want sentinel, got %v", err)
	}
	var count int64
	db.Model(&leadDomain.Lead{}).Count(&count)
	if count != 0 {
		t.Fatalf("lead persisted despite rollback")
	}
}

func TestGormUoW_WithinLeadTx(t *testing.T) {
	db := sqlitedb.Open(t)
	ctx := context.Background()
	seeded := seedLead(t, NewLeadRepository(db), "Locked", "9333333333")
	seedUser(t, NewUserRepository(db), "m@example.com", userDomain.RoleManager)

	err := NewGormUoW(db).WithinLeadTx(ctx, seeded.ID, func(r uow.Repos, l *leadDomain.Lead) error {
		if l.ID != seeded.ID {
			t.Fatalf("wrong lead handed in: %d", l.ID)
		}
		if _, err := r.Users.GetByID(ctx, 1); err != nil {
			t.Fatalf("users repo not bound: %v", err)
		}
		l.LeadStatus = leadDomain.StatusBusy
		return r.Leads.Save(ctx, l)
	})
	if err != nil {
		t.Fatalf("WithinLeadTx: %v", err)
	}
	got, _ := NewLeadRepository(db).GetByID(ctx, seeded.ID)
	if got.LeadStatus != leadDomain.StatusBusy {
		t.Fatalf("lead status = %q", got.LeadStatus)
	}
}

func TestGormUoW_WithinLeadTx_MissingLead(t *testing.T) {
	db := sqlitedb.Open(t)
	called := false
	err := NewGormUoW(db).WithinLeadTx(context.Background(), 99, func(uow.Repos, *leadDomain.Lead) error {
		called = true
		return nil
	})
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("want ErrRecordNotFound, got %v", err)
	}
	if called {
		t.Fatalf("fn must not run for a missing lead")
	}
}
