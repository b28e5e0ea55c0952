package assignment

import (
	"context"
	"errors"
	"reflect"
	"testing"

	mysqlrepo "leadcrm-backend/internal/adapter/repository/mysql"
	"leadcrm-backend/internal/domain/apperr"
	domainAssignment "leadcrm-backend/internal/domain/assignment"
	"leadcrm-backend/internal/domain/pipeline"
	"leadcrm-backend/internal/domain/user"
	"leadcrm-backend/internal/testutil/sqlitedb"

	"gorm.io/gorm"
)

type fixture struct {
	uc              *Usecase
	db              *gorm.DB
	emp, mgr1, mgr2 *user.User
}

func setup(t *testing.T) fixture {
	t.Helper()
	db := sqlitedb.Open(t)
	mk := func(name string, role user.Role) *user.User {
		u := &user.User{Name: name, Email: name + "@crm.test", Role: role, Status: "active"}
		if err := db.Create(u).Error; err != nil {
			t.Fatalf("seed user: %v", err)
		}
		return u
	}
	return fixture{
		uc:   NewUsecase(mysqlrepo.NewGormUoW(db)),
		db:   db,
		emp:  mk("ravi", user.RoleEmployee),
		mgr1: mk("meera", user.RoleManager),
		mgr2: mk("arjun", user.RoleAdmin),
	}
}

func rowsFor(t *testing.T, db *gorm.DB, leadID uint64) []domainAssignment.LeadAssignment {
	t.Helper()
	var out []domainAssignment.LeadAssignment
	if err := db.Where("lead_id = ?", leadID).Find(&out).Error; err != nil {
		t.Fatalf("query: %v", err)
	}
	return out
}

func TestAssign_SameLeadTwiceKeepsOneRow(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	if _, err := f.uc.Assign(ctx, AssignInput{LeadIDs: []uint64{1}, AssignedTo: f.emp.ID, AssignedBy: f.mgr1.ID}); err != nil {
		t.Fatalf("first assign: %v", err)
	}
	dto, err := f.uc.Assign(ctx, AssignInput{LeadIDs: []uint64{1}, AssignedTo: f.emp.ID, AssignedBy: f.mgr2.ID})
	if err != nil {
		t.Fatalf("second assign: %v", err)
	}
	if dto.AssignedByName != "arjun" || dto.AssignedToName != "ravi" {
		t.Fatalf("dto = %+v", dto)
	}

	rows := rowsFor(t, f.db, 1)
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rows))
	}
	if rows[0].AssignedBy != f.mgr2.ID || rows[0].AssignedTo != f.emp.ID {
		t.Fatalf("row = %+v", rows[0])
	}
}

func TestAssign_BatchDedupesAndDefaultsAssignedBy(t *testing.T) {
	f := setup(t)
	actor := pipeline.Actor{UserID: f.mgr1.ID, Role: user.RoleManager}

	dto, err := f.uc.Assign(context.Background(), AssignInput{LeadIDs: []uint64{3, 1, 3, 2}, AssignedTo: f.emp.ID, Actor: actor})
	if err != nil {
		t.Fatalf("Assign: %v", err)
	}
	if !reflect.DeepEqual(dto.LeadIDs, []uint64{3, 1, 2}) {
		t.Fatalf("lead ids = %v", dto.LeadIDs)
	}
	if dto.AssignedBy != f.mgr1.ID {
		t.Fatalf("assigned_by = %d, want actor %d", dto.AssignedBy, f.mgr1.ID)
	}
	var count int64
	f.db.Model(&domainAssignment.LeadAssignment{}).Count(&count)
	if count != 3 {
		t.Fatalf("rows = %d, want 3", count)
	}
}

func TestAssign_MissingUsersRollBackEverything(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	_, err := f.uc.Assign(ctx, AssignInput{LeadIDs: []uint64{1, 2}, AssignedTo: 999, AssignedBy: f.mgr1.ID})
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("missing assignee err = %v", err)
	}
	_, err = f.uc.Assign(ctx, AssignInput{LeadIDs: []uint64{1, 2}, AssignedTo: f.emp.ID, AssignedBy: 998})
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("missing assigner err = %v", err)
	}
	var count int64
	f.db.Model(&domainAssignment.LeadAssignment{}).Count(&count)
	if count != 0 {
		t.Fatalf("rows written despite failure: %d", count)
	}
}

func TestAssign_Validation(t *testing.T) {
	f := setup(t)
	tests := []struct {
		name string
		in   AssignInput
	}{
		{"no leads", AssignInput{AssignedTo: f.emp.ID, AssignedBy: f.mgr1.ID}},
		{"no assignee", AssignInput{LeadIDs: []uint64{1}, AssignedBy: f.mgr1.ID}},
		{"no assigner and no actor", AssignInput{LeadIDs: []uint64{1}, AssignedTo: f.emp.ID}},
		{"zero lead id", AssignInput{LeadIDs: []uint64{1, 0}, AssignedTo: f.emp.ID, AssignedBy: f.mgr1.ID}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := f.uc.Assign(context.Background(), tt.in); !errors.Is(err, apperr.ErrMissingField) {
				t.Fatalf("err = %v, want missing field", err)
			}
		})
	}
}
