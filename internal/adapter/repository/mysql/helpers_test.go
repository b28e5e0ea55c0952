package mysql

import (
	"context"
	"testing"

	leadDomain "leadcrm-backend/internal/domain/lead"
	userDomain "leadcrm-backend/internal/domain/user"
)

func makeLead(name, phone string) *leadDomain.Lead {
	return &leadDomain.Lead{
		Name:       name,
		Phone:      phone,
		LeadSource: "website",
		Pipeline:   leadDomain.InitialPipeline(),
		Status:     leadDomain.RecordActive,
	}
}

func seedLead(t *testing.T, repo *LeadRepository, name, phone string) *leadDomain.Lead {
	t.Helper()
	l := makeLead(name, phone)
	if err := repo.Create(context.Background(), l); err != nil {
		t.Fatalf("seed lead: %v", err)
	}
	return l
}

func seedUser(t *testing.T, repo *UserRepository, email string, role userDomain.Role) *userDomain.User {
	t.Helper()
	u := &userDomain.User{Name: email, Email: email, Role: role, Status: "active"}
	if err := repo.Create(context.Background(), u); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}
