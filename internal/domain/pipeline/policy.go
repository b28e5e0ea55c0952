package pipeline

import (
	"leadcrm-backend/internal/domain/apperr"
	"leadcrm-backend/internal/domain/user"
)

type EventKind string

const (
	EventActivityLogged       EventKind = "activity_logged"
	EventVerificationDecision EventKind = "verification_decision"
	EventApplicationDecision  EventKind = "application_decision"
	EventLeadStatusDecision   EventKind = "lead_status_decision"
	EventWalkInScheduled      EventKind = "walk_in_scheduled"
)

type rule struct {
	// system events are raised by the service itself and skip role checks
	system bool
	roles  map[user.Role]bool
}

// policy is the single authorization table for pipeline transitions.
var policy = map[EventKind]rule{
	EventActivityLogged: {roles: map[user.Role]bool{
		user.RoleAdmin: true, user.RoleManager: true, user.RoleEmployee: true,
	}},
	EventVerificationDecision: {roles: map[user.Role]bool{
		user.RoleAdmin: true, user.RoleManager: true,
	}},
	EventApplicationDecision: {roles: map[user.Role]bool{
		user.RoleAdmin: true, user.RoleManager: true,
	}},
	EventLeadStatusDecision: {roles: map[user.Role]bool{
		user.RoleEmployee: true,
	}},
	EventWalkInScheduled: {system: true},
}

// Authorize reports whether role may raise an event of the given kind.
func Authorize(kind EventKind, role user.Role) error {
	r, ok := policy[kind]
	if !ok {
		return apperr.New(apperr.KindInternal, "no policy for event %q", kind)
	}
	if r.system || r.roles[role] {
		return nil
	}
	return apperr.New(apperr.KindForbidden, "role %q may not perform %s", role, kind)
}
