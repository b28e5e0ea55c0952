package pipeline

import (
	"strings"

	"leadcrm-backend/internal/domain/apperr"
	"leadcrm-backend/internal/domain/lead"
	"leadcrm-backend/internal/domain/user"
)

// Actor is the authenticated caller as supplied by the auth middleware.
type Actor struct {
	UserID uint64
	Role   user.Role
}

// Event is an inbound pipeline event; Value is the raw requested status.
type Event struct {
	Kind  EventKind
	Value string
}

// Decide validates ev against the current pipeline and returns the next one.
// It never mutates cur. Validation failures are typed apperr errors.
func Decide(cur lead.Pipeline, ev Event, actor Actor) (lead.Pipeline, error) {
	next := cur
	value := strings.TrimSpace(ev.Value)

	switch ev.Kind {
	case EventActivityLogged:
		if value == "" {
			return cur, apperr.MissingField("activity_status")
		}
		s, err := lead.ParseLeadStatus(value)
		if err != nil {
			return cur, apperr.InvalidEnum("activity_status", value)
		}
		if err := Authorize(ev.Kind, actor.Role); err != nil {
			return cur, err
		}
		next.LeadStatus = s
		// an activity can promote the lead into verification
		if s == lead.StatusVerification1 {
			next.VerificationStatus = lead.Verification1
		}

	case EventVerificationDecision:
		if value == "" {
			return cur, apperr.MissingField("verification_status")
		}
		if err := Authorize(ev.Kind, actor.Role); err != nil {
			return cur, err
		}
		s, err := lead.ParseVerificationStatus(value)
		if err != nil {
			return cur, apperr.InvalidEnum("verification_status", value)
		}
		next.VerificationStatus = s

	case EventApplicationDecision:
		if value == "" {
			return cur, apperr.MissingField("application_status")
		}
		s, err := lead.ParseApplicationStatus(value)
		if err != nil {
			return cur, apperr.InvalidEnum("application_status", value)
		}
		// the gate applies to every role, so it is checked before the policy
		if cur.LeadStatus != lead.StatusDocsCollected {
			return cur, apperr.New(apperr.KindInvalidTransition,
				"application status requires lead status %q, lead is %q", lead.StatusDocsCollected, cur.LeadStatus)
		}
		if err := Authorize(ev.Kind, actor.Role); err != nil {
			return cur, err
		}
		next.ApplicationStatus = &s

	case EventLeadStatusDecision:
		if value == "" {
			return cur, apperr.MissingField("lead_status")
		}
		if err := Authorize(ev.Kind, actor.Role); err != nil {
			return cur, err
		}
		s, err := lead.ParseLeadStatus(value)
		if err != nil {
			return cur, apperr.InvalidEnum("lead_status", value)
		}
		next.LeadStatus = s

	case EventWalkInScheduled:
		next.LeadStatus = lead.StatusScheduledWalkIn
		next.VerificationStatus = lead.VerificationScheduledWalkIn

	default:
		return cur, apperr.New(apperr.KindInternal, "unknown event kind %q", ev.Kind)
	}
	return next, nil
}

// Apply runs Decide and writes the result onto l.
func Apply(l *lead.Lead, ev Event, actor Actor) error {
	next, err := Decide(l.Pipeline, ev, actor)
	if err != nil {
		return err
	}
	l.Pipeline = next
	return nil
}
