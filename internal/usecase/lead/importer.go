package lead

import (
	"regexp"

	"leadcrm-backend/internal/domain/apperr"
)

// Rejection reasons recorded on invalid_leads.
const (
	ReasonDuplicatePhone = "Duplicate phone"
	ReasonDuplicateEmail = "Duplicate email"
	ReasonInvalidName    = "Invalid name"
	ReasonInvalidSource  = "Invalid source"
	ReasonInvalidPhone   = "Invalid phone"
	ReasonInvalidEmail   = "Invalid email"

	reasonDatabasePrefix = "Database error: "
)

var (
	// optional country code, then exactly ten digits
	phonePattern = regexp.MustCompile(`^(\+?\d{1,3}[-.\s]?)?(\d{10})$`)
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

type Rejection struct {
	Row    RawLead
	Reason string
}

type Partition struct {
	Valid   []RawLead
	Invalid []Rejection
}

// Split partitions a batch in one ordered pass. The first accepted row claims its
// phone and email; later rows repeating either are rejected as duplicates even if
// well-formed. Rejected rows claim nothing.
func Split(rows []RawLead) Partition {
	var p Partition
	seenPhones := make(map[string]struct{}, len(rows))
	seenEmails := make(map[string]struct{}, len(rows))

	for _, raw := range rows {
		row := raw.normalized()

		reason := ""
		if _, dup := seenPhones[row.Phone]; dup {
			reason = ReasonDuplicatePhone
		} else if _, dup := seenEmails[row.Email]; dup && row.Email != "" {
			reason = ReasonDuplicateEmail
		} else {
			reason = check(row)
		}

		if reason != "" {
			p.Invalid = append(p.Invalid, Rejection{Row: row, Reason: reason})
			continue
		}
		p.Valid = append(p.Valid, row)
		seenPhones[row.Phone] = struct{}{}
		if row.Email != "" {
			seenEmails[row.Email] = struct{}{}
		}
	}
	return p
}

// check returns the first failing rule or "".
func check(r RawLead) string {
	switch {
	case r.Name == "":
		return ReasonInvalidName
	case r.LeadSource == "":
		return ReasonInvalidSource
	case !phonePattern.MatchString(r.Phone):
		return ReasonInvalidPhone
	case r.Email != "" && !emailPattern.MatchString(r.Email):
		return ReasonInvalidEmail
	}
	return ""
}

// checkErr is check expressed as a typed error for single-lead writes.
func checkErr(r RawLead) error {
	switch check(r) {
	case ReasonInvalidName:
		return apperr.MissingField("name")
	case ReasonInvalidSource:
		return apperr.MissingField("lead_source")
	case ReasonInvalidPhone:
		if r.Phone == "" {
			return apperr.MissingField("phone")
		}
		return apperr.InvalidField("phone", r.Phone)
	case ReasonInvalidEmail:
		return apperr.InvalidField("email", r.Email)
	}
	return nil
}
