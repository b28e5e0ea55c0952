package lead

import (
	"errors"
	"testing"

	"leadcrm-backend/internal/domain/apperr"
)

func row(name, phone, email, source string) RawLead {
	return RawLead{Name: name, Phone: phone, Email: email, LeadSource: source}
}

func TestSplit_FirstOccurrenceWins(t *testing.T) {
	p := Split([]RawLead{
		row("a", "9876543210", "a@x.io", "web"),
		row("b", "9876543210", "b@x.io", "web"),
		row("c", "9876543211", "a@x.io", "web"),
		row("d", "9876543212", "d@x.io", "web"),
	})
	if len(p.Valid) != 2 || p.Valid[0].Name != "a" || p.Valid[1].Name != "d" {
		t.Fatalf("valid = %+v", p.Valid)
	}
	want := []string{ReasonDuplicatePhone, ReasonDuplicateEmail}
	if len(p.Invalid) != len(want) {
		t.Fatalf("invalid = %+v", p.Invalid)
	}
	for i, r := range want {
		if p.Invalid[i].Reason != r {
			t.Fatalf("invalid[%d].reason = %q, want %q", i, p.Invalid[i].Reason, r)
		}
	}
}

func TestSplit_RejectedRowsClaimNothing(t *testing.T) {
	// the first row fails on name, so its phone is still free for the second
	p := Split([]RawLead{
		row("", "9876543210", "", "web"),
		row("b", "9876543210", "", "web"),
	})
	if len(p.Valid) != 1 || p.Valid[0].Name != "b" {
		t.Fatalf("valid = %+v", p.Valid)
	}
	if p.Invalid[0].Reason != ReasonInvalidName {
		t.Fatalf("reason = %q", p.Invalid[0].Reason)
	}
}

func TestSplit_EmptyEmailsAreNotDuplicates(t *testing.T) {
	p := Split([]RawLead{
		row("a", "9876543210", "", "web"),
		row("b", "9876543211", " ", "web"),
	})
	if len(p.Valid) != 2 {
		t.Fatalf("valid = %d, want 2 (invalid: %+v)", len(p.Valid), p.Invalid)
	}
}

func TestCheck_ShortCircuitOrder(t *testing.T) {
	tests := []struct {
		name string
		in   RawLead
		want string
	}{
		{"everything wrong reports name", row("", "12", "bad", ""), ReasonInvalidName},
		{"source before phone", row("a", "12", "bad", ""), ReasonInvalidSource},
		{"phone before email", row("a", "12", "bad", "web"), ReasonInvalidPhone},
		{"bad email", row("a", "9876543210", "bad", "web"), ReasonInvalidEmail},
		{"no email is fine", row("a", "9876543210", "", "web"), ""},
		{"plain ten digits", row("a", "9876543210", "a@b.co", "web"), ""},
		{"plus country code", row("a", "+91 9876543210", "", "web"), ""},
		{"bare country code", row("a", "919876543210", "", "web"), ""},
		{"dashed country code", row("a", "+1-9876543210", "", "web"), ""},
		{"nine digits", row("a", "987654321", "", "web"), ReasonInvalidPhone},
		{"four digit prefix", row("a", "+1234 9876543210", "", "web"), ReasonInvalidPhone},
		{"letters", row("a", "98765abcde", "", "web"), ReasonInvalidPhone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := check(tt.in.normalized()); got != tt.want {
				t.Fatalf("check = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCheckErr_Kinds(t *testing.T) {
	tests := []struct {
		name string
		in   RawLead
		want error
	}{
		{"name", row("", "9876543210", "", "web"), apperr.ErrMissingField},
		{"source", row("a", "9876543210", "", ""), apperr.ErrMissingField},
		{"empty phone", row("a", "", "", "web"), apperr.ErrMissingField},
		{"malformed phone", row("a", "123", "", "web"), apperr.ErrInvalidField},
		{"malformed email", row("a", "9876543210", "x@", "web"), apperr.ErrInvalidField},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := checkErr(tt.in); !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}
	if err := checkErr(row("a", "9876543210", "a@b.co", "web")); err != nil {
		t.Fatalf("valid row: %v", err)
	}
}
