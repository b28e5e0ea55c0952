package lead

import "errors"

var ErrUnknownStatus = errors.New("unknown status value")

// LeadStatus tracks contact progress.
type LeadStatus string

const (
	StatusNotContacted     LeadStatus = "Not Contacted"
	StatusInterested       LeadStatus = "Interested"
	StatusFollowUp         LeadStatus = "Follow Up"
	StatusCallBack         LeadStatus = "Call Back"
	StatusRNR              LeadStatus = "RNR ( Ring No Response )"
	StatusSwitchedOff      LeadStatus = "Switched Off"
	StatusBusy             LeadStatus = "Busy"
	StatusNotInterested    LeadStatus = "Not Interested"
	StatusNotReachable     LeadStatus = "Not Working / Not Reachable"
	StatusMessage          LeadStatus = "Message"
	StatusEmail            LeadStatus = "Email"
	StatusVerification1    LeadStatus = "Verification 1"
	StatusScheduledWalkIn  LeadStatus = "Scheduled For Walk-In"
	StatusOkayForPolicy    LeadStatus = "Okay for Policy"
	StatusThinkAndGetBack  LeadStatus = "Think and get back"
	StatusDocsCollected    LeadStatus = "12 documents collected"
	StatusNotOkayForPolicy LeadStatus = "Not okay for Policy"
	StatusNotPossible      LeadStatus = "Not Possible"
)

var LeadStatuses = []LeadStatus{
	StatusNotContacted, StatusInterested, StatusFollowUp, StatusCallBack, StatusRNR,
	StatusSwitchedOff, StatusBusy, StatusNotInterested, StatusNotReachable, StatusMessage,
	StatusEmail, StatusVerification1, StatusScheduledWalkIn, StatusOkayForPolicy,
	StatusThinkAndGetBack, StatusDocsCollected, StatusNotOkayForPolicy, StatusNotPossible,
}

func ParseLeadStatus(s string) (LeadStatus, error) {
	for _, v := range LeadStatuses {
		if string(v) == s {
			return v, nil
		}
	}
	return "", ErrUnknownStatus
}

// VerificationStatus is the manager-controlled approval axis.
type VerificationStatus string

const (
	VerificationScheduledWalkIn VerificationStatus = "Scheduled For Walk-In"
	Verification1               VerificationStatus = "Verification 1"
	VerificationUnderReview     VerificationStatus = "Under Review"
	VerificationOnHold          VerificationStatus = "On Hold"
	VerificationManager1        VerificationStatus = "Manager 1 Approved"
	VerificationManager2        VerificationStatus = "Manager 2 Approved"
	VerificationApprovedWalkIn  VerificationStatus = "Approved for Walk-In"
	VerificationRejected        VerificationStatus = "Rejected"
)

var VerificationStatuses = []VerificationStatus{
	VerificationScheduledWalkIn, Verification1, VerificationUnderReview, VerificationOnHold,
	VerificationManager1, VerificationManager2, VerificationApprovedWalkIn, VerificationRejected,
}

func ParseVerificationStatus(s string) (VerificationStatus, error) {
	for _, v := range VerificationStatuses {
		if string(v) == s {
			return v, nil
		}
	}
	return "", ErrUnknownStatus
}

// ApplicationStatus is the loan application axis.
type ApplicationStatus string

const (
	ApplicationScheduledWalkIn ApplicationStatus = "Scheduled For Walk-In"
	ApplicationManager1        ApplicationStatus = "Manager 1 Approved"
	ApplicationManager2        ApplicationStatus = "Manager 2 Approved"
	ApplicationRejected        ApplicationStatus = "Rejected"
	ApplicationClosed          ApplicationStatus = "Closed"
	ApplicationLogin           ApplicationStatus = "Login"
)

var ApplicationStatuses = []ApplicationStatus{
	ApplicationScheduledWalkIn, ApplicationManager1, ApplicationManager2,
	ApplicationRejected, ApplicationClosed, ApplicationLogin,
}

func ParseApplicationStatus(s string) (ApplicationStatus, error) {
	for _, v := range ApplicationStatuses {
		if string(v) == s {
			return v, nil
		}
	}
	return "", ErrUnknownStatus
}

// RecordStatus is the soft-delete flag shared by leads and satellite records.
type RecordStatus string

const (
	RecordActive   RecordStatus = "active"
	RecordInactive RecordStatus = "inactive"
	RecordDeleted  RecordStatus = "deleted"
)
