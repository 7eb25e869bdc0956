package models

type UserStatus string
type UserRole string
type CandidateStatus string

const (
	UserStatusActive   UserStatus = "active"
	UserStatusDisabled UserStatus = "disabled"

	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"

	CandidateStatusPending   CandidateStatus = "pending"
	CandidateStatusApproved  CandidateStatus = "approved"
	CandidateStatusInterview CandidateStatus = "interview"
	CandidateStatusRejected  CandidateStatus = "rejected"
)

// CandidateStatuses in the order the admin dashboard lists them.
var CandidateStatuses = []CandidateStatus{
	CandidateStatusPending,
	CandidateStatusApproved,
	CandidateStatusInterview,
	CandidateStatusRejected,
}

func (s CandidateStatus) Valid() bool {
	switch s {
	case CandidateStatusPending, CandidateStatusApproved, CandidateStatusInterview, CandidateStatusRejected:
		return true
	}
	return false
}

func (r UserRole) Valid() bool {
	return r == UserRoleUser || r == UserRoleAdmin
}
