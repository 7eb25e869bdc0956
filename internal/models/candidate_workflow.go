package models

// StatusWorkflow is an explicit allowed-transition table for candidate
// statuses. Staying in the same status is always allowed.
type StatusWorkflow struct {
	Name    string
	allowed map[CandidateStatus][]CandidateStatus
}

func NewStatusWorkflow(name string, allowed map[CandidateStatus][]CandidateStatus) StatusWorkflow {
	return StatusWorkflow{Name: name, allowed: allowed}
}

func (w StatusWorkflow) CanTransition(from, to CandidateStatus) bool {
	if !to.Valid() {
		return false
	}
	if from == to {
		return true
	}
	for _, s := range w.allowed[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Next lists the statuses reachable from the given one.
func (w StatusWorkflow) Next(from CandidateStatus) []CandidateStatus {
	next := w.allowed[from]
	out := make([]CandidateStatus, len(next))
	copy(out, next)
	return out
}

// OpenStatusWorkflow lets any status move to any other. This is what the
// admin dashboard has always allowed.
var OpenStatusWorkflow = NewStatusWorkflow("open", map[CandidateStatus][]CandidateStatus{
	CandidateStatusPending:   {CandidateStatusApproved, CandidateStatusInterview, CandidateStatusRejected},
	CandidateStatusApproved:  {CandidateStatusPending, CandidateStatusInterview, CandidateStatusRejected},
	CandidateStatusInterview: {CandidateStatusPending, CandidateStatusApproved, CandidateStatusRejected},
	CandidateStatusRejected:  {CandidateStatusPending, CandidateStatusApproved, CandidateStatusInterview},
})

// StrictStatusWorkflow is the pipeline pending -> interview -> approved, with
// rejection possible before approval and rejected candidates reopenable.
var StrictStatusWorkflow = NewStatusWorkflow("strict", map[CandidateStatus][]CandidateStatus{
	CandidateStatusPending:   {CandidateStatusInterview, CandidateStatusRejected},
	CandidateStatusInterview: {CandidateStatusApproved, CandidateStatusRejected},
	CandidateStatusRejected:  {CandidateStatusPending},
})
