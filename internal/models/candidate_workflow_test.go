package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpenStatusWorkflow_AnyToAny(t *testing.T) {
	for _, from := range CandidateStatuses {
		for _, to := range CandidateStatuses {
			assert.True(t, OpenStatusWorkflow.CanTransition(from, to), "%s -> %s", from, to)
		}
	}
}

func TestStrictStatusWorkflow(t *testing.T) {
	tests := []struct {
		from, to CandidateStatus
		want     bool
	}{
		{CandidateStatusPending, CandidateStatusInterview, true},
		{CandidateStatusPending, CandidateStatusRejected, true},
		{CandidateStatusPending, CandidateStatusApproved, false},
		{CandidateStatusInterview, CandidateStatusApproved, true},
		{CandidateStatusApproved, CandidateStatusPending, false},
		{CandidateStatusRejected, CandidateStatusPending, true},
		{CandidateStatusApproved, CandidateStatusApproved, true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, StrictStatusWorkflow.CanTransition(tt.from, tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestWorkflow_RejectsUnknownStatus(t *testing.T) {
	assert.False(t, OpenStatusWorkflow.CanTransition(CandidateStatusPending, "hired"))
	assert.False(t, OpenStatusWorkflow.CanTransition("hired", "hired"))
}

func TestWorkflow_NextReturnsCopy(t *testing.T) {
	next := StrictStatusWorkflow.Next(CandidateStatusPending)
	next[0] = CandidateStatusApproved
	assert.Equal(t, CandidateStatusInterview, StrictStatusWorkflow.Next(CandidateStatusPending)[0])
}
