package admin

import "workbridge_backend/pkg/apperrors"

// actionState is the idle -> submitting -> idle cycle shared by every
// mutating action. Guarded by Manager.mu.
type actionState struct {
	submitting bool
}

func (a *actionState) begin() error {
	if a.submitting {
		return apperrors.ErrSubmissionInProgress
	}
	a.submitting = true
	return nil
}

func (a *actionState) end() {
	a.submitting = false
}
