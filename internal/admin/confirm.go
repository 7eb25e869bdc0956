package admin

import (
	"errors"
	"fmt"
)

const (
	PromptDeleteJob       = "Are you sure you want to delete this job?"
	PromptDeleteInquiry   = "Are you sure you want to delete this inquiry?"
	PromptDeleteCandidate = "Are you sure you want to delete this candidate?"
)

var ErrNotConfirmed = errors.New("admin: action not confirmed")

// NotConfirmedError carries the prompt that was declined.
type NotConfirmedError struct {
	Prompt string
}

func (e *NotConfirmedError) Error() string {
	return fmt.Sprintf("%s: %s", ErrNotConfirmed, e.Prompt)
}

func (e *NotConfirmedError) Unwrap() error { return ErrNotConfirmed }

func notConfirmed(prompt string) error {
	return &NotConfirmedError{Prompt: prompt}
}

// Confirmer approves destructive actions.
type Confirmer interface {
	Confirm(prompt string) bool
}

type ConfirmFunc func(prompt string) bool

func (f ConfirmFunc) Confirm(prompt string) bool { return f(prompt) }

var (
	Decline Confirmer = ConfirmFunc(func(string) bool { return false })
	Accept  Confirmer = ConfirmFunc(func(string) bool { return true })
)

// Confirmed answers every prompt with ok, as given by a request flag.
func Confirmed(ok bool) Confirmer {
	if ok {
		return Accept
	}
	return Decline
}
