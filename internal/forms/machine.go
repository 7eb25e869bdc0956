// Package forms holds the state of an intake form between edits and a
// submission: field values, per-field errors, an optional attachment and
// the submission lifecycle.
package forms

import (
	"errors"
	"fmt"
	"sync"
)

type State string

const (
	StateIdle       State = "idle"
	StateValidating State = "validating"
	StateSubmitting State = "submitting"
	StateSuccess    State = "success"
	StateError      State = "error"
)

type Event string

const (
	EventValidate  Event = "validate"
	EventValid     Event = "valid"
	EventInvalid   Event = "invalid"
	EventSubmitted Event = "submitted"
	EventFailed    Event = "failed"
	EventReset     Event = "reset"
	EventEdit      Event = "edit"
)

var ErrInvalidTransition = errors.New("forms: invalid transition")

// transitions is the complete lifecycle. Anything not listed is rejected.
var transitions = map[State]map[Event]State{
	StateIdle: {
		EventValidate: StateValidating,
		EventEdit:     StateIdle,
		EventReset:    StateIdle,
	},
	StateValidating: {
		EventValid:   StateSubmitting,
		EventInvalid: StateIdle,
	},
	StateSubmitting: {
		EventSubmitted: StateSuccess,
		EventFailed:    StateError,
	},
	StateSuccess: {
		EventReset: StateIdle,
		EventEdit:  StateIdle,
	},
	StateError: {
		EventValidate: StateValidating,
		EventEdit:     StateIdle,
		EventReset:    StateIdle,
	},
}

// Machine is a goroutine-safe form lifecycle.
type Machine struct {
	mu    sync.Mutex
	state State
}

func NewMachine() *Machine {
	return &Machine{state: StateIdle}
}

func (m *Machine) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Fire applies ev and returns the new state. The state is unchanged on error.
func (m *Machine) Fire(ev Event) (State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	next, ok := transitions[m.state][ev]
	if !ok {
		return m.state, fmt.Errorf("%w: %s on %s", ErrInvalidTransition, ev, m.state)
	}
	m.state = next
	return next, nil
}

// Can reports whether ev is allowed in the current state.
func (m *Machine) Can(ev Event) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := transitions[m.state][ev]
	return ok
}
