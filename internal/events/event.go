// Package events pushes admin-facing change notifications to connected
// dashboard websockets.
package events

import "time"

type Type string

const (
	CandidateCreated Type = "candidate.created"
	CandidateUpdated Type = "candidate.updated"
	CandidateDeleted Type = "candidate.deleted"
	InquiryCreated   Type = "inquiry.created"
	InquiryDeleted   Type = "inquiry.deleted"
	JobSaved         Type = "job.saved"
	JobDeleted       Type = "job.deleted"
)

type Event struct {
	Type Type      `json:"type"`
	ID   string    `json:"id"`
	At   time.Time `json:"at"`
	Data any       `json:"data,omitempty"`
}

func New(t Type, id string, data any) Event {
	return Event{Type: t, ID: id, At: time.Now().UTC(), Data: data}
}

// Publisher accepts events without blocking the caller.
type Publisher interface {
	Publish(e Event)
}

// Nop drops every event.
type Nop struct{}

func (Nop) Publish(Event) {}

// Recorder keeps published events in memory.
type Recorder struct {
	Events []Event
}

func (r *Recorder) Publish(e Event) {
	r.Events = append(r.Events, e)
}

func (r *Recorder) Types() []Type {
	out := make([]Type, len(r.Events))
	for i, e := range r.Events {
		out[i] = e.Type
	}
	return out
}
