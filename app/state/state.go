// Package state holds the editor's state machine: a single State record and a
// pure transition function over tagged events. Effects (dialogs, file I/O)
// live with the caller; Apply only computes the next state.
package state

import "time"

// Snapshot records the exact text written to or read from disk and when.
// It is not tracked against later edits.
type Snapshot struct {
	Text string
	At   time.Time
}

// State is the editor's entire mutable state.
type State struct {
	Text       string
	LastSaved  *Snapshot
	ErrMessage string
	Busy       bool // a save or load workflow is in flight
}

// Event is a state-machine input. The concrete types below form a closed set.
type Event interface {
	isEvent()
}

// EditText replaces the editor text.
type EditText struct {
	Text string
}

// SaveRequested asks for the current text to be saved. Ignored while Busy.
type SaveRequested struct{}

// LoadRequested asks for a file to be loaded. Ignored while Busy.
type LoadRequested struct{}

// SaveDone reports a finished save workflow. Saved is false when the user
// dismissed the dialog. Err, when set, takes precedence.
type SaveDone struct {
	Saved bool
	Err   error
}

// LoadDone reports a finished load workflow.
type LoadDone struct {
	Loaded   bool
	Contents string
	Err      error
}

func (EditText) isEvent()      {}
func (SaveRequested) isEvent() {}
func (LoadRequested) isEvent() {}
func (SaveDone) isEvent()      {}
func (LoadDone) isEvent()      {}

// Apply returns the state after ev. now stamps LastSaved on success; a single
// event either updates LastSaved or sets ErrMessage, never both.
func Apply(s State, ev Event, now time.Time) State {
	switch ev := ev.(type) {
	case EditText:
		s.Text = ev.Text

	case SaveRequested, LoadRequested:
		s.Busy = true

	case SaveDone:
		s.Busy = false
		switch {
		case ev.Err != nil:
			s.ErrMessage = "Error when saving: " + ev.Err.Error()
		case ev.Saved:
			s.LastSaved = &Snapshot{Text: s.Text, At: now}
			s.ErrMessage = ""
		}

	case LoadDone:
		s.Busy = false
		switch {
		case ev.Err != nil:
			s.ErrMessage = "Error when loading: " + ev.Err.Error()
		case ev.Loaded:
			s.Text = ev.Contents
			s.LastSaved = &Snapshot{Text: ev.Contents, At: now}
			s.ErrMessage = ""
		}
	}
	return s
}
