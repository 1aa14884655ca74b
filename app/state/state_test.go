package state

import (
	"errors"
	"testing"
	"time"
)

var now = time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)

func TestEditTextReplacesText(t *testing.T) {
	s := Apply(State{Text: "old"}, EditText{Text: "new"}, now)
	if s.Text != "new" {
		t.Errorf("Text = %q, want new", s.Text)
	}
	if s.LastSaved != nil || s.ErrMessage != "" {
		t.Error("EditText must not touch LastSaved or ErrMessage")
	}
}

func TestRequestsSetBusy(t *testing.T) {
	s := Apply(State{}, SaveRequested{}, now)
	if !s.Busy {
		t.Error("SaveRequested should set Busy")
	}
	s = Apply(State{}, LoadRequested{}, now)
	if !s.Busy {
		t.Error("LoadRequested should set Busy")
	}
}

func TestRequestWhileBusyIsNoOp(t *testing.T) {
	before := State{Text: "hello", Busy: true}
	if got := Apply(before, SaveRequested{}, now); got != before {
		t.Errorf("SaveRequested while busy changed state: %+v", got)
	}
	if got := Apply(before, LoadRequested{}, now); got != before {
		t.Errorf("LoadRequested while busy changed state: %+v", got)
	}
}

func TestSaveSavedRecordsSnapshotAndClearsError(t *testing.T) {
	before := State{Text: "hello world", ErrMessage: "Error when saving: old failure", Busy: true}

	s := Apply(before, SaveDone{Saved: true}, now)
	if s.Busy {
		t.Error("SaveDone should clear Busy")
	}
	if s.ErrMessage != "" {
		t.Errorf("ErrMessage = %q, want cleared", s.ErrMessage)
	}
	if s.LastSaved == nil || s.LastSaved.Text != "hello world" || !s.LastSaved.At.Equal(now) {
		t.Errorf("LastSaved = %+v, want (hello world, %v)", s.LastSaved, now)
	}
}

func TestSaveCanceledLeavesStateUnchanged(t *testing.T) {
	before := State{
		Text:       "hello",
		LastSaved:  &Snapshot{Text: "hello", At: now.Add(-time.Hour)},
		ErrMessage: "Error when saving: earlier",
		Busy:       true,
	}

	s := Apply(before, SaveDone{Saved: false}, now)
	if s.Busy {
		t.Error("SaveDone should clear Busy")
	}
	if s.Text != before.Text || s.LastSaved != before.LastSaved || s.ErrMessage != before.ErrMessage {
		t.Errorf("cancel changed state: %+v", s)
	}
}

func TestSaveErrorSetsMessage(t *testing.T) {
	prev := &Snapshot{Text: "old", At: now.Add(-time.Hour)}
	before := State{Text: "hello", LastSaved: prev, Busy: true}

	s := Apply(before, SaveDone{Err: errors.New("disk full")}, now)
	if s.ErrMessage != "Error when saving: disk full" {
		t.Errorf("ErrMessage = %q", s.ErrMessage)
	}
	if s.LastSaved != prev {
		t.Error("a failed save must not touch LastSaved")
	}
	if s.Text != "hello" {
		t.Errorf("Text = %q, want hello", s.Text)
	}
}

func TestLoadLoadedReplacesTextAndSnapshot(t *testing.T) {
	before := State{Text: "draft", ErrMessage: "Error when loading: earlier", Busy: true}

	s := Apply(before, LoadDone{Loaded: true, Contents: "from disk"}, now)
	if s.Text != "from disk" {
		t.Errorf("Text = %q, want from disk", s.Text)
	}
	if s.LastSaved == nil || s.LastSaved.Text != "from disk" || !s.LastSaved.At.Equal(now) {
		t.Errorf("LastSaved = %+v", s.LastSaved)
	}
	if s.ErrMessage != "" {
		t.Errorf("ErrMessage = %q, want cleared", s.ErrMessage)
	}
}

func TestLoadCanceledLeavesStateUnchanged(t *testing.T) {
	before := State{Text: "draft", Busy: true}

	s := Apply(before, LoadDone{Loaded: false}, now)
	if s.Busy {
		t.Error("LoadDone should clear Busy")
	}
	if s.Text != "draft" || s.LastSaved != nil || s.ErrMessage != "" {
		t.Errorf("cancel changed state: %+v", s)
	}
}

func TestLoadErrorKeepsText(t *testing.T) {
	before := State{Text: "draft", Busy: true}

	s := Apply(before, LoadDone{Err: errors.New("permission denied")}, now)
	if s.ErrMessage != "Error when loading: permission denied" {
		t.Errorf("ErrMessage = %q", s.ErrMessage)
	}
	if s.Text != "draft" {
		t.Errorf("Text = %q, want draft", s.Text)
	}
	if s.LastSaved != nil {
		t.Error("a failed load must not set LastSaved")
	}
}

// Save dialog scenario: "hello world" saved, then edited. The snapshot keeps
// the saved text, not the edited text.
func TestSnapshotNotTrackedAgainstEdits(t *testing.T) {
	s := State{Text: "hello world"}
	s = Apply(s, SaveRequested{}, now)
	s = Apply(s, SaveDone{Saved: true}, now)
	s = Apply(s, EditText{Text: "hello world, edited"}, now)

	if s.LastSaved.Text != "hello world" {
		t.Errorf("LastSaved.Text = %q, want the text at save time", s.LastSaved.Text)
	}
	if s.Text != "hello world, edited" {
		t.Errorf("Text = %q", s.Text)
	}
}
