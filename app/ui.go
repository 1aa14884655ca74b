package main

import (
	"strings"

	"gioui.org/widget"
)

// UI holds the widgets for the editor form.
type UI struct {
	Editor  widget.Editor
	SaveBtn widget.Clickable
	LoadBtn widget.Clickable
	Dirty   bool
}

// NewUI creates the form widgets with default settings.
func NewUI() *UI {
	ui := &UI{}
	ui.Editor.SingleLine = false
	ui.Editor.Submit = false
	return ui
}

// Lines returns the text buffer as a slice of lines.
func (ui *UI) Lines() []string {
	t := ui.Editor.Text()
	if t == "" {
		return []string{""}
	}
	return strings.Split(t, "\n")
}

// LineCount returns the number of lines in the buffer.
func (ui *UI) LineCount() int {
	return len(ui.Lines())
}

// Title returns a window title string showing the dirty state.
func (ui *UI) Title() string {
	if ui.Dirty {
		return "* txtpad"
	}
	return "txtpad"
}
