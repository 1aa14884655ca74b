package main

import (
	"image/color"

	"gioui.org/font"
	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"txtpad/app/state"
)

var (
	statusOKColor  = color.NRGBA{R: 0x4E, G: 0xC9, B: 0xB0, A: 0xFF} // teal
	statusErrColor = color.NRGBA{R: 0xF4, G: 0x47, B: 0x47, A: 0xFF} // red
	hintColor      = color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xFF}
	selectionColor = color.NRGBA{R: 0x26, G: 0x4F, B: 0x78, A: 0xFF}
)

func layoutEditor(gtx C, th *material.Theme, ui *UI) D {
	ed := material.Editor(th, &ui.Editor, "Type here…")
	ed.Font = font.Font{Typeface: "Go Mono"}
	ed.Color = editorFg
	ed.HintColor = hintColor
	ed.TextSize = th.TextSize
	ed.SelectionColor = selectionColor

	return layout.UniformInset(unit.Dp(4)).Layout(gtx, ed.Layout)
}

// layoutButtons renders the Save and Load buttons. While a workflow is in
// flight the row is disabled so clicks are not delivered.
func layoutButtons(gtx C, th *material.Theme, ui *UI, busy bool) D {
	if busy {
		gtx = gtx.Disabled()
	}
	return layout.UniformInset(unit.Dp(8)).Layout(gtx, func(gtx C) D {
		return layout.Flex{Axis: layout.Horizontal}.Layout(gtx,
			layout.Rigid(material.Button(th, &ui.SaveBtn, "Save").Layout),
			layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
			layout.Rigid(material.Button(th, &ui.LoadBtn, "Load").Layout),
		)
	})
}

// layoutStatus renders the most recent error, or the last successful save.
func layoutStatus(gtx C, th *material.Theme, st state.State) D {
	msg := ""
	c := statusOKColor
	switch {
	case st.ErrMessage != "":
		msg = st.ErrMessage
		c = statusErrColor
	case st.LastSaved != nil:
		msg = "Saved " + st.LastSaved.At.Format("15:04:05")
	}
	if msg == "" {
		return D{}
	}

	lbl := material.Label(th, th.TextSize, msg)
	lbl.Color = c
	lbl.MaxLines = 1
	return layout.Inset{Left: unit.Dp(8), Right: unit.Dp(8)}.Layout(gtx, lbl.Layout)
}
