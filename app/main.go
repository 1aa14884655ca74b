package main

import (
	"image"
	"image/color"
	"log"
	"os"
	"time"

	"txtpad/app/config"
	"txtpad/app/fileio"
	"txtpad/app/state"

	"gioui.org/app"
	"gioui.org/font/gofont"
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"gioui.org/x/explorer"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

var (
	editorBg = color.NRGBA{R: 0x1E, G: 0x1E, B: 0x1E, A: 0xFF}
	editorFg = color.NRGBA{R: 0xD4, G: 0xD4, B: 0xD4, A: 0xFF}
)

func main() {
	go func() {
		w := new(app.Window)
		w.Option(app.Title("txtpad"), app.Size(unit.Dp(800), unit.Dp(600)))
		if err := run(w); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
}

func run(w *app.Window) error {
	cfg := config.Load()

	th := material.NewTheme()
	th.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))
	th.Face = "Go Mono"
	th.TextSize = unit.Sp(cfg.TextSize)

	ui := NewUI()
	st := state.State{}
	store := fileio.DiskStore{}
	expl := explorer.NewExplorer(w)

	var prompter fileio.Prompter = fileio.NativePrompter{}
	if cfg.Dialogs == config.DialogsExplorer {
		prompter = fileio.ExplorerPrompter{Expl: expl}
	}

	// Load file from command line if provided
	if len(os.Args) > 1 {
		contents, err := store.ReadText(os.Args[1])
		if err != nil {
			log.Printf("Failed to open %s: %v", os.Args[1], err)
		} else {
			st = state.Apply(st, state.LoadDone{Loaded: true, Contents: contents}, time.Now())
			ui.Editor.SetText(st.Text)
		}
	}

	var shortcutTag = new(bool)
	var saveCh <-chan fileio.SaveResult
	var loadCh <-chan fileio.LoadResult

	// At most one workflow is outstanding; requests while one is in flight
	// are dropped, matching the disabled buttons.
	requestSave := func() {
		if st.Busy {
			return
		}
		st = state.Apply(st, state.SaveRequested{}, time.Now())
		saveCh = fileio.SaveAsync(prompter, store, st.Text, cfg.DefaultDir)
	}
	requestLoad := func() {
		if st.Busy {
			return
		}
		st = state.Apply(st, state.LoadRequested{}, time.Now())
		loadCh = fileio.LoadAsync(prompter, store, cfg.DefaultDir)
	}

	// Channel-forward pattern for explorer compatibility
	events := make(chan event.Event)
	acks := make(chan struct{})
	go func() {
		for {
			ev := w.Event()
			events <- ev
			<-acks
			if _, ok := ev.(app.DestroyEvent); ok {
				return
			}
		}
	}()

	w.Option(app.Title(ui.Title()))

	var ops op.Ops
	for {
		select {
		case r := <-saveCh:
			saveCh = nil
			st = state.Apply(st, state.SaveDone{Saved: r.Outcome == fileio.SaveSaved, Err: r.Err}, time.Now())
			if r.Err != nil {
				log.Printf("Save error: %v", r.Err)
			} else if r.Outcome == fileio.SaveSaved {
				ui.Dirty = false
				w.Option(app.Title(ui.Title()))
			}
			w.Invalidate()

		case r := <-loadCh:
			loadCh = nil
			st = state.Apply(st, state.LoadDone{Loaded: !r.Outcome.Canceled, Contents: r.Outcome.Contents, Err: r.Err}, time.Now())
			if r.Err != nil {
				log.Printf("Load error: %v", r.Err)
			} else if !r.Outcome.Canceled {
				ui.Editor.SetText(st.Text)
				ui.Dirty = false
				w.Option(app.Title(ui.Title()))
			}
			w.Invalidate()

		case e := <-events:
			expl.ListenEvents(e)
			switch e := e.(type) {
			case app.DestroyEvent:
				acks <- struct{}{}
				return e.Err

			case app.FrameEvent:
				gtx := app.NewContext(&ops, e)

				// Handle keyboard shortcuts
				event.Op(gtx.Ops, shortcutTag)
				for {
					ev, ok := gtx.Event(
						key.Filter{Required: key.ModShortcut, Name: "O"},
						key.Filter{Required: key.ModShortcut, Name: "S"},
						key.Filter{Required: key.ModShortcut, Name: "="},
						key.Filter{Required: key.ModShortcut, Name: "-"},
						key.Filter{Required: key.ModShortcut, Name: "A"},
					)
					if !ok {
						break
					}
					if ke, ok := ev.(key.Event); ok && ke.State == key.Press {
						switch ke.Name {
						case "O":
							requestLoad()
						case "S":
							requestSave()
						case "=": // Cmd+= (Cmd+Plus)
							if th.TextSize < unit.Sp(48) {
								th.TextSize += unit.Sp(2)
							}
						case "-": // Cmd+-
							if th.TextSize > unit.Sp(8) {
								th.TextSize -= unit.Sp(2)
							}
						case "A": // Cmd+A / Ctrl+A: select all
							ui.Editor.SetCaret(ui.Editor.Len(), 0)
						}
					}
				}

				// Process editor events
				for {
					ev, ok := ui.Editor.Update(gtx)
					if !ok {
						break
					}
					if _, ok := ev.(widget.ChangeEvent); ok {
						st = state.Apply(st, state.EditText{Text: ui.Editor.Text()}, time.Now())
						if !ui.Dirty {
							ui.Dirty = true
							w.Option(app.Title(ui.Title()))
						}
					}
				}

				if ui.SaveBtn.Clicked(gtx) {
					requestSave()
				}
				if ui.LoadBtn.Clicked(gtx) {
					requestLoad()
				}

				// Fill background
				paint.FillShape(gtx.Ops, editorBg, clip.Rect(image.Rect(0, 0, gtx.Constraints.Max.X, gtx.Constraints.Max.Y)).Op())

				// Measure actual line height and editor padding
				lineHeight := MeasureLineHeight(gtx, th)
				topPad := gtx.Dp(unit.Dp(4)) // must match editor inset
				lineCount := ui.LineCount()

				// Layout: gutter | editor, then status line and buttons
				layout.Flex{Axis: layout.Vertical}.Layout(gtx,
					layout.Flexed(1, func(gtx C) D {
						return layout.Flex{Axis: layout.Horizontal}.Layout(gtx,
							layout.Rigid(func(gtx C) D {
								return LayoutGutter(gtx, th, lineCount, 0, lineHeight, topPad)
							}),
							layout.Flexed(1, func(gtx C) D {
								return layoutEditor(gtx, th, ui)
							}),
						)
					}),
					layout.Rigid(func(gtx C) D {
						return layoutStatus(gtx, th, st)
					}),
					layout.Rigid(func(gtx C) D {
						return layoutButtons(gtx, th, ui, st.Busy)
					}),
				)

				e.Frame(gtx.Ops)
			}
			acks <- struct{}{}
		}
	}
}
