package ui

import (
	"fmt"
	"image"
	"image/color"
	"os"

	"gioui.org/app"
	"gioui.org/gesture"
	"gioui.org/io/pointer"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"gioui.org/x/explorer"
	"github.com/oligo/gioview/theme"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/shiny/materialdesign/icons"

	"github.com/OpenTraceLab/multislider/internal/config"
	"github.com/OpenTraceLab/multislider/internal/ui/sliderview"
	"github.com/OpenTraceLab/multislider/pkg/slider"
	"github.com/OpenTraceLab/multislider/pkg/touchscript"
)

type toolButton struct {
	name  string
	icon  *widget.Icon
	click widget.Clickable
}

// App drives the Gio slider playground.
type App struct {
	Window *app.Window
	Theme  *theme.Theme
	State  *AppState

	ops      op.Ops
	explorer *explorer.Explorer
	log      zerolog.Logger

	cards    []*sliderCard
	focus    int
	cardList layout.List
	logList  layout.List

	rtlBtn    toolButton
	darkBtn   toolButton
	recordBtn toolButton
	stopIcon  *widget.Icon
	replayBtn toolButton
	addIcon   *widget.Icon
	delIcon   *widget.Icon
	resetIcon *widget.Icon

	recorder *gestureRecorder
	scripts  chan *touchscript.Script

	logPaneHeight float32
	logSplitter   gesture.Drag
	logSplitLastY float32
	logSplitDrag  bool
}

// New wires the Gio window, theme, sliders and shared state together.
// Sliders log through the global logger as configured when New runs.
func New(window *app.Window, state *AppState, cfg *config.AppConfig) (*App, error) {
	if state == nil {
		state = NewStateFromConfig(cfg)
	}
	cards, err := newCards(cfg)
	if err != nil {
		return nil, err
	}

	a := &App{
		Window:   window,
		Theme:    theme.NewTheme("", nil, true),
		State:    state,
		log:      log.With().Str("module", "ui").Logger(),
		cards:    cards,
		cardList: layout.List{Axis: layout.Vertical},
		logList:  layout.List{Axis: layout.Vertical, ScrollToEnd: true},
		scripts:  make(chan *touchscript.Script, 1),
	}
	if window != nil {
		a.explorer = explorer.NewExplorer(window)
	}
	a.initIcons()
	for i, c := range a.cards {
		a.wireCard(i, c)
	}
	a.applyPalette()
	return a, nil
}

// Run processes Gio events until the window is closed.
func (a *App) Run() error {
	for {
		e := a.Window.Event()
		if a.explorer != nil {
			a.explorer.ListenEvents(e)
		}
		switch ev := e.(type) {
		case app.DestroyEvent:
			return ev.Err
		case app.FrameEvent:
			gtx := app.NewContext(&a.ops, ev)
			a.layout(gtx)
			ev.Frame(gtx.Ops)
		}
	}
}

func (a *App) initIcons() {
	makeIcon := func(data []byte, name string) *widget.Icon {
		icon, err := widget.NewIcon(data)
		if err != nil {
			a.log.Warn().Err(err).Str("icon", name).Msg("failed to load icon")
			return nil
		}
		return icon
	}
	a.rtlBtn = toolButton{name: "Direction", icon: makeIcon(icons.ActionSwapHoriz, "direction")}
	a.darkBtn = toolButton{name: "Theme", icon: makeIcon(icons.ImageBrightness4, "theme")}
	a.recordBtn = toolButton{name: "Record", icon: makeIcon(icons.AVFiberManualRecord, "record")}
	a.replayBtn = toolButton{name: "Replay", icon: makeIcon(icons.AVPlayArrow, "replay")}
	a.stopIcon = makeIcon(icons.AVStop, "stop")
	a.addIcon = makeIcon(icons.ContentAdd, "add")
	a.delIcon = makeIcon(icons.ContentRemove, "remove")
	a.resetIcon = makeIcon(icons.ActionAutorenew, "reset")
}

// wireCard attaches loggers, handlers and the gesture observer to a card.
func (a *App) wireCard(idx int, c *sliderCard) {
	s := c.view.Slider
	s.SetLogger(log.With().Str("module", "slider").Str("slider", c.name).Logger())

	s.SetValueChangeHandler(&slider.EventHandler{Handle: func(ev slider.ChangeEvent) {
		a.log.Debug().Str("slider", c.name).Int("thumb", ev.Index).Int("value", ev.Value).
			Bool("user", ev.FromUser).Msg("value changed")
		a.State.SetStatus(c.summary())
	}})
	s.SetTrackingHandler(&slider.EventHandler{Handle: func(ev slider.ChangeEvent) {
		a.log.Info().Str("slider", c.name).Int("thumb", ev.Index).Int("value", ev.Value).
			Msgf("tracking %s", ev.Kind)
	}})

	c.view.OnInvalidate = a.invalidate
	c.view.Observe = func(ev slider.PointerEvent) {
		if ev.Action == slider.TouchDown {
			a.focus = idx
		}
		if a.recorder != nil && a.recorder.observe(c.view, ev) {
			a.State.CountRecorded()
		}
	}
}

func (a *App) applyPalette() {
	if a.Theme == nil {
		return
	}
	if a.State.Snapshot().Dark {
		a.Theme.WithPalette(theme.Palette{
			Bg:         color.NRGBA{R: 18, G: 20, B: 26, A: 255},
			Fg:         color.NRGBA{R: 233, G: 236, B: 245, A: 255},
			ContrastBg: color.NRGBA{R: 120, G: 150, B: 255, A: 255},
			ContrastFg: color.NRGBA{R: 12, G: 16, B: 24, A: 255},
			Bg2:        color.NRGBA{R: 34, G: 40, B: 50, A: 255},
		})
	} else {
		a.Theme.WithPalette(theme.Palette{
			Bg:         color.NRGBA{R: 245, G: 247, B: 253, A: 255},
			Fg:         color.NRGBA{R: 34, G: 37, B: 49, A: 255},
			ContrastBg: color.NRGBA{R: 80, G: 120, B: 255, A: 255},
			ContrastFg: color.NRGBA{R: 255, G: 255, B: 255, A: 255},
			Bg2:        color.NRGBA{R: 225, G: 230, B: 244, A: 255},
		})
	}

	colors := sliderview.DefaultColors()
	colors.Range = a.Theme.Palette.ContrastBg
	colors.Thumb = a.Theme.Palette.ContrastBg
	colors.Track = a.Theme.Bg2
	for _, c := range a.cards {
		c.view.Colors = colors
	}
}

func (a *App) layout(gtx layout.Context) layout.Dimensions {
	a.drainScripts()
	state := a.State.Snapshot()

	paint.FillShape(gtx.Ops, a.Theme.Palette.Bg, clip.Rect{Max: gtx.Constraints.Max}.Op())

	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return a.layoutTopBar(gtx, state)
		}),
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			return a.layoutMainPanels(gtx, state)
		}),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return a.layoutStatus(gtx, state)
		}),
	)
}

func (a *App) layoutTopBar(gtx layout.Context, state StateSnapshot) layout.Dimensions {
	for a.rtlBtn.click.Clicked(gtx) {
		a.State.SetRTL(!state.RTL)
		a.log.Info().Bool("rtl", !state.RTL).Msg("layout direction changed")
		a.invalidate()
	}
	for a.darkBtn.click.Clicked(gtx) {
		a.State.SetDark(!state.Dark)
		a.applyPalette()
		a.invalidate()
	}
	for a.recordBtn.click.Clicked(gtx) {
		a.toggleRecording()
	}
	for a.replayBtn.click.Clicked(gtx) {
		go a.chooseScript()
	}

	recordIcon := a.recordBtn.icon
	if state.Recording {
		recordIcon = a.stopIcon
	}

	return layout.Inset{
		Top: unit.Dp(12), Bottom: unit.Dp(4), Left: unit.Dp(16), Right: unit.Dp(16),
	}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				lbl := material.H6(a.Theme.Theme, "Multi-thumb Slider")
				lbl.Color = a.Theme.Palette.Fg
				return lbl.Layout(gtx)
			}),
			layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
				return layout.Dimensions{}
			}),
			layout.Rigid(a.iconButton(&a.rtlBtn.click, a.rtlBtn.icon, a.rtlBtn.name)),
			layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
			layout.Rigid(a.iconButton(&a.darkBtn.click, a.darkBtn.icon, a.darkBtn.name)),
			layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
			layout.Rigid(a.iconButton(&a.recordBtn.click, recordIcon, a.recordBtn.name)),
			layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
			layout.Rigid(a.iconButton(&a.replayBtn.click, a.replayBtn.icon, a.replayBtn.name)),
		)
	})
}

func (a *App) iconButton(click *widget.Clickable, icon *widget.Icon, desc string) layout.Widget {
	return func(gtx layout.Context) layout.Dimensions {
		if icon == nil {
			btn := material.Button(a.Theme.Theme, click, desc)
			btn.Inset = layout.UniformInset(unit.Dp(6))
			return btn.Layout(gtx)
		}
		btn := material.IconButton(a.Theme.Theme, click, icon, desc)
		btn.Size = unit.Dp(20)
		btn.Inset = layout.UniformInset(unit.Dp(8))
		return btn.Layout(gtx)
	}
}

func (a *App) layoutMainPanels(gtx layout.Context, state StateSnapshot) layout.Dimensions {
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			return layout.Inset{Left: unit.Dp(12), Right: unit.Dp(12), Bottom: unit.Dp(8)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				return a.layoutCards(gtx, state)
			})
		}),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return a.layoutLogSplitter(gtx)
		}),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return a.layoutLogPane(gtx, state)
		}),
	)
}

// layoutCards lists the sliders. The list scrolls, so every view defers
// to it until a drag passes the touch slop.
func (a *App) layoutCards(gtx layout.Context, state StateSnapshot) layout.Dimensions {
	if state.RTL {
		gtx.Locale = system.Locale{Language: gtx.Locale.Language, Direction: system.RTL}
	} else {
		gtx.Locale = system.Locale{Language: gtx.Locale.Language, Direction: system.LTR}
	}
	return a.cardList.Layout(gtx, len(a.cards), func(gtx layout.Context, idx int) layout.Dimensions {
		return layout.Inset{Bottom: unit.Dp(10)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			return a.layoutCard(gtx, a.cards[idx])
		})
	})
}

func (a *App) layoutCard(gtx layout.Context, c *sliderCard) layout.Dimensions {
	for c.add.Clicked(gtx) {
		c.addThumb()
		a.log.Info().Str("slider", c.name).Int("thumbs", c.view.Slider.Len()).Msg("thumb added")
	}
	for c.remove.Clicked(gtx) {
		if c.removeThumb() {
			a.log.Info().Str("slider", c.name).Int("thumbs", c.view.Slider.Len()).Msg("thumb removed")
		}
	}
	for c.reset.Clicked(gtx) {
		c.restore()
		a.log.Info().Str("slider", c.name).Msg("slider reset")
	}

	return a.layoutPanelSurface(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
					layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
						lbl := material.Body1(a.Theme.Theme, c.summary())
						lbl.Color = a.Theme.Palette.Fg
						return lbl.Layout(gtx)
					}),
					layout.Rigid(a.iconButton(&c.add, a.addIcon, "Add thumb")),
					layout.Rigid(layout.Spacer{Width: unit.Dp(6)}.Layout),
					layout.Rigid(a.iconButton(&c.remove, a.delIcon, "Remove thumb")),
					layout.Rigid(layout.Spacer{Width: unit.Dp(6)}.Layout),
					layout.Rigid(a.iconButton(&c.reset, a.resetIcon, "Reset")),
				)
			}),
			layout.Rigid(layout.Spacer{Height: unit.Dp(6)}.Layout),
			layout.Rigid(c.view.Layout),
		)
	})
}

func (a *App) layoutPanelSurface(gtx layout.Context, body layout.Widget) layout.Dimensions {
	return layout.Stack{}.Layout(gtx,
		layout.Expanded(func(gtx layout.Context) layout.Dimensions {
			rr := gtx.Dp(unit.Dp(10))
			paint.FillShape(gtx.Ops, a.Theme.Bg2, clip.RRect{
				Rect: image.Rectangle{Max: gtx.Constraints.Min},
				NW:   rr, NE: rr, SW: rr, SE: rr,
			}.Op(gtx.Ops))
			return layout.Dimensions{Size: gtx.Constraints.Min}
		}),
		layout.Stacked(func(gtx layout.Context) layout.Dimensions {
			return layout.Inset{
				Left: unit.Dp(10), Right: unit.Dp(10), Top: unit.Dp(10), Bottom: unit.Dp(10),
			}.Layout(gtx, body)
		}),
	)
}

func (a *App) layoutLogPane(gtx layout.Context, state StateSnapshot) layout.Dimensions {
	a.ensureLogPaneHeight(gtx)
	height := int(a.logPaneHeight)
	if h := gtx.Constraints.Max.Y; h > 0 && height > h {
		height = h
	}
	gtx.Constraints.Min.Y = height
	gtx.Constraints.Max.Y = height
	return layout.Inset{
		Left: unit.Dp(16), Right: unit.Dp(16), Top: unit.Dp(6), Bottom: unit.Dp(6),
	}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return a.layoutLogs(gtx, state)
	})
}

func (a *App) layoutLogSplitter(gtx layout.Context) layout.Dimensions {
	height := gtx.Dp(unit.Dp(10))
	if height < 4 {
		height = 4
	}
	size := image.Pt(gtx.Constraints.Max.X, height)
	if size.X == 0 {
		size.X = gtx.Dp(unit.Dp(400))
	}
	rect := clip.Rect{Max: size}
	paint.FillShape(gtx.Ops, a.Theme.Bg2, rect.Op())

	stack := rect.Push(gtx.Ops)
	a.logSplitter.Add(gtx.Ops)
	stack.Pop()

	if ev, ok := a.logSplitter.Update(gtx.Metric, gtx.Source, gesture.Vertical); ok {
		switch ev.Kind {
		case pointer.Press:
			a.logSplitDrag = true
			a.logSplitLastY = ev.Position.Y
		case pointer.Drag:
			if a.logSplitDrag {
				dy := ev.Position.Y - a.logSplitLastY
				a.logSplitLastY = ev.Position.Y
				a.logPaneHeight -= dy
				a.clampLogPaneHeight(gtx)
				a.invalidate()
			}
		case pointer.Release, pointer.Cancel:
			a.logSplitDrag = false
		}
	}
	return layout.Dimensions{Size: size}
}

func (a *App) ensureLogPaneHeight(gtx layout.Context) {
	if a.logPaneHeight > 0 {
		return
	}
	a.logPaneHeight = float32(gtx.Dp(unit.Dp(160)))
	a.clampLogPaneHeight(gtx)
}

func (a *App) clampLogPaneHeight(gtx layout.Context) {
	min := float32(gtx.Dp(unit.Dp(80)))
	max := float32(gtx.Dp(unit.Dp(400)))
	if a.logPaneHeight < min {
		a.logPaneHeight = min
	}
	if a.logPaneHeight > max {
		a.logPaneHeight = max
	}
}

func (a *App) layoutLogs(gtx layout.Context, state StateSnapshot) layout.Dimensions {
	if len(state.Logs) == 0 {
		lbl := material.Caption(a.Theme.Theme, "Logs will appear here.")
		lbl.Color = a.Theme.Palette.Fg
		return lbl.Layout(gtx)
	}
	return a.logList.Layout(gtx, len(state.Logs), func(gtx layout.Context, idx int) layout.Dimensions {
		if idx >= len(state.Logs) {
			return layout.Dimensions{}
		}
		lbl := material.Caption(a.Theme.Theme, state.Logs[idx])
		lbl.Color = a.Theme.Palette.Fg
		return lbl.Layout(gtx)
	})
}

func (a *App) layoutStatus(gtx layout.Context, state StateSnapshot) layout.Dimensions {
	dirLabel := "LTR"
	if state.RTL {
		dirLabel = "RTL"
	}
	recLabel := "Recording: off"
	if state.Recording {
		recLabel = fmt.Sprintf("Recording: %d events", state.Recorded)
	}
	statusLabel := fmt.Sprintf("Status: %s", state.Status)
	if state.LastError != nil {
		statusLabel = fmt.Sprintf("Error: %v", state.LastError)
	}
	versionLabel := fmt.Sprintf("Version: %s", state.AppVersion)

	body := func(text string) layout.Widget {
		lbl := material.Body2(a.Theme.Theme, text)
		lbl.Color = a.Theme.Palette.Fg
		return lbl.Layout
	}

	return layout.Stack{}.Layout(gtx,
		layout.Expanded(func(gtx layout.Context) layout.Dimensions {
			paint.FillShape(gtx.Ops, a.Theme.Bg2, clip.Rect{Max: gtx.Constraints.Min}.Op())
			return layout.Dimensions{Size: gtx.Constraints.Min}
		}),
		layout.Stacked(func(gtx layout.Context) layout.Dimensions {
			inset := layout.Inset{Left: unit.Dp(16), Right: unit.Dp(16), Top: unit.Dp(8), Bottom: unit.Dp(8)}
			return inset.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
					layout.Rigid(body(versionLabel)),
					layout.Rigid(layout.Spacer{Width: unit.Dp(18)}.Layout),
					layout.Rigid(body(dirLabel)),
					layout.Rigid(layout.Spacer{Width: unit.Dp(18)}.Layout),
					layout.Rigid(body(recLabel)),
					layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
						return layout.Dimensions{}
					}),
					layout.Rigid(body(statusLabel)),
				)
			})
		}),
	)
}

// toggleRecording starts a recording, or stops it and saves the script.
func (a *App) toggleRecording() {
	if a.recorder == nil {
		a.recorder = newGestureRecorder()
		a.State.SetRecording(true)
		a.log.Info().Msg("recording gestures")
		a.invalidate()
		return
	}

	rec := a.recorder
	a.recorder = nil
	a.State.SetRecording(false)
	if rec.empty() {
		a.log.Info().Msg("recording stopped, nothing captured")
		a.invalidate()
		return
	}
	go a.saveRecording(rec)
}

// saveRecording writes a recorded script to the configured path, or asks
// for a destination when none is set.
func (a *App) saveRecording(rec *gestureRecorder) {
	var err error
	defer func() {
		a.State.SetError(err)
		a.invalidate()
	}()

	if path := a.State.RecordPath(); path != "" {
		var f *os.File
		if f, err = os.Create(path); err != nil {
			a.log.Error().Err(err).Str("path", path).Msg("saving recording failed")
			return
		}
		defer f.Close()
		if err = rec.writeTo(f); err != nil {
			a.log.Error().Err(err).Str("path", path).Msg("saving recording failed")
			return
		}
		a.log.Info().Str("path", path).Int("events", len(rec.script.Events)).Msg("recording saved")
		return
	}

	if a.explorer == nil {
		return
	}
	w, cerr := a.explorer.CreateFile("gesture.msl")
	if cerr != nil {
		if cerr != explorer.ErrUserDecline {
			err = cerr
			a.log.Error().Err(err).Msg("saving recording failed")
		}
		return
	}
	defer w.Close()
	if err = rec.writeTo(w); err != nil {
		a.log.Error().Err(err).Msg("saving recording failed")
		return
	}
	a.log.Info().Int("events", len(rec.script.Events)).Msg("recording saved")
}

// chooseScript asks for a gesture script and queues it for replay on the
// UI goroutine.
func (a *App) chooseScript() {
	if a.explorer == nil {
		return
	}
	file, err := a.explorer.ChooseFile("msl", "txt")
	if err != nil {
		if err != explorer.ErrUserDecline {
			a.log.Error().Err(err).Msg("opening script failed")
			a.State.SetError(err)
			a.invalidate()
		}
		return
	}
	defer file.Close()

	p, err := touchscript.NewParser()
	if err == nil {
		var sc *touchscript.Script
		if sc, err = p.Parse(file); err == nil {
			a.scripts <- sc
		}
	}
	if err != nil {
		a.log.Error().Err(err).Msg("loading script failed")
	}
	a.State.SetError(err)
	a.invalidate()
}

// drainScripts replays queued scripts into the slider touched last.
func (a *App) drainScripts() {
	for {
		select {
		case sc := <-a.scripts:
			c := a.cards[a.focus]
			if sz := c.view.Size(); sz.X != sc.Setup.Width {
				a.log.Warn().Int("script_width", sc.Setup.Width).Int("view_width", sz.X).
					Msg("script recorded at a different width")
			}
			n := replay(c.view.Slider, sc)
			a.log.Info().Str("slider", c.name).Int("events", n).Msg("script replayed")
		default:
			return
		}
	}
}

// invalidate requests a new frame.
func (a *App) invalidate() {
	if a.Window != nil {
		a.Window.Invalidate()
	}
}
