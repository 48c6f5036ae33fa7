// Package sliderview adapts a slider.Slider to a Gio widget. The view is
// the slider's Host: it reports the laid out geometry, forwards pointer
// input and grabs the pointer when the slider claims a gesture.
package sliderview

import (
	"image"
	"image/color"
	"sort"

	"gioui.org/f32"
	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/OpenTraceLab/multislider/pkg/slider"
)

// viewLog is resolved per call; the UI installs its log pane writer after
// package init.
func viewLog() *zerolog.Logger {
	l := log.With().Str("module", "sliderview").Logger()
	return &l
}

// Colors used to paint a slider.
type Colors struct {
	Track       color.NRGBA
	Range       color.NRGBA
	Thumb       color.NRGBA
	ThumbActive color.NRGBA
	Disabled    color.NRGBA
}

// DefaultColors is a neutral blue palette.
func DefaultColors() Colors {
	return Colors{
		Track:       color.NRGBA{R: 200, G: 204, B: 216, A: 255},
		Range:       color.NRGBA{R: 80, G: 120, B: 255, A: 255},
		Thumb:       color.NRGBA{R: 80, G: 120, B: 255, A: 255},
		ThumbActive: color.NRGBA{R: 40, G: 70, B: 200, A: 255},
		Disabled:    color.NRGBA{R: 150, G: 150, B: 160, A: 255},
	}
}

// View draws a slider and feeds it Gio pointer events.
type View struct {
	Slider *slider.Slider
	Colors Colors

	Height      unit.Dp // widget height (default 48)
	SidePadding unit.Dp // horizontal padding on both sides
	ThumbSize   unit.Dp // thumb diameter (default 24)
	TrackSize   unit.Dp // track thickness (default 4)

	// Scrolling marks a view placed inside a scrollable container, making
	// the slider wait for the touch slop before taking a gesture.
	Scrolling bool

	// OnInvalidate is called whenever the slider requests a redraw.
	OnInvalidate func()
	// Observe, when set, sees every translated event before the slider.
	Observe func(slider.PointerEvent)

	size    image.Point
	pad     slider.Insets
	rtl     bool
	thumbPx int
	claim   bool
	active  map[pointer.ID]f32.Point
}

// New builds a view and a slider hosted by it.
func New(cfg *slider.Config) (*View, error) {
	v := &View{
		Colors:    DefaultColors(),
		Height:    48,
		ThumbSize: 24,
		TrackSize: 4,
		active:    make(map[pointer.ID]f32.Point),
	}
	s, err := slider.New(cfg, v)
	if err != nil {
		return nil, err
	}
	v.Slider = s
	return v, nil
}

func (v *View) Size() image.Point { return v.size }

func (v *View) Padding() slider.Insets { return v.pad }

func (v *View) RTL() bool { return v.rtl }

func (v *View) InScrollingContainer() bool { return v.Scrolling }

// ClaimDrag is honoured on the next event pass by grabbing every active
// pointer, which cancels competing handlers such as a scrolling list.
func (v *View) ClaimDrag() { v.claim = true }

// Invalidate requests a new frame. Gio repaints the whole window, so the
// rectangle is not used.
func (v *View) Invalidate(image.Rectangle) {
	if v.OnInvalidate != nil {
		v.OnInvalidate()
	}
}

// Update processes pending pointer events.
func (v *View) Update(gtx layout.Context) {
	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target: v,
			Kinds:  pointer.Press | pointer.Drag | pointer.Release | pointer.Cancel,
		})
		if !ok {
			break
		}
		e, ok := ev.(pointer.Event)
		if !ok {
			continue
		}
		pe, ok := v.translate(e)
		if !ok {
			continue
		}
		if v.Observe != nil {
			v.Observe(pe)
		}
		v.Slider.HandleEvent(pe)
		if v.claim {
			v.claim = false
			for id := range v.active {
				gtx.Execute(pointer.GrabCmd{Tag: v, ID: id})
			}
			viewLog().Debug().Int("pointers", len(v.active)).Msg("pointer grabbed")
		}
	}
}

// translate turns a Gio pointer event into a slider event, tracking which
// pointers are down.
func (v *View) translate(e pointer.Event) (slider.PointerEvent, bool) {
	id := e.PointerID
	_, down := v.active[id]

	switch e.Kind {
	case pointer.Press:
		if down {
			return slider.PointerEvent{}, false
		}
		if e.Source == pointer.Mouse && !e.Buttons.Contain(pointer.ButtonPrimary) {
			return slider.PointerEvent{}, false
		}
		action := slider.TouchPointerDown
		if len(v.active) == 0 {
			action = slider.TouchDown
		}
		v.active[id] = e.Position
		return v.event(action, id), true

	case pointer.Drag:
		if !down {
			return slider.PointerEvent{}, false
		}
		v.active[id] = e.Position
		return v.event(slider.TouchMove, id), true

	case pointer.Release:
		if !down {
			return slider.PointerEvent{}, false
		}
		v.active[id] = e.Position
		action := slider.TouchPointerUp
		if len(v.active) == 1 {
			action = slider.TouchUp
		}
		pe := v.event(action, id)
		delete(v.active, id)
		return pe, true

	case pointer.Cancel:
		if len(v.active) == 0 {
			return slider.PointerEvent{}, false
		}
		v.active = make(map[pointer.ID]f32.Point)
		return slider.PointerEvent{Action: slider.TouchCancel}, true
	}
	return slider.PointerEvent{}, false
}

func (v *View) event(action slider.TouchAction, id pointer.ID) slider.PointerEvent {
	ps := make([]slider.Pointer, 0, len(v.active))
	for pid, pos := range v.active {
		ps = append(ps, slider.Pointer{ID: slider.PointerID(pid), X: pos.X, Y: pos.Y})
	}
	sort.Slice(ps, func(i, j int) bool { return ps[i].ID < ps[j].ID })
	return slider.PointerEvent{Action: action, Pointer: slider.PointerID(id), Pointers: ps}
}

// Layout handles input, then lays out and paints the slider across the
// available width.
func (v *View) Layout(gtx layout.Context) layout.Dimensions {
	// events are hit tested against the previous frame's geometry
	v.Update(gtx)

	height := gtx.Dp(v.Height)
	v.size = gtx.Constraints.Constrain(image.Pt(gtx.Constraints.Max.X, height))
	pad := gtx.Dp(v.SidePadding)
	v.pad = slider.Insets{Left: pad, Right: pad}
	v.rtl = gtx.Locale.Direction == system.RTL

	if px := gtx.Dp(v.ThumbSize); px != v.thumbPx {
		v.thumbPx = px
		v.Slider.SetThumbStyle(slider.Style{Width: px, Height: px, Offset: px / 2})
	}

	area := clip.Rect{Max: v.size}.Push(gtx.Ops)
	event.Op(gtx.Ops, v)
	area.Pop()

	v.paint(gtx)
	return layout.Dimensions{Size: v.size}
}

func (v *View) paint(gtx layout.Context) {
	s := v.Slider
	track := s.TrackBounds()
	thick := gtx.Dp(v.TrackSize)
	mid := (track.Min.Y + track.Max.Y) / 2
	bar := func(r image.Rectangle) image.Rectangle {
		return image.Rect(r.Min.X, mid-thick/2, r.Max.X, mid-thick/2+thick)
	}

	paint.FillShape(gtx.Ops, v.Colors.Track, clip.Rect(bar(track)).Op())

	n := s.Len()
	for i := 0; i < n; i++ {
		// single thumbs fill from the start; otherwise every second range
		// is the selected span between a pair of thumbs
		if (n == 1 && i == 0) || i%2 == 1 {
			paint.FillShape(gtx.Ops, v.Colors.Range, clip.Rect(bar(s.RangeBounds(i))).Op())
		}
	}

	dragged := make(map[*slider.Thumb]bool)
	for _, t := range s.Dragging() {
		dragged[t] = true
	}
	for i, t := range s.Thumbs() {
		if t.Invisible() {
			continue
		}
		col := v.Colors.Thumb
		switch {
		case !t.Enabled() || !s.Enabled():
			col = v.Colors.Disabled
		case dragged[t]:
			col = v.Colors.ThumbActive
		}
		paint.FillShape(gtx.Ops, col, clip.Ellipse(s.ThumbBounds(i)).Op(gtx.Ops))
	}
}
