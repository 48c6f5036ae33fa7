package ui

import (
	"fmt"
	"io"
	"strings"

	"gioui.org/unit"
	"gioui.org/widget"

	"github.com/OpenTraceLab/multislider/internal/config"
	"github.com/OpenTraceLab/multislider/internal/ui/sliderview"
	"github.com/OpenTraceLab/multislider/pkg/slider"
	"github.com/OpenTraceLab/multislider/pkg/touchscript"
)

// sliderCard is one demo slider together with its card buttons.
type sliderCard struct {
	name   string
	thumbs int
	view   *sliderview.View

	add    widget.Clickable
	remove widget.Clickable
	reset  widget.Clickable
}

type cardSpec struct {
	name   string
	thumbs int // 0 takes the configured count
	tune   func(*slider.Config)
}

var cardSpecs = []cardSpec{
	{name: "single", thumbs: 1},
	{name: "configured"},
	{name: "many", thumbs: 5, tune: func(c *slider.Config) {
		c.Step = 5
		c.DrawApart = true
	}},
}

// newCards builds the demo sliders from the persisted settings.
func newCards(cfg *config.AppConfig) ([]*sliderCard, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	base, err := cfg.SliderConfig()
	if err != nil {
		return nil, err
	}

	cards := make([]*sliderCard, 0, len(cardSpecs))
	for _, spec := range cardSpecs {
		sc := *base
		if spec.thumbs > 0 {
			sc.Thumbs = spec.thumbs
		}
		if spec.tune != nil {
			spec.tune(&sc)
		}
		v, err := sliderview.New(&sc)
		if err != nil {
			return nil, fmt.Errorf("slider %q: %w", spec.name, err)
		}
		v.SidePadding = unit.Dp(cfg.UI.Padding)
		v.Scrolling = true
		cards = append(cards, &sliderCard{name: spec.name, thumbs: sc.Thumbs, view: v})
	}
	return cards, nil
}

// summary renders the card values for labels and the status line.
func (c *sliderCard) summary() string {
	vals := c.view.Slider.Values()
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = fmt.Sprint(v)
	}
	return fmt.Sprintf("%s: [%s]", c.name, strings.Join(parts, " "))
}

// restore puts the card back to its initial thumb count, evenly spread.
func (c *sliderCard) restore() {
	c.view.Slider.SetThumbCount(c.thumbs, true)
}

func (c *sliderCard) addThumb() {
	s := c.view.Slider
	s.AppendThumb(s.ScaleMax())
	s.Reposition()
}

func (c *sliderCard) removeThumb() bool {
	s := c.view.Slider
	if s.Len() == 0 {
		return false
	}
	s.RemoveThumbAt(s.Len() - 1)
	return true
}

// gestureRecorder captures the events seen by the first slider touched
// after recording starts. Recording begins with a fresh gesture so the
// written script is always well nested.
type gestureRecorder struct {
	target slider.Host
	script *touchscript.Script
	active int
}

func newGestureRecorder() *gestureRecorder {
	return &gestureRecorder{script: &touchscript.Script{Setup: touchscript.DefaultSetup}}
}

// observe records ev when it comes from the recorded host. It reports
// whether the event was kept.
func (r *gestureRecorder) observe(h slider.Host, ev slider.PointerEvent) bool {
	if r.target == nil {
		if ev.Action != slider.TouchDown {
			return false
		}
		r.target = h
		size := h.Size()
		r.script.Setup = touchscript.Setup{
			Width:     size.X,
			Height:    size.Y,
			Padding:   h.Padding(),
			RTL:       h.RTL(),
			Scrolling: h.InScrollingContainer(),
		}
	}
	if h != r.target {
		return false
	}
	before := len(r.script.Events)
	r.script.Record(ev)
	if len(r.script.Events) == before {
		return false
	}
	switch ev.Action {
	case slider.TouchDown, slider.TouchPointerDown:
		r.active++
	case slider.TouchUp, slider.TouchPointerUp:
		r.active--
	case slider.TouchCancel:
		r.active = 0
	}
	return true
}

// finish cancels a gesture still in progress.
func (r *gestureRecorder) finish() {
	if r.active > 0 {
		r.script.Record(slider.PointerEvent{Action: slider.TouchCancel})
		r.active = 0
	}
}

func (r *gestureRecorder) empty() bool { return len(r.script.Events) == 0 }

func (r *gestureRecorder) writeTo(w io.Writer) error {
	r.finish()
	_, err := r.script.WriteTo(w)
	return err
}

// replay feeds a parsed script to a slider and returns the number of
// events the slider consumed.
func replay(s *slider.Slider, sc *touchscript.Script) int {
	handled := 0
	for _, ev := range sc.PointerEvents() {
		if s.HandleEvent(ev) {
			handled++
		}
	}
	return handled
}
