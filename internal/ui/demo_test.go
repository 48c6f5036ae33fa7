package ui

import (
	"bytes"
	"errors"
	"testing"

	"github.com/OpenTraceLab/multislider/internal/config"
	"github.com/OpenTraceLab/multislider/pkg/slider"
	"github.com/OpenTraceLab/multislider/pkg/touchscript"
)

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestNewCards(t *testing.T) {
	cards, err := newCards(config.Default())
	if err != nil {
		t.Fatalf("newCards: %v", err)
	}
	if len(cards) != 3 {
		t.Fatalf("got %d cards, want 3", len(cards))
	}

	want := []struct {
		name   string
		values []int
	}{
		{"single", []int{0}},
		{"configured", []int{0, 100}},
		{"many", []int{0, 25, 50, 75, 100}},
	}
	for i, w := range want {
		c := cards[i]
		if c.name != w.name || !equalInts(c.view.Slider.Values(), w.values) {
			t.Errorf("card %d = %s %v, want %s %v", i, c.name, c.view.Slider.Values(), w.name, w.values)
		}
		if !c.view.Scrolling || c.view.SidePadding != 16 {
			t.Errorf("card %s view not set up for a scrolling list", c.name)
		}
	}
	many := cards[2].view.Slider
	if many.Step() != 5 || !many.DrawApart() {
		t.Fatalf("many: step %d apart %v", many.Step(), many.DrawApart())
	}
}

func TestNewCardsRejectsInvalidRange(t *testing.T) {
	cfg := config.Default()
	cfg.Slider.Min, cfg.Slider.Max = 50, 10
	if _, err := newCards(cfg); !errors.Is(err, slider.ErrInvalidRange) {
		t.Fatalf("newCards error = %v, want ErrInvalidRange", err)
	}
}

func TestCardThumbButtons(t *testing.T) {
	cards, err := newCards(config.Default())
	if err != nil {
		t.Fatalf("newCards: %v", err)
	}
	c := cards[1]

	c.addThumb()
	if got := c.view.Slider.Values(); !equalInts(got, []int{0, 50, 100}) {
		t.Fatalf("after add = %v", got)
	}
	if c.summary() != "configured: [0 50 100]" {
		t.Fatalf("summary = %q", c.summary())
	}
	if !c.removeThumb() || c.view.Slider.Len() != 2 {
		t.Fatalf("remove left %d thumbs", c.view.Slider.Len())
	}
	c.removeThumb()
	c.removeThumb()
	if c.removeThumb() {
		t.Fatalf("removeThumb on an empty slider reported success")
	}
	c.restore()
	if got := c.view.Slider.Values(); !equalInts(got, []int{0, 100}) {
		t.Fatalf("after restore = %v", got)
	}
}

func TestGestureRecorder(t *testing.T) {
	h := slider.NewSimHost(232, 48)
	h.Pad = slider.Insets{Left: 16, Right: 16}
	other := slider.NewSimHost(100, 48)

	rec := newGestureRecorder()
	if rec.observe(h, slider.Touch(slider.TouchMove, 0, 5, 20)) {
		t.Fatalf("recorded a move before any gesture started")
	}
	if !rec.observe(h, slider.Touch(slider.TouchDown, 0, 10, 20)) {
		t.Fatalf("down not recorded")
	}
	if rec.observe(other, slider.Touch(slider.TouchDown, 0, 50, 20)) {
		t.Fatalf("recorded an event from a second host")
	}
	rec.observe(h, slider.Touch(slider.TouchMove, 0, 30, 20))

	var buf bytes.Buffer
	if err := rec.writeTo(&buf); err != nil {
		t.Fatalf("writeTo: %v", err)
	}
	want := "size 232 48\npadding 16 0 16 0\ndown 0 10 20\nmove 0 30 20\ncancel\n"
	if buf.String() != want {
		t.Fatalf("script =\n%s\nwant\n%s", buf.String(), want)
	}

	p, err := touchscript.NewParser()
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	sc, err := p.ParseString(buf.String())
	if err != nil {
		t.Fatalf("recorded script does not parse: %v", err)
	}
	s, err := slider.New(slider.DefaultConfig(), sc.Host())
	if err != nil {
		t.Fatalf("slider.New: %v", err)
	}
	if n := replay(s, sc); n != 3 {
		t.Fatalf("replay handled %d events, want 3", n)
	}
	if got := s.Values(); !equalInts(got, []int{7, 100}) {
		t.Fatalf("Values() after replay = %v, want [7 100]", got)
	}
}

func TestReplayIntoDisabledSlider(t *testing.T) {
	p, err := touchscript.NewParser()
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	sc, err := p.ParseString("down 0 100 20\nup 0 100 20\n")
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	s, err := slider.New(slider.DefaultConfig(), sc.Host())
	if err != nil {
		t.Fatalf("slider.New: %v", err)
	}
	s.SetEnabled(false)
	if n := replay(s, sc); n != 0 {
		t.Fatalf("disabled slider consumed %d events", n)
	}
}
