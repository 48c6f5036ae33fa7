package slider

import "testing"

func TestTouchDragsNearestThumb(t *testing.T) {
	s, host := newTestSlider(t, 2, nil)
	rec := &recorder{}
	s.SetValueChangeHandler(rec.handler())
	s.SetTrackingHandler(rec.handler())

	s.HandleEvent(Touch(TouchDown, 0, 66, 24))
	if got := s.Value(0); got != 25 {
		t.Fatalf("Value(0) after down = %d, want 25", got)
	}
	if host.Claims() != 1 {
		t.Fatalf("Claims() = %d, want 1", host.Claims())
	}
	s.HandleEvent(Touch(TouchMove, 0, 96, 24))
	s.HandleEvent(Touch(TouchUp, 0, 96, 24))

	if got, want := s.Values(), []int{40, 100}; !equalInts(got, want) {
		t.Fatalf("Values() = %v, want %v", got, want)
	}
	want := []ChangeKind{TrackingStart, ValueChanged, ValueChanged, TrackingStop}
	got := rec.kinds()
	if len(got) != len(want) {
		t.Fatalf("events = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("event %d = %v, want %v (all %v)", i, got[i], want[i], got)
		}
	}
	if last := rec.events[3]; last.Value != 40 || last.Index != 0 {
		t.Fatalf("tracking stop = %+v", last)
	}
	if len(s.Dragging()) != 0 {
		t.Fatalf("Dragging() after up = %v", s.Dragging())
	}
}

func TestOverlappingThumbsResolveOnMove(t *testing.T) {
	s, _ := newTestSlider(t, 2, nil)
	s.SetValue(0, 50, false)
	s.SetValue(1, 50, false)
	rec := &recorder{}
	s.SetTrackingHandler(rec.handler())

	s.HandleEvent(Touch(TouchDown, 0, 116, 24))
	if len(s.Dragging()) != 0 || len(rec.events) != 0 {
		t.Fatalf("overlapping thumbs selected before any motion: %v", s.Dragging())
	}

	// no motion implied yet: the gesture stays undecided
	s.HandleEvent(Touch(TouchMove, 0, 116.4, 24))
	if len(s.Dragging()) != 0 {
		t.Fatalf("Dragging() = %v after motionless move", s.Dragging())
	}

	s.HandleEvent(Touch(TouchMove, 0, 140, 24))
	if d := s.Dragging(); d[0] != s.Thumb(1) {
		t.Fatalf("Dragging() = %v, want thumb 1 (more room upward)", d)
	}
	if got, want := s.Values(), []int{50, 62}; !equalInts(got, want) {
		t.Fatalf("Values() = %v, want %v", got, want)
	}
	s.HandleEvent(Touch(TouchUp, 0, 140, 24))
}

func TestOverlappingThumbsResolveDownward(t *testing.T) {
	s, _ := newTestSlider(t, 2, nil)
	s.SetValue(0, 50, false)
	s.SetValue(1, 50, false)

	s.HandleEvent(Touch(TouchDown, 0, 116, 24))
	s.HandleEvent(Touch(TouchMove, 0, 92, 24))
	if d := s.Dragging(); d[0] != s.Thumb(0) {
		t.Fatalf("Dragging() = %v, want thumb 0", d)
	}
	if got, want := s.Values(), []int{38, 50}; !equalInts(got, want) {
		t.Fatalf("Values() = %v, want %v", got, want)
	}
}

func TestLeftAnchoredThumbsHitAtDrawnCentre(t *testing.T) {
	s, _ := newTestSlider(t, 2, func(c *Config) {
		c.ThumbStyle = Style{Width: 24, Height: 24, Offset: 0}
	})
	s.SetValue(0, 50, false)
	s.SetValue(1, 50, false)
	if b := s.ThumbBounds(0); b.Min.X != 116 || b.Max.X != 140 {
		t.Fatalf("ThumbBounds(0) = %v", b)
	}

	// 18px right of the drawn centre: both thumbs lie under the touch
	s.HandleEvent(Touch(TouchDown, 0, 146, 24))
	if len(s.Dragging()) != 0 {
		t.Fatalf("Dragging() = %v after down on overlapping thumbs", s.Dragging())
	}
	s.HandleEvent(Touch(TouchMove, 0, 100, 24))
	if d := s.Dragging(); len(d) != 1 || d[0] != s.Thumb(0) {
		t.Fatalf("Dragging() = %v, want thumb 0", d)
	}
	if got, want := s.Values(), []int{42, 50}; !equalInts(got, want) {
		t.Fatalf("Values() = %v, want %v", got, want)
	}
}

func TestTapOnOverlappingThumbs(t *testing.T) {
	s, _ := newTestSlider(t, 2, nil)
	s.SetValue(0, 50, false)
	s.SetValue(1, 50, false)
	rec := &recorder{}
	s.SetTrackingHandler(rec.handler())

	// released beside the overlap without an intermediate move
	s.HandleEvent(Touch(TouchDown, 0, 120, 24))
	s.HandleEvent(Touch(TouchUp, 0, 120, 24))
	if got, want := s.Values(), []int{50, 52}; !equalInts(got, want) {
		t.Fatalf("Values() = %v, want %v", got, want)
	}
	if got := rec.kinds(); len(got) != 2 || got[0] != TrackingStart || got[1] != TrackingStop {
		t.Fatalf("tracking events = %v", got)
	}
}

func TestEquidistantTieBreak(t *testing.T) {
	cases := []struct {
		name   string
		values []int
		x      float32
		want   []int
	}{
		{"left of centre keeps earlier", []int{0, 50}, 66, []int{25, 50}},
		{"right of centre takes later", []int{50, 100}, 166, []int{50, 75}},
		{"at centre keeps earlier", []int{0, 100}, 116, []int{50, 100}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, _ := newTestSlider(t, 2, nil)
			s.SetValue(1, tc.values[1], false)
			s.SetValue(0, tc.values[0], false)

			s.HandleEvent(Touch(TouchDown, 0, tc.x, 24))
			s.HandleEvent(Touch(TouchUp, 0, tc.x, 24))
			if got := s.Values(); !equalInts(got, tc.want) {
				t.Fatalf("Values() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestDisabledThumbsAreSkipped(t *testing.T) {
	s, _ := newTestSlider(t, 3, nil)
	s.Thumb(0).SetEnabled(false)
	s.Thumb(2).SetInvisible(true)

	// nearest is thumb 0, but it is disabled; thumb 1 is the next closest
	s.HandleEvent(Touch(TouchDown, 0, 20, 24))
	s.HandleEvent(Touch(TouchUp, 0, 20, 24))
	if got, want := s.Values(), []int{0, 2, 100}; !equalInts(got, want) {
		t.Fatalf("Values() = %v, want %v", got, want)
	}

	s.HandleEvent(Touch(TouchDown, 0, 216, 24))
	s.HandleEvent(Touch(TouchUp, 0, 216, 24))
	if got, want := s.Values(), []int{0, 100, 100}; !equalInts(got, want) {
		t.Fatalf("Values() = %v, want %v", got, want)
	}
}

func TestDisabledSliderIgnoresInput(t *testing.T) {
	s, _ := newTestSlider(t, 2, nil)
	s.HandleEvent(Touch(TouchDown, 0, 16, 24))

	s.SetEnabled(false)
	if len(s.Dragging()) != 0 {
		t.Fatalf("SetEnabled(false) kept drags %v", s.Dragging())
	}
	if s.HandleEvent(Touch(TouchDown, 0, 116, 24)) {
		t.Fatalf("disabled slider handled an event")
	}
	if got := s.Value(0); got != 0 {
		t.Fatalf("Value(0) = %d, want 0", got)
	}

	s.SetEnabled(true)
	if !s.HandleEvent(Touch(TouchDown, 0, 116, 24)) {
		t.Fatalf("enabled slider ignored an event")
	}
}

func TestScrollingContainerWaitsForSlop(t *testing.T) {
	s, host := newTestSlider(t, 2, nil)
	host.Scrolling = true
	rec := &recorder{}
	s.SetTrackingHandler(rec.handler())

	s.HandleEvent(Touch(TouchDown, 0, 16, 24))
	s.HandleEvent(Touch(TouchMove, 0, 22, 24))
	if host.Claims() != 0 || len(s.Dragging()) != 0 || s.Value(0) != 0 {
		t.Fatalf("claimed within slop: claims %d dragging %v value %d", host.Claims(), s.Dragging(), s.Value(0))
	}

	s.HandleEvent(Touch(TouchMove, 0, 36, 24))
	if host.Claims() != 1 {
		t.Fatalf("Claims() = %d, want 1", host.Claims())
	}
	if got := s.Value(0); got != 10 {
		t.Fatalf("Value(0) = %d, want 10", got)
	}
	s.HandleEvent(Touch(TouchUp, 0, 36, 24))
	if got := rec.kinds(); len(got) != 2 {
		t.Fatalf("tracking events = %v", got)
	}
}

func TestScrollingContainerTap(t *testing.T) {
	s, host := newTestSlider(t, 2, nil)
	host.Scrolling = true

	s.HandleEvent(Touch(TouchDown, 0, 60, 24))
	s.HandleEvent(Touch(TouchUp, 0, 60, 24))
	if got := s.Value(0); got != 22 {
		t.Fatalf("Value(0) after tap = %d, want 22", got)
	}
}

func TestScrollingContainerCancel(t *testing.T) {
	s, host := newTestSlider(t, 2, nil)
	host.Scrolling = true
	rec := &recorder{}
	s.SetTrackingHandler(rec.handler())

	// the ancestor took the gesture over
	s.HandleEvent(Touch(TouchDown, 0, 16, 24))
	s.HandleEvent(PointerEvent{Action: TouchCancel})
	s.HandleEvent(Touch(TouchMove, 0, 100, 24))
	if len(rec.events) != 0 || s.Value(0) != 0 {
		t.Fatalf("cancelled pending touch moved the slider: %v", rec.events)
	}
}

func TestSecondPointerCommitsPendingTouch(t *testing.T) {
	s, host := newTestSlider(t, 2, nil)
	host.Scrolling = true

	s.HandleEvent(Touch(TouchDown, 0, 16, 24))
	s.HandleEvent(PointerEvent{
		Action:   TouchPointerDown,
		Pointer:  1,
		Pointers: []Pointer{{ID: 0, X: 16, Y: 24}, {ID: 1, X: 216, Y: 24}},
	})
	d := s.Dragging()
	if d[0] != s.Thumb(0) || d[1] != s.Thumb(1) {
		t.Fatalf("Dragging() = %v, want both thumbs", d)
	}
}

func TestMultiTouch(t *testing.T) {
	s, _ := newTestSlider(t, 2, nil)
	rec := &recorder{}
	s.SetTrackingHandler(rec.handler())

	s.HandleEvent(Touch(TouchDown, 0, 16, 24))
	s.HandleEvent(PointerEvent{
		Action:   TouchPointerDown,
		Pointer:  1,
		Pointers: []Pointer{{ID: 0, X: 16, Y: 24}, {ID: 1, X: 216, Y: 24}},
	})
	s.HandleEvent(PointerEvent{
		Action:   TouchMove,
		Pointers: []Pointer{{ID: 0, X: 66, Y: 24}, {ID: 1, X: 166, Y: 24}},
	})
	if got, want := s.Values(), []int{25, 75}; !equalInts(got, want) {
		t.Fatalf("Values() = %v, want %v", got, want)
	}

	s.HandleEvent(PointerEvent{
		Action:   TouchPointerUp,
		Pointer:  1,
		Pointers: []Pointer{{ID: 0, X: 66, Y: 24}, {ID: 1, X: 166, Y: 24}},
	})
	d := s.Dragging()
	if len(d) != 1 || d[0] != s.Thumb(0) {
		t.Fatalf("Dragging() after pointer-up = %v", d)
	}

	// the remaining pointer keeps driving its own thumb
	s.HandleEvent(Touch(TouchMove, 0, 76, 24))
	s.HandleEvent(Touch(TouchUp, 0, 76, 24))
	if got, want := s.Values(), []int{30, 75}; !equalInts(got, want) {
		t.Fatalf("Values() = %v, want %v", got, want)
	}
	if n := len(rec.events); n != 4 {
		t.Fatalf("tracking events = %d, want 4", n)
	}
}

func TestCancelStopsEveryDrag(t *testing.T) {
	s, _ := newTestSlider(t, 2, nil)
	s.HandleEvent(Touch(TouchDown, 3, 16, 24))
	s.HandleEvent(PointerEvent{
		Action:   TouchPointerDown,
		Pointer:  1,
		Pointers: []Pointer{{ID: 3, X: 16, Y: 24}, {ID: 1, X: 216, Y: 24}},
	})
	s.HandleEvent(PointerEvent{
		Action:   TouchMove,
		Pointers: []Pointer{{ID: 3, X: 36, Y: 24}, {ID: 1, X: 196, Y: 24}},
	})

	rec := &recorder{}
	s.SetValueChangeHandler(rec.handler())
	s.SetTrackingHandler(rec.handler())
	s.HandleEvent(PointerEvent{Action: TouchCancel})

	if len(rec.events) != 2 {
		t.Fatalf("events on cancel = %+v, want two tracking stops", rec.events)
	}
	// stops are delivered in pointer order: pointer 1 holds thumb 1
	if rec.events[0].Index != 1 || rec.events[1].Index != 0 {
		t.Fatalf("stop order = %d, %d", rec.events[0].Index, rec.events[1].Index)
	}
	for _, ev := range rec.events {
		if ev.Kind != TrackingStop {
			t.Fatalf("event %+v on cancel", ev)
		}
	}
	if got, want := s.Values(), []int{10, 90}; !equalInts(got, want) {
		t.Fatalf("Values() after cancel = %v, want %v", got, want)
	}
	if len(s.Dragging()) != 0 {
		t.Fatalf("Dragging() after cancel = %v", s.Dragging())
	}
}
