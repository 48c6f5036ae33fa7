package slider

import (
	"math"
	"sort"
)

// pendingTouch is a pointer that touched the slider but has not been bound
// to a thumb yet, either because several thumbs overlap under it or because
// an ancestor may still turn the gesture into a scroll.
type pendingTouch struct {
	pointer    PointerID
	candidates []*Thumb
	downX      float32
	// deferred requires the pointer to travel past the touch slop before
	// the gesture is claimed.
	deferred bool
}

// HandleEvent feeds one pointer event through the gesture resolver. It
// returns false when the slider is disabled and did not consume the event.
func (s *Slider) HandleEvent(ev PointerEvent) bool {
	handled := false
	s.do(func(out *outbox) {
		if !s.enabled {
			return
		}
		handled = true
		switch ev.Action {
		case TouchDown, TouchPointerDown:
			s.onDown(ev, out)
		case TouchMove:
			s.onMove(ev, out)
		case TouchUp, TouchPointerUp:
			s.onUp(ev, out)
			if ev.Action == TouchUp {
				// the last pointer is gone; nothing can still be dragging
				s.cancelDrags(out)
			}
		case TouchCancel:
			s.cancelDrags(out)
		}
	})
	return handled
}

func (s *Slider) onDown(ev PointerEvent, out *outbox) {
	p, ok := ev.Position(ev.Pointer)
	if !ok {
		return
	}

	scrolling := s.host.InScrollingContainer() && len(s.dragging) == 0
	if scrolling && s.pending != nil && s.pending.pointer != ev.Pointer {
		// A second finger landed while the first was still ambiguous
		// between scrolling and sliding: take it as sliding.
		first := s.pending.candidates[0]
		s.log.Debug().Int("pointer", int(s.pending.pointer)).Msg("second pointer commits pending touch")
		s.startTracking(s.pending.pointer, first, out)
		s.pending = nil
		scrolling = false
	}

	candidates := s.candidatesAt(roundPixel(p.X))
	var curr *Thumb
	switch {
	case len(candidates) == 1:
		curr = candidates[0]
		if scrolling {
			s.pending = &pendingTouch{pointer: ev.Pointer, candidates: candidates, downX: p.X, deferred: true}
		}
	case len(candidates) > 1:
		s.pending = &pendingTouch{pointer: ev.Pointer, candidates: candidates, downX: p.X, deferred: scrolling}
		s.log.Debug().Int("pointer", int(ev.Pointer)).Int("candidates", len(candidates)).Msg("overlapping thumbs, waiting for motion")
	}

	if scrolling || curr == nil {
		return
	}
	s.startTracking(ev.Pointer, curr, out)
	s.applyTouch(curr, p.X, out)
}

func (s *Slider) onMove(ev PointerEvent, out *outbox) {
	if pt := s.pending; pt != nil {
		if p, ok := ev.Position(pt.pointer); ok {
			curr := s.mostMovable(pt.candidates, p.X)
			moved := !pt.deferred || math.Abs(float64(p.X-pt.downX)) > float64(s.touchSlop)
			if curr != nil && moved {
				s.pending = nil
				s.startTracking(pt.pointer, curr, out)
			}
		}
	}

	for _, p := range ev.Pointers {
		if t, ok := s.dragging[p.ID]; ok {
			s.applyTouch(t, p.X, out)
		}
	}
}

func (s *Slider) onUp(ev PointerEvent, out *outbox) {
	p, hasPos := ev.Position(ev.Pointer)

	if t, ok := s.dragging[ev.Pointer]; ok {
		if hasPos {
			s.applyTouch(t, p.X, out)
		}
		s.stopTracking(ev.Pointer, out)
		return
	}

	pt := s.pending
	if pt == nil || pt.pointer != ev.Pointer {
		return
	}
	s.pending = nil
	if !hasPos {
		return
	}
	// A tap that never moved far enough to claim the gesture still moves
	// the thumb it landed on.
	if curr := s.mostMovable(pt.candidates, p.X); curr != nil {
		s.startTracking(ev.Pointer, curr, out)
		s.applyTouch(curr, p.X, out)
		s.stopTracking(ev.Pointer, out)
	}
}

// candidatesAt collects every movable thumb whose drawn centre lies within a
// thumb width of x. When none does, the nearest movable thumb is the only
// candidate. Of two equally distant
// thumbs the later one wins when x lies right of the view's centre.
func (s *Slider) candidatesAt(x int) []*Thumb {
	var exact []*Thumb
	var closest *Thumb
	best := math.MaxInt
	half := s.host.Size().X / 2

	for i, t := range s.thumbs {
		if !t.Enabled() || s.isDragging(t) {
			continue
		}
		b := s.thumbBounds(i)
		d := (b.Min.X+b.Max.X)/2 - x
		if d < 0 {
			d = -d
		}
		switch {
		case d <= t.style.Width:
			exact = append(exact, t)
		case d < best:
			best, closest = d, t
		case d == best && x > half:
			closest = t
		}
	}

	if len(exact) == 0 && closest != nil {
		exact = append(exact, closest)
	}
	return exact
}

// mostMovable picks, among candidates, the thumb that could travel furthest
// in the direction the touch at x points to. It returns nil when the touch
// does not imply any motion yet.
func (s *Slider) mostMovable(candidates []*Thumb, x float32) *Thumb {
	switch len(candidates) {
	case 0:
		return nil
	case 1:
		return candidates[0]
	}

	first := candidates[0]
	target := s.touchValue(s.indexOf(first), x)
	if first.value == target {
		return nil
	}

	var res *Thumb
	maxChange := 0
	for _, t := range candidates {
		idx := s.indexOf(t)
		if idx < 0 || !t.Enabled() || s.isDragging(t) {
			continue
		}
		goal := s.scaleMin
		if target > t.value {
			goal = s.scaleMax
		}
		change := t.value - s.clamp(idx, goal)
		if change < 0 {
			change = -change
		}
		if change > maxChange {
			maxChange, res = change, t
		}
	}
	return res
}

func (s *Slider) applyTouch(t *Thumb, x float32, out *outbox) {
	idx := s.indexOf(t)
	if idx < 0 {
		return
	}
	s.setThumbValue(idx, s.touchValue(idx, x), true, out)
}

func (s *Slider) startTracking(id PointerID, t *Thumb, out *outbox) {
	idx := s.indexOf(t)
	if idx < 0 {
		return
	}
	s.dragging[id] = t
	s.log.Debug().Int("pointer", int(id)).Int("thumb", idx).Int("value", t.value).Msg("tracking start")
	out.emit(s.trackingHandler, ChangeEvent{
		Kind:     TrackingStart,
		Slider:   s,
		Thumb:    t,
		Index:    idx,
		Value:    t.value,
		FromUser: true,
	})
	out.invalidate(s.host, s.thumbBounds(idx))
	out.claim(s.host)
}

func (s *Slider) stopTracking(id PointerID, out *outbox) {
	t, ok := s.dragging[id]
	if !ok {
		return
	}
	delete(s.dragging, id)
	idx := s.indexOf(t)
	s.log.Debug().Int("pointer", int(id)).Int("thumb", idx).Int("value", t.value).Msg("tracking stop")
	out.emit(s.trackingHandler, ChangeEvent{
		Kind:     TrackingStop,
		Slider:   s,
		Thumb:    t,
		Index:    idx,
		Value:    t.value,
		FromUser: true,
	})
	if idx >= 0 {
		out.invalidate(s.host, s.thumbBounds(idx))
	}
}

// cancelDrags ends every drag in pointer order and forgets pending touches.
func (s *Slider) cancelDrags(out *outbox) {
	s.pending = nil
	if len(s.dragging) == 0 {
		return
	}
	ids := make([]PointerID, 0, len(s.dragging))
	for id := range s.dragging {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		s.stopTracking(id, out)
	}
}

func (s *Slider) isDragging(t *Thumb) bool {
	for _, d := range s.dragging {
		if d == t {
			return true
		}
	}
	return false
}

// Dragging returns the thumbs currently dragged, keyed by pointer.
func (s *Slider) Dragging() map[PointerID]*Thumb {
	s.mu.Lock()
	defer s.mu.Unlock()
	m := make(map[PointerID]*Thumb, len(s.dragging))
	for id, t := range s.dragging {
		m[id] = t
	}
	return m
}
