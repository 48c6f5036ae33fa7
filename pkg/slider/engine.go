package slider

import (
	"fmt"
	"math"
)

// clamp resolves a candidate value for the thumb at idx against the current
// state. Neighbour spacing is applied first, then the step grid, then the
// thumb's own limits, so the result always lies within [min, max].
func (s *Slider) clamp(idx, v int) int {
	t := s.thumbs[idx]
	gap := s.minSpacing * s.step

	if idx+1 < len(s.thumbs) {
		if limit := s.thumbs[idx+1].value - gap; v > limit {
			v = limit
		}
	}
	if idx > 0 {
		if limit := s.thumbs[idx-1].value + gap; v < limit {
			v = limit
		}
	}

	if r := floorMod(v-s.scaleMin, s.step); r != 0 {
		v += s.step - r
	}

	if v < t.min {
		v = t.min
	}
	if v > t.max {
		v = t.max
	}
	return v
}

// Clamp returns the value thumb i would settle on if asked to take v.
func (s *Slider) Clamp(i, v int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mustIndex(i)
	return s.clamp(i, v)
}

// setThumbValue is the single place thumb values change. It reports whether
// the value moved.
func (s *Slider) setThumbValue(idx, v int, fromUser bool, out *outbox) bool {
	t := s.thumbs[idx]
	resolved := s.clamp(idx, v)
	if resolved == t.value {
		return false
	}
	before := s.dirtyBounds(idx)
	t.value = resolved
	out.emit(s.valueHandler, ChangeEvent{
		Kind:     ValueChanged,
		Slider:   s,
		Thumb:    t,
		Index:    idx,
		Value:    resolved,
		FromUser: fromUser,
	})
	out.invalidate(s.host, unionRect(before, s.dirtyBounds(idx)))
	return true
}

// settle re-resolves every thumb, lowest first, after a constraint changed.
func (s *Slider) settle(out *outbox) {
	for i, t := range s.thumbs {
		s.setThumbValue(i, t.value, false, out)
	}
}

func (s *Slider) setValueOf(t *Thumb, v int, fromUser bool) {
	s.do(func(out *outbox) {
		if idx := s.indexOf(t); idx >= 0 {
			s.setThumbValue(idx, v, fromUser, out)
		}
	})
}

func (s *Slider) setThumbLimits(t *Thumb, min, max int) {
	s.do(func(out *outbox) {
		idx := s.indexOf(t)
		if idx < 0 {
			return
		}
		if min != t.min {
			if min > t.max {
				min = t.max
			}
			if min < s.scaleMin {
				min = s.scaleMin
			}
			t.min = min
		}
		if max != t.max {
			if max < t.min {
				max = t.min
			}
			if max > s.scaleMax {
				max = s.scaleMax
			}
			t.max = max
		}
		if t.value < t.min || t.value > t.max {
			s.setThumbValue(idx, t.value, false, out)
		}
	})
}

// SetScaleMin moves the global minimum. With extendThumbs every thumb's own
// minimum follows it; otherwise only thumbs below the new minimum are
// raised. With reposition the thumbs are spread evenly afterwards.
func (s *Slider) SetScaleMin(min int, extendThumbs, reposition bool) error {
	var err error
	s.do(func(out *outbox) {
		if min > s.scaleMax {
			err = fmt.Errorf("slider: SetScaleMin(%d) > max(%d): %w", min, s.scaleMax, ErrInvalidRange)
			return
		}
		if min != s.scaleMin {
			s.scaleMin = min
			for i, t := range s.thumbs {
				if extendThumbs || t.min < min {
					t.min = min
					if t.max < t.min {
						t.max = t.min
					}
				}
				if t.value < t.min || t.value > t.max {
					s.setThumbValue(i, t.value, false, out)
				}
			}
			if reposition {
				s.reposition(out)
			}
			out.invalidate(s.host, s.viewBounds())
		}
		s.adjustKeyIncrement()
	})
	if err != nil {
		s.log.Warn().Err(err).Msg("scale change rejected")
	}
	return err
}

// SetScaleMax moves the global maximum. See SetScaleMin.
func (s *Slider) SetScaleMax(max int, extendThumbs, reposition bool) error {
	var err error
	s.do(func(out *outbox) {
		if max < s.scaleMin {
			err = fmt.Errorf("slider: SetScaleMax(%d) < min(%d): %w", max, s.scaleMin, ErrInvalidRange)
			return
		}
		if max != s.scaleMax {
			s.scaleMax = max
			for i, t := range s.thumbs {
				if extendThumbs || t.max > max {
					t.max = max
					if t.min > t.max {
						t.min = t.max
					}
				}
				if t.value < t.min || t.value > t.max {
					s.setThumbValue(i, t.value, false, out)
				}
			}
			if reposition {
				s.reposition(out)
			}
			out.invalidate(s.host, s.viewBounds())
		}
		s.adjustKeyIncrement()
	})
	if err != nil {
		s.log.Warn().Err(err).Msg("scale change rejected")
	}
	return err
}

// adjustKeyIncrement keeps keyboard traversal of the full scale within
// roughly twenty presses.
func (s *Slider) adjustKeyIncrement() {
	if s.keyIncrement == 0 || s.scaleMax/s.keyIncrement > 20 {
		inc := int(math.Floor(float64(s.scaleMax)/20 + 0.5))
		if inc < 1 {
			inc = 1
		}
		s.keyIncrement = inc
	}
}

// reposition spreads the thumbs evenly: the first at the scale minimum, the
// last at the maximum and the ones between at equal distances counted back
// from the maximum. Targets are placed before settling so that no thumb is
// held back by a neighbour that has yet to move.
func (s *Slider) reposition(out *outbox) {
	n := len(s.thumbs)
	if n == 0 {
		return
	}
	targets := make([]int, n)
	targets[0] = s.scaleMin
	if n > 1 {
		targets[n-1] = s.scaleMax
	}
	if n > 2 {
		even := (s.scaleMax - s.scaleMin) / (n - 1)
		pos := s.scaleMax - even
		for i := n - 2; i > 0; i-- {
			targets[i] = pos
			pos -= even
		}
	}

	before := make([]int, n)
	for i, t := range s.thumbs {
		before[i] = t.value
		t.value = clampInt(targets[i], t.min, t.max)
	}
	for i, t := range s.thumbs {
		t.value = s.clamp(i, t.value)
	}
	for i, t := range s.thumbs {
		if t.value != before[i] {
			out.emit(s.valueHandler, ChangeEvent{
				Kind:   ValueChanged,
				Slider: s,
				Thumb:  t,
				Index:  i,
				Value:  t.value,
			})
		}
	}
	out.invalidate(s.host, s.viewBounds())
}

// Reposition spreads the thumbs evenly across the scale.
func (s *Slider) Reposition() {
	s.do(func(out *outbox) {
		s.reposition(out)
	})
}

func floorMod(a, b int) int {
	r := a % b
	if r < 0 {
		r += b
	}
	return r
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
