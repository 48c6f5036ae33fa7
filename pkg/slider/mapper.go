package slider

import (
	"image"
	"math"
)

// mirrored reports whether the scale runs right to left.
func (s *Slider) mirrored() bool {
	return s.mirrorForRTL && s.host.RTL()
}

// padding returns the horizontal padding, widened so that a thumb sitting
// at either end of the track is fully visible.
func (s *Slider) padding() (left, right int) {
	pad := s.host.Padding()
	left, right = pad.Left, pad.Right
	for _, t := range s.thumbs {
		if t.style.Offset > left {
			left = t.style.Offset
		}
		if t.style.Offset > right {
			right = t.style.Offset
		}
	}
	return left, right
}

// stackOffset is the extra pixel shift of thumb idx when thumbs are drawn
// apart. It only affects where things are drawn, never values.
func (s *Slider) stackOffset(idx int) int {
	if !s.drawApart || len(s.thumbs) == 0 {
		return 0
	}
	off := 0
	if s.mirrored() {
		for j := idx; j < len(s.thumbs)-1; j++ {
			off += s.thumbs[j].style.Width
		}
		return off
	}
	for j := 1; j <= idx; j++ {
		off += s.thumbs[j].style.Width
	}
	return off
}

// available is the track length in pixels over which the scale is laid out.
func (s *Slider) available() int {
	left, right := s.padding()
	avail := s.host.Size().X - left - right
	if n := len(s.thumbs); n > 0 {
		if s.mirrored() {
			avail -= s.stackOffset(0)
		} else {
			avail -= s.stackOffset(n - 1)
		}
	}
	return avail
}

// valueAt maps a view x coordinate to a scale value.
func (s *Slider) valueAt(x int) int {
	size := s.scaleMax - s.scaleMin
	avail := s.available()
	if avail <= 0 || size <= 0 {
		return s.scaleMin
	}
	left, right := s.padding()

	var num int
	switch {
	case x < left:
		num = 0
	case x > s.host.Size().X-right:
		num = avail
	default:
		num = x - left
		if num > avail {
			num = avail
		}
	}
	if s.mirrored() {
		num = avail - num
	}
	return s.scaleMin + roundDiv(num*size, avail)
}

// pixelFor maps a scale value to the view x coordinate of its anchor.
func (s *Slider) pixelFor(v int) int {
	left, _ := s.padding()
	size := s.scaleMax - s.scaleMin
	avail := s.available()
	pos := 0
	if size > 0 && avail > 0 {
		pos = roundDiv((v-s.scaleMin)*avail, size)
	}
	if s.mirrored() {
		pos = avail - pos
	}
	return left + pos
}

// anchor is the x of thumb idx that its style offset is measured from.
func (s *Slider) anchor(idx int) int {
	return s.pixelFor(s.thumbs[idx].value) + s.stackOffset(idx)
}

// touchValue maps a touch x to the value thumb idx would take, undoing the
// visual stacking shift first.
func (s *Slider) touchValue(idx int, x float32) int {
	return s.valueAt(roundPixel(x) - s.stackOffset(idx))
}

// PositionToValue maps a view x coordinate to a scale value. Coordinates in
// the padding saturate at the ends of the scale. For a settled value v,
// PositionToValue(ValueToPixel(v)) == v whenever the track is at least as
// many pixels long as the scale has points.
func (s *Slider) PositionToValue(x int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.valueAt(x)
}

// ValueToPixel maps a scale value to the view x coordinate a thumb holding
// it is anchored at, before any draw-apart stacking.
func (s *Slider) ValueToPixel(v int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pixelFor(v)
}

func (s *Slider) thumbBounds(idx int) image.Rectangle {
	t := s.thumbs[idx]
	st := t.style
	pad := s.host.Padding()
	trackH := s.host.Size().Y - pad.Top - pad.Bottom
	top := pad.Top
	if gap := (trackH - st.Height) / 2; gap > 0 {
		top += gap
	}
	left := s.anchor(idx) - st.Offset
	return image.Rect(left, top, left+st.Width, top+st.Height)
}

func (s *Slider) rangeBounds(idx int) image.Rectangle {
	left, _ := s.padding()
	pad := s.host.Padding()
	bottom := s.host.Size().Y - pad.Bottom

	start := left
	if s.mirrored() {
		start = left + s.available()
	}
	if idx > 0 {
		start = s.anchor(idx - 1)
	}
	return image.Rect(start, pad.Top, s.anchor(idx), bottom)
}

func (s *Slider) trackBounds() image.Rectangle {
	left, right := s.padding()
	pad := s.host.Padding()
	size := s.host.Size()
	return image.Rect(left, pad.Top, size.X-right, size.Y-pad.Bottom)
}

func (s *Slider) viewBounds() image.Rectangle {
	return image.Rectangle{Max: s.host.Size()}
}

// dirtyBounds covers everything that moves with thumb idx: the thumb itself
// and the ranges on either side of it.
func (s *Slider) dirtyBounds(idx int) image.Rectangle {
	r := s.thumbBounds(idx).Union(s.rangeBounds(idx))
	if idx+1 < len(s.thumbs) {
		r = r.Union(s.rangeBounds(idx + 1))
	}
	return r
}

// ThumbBounds returns the drawn rectangle of thumb i in view coordinates.
func (s *Slider) ThumbBounds(i int) image.Rectangle {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mustIndex(i)
	return s.thumbBounds(i)
}

// RangeBounds returns the track segment drawn for thumb i: from the previous
// thumb (or the start of the track) to thumb i.
func (s *Slider) RangeBounds(i int) image.Rectangle {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mustIndex(i)
	return s.rangeBounds(i)
}

// TrackBounds returns the padded track area.
func (s *Slider) TrackBounds() image.Rectangle {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.trackBounds()
}

// roundDiv divides a non-negative numerator by a positive denominator,
// rounding halves up.
func roundDiv(num, den int) int {
	return (2*num + den) / (2 * den)
}

func roundPixel(x float32) int {
	return int(math.Round(float64(x)))
}
