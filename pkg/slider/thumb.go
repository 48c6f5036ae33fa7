package slider

// Thumb is a single draggable value marker. Each thumb has min and max
// limits and a value which always lies between them. A thumb also defines a
// range: the stretch of track between its value and the previous thumb's
// value, or the start of the track for the first thumb.
//
// Once added to a Slider, mutations are routed through the slider so the
// ordering and step constraints hold.
type Thumb struct {
	min   int
	max   int
	value int

	tag       string
	style     Style
	disabled  bool
	invisible bool

	owner *Slider
}

// Value returns the thumb's current value.
func (t *Thumb) Value() int { return t.value }

// Min returns the lowest value the thumb may take regardless of other thumbs.
func (t *Thumb) Min() int { return t.min }

// Max returns the highest value the thumb may take regardless of other thumbs.
func (t *Thumb) Max() int { return t.max }

// Tag returns the thumb's identifier.
func (t *Thumb) Tag() string { return t.tag }

// SetTag sets the identifier used by FindByTag and Describe.
func (t *Thumb) SetTag(tag string) *Thumb {
	if t.owner != nil {
		t.owner.updateThumb(t, false, func() { t.tag = tag })
		return t
	}
	t.tag = tag
	return t
}

// Style returns a copy of the thumb's pixel style.
func (t *Thumb) Style() Style { return t.style }

// SetStyle replaces the thumb's style.
func (t *Thumb) SetStyle(st Style) *Thumb {
	if t.owner != nil {
		t.owner.setThumbStyle(t, st)
		return t
	}
	t.style = st
	return t
}

// Enabled reports whether the thumb can be moved by touch. Invisible thumbs
// are never enabled.
func (t *Thumb) Enabled() bool { return !t.disabled && !t.invisible }

// SetEnabled toggles touch interaction for this thumb.
func (t *Thumb) SetEnabled(enabled bool) *Thumb {
	if t.owner != nil {
		t.owner.updateThumb(t, true, func() { t.disabled = !enabled })
		return t
	}
	t.disabled = !enabled
	return t
}

// Invisible reports whether the thumb is hidden. Hidden thumbs still
// constrain their neighbours.
func (t *Thumb) Invisible() bool { return t.invisible }

// SetInvisible hides or shows the thumb.
func (t *Thumb) SetInvisible(invisible bool) *Thumb {
	if t.owner != nil {
		t.owner.updateThumb(t, true, func() { t.invisible = invisible })
		return t
	}
	t.invisible = invisible
	return t
}

// SetValue requests a new value. An attached thumb resolves the request
// through its slider; a detached thumb stores it as is and resolves it when
// added.
func (t *Thumb) SetValue(v int) *Thumb {
	if t.owner != nil {
		t.owner.setValueOf(t, v, false)
		return t
	}
	t.value = v
	return t
}

// SetMin lowers or raises the thumb's own lower limit. The limit never
// exceeds the thumb's max nor drops below the slider's scale.
func (t *Thumb) SetMin(min int) *Thumb {
	if t.owner != nil {
		t.owner.setThumbLimits(t, min, t.max)
		return t
	}
	if min > t.max {
		min = t.max
	}
	t.min = min
	if t.value < min {
		t.value = min
	}
	return t
}

// SetMax lowers or raises the thumb's own upper limit. The limit never
// drops below the thumb's min nor exceeds the slider's scale.
func (t *Thumb) SetMax(max int) *Thumb {
	if t.owner != nil {
		t.owner.setThumbLimits(t, t.min, max)
		return t
	}
	if max < t.min {
		max = t.min
	}
	t.max = max
	if t.value > max {
		t.value = max
	}
	return t
}

// Index returns the thumb's position in its slider, or -1 when detached.
func (t *Thumb) Index() int {
	if t.owner == nil {
		return -1
	}
	return t.owner.indexOf(t)
}

// PossibleMin is the lowest value reachable once every thumb before this one
// sits at its minimum spacing.
func (t *Thumb) PossibleMin() int {
	if t.owner == nil {
		return t.min
	}
	s := t.owner
	return t.min + s.indexOf(t)*s.minSpacing*s.step
}

// PossibleMax is the highest value reachable once every thumb after this one
// sits at its minimum spacing.
func (t *Thumb) PossibleMax() int {
	if t.owner == nil {
		return t.max
	}
	s := t.owner
	return t.max - (len(s.thumbs)-1-s.indexOf(t))*s.minSpacing*s.step
}
