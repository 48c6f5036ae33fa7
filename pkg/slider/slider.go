package slider

import (
	"fmt"
	"image"
	"sync"

	"github.com/rs/zerolog"
)

// Slider owns an ordered sequence of thumbs on one track. Thumb order is
// meaningful: it defines spacing and ranges, not just drawing order.
type Slider struct {
	mu sync.Mutex

	host Host
	log  zerolog.Logger

	thumbs []*Thumb

	scaleMin   int
	scaleMax   int
	step       int
	minSpacing int

	drawApart    bool
	mirrorForRTL bool
	enabled      bool

	keyIncrement int
	touchSlop    int
	defaultStyle Style

	dragging map[PointerID]*Thumb
	pending  *pendingTouch

	valueHandler    *EventHandler
	trackingHandler *EventHandler
}

// New builds a slider from cfg, creates cfg.Thumbs thumbs and spreads them
// evenly across the scale. A nil host is replaced by an empty SimHost.
func New(cfg *Config, host Host) (*Slider, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	c := *cfg
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if host == nil {
		host = NewSimHost(0, 0)
	}

	s := &Slider{
		host:         host,
		log:          sliderLog(),
		scaleMin:     c.Min,
		scaleMax:     c.Max,
		step:         c.Step,
		minSpacing:   c.MinSpacing,
		drawApart:    c.DrawApart,
		mirrorForRTL: c.MirrorForRTL,
		enabled:      true,
		keyIncrement: 1,
		touchSlop:    c.TouchSlop,
		defaultStyle: c.ThumbStyle,
		dragging:     make(map[PointerID]*Thumb),
	}
	s.adjustKeyIncrement()

	var out outbox
	for i := 0; i < c.Thumbs; i++ {
		t := s.NewThumb().SetTag(fmt.Sprintf("thumb %d", i))
		s.insertThumb(t, len(s.thumbs), &out)
	}
	s.reposition(&out)

	return s, nil
}

// outbox collects notifications and host calls produced while the lock is
// held. They run in order once it is released.
type outbox struct {
	calls []func()
}

func (o *outbox) emit(h *EventHandler, ev ChangeEvent) {
	if h == nil {
		return
	}
	o.calls = append(o.calls, func() { h.Emit(ev) })
}

func (o *outbox) invalidate(host Host, r image.Rectangle) {
	o.calls = append(o.calls, func() { host.Invalidate(r) })
}

func (o *outbox) claim(host Host) {
	o.calls = append(o.calls, host.ClaimDrag)
}

func (o *outbox) flush() {
	for _, call := range o.calls {
		call()
	}
	o.calls = nil
}

// do runs fn under the lock and then delivers whatever fn queued.
func (s *Slider) do(fn func(out *outbox)) {
	var out outbox
	func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		fn(&out)
	}()
	out.flush()
}

func (s *Slider) mustIndex(i int) {
	if i < 0 || i >= len(s.thumbs) {
		panic(indexError(i, len(s.thumbs)))
	}
}

func (s *Slider) indexOf(t *Thumb) int {
	for i, th := range s.thumbs {
		if th == t {
			return i
		}
	}
	return -1
}

// SetLogger replaces the slider's logger.
func (s *Slider) SetLogger(l zerolog.Logger) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.log = l
}

// SetValueChangeHandler registers the receiver of ValueChanged events.
func (s *Slider) SetValueChangeHandler(h *EventHandler) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.valueHandler = h
}

// SetTrackingHandler registers the receiver of TrackingStart and
// TrackingStop events.
func (s *Slider) SetTrackingHandler(h *EventHandler) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.trackingHandler = h
}

// NewThumb returns a detached thumb spanning the whole scale, sitting at the
// scale maximum.
func (s *Slider) NewThumb() *Thumb {
	s.mu.Lock()
	defer s.mu.Unlock()
	return &Thumb{
		min:   s.scaleMin,
		max:   s.scaleMax,
		value: s.scaleMax,
		tag:   "thumb",
	}
}

func (s *Slider) insertThumb(t *Thumb, pos int, out *outbox) {
	if t.style.IsZero() {
		t.style = s.defaultStyle
	}
	if t.min < s.scaleMin {
		t.min = s.scaleMin
	}
	if t.max > s.scaleMax {
		t.max = s.scaleMax
	}
	if t.min > t.max {
		t.min = t.max
	}

	s.thumbs = append(s.thumbs, nil)
	copy(s.thumbs[pos+1:], s.thumbs[pos:])
	s.thumbs[pos] = t
	t.owner = s

	// resolve the value the thumb arrived with against its new neighbours
	requested := t.value
	t.value = s.clamp(pos, requested)
	if t.value != requested {
		out.emit(s.valueHandler, ChangeEvent{Kind: ValueChanged, Slider: s, Thumb: t, Index: pos, Value: t.value})
	}
	out.invalidate(s.host, s.viewBounds())
}

// AddThumb inserts t at pos and resolves its value against its new
// neighbours. Adding a thumb that is already attached is rejected with
// ErrDuplicateThumb and changes nothing.
func (s *Slider) AddThumb(t *Thumb, pos int) error {
	var err error
	s.do(func(out *outbox) {
		switch {
		case t == nil:
			err = fmt.Errorf("slider: nil thumb")
		case t.owner == s:
			err = fmt.Errorf("slider: thumb %q already at %d: %w", t.tag, s.indexOf(t), ErrDuplicateThumb)
		case t.owner != nil:
			err = fmt.Errorf("slider: thumb %q belongs to another slider: %w", t.tag, ErrDuplicateThumb)
		case pos < 0 || pos > len(s.thumbs):
			err = fmt.Errorf("slider: insert at %d of %d: %w", pos, len(s.thumbs), ErrIndexOutOfRange)
		default:
			s.insertThumb(t, pos, out)
		}
	})
	if err != nil {
		s.log.Warn().Err(err).Msg("add thumb rejected")
	}
	return err
}

// AppendThumb adds a new thumb after the last one and requests value v
// for it.
func (s *Slider) AppendThumb(v int) *Thumb {
	t := s.NewThumb()
	t.value = v
	s.do(func(out *outbox) {
		s.insertThumb(t, len(s.thumbs), out)
	})
	return t
}

func (s *Slider) removeAt(idx int, out *outbox) *Thumb {
	t := s.thumbs[idx]
	for id, d := range s.dragging {
		if d == t {
			delete(s.dragging, id)
		}
	}
	if pt := s.pending; pt != nil {
		kept := pt.candidates[:0]
		for _, c := range pt.candidates {
			if c != t {
				kept = append(kept, c)
			}
		}
		pt.candidates = kept
		if len(kept) == 0 {
			s.pending = nil
		}
	}
	s.thumbs = append(s.thumbs[:idx], s.thumbs[idx+1:]...)
	t.owner = nil
	out.invalidate(s.host, s.viewBounds())
	return t
}

// RemoveThumb detaches t, dropping any drag in progress on it. It reports
// whether t was attached to this slider.
func (s *Slider) RemoveThumb(t *Thumb) bool {
	removed := false
	s.do(func(out *outbox) {
		if idx := s.indexOf(t); idx >= 0 {
			s.removeAt(idx, out)
			removed = true
		}
	})
	return removed
}

// RemoveThumbAt detaches and returns the thumb at index i.
func (s *Slider) RemoveThumbAt(i int) *Thumb {
	var t *Thumb
	s.do(func(out *outbox) {
		s.mustIndex(i)
		t = s.removeAt(i, out)
	})
	return t
}

// ClearThumbs removes every thumb and all drag state.
func (s *Slider) ClearThumbs() {
	s.do(func(out *outbox) {
		s.clearThumbs(out)
	})
}

func (s *Slider) clearThumbs(out *outbox) {
	for _, t := range s.thumbs {
		t.owner = nil
	}
	s.thumbs = nil
	s.dragging = make(map[PointerID]*Thumb)
	s.pending = nil
	out.invalidate(s.host, s.viewBounds())
}

// SetThumbCount replaces all thumbs with n new ones. With reposition they
// are spread evenly across the scale; otherwise each starts at the scale
// maximum.
func (s *Slider) SetThumbCount(n int, reposition bool) {
	s.do(func(out *outbox) {
		s.clearThumbs(out)
		for i := 0; i < n; i++ {
			t := &Thumb{min: s.scaleMin, max: s.scaleMax, value: s.scaleMax, tag: fmt.Sprintf("thumb %d", i)}
			s.insertThumb(t, len(s.thumbs), out)
		}
		if reposition {
			s.reposition(out)
		}
	})
}

// SetValue asks thumb i to take value v. The request is resolved against
// the neighbours, the step grid and the thumb's limits; handlers hear about
// it only when the resolved value differs from the current one.
func (s *Slider) SetValue(i, v int, fromUser bool) bool {
	changed := false
	s.do(func(out *outbox) {
		s.mustIndex(i)
		changed = s.setThumbValue(i, v, fromUser, out)
	})
	return changed
}

// Value returns the value of thumb i.
func (s *Slider) Value(i int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mustIndex(i)
	return s.thumbs[i].value
}

// Values returns every thumb value in order.
func (s *Slider) Values() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	vs := make([]int, len(s.thumbs))
	for i, t := range s.thumbs {
		vs[i] = t.value
	}
	return vs
}

// Thumb returns the thumb at index i.
func (s *Slider) Thumb(i int) *Thumb {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mustIndex(i)
	return s.thumbs[i]
}

// Thumbs returns a copy of the thumb sequence.
func (s *Slider) Thumbs() []*Thumb {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*Thumb(nil), s.thumbs...)
}

// Len returns the number of thumbs.
func (s *Slider) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.thumbs)
}

// ScaleMin returns the global minimum.
func (s *Slider) ScaleMin() int { return s.scaleMin }

// ScaleMax returns the global maximum.
func (s *Slider) ScaleMax() int { return s.scaleMax }

// ScaleSize returns the number of scale points.
func (s *Slider) ScaleSize() int { return s.scaleMax - s.scaleMin }

// Step returns the quantisation step.
func (s *Slider) Step() int { return s.step }

// SetStep changes the quantisation step. Values below 1 become 1. Thumbs
// off the new grid move onto it.
func (s *Slider) SetStep(step int) {
	if step < 1 {
		step = 1
	}
	s.do(func(out *outbox) {
		s.step = step
		s.settle(out)
	})
}

// MinSpacing returns the number of steps adjacent thumbs stay apart.
func (s *Slider) MinSpacing() int { return s.minSpacing }

// SetMinSpacing changes the number of steps adjacent thumbs stay apart.
// Thumbs closer than that are pushed apart, lower thumbs first.
func (s *Slider) SetMinSpacing(steps int) {
	if steps < 0 {
		steps = 0
	}
	s.do(func(out *outbox) {
		s.minSpacing = steps
		s.settle(out)
	})
}

// DrawApart reports whether equal-valued thumbs are drawn side by side.
func (s *Slider) DrawApart() bool { return s.drawApart }

// SetDrawApart toggles drawing equal-valued thumbs side by side.
func (s *Slider) SetDrawApart(apart bool) {
	s.do(func(out *outbox) {
		s.drawApart = apart
		out.invalidate(s.host, s.viewBounds())
	})
}

// SetMirrorForRTL toggles reversing the scale in right-to-left layouts.
func (s *Slider) SetMirrorForRTL(mirror bool) {
	s.do(func(out *outbox) {
		s.mirrorForRTL = mirror
		out.invalidate(s.host, s.viewBounds())
	})
}

// Enabled reports whether the slider accepts touch input.
func (s *Slider) Enabled() bool { return s.enabled }

// SetEnabled turns touch input on or off. Disabling cancels active drags.
func (s *Slider) SetEnabled(enabled bool) {
	s.do(func(out *outbox) {
		if !enabled {
			s.cancelDrags(out)
		}
		s.enabled = enabled
		out.invalidate(s.host, s.viewBounds())
	})
}

// KeyIncrement is the amount a discrete key press should move a thumb.
func (s *Slider) KeyIncrement() int { return s.keyIncrement }

// SetKeyIncrement sets the key press increment; negative values are
// taken as their magnitude.
func (s *Slider) SetKeyIncrement(inc int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if inc < 0 {
		inc = -inc
	}
	s.keyIncrement = inc
}

// TouchSlop returns the scroll disambiguation distance in pixels.
func (s *Slider) TouchSlop() int { return s.touchSlop }

// SetThumbStyle applies st to every thumb and to thumbs added later.
func (s *Slider) SetThumbStyle(st Style) {
	s.do(func(out *outbox) {
		s.defaultStyle = st
		for _, t := range s.thumbs {
			t.style = st
		}
		out.invalidate(s.host, s.viewBounds())
	})
}

// updateThumb runs fn under the slider lock and, when redraw is set, asks
// the host to repaint the thumb.
func (s *Slider) updateThumb(t *Thumb, redraw bool, fn func()) {
	s.do(func(out *outbox) {
		fn()
		if idx := s.indexOf(t); redraw && idx >= 0 {
			out.invalidate(s.host, s.dirtyBounds(idx))
		}
	})
}

func (s *Slider) setThumbStyle(t *Thumb, st Style) {
	s.do(func(out *outbox) {
		t.style = st
		out.invalidate(s.host, s.viewBounds())
	})
}
