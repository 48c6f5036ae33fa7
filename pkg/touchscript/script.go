package touchscript

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/OpenTraceLab/multislider/pkg/slider"
)

// ErrInvalidScript marks a script that parses but describes an impossible
// gesture, such as moving a pointer that never went down.
var ErrInvalidScript = errors.New("touchscript: invalid script")

// Setup describes the simulated host a script runs against.
type Setup struct {
	Width, Height int
	Padding       slider.Insets
	RTL           bool
	Scrolling     bool
}

// DefaultSetup is used for any setting a script leaves out.
var DefaultSetup = Setup{Width: 400, Height: 48}

// Event is one pointer action of a script.
type Event struct {
	Line    int
	Action  slider.TouchAction
	Pointer slider.PointerID
	X, Y    float32
}

func (e Event) String() string {
	if e.Action == slider.TouchCancel {
		return "cancel"
	}
	return fmt.Sprintf("%s %d %s %s", e.Action, e.Pointer, formatCoord(e.X), formatCoord(e.Y))
}

// Script is a validated gesture script.
type Script struct {
	Setup  Setup
	Events []Event
}

var touchActions = map[string]slider.TouchAction{
	"down":         slider.TouchDown,
	"move":         slider.TouchMove,
	"up":           slider.TouchUp,
	"pointer-down": slider.TouchPointerDown,
	"pointer-up":   slider.TouchPointerUp,
}

func build(f *File) (*Script, error) {
	s := &Script{Setup: DefaultSetup}
	for _, st := range f.Statements {
		line := st.Pos.Line
		switch {
		case st.Size != nil:
			if st.Size.Width <= 0 || st.Size.Height <= 0 {
				return nil, fmt.Errorf("touchscript: line %d: size %dx%d: %w", line, st.Size.Width, st.Size.Height, ErrInvalidScript)
			}
			s.Setup.Width, s.Setup.Height = st.Size.Width, st.Size.Height
		case st.Padding != nil:
			p := st.Padding
			s.Setup.Padding = slider.Insets{Left: p.Left, Top: p.Top, Right: p.Right, Bottom: p.Bottom}
		case st.RTL:
			s.Setup.RTL = true
		case st.Scrolling:
			s.Setup.Scrolling = true
		case st.Cancel:
			s.Events = append(s.Events, Event{Line: line, Action: slider.TouchCancel})
		case st.Touch != nil:
			s.Events = append(s.Events, Event{
				Line:    line,
				Action:  touchActions[st.Touch.Action],
				Pointer: slider.PointerID(st.Touch.Pointer),
				X:       st.Touch.X,
				Y:       st.Touch.Y,
			})
		}
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks that the events form a well nested gesture stream: down
// starts with no pointer active, up ends with exactly one, and moves and
// lifts refer to active pointers.
func (s *Script) Validate() error {
	active := make(map[slider.PointerID]bool)
	for _, ev := range s.Events {
		fail := func(format string, args ...any) error {
			msg := fmt.Sprintf(format, args...)
			return fmt.Errorf("touchscript: line %d: %s: %w", ev.Line, msg, ErrInvalidScript)
		}
		switch ev.Action {
		case slider.TouchDown:
			if len(active) != 0 {
				return fail("down with %d pointers already active", len(active))
			}
			active[ev.Pointer] = true
		case slider.TouchPointerDown:
			if len(active) == 0 {
				return fail("pointer-down without a gesture in progress")
			}
			if active[ev.Pointer] {
				return fail("pointer %d is already down", ev.Pointer)
			}
			active[ev.Pointer] = true
		case slider.TouchMove:
			if !active[ev.Pointer] {
				return fail("move of inactive pointer %d", ev.Pointer)
			}
		case slider.TouchPointerUp:
			if !active[ev.Pointer] {
				return fail("pointer-up of inactive pointer %d", ev.Pointer)
			}
			if len(active) == 1 {
				return fail("pointer-up of the last pointer, use up")
			}
			delete(active, ev.Pointer)
		case slider.TouchUp:
			if !active[ev.Pointer] {
				return fail("up of inactive pointer %d", ev.Pointer)
			}
			if len(active) != 1 {
				return fail("up with %d pointers active", len(active))
			}
			delete(active, ev.Pointer)
		case slider.TouchCancel:
			active = make(map[slider.PointerID]bool)
		}
	}
	return nil
}

// Host builds a simulated host matching the script's setup.
func (s *Script) Host() *slider.SimHost {
	h := slider.NewSimHost(s.Setup.Width, s.Setup.Height)
	h.Pad = s.Setup.Padding
	h.RightToLeft = s.Setup.RTL
	h.Scrolling = s.Setup.Scrolling
	return h
}

// PointerEvents converts the script into slider events. Every event carries
// the last known position of every active pointer, ordered by id, the way
// a platform reports multi-touch motion.
func (s *Script) PointerEvents() []slider.PointerEvent {
	last := make(map[slider.PointerID]slider.Pointer)
	snapshot := func() []slider.Pointer {
		ps := make([]slider.Pointer, 0, len(last))
		for _, p := range last {
			ps = append(ps, p)
		}
		sort.Slice(ps, func(i, j int) bool { return ps[i].ID < ps[j].ID })
		return ps
	}

	out := make([]slider.PointerEvent, 0, len(s.Events))
	for _, ev := range s.Events {
		if ev.Action == slider.TouchCancel {
			out = append(out, slider.PointerEvent{Action: slider.TouchCancel})
			last = make(map[slider.PointerID]slider.Pointer)
			continue
		}
		last[ev.Pointer] = slider.Pointer{ID: ev.Pointer, X: ev.X, Y: ev.Y}
		out = append(out, slider.PointerEvent{
			Action:   ev.Action,
			Pointer:  ev.Pointer,
			Pointers: snapshot(),
		})
		if ev.Action == slider.TouchUp || ev.Action == slider.TouchPointerUp {
			delete(last, ev.Pointer)
		}
	}
	return out
}

// Record appends a slider event to the script, so live gestures can be
// saved and replayed.
func (s *Script) Record(ev slider.PointerEvent) {
	if ev.Action == slider.TouchCancel {
		s.Events = append(s.Events, Event{Line: len(s.Events) + 1, Action: slider.TouchCancel})
		return
	}
	p, ok := ev.Position(ev.Pointer)
	if !ok {
		return
	}
	s.Events = append(s.Events, Event{
		Line:    len(s.Events) + 1,
		Action:  ev.Action,
		Pointer: ev.Pointer,
		X:       p.X,
		Y:       p.Y,
	})
}

// WriteTo writes the script in its text form.
func (s *Script) WriteTo(w io.Writer) (int64, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "size %d %d\n", s.Setup.Width, s.Setup.Height)
	if p := s.Setup.Padding; p != (slider.Insets{}) {
		fmt.Fprintf(&b, "padding %d %d %d %d\n", p.Left, p.Top, p.Right, p.Bottom)
	}
	if s.Setup.RTL {
		b.WriteString("rtl\n")
	}
	if s.Setup.Scrolling {
		b.WriteString("scrolling\n")
	}
	for _, ev := range s.Events {
		b.WriteString(ev.String())
		b.WriteByte('\n')
	}
	n, err := io.WriteString(w, b.String())
	return int64(n), err
}

// formatCoord writes the shortest form that parses back to v.
func formatCoord(v float32) string {
	return strconv.FormatFloat(float64(v), 'f', -1, 32)
}
