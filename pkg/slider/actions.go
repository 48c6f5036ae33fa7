package slider

import (
	"fmt"
	"image"
	"strings"
)

// Action is an automation request a single thumb can receive.
type Action uint8

const (
	// ActionScrollForward moves the thumb one step up the scale.
	ActionScrollForward Action = iota + 1
	// ActionScrollBackward moves the thumb one step down the scale.
	ActionScrollBackward
	// ActionSetValue requests an explicit value.
	ActionSetValue
)

func (a Action) String() string {
	switch a {
	case ActionScrollForward:
		return "scroll-forward"
	case ActionScrollBackward:
		return "scroll-backward"
	case ActionSetValue:
		return "set-value"
	}
	return fmt.Sprintf("Action(%d)", uint8(a))
}

// ThumbInfo is a read-only description of one thumb for automation and
// inspection tools.
type ThumbInfo struct {
	Index   int
	Tag     string
	Text    string
	Value   int
	Min     int
	Max     int
	Enabled bool
	Bounds  image.Rectangle
	Actions []Action
}

// PerformAction applies a to thumb i. value is only read by ActionSetValue.
// It reports false for an unknown thumb or action; an action that leaves
// the value unchanged still counts as performed.
func (s *Slider) PerformAction(i int, a Action, value int) bool {
	performed := false
	s.do(func(out *outbox) {
		if i < 0 || i >= len(s.thumbs) {
			return
		}
		t := s.thumbs[i]
		switch a {
		case ActionScrollForward:
			s.setThumbValue(i, t.value+s.step, false, out)
		case ActionScrollBackward:
			s.setThumbValue(i, t.value-s.step, false, out)
		case ActionSetValue:
			s.setThumbValue(i, value, false, out)
		default:
			return
		}
		performed = true
	})
	if !performed {
		s.log.Warn().Int("thumb", i).Stringer("action", a).Msg("action not performed")
	}
	return performed
}

// ScrollForward moves thumb i one step up.
func (s *Slider) ScrollForward(i int) bool {
	return s.PerformAction(i, ActionScrollForward, 0)
}

// ScrollBackward moves thumb i one step down.
func (s *Slider) ScrollBackward(i int) bool {
	return s.PerformAction(i, ActionScrollBackward, 0)
}

// SetValueAction requests value v for thumb i the way an automation client
// would.
func (s *Slider) SetValueAction(i, v int) bool {
	return s.PerformAction(i, ActionSetValue, v)
}

func (s *Slider) actions(idx int) []Action {
	t := s.thumbs[idx]
	acts := []Action{ActionSetValue}
	if t.PossibleMin() < t.value {
		acts = append(acts, ActionScrollBackward)
	}
	if t.PossibleMax() > t.value {
		acts = append(acts, ActionScrollForward)
	}
	return acts
}

// Actions lists the actions thumb i can currently make progress with.
func (s *Slider) Actions(i int) []Action {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mustIndex(i)
	return s.actions(i)
}

// Describe returns the automation view of thumb i.
func (s *Slider) Describe(i int) ThumbInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mustIndex(i)
	t := s.thumbs[i]
	return ThumbInfo{
		Index:   i,
		Tag:     t.tag,
		Text:    fmt.Sprintf("%s: %d", t.tag, t.value),
		Value:   t.value,
		Min:     t.min,
		Max:     t.max,
		Enabled: t.Enabled(),
		Bounds:  s.thumbBounds(i),
		Actions: s.actions(i),
	}
}

// FindByTag returns the indices of thumbs whose tag contains text, ignoring
// case. An empty query matches nothing.
func (s *Slider) FindByTag(text string) []int {
	if text == "" {
		return nil
	}
	q := strings.ToLower(text)
	s.mu.Lock()
	defer s.mu.Unlock()
	var res []int
	for i, t := range s.thumbs {
		if strings.Contains(strings.ToLower(t.tag), q) {
			res = append(res, i)
		}
	}
	return res
}
