package slider

import (
	"image"
	"testing"
)

func TestScrollActions(t *testing.T) {
	s, _ := newTestSlider(t, 1, nil)

	s.SetValue(0, 10, false)
	if !s.ScrollForward(0) {
		t.Fatalf("ScrollForward(0) = false")
	}
	if got := s.Value(0); got != 11 {
		t.Fatalf("Value(0) after forward = %d, want 11", got)
	}

	s.SetValue(0, 100, false)
	if !s.ScrollForward(0) {
		t.Fatalf("ScrollForward(0) at max = false")
	}
	if got := s.Value(0); got != 100 {
		t.Fatalf("Value(0) after forward at max = %d, want 100", got)
	}

	s.ScrollBackward(0)
	if got := s.Value(0); got != 99 {
		t.Fatalf("Value(0) after backward = %d, want 99", got)
	}

	if !s.SetValueAction(0, 42) || s.Value(0) != 42 {
		t.Fatalf("SetValueAction(0, 42) left value %d", s.Value(0))
	}
}

func TestScrollActionsUseStep(t *testing.T) {
	s, _ := newTestSlider(t, 2, func(c *Config) {
		c.Step = 10
		c.MinSpacing = 1
	})
	s.ScrollBackward(1)
	s.ScrollForward(0)
	if got, want := s.Values(), []int{10, 90}; !equalInts(got, want) {
		t.Fatalf("Values() = %v, want %v", got, want)
	}
}

func TestPerformActionRejects(t *testing.T) {
	s, _ := newTestSlider(t, 2, nil)
	if s.PerformAction(2, ActionScrollForward, 0) {
		t.Fatalf("PerformAction on missing thumb = true")
	}
	if s.PerformAction(-1, ActionSetValue, 5) {
		t.Fatalf("PerformAction on negative index = true")
	}
	if s.PerformAction(0, Action(99), 0) {
		t.Fatalf("PerformAction with unknown action = true")
	}
	if got, want := s.Values(), []int{0, 100}; !equalInts(got, want) {
		t.Fatalf("Values() = %v, want %v", got, want)
	}
}

func TestActions(t *testing.T) {
	s, _ := newTestSlider(t, 3, func(c *Config) { c.MinSpacing = 2 })

	has := func(acts []Action, a Action) bool {
		for _, x := range acts {
			if x == a {
				return true
			}
		}
		return false
	}

	first := s.Actions(0)
	if has(first, ActionScrollBackward) || !has(first, ActionScrollForward) || !has(first, ActionSetValue) {
		t.Fatalf("Actions(0) = %v", first)
	}
	last := s.Actions(2)
	if !has(last, ActionScrollBackward) || has(last, ActionScrollForward) {
		t.Fatalf("Actions(2) = %v", last)
	}
	mid := s.Actions(1)
	if !has(mid, ActionScrollBackward) || !has(mid, ActionScrollForward) {
		t.Fatalf("Actions(1) = %v", mid)
	}

	// thumb 1 cannot go below 0 + 2 steps
	s.SetValue(1, 0, false)
	if has(s.Actions(1), ActionScrollBackward) {
		t.Fatalf("Actions(1) at its possible minimum = %v", s.Actions(1))
	}
	if got := s.Thumb(1).PossibleMin(); got != 2 {
		t.Fatalf("PossibleMin() = %d, want 2", got)
	}
	if got := s.Thumb(1).PossibleMax(); got != 98 {
		t.Fatalf("PossibleMax() = %d, want 98", got)
	}
}

func TestDescribe(t *testing.T) {
	s, _ := newTestSlider(t, 2, nil)
	s.Thumb(1).SetTag("upper").SetEnabled(false)

	info := s.Describe(1)
	if info.Text != "upper: 100" || info.Tag != "upper" || info.Value != 100 {
		t.Fatalf("Describe(1) = %+v", info)
	}
	if info.Enabled {
		t.Fatalf("Describe(1).Enabled = true for a disabled thumb")
	}
	if info.Bounds != image.Rect(204, 12, 228, 36) {
		t.Fatalf("Describe(1).Bounds = %v", info.Bounds)
	}
	if info.Min != 0 || info.Max != 100 || info.Index != 1 {
		t.Fatalf("Describe(1) limits = %+v", info)
	}
	if got := s.Describe(0).Text; got != "thumb 0: 0" {
		t.Fatalf("Describe(0).Text = %q", got)
	}
}

func TestFindByTag(t *testing.T) {
	s, _ := newTestSlider(t, 3, nil)
	s.Thumb(2).SetTag("Upper Bound")

	cases := []struct {
		query string
		want  []int
	}{
		{"thumb", []int{0, 1}},
		{"THUMB 1", []int{1}},
		{"bound", []int{2}},
		{"missing", nil},
		{"", nil},
	}
	for _, tc := range cases {
		if got := s.FindByTag(tc.query); !equalInts(got, tc.want) {
			t.Errorf("FindByTag(%q) = %v, want %v", tc.query, got, tc.want)
		}
	}
}

func TestActionString(t *testing.T) {
	if got := ActionScrollForward.String(); got != "scroll-forward" {
		t.Fatalf("String() = %q", got)
	}
	if got := Action(0).String(); got != "Action(0)" {
		t.Fatalf("String() = %q", got)
	}
}
