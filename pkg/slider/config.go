package slider

import "fmt"

// Config holds the construction parameters of a Slider.
type Config struct {
	Thumbs int // number of thumbs created at construction (default: 2)

	Min  int // global scale minimum (default: 0)
	Max  int // global scale maximum (default: 100)
	Step int // quantisation step (default: 1)

	// MinSpacing is the number of steps adjacent thumbs must stay apart.
	MinSpacing int

	DrawApart    bool // stack thumbs with equal values side by side
	MirrorForRTL bool // reverse the scale in right-to-left layouts (default: true)

	// TouchSlop is the distance in pixels a pointer must travel inside a
	// scrolling container before the slider claims the gesture.
	TouchSlop int

	ThumbStyle Style
}

// DefaultConfig returns a Config with two thumbs on a 0..100 scale.
func DefaultConfig() *Config {
	return &Config{
		Thumbs:       2,
		Min:          0,
		Max:          100,
		Step:         1,
		MinSpacing:   0,
		DrawApart:    false,
		MirrorForRTL: true,
		TouchSlop:    8,
		ThumbStyle:   DefaultStyle,
	}
}

// Validate checks the configuration and normalises out-of-range fields.
func (c *Config) Validate() error {
	if c.Min > c.Max {
		return fmt.Errorf("slider: min %d > max %d: %w", c.Min, c.Max, ErrInvalidRange)
	}
	if c.Step < 1 {
		c.Step = 1
	}
	if c.MinSpacing < 0 {
		c.MinSpacing = 0
	}
	if c.Thumbs < 0 {
		c.Thumbs = 0
	}
	if c.TouchSlop < 0 {
		c.TouchSlop = 0
	}
	if c.ThumbStyle.IsZero() {
		c.ThumbStyle = DefaultStyle
	}
	return nil
}
