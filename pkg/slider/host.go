package slider

import "image"

// Host is the view-side collaborator of a Slider. It answers geometry
// queries and receives redraw and gesture-claim requests.
type Host interface {
	// Size returns the view size in pixels.
	Size() image.Point
	// Padding returns the view padding in pixels.
	Padding() Insets
	// RTL reports a right-to-left layout direction.
	RTL() bool
	// InScrollingContainer reports whether an ancestor may want to scroll
	// on the same gesture.
	InScrollingContainer() bool
	// ClaimDrag asks ancestors to stop intercepting the current gesture.
	ClaimDrag()
	// Invalidate requests a redraw of r.
	Invalidate(r image.Rectangle)
}

// SimHost is an in-memory Host useful for tests and headless replay. It
// records claims and redraw requests for inspection.
type SimHost struct {
	Width, Height int
	Pad           Insets
	RightToLeft   bool
	Scrolling     bool

	claims int
	dirty  []image.Rectangle
}

// NewSimHost constructs a left-to-right host of the given size.
func NewSimHost(width, height int) *SimHost {
	return &SimHost{Width: width, Height: height}
}

func (h *SimHost) Size() image.Point { return image.Pt(h.Width, h.Height) }

func (h *SimHost) Padding() Insets { return h.Pad }

func (h *SimHost) RTL() bool { return h.RightToLeft }

func (h *SimHost) InScrollingContainer() bool { return h.Scrolling }

func (h *SimHost) ClaimDrag() { h.claims++ }

func (h *SimHost) Invalidate(r image.Rectangle) {
	h.dirty = append(h.dirty, r)
}

// Claims reports how many times the slider claimed the gesture.
func (h *SimHost) Claims() int { return h.claims }

// Dirty returns the redraw requests received so far.
func (h *SimHost) Dirty() []image.Rectangle {
	return append([]image.Rectangle(nil), h.dirty...)
}

// Reset clears recorded claims and redraw requests.
func (h *SimHost) Reset() {
	h.claims = 0
	h.dirty = nil
}
