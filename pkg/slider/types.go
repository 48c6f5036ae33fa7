package slider

import (
	"errors"
	"fmt"
	"image"
)

var (
	// ErrInvalidRange is returned when a scale change would leave min > max.
	ErrInvalidRange = errors.New("slider: invalid range")
	// ErrDuplicateThumb is returned when adding a thumb that is already attached.
	ErrDuplicateThumb = errors.New("slider: duplicate thumb")
	// ErrIndexOutOfRange marks a thumb lookup outside the thumb sequence.
	ErrIndexOutOfRange = errors.New("slider: index out of range")
)

// Insets holds padding in pixels.
type Insets struct {
	Left, Top, Right, Bottom int
}

// Style describes how a thumb occupies pixels. It is copied into every thumb,
// so customising one thumb never affects another.
type Style struct {
	Width  int // drawn width, also the hit tolerance around the centre
	Height int
	Offset int // distance from the thumb's left edge to its anchor
}

// DefaultStyle is a 24px square thumb anchored at its centre.
var DefaultStyle = Style{Width: 24, Height: 24, Offset: 12}

// IsZero reports whether no dimension has been set.
func (s Style) IsZero() bool {
	return s == Style{}
}

// PointerID identifies one pointer (finger, pen or mouse) across a gesture.
type PointerID int

// TouchAction is the kind of a PointerEvent.
type TouchAction uint8

const (
	// TouchDown starts a gesture with its first pointer.
	TouchDown TouchAction = iota
	// TouchMove reports new positions for one or more active pointers.
	TouchMove
	// TouchUp ends a gesture with its last pointer.
	TouchUp
	// TouchPointerDown adds a pointer to an ongoing gesture.
	TouchPointerDown
	// TouchPointerUp lifts a pointer while others stay down.
	TouchPointerUp
	// TouchCancel aborts the whole gesture.
	TouchCancel
)

var touchActionNames = [...]string{
	TouchDown:        "down",
	TouchMove:        "move",
	TouchUp:          "up",
	TouchPointerDown: "pointer-down",
	TouchPointerUp:   "pointer-up",
	TouchCancel:      "cancel",
}

func (a TouchAction) String() string {
	if int(a) < len(touchActionNames) {
		return touchActionNames[a]
	}
	return fmt.Sprintf("TouchAction(%d)", uint8(a))
}

// Pointer is the position of one pointer in view coordinates.
type Pointer struct {
	ID   PointerID
	X, Y float32
}

// PointerEvent is one step of a (possibly multi-touch) gesture.
type PointerEvent struct {
	Action TouchAction
	// Pointer is the pointer the action applies to. Ignored for TouchMove
	// and TouchCancel.
	Pointer PointerID
	// Pointers carries the current position of every pointer the event
	// reports on.
	Pointers []Pointer
}

// Touch builds a single-pointer event.
func Touch(action TouchAction, id PointerID, x, y float32) PointerEvent {
	return PointerEvent{
		Action:   action,
		Pointer:  id,
		Pointers: []Pointer{{ID: id, X: x, Y: y}},
	}
}

// Position looks up a pointer carried by the event.
func (e PointerEvent) Position(id PointerID) (Pointer, bool) {
	for _, p := range e.Pointers {
		if p.ID == id {
			return p, true
		}
	}
	return Pointer{}, false
}

// ChangeKind distinguishes ChangeEvents.
type ChangeKind uint8

const (
	// ValueChanged is emitted after a thumb took a new value.
	ValueChanged ChangeKind = iota
	// TrackingStart is emitted when a pointer starts dragging a thumb.
	TrackingStart
	// TrackingStop is emitted when a drag ends by release or cancel.
	TrackingStop
)

func (k ChangeKind) String() string {
	switch k {
	case ValueChanged:
		return "value"
	case TrackingStart:
		return "start"
	case TrackingStop:
		return "stop"
	}
	return fmt.Sprintf("ChangeKind(%d)", uint8(k))
}

// ChangeEvent describes a value or tracking change of one thumb.
type ChangeEvent struct {
	Kind     ChangeKind
	Slider   *Slider
	Thumb    *Thumb
	Index    int
	Value    int
	FromUser bool
}

// EventHandler provides both channel and callback based event delivery.
// Either field may be nil. Channel sends never block; events are dropped
// when the channel is full.
type EventHandler struct {
	Events chan ChangeEvent
	Handle func(ChangeEvent)
}

// NewEventHandler returns a handler with a buffered channel.
func NewEventHandler(buffer int) *EventHandler {
	return &EventHandler{Events: make(chan ChangeEvent, buffer)}
}

// Emit delivers the event through the channel and callback if present.
func (h *EventHandler) Emit(ev ChangeEvent) {
	if h == nil {
		return
	}
	if h.Events != nil {
		select {
		case h.Events <- ev:
		default:
		}
	}
	if h.Handle != nil {
		h.Handle(ev)
	}
}

func indexError(i, n int) error {
	return fmt.Errorf("slider: thumb %d of %d: %w", i, n, ErrIndexOutOfRange)
}

func unionRect(rs ...image.Rectangle) image.Rectangle {
	var u image.Rectangle
	for _, r := range rs {
		u = u.Union(r)
	}
	return u
}
