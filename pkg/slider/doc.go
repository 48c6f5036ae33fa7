// Package slider implements the value and gesture engine of a multi-thumb
// slider: several ordered thumbs sharing one linear track.
//
// The package never draws. A Host supplies geometry (view size, padding,
// layout direction) and receives redraw requests, while the Slider resolves
// pointer streams into thumb values and reports every change through
// EventHandlers.
//
// # Overview
//
// The package provides:
//   - Thumb: a bounded value marker with its own min/max, tag and style
//   - Slider: the controller owning the ordered thumbs, the global scale and
//     the per-pointer drag state
//   - Host: the geometry/redraw collaborator, with SimHost for headless use
//   - PointerEvent / ChangeEvent: inbound touch stream and outbound notifications
//
// # Usage
//
//	host := slider.NewSimHost(232, 48)
//	s, err := slider.New(slider.DefaultConfig(), host)
//	if err != nil {
//		return err
//	}
//	s.SetValueChangeHandler(&slider.EventHandler{
//		Handle: func(ev slider.ChangeEvent) {
//			fmt.Printf("thumb %d -> %d\n", ev.Index, ev.Value)
//		},
//	})
//
//	// Drag the thumb closest to x=40 over to x=120.
//	s.HandleEvent(slider.Touch(slider.TouchDown, 0, 40, 24))
//	s.HandleEvent(slider.Touch(slider.TouchMove, 0, 120, 24))
//	s.HandleEvent(slider.Touch(slider.TouchUp, 0, 120, 24))
//
// # Value resolution
//
// Every value change goes through one clamp, applied in a fixed order:
//  1. cap at next thumb value - minSpacing*step
//  2. floor at previous thumb value + minSpacing*step
//  3. round up onto the step grid anchored at the scale minimum
//  4. clamp to the thumb's own [min, max]
//
// Clamping never fails; out-of-range requests settle on the nearest valid
// value so a drag can never get stuck.
//
// # Thumb selection
//
// A touch selects every thumb whose drawn centre lies within one thumb width
// of the touch ("exact" candidates), or the nearest thumb when none does.
// Several exact candidates are disambiguated on the first move: the thumb
// with the most room in the direction of motion wins. Inside a scrolling
// container the slider only claims the gesture once the pointer has moved
// further than the touch slop.
//
// # Concurrency
//
// A Slider is driven from a single UI goroutine. Its mutex serialises
// mutation so that handlers may call back into the slider; notifications are
// delivered after the lock is released, in the order they were produced.
package slider
