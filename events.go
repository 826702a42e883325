package gesture

// GestureType identifies a kind of recognised gesture event.
type GestureType uint8

const (
	GesturePan        GestureType = iota // fires for every scroll issued by a finger drag
	GestureZoomBegin                     // fires when a pinch starts a zoom sequence
	GestureZoomChange                    // fires for every pinch motion during a zoom sequence
	GestureZoomEnd                       // fires when a zoom sequence ends
	GestureTap                           // fires for two-, three- and four-finger taps
	GestureDesync                        // fires when the recognizer recovers from lost or contaminated touches
)

func (t GestureType) String() string {
	switch t {
	case GesturePan:
		return "pan"
	case GestureZoomBegin:
		return "zoom-begin"
	case GestureZoomChange:
		return "zoom-change"
	case GestureZoomEnd:
		return "zoom-end"
	case GestureTap:
		return "tap"
	case GestureDesync:
		return "desync"
	}
	return "unknown"
}

// EventStore is the interface for optional gesture fan-out (for example an
// ECS world). When set on a Recognizer, every command it issues to the Host
// is mirrored as a GestureEvent, along with desync diagnostics.
type EventStore interface {
	EmitEvent(event GestureEvent)
}

// GestureEvent describes one recognised gesture step.
type GestureEvent struct {
	Type    GestureType
	Fingers int
	// X and Y are the gesture position: the finger for pans and taps, the
	// zoom anchor for GestureZoomBegin and the pinch midpoint for
	// GestureZoomChange.
	X, Y float64
	// DeltaX and DeltaY are the scroll amount for pans and the midpoint
	// displacement for zoom changes.
	DeltaX, DeltaY float64
	// Scale is the reported zoom factor (1 for non-zoom events).
	Scale float64
	// Reason names the desync kind for GestureDesync.
	Reason string
}
