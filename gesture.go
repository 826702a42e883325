package gesture

import "math"

// Vec2 is a 2D vector used for touch positions, offsets and deltas
// throughout the API.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// Distance returns the Euclidean distance between v and o.
func (v Vec2) Distance(o Vec2) float64 { return v.Sub(o).Len() }

// Midpoint returns the point halfway between v and o.
func (v Vec2) Midpoint(o Vec2) Vec2 { return v.Add(o).Scale(0.5) }

// Sequence identifies one finger's press-move-release lifecycle. Values are
// opaque; only equality is meaningful. NoSequence marks an event that does
// not belong to any touch.
type Sequence uint64

// NoSequence is the zero Sequence. Events carrying it are rejected.
const NoSequence Sequence = 0

// EventKind identifies a kind of raw touch event.
type EventKind uint8

const (
	EventPress   EventKind = iota // a finger touched down
	EventMove                     // a finger moved while down
	EventRelease                  // a finger lifted or the touch was cancelled
)

func (k EventKind) String() string {
	switch k {
	case EventPress:
		return "press"
	case EventMove:
		return "move"
	case EventRelease:
		return "release"
	}
	return "unknown"
}

// Event is a raw touch event as delivered by the windowing layer.
// Absolute is in window coordinates; Relative is in the coordinates of the
// view the touch landed on.
type Event struct {
	Kind     EventKind
	Sequence Sequence
	Absolute Vec2
	Relative Vec2
}

// TapMode selects how multi-finger taps are validated.
type TapMode uint8

const (
	// TapMovementGated requires every participating finger to stay within
	// TapPolicy.MaxMovement of where it touched down.
	TapMovementGated TapMode = iota
	// TapCountGated fires whenever the finger count matches and no zoom
	// occurred, regardless of movement.
	TapCountGated
)

func (m TapMode) String() string {
	switch m {
	case TapMovementGated:
		return "movement"
	case TapCountGated:
		return "count"
	}
	return "unknown"
}

// ParseTapMode converts "movement" or "count" into a TapMode.
func ParseTapMode(s string) (TapMode, error) {
	switch s {
	case "movement", "":
		return TapMovementGated, nil
	case "count":
		return TapCountGated, nil
	}
	return 0, ErrInvalidTapMode
}

// DefaultTapMaxMovement is the accumulated movement in pixels a finger may
// travel and still count as part of a tap.
const DefaultTapMaxMovement = 5.0

// TapPolicy configures tap validation for two-, three- and four-finger taps.
type TapPolicy struct {
	Mode        TapMode
	MaxMovement float64
}

// DefaultTapPolicy returns the movement-gated policy with a 5 pixel limit.
func DefaultTapPolicy() TapPolicy {
	return TapPolicy{Mode: TapMovementGated, MaxMovement: DefaultTapMaxMovement}
}
