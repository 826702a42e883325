package gesture

import "math"

// Synthetic event builders. Absolute and relative coordinates are the same;
// hosts with a widget offset can adjust Relative afterwards.

// Press returns a press event for seq at (x, y).
func Press(seq Sequence, x, y float64) Event {
	return Event{Kind: EventPress, Sequence: seq, Absolute: Vec2{x, y}, Relative: Vec2{x, y}}
}

// Move returns a motion event for seq at (x, y).
func Move(seq Sequence, x, y float64) Event {
	return Event{Kind: EventMove, Sequence: seq, Absolute: Vec2{x, y}, Relative: Vec2{x, y}}
}

// Release returns a release event for seq at (x, y).
func Release(seq Sequence, x, y float64) Event {
	return Event{Kind: EventRelease, Sequence: seq, Absolute: Vec2{x, y}, Relative: Vec2{x, y}}
}

// Tap returns a multi-finger tap: every finger presses at its point, then
// every finger releases in the same order without moving.
func Tap(first Sequence, points ...Vec2) []Event {
	events := make([]Event, 0, len(points)*2)
	for i, p := range points {
		events = append(events, Press(first+Sequence(i), p.X, p.Y))
	}
	for i, p := range points {
		events = append(events, Release(first+Sequence(i), p.X, p.Y))
	}
	return events
}

// Drag returns a single-finger drag: press at from, steps linearly
// interpolated moves ending at to, and release at to. steps below 1 is
// treated as 1.
func Drag(seq Sequence, from, to Vec2, steps int) []Event {
	if steps < 1 {
		steps = 1
	}
	events := make([]Event, 0, steps+2)
	events = append(events, Press(seq, from.X, from.Y))
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		p := from.Add(to.Sub(from).Scale(t))
		events = append(events, Move(seq, p.X, p.Y))
	}
	events = append(events, Release(seq, to.X, to.Y))
	return events
}

// Pinch returns a two-finger pinch around center along the horizontal axis.
// Both fingers press fromDist apart, then for each of steps frames the
// primary finger a moves followed by the secondary finger b, until they are
// toDist apart; finally both release. steps below 1 is treated as 1.
func Pinch(a, b Sequence, center Vec2, fromDist, toDist float64, steps int) []Event {
	if steps < 1 {
		steps = 1
	}
	half := func(d float64) Vec2 { return Vec2{math.Abs(d) / 2, 0} }

	pa, pb := center.Sub(half(fromDist)), center.Add(half(fromDist))
	events := make([]Event, 0, steps*2+4)
	events = append(events, Press(a, pa.X, pa.Y), Press(b, pb.X, pb.Y))
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		d := fromDist + (toDist-fromDist)*t
		pa, pb = center.Sub(half(d)), center.Add(half(d))
		events = append(events, Move(a, pa.X, pa.Y), Move(b, pb.X, pb.Y))
	}
	events = append(events, Release(a, pa.X, pa.Y), Release(b, pb.X, pb.Y))
	return events
}

// Feed delivers events to h in order and returns how many were consumed.
func Feed(h InputHandler, events ...Event) int {
	consumed := 0
	for _, ev := range events {
		if h.Handle(ev) {
			consumed++
		}
	}
	return consumed
}
