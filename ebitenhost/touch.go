package ebitenhost

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/phanxgames/gesture"
)

// pointerKey identifies a pointer across ticks. The mouse, when emulating a
// finger, has its own key so it never collides with a touch ID.
type pointerKey struct {
	touch ebiten.TouchID
	mouse bool
}

type touchPoint struct {
	key pointerKey
	pos gesture.Vec2
}

// touchFrame is one tick of raw pointer state.
type touchFrame struct {
	pressed  []touchPoint
	active   []touchPoint
	released []touchPoint
}

type trackedTouch struct {
	seq  gesture.Sequence
	last gesture.Vec2
}

// TouchSource polls Ebitengine touches once per tick and converts them into
// gesture events. Every touch gets a fresh Sequence when it presses, so a
// recycled TouchID never aliases an earlier finger.
type TouchSource struct {
	// Origin is the window position of the view's top-left corner. It is
	// subtracted from absolute positions to form Event.Relative.
	Origin gesture.Vec2
	// MouseAsTouch makes the left mouse button act as an extra finger.
	MouseAsTouch bool

	tracked map[pointerKey]*trackedTouch
	order   []pointerKey // press order
	nextSeq gesture.Sequence

	ids    []ebiten.TouchID
	frame  touchFrame
	events []gesture.Event
}

// NewTouchSource creates a TouchSource for a view whose top-left corner is
// at origin in window coordinates.
func NewTouchSource(origin gesture.Vec2) *TouchSource {
	return &TouchSource{
		Origin:  origin,
		tracked: make(map[pointerKey]*trackedTouch),
		nextSeq: 1,
	}
}

// Poll reads the current touch state and returns this tick's events. The
// returned slice is reused by the next call.
func (s *TouchSource) Poll() []gesture.Event {
	s.readFrame()
	return s.apply(&s.frame)
}

// Update polls and feeds the events to h. It returns how many were consumed.
func (s *TouchSource) Update(h gesture.InputHandler) int {
	return gesture.Feed(h, s.Poll()...)
}

// Active returns the number of pointers currently down.
func (s *TouchSource) Active() int {
	return len(s.order)
}

func (s *TouchSource) readFrame() {
	f := &s.frame
	f.pressed = f.pressed[:0]
	f.active = f.active[:0]
	f.released = f.released[:0]

	s.ids = inpututil.AppendJustPressedTouchIDs(s.ids[:0])
	for _, id := range s.ids {
		x, y := ebiten.TouchPosition(id)
		f.pressed = append(f.pressed, touchPoint{pointerKey{touch: id}, vec(x, y)})
	}
	s.ids = ebiten.AppendTouchIDs(s.ids[:0])
	for _, id := range s.ids {
		x, y := ebiten.TouchPosition(id)
		f.active = append(f.active, touchPoint{pointerKey{touch: id}, vec(x, y)})
	}
	s.ids = inpututil.AppendJustReleasedTouchIDs(s.ids[:0])
	for _, id := range s.ids {
		// A released touch has no current position.
		x, y := inpututil.TouchPositionInPreviousTick(id)
		f.released = append(f.released, touchPoint{pointerKey{touch: id}, vec(x, y)})
	}

	if !s.MouseAsTouch {
		return
	}
	mx, my := ebiten.CursorPosition()
	mouse := touchPoint{pointerKey{mouse: true}, vec(mx, my)}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		f.pressed = append(f.pressed, mouse)
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		f.active = append(f.active, mouse)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		f.released = append(f.released, mouse)
	}
}

// apply turns one frame into events: releases first, then moves in press
// order, then presses.
func (s *TouchSource) apply(f *touchFrame) []gesture.Event {
	s.events = s.events[:0]

	for _, p := range f.released {
		s.release(p)
	}

	for _, key := range s.order {
		i := slices.IndexFunc(f.active, func(p touchPoint) bool { return p.key == key })
		if i < 0 {
			continue
		}
		t := s.tracked[key]
		if pos := f.active[i].pos; pos != t.last {
			t.last = pos
			s.events = append(s.events, s.event(gesture.EventMove, t.seq, pos))
		}
	}

	for _, p := range f.pressed {
		if _, ok := s.tracked[p.key]; ok {
			continue
		}
		t := &trackedTouch{seq: s.nextSeq, last: p.pos}
		s.nextSeq++
		s.tracked[p.key] = t
		s.order = append(s.order, p.key)
		s.events = append(s.events, s.event(gesture.EventPress, t.seq, p.pos))
	}

	// Ebitengine never reports one pointer as both pressed and released in a
	// tick; this pass only serves frames built by hand.
	for _, p := range f.released {
		if _, ok := s.tracked[p.key]; ok {
			s.release(p)
		}
	}
	return s.events
}

func (s *TouchSource) release(p touchPoint) {
	t, ok := s.tracked[p.key]
	if !ok {
		return
	}
	delete(s.tracked, p.key)
	s.order = slices.DeleteFunc(s.order, func(k pointerKey) bool { return k == p.key })
	s.events = append(s.events, s.event(gesture.EventRelease, t.seq, p.pos))
}

func (s *TouchSource) event(kind gesture.EventKind, seq gesture.Sequence, abs gesture.Vec2) gesture.Event {
	return gesture.Event{
		Kind:     kind,
		Sequence: seq,
		Absolute: abs,
		Relative: abs.Sub(s.Origin),
	}
}

func vec(x, y int) gesture.Vec2 {
	return gesture.Vec2{X: float64(x), Y: float64(y)}
}
