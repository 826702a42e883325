package gesture

import (
	"reflect"
	"testing"
)

// countingHandler records lifecycle calls made by a Gate.
type countingHandler struct {
	handled  []Event
	suspends int
	resumes  int
}

func (h *countingHandler) Handle(ev Event) bool {
	h.handled = append(h.handled, ev)
	return true
}
func (h *countingHandler) OnSuspend() { h.suspends++ }
func (h *countingHandler) OnResume()  { h.resumes++ }

func TestGateForwardsWhenOpen(t *testing.T) {
	h := &countingHandler{}
	g := NewGate(h)

	if g.Blocked() {
		t.Fatal("new gate is blocked")
	}
	if g.Handler() != h {
		t.Error("Handler() does not return the wrapped handler")
	}
	if !g.Handle(Press(1, 0, 0)) {
		t.Error("open gate did not consume event")
	}
	if len(h.handled) != 1 {
		t.Errorf("forwarded %d events, want 1", len(h.handled))
	}
}

func TestGateBlock(t *testing.T) {
	h := &countingHandler{}
	g := NewGate(h)

	g.Block(true)
	if !g.Blocked() || h.suspends != 1 {
		t.Fatalf("blocked=%v suspends=%d", g.Blocked(), h.suspends)
	}
	if g.Handle(Press(1, 0, 0)) {
		t.Error("blocked gate consumed event")
	}
	if len(h.handled) != 0 {
		t.Error("blocked gate forwarded event")
	}

	g.Block(false)
	if g.Blocked() || h.resumes != 1 {
		t.Fatalf("blocked=%v resumes=%d", g.Blocked(), h.resumes)
	}
}

func TestGateBlockIdempotent(t *testing.T) {
	h := &countingHandler{}
	g := NewGate(h)

	g.Block(false)
	g.Block(true)
	g.Block(true)
	g.OnSuspend()
	g.OnResume()
	g.Block(false)

	if h.suspends != 1 || h.resumes != 1 {
		t.Errorf("suspends=%d resumes=%d, want 1 and 1", h.suspends, h.resumes)
	}
}

func TestGateUnblockDiscardsTouches(t *testing.T) {
	r, host, _ := newTestRecognizer(0)
	g := NewGate(r)

	Feed(g, Press(1, 0, 0), Press(2, 100, 0), Move(1, 10, 0))
	if !r.State().Zooming {
		t.Fatal("expected zoom in progress")
	}

	g.Block(true)
	g.Block(false)

	// Fingers pressed before the block are unknown now.
	Feed(g, Move(2, 200, 0), Release(1, 10, 0), Release(2, 200, 0))

	want := []string{"ZoomSequenceBegin", "ZoomSequenceEnd"}
	if got := methods(host.Calls); !reflect.DeepEqual(got, want) {
		t.Errorf("calls = %v, want %v", got, want)
	}
	st := r.State()
	if len(st.Valid) != 0 || len(st.Invalid) != 0 {
		t.Errorf("state not clean: %+v", st)
	}
}
