package gesture

import (
	"fmt"
	"strings"
)

// HostCall is one call a Recorder received.
type HostCall struct {
	Method string
	Args   []float64
}

func (c HostCall) String() string {
	if len(c.Args) == 0 {
		return c.Method + "()"
	}
	parts := make([]string, len(c.Args))
	for i, a := range c.Args {
		parts[i] = fmt.Sprintf("%g", a)
	}
	return c.Method + "(" + strings.Join(parts, ", ") + ")"
}

// Recorder is a Host that records every call it receives. It is used by
// tests and by the replay tool; it performs no scrolling or zooming itself.
//
// ZoomSequenceChange is recorded as (scale, absolute, dx, dy) with absolute
// encoded as 1 or 0.
type Recorder struct {
	Calls []HostCall

	// Offset is returned by WidgetOffset.
	Offset Vec2
	// FitMode is the zoom-fit flag read and written by the recognizer.
	FitMode bool
}

// Reset forgets all recorded calls.
func (r *Recorder) Reset() {
	clear(r.Calls)
	r.Calls = r.Calls[:0]
}

// Count returns how many calls to method were recorded.
func (r *Recorder) Count(method string) int {
	n := 0
	for _, c := range r.Calls {
		if c.Method == method {
			n++
		}
	}
	return n
}

// Last returns the most recent call to method.
func (r *Recorder) Last(method string) (HostCall, bool) {
	for i := len(r.Calls) - 1; i >= 0; i-- {
		if r.Calls[i].Method == method {
			return r.Calls[i], true
		}
	}
	return HostCall{}, false
}

func (r *Recorder) record(method string, args ...float64) {
	r.Calls = append(r.Calls, HostCall{Method: method, Args: args})
}

func (r *Recorder) Scroll(dx, dy float64)         { r.record("Scroll", dx, dy) }
func (r *Recorder) ZoomSequenceBegin(anchor Vec2) { r.record("ZoomSequenceBegin", anchor.X, anchor.Y) }
func (r *Recorder) ZoomSequenceEnd()              { r.record("ZoomSequenceEnd") }
func (r *Recorder) Undo()                         { r.record("Undo") }
func (r *Recorder) Redo()                         { r.record("Redo") }
func (r *Recorder) ShowFloatingMenu(x, y float64) { r.record("ShowFloatingMenu", x, y) }
func (r *Recorder) IsZoomFitModeActive() bool     { return r.FitMode }
func (r *Recorder) WidgetOffset() Vec2            { return r.Offset }

func (r *Recorder) ZoomSequenceChange(scale float64, absolute bool, delta Vec2) {
	abs := 0.0
	if absolute {
		abs = 1
	}
	r.record("ZoomSequenceChange", scale, abs, delta.X, delta.Y)
}

func (r *Recorder) SetZoomFitMode(enabled bool) {
	r.FitMode = enabled
	v := 0.0
	if enabled {
		v = 1
	}
	r.record("SetZoomFitMode", v)
}
