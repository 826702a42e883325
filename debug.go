package gesture

import "fmt"

// debugEnter panics when a recognizer entry point is called while another
// one is still running. Only called when debug mode is enabled; in release
// mode callers skip this entirely.
func (r *Recognizer) debugEnter(op string) {
	if r.busyOp != "" {
		panic(fmt.Sprintf("gesture debug: %s called while %s is in progress (recognizer is not reentrant)", op, r.busyOp))
	}
	r.busyOp = op
}

// debugLeave clears the in-flight marker and traces the resulting state.
func (r *Recognizer) debugLeave(ev Event) {
	op := r.busyOp
	r.busyOp = ""

	e := r.logger.Trace()
	if !e.Enabled() {
		return
	}
	st := r.State()
	e.Str("op", op).
		Stringer("kind", ev.Kind).
		Uint64("seq", uint64(ev.Sequence)).
		Int("valid", len(st.Valid)).
		Int("invalid", len(st.Invalid)).
		Bool("zooming", st.Zooming).
		Bool("armed", st.ZoomArmed).
		Bool("blocked", st.ZoomBlocked).
		Msg("Touch state")
}
