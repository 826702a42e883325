package gesture

import (
	"math"
	"slices"

	"github.com/rs/zerolog"
)

// minZoomDistance floors the initial pinch distance so the zoom scale never
// divides by zero when both fingers land on the same pixel.
const minZoomDistance = 0.01

// Recognizer turns raw touch events into pan, pinch-zoom and multi-finger
// tap commands on a Host.
//
// A Recognizer is driven purely by Handle, OnSuspend and OnResume. It has no
// timers and is not safe for concurrent use: every call, including the Host
// calls it makes, must return before the next one starts.
type Recognizer struct {
	host     Host
	settings Settings

	// valid holds contacts in press order. valid[0] is the primary finger,
	// valid[1] the secondary one of a two-finger gesture.
	valid []contact
	// invalid holds fingers that are down but excluded from recognition.
	invalid map[Sequence]struct{}

	zooming           bool
	zoomArmed         bool // next primary motion starts a zoom
	zoomBlocked       bool // scale pinned to 1.0 until the threshold is crossed
	zoomStartDistance float64
	zoomLastMidpoint  Vec2

	tapPolicy TapPolicy
	logger    zerolog.Logger
	store     EventStore
	metrics   *Metrics

	debug  bool
	busyOp string
}

// NewRecognizer creates a Recognizer that drives host and reads its
// thresholds from settings. Taps use DefaultTapPolicy.
func NewRecognizer(host Host, settings Settings) *Recognizer {
	return &Recognizer{
		host:      host,
		settings:  settings,
		valid:     make([]contact, 0, 5),
		invalid:   make(map[Sequence]struct{}),
		tapPolicy: DefaultTapPolicy(),
		logger:    zerolog.Nop(),
	}
}

// SetTapPolicy selects how multi-finger taps are validated.
func (r *Recognizer) SetTapPolicy(p TapPolicy) {
	r.tapPolicy = p
}

// SetLogger sets the logger used for desynchronization diagnostics.
func (r *Recognizer) SetLogger(l zerolog.Logger) {
	r.logger = l
}

// SetEventStore forwards recognised gestures and desync diagnostics to store.
// Pass nil to disable.
func (r *Recognizer) SetEventStore(store EventStore) {
	r.store = store
}

// SetMetrics records gesture counters on m. A nil m disables metrics.
func (r *Recognizer) SetMetrics(m *Metrics) {
	r.metrics = m
}

// SetDebugMode enables reentrancy checks and per-event state tracing.
func (r *Recognizer) SetDebugMode(enabled bool) {
	r.debug = enabled
}

// State is a read-only snapshot of the recognizer's bookkeeping.
type State struct {
	Valid             []Sequence // press order
	Invalid           []Sequence // ascending
	Zooming           bool
	ZoomArmed         bool
	ZoomBlocked       bool
	ZoomStartDistance float64
	ZoomMidpoint      Vec2
}

// State returns a snapshot of the current touch-session state.
func (r *Recognizer) State() State {
	st := State{
		Valid:             make([]Sequence, 0, len(r.valid)),
		Invalid:           make([]Sequence, 0, len(r.invalid)),
		Zooming:           r.zooming,
		ZoomArmed:         r.zoomArmed,
		ZoomBlocked:       r.zoomBlocked,
		ZoomStartDistance: r.zoomStartDistance,
		ZoomMidpoint:      r.zoomLastMidpoint,
	}
	for i := range r.valid {
		st.Valid = append(st.Valid, r.valid[i].seq)
	}
	for seq := range r.invalid {
		st.Invalid = append(st.Invalid, seq)
	}
	slices.Sort(st.Invalid)
	return st
}

// Handle processes one raw touch event. Events without a sequence are
// rejected and leave the state untouched; every other touch event is
// consumed.
func (r *Recognizer) Handle(ev Event) bool {
	if r.debug {
		r.debugEnter("Handle")
		defer r.debugLeave(ev)
	}

	if ev.Sequence == NoSequence {
		// Some platforms emit a pointer motion without a sequence before the
		// first touch begins.
		r.metrics.RecordRejected()
		return false
	}

	switch ev.Kind {
	case EventPress:
		r.press(ev)
	case EventMove:
		r.motion(ev)
	case EventRelease:
		r.release(ev)
	default:
		r.metrics.RecordRejected()
		return false
	}
	return true
}

// OnSuspend is called when input is blocked. An open zoom sequence is ended.
func (r *Recognizer) OnSuspend() {
	if r.debug {
		r.debugEnter("OnSuspend")
		defer r.debugLeave(Event{})
	}
	if r.zooming {
		r.zoomEnd()
	}
}

// OnResume is called when input is unblocked. All contacts are forgotten and
// every derived value returns to its default.
func (r *Recognizer) OnResume() {
	if r.debug {
		r.debugEnter("OnResume")
		defer r.debugLeave(Event{})
	}
	if r.zooming {
		r.zoomEnd()
	}
	r.reset()
}

func (r *Recognizer) reset() {
	clear(r.valid)
	r.valid = r.valid[:0]
	clear(r.invalid)
	r.zooming = false
	r.zoomArmed = false
	r.zoomBlocked = false
	r.zoomStartDistance = 0
	r.zoomLastMidpoint = Vec2{}
}

// --- Press ---

func (r *Recognizer) press(ev Event) {
	if _, ok := r.invalid[ev.Sequence]; ok {
		// The same finger cannot press twice, so its release was lost. Assume
		// every invalid finger has ended.
		r.logger.Warn().
			Uint64("seq", uint64(ev.Sequence)).
			Int("invalid", len(r.invalid)).
			Msg("Missed touch end/cancel event, resetting invalid touches")
		clear(r.invalid)
		r.desync(desyncMissedRelease, ev)
	}

	if len(r.invalid) > 0 {
		r.invalid[ev.Sequence] = struct{}{}
		r.logger.Debug().
			Uint64("seq", uint64(ev.Sequence)).
			Int("invalid", len(r.invalid)).
			Msg("Touch added as invalid")
		r.desync(desyncQuarantined, ev)
		return
	}

	if i := r.indexOf(ev.Sequence); i >= 0 {
		r.logger.Warn().
			Uint64("seq", uint64(ev.Sequence)).
			Msg("Repeated press for an active touch, restarting it")
		r.valid[i] = newContact(ev)
		r.desync(desyncMissedRelease, ev)
		return
	}

	r.valid = append(r.valid, newContact(ev))
	r.zoomArmed = len(r.valid) == 2
}

// --- Motion ---

func (r *Recognizer) motion(ev Event) {
	i := r.indexOf(ev.Sequence)
	if i < 0 {
		return
	}

	switch len(r.valid) {
	case 1:
		r.pan(i, ev)
	case 2:
		if !r.settings.ZoomGesturesEnabled() {
			r.pan(i, ev)
			return
		}
		switch {
		case r.zoomArmed:
			r.valid[i].track(ev)
			if i == 0 {
				r.zoomStart()
			}
		case r.zooming:
			r.zoomMotion(i, ev)
		default:
			r.valid[i].track(ev)
		}
	default:
		// Three or more fingers moving is not a gesture, but the movement
		// still counts against a later tap.
		r.valid[i].track(ev)
	}
}

// pan scrolls the view opposite to the finger so content follows it.
func (r *Recognizer) pan(i int, ev Event) {
	offset := r.valid[i].track(ev)
	r.host.Scroll(-offset.X, -offset.Y)

	r.metrics.RecordPan()
	r.emit(GestureEvent{
		Type:    GesturePan,
		Fingers: len(r.valid),
		X:       ev.Absolute.X,
		Y:       ev.Absolute.Y,
		DeltaX:  -offset.X,
		DeltaY:  -offset.Y,
		Scale:   1,
	})
}

// --- Zoom ---

func (r *Recognizer) zoomStart() {
	pri, sec := r.valid[0].lastAbs, r.valid[1].lastAbs

	r.zooming = true
	r.zoomArmed = false
	r.zoomBlocked = true
	r.zoomStartDistance = math.Max(pri.Distance(sec), minZoomDistance)

	// The host does not leave fit mode on its own.
	if r.host.IsZoomFitModeActive() {
		r.host.SetZoomFitMode(false)
	}

	// Window coordinates are used for the center: view-relative ones shift
	// as the zoom level changes.
	center := pri.Midpoint(sec)
	r.zoomLastMidpoint = center
	anchor := center.Add(r.host.WidgetOffset())
	r.host.ZoomSequenceBegin(anchor)

	r.metrics.RecordZoomSequence()
	r.emit(GestureEvent{
		Type:    GestureZoomBegin,
		Fingers: 2,
		X:       anchor.X,
		Y:       anchor.Y,
		Scale:   1,
	})
}

func (r *Recognizer) zoomMotion(i int, ev Event) {
	r.valid[i].track(ev)
	pri, sec := r.valid[0].lastAbs, r.valid[1].lastAbs

	distance := pri.Distance(sec)
	scale := distance / r.zoomStartDistance
	change := math.Abs(distance-r.zoomStartDistance) / r.zoomStartDistance * 100

	if r.zoomBlocked && change < r.settings.TouchZoomStartThreshold() {
		scale = 1.0
	} else {
		r.zoomBlocked = false
	}

	center := pri.Midpoint(sec)
	delta := center.Sub(r.zoomLastMidpoint)
	r.zoomLastMidpoint = center
	r.host.ZoomSequenceChange(scale, true, delta)

	r.emit(GestureEvent{
		Type:    GestureZoomChange,
		Fingers: 2,
		X:       center.X,
		Y:       center.Y,
		DeltaX:  delta.X,
		DeltaY:  delta.Y,
		Scale:   scale,
	})
}

func (r *Recognizer) zoomEnd() {
	r.zooming = false
	r.host.ZoomSequenceEnd()
	r.emit(GestureEvent{Type: GestureZoomEnd, Fingers: len(r.valid), Scale: 1})
}

// --- Release ---

func (r *Recognizer) release(ev Event) {
	if r.indexOf(ev.Sequence) >= 0 {
		r.releaseGesture(ev)
	}

	if r.removeValid(ev.Sequence) {
		if len(r.valid) < 2 {
			r.zoomArmed = false
		}
		return
	}
	if _, ok := r.invalid[ev.Sequence]; ok {
		delete(r.invalid, ev.Sequence)
		r.logger.Debug().
			Uint64("seq", uint64(ev.Sequence)).
			Int("invalid", len(r.invalid)).
			Msg("Removed touch from invalid list")
		return
	}
	r.logger.Debug().
		Uint64("seq", uint64(ev.Sequence)).
		Msg("Release for untracked touch ignored")
}

// releaseGesture decides the outcome of a valid finger lifting, based on how
// many valid fingers were down.
func (r *Recognizer) releaseGesture(ev Event) {
	switch n := len(r.valid); n {
	case 1:
	case 2:
		if r.zooming {
			r.zoomEnd()
		} else if r.tapValid() {
			r.tap(n, ev)
			// The finger still down must not turn into a pan.
			r.invalidateAllValid()
		}
	case 3, 4:
		if r.zooming {
			r.zoomEnd()
		} else if r.tapValid() {
			r.tap(n, ev)
		}
		r.invalidateAllValid()
	default:
		if r.zooming {
			r.zoomEnd()
		}
		r.invalidateAllValid()
	}
}

func (r *Recognizer) tap(fingers int, ev Event) {
	switch fingers {
	case 2:
		r.host.Undo()
	case 3:
		r.host.Redo()
	case 4:
		r.host.ShowFloatingMenu(ev.Absolute.X, ev.Absolute.Y)
	}

	r.metrics.RecordTap(fingers)
	r.emit(GestureEvent{
		Type:    GestureTap,
		Fingers: fingers,
		X:       ev.Absolute.X,
		Y:       ev.Absolute.Y,
		Scale:   1,
	})
}

// --- Diagnostics ---

const (
	desyncMissedRelease = "missed_release"
	desyncQuarantined   = "quarantined"
)

func (r *Recognizer) desync(kind string, ev Event) {
	r.metrics.RecordDesync(kind)
	r.emit(GestureEvent{
		Type:   GestureDesync,
		X:      ev.Absolute.X,
		Y:      ev.Absolute.Y,
		Reason: kind,
		Scale:  1,
	})
}

func (r *Recognizer) emit(ev GestureEvent) {
	if r.store == nil {
		return
	}
	r.store.EmitEvent(ev)
}
