// Package gesture is a multi-touch gesture recognizer for touch-driven views.
//
// A [Recognizer] consumes raw press, move and release events, each tagged with
// a per-finger [Sequence], and classifies the fingers on the screen into
// exactly one gesture at a time:
//
//   - one finger drags: the view scrolls opposite to the finger
//   - two fingers pinch: a zoom sequence anchored at the pinch midpoint
//   - two, three or four fingers tap: undo, redo, or a floating menu
//
// Decisions are made online, with no lookahead and no timers. Everything the
// recognizer decides is issued as a synchronous call on a [Host].
//
// # Quick start
//
//	cfg := gesture.Defaults()
//	rec := gesture.NewRecognizer(view, cfg)
//	cfg.Apply(rec)
//
//	// from the event loop:
//	rec.Handle(gesture.Event{
//		Kind:     gesture.EventPress,
//		Sequence: seq,
//		Absolute: gesture.Vec2{X: x, Y: y},
//		Relative: gesture.Vec2{X: x - originX, Y: y - originY},
//	})
//
// Wrap the recognizer in a [Gate] to block input temporarily; unblocking
// discards all per-finger state.
//
// # Recovery
//
// Touch platforms occasionally drop a release. The recognizer never gets
// stuck: a press for a finger it considers excluded clears the exclusion set,
// fingers that join after a tap are quarantined until they lift, and releases
// for unknown fingers are ignored. Recoveries are logged through a
// [zerolog.Logger] (see [Recognizer.SetLogger]), counted in [Metrics] and
// mirrored as [GestureDesync] events on an [EventStore].
//
// # Hosts
//
// The ebitenhost sub-package adapts Ebitengine touch input and provides a
// scrollable, zoomable view. The ecs module publishes [GestureEvent]s into a
// Donburi world.
//
// [zerolog.Logger]: https://pkg.go.dev/github.com/rs/zerolog#Logger
package gesture
