package gesture

// Host is the view and command surface a Recognizer drives. All calls are
// synchronous and must not re-enter the Recognizer.
type Host interface {
	// Scroll moves the view content by (dx, dy) pixels.
	Scroll(dx, dy float64)

	// ZoomSequenceBegin starts a zoom sequence anchored at a point in
	// widget-local coordinates.
	ZoomSequenceBegin(anchor Vec2)
	// ZoomSequenceChange updates the running zoom sequence. When absolute is
	// true, scale is relative to the zoom level at ZoomSequenceBegin.
	// delta is the displacement of the pinch midpoint since the last change.
	ZoomSequenceChange(scale float64, absolute bool, delta Vec2)
	// ZoomSequenceEnd finishes the running zoom sequence.
	ZoomSequenceEnd()

	IsZoomFitModeActive() bool
	SetZoomFitMode(enabled bool)

	// WidgetOffset translates window-absolute coordinates into the view's
	// local coordinates (local = absolute + offset).
	WidgetOffset() Vec2

	Undo()
	Redo()
	ShowFloatingMenu(x, y float64)
}

// Settings supplies user-configurable thresholds and feature toggles.
// It is queried on every event, so changes apply immediately.
type Settings interface {
	ZoomGesturesEnabled() bool
	// TouchZoomStartThreshold is the pinch distance change, in percent of
	// the initial distance, required before zoom changes are reported.
	TouchZoomStartThreshold() float64
}

// InputHandler interprets raw touch events. Hosts select one of several
// handlers and forward events to it; Handle reports whether the event was
// consumed.
type InputHandler interface {
	Handle(ev Event) bool
	OnSuspend()
	OnResume()
}
