package ebitenhost

import (
	"math"

	"github.com/phanxgames/gesture"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Default zoom limits and fit animation duration for a new View.
const (
	DefaultMinZoom     = 0.1
	DefaultMaxZoom     = 10.0
	DefaultFitDuration = 0.25
)

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y, Width, Height float64
}

// fitAnim holds the tweens of an animated zoom-to-fit.
type fitAnim struct {
	zoom, x, y *gween.Tween
	done       [3]bool
}

// zoomSession is the state of one pinch zoom sequence.
type zoomSession struct {
	baseZoom float64
	anchor   gesture.Vec2 // screen position the pinch is anchored at
	world    gesture.Vec2 // world point under the anchor when the pinch began
}

// View is a scrollable, zoomable window onto a 2D document. It implements
// gesture.Host: drags scroll it, pinches zoom it around the pinch midpoint and
// taps are forwarded to the callback fields.
type View struct {
	// X and Y are the world-space position the view centers on.
	X, Y float64
	// Zoom is the scale factor (1.0 = no zoom, >1 = zoom in, <1 = zoom out).
	Zoom float64
	// Viewport is the screen-space rectangle this view renders into.
	Viewport Rect
	// Content is the world-space rectangle zoom-to-fit frames.
	Content Rect

	MinZoom, MaxZoom float64
	// FitDuration is the length of the zoom-to-fit animation in seconds.
	// Zero snaps immediately.
	FitDuration float32
	// Offset is added by the recognizer to the pinch midpoint to form the
	// zoom anchor. Touch positions are already in window coordinates, so
	// it is normally zero.
	Offset gesture.Vec2

	OnUndo func()
	OnRedo func()
	OnMenu func(x, y float64)

	fitMode bool
	fit     *fitAnim
	zoom    *zoomSession
}

// NewView creates a View at zoom 1 centered on the middle of content.
func NewView(viewport, content Rect) *View {
	return &View{
		X:           content.X + content.Width/2,
		Y:           content.Y + content.Height/2,
		Zoom:        1.0,
		Viewport:    viewport,
		Content:     content,
		MinZoom:     DefaultMinZoom,
		MaxZoom:     DefaultMaxZoom,
		FitDuration: DefaultFitDuration,
	}
}

// Update advances the zoom-to-fit animation by dt seconds.
func (v *View) Update(dt float32) {
	a := v.fit
	if a == nil {
		return
	}
	for i, tw := range []*gween.Tween{a.zoom, a.x, a.y} {
		if a.done[i] {
			continue
		}
		val, done := tw.Update(dt)
		switch i {
		case 0:
			v.Zoom = float64(val)
		case 1:
			v.X = float64(val)
		case 2:
			v.Y = float64(val)
		}
		a.done[i] = done
	}
	if a.done[0] && a.done[1] && a.done[2] {
		v.fit = nil
	}
}

// Animating reports whether a zoom-to-fit animation is running.
func (v *View) Animating() bool {
	return v.fit != nil
}

// FitZoom returns the zoom at which Content fills the viewport on its
// tighter axis, clamped to the zoom limits.
func (v *View) FitZoom() float64 {
	if v.Content.Width <= 0 || v.Content.Height <= 0 {
		return v.clampZoom(1)
	}
	z := math.Min(v.Viewport.Width/v.Content.Width, v.Viewport.Height/v.Content.Height)
	return v.clampZoom(z)
}

// WorldToScreen converts world coordinates to screen coordinates.
func (v *View) WorldToScreen(wx, wy float64) (sx, sy float64) {
	cx, cy := v.center()
	return cx + (wx-v.X)*v.Zoom, cy + (wy-v.Y)*v.Zoom
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (v *View) ScreenToWorld(sx, sy float64) (wx, wy float64) {
	cx, cy := v.center()
	return v.X + (sx-cx)/v.Zoom, v.Y + (sy-cy)/v.Zoom
}

// VisibleBounds returns the world-space area currently on screen.
func (v *View) VisibleBounds() Rect {
	x0, y0 := v.ScreenToWorld(v.Viewport.X, v.Viewport.Y)
	x1, y1 := v.ScreenToWorld(v.Viewport.X+v.Viewport.Width, v.Viewport.Y+v.Viewport.Height)
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

func (v *View) center() (float64, float64) {
	return v.Viewport.X + v.Viewport.Width/2, v.Viewport.Y + v.Viewport.Height/2
}

func (v *View) clampZoom(z float64) float64 {
	return math.Max(v.MinZoom, math.Min(z, v.MaxZoom))
}

// --- gesture.Host ---

// Scroll moves the view by (dx, dy) screen pixels.
func (v *View) Scroll(dx, dy float64) {
	v.fit = nil
	v.X += dx / v.Zoom
	v.Y += dy / v.Zoom
}

// ZoomSequenceBegin starts a pinch anchored at a screen position.
func (v *View) ZoomSequenceBegin(anchor gesture.Vec2) {
	v.fit = nil
	wx, wy := v.ScreenToWorld(anchor.X, anchor.Y)
	v.zoom = &zoomSession{
		baseZoom: v.Zoom,
		anchor:   anchor,
		world:    gesture.Vec2{X: wx, Y: wy},
	}
}

// ZoomSequenceChange applies a pinch step. An absolute scale is relative to
// the zoom when the sequence began; otherwise it multiplies the current
// zoom. The anchor follows the pinch midpoint by delta and the world point
// under it stays put.
func (v *View) ZoomSequenceChange(scale float64, absolute bool, delta gesture.Vec2) {
	z := v.zoom
	if z == nil {
		return
	}
	if absolute {
		v.Zoom = v.clampZoom(z.baseZoom * scale)
	} else {
		v.Zoom = v.clampZoom(v.Zoom * scale)
	}
	z.anchor = z.anchor.Add(delta)

	cx, cy := v.center()
	v.X = z.world.X - (z.anchor.X-cx)/v.Zoom
	v.Y = z.world.Y - (z.anchor.Y-cy)/v.Zoom
}

// ZoomSequenceEnd finishes the current pinch.
func (v *View) ZoomSequenceEnd() {
	v.zoom = nil
}

// Zooming reports whether a pinch zoom sequence is open.
func (v *View) Zooming() bool {
	return v.zoom != nil
}

// IsZoomFitModeActive reports whether the view is in zoom-to-fit mode.
func (v *View) IsZoomFitModeActive() bool {
	return v.fitMode
}

// SetZoomFitMode switches zoom-to-fit mode. Enabling it animates the view to
// frame Content over FitDuration with an ease-out curve.
func (v *View) SetZoomFitMode(enabled bool) {
	v.fitMode = enabled
	if !enabled {
		v.fit = nil
		return
	}

	zoom := v.FitZoom()
	x := v.Content.X + v.Content.Width/2
	y := v.Content.Y + v.Content.Height/2
	if v.FitDuration <= 0 {
		v.Zoom, v.X, v.Y = zoom, x, y
		v.fit = nil
		return
	}
	v.fit = &fitAnim{
		zoom: gween.New(float32(v.Zoom), float32(zoom), v.FitDuration, ease.OutCubic),
		x:    gween.New(float32(v.X), float32(x), v.FitDuration, ease.OutCubic),
		y:    gween.New(float32(v.Y), float32(y), v.FitDuration, ease.OutCubic),
	}
}

// WidgetOffset returns Offset.
func (v *View) WidgetOffset() gesture.Vec2 {
	return v.Offset
}

// Undo invokes OnUndo, if set.
func (v *View) Undo() {
	if v.OnUndo != nil {
		v.OnUndo()
	}
}

// Redo invokes OnRedo, if set.
func (v *View) Redo() {
	if v.OnRedo != nil {
		v.OnRedo()
	}
}

// ShowFloatingMenu invokes OnMenu, if set.
func (v *View) ShowFloatingMenu(x, y float64) {
	if v.OnMenu != nil {
		v.OnMenu(x, y)
	}
}

var _ gesture.Host = (*View)(nil)
