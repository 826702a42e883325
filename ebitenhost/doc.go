// Package ebitenhost connects the gesture recognizer to Ebitengine.
//
// [TouchSource] polls touches every tick and produces gesture events;
// [View] implements gesture.Host as a scrollable, zoomable document view.
//
//	src := ebitenhost.NewTouchSource(gesture.Vec2{})
//	view := ebitenhost.NewView(viewport, content)
//	rec := gesture.NewRecognizer(view, gesture.Defaults())
//
//	// in Game.Update:
//	src.Update(rec)
//	view.Update(1.0 / float32(ebiten.TPS()))
package ebitenhost
