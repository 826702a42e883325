// Package ecs provides ECS adapters for the gesture recognizer.
//
// [NewDonburiStore] bridges recognised gestures into a [Donburi] world as
// typed events on [GestureEventType]. Gestures are not hit-tested and carry
// no target entity: a pan or zoom applies to whatever the world treats as its
// viewport, so subscribers usually live in a camera or tool system rather
// than on individual entities.
//
// The recognizer publishes synchronously from the input callback, but
// Donburi queues the events until a system drains them. Call
// GestureEventType.ProcessEvents once per tick, after input has been fed, so
// every pan delta and zoom change from that tick is applied in order. A
// GestureZoomBegin is always followed by a GestureZoomEnd before the next
// begin, and GestureDesync events name the recovery in Reason.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	recognizer.SetEventStore(store)
//
//	// in the system's Update
//	ecs.GestureEventType.ProcessEvents(world)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
