package ecs

import (
	"github.com/phanxgames/gesture"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// GestureEventType carries every gesture the recognizer reports, in the
// order it reported them.
var GestureEventType = events.NewEventType[gesture.GestureEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore returns an EventStore that queues gestures on world. They
// reach subscribers only when GestureEventType is processed.
func NewDonburiStore(world donburi.World) gesture.EventStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event gesture.GestureEvent) {
	GestureEventType.Publish(s.world, event)
}
