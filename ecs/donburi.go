// Package ecs provides ECS adapters for labyrinth.
package ecs

import (
	"github.com/phanxgames/labyrinth"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// MoveEventType is the Donburi event type for actor steps.
// Subscribe to this in your ECS systems to react to movement.
var MoveEventType = events.NewEventType[labyrinth.MoveEvent]()

// Position is the Donburi component mirroring a mover's grid cell. It is
// updated every time the sink forwards a step.
type Position struct {
	Tile int
	Cell labyrinth.Vec2i
	Last labyrinth.Vec2i
}

// PositionComponent is the component type for [Position].
var PositionComponent = donburi.NewComponentType[Position]()

type donburiSink struct {
	world  donburi.World
	entity donburi.Entity
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Steps are
// published to MoveEventType and can be consumed with events.Subscribe and
// ProcessEvents. When entity is valid, its PositionComponent is kept in sync.
func NewDonburiSink(world donburi.World, entity donburi.Entity) labyrinth.EventSink {
	return &donburiSink{world: world, entity: entity}
}

// NewActorEntity creates an entity with a PositionComponent for m and binds
// m to the world through a sink. It returns the new entity.
func NewActorEntity(world donburi.World, m *labyrinth.Mover) donburi.Entity {
	entity := world.Create(PositionComponent)
	entry := world.Entry(entity)
	PositionComponent.SetValue(entry, Position{
		Tile: m.TileID(),
		Cell: m.LogicalPosition(),
		Last: m.LastPosition(),
	})
	m.SetEventSink(NewDonburiSink(world, entity))
	return entity
}

func (s *donburiSink) EmitMove(event labyrinth.MoveEvent) {
	if s.world.Valid(s.entity) {
		entry := s.world.Entry(s.entity)
		if entry.HasComponent(PositionComponent) {
			PositionComponent.SetValue(entry, Position{
				Tile: event.Tile,
				Cell: event.To,
				Last: event.From,
			})
		}
	}
	MoveEventType.Publish(s.world, event)
}
