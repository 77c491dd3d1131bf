// Package ecs provides ECS adapters for labyrinth's movement events.
//
// The primary adapter is [NewDonburiSink], which forwards every accepted
// step of a [labyrinth.Mover] into a [Donburi] world as a typed event.
// [NewActorEntity] additionally mirrors the mover's cell in a component.
//
// Usage:
//
//	entity := ecs.NewActorEntity(world, player)
//	ecs.MoveEventType.Subscribe(world, onMove)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
