// internal/entity/ecs.go
package entity

import (
	"lawn-defense/internal/component"
	"lawn-defense/internal/types"
)

// ECS — плоское хранилище компонентов по идентификатору сущности.
type ECS struct {
	GameTime    float64
	NextID      types.EntityID
	Positions   map[types.EntityID]*component.Position
	Velocities  map[types.EntityID]*component.Velocity
	Paths       map[types.EntityID]*component.Path
	Healths     map[types.EntityID]*component.Health
	Renderables map[types.EntityID]*component.Renderable
	Enemies     map[types.EntityID]*component.Enemy
	Plants      map[types.EntityID]*component.Plant
	Projectiles map[types.EntityID]*component.Projectile
	Wave        *component.Wave
	Phase       component.GamePhase
}

func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		Positions:   make(map[types.EntityID]*component.Position),
		Velocities:  make(map[types.EntityID]*component.Velocity),
		Paths:       make(map[types.EntityID]*component.Path),
		Healths:     make(map[types.EntityID]*component.Health),
		Renderables: make(map[types.EntityID]*component.Renderable),
		Enemies:     make(map[types.EntityID]*component.Enemy),
		Plants:      make(map[types.EntityID]*component.Plant),
		Projectiles: make(map[types.EntityID]*component.Projectile),
		Phase:       component.PlayingPhase,
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// RemoveEntity выкидывает сущность из всех хранилищ компонентов
func (ecs *ECS) RemoveEntity(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.Paths, id)
	delete(ecs.Healths, id)
	delete(ecs.Renderables, id)
	delete(ecs.Enemies, id)
	delete(ecs.Plants, id)
	delete(ecs.Projectiles, id)
}
