// internal/system/movement.go
package system

import (
	"math"

	"lawn-defense/internal/entity"
	"lawn-defense/internal/event"
	"lawn-defense/internal/types"
	"lawn-defense/pkg/grid"
)

// MovementSystem ведёт сущности с путём по клеткам решётки.
type MovementSystem struct {
	ecs        *entity.ECS
	grid       *grid.Grid
	dispatcher *event.Dispatcher
}

func NewMovementSystem(ecs *entity.ECS, g *grid.Grid, dispatcher *event.Dispatcher) *MovementSystem {
	return &MovementSystem{ecs: ecs, grid: g, dispatcher: dispatcher}
}

func (s *MovementSystem) Update(deltaTime float64) {
	for id, pos := range s.ecs.Positions {
		vel, hasVel := s.ecs.Velocities[id]
		if !hasVel {
			continue
		}
		path, hasPath := s.ecs.Paths[id]
		if !hasPath {
			continue
		}
		if path.CurrentIndex >= len(path.Cells) {
			s.finishPath(id)
			continue
		}

		target := path.Cells[path.CurrentIndex]
		tx, ty := s.grid.GridToWorld(target.Row, target.Col)

		dx := tx - pos.X
		dy := ty - pos.Y
		dist := math.Hypot(dx, dy)

		currentSpeed := vel.Speed
		// Замедляющие клетки уровня действуют, пока существо стоит на них
		if coord, ok := s.grid.WorldToGrid(pos.X, pos.Y); ok {
			if cell := s.grid.CellAt(coord.Row, coord.Col); cell != nil {
				currentSpeed *= cell.Attr("slow_factor", 1.0)
			}
		}

		moveDistance := currentSpeed * deltaTime
		if dist <= moveDistance {
			pos.X = tx
			pos.Y = ty
			path.CurrentIndex++
			if path.CurrentIndex >= len(path.Cells) {
				s.finishPath(id)
			}
		} else if dist > 0 {
			pos.X += dx / dist * moveDistance
			pos.Y += dy / dist * moveDistance
		}
	}
}

// finishPath помечает врага дошедшим до базы и убирает его с поля
func (s *MovementSystem) finishPath(id types.EntityID) {
	enemy := s.ecs.Enemies[id]
	if enemy == nil || enemy.ReachedGoal {
		s.ecs.RemoveEntity(id)
		return
	}
	enemy.ReachedGoal = true
	defID := enemy.DefID
	s.ecs.RemoveEntity(id)
	if s.dispatcher != nil {
		s.dispatcher.Dispatch(event.Event{
			Type: event.EnemyReachedGoal,
			Data: event.EnemyPayload{Enemy: id, DefID: defID},
		})
	}
}
