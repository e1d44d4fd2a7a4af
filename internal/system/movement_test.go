// internal/system/movement_test.go
package system

import (
	"testing"

	"lawn-defense/internal/component"
	"lawn-defense/internal/entity"
	"lawn-defense/internal/event"
	"lawn-defense/internal/types"
	"lawn-defense/pkg/grid"

	"github.com/stretchr/testify/require"
)

func newMovementWorld(t *testing.T) (*entity.ECS, *grid.Grid, *event.Dispatcher, *MovementSystem) {
	t.Helper()
	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()
	g := grid.New(nil)
	require.NoError(t, g.Configure(grid.Config{
		Rows: 1, Cols: 5,
		CellWidth: 10, CellHeight: 10,
	}))
	for col := 0; col < 5; col++ {
		require.True(t, g.SetCellType(0, col, grid.Empty))
	}
	return ecs, g, dispatcher, NewMovementSystem(ecs, g, dispatcher)
}

func spawnWalker(ecs *entity.ECS, g *grid.Grid, speed float64, path []grid.Coord) types.EntityID {
	id := ecs.NewEntity()
	x, y := g.GridToWorld(path[0].Row, path[0].Col)
	ecs.Positions[id] = &component.Position{X: x, Y: y}
	ecs.Velocities[id] = &component.Velocity{Speed: speed}
	ecs.Paths[id] = &component.Path{Cells: path}
	ecs.Enemies[id] = &component.Enemy{DefID: "ENEMY_WALKER", Damage: 1, Tag: "enemy"}
	return id
}

func TestMovementFollowsPath(t *testing.T) {
	ecs, g, _, ms := newMovementWorld(t)
	path := g.FindPath(grid.Coord{Row: 0, Col: 4}, grid.Coord{Row: 0, Col: 0})
	require.NotNil(t, path)
	id := spawnWalker(ecs, g, 10, path)

	// The first tick only clears the spawn cell the walker already
	// stands on.
	startX := ecs.Positions[id].X
	ms.Update(0.5)
	require.InDelta(t, startX, ecs.Positions[id].X, 1e-9)
	require.Equal(t, 1, ecs.Paths[id].CurrentIndex)

	// Cells are 10 units wide at 10 units/s: one second per cell, moving
	// in the negative X direction toward the goal column.
	ms.Update(0.5)
	require.InDelta(t, startX-5, ecs.Positions[id].X, 1e-9)

	ms.Update(0.5)
	wantX, wantY := g.GridToWorld(0, 3)
	require.InDelta(t, wantX, ecs.Positions[id].X, 1e-9)
	require.InDelta(t, wantY, ecs.Positions[id].Y, 1e-9)
	require.Equal(t, 2, ecs.Paths[id].CurrentIndex)
}

func TestMovementSlowCell(t *testing.T) {
	ecs, g, _, ms := newMovementWorld(t)
	g.CellAt(0, 4).Attrs = map[string]float64{"slow_factor": 0.5}

	path := g.FindPath(grid.Coord{Row: 0, Col: 4}, grid.Coord{Row: 0, Col: 0})
	id := spawnWalker(ecs, g, 10, path)

	startX := ecs.Positions[id].X
	ms.Update(0.5) // clears the spawn cell
	ms.Update(0.5)
	// Half speed while standing on the slowing cell.
	require.InDelta(t, startX-2.5, ecs.Positions[id].X, 1e-9)
}

func TestMovementReachGoal(t *testing.T) {
	ecs, g, dispatcher, ms := newMovementWorld(t)

	var reached []event.EnemyPayload
	dispatcher.Subscribe(event.EnemyReachedGoal, event.ListenerFunc(func(e event.Event) {
		reached = append(reached, e.Data.(event.EnemyPayload))
	}))

	path := g.FindPath(grid.Coord{Row: 0, Col: 1}, grid.Coord{Row: 0, Col: 0})
	id := spawnWalker(ecs, g, 100, path)

	// Fast enough to clear the whole path in a couple of ticks.
	ms.Update(0.5)
	ms.Update(0.5)

	require.NotContains(t, ecs.Positions, id)
	require.NotContains(t, ecs.Enemies, id)
	require.Len(t, reached, 1)
	require.Equal(t, id, reached[0].Enemy)
	require.Equal(t, "ENEMY_WALKER", reached[0].DefID)
}

func TestMovementIgnoresPathlessEntities(t *testing.T) {
	ecs, _, _, ms := newMovementWorld(t)

	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: 3, Y: 7}
	ecs.Velocities[id] = &component.Velocity{Speed: 50}

	ms.Update(1)
	require.Equal(t, 3.0, ecs.Positions[id].X)
	require.Equal(t, 7.0, ecs.Positions[id].Y)
}
