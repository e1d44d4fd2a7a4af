// internal/app/game_test.go
package app

import (
	"testing"

	"lawn-defense/internal/component"
	"lawn-defense/internal/defs"
	"lawn-defense/internal/event"
	"lawn-defense/pkg/grid"

	"github.com/stretchr/testify/require"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	defs.LoadBuiltinWeapons()
	defs.LoadBuiltinEnemies()
	t.Cleanup(func() {
		defs.LoadBuiltinWeapons()
		defs.LoadBuiltinEnemies()
	})

	g, err := NewGame(defs.DefaultLevel(), 1)
	require.NoError(t, err)
	return g
}

func TestNewGameAppliesLevel(t *testing.T) {
	g := newTestGame(t)

	// Level geometry falls back to the engine defaults.
	require.Equal(t, 5, g.Grid.Rows())
	require.Equal(t, 9, g.Grid.Cols())

	// The built-in level opens the lanes and drops a couple of obstacles.
	require.Equal(t, grid.Empty, g.Grid.CellAt(0, 1).Type)
	require.Equal(t, grid.Obstacle, g.Grid.CellAt(1, 4).Type)
	require.Equal(t, grid.Special, g.Grid.CellAt(2, 2).Type)
	require.Equal(t, 0.5, g.Grid.CellAt(2, 2).Attr("slow_factor", 1.0))

	// Spawn and goal columns survive the overrides.
	require.Equal(t, grid.Spawn, g.Grid.CellAt(2, 8).Type)
	require.Equal(t, grid.Goal, g.Grid.CellAt(2, 0).Type)
}

func TestNewGameRejectsBrokenLevel(t *testing.T) {
	defs.LoadBuiltinWeapons()
	level := defs.LevelDefinition{
		ID:   "LEVEL_BAD",
		Grid: defs.GridDefinition{Rows: -3, Cols: 9},
	}
	_, err := NewGame(level, 1)
	require.ErrorIs(t, err, grid.ErrInvalidConfig)
}

func TestPlacePlant(t *testing.T) {
	g := newTestGame(t)

	var placed []event.CellOccupiedPayload
	g.EventDispatcher.Subscribe(event.PlantPlaced, event.ListenerFunc(func(e event.Event) {
		placed = append(placed, e.Data.(event.CellOccupiedPayload))
	}))

	g.SelectWeapon(defs.WeaponCannon)
	require.True(t, g.PlacePlant(0, 2))
	require.Len(t, placed, 1)
	require.Len(t, g.ECS.Plants, 1)

	cell := g.Grid.CellAt(0, 2)
	require.True(t, cell.Occupied)

	plant := g.ECS.Plants[cell.Occupant]
	require.Equal(t, defs.WeaponCannon, plant.WeaponType)
	require.Equal(t, PlantTag, plant.Tag)

	controller := g.WeaponSystem.Controller(cell.Occupant)
	require.NotNil(t, controller)
	require.Equal(t, defs.WeaponCannon, controller.CurrentWeapon())

	// The cell is taken: a second plant is rejected.
	require.False(t, g.PlacePlant(0, 2))
	// So are non-buildable cells.
	require.False(t, g.PlacePlant(0, 0))
	require.False(t, g.PlacePlant(1, 4))
	require.False(t, g.PlacePlant(-1, 2))
}

func TestRemovePlant(t *testing.T) {
	g := newTestGame(t)

	require.True(t, g.PlacePlant(0, 2))
	id := g.Grid.CellAt(0, 2).Occupant

	var removed []event.CellOccupiedPayload
	g.EventDispatcher.Subscribe(event.PlantRemoved, event.ListenerFunc(func(e event.Event) {
		removed = append(removed, e.Data.(event.CellOccupiedPayload))
	}))

	require.True(t, g.RemovePlant(0, 2))
	require.False(t, g.Grid.CellAt(0, 2).Occupied)
	require.NotContains(t, g.ECS.Plants, id)
	require.Nil(t, g.WeaponSystem.Controller(id))
	require.Len(t, removed, 1)

	// Removing an empty cell fails, and the spot can be replanted.
	require.False(t, g.RemovePlant(0, 2))
	require.True(t, g.PlacePlant(0, 2))
}

func TestHandleGridClickToggles(t *testing.T) {
	g := newTestGame(t)

	x, y := g.Grid.GridToWorld(2, 3)
	require.True(t, g.HandleGridClick(x, y))
	require.True(t, g.Grid.CellAt(2, 3).Occupied)

	// Clicking the same cell digs the plant back up.
	require.True(t, g.HandleGridClick(x, y))
	require.False(t, g.Grid.CellAt(2, 3).Occupied)

	// Clicks outside the lattice are ignored.
	require.False(t, g.HandleGridClick(-500, -500))
}

func TestEnemyReachingGoalDamagesBase(t *testing.T) {
	g := newTestGame(t)
	require.Equal(t, 10, g.BaseHealth)

	g.EventDispatcher.Dispatch(event.Event{
		Type: event.EnemyReachedGoal,
		Data: event.EnemyPayload{Enemy: 99, DefID: "ENEMY_BRUTE"},
	})
	require.Equal(t, 8, g.BaseHealth)

	for i := 0; i < 10; i++ {
		g.EventDispatcher.Dispatch(event.Event{
			Type: event.EnemyReachedGoal,
			Data: event.EnemyPayload{Enemy: 99, DefID: "ENEMY_WALKER"},
		})
	}
	require.Equal(t, 0, g.BaseHealth)
	require.Equal(t, component.DefeatPhase, g.ECS.Phase)

	// A finished game stops ticking.
	before := g.ECS.GameTime
	g.Update(1)
	require.Equal(t, before, g.ECS.GameTime)
}

func TestGameSpeedMultiplier(t *testing.T) {
	g := newTestGame(t)

	g.Update(1)
	require.Equal(t, 1.0, g.ECS.GameTime)

	g.SetSpeed(2)
	require.Equal(t, 2.0, g.Speed())
	g.Update(1)
	require.Equal(t, 3.0, g.ECS.GameTime)
}

func TestWeaponPresetsApplyOnNewGame(t *testing.T) {
	defs.LoadBuiltinWeapons()
	defs.LoadBuiltinEnemies()
	t.Cleanup(defs.LoadBuiltinWeapons)

	level := defs.DefaultLevel()
	damage := 77
	level.WeaponPresets = map[defs.WeaponType]defs.WeaponOverride{
		defs.WeaponNormal: {Damage: &damage},
	}

	_, err := NewGame(level, 1)
	require.NoError(t, err)
	require.Equal(t, 77, defs.WeaponDef(defs.WeaponNormal).Damage)
}

func TestEnergyBonusCellBoostsRegen(t *testing.T) {
	g := newTestGame(t)

	g.Grid.CellAt(0, 3).Attrs = map[string]float64{"energy_bonus": 0.5}
	g.SelectWeapon(defs.WeaponCannon)
	require.True(t, g.PlacePlant(0, 3))

	id := g.Grid.CellAt(0, 3).Occupant
	controller := g.WeaponSystem.Controller(id)
	require.NotNil(t, controller)

	// Drain a little and verify the boosted rate: 15/s instead of 10/s.
	require.True(t, controller.Fire())
	energyAfterShot := controller.Energy()
	controller.Advance(1)
	require.InDelta(t, energyAfterShot+15, controller.Energy(), 1e-9)
}
