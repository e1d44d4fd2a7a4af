// internal/system/wave_test.go
package system

import (
	"testing"

	"lawn-defense/internal/component"
	"lawn-defense/internal/defs"
	"lawn-defense/internal/entity"
	"lawn-defense/internal/event"
	"lawn-defense/internal/utils"
	"lawn-defense/pkg/grid"

	"github.com/stretchr/testify/require"
)

func newWaveWorld(t *testing.T, waves []defs.WaveDefinition) (*entity.ECS, *grid.Grid, *event.Dispatcher, *WaveSystem) {
	t.Helper()
	defs.LoadBuiltinEnemies()
	t.Cleanup(defs.LoadBuiltinEnemies)

	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()
	g := grid.New(nil)
	require.NoError(t, g.Configure(grid.Config{
		Rows: 2, Cols: 4,
		CellWidth: 10, CellHeight: 10,
	}))
	// Open the middle columns so the spawn rows can reach the goal.
	for row := 0; row < 2; row++ {
		for col := 1; col < 3; col++ {
			require.True(t, g.SetCellType(row, col, grid.Empty))
		}
	}
	ws := NewWaveSystem(ecs, g, dispatcher, utils.NewPRNGService(1), waves)
	return ecs, g, dispatcher, ws
}

func TestWaveSpawnsConfiguredEnemies(t *testing.T) {
	ecs, g, _, ws := newWaveWorld(t, []defs.WaveDefinition{
		{EnemyID: "ENEMY_WALKER", Count: 2, SpawnInterval: 1, Delay: 0.5},
	})

	// First tick starts the wave, nothing spawns during the delay.
	ws.Update(0.1)
	require.Equal(t, 1, ws.CurrentWaveNumber())
	require.NotNil(t, ecs.Wave)
	require.Empty(t, ecs.Enemies)

	ws.Update(0.3)
	ws.Update(0.3)
	require.Empty(t, ecs.Enemies)

	ws.Update(1.0)
	require.Len(t, ecs.Enemies, 1)
	ws.Update(1.0)
	require.Len(t, ecs.Enemies, 2)

	walker := defs.EnemyLibrary["ENEMY_WALKER"]
	for id, enemy := range ecs.Enemies {
		require.Equal(t, "ENEMY_WALKER", enemy.DefID)
		require.Equal(t, "enemy", enemy.Tag)
		require.Equal(t, walker.Health, ecs.Healths[id].Value)
		require.Equal(t, walker.Speed, ecs.Velocities[id].Speed)

		// Spawned on a spawn cell with a route ending on the goal column.
		path := ecs.Paths[id].Cells
		require.NotEmpty(t, path)
		require.Equal(t, grid.Spawn, g.CellAt(path[0].Row, path[0].Col).Type)
		require.Equal(t, grid.Goal, g.CellAt(path[len(path)-1].Row, path[len(path)-1].Col).Type)
	}
}

func TestWaveEndsWhenFieldIsClear(t *testing.T) {
	ecs, _, dispatcher, ws := newWaveWorld(t, []defs.WaveDefinition{
		{EnemyID: "ENEMY_WALKER", Count: 1, SpawnInterval: 1},
	})

	var ended []int
	dispatcher.Subscribe(event.WaveEnded, event.ListenerFunc(func(e event.Event) {
		ended = append(ended, e.Data.(int))
	}))

	ws.Update(0.1) // start wave
	ws.Update(1.0) // spawn the only enemy
	require.Len(t, ecs.Enemies, 1)

	// The wave does not end while the enemy is alive.
	ws.Update(1.0)
	require.Empty(t, ended)

	for id := range ecs.Enemies {
		ecs.RemoveEntity(id)
		dispatcher.Dispatch(event.Event{Type: event.EnemyDestroyed, Data: event.EnemyPayload{Enemy: id}})
	}

	ws.Update(0.1)
	require.Equal(t, []int{1}, ended)
	require.Nil(t, ecs.Wave)
}

func TestVictoryAfterLastWave(t *testing.T) {
	ecs, _, dispatcher, ws := newWaveWorld(t, []defs.WaveDefinition{
		{EnemyID: "ENEMY_WALKER", Count: 1, SpawnInterval: 1},
	})

	ws.Update(0.1)
	ws.Update(1.0)
	for id := range ecs.Enemies {
		ecs.RemoveEntity(id)
		dispatcher.Dispatch(event.Event{Type: event.EnemyReachedGoal, Data: event.EnemyPayload{Enemy: id}})
	}
	ws.Update(0.1) // wave ends
	require.Equal(t, component.PlayingPhase, ecs.Phase)

	// Wave table exhausted and the field is clear.
	ws.Update(0.1)
	require.Equal(t, component.VictoryPhase, ecs.Phase)
}

func TestWaveSkipsUnknownEnemy(t *testing.T) {
	ecs, _, _, ws := newWaveWorld(t, []defs.WaveDefinition{
		{EnemyID: "ENEMY_UNKNOWN", Count: 1, SpawnInterval: 1},
	})

	ws.Update(0.1)
	ws.Update(1.0)
	require.Empty(t, ecs.Enemies)
}
