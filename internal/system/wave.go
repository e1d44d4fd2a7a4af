// internal/system/wave.go
package system

import (
	"log"

	"lawn-defense/internal/component"
	"lawn-defense/internal/config"
	"lawn-defense/internal/defs"
	"lawn-defense/internal/entity"
	"lawn-defense/internal/event"
	"lawn-defense/internal/utils"
	"lawn-defense/pkg/grid"
)

// WaveSystem раскручивает таблицу волн уровня: спавнит врагов на клетках
// Spawn, прокладывает им путь к базе и объявляет конец волны.
type WaveSystem struct {
	ecs        *entity.ECS
	grid       *grid.Grid
	dispatcher *event.Dispatcher
	rng        *utils.PRNGService

	waves         []defs.WaveDefinition
	nextWave      int
	activeEnemies int
	breakTimer    float64
}

func NewWaveSystem(ecs *entity.ECS, g *grid.Grid, dispatcher *event.Dispatcher, rng *utils.PRNGService, waves []defs.WaveDefinition) *WaveSystem {
	ws := &WaveSystem{
		ecs:        ecs,
		grid:       g,
		dispatcher: dispatcher,
		rng:        rng,
		waves:      waves,
	}
	dispatcher.Subscribe(event.EnemyDestroyed, ws)
	dispatcher.Subscribe(event.EnemyReachedGoal, ws)
	return ws
}

func (s *WaveSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyDestroyed, event.EnemyReachedGoal:
		if s.activeEnemies > 0 {
			s.activeEnemies--
		}
	}
}

func (s *WaveSystem) Update(deltaTime float64) {
	if s.ecs.Phase != component.PlayingPhase {
		return
	}

	wave := s.ecs.Wave
	if wave == nil {
		if s.nextWave >= len(s.waves) {
			// Таблица волн исчерпана: зачистка поля — победа
			if s.activeEnemies == 0 {
				s.ecs.Phase = component.VictoryPhase
			}
			return
		}
		s.breakTimer -= deltaTime
		if s.breakTimer > 0 {
			return
		}
		s.startWave(s.waves[s.nextWave])
		return
	}

	if wave.Delay > 0 {
		wave.Delay -= deltaTime
		return
	}

	if wave.EnemiesToSpawn > 0 {
		wave.SpawnTimer += deltaTime
		if wave.SpawnTimer >= wave.SpawnInterval {
			s.spawnEnemy(wave)
			wave.EnemiesToSpawn--
			wave.SpawnTimer = 0
		}
	} else if s.activeEnemies == 0 {
		s.dispatcher.Dispatch(event.Event{Type: event.WaveEnded, Data: wave.Number})
		s.ecs.Wave = nil
		s.breakTimer = config.WaveBreakDuration
	}
}

func (s *WaveSystem) startWave(def defs.WaveDefinition) {
	s.nextWave++
	s.ecs.Wave = &component.Wave{
		Number:         s.nextWave,
		EnemyID:        def.EnemyID,
		EnemiesToSpawn: def.Count,
		SpawnInterval:  def.SpawnInterval,
		Delay:          def.Delay,
	}
}

// CurrentWaveNumber возвращает номер последней начатой волны
func (s *WaveSystem) CurrentWaveNumber() int { return s.nextWave }

// spawnEnemy создаёт врага на случайной клетке Spawn и ведёт его к
// ближайшей по строке клетке Goal.
func (s *WaveSystem) spawnEnemy(wave *component.Wave) {
	enemyDef, ok := defs.EnemyLibrary[wave.EnemyID]
	if !ok {
		log.Printf("Wave %d references unknown enemy %q, skipping spawn", wave.Number, wave.EnemyID)
		return
	}

	spawns := s.grid.CellsByType(grid.Spawn)
	goals := s.grid.CellsByType(grid.Goal)
	if len(spawns) == 0 || len(goals) == 0 {
		log.Printf("Level has no spawn or goal cells, skipping spawn")
		return
	}
	spawn := spawns[s.rng.Pick(len(spawns))]

	goal := goals[0]
	for _, cell := range goals {
		if cell.Row == spawn.Row {
			goal = cell
			break
		}
	}

	path := s.grid.FindPath(spawn.Coord, goal.Coord)
	if path == nil {
		log.Printf("No walkable path from %v to %v, skipping spawn", spawn.Coord, goal.Coord)
		return
	}

	id := s.ecs.NewEntity()
	x, y := s.grid.GridToWorld(spawn.Row, spawn.Col)
	s.ecs.Positions[id] = &component.Position{X: x, Y: y}
	s.ecs.Velocities[id] = &component.Velocity{Speed: enemyDef.Speed}
	s.ecs.Paths[id] = &component.Path{Cells: path}
	s.ecs.Healths[id] = &component.Health{Value: enemyDef.Health, Max: enemyDef.Health}
	s.ecs.Renderables[id] = &component.Renderable{
		Color:  enemyDef.Visuals.Color,
		Radius: float32(enemyDef.Visuals.Radius),
	}
	s.ecs.Enemies[id] = &component.Enemy{
		DefID:  enemyDef.ID,
		Damage: enemyDef.Damage,
		Tag:    "enemy",
	}
	s.activeEnemies++
}
