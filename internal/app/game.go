// internal/app/game.go
package app

import (
	"fmt"
	"log"
	"math"

	"lawn-defense/internal/component"
	"lawn-defense/internal/config"
	"lawn-defense/internal/defs"
	"lawn-defense/internal/entity"
	"lawn-defense/internal/event"
	"lawn-defense/internal/system"
	"lawn-defense/internal/types"
	"lawn-defense/internal/utils"
	"lawn-defense/pkg/grid"
)

// PlantTag — тег владельца всех растений: их снаряды не бьют друг по
// другу, а белый список целей ограничен врагами.
const PlantTag = "plant"

// Game — композиционный корень партии: владеет решёткой, ECS и всеми
// системами. Глобальных синглтонов нет, всё состояние — в экземпляре.
type Game struct {
	Grid             *grid.Grid
	ECS              *entity.ECS
	EventDispatcher  *event.Dispatcher
	MovementSystem   *system.MovementSystem
	WaveSystem       *system.WaveSystem
	WeaponSystem     *system.WeaponSystem
	ProjectileSystem *system.ProjectileSystem
	RenderSystem     *system.RenderSystem
	Rng              *utils.PRNGService

	Level          defs.LevelDefinition
	BaseHealth     int
	SelectedWeapon defs.WeaponType

	gameSpeed float64
}

// NewGame собирает партию по определению уровня.
func NewGame(level defs.LevelDefinition, seed int64) (*Game, error) {
	dispatcher := event.NewDispatcher()

	gridModel := grid.New(dispatcher)
	if err := gridModel.Configure(gridConfigFromLevel(level.Grid)); err != nil {
		return nil, fmt.Errorf("level %q: %w", level.ID, err)
	}
	applyCellOverrides(gridModel, level.Cells)
	for weaponType, override := range level.WeaponPresets {
		defs.MergeWeaponDef(weaponType, override)
	}

	ecs := entity.NewECS()
	rng := utils.NewPRNGService(seed)

	g := &Game{
		Grid:            gridModel,
		ECS:             ecs,
		EventDispatcher: dispatcher,
		Rng:             rng,
		Level:           level,
		BaseHealth:      config.BaseHealth,
		SelectedWeapon:  defs.WeaponNormal,
		gameSpeed:       1.0,
	}
	g.MovementSystem = system.NewMovementSystem(ecs, gridModel, dispatcher)
	g.WaveSystem = system.NewWaveSystem(ecs, gridModel, dispatcher, rng, level.Waves)
	g.WeaponSystem = system.NewWeaponSystem()
	g.ProjectileSystem = system.NewProjectileSystem(ecs, dispatcher, g.WeaponSystem)
	g.RenderSystem = system.NewRenderSystem(ecs, gridModel)

	dispatcher.Subscribe(event.EnemyReachedGoal, event.ListenerFunc(g.onEnemyReachedGoal))
	return g, nil
}

// gridConfigFromLevel дополняет геометрию уровня значениями по умолчанию
func gridConfigFromLevel(def defs.GridDefinition) grid.Config {
	cfg := grid.Config{
		Rows:       def.Rows,
		Cols:       def.Cols,
		CellWidth:  def.CellWidth,
		CellHeight: def.CellHeight,
		StartX:     def.StartX,
		StartY:     def.StartY,
	}
	if cfg.Rows == 0 {
		cfg.Rows = config.GridRows
	}
	if cfg.Cols == 0 {
		cfg.Cols = config.GridCols
	}
	if cfg.CellWidth == 0 {
		cfg.CellWidth = config.CellWidth
	}
	if cfg.CellHeight == 0 {
		cfg.CellHeight = config.CellHeight
	}
	if cfg.StartX == 0 {
		cfg.StartX = config.GridStartX
	}
	if cfg.StartY == 0 {
		cfg.StartY = config.GridStartY
	}
	return cfg
}

func applyCellOverrides(g *grid.Grid, overrides []defs.CellOverride) {
	for _, o := range overrides {
		cellType, ok := grid.ParseCellType(o.Type)
		if !ok {
			log.Printf("Unknown cell type %q at (%d,%d), ignored", o.Type, o.Row, o.Col)
			continue
		}
		if !g.SetCellType(o.Row, o.Col, cellType) {
			log.Printf("Cell override (%d,%d) is out of bounds, ignored", o.Row, o.Col)
			continue
		}
		if len(o.Attrs) > 0 {
			cell := g.CellAt(o.Row, o.Col)
			cell.Attrs = make(map[string]float64, len(o.Attrs))
			for k, v := range o.Attrs {
				cell.Attrs[k] = v
			}
		}
	}
}

func (g *Game) onEnemyReachedGoal(e event.Event) {
	payload, ok := e.Data.(event.EnemyPayload)
	if !ok {
		return
	}
	damage := 1
	if def, ok := defs.EnemyLibrary[payload.DefID]; ok {
		damage = def.Damage
	}
	g.BaseHealth -= damage
	if g.BaseHealth <= 0 {
		g.BaseHealth = 0
		g.ECS.Phase = component.DefeatPhase
	}
}

// SetSpeed задаёт множитель скорости симуляции
func (g *Game) SetSpeed(multiplier float64) { g.gameSpeed = multiplier }

// Speed возвращает текущий множитель скорости
func (g *Game) Speed() float64 { return g.gameSpeed }

// Update — один тик симуляции. Всё однопоточно, тик выполняется целиком.
func (g *Game) Update(deltaTime float64) {
	if g.ECS.Phase != component.PlayingPhase {
		return
	}
	dt := deltaTime * g.gameSpeed
	g.ECS.GameTime += dt

	g.WaveSystem.Update(dt)
	g.MovementSystem.Update(dt)
	g.WeaponSystem.Update(dt)
	g.ProjectileSystem.Update(dt)
}

// SelectWeapon выбирает тип оружия для следующих посадок
func (g *Game) SelectWeapon(t defs.WeaponType) { g.SelectedWeapon = t }

// PlacePlant сажает растение выбранного типа в клетку. Отказ (false) —
// клетка занята, нестроибельна или вне решётки.
func (g *Game) PlacePlant(row, col int) bool {
	if !g.Grid.CanPlaceAt(row, col) {
		return false
	}

	id := g.ECS.NewEntity()
	if !g.Grid.SetOccupied(row, col, id) {
		return false
	}

	x, y := g.Grid.GridToWorld(row, col)
	g.ECS.Positions[id] = &component.Position{X: x, Y: y}
	g.ECS.Plants[id] = &component.Plant{
		Row:        row,
		Col:        col,
		WeaponType: g.SelectedWeapon,
		Tag:        PlantTag,
	}

	controller := system.NewWeaponController(g.ECS, g.EventDispatcher, id, PlantTag, g.SelectedWeapon)
	for _, t := range defs.AllWeaponTypes {
		controller.RegisterTemplate(t)
	}
	controller.SetAutoFire(true)
	controller.SetTargetTags([]string{"enemy"})
	controller.SetAim(g.aimForPlant(id))
	if cell := g.Grid.CellAt(row, col); cell != nil {
		if bonus := cell.Attr("energy_bonus", 0); bonus > 0 {
			controller.SetRegenRate(config.EnergyRegenRate * (1 + bonus))
		}
	}
	g.WeaponSystem.Attach(id, controller)

	g.EventDispatcher.Dispatch(event.Event{Type: event.PlantPlaced, Data: event.CellOccupiedPayload{Row: row, Col: col, Occupant: id}})
	return true
}

// RemovePlant убирает растение из клетки (лопата). Снаряды растения
// возвращаются в пул до сноса контроллера.
func (g *Game) RemovePlant(row, col int) bool {
	cell := g.Grid.CellAt(row, col)
	if cell == nil || !cell.Occupied {
		return false
	}
	id := cell.Occupant
	g.WeaponSystem.Detach(id)
	g.ECS.RemoveEntity(id)
	g.Grid.SetOccupied(row, col, 0)
	g.EventDispatcher.Dispatch(event.Event{Type: event.PlantRemoved, Data: event.CellOccupiedPayload{Row: row, Col: col, Occupant: 0}})
	return true
}

// aimForPlant возвращает прицел: ближайший враг в радиусе текущего
// оружия растения. Нет врага в радиусе — нет выстрела.
func (g *Game) aimForPlant(id types.EntityID) system.AimFunc {
	return func() (float64, float64, bool) {
		pos := g.ECS.Positions[id]
		controller := g.WeaponSystem.Controller(id)
		if pos == nil || controller == nil {
			return 0, 0, false
		}
		weaponRange := defs.WeaponDef(controller.CurrentWeapon()).Range

		bestDist := math.MaxFloat64
		var bestX, bestY float64
		found := false
		for enemyID := range g.ECS.Enemies {
			enemyPos := g.ECS.Positions[enemyID]
			if enemyPos == nil {
				continue
			}
			dist := math.Hypot(enemyPos.X-pos.X, enemyPos.Y-pos.Y)
			if dist <= weaponRange && dist < bestDist {
				bestDist = dist
				bestX, bestY = enemyPos.X, enemyPos.Y
				found = true
			}
		}
		return bestX, bestY, found
	}
}

// HandleGridClick обрабатывает клик по мировой точке: пустая строибельная
// клетка — посадка, занятая — выкапывание.
func (g *Game) HandleGridClick(worldX, worldY float64) bool {
	coord, ok := g.Grid.WorldToGrid(worldX, worldY)
	if !ok {
		return false
	}
	if cell := g.Grid.CellAt(coord.Row, coord.Col); cell != nil && cell.Occupied {
		return g.RemovePlant(coord.Row, coord.Col)
	}
	return g.PlacePlant(coord.Row, coord.Col)
}
