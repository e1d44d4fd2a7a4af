// internal/system/render.go
package system

import (
	"image/color"

	"lawn-defense/internal/config"
	"lawn-defense/internal/entity"
	"lawn-defense/pkg/grid"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// RenderSystem рисует решётку и сущности. Отрисовка — чистое потребление
// состояния, ядро симуляции о ней не знает.
type RenderSystem struct {
	ecs  *entity.ECS
	grid *grid.Grid
}

func NewRenderSystem(ecs *entity.ECS, g *grid.Grid) *RenderSystem {
	return &RenderSystem{ecs: ecs, grid: g}
}

// WorldToScreen переводит мировые координаты (ось Y вверх) в экранные
func WorldToScreen(x, y float64) (float32, float32) {
	return float32(x), float32(config.GridScreenTop + (config.GridStartY - y))
}

func cellColor(t grid.CellType) color.RGBA {
	switch t {
	case grid.PlantZone:
		return config.PlantZoneColor
	case grid.Path:
		return config.PathCellColor
	case grid.Spawn:
		return config.SpawnCellColor
	case grid.Goal:
		return config.GoalCellColor
	case grid.Obstacle:
		return config.ObstacleCellColor
	case grid.Special:
		return config.SpecialCellColor
	default:
		return config.EmptyCellColor
	}
}

func (s *RenderSystem) Draw(screen *ebiten.Image) {
	s.drawGrid(screen)
	s.drawPlants(screen)
	s.drawEntities(screen)
}

func (s *RenderSystem) drawGrid(screen *ebiten.Image) {
	cfg := s.grid.Cfg()
	w := float32(cfg.CellWidth)
	h := float32(cfg.CellHeight)
	for row := 0; row < s.grid.Rows(); row++ {
		for col := 0; col < s.grid.Cols(); col++ {
			cell := s.grid.CellAt(row, col)
			cx, cy := WorldToScreen(cell.CenterX, cell.CenterY)
			x := cx - w/2
			y := cy - h/2
			vector.DrawFilledRect(screen, x, y, w, h, cellColor(cell.Type), false)
			vector.StrokeRect(screen, x, y, w, h, 1, config.CellStrokeColor, false)
		}
	}
}

func (s *RenderSystem) drawPlants(screen *ebiten.Image) {
	for id := range s.ecs.Plants {
		pos := s.ecs.Positions[id]
		if pos == nil {
			continue
		}
		x, y := WorldToScreen(pos.X, pos.Y)
		vector.DrawFilledCircle(screen, x, y, config.PlantRadius+2, config.PlantStrokeColor, true)
		vector.DrawFilledCircle(screen, x, y, config.PlantRadius, config.PlantColor, true)
	}
}

// drawEntities рисует врагов и летящие снаряды по Renderable
func (s *RenderSystem) drawEntities(screen *ebiten.Image) {
	for id, render := range s.ecs.Renderables {
		pos := s.ecs.Positions[id]
		if pos == nil {
			continue
		}
		if proj, isProjectile := s.ecs.Projectiles[id]; isProjectile {
			if !proj.Active {
				continue // Снаряды в пуле не рисуются
			}
		}
		if _, isPlant := s.ecs.Plants[id]; isPlant {
			continue // Растения рисуются отдельно
		}
		x, y := WorldToScreen(pos.X, pos.Y)
		if render.HasStroke {
			vector.DrawFilledCircle(screen, x, y, render.Radius+2, config.PlantStrokeColor, true)
		}
		vector.DrawFilledCircle(screen, x, y, render.Radius, render.Color, true)
	}
}
