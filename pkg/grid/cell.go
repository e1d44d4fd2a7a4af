// pkg/grid/cell.go
package grid

import "lawn-defense/internal/types"

// CellType — логический тип клетки газона
type CellType int

const (
	Empty CellType = iota
	PlantZone
	Path
	Spawn
	Goal
	Obstacle
	Special
)

var cellTypeNames = map[CellType]string{
	Empty:     "EMPTY",
	PlantZone: "PLANT_ZONE",
	Path:      "PATH",
	Spawn:     "SPAWN",
	Goal:      "GOAL",
	Obstacle:  "OBSTACLE",
	Special:   "SPECIAL",
}

func (t CellType) String() string {
	if name, ok := cellTypeNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

// ParseCellType разбирает строковое имя типа из JSON уровня.
func ParseCellType(name string) (CellType, bool) {
	for t, n := range cellTypeNames {
		if n == name {
			return t, true
		}
	}
	return Empty, false
}

// cellTraits — фиксированная таблица вывода walkable/buildable из типа.
// Spawn/Goal/Path — проходимы, строить нельзя; PlantZone — наоборот;
// Obstacle — ни то ни другое; Empty/Special — и то и другое.
var cellTraits = map[CellType]struct{ walkable, buildable bool }{
	Empty:     {walkable: true, buildable: true},
	PlantZone: {walkable: false, buildable: true},
	Path:      {walkable: true, buildable: false},
	Spawn:     {walkable: true, buildable: false},
	Goal:      {walkable: true, buildable: false},
	Obstacle:  {walkable: false, buildable: false},
	Special:   {walkable: true, buildable: true},
}

// Coord — координата клетки (строка, столбец), нумерация с нуля.
// Строки растут вниз, столбцы вправо.
type Coord struct {
	Row, Col int
}

// ManhattanTo возвращает манхэттенское расстояние до другой координаты
func (c Coord) ManhattanTo(to Coord) int {
	dr := c.Row - to.Row
	if dr < 0 {
		dr = -dr
	}
	dc := c.Col - to.Col
	if dc < 0 {
		dc = -dc
	}
	return dr + dc
}

// Cell — одна клетка решётки.
//
// Occupant — непрозрачный идентификатор, которым владеет вызывающая
// сторона; сетка только хранит его и никогда не разыменовывает.
// Attrs — типизированный мешок свойств клетки из JSON уровня;
// распознаваемые ключи описаны в defs.CellOverride.
type Cell struct {
	Coord
	CenterX, CenterY float64 // Кэш мирового центра клетки
	Type             CellType
	Walkable         bool
	Buildable        bool
	Occupied         bool
	Occupant         types.EntityID
	Attrs            map[string]float64
}

// applyType выставляет тип и пересчитывает производные флаги
func (c *Cell) applyType(t CellType) {
	c.Type = t
	traits := cellTraits[t]
	c.Walkable = traits.walkable
	c.Buildable = traits.buildable
}

// Attr возвращает свойство клетки либо fallback, если ключ не задан.
func (c *Cell) Attr(key string, fallback float64) float64 {
	if c.Attrs == nil {
		return fallback
	}
	if v, ok := c.Attrs[key]; ok {
		return v
	}
	return fallback
}
