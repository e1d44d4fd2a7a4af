// pkg/grid/grid.go
package grid

import (
	"errors"
	"math"

	"lawn-defense/internal/event"
	"lawn-defense/internal/types"
)

// ErrInvalidConfig возвращается из Configure при неположительных размерах.
var ErrInvalidConfig = errors.New("grid: rows, cols and cell size must be positive")

// Config описывает геометрию решётки. StartX/StartY — мировая позиция
// левого верхнего угла; мировая ось Y направлена вверх, поэтому строки
// уходят вниз по миру в сторону уменьшения Y.
type Config struct {
	Rows, Cols int
	CellWidth  float64
	CellHeight float64
	StartX     float64
	StartY     float64
}

// Grid владеет двумерным массивом клеток и отвечает за преобразования
// координат, запросы соседей и мутации типа/занятости. Никакой внутренней
// синхронизации нет: все вызовы идут из одного потока симуляции.
type Grid struct {
	cfg        Config
	cells      [][]Cell
	dispatcher *event.Dispatcher
}

// New создаёт пустую (несконфигурированную) сетку. dispatcher может быть
// nil — тогда уведомления не рассылаются.
func New(dispatcher *event.Dispatcher) *Grid {
	return &Grid{dispatcher: dispatcher}
}

// Configure перестраивает решётку с нуля: прежние клетки, их типы и
// занятость отбрасываются. Тип клетки выводится из столбца: правый
// столбец — Spawn, левый — Goal, всё между ними — PlantZone.
// При некорректных размерах возвращает ErrInvalidConfig, не меняя сетку.
func (g *Grid) Configure(cfg Config) error {
	if cfg.Rows <= 0 || cfg.Cols <= 0 || cfg.CellWidth <= 0 || cfg.CellHeight <= 0 {
		return ErrInvalidConfig
	}

	cells := make([][]Cell, cfg.Rows)
	for row := 0; row < cfg.Rows; row++ {
		cells[row] = make([]Cell, cfg.Cols)
		for col := 0; col < cfg.Cols; col++ {
			cell := &cells[row][col]
			cell.Coord = Coord{Row: row, Col: col}
			cell.CenterX = cfg.StartX + float64(col)*cfg.CellWidth + cfg.CellWidth/2
			cell.CenterY = cfg.StartY - float64(row)*cfg.CellHeight - cfg.CellHeight/2
			switch col {
			case cfg.Cols - 1:
				cell.applyType(Spawn)
			case 0:
				cell.applyType(Goal)
			default:
				cell.applyType(PlantZone)
			}
		}
	}

	g.cfg = cfg
	g.cells = cells
	return nil
}

// Rows возвращает число строк сконфигурированной сетки
func (g *Grid) Rows() int { return g.cfg.Rows }

// Cols возвращает число столбцов сконфигурированной сетки
func (g *Grid) Cols() int { return g.cfg.Cols }

// Cfg возвращает текущую конфигурацию
func (g *Grid) Cfg() Config { return g.cfg }

// GridToWorld возвращает мировой центр клетки. Координата не проверяется
// на границы: преобразование корректно и для гипотетических клеток за
// пределами решётки.
func (g *Grid) GridToWorld(row, col int) (x, y float64) {
	x = g.cfg.StartX + float64(col)*g.cfg.CellWidth + g.cfg.CellWidth/2
	y = g.cfg.StartY - float64(row)*g.cfg.CellHeight - g.cfg.CellHeight/2
	return
}

// WorldToGrid — обратное преобразование. Второй результат false, если
// точка лежит вне решётки.
func (g *Grid) WorldToGrid(x, y float64) (Coord, bool) {
	if g.cfg.CellWidth <= 0 || g.cfg.CellHeight <= 0 {
		return Coord{}, false
	}
	col := int(math.Floor((x - g.cfg.StartX) / g.cfg.CellWidth))
	row := int(math.Floor((g.cfg.StartY - y) / g.cfg.CellHeight))
	if !g.IsValid(row, col) {
		return Coord{}, false
	}
	return Coord{Row: row, Col: col}, true
}

// IsValid проверяет, что координата лежит в границах решётки
func (g *Grid) IsValid(row, col int) bool {
	return row >= 0 && row < g.cfg.Rows && col >= 0 && col < g.cfg.Cols
}

// CellAt возвращает клетку либо nil для координаты вне границ
func (g *Grid) CellAt(row, col int) *Cell {
	if !g.IsValid(row, col) {
		return nil
	}
	return &g.cells[row][col]
}

// SetCellType меняет тип клетки и пересчитывает walkable/buildable.
// Возвращает false для координаты вне границ.
func (g *Grid) SetCellType(row, col int, t CellType) bool {
	cell := g.CellAt(row, col)
	if cell == nil {
		return false
	}
	oldType := cell.Type
	cell.applyType(t)
	if g.dispatcher != nil {
		g.dispatcher.Dispatch(event.Event{
			Type: event.CellTypeChanged,
			Data: event.CellTypePayload{
				Row:     row,
				Col:     col,
				OldType: int(oldType),
				NewType: int(t),
			},
		})
	}
	return true
}

// SetOccupied занимает клетку (occupant != 0) или освобождает её
// (occupant == 0). Занять можно только строибельную и не занятую клетку;
// освобождение всегда успешно для валидной координаты.
func (g *Grid) SetOccupied(row, col int, occupant types.EntityID) bool {
	cell := g.CellAt(row, col)
	if cell == nil {
		return false
	}
	if occupant != 0 {
		if !cell.Buildable || cell.Occupied {
			return false
		}
		cell.Occupied = true
		cell.Occupant = occupant
	} else {
		cell.Occupied = false
		cell.Occupant = 0
	}
	if g.dispatcher != nil {
		g.dispatcher.Dispatch(event.Event{
			Type: event.CellOccupiedChanged,
			Data: event.CellOccupiedPayload{Row: row, Col: col, Occupant: occupant},
		})
	}
	return true
}

// CanPlaceAt — можно ли поставить объект в клетку
func (g *Grid) CanPlaceAt(row, col int) bool {
	cell := g.CellAt(row, col)
	return cell != nil && cell.Buildable && !cell.Occupied
}

// CanWalkAt — может ли существо стоять в клетке
func (g *Grid) CanWalkAt(row, col int) bool {
	cell := g.CellAt(row, col)
	return cell != nil && cell.Walkable && !cell.Occupied
}

// CellsByType возвращает все клетки данного типа в построчном порядке
func (g *Grid) CellsByType(t CellType) []*Cell {
	var result []*Cell
	for row := range g.cells {
		for col := range g.cells[row] {
			if g.cells[row][col].Type == t {
				result = append(result, &g.cells[row][col])
			}
		}
	}
	return result
}

// neighborOffsets — фиксированный порядок обхода соседей: N, S, E, W,
// затем диагонали.
var neighborOffsets = []Coord{
	{Row: -1, Col: 0},
	{Row: 1, Col: 0},
	{Row: 0, Col: 1},
	{Row: 0, Col: -1},
}

var diagonalOffsets = []Coord{
	{Row: -1, Col: 1},
	{Row: 1, Col: 1},
	{Row: 1, Col: -1},
	{Row: -1, Col: -1},
}

// Neighbors возвращает существующих соседей клетки: четырёх ортогональных
// либо восемь с диагоналями. Порядок фиксирован, вне границ — пропуск.
func (g *Grid) Neighbors(row, col int, diagonal bool) []*Cell {
	offsets := neighborOffsets
	if diagonal {
		offsets = append(append([]Coord{}, neighborOffsets...), diagonalOffsets...)
	}
	result := make([]*Cell, 0, len(offsets))
	for _, off := range offsets {
		if cell := g.CellAt(row+off.Row, col+off.Col); cell != nil {
			result = append(result, cell)
		}
	}
	return result
}
