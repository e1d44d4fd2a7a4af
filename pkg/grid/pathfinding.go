// pkg/grid/pathfinding.go
package grid

import (
	"container/heap"
)

// FindPath находит кратчайший путь A* по четырёхсвязным проходимым
// клеткам. Занятость клетки при поиске не учитывается — посаженный
// объект не перекрывает маршрут (см. DESIGN.md). Стоимость шага
// единичная, эвристика — манхэттенское расстояние, поэтому путь
// оптимален; порядок при равных оценках не гарантируется.
//
// Возвращает полный путь от start до end включительно, nil — если
// какая-то из точек вне решётки или пути нет. Отсутствие пути — штатный
// исход, не ошибка.
func (g *Grid) FindPath(start, end Coord) []Coord {
	if !g.IsValid(start.Row, start.Col) || !g.IsValid(end.Row, end.Col) {
		return nil
	}
	if start == end {
		return []Coord{start}
	}

	pq := &pathQueue{}
	heap.Init(pq)
	heap.Push(pq, &pathNode{coord: start, cost: 0, priority: start.ManhattanTo(end)})
	costSoFar := map[Coord]int{start: 0}

	for pq.Len() > 0 {
		current := heap.Pop(pq).(*pathNode)
		if current.coord == end {
			return reconstructPath(current)
		}
		for _, off := range neighborOffsets {
			next := Coord{Row: current.coord.Row + off.Row, Col: current.coord.Col + off.Col}
			cell := g.CellAt(next.Row, next.Col)
			if cell == nil || !cell.Walkable {
				continue
			}
			newCost := costSoFar[current.coord] + 1
			if prev, exists := costSoFar[next]; !exists || newCost < prev {
				costSoFar[next] = newCost
				heap.Push(pq, &pathNode{
					coord:    next,
					cost:     newCost,
					priority: newCost + next.ManhattanTo(end),
					parent:   current,
				})
			}
		}
	}
	return nil // Нет пути
}

type pathNode struct {
	coord    Coord
	cost     int
	priority int
	parent   *pathNode
}

// pathQueue — очередь с приоритетом для A*
type pathQueue []*pathNode

func (pq pathQueue) Len() int           { return len(pq) }
func (pq pathQueue) Less(i, j int) bool { return pq[i].priority < pq[j].priority }
func (pq pathQueue) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

func (pq *pathQueue) Push(x any) {
	*pq = append(*pq, x.(*pathNode))
}

func (pq *pathQueue) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]
	return item
}

func reconstructPath(node *pathNode) []Coord {
	var path []Coord
	for node != nil {
		path = append(path, node.coord)
		node = node.parent
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
