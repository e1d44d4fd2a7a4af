// component/movement.go
package component

import "lawn-defense/pkg/grid"

// Position — компонент позиции (мировые координаты)
type Position struct {
	X, Y float64
}

// Velocity — компонент скорости
type Velocity struct {
	Speed float64
}

// Path — компонент пути по клеткам решётки
type Path struct {
	Cells        []grid.Coord
	CurrentIndex int
}
