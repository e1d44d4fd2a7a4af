// internal/ui/base_health_indicator.go
package ui

import (
	"lawn-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	healthCols          = 5
	healthCircleRadius  = 8.0
	healthCircleSpacing = 4.0
)

// BaseHealthIndicator рисует здоровье базы сеткой кружков.
type BaseHealthIndicator struct {
	X, Y float32
}

func NewBaseHealthIndicator(x, y float32) *BaseHealthIndicator {
	return &BaseHealthIndicator{X: x, Y: y}
}

func (i *BaseHealthIndicator) Draw(screen *ebiten.Image, health, maxHealth int) {
	halfHealth := maxHealth / 2
	for j := 0; j < maxHealth; j++ {
		row := j / healthCols
		col := j % healthCols

		x := i.X + float32(col)*(healthCircleRadius*2+healthCircleSpacing)
		y := i.Y + float32(row)*(healthCircleRadius*2+healthCircleSpacing)

		c := config.EnergyBarBackColor
		if j < health {
			// В красную зону индикатор уходит на половине здоровья
			if health <= halfHealth {
				c = config.UIColorRed
			} else {
				c = config.UIColorGreen
			}
		}
		vector.DrawFilledCircle(screen, x, y, healthCircleRadius, c, true)
	}
}
