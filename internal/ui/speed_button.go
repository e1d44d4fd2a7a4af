// internal/ui/speed_button.go
package ui

import (
	"lawn-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// speedStates — множители скорости, переключаемые по кругу
var speedStates = []float64{1.0, 2.0, 4.0}

// SpeedButton циклически переключает скорость симуляции.
type SpeedButton struct {
	X, Y         float32
	Size         float32
	CurrentState int
}

func NewSpeedButton(x, y, size float32) *SpeedButton {
	return &SpeedButton{X: x, Y: y, Size: size}
}

// Contains проверяет попадание точки в область кнопки
func (b *SpeedButton) Contains(mx, my int) bool {
	fx, fy := float32(mx), float32(my)
	return fx >= b.X-b.Size && fx <= b.X+b.Size && fy >= b.Y-b.Size && fy <= b.Y+b.Size
}

// Toggle переходит к следующему множителю и возвращает его
func (b *SpeedButton) Toggle() float64 {
	b.CurrentState = (b.CurrentState + 1) % len(speedStates)
	return speedStates[b.CurrentState]
}

// Multiplier возвращает текущий множитель скорости
func (b *SpeedButton) Multiplier() float64 {
	return speedStates[b.CurrentState]
}

// Draw рисует столбики: сколько активно, такая и скорость
func (b *SpeedButton) Draw(screen *ebiten.Image) {
	barW := b.Size / 2
	for i := range speedStates {
		c := config.EnergyBarBackColor
		if i <= b.CurrentState {
			c = config.UIColorBlue
		}
		x := b.X - b.Size + float32(i)*(barW+2)
		h := b.Size * float32(i+2) / float32(len(speedStates)+1)
		vector.DrawFilledRect(screen, x, b.Y+b.Size/2-h, barW, h, c, true)
	}
}
