// internal/ui/pause_button.go
package ui

import (
	"lawn-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PauseButton — кнопка паузы в углу экрана: две палочки, в паузе —
// сплошной зелёный квадрат "продолжить".
type PauseButton struct {
	X, Y   float32
	Size   float32
	Paused bool
}

func NewPauseButton(x, y, size float32) *PauseButton {
	return &PauseButton{X: x, Y: y, Size: size}
}

// Contains проверяет попадание точки в область кнопки
func (b *PauseButton) Contains(mx, my int) bool {
	half := b.Size
	fx, fy := float32(mx), float32(my)
	return fx >= b.X-half && fx <= b.X+half && fy >= b.Y-half && fy <= b.Y+half
}

func (b *PauseButton) SetPaused(paused bool) { b.Paused = paused }

func (b *PauseButton) Draw(screen *ebiten.Image) {
	if b.Paused {
		vector.DrawFilledRect(screen, b.X-b.Size/2, b.Y-b.Size/2, b.Size, b.Size, config.UIColorGreen, true)
		return
	}
	barW := b.Size / 3
	vector.DrawFilledRect(screen, b.X-b.Size/2, b.Y-b.Size/2, barW, b.Size, config.TextLightColor, true)
	vector.DrawFilledRect(screen, b.X+b.Size/6, b.Y-b.Size/2, barW, b.Size, config.TextLightColor, true)
}
