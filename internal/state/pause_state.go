// internal/state/pause_state.go
package state

import (
	"lawn-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState затеняет игру и ждёт снятия паузы.
type PauseState struct {
	sm       *StateMachine
	previous *GameState
	face     font.Face
}

func NewPauseState(sm *StateMachine, previous *GameState, face font.Face) *PauseState {
	return &PauseState{sm: sm, previous: previous, face: face}
}

func (s *PauseState) Enter() {
	s.previous.PauseButton.SetPaused(true)
}

func (s *PauseState) Update(deltaTime float64) {
	unpause := inpututil.IsKeyJustPressed(ebiten.KeyP) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsKeyJustPressed(ebiten.KeyF9)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		if s.previous.PauseButton.Contains(mx, my) {
			unpause = true
		}
	}

	if unpause {
		s.previous.PauseButton.SetPaused(false)
		s.sm.SetState(s.previous)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previous.Draw(screen)
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.PauseOverlayColor, false)
	text.Draw(screen, "PAUSED", s.face, config.ScreenWidth/2-60, config.ScreenHeight/2, config.TextLightColor)
}

func (s *PauseState) Exit() {}
