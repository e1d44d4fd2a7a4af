// internal/state/menu_state.go
package state

import (
	"lawn-defense/internal/config"
	"lawn-defense/internal/defs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// MenuState — стартовый экран
type MenuState struct {
	sm    *StateMachine
	level defs.LevelDefinition
	face  font.Face
}

func NewMenuState(sm *StateMachine, level defs.LevelDefinition, face font.Face) *MenuState {
	return &MenuState{sm: sm, level: level, face: face}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		m.sm.SetState(NewGameState(m.sm, m.level, m.face))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	text.Draw(screen, "LAWN DEFENSE", m.face, config.ScreenWidth/2-120, config.ScreenHeight/2-40, config.TextLightColor)
	text.Draw(screen, m.level.Name, m.face, config.ScreenWidth/2-120, config.ScreenHeight/2, config.UIColorGreen)
	text.Draw(screen, "Press SPACE to start", m.face, config.ScreenWidth/2-120, config.ScreenHeight/2+40, config.TextLightColor)
}

func (m *MenuState) Exit() {}
