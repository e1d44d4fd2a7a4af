// internal/state/game_state.go
package state

import (
	"fmt"
	"log"
	"time"

	game "lawn-defense/internal/app"
	"lawn-defense/internal/component"
	"lawn-defense/internal/config"
	"lawn-defense/internal/defs"
	"lawn-defense/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// weaponHotkeys — выбор типа оружия для посадки клавишами 1..4
var weaponHotkeys = map[ebiten.Key]defs.WeaponType{
	ebiten.Key1: defs.WeaponNormal,
	ebiten.Key2: defs.WeaponCannon,
	ebiten.Key3: defs.WeaponMultiple,
	ebiten.Key4: defs.WeaponLaser,
}

// GameState — состояние игры
type GameState struct {
	sm   *StateMachine
	game *game.Game
	face font.Face

	PauseButton   *ui.PauseButton
	speedButton   *ui.SpeedButton
	waveIndicator *ui.WaveIndicator
	healthBar     *ui.BaseHealthIndicator
	lastClickTime time.Time
}

func NewGameState(sm *StateMachine, level defs.LevelDefinition, face font.Face) *GameState {
	gameLogic, err := game.NewGame(level, 0)
	if err != nil {
		log.Fatalf("failed to start level: %v", err)
	}

	return &GameState{
		sm:   sm,
		game: gameLogic,
		face: face,
		PauseButton: ui.NewPauseButton(
			config.ScreenWidth-config.IndicatorOffsetX,
			config.IndicatorOffsetX,
			config.IndicatorRadius*2,
		),
		speedButton: ui.NewSpeedButton(
			config.ScreenWidth-config.SpeedButtonOffsetX,
			config.SpeedButtonY,
			config.SpeedButtonSize,
		),
		waveIndicator: ui.NewWaveIndicator(config.ScreenWidth/2-20, 40),
		healthBar:     ui.NewBaseHealthIndicator(30, 30),
		lastClickTime: time.Now(),
	}
}

func (g *GameState) Enter() {}

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF9) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.sm.SetState(NewPauseState(g.sm, g, g.face))
		return
	}
	for key, weaponType := range weaponHotkeys {
		if inpututil.IsKeyJustPressed(key) {
			g.game.SelectWeapon(weaponType)
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.handleClick()
	}

	g.game.Update(deltaTime)
}

func (g *GameState) handleClick() {
	mx, my := ebiten.CursorPosition()

	if g.PauseButton.Contains(mx, my) {
		g.sm.SetState(NewPauseState(g.sm, g, g.face))
		return
	}
	if g.speedButton.Contains(mx, my) {
		g.game.SetSpeed(g.speedButton.Toggle())
		return
	}

	// Дребезг кликов по сетке гасим, как и везде в UI
	if time.Since(g.lastClickTime).Milliseconds() < config.ClickDebounceTime {
		return
	}
	g.lastClickTime = time.Now()

	worldX := float64(mx)
	worldY := config.GridStartY - (float64(my) - config.GridScreenTop)
	g.game.HandleGridClick(worldX, worldY)
}

func (g *GameState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	g.game.RenderSystem.Draw(screen)

	g.healthBar.Draw(screen, g.game.BaseHealth, config.BaseHealth)
	g.waveIndicator.Draw(screen, g.game.WaveSystem.CurrentWaveNumber(), g.face)
	g.speedButton.Draw(screen)
	g.PauseButton.Draw(screen)

	weaponLabel := fmt.Sprintf("Weapon: %s  [1-4]", defs.WeaponDef(g.game.SelectedWeapon).Name)
	text.Draw(screen, weaponLabel, g.face, 30, config.ScreenHeight-40, config.TextLightColor)

	switch g.game.ECS.Phase {
	case component.VictoryPhase:
		text.Draw(screen, "VICTORY", g.face, config.ScreenWidth/2-60, config.ScreenHeight/2, config.UIColorGreen)
	case component.DefeatPhase:
		text.Draw(screen, "THE LAWN IS LOST", g.face, config.ScreenWidth/2-120, config.ScreenHeight/2, config.UIColorRed)
	}
}

func (g *GameState) Exit() {}
