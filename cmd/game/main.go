// cmd/game/main.go
package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"lawn-defense/internal/config"
	"lawn-defense/internal/defs"
	"lawn-defense/internal/state"
	"lawn-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	weaponsPath = "assets/weapons.json"
	enemiesPath = "assets/enemies.json"
	levelPath   = "assets/levels/level1.json"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()

	if err := defs.LoadAll(weaponsPath, enemiesPath); err != nil {
		log.Fatal(err)
	}
	level, err := defs.LoadLevelDefinition(levelPath)
	if err != nil {
		log.Printf("Falling back to the built-in level: %v", err)
		level = defs.DefaultLevel()
	}

	face := render.LoadFontFace(20)
	sm := state.NewStateMachine()
	sm.SetState(state.NewMenuState(sm, level, face))

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Lawn Defense")
	if err := ebiten.RunGame(&AppGame{stateMachine: sm, lastUpdateTime: time.Now()}); err != nil {
		log.Fatal(err)
	}
}
