// internal/defs/enemies.go
package defs

import "image/color"

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	ID      string       `json:"id"`
	Name    string       `json:"name"`
	Health  int          `json:"health"`
	Speed   float64      `json:"speed"` // World units per second
	Damage  int          `json:"damage"`
	Visuals EnemyVisuals `json:"visuals"`
}

// EnemyVisuals contains parameters for rendering an enemy.
type EnemyVisuals struct {
	Color  color.RGBA `json:"color"`
	Radius float64    `json:"radius"`
}

// EnemyLibrary is the library of all enemy definitions, mapped by their ID.
var EnemyLibrary map[string]EnemyDefinition

// LoadBuiltinEnemies fills the library with the stock roster so the game
// can run without a definitions file on disk.
func LoadBuiltinEnemies() {
	EnemyLibrary = map[string]EnemyDefinition{
		"ENEMY_WALKER": {
			ID:     "ENEMY_WALKER",
			Name:   "Walker",
			Health: 100,
			Speed:  40,
			Damage: 1,
			Visuals: EnemyVisuals{
				Color:  color.RGBA{170, 170, 180, 255},
				Radius: 16,
			},
		},
		"ENEMY_RUNNER": {
			ID:     "ENEMY_RUNNER",
			Name:   "Runner",
			Health: 60,
			Speed:  80,
			Damage: 1,
			Visuals: EnemyVisuals{
				Color:  color.RGBA{210, 160, 120, 255},
				Radius: 13,
			},
		},
		"ENEMY_BRUTE": {
			ID:     "ENEMY_BRUTE",
			Name:   "Brute",
			Health: 320,
			Speed:  25,
			Damage: 2,
			Visuals: EnemyVisuals{
				Color:  color.RGBA{120, 120, 140, 255},
				Radius: 22,
			},
		},
	}
}
