// internal/defs/levels.go
package defs

// LevelDefinition describes a single level: grid shape, per-cell
// overrides, weapon tuning and the wave table.
type LevelDefinition struct {
	ID            string                        `json:"id"`
	Name          string                        `json:"name"`
	Grid          GridDefinition                `json:"grid"`
	Cells         []CellOverride                `json:"cells,omitempty"`
	WeaponPresets map[WeaponType]WeaponOverride `json:"weapon_presets,omitempty"`
	Waves         []WaveDefinition              `json:"waves"`
}

// GridDefinition mirrors the grid configuration the core consumes.
// Zero values fall back to the engine defaults in internal/config.
type GridDefinition struct {
	Rows       int     `json:"rows"`
	Cols       int     `json:"cols"`
	CellWidth  float64 `json:"cell_width"`
	CellHeight float64 `json:"cell_height"`
	StartX     float64 `json:"start_x"`
	StartY     float64 `json:"start_y"`
}

// CellOverride retypes a single cell after the default column layout is
// applied. Attrs carries special-cell properties; recognized keys:
//
//	"slow_factor"  — speed multiplier for enemies standing on the cell
//	"energy_bonus" — extra energy regen for a plant on the cell
type CellOverride struct {
	Row   int                `json:"row"`
	Col   int                `json:"col"`
	Type  string             `json:"type"`
	Attrs map[string]float64 `json:"attrs,omitempty"`
}

// WaveDefinition describes one wave of the level's wave table.
type WaveDefinition struct {
	EnemyID       string  `json:"enemy_id"`
	Count         int     `json:"count"`
	SpawnInterval float64 `json:"spawn_interval"` // Seconds between spawns
	Delay         float64 `json:"delay"`          // Seconds before the first spawn
}

// DefaultLevel is the built-in fallback level, equivalent to
// assets/levels/level1.json. The default column layout leaves lanes
// non-walkable, so the middle columns are retyped to EMPTY: those cells
// are both walkable for enemies and buildable for plants.
func DefaultLevel() LevelDefinition {
	var cells []CellOverride
	for row := 0; row < 5; row++ {
		for col := 1; col < 8; col++ {
			cells = append(cells, CellOverride{Row: row, Col: col, Type: "EMPTY"})
		}
	}
	cells = append(cells,
		CellOverride{Row: 1, Col: 4, Type: "OBSTACLE"},
		CellOverride{Row: 3, Col: 4, Type: "OBSTACLE"},
		CellOverride{Row: 2, Col: 2, Type: "SPECIAL", Attrs: map[string]float64{"slow_factor": 0.5}},
	)
	return LevelDefinition{
		ID:    "LEVEL_BUILTIN",
		Name:  "Back Lawn",
		Cells: cells,
		Waves: []WaveDefinition{
			{EnemyID: "ENEMY_WALKER", Count: 5, SpawnInterval: 2.5, Delay: 5},
			{EnemyID: "ENEMY_RUNNER", Count: 8, SpawnInterval: 1.5, Delay: 2},
			{EnemyID: "ENEMY_BRUTE", Count: 3, SpawnInterval: 4, Delay: 2},
		},
	}
}
