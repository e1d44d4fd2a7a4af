// internal/defs/loader_test.go
package defs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadLevelDefinition(t *testing.T) {
	path := writeFile(t, "level.json", `{
		"id": "LEVEL_TEST",
		"name": "Test Lawn",
		"grid": {"rows": 3, "cols": 7, "cell_width": 80, "cell_height": 100},
		"cells": [
			{"row": 1, "col": 2, "type": "SPECIAL", "attrs": {"slow_factor": 0.5}}
		],
		"weapon_presets": {
			"MULTIPLE": {"bullet_count": 5, "spread_angle": 40}
		},
		"waves": [
			{"enemy_id": "ENEMY_WALKER", "count": 4, "spawn_interval": 2, "delay": 1}
		]
	}`)

	level, err := LoadLevelDefinition(path)
	require.NoError(t, err)
	require.Equal(t, "LEVEL_TEST", level.ID)
	require.Equal(t, 3, level.Grid.Rows)
	require.Equal(t, 7, level.Grid.Cols)

	require.Len(t, level.Cells, 1)
	require.Equal(t, "SPECIAL", level.Cells[0].Type)
	require.Equal(t, 0.5, level.Cells[0].Attrs["slow_factor"])

	preset, ok := level.WeaponPresets[WeaponMultiple]
	require.True(t, ok)
	require.NotNil(t, preset.BulletCount)
	require.Equal(t, 5, *preset.BulletCount)
	require.Nil(t, preset.Damage)

	require.Len(t, level.Waves, 1)
	require.Equal(t, "ENEMY_WALKER", level.Waves[0].EnemyID)
	require.Equal(t, 2.0, level.Waves[0].SpawnInterval)
}

func TestLoadLevelDefinitionErrors(t *testing.T) {
	_, err := LoadLevelDefinition(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)

	broken := writeFile(t, "broken.json", `{"id": "LEVEL_X",`)
	_, err = LoadLevelDefinition(broken)
	require.Error(t, err)
}

func TestLoadWeaponDefinitions(t *testing.T) {
	t.Cleanup(LoadBuiltinWeapons)

	path := writeFile(t, "weapons.json", `[
		{"id": "NORMAL", "name": "Pea Shooter", "damage": 10, "fire_rate": 2},
		{"id": "LASER", "name": "Beam Stalk", "damage": 15, "penetration": 3}
	]`)
	require.NoError(t, LoadWeaponDefinitions(path))
	require.Len(t, WeaponLibrary, 2)
	require.Equal(t, 10, WeaponDef(WeaponNormal).Damage)
	require.Equal(t, 3, WeaponDef(WeaponLaser).Penetration)
}

func TestLoadAllFallsBackToBuiltins(t *testing.T) {
	t.Cleanup(func() {
		LoadBuiltinWeapons()
		LoadBuiltinEnemies()
	})

	dir := t.TempDir()
	require.NoError(t, LoadAll(
		filepath.Join(dir, "weapons.json"),
		filepath.Join(dir, "enemies.json"),
	))

	// Every weapon type and the stock enemies must be present.
	for _, weaponType := range AllWeaponTypes {
		_, ok := WeaponLibrary[weaponType]
		require.True(t, ok, "missing builtin for %s", weaponType)
	}
	require.NotEmpty(t, EnemyLibrary)
}

func TestLoadAllRejectsBrokenFile(t *testing.T) {
	t.Cleanup(func() {
		LoadBuiltinWeapons()
		LoadBuiltinEnemies()
	})

	weapons := writeFile(t, "weapons.json", `not json`)
	enemies := filepath.Join(t.TempDir(), "enemies.json")

	// A file that exists but does not parse must not be shadowed by the
	// built-in tables.
	require.Error(t, LoadAll(weapons, enemies))
}
