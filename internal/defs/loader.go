// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
)

// LoadWeaponDefinitions reads the weapon configuration file and populates
// the WeaponLibrary.
func LoadWeaponDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read weapon definitions file: %w", err)
	}

	var weaponDefs []WeaponDefinition
	if err := json.Unmarshal(file, &weaponDefs); err != nil {
		return fmt.Errorf("failed to unmarshal weapon definitions: %w", err)
	}

	WeaponLibrary = make(map[WeaponType]WeaponDefinition)
	for _, def := range weaponDefs {
		WeaponLibrary[def.ID] = def
	}

	log.Printf("Loaded %d weapon definitions", len(WeaponLibrary))
	return nil
}

// LoadEnemyDefinitions reads the enemy configuration file and populates
// the EnemyLibrary.
func LoadEnemyDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read enemy definitions file: %w", err)
	}

	var enemyDefs []EnemyDefinition
	if err := json.Unmarshal(file, &enemyDefs); err != nil {
		return fmt.Errorf("failed to unmarshal enemy definitions: %w", err)
	}

	EnemyLibrary = make(map[string]EnemyDefinition)
	for _, def := range enemyDefs {
		EnemyLibrary[def.ID] = def
	}

	log.Printf("Loaded %d enemy definitions", len(EnemyLibrary))
	return nil
}

// LoadLevelDefinition reads and parses a single level file.
func LoadLevelDefinition(path string) (LevelDefinition, error) {
	var level LevelDefinition

	file, err := os.ReadFile(path)
	if err != nil {
		return level, fmt.Errorf("failed to read level file: %w", err)
	}
	if err := json.Unmarshal(file, &level); err != nil {
		return level, fmt.Errorf("failed to unmarshal level %q: %w", path, err)
	}

	log.Printf("Loaded level %s (%d waves)", level.ID, len(level.Waves))
	return level, nil
}

// LoadAll loads every definition file, falling back to the built-in
// tables when a file is missing. A parse error is still fatal — a broken
// file on disk should not be silently shadowed by defaults.
func LoadAll(weaponsPath, enemiesPath string) error {
	if err := LoadWeaponDefinitions(weaponsPath); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return err
		}
		log.Printf("No weapon definitions at %s, using built-ins", weaponsPath)
		LoadBuiltinWeapons()
	}
	if err := LoadEnemyDefinitions(enemiesPath); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return err
		}
		log.Printf("No enemy definitions at %s, using built-ins", enemiesPath)
		LoadBuiltinEnemies()
	}
	return nil
}
