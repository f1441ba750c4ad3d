// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// WeaponLibrary is a map to hold all weapon definitions, keyed by their variant.
var WeaponLibrary map[WeaponVariant]WeaponDefinition

// ErrWeaponNotFound is returned when a declared variant has no registered definition.
var ErrWeaponNotFound = errors.New("weapon definition not found")

// LoadWeaponDefinitions reads the weapon configuration file and populates the WeaponLibrary.
func LoadWeaponDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read weapon definitions file: %w", err)
	}

	var weaponDefs []WeaponDefinition
	if err := json.Unmarshal(file, &weaponDefs); err != nil {
		return fmt.Errorf("failed to unmarshal weapon definitions: %w", err)
	}

	WeaponLibrary = make(map[WeaponVariant]WeaponDefinition)
	for _, def := range weaponDefs {
		WeaponLibrary[def.Variant] = def
	}

	fmt.Printf("Loaded %d weapon definitions\n", len(WeaponLibrary))
	return nil
}

// UseDefaultWeaponDefinitions populates the WeaponLibrary from the built-in
// table. Используется как запасной вариант, когда JSON недоступен.
func UseDefaultWeaponDefinitions() {
	WeaponLibrary = make(map[WeaponVariant]WeaponDefinition)
	for _, def := range defaultWeaponDefinitions {
		WeaponLibrary[def.Variant] = def
	}
}

// GetWeaponDefinition looks up the definition for a variant.
func GetWeaponDefinition(variant WeaponVariant) (WeaponDefinition, error) {
	def, ok := WeaponLibrary[variant]
	if !ok {
		return WeaponDefinition{}, fmt.Errorf("%w: %s", ErrWeaponNotFound, variant)
	}
	return def, nil
}
