// internal/defs/types.go
package defs

// WeaponType defines the firing pattern family of a weapon.
type WeaponType string

const (
	WeaponNormal   WeaponType = "NORMAL"
	WeaponCannon   WeaponType = "CANNON"
	WeaponMultiple WeaponType = "MULTIPLE"
	WeaponLaser    WeaponType = "LASER"
)

// AllWeaponTypes lists every known weapon type in a stable order.
var AllWeaponTypes = []WeaponType{WeaponNormal, WeaponCannon, WeaponMultiple, WeaponLaser}
