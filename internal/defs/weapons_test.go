// internal/defs/weapons_test.go
package defs

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWeaponDefFallback(t *testing.T) {
	LoadBuiltinWeapons()
	t.Cleanup(LoadBuiltinWeapons)

	// Registered type comes from the library.
	laser := WeaponDef(WeaponLaser)
	require.Equal(t, WeaponLaser, laser.ID)
	require.Equal(t, 3, laser.Penetration)

	// Unknown type falls back to the default config instead of failing.
	unknown := WeaponDef(WeaponType("PLASMA"))
	require.Equal(t, DefaultWeaponDef(), unknown)

	// Even a wiped library keeps the caller alive.
	WeaponLibrary = nil
	require.Equal(t, DefaultWeaponDef(), WeaponDef(WeaponNormal))
}

func TestMergeWeaponDefPartial(t *testing.T) {
	LoadBuiltinWeapons()
	t.Cleanup(LoadBuiltinWeapons)

	before := WeaponDef(WeaponCannon)
	damage := 75
	cooldown := 2.5
	MergeWeaponDef(WeaponCannon, WeaponOverride{
		Damage:   &damage,
		Cooldown: &cooldown,
	})

	after := WeaponDef(WeaponCannon)
	require.Equal(t, 75, after.Damage)
	require.Equal(t, 2.5, after.Cooldown)

	// Unspecified fields keep their stored values.
	require.Equal(t, before.FireRate, after.FireRate)
	require.Equal(t, before.BulletSpeed, after.BulletSpeed)
	require.Equal(t, before.ExplosionRadius, after.ExplosionRadius)
	require.Equal(t, before.EnergyCost, after.EnergyCost)
}

func TestMergeWeaponDefUnknownType(t *testing.T) {
	LoadBuiltinWeapons()
	t.Cleanup(LoadBuiltinWeapons)

	// Merging onto an unregistered type starts from the default config and
	// registers the result under the requested type.
	damage := 99
	custom := WeaponType("PLASMA")
	MergeWeaponDef(custom, WeaponOverride{Damage: &damage})

	def := WeaponDef(custom)
	require.Equal(t, custom, def.ID)
	require.Equal(t, 99, def.Damage)
	require.Equal(t, DefaultWeaponDef().FireRate, def.FireRate)
}

func TestMergeWeaponDefEmptyOverride(t *testing.T) {
	LoadBuiltinWeapons()
	t.Cleanup(LoadBuiltinWeapons)

	before := WeaponDef(WeaponMultiple)
	MergeWeaponDef(WeaponMultiple, WeaponOverride{})
	require.Equal(t, before, WeaponDef(WeaponMultiple))
}
