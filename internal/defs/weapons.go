// internal/defs/weapons.go
package defs

// WeaponDefinition holds all the static numbers for a weapon type.
type WeaponDefinition struct {
	ID              WeaponType `json:"id"`
	Name            string     `json:"name"`
	Damage          int        `json:"damage"`
	FireRate        float64    `json:"fire_rate"` // Shots per second
	BulletSpeed     float64    `json:"bullet_speed"`
	BulletLifetime  float64    `json:"bullet_lifetime"` // Seconds
	Range           float64    `json:"range"`           // World units, used for targeting
	BulletCount     int        `json:"bullet_count"`
	SpreadAngle     float64    `json:"spread_angle"` // Total fan width in degrees
	Penetration     int        `json:"penetration"`
	ExplosionRadius float64    `json:"explosion_radius"`
	EnergyCost      float64    `json:"energy_cost"`
	Cooldown        float64    `json:"cooldown"` // Seconds
}

// WeaponOverride is a partial WeaponDefinition. Nil fields are left
// untouched when merged, so a level can tweak a single number.
type WeaponOverride struct {
	Damage          *int     `json:"damage,omitempty"`
	FireRate        *float64 `json:"fire_rate,omitempty"`
	BulletSpeed     *float64 `json:"bullet_speed,omitempty"`
	BulletLifetime  *float64 `json:"bullet_lifetime,omitempty"`
	Range           *float64 `json:"range,omitempty"`
	BulletCount     *int     `json:"bullet_count,omitempty"`
	SpreadAngle     *float64 `json:"spread_angle,omitempty"`
	Penetration     *int     `json:"penetration,omitempty"`
	ExplosionRadius *float64 `json:"explosion_radius,omitempty"`
	EnergyCost      *float64 `json:"energy_cost,omitempty"`
	Cooldown        *float64 `json:"cooldown,omitempty"`
}

// WeaponLibrary is the library of all weapon definitions, mapped by type.
var WeaponLibrary map[WeaponType]WeaponDefinition

// DefaultWeaponDef returns the hard-coded fallback config. Unregistered
// weapon types fall back to it instead of failing the caller.
func DefaultWeaponDef() WeaponDefinition {
	return WeaponDefinition{
		ID:             WeaponNormal,
		Name:           "Pea Shooter",
		Damage:         20,
		FireRate:       1.5,
		BulletSpeed:    300,
		BulletLifetime: 3.0,
		Range:          600,
		BulletCount:    1,
		EnergyCost:     5,
		Cooldown:       0.2,
	}
}

// builtinWeaponDefs covers every weapon type so the game can run without
// a definitions file on disk.
func builtinWeaponDefs() []WeaponDefinition {
	return []WeaponDefinition{
		DefaultWeaponDef(),
		{
			ID:              WeaponCannon,
			Name:            "Nut Cannon",
			Damage:          50,
			FireRate:        0.5,
			BulletSpeed:     220,
			BulletLifetime:  4.0,
			Range:           600,
			BulletCount:     1,
			ExplosionRadius: 50,
			EnergyCost:      20,
			Cooldown:        1.0,
		},
		{
			ID:             WeaponMultiple,
			Name:           "Split Pod",
			Damage:         12,
			FireRate:       1.0,
			BulletSpeed:    280,
			BulletLifetime: 2.5,
			Range:          500,
			BulletCount:    3,
			SpreadAngle:    30,
			Penetration:    1,
			EnergyCost:     12,
			Cooldown:       0.5,
		},
		{
			ID:             WeaponLaser,
			Name:           "Beam Stalk",
			Damage:         15,
			FireRate:       0.8,
			BulletSpeed:    500,
			BulletLifetime: 1.5,
			Range:          700,
			BulletCount:    1,
			Penetration:    3,
			EnergyCost:     25,
			Cooldown:       1.2,
		},
	}
}

// LoadBuiltinWeapons fills the library from the built-in table.
func LoadBuiltinWeapons() {
	WeaponLibrary = make(map[WeaponType]WeaponDefinition)
	for _, def := range builtinWeaponDefs() {
		WeaponLibrary[def.ID] = def
	}
}

// WeaponDef looks up a weapon definition by type, falling back to the
// default config when the type is not registered.
func WeaponDef(t WeaponType) WeaponDefinition {
	if def, ok := WeaponLibrary[t]; ok {
		return def
	}
	return DefaultWeaponDef()
}

// MergeWeaponDef applies a partial override onto the stored definition,
// field by field, leaving unspecified fields untouched.
func MergeWeaponDef(t WeaponType, override WeaponOverride) {
	def := WeaponDef(t)
	if override.Damage != nil {
		def.Damage = *override.Damage
	}
	if override.FireRate != nil {
		def.FireRate = *override.FireRate
	}
	if override.BulletSpeed != nil {
		def.BulletSpeed = *override.BulletSpeed
	}
	if override.BulletLifetime != nil {
		def.BulletLifetime = *override.BulletLifetime
	}
	if override.Range != nil {
		def.Range = *override.Range
	}
	if override.BulletCount != nil {
		def.BulletCount = *override.BulletCount
	}
	if override.SpreadAngle != nil {
		def.SpreadAngle = *override.SpreadAngle
	}
	if override.Penetration != nil {
		def.Penetration = *override.Penetration
	}
	if override.ExplosionRadius != nil {
		def.ExplosionRadius = *override.ExplosionRadius
	}
	if override.EnergyCost != nil {
		def.EnergyCost = *override.EnergyCost
	}
	if override.Cooldown != nil {
		def.Cooldown = *override.Cooldown
	}
	if WeaponLibrary == nil {
		WeaponLibrary = make(map[WeaponType]WeaponDefinition)
	}
	def.ID = t
	WeaponLibrary[t] = def
}
