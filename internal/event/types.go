// internal/event/types.go
package event

import "lawn-defense/internal/types"

const (
	CellTypeChanged     EventType = "CellTypeChanged"     // Тип клетки изменился
	CellOccupiedChanged EventType = "CellOccupiedChanged" // Занятость клетки изменилась
	WeaponFired         EventType = "WeaponFired"         // Произошёл выстрел
	WeaponSwitched      EventType = "WeaponSwitched"      // Смена активного оружия
	BulletHit           EventType = "BulletHit"           // Снаряд попал в цель
	BulletExplosion     EventType = "BulletExplosion"     // Взрыв пушечного снаряда
	BulletDestroyed     EventType = "BulletDestroyed"     // Снаряд вернулся в пул
	PlantPlaced         EventType = "PlantPlaced"         // Растение посажено
	PlantRemoved        EventType = "PlantRemoved"        // Растение убрано
	EnemyDestroyed      EventType = "EnemyDestroyed"      // Враг уничтожен
	EnemyReachedGoal    EventType = "EnemyReachedGoal"    // Враг дошёл до базы
	WaveEnded           EventType = "WaveEnded"           // Волна закончилась
)

// CellTypePayload — данные события CellTypeChanged.
type CellTypePayload struct {
	Row, Col int
	OldType  int
	NewType  int
}

// CellOccupiedPayload — данные события CellOccupiedChanged.
type CellOccupiedPayload struct {
	Row, Col int
	Occupant types.EntityID // 0 — клетка освобождена
}

// WeaponFiredPayload — данные события WeaponFired.
type WeaponFiredPayload struct {
	Owner           types.EntityID
	WeaponType      string
	Damage          int
	BulletCount     int
	RemainingEnergy float64
}

// WeaponSwitchedPayload — данные события WeaponSwitched.
type WeaponSwitchedPayload struct {
	Owner   types.EntityID
	OldType string
	NewType string
}

// BulletHitPayload — данные события BulletHit.
type BulletHitPayload struct {
	Projectile types.EntityID
	Target     types.EntityID
	WeaponType string
	Damage     int
}

// BulletExplosionPayload — данные события BulletExplosion.
type BulletExplosionPayload struct {
	X, Y   float64
	Radius float64
	Damage int
}

// BulletDestroyedPayload — данные события BulletDestroyed.
type BulletDestroyedPayload struct {
	Projectile types.EntityID
	WeaponType string
	HitCount   int
}

// EnemyPayload — данные событий EnemyDestroyed и EnemyReachedGoal.
type EnemyPayload struct {
	Enemy types.EntityID
	DefID string
}
