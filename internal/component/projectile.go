// component/projectile.go
package component

import (
	"lawn-defense/internal/defs"
	"lawn-defense/internal/types"
)

// Projectile — состояние одного снаряда. Снаряды не уничтожаются, а
// возвращаются в пул контроллера; Active отличает летящий снаряд от
// лежащего в пуле.
type Projectile struct {
	WeaponType      defs.WeaponType
	Damage          int
	Speed           float64
	Lifetime        float64 // Секунды жизни с момента выстрела
	SpawnTime       float64 // Игровое время выстрела
	DirX, DirY      float64 // Единичный вектор направления
	OwnerID         types.EntityID
	OwnerTag        string
	Penetration     int
	ExplosionRadius float64
	IsLaser         bool
	TargetTags      []string // Белый список тегов целей; пустой — без фильтра
	HitCount        int
	Hit             map[types.EntityID]struct{} // Уже поражённые цели: урон не повторяется
	Active          bool
}

// ResetShot очищает пошаговое состояние перед возвратом в пул.
func (p *Projectile) ResetShot() {
	p.Active = false
	p.HitCount = 0
	if p.Hit != nil {
		clear(p.Hit)
	}
}

// AlreadyHit сообщает, получала ли цель урон от этого снаряда.
func (p *Projectile) AlreadyHit(target types.EntityID) bool {
	_, ok := p.Hit[target]
	return ok
}

// MarkHit регистрирует поражённую цель.
func (p *Projectile) MarkHit(target types.EntityID) {
	if p.Hit == nil {
		p.Hit = make(map[types.EntityID]struct{})
	}
	p.Hit[target] = struct{}{}
	p.HitCount++
}
