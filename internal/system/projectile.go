// internal/system/projectile.go
package system

import (
	"math"

	"lawn-defense/internal/component"
	"lawn-defense/internal/config"
	"lawn-defense/internal/entity"
	"lawn-defense/internal/event"
	"lawn-defense/internal/types"
)

// ProjectileSystem разрешает столкновения летящих снарядов с врагами и
// применяет политику урона по типу оружия. Кинематику снарядов ведёт
// WeaponController, здесь — только попадания.
type ProjectileSystem struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
	weapons    *WeaponSystem
}

func NewProjectileSystem(ecs *entity.ECS, dispatcher *event.Dispatcher, weapons *WeaponSystem) *ProjectileSystem {
	return &ProjectileSystem{
		ecs:        ecs,
		dispatcher: dispatcher,
		weapons:    weapons,
	}
}

func (s *ProjectileSystem) Update(deltaTime float64) {
	for id, proj := range s.ecs.Projectiles {
		if !proj.Active {
			continue
		}
		pos := s.ecs.Positions[id]
		if pos == nil {
			continue
		}
		for targetID := range s.ecs.Enemies {
			if !s.collides(pos, targetID) {
				continue
			}
			if !s.resolveHit(id, proj, pos, targetID) {
				continue
			}
			// Снаряд без запаса пробития уходит в пул после первого
			// засчитанного попадания
			if proj.Penetration <= 0 || proj.HitCount >= proj.Penetration {
				s.recycle(id, proj)
				break
			}
		}
	}
}

// collides — круговая проверка пересечения снаряда с целью
func (s *ProjectileSystem) collides(pos *component.Position, targetID types.EntityID) bool {
	targetPos := s.ecs.Positions[targetID]
	if targetPos == nil {
		return false
	}
	radius := config.ProjectileRadius
	if r := s.ecs.Renderables[targetID]; r != nil {
		radius += float64(r.Radius)
	}
	return math.Hypot(targetPos.X-pos.X, targetPos.Y-pos.Y) <= radius
}

// resolveHit применяет одно попадание. Возвращает false, если цель
// отфильтрована (уже поражена, своя или не в белом списке) и попадание
// не засчитано.
func (s *ProjectileSystem) resolveHit(id types.EntityID, proj *component.Projectile, pos *component.Position, targetID types.EntityID) bool {
	enemy := s.ecs.Enemies[targetID]
	if enemy == nil {
		return false
	}
	if proj.AlreadyHit(targetID) {
		return false
	}
	if enemy.Tag != "" && enemy.Tag == proj.OwnerTag {
		return false // Свои цели не поражаются
	}
	if len(proj.TargetTags) > 0 && !containsTag(proj.TargetTags, enemy.Tag) {
		return false
	}

	proj.MarkHit(targetID)
	s.applyDamage(targetID, proj.Damage)
	if s.dispatcher != nil {
		s.dispatcher.Dispatch(event.Event{
			Type: event.BulletHit,
			Data: event.BulletHitPayload{
				Projectile: id,
				Target:     targetID,
				WeaponType: string(proj.WeaponType),
				Damage:     proj.Damage,
			},
		})
	}

	if proj.ExplosionRadius > 0 {
		s.explode(proj, pos, targetID)
	}
	return true
}

// explode раздаёт осколочный урон всем целям в радиусе от точки
// попадания. Прямая цель уже получила полный урон и исключается.
func (s *ProjectileSystem) explode(proj *component.Projectile, at *component.Position, directTarget types.EntityID) {
	splash := int(math.Round(float64(proj.Damage) * config.ExplosionDamageFactor))
	if s.dispatcher != nil {
		s.dispatcher.Dispatch(event.Event{
			Type: event.BulletExplosion,
			Data: event.BulletExplosionPayload{
				X:      at.X,
				Y:      at.Y,
				Radius: proj.ExplosionRadius,
				Damage: splash,
			},
		})
	}
	for targetID, enemy := range s.ecs.Enemies {
		if targetID == directTarget {
			continue
		}
		if enemy.Tag != "" && enemy.Tag == proj.OwnerTag {
			continue
		}
		if len(proj.TargetTags) > 0 && !containsTag(proj.TargetTags, enemy.Tag) {
			continue
		}
		targetPos := s.ecs.Positions[targetID]
		if targetPos == nil {
			continue
		}
		if math.Hypot(targetPos.X-at.X, targetPos.Y-at.Y) <= proj.ExplosionRadius {
			s.applyDamage(targetID, splash)
		}
	}
}

func (s *ProjectileSystem) applyDamage(targetID types.EntityID, damage int) {
	health := s.ecs.Healths[targetID]
	if health == nil {
		return
	}
	health.Value -= damage
	if health.Value > 0 {
		return
	}
	enemy := s.ecs.Enemies[targetID]
	defID := ""
	if enemy != nil {
		defID = enemy.DefID
	}
	s.ecs.RemoveEntity(targetID)
	if s.dispatcher != nil {
		s.dispatcher.Dispatch(event.Event{
			Type: event.EnemyDestroyed,
			Data: event.EnemyPayload{Enemy: targetID, DefID: defID},
		})
	}
}

// recycle возвращает снаряд владельцу; если владелец уже снесён,
// деактивирует снаряд на месте.
func (s *ProjectileSystem) recycle(id types.EntityID, proj *component.Projectile) {
	if c := s.weapons.Controller(proj.OwnerID); c != nil {
		c.Release(id)
		return
	}
	proj.ResetShot()
}

func containsTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}
