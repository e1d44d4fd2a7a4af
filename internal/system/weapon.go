// internal/system/weapon.go
package system

import (
	"lawn-defense/internal/component"
	"lawn-defense/internal/config"
	"lawn-defense/internal/defs"
	"lawn-defense/internal/entity"
	"lawn-defense/internal/event"
	"lawn-defense/internal/types"
	"lawn-defense/internal/utils"
)

// AimFunc выдаёт точку прицеливания для автоогня. ok == false означает
// "цели нет" — контроллер в этот тик не стреляет.
type AimFunc func() (x, y float64, ok bool)

// WeaponController — машина состояний стрельбы одного владельца:
// энергия, кулдауны, пулы снарядов по типам оружия и набор летящих
// снарядов. Продвигается строго одним вызовом Advance на тик.
type WeaponController struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher

	ownerID  types.EntityID
	ownerTag string

	current     defs.WeaponType
	energy      float64
	maxEnergy   float64
	regenRate   float64
	now         float64
	lastFire    float64
	cooldownEnd float64
	autoFire    bool
	aim         AimFunc
	targetTags  []string

	pools  map[defs.WeaponType][]types.EntityID
	active map[types.EntityID]struct{}
}

// NewWeaponController создаёт контроллер без зарегистрированных шаблонов:
// стрелять он сможет только после RegisterTemplate для текущего типа.
func NewWeaponController(ecs *entity.ECS, dispatcher *event.Dispatcher, ownerID types.EntityID, ownerTag string, start defs.WeaponType) *WeaponController {
	return &WeaponController{
		ecs:        ecs,
		dispatcher: dispatcher,
		ownerID:    ownerID,
		ownerTag:   ownerTag,
		current:    start,
		energy:     config.MaxEnergy,
		maxEnergy:  config.MaxEnergy,
		regenRate:  config.EnergyRegenRate,
		lastFire:   -1e9,
		pools:      make(map[defs.WeaponType][]types.EntityID),
		active:     make(map[types.EntityID]struct{}),
	}
}

// RegisterTemplate заводит пул снарядов для типа оружия. Без шаблона
// CanFire и SwitchWeapon для этого типа возвращают false.
func (c *WeaponController) RegisterTemplate(t defs.WeaponType) {
	if _, exists := c.pools[t]; exists {
		return
	}
	pool := make([]types.EntityID, 0, config.ProjectilePoolSize)
	for i := 0; i < config.ProjectilePoolSize; i++ {
		pool = append(pool, c.newPooledProjectile())
	}
	c.pools[t] = pool
}

// HasTemplate проверяет, зарегистрирован ли пул для типа
func (c *WeaponController) HasTemplate(t defs.WeaponType) bool {
	_, ok := c.pools[t]
	return ok
}

func (c *WeaponController) newPooledProjectile() types.EntityID {
	id := c.ecs.NewEntity()
	c.ecs.Positions[id] = &component.Position{}
	c.ecs.Projectiles[id] = &component.Projectile{OwnerID: c.ownerID}
	c.ecs.Renderables[id] = &component.Renderable{
		Color:  config.ProjectileColor,
		Radius: config.ProjectileRadius,
	}
	return id
}

// SetAutoFire включает автоматическую стрельбу в Advance
func (c *WeaponController) SetAutoFire(enabled bool) { c.autoFire = enabled }

// SetAim задаёт источник точки прицеливания для автоогня
func (c *WeaponController) SetAim(aim AimFunc) { c.aim = aim }

// SetTargetTags задаёт белый список тегов целей. Пустой список — любые
// цели, кроме своих.
func (c *WeaponController) SetTargetTags(tags []string) { c.targetTags = tags }

// SetRegenRate переопределяет скорость восстановления энергии
// (бонусные клетки уровня).
func (c *WeaponController) SetRegenRate(rate float64) { c.regenRate = rate }

// Energy возвращает текущий запас энергии
func (c *WeaponController) Energy() float64 { return c.energy }

// CurrentWeapon возвращает активный тип оружия
func (c *WeaponController) CurrentWeapon() defs.WeaponType { return c.current }

// OwnerID возвращает сущность-владельца контроллера
func (c *WeaponController) OwnerID() types.EntityID { return c.ownerID }

// ActiveCount возвращает число летящих снарядов
func (c *WeaponController) ActiveCount() int { return len(c.active) }

// Advance — один тик контроллера: регенерация энергии, проводка летящих
// снарядов (просрочка — в пул, иначе перенос по направлению) и автоогонь.
func (c *WeaponController) Advance(deltaTime float64) {
	c.now += deltaTime
	c.energy = utils.Clamp(c.energy+c.regenRate*deltaTime, 0, c.maxEnergy)

	for id := range c.active {
		proj := c.ecs.Projectiles[id]
		if proj == nil {
			delete(c.active, id)
			continue
		}
		if c.now-proj.SpawnTime > proj.Lifetime {
			c.Release(id)
			continue
		}
		if pos := c.ecs.Positions[id]; pos != nil {
			pos.X += proj.DirX * proj.Speed * deltaTime
			pos.Y += proj.DirY * proj.Speed * deltaTime
		}
	}

	if c.autoFire && c.CanFire() {
		if c.aim != nil {
			if x, y, ok := c.aim(); ok {
				c.FireAt(x, y)
			}
		} else {
			c.Fire()
		}
	}
}

// CanFire проверяет кулдаун, скорострельность, энергию и наличие шаблона
func (c *WeaponController) CanFire() bool {
	def := defs.WeaponDef(c.current)
	if c.now < c.cooldownEnd {
		return false
	}
	if def.FireRate > 0 && c.now-c.lastFire < 1/def.FireRate {
		return false
	}
	if c.energy < def.EnergyCost {
		return false
	}
	return c.HasTemplate(c.current)
}

// Fire стреляет в направлении по умолчанию (вправо, в сторону спавна)
func (c *WeaponController) Fire() bool {
	return c.fire(1, 0)
}

// FireAt стреляет в сторону мировой точки (x, y)
func (c *WeaponController) FireAt(x, y float64) bool {
	pos := c.ecs.Positions[c.ownerID]
	if pos == nil {
		return c.fire(1, 0)
	}
	dirX, dirY := utils.Normalize(x-pos.X, y-pos.Y)
	if dirX == 0 && dirY == 0 {
		dirX = 1
	}
	return c.fire(dirX, dirY)
}

// fire выполняет выстрел по паттерну текущего оружия. Отказ — тихий
// no-op: невозможность выстрелить не ошибка.
func (c *WeaponController) fire(dirX, dirY float64) bool {
	if !c.CanFire() {
		return false
	}
	def := defs.WeaponDef(c.current)

	c.energy -= def.EnergyCost
	c.cooldownEnd = c.now + def.Cooldown
	c.lastFire = c.now

	count := 1
	switch c.current {
	case defs.WeaponMultiple:
		count = def.BulletCount
		if count < 1 {
			count = 1
		}
		if count == 1 {
			c.spawnProjectile(def, dirX, dirY)
		} else {
			// Симметричный веер: равные шаги на полную ширину разлёта
			step := def.SpreadAngle / float64(count-1)
			start := -def.SpreadAngle / 2
			for i := 0; i < count; i++ {
				angle := utils.DegToRad(start + float64(i)*step)
				x, y := utils.Rotate(dirX, dirY, angle)
				c.spawnProjectile(def, x, y)
			}
		}
	default:
		c.spawnProjectile(def, dirX, dirY)
	}

	if c.dispatcher != nil {
		c.dispatcher.Dispatch(event.Event{
			Type: event.WeaponFired,
			Data: event.WeaponFiredPayload{
				Owner:           c.ownerID,
				WeaponType:      string(c.current),
				Damage:          def.Damage,
				BulletCount:     count,
				RemainingEnergy: c.energy,
			},
		})
	}
	return true
}

// spawnProjectile берёт снаряд из пула и настраивает его под выстрел
func (c *WeaponController) spawnProjectile(def defs.WeaponDefinition, dirX, dirY float64) {
	id := c.acquire(c.current)
	proj := c.ecs.Projectiles[id]

	proj.WeaponType = c.current
	proj.Damage = def.Damage
	proj.Speed = def.BulletSpeed
	proj.Lifetime = def.BulletLifetime
	proj.SpawnTime = c.now
	proj.DirX = dirX
	proj.DirY = dirY
	proj.OwnerID = c.ownerID
	proj.OwnerTag = c.ownerTag
	proj.Penetration = def.Penetration
	proj.ExplosionRadius = def.ExplosionRadius
	proj.IsLaser = false
	proj.TargetTags = c.targetTags

	// Умолчания по типу оружия, когда конфиг молчит
	switch c.current {
	case defs.WeaponCannon:
		if proj.ExplosionRadius == 0 {
			proj.ExplosionRadius = 50
		}
	case defs.WeaponMultiple:
		if proj.Penetration == 0 {
			proj.Penetration = 1
		}
	case defs.WeaponLaser:
		proj.IsLaser = true
		if proj.Penetration == 0 {
			proj.Penetration = 3
		}
	}

	if ownerPos := c.ecs.Positions[c.ownerID]; ownerPos != nil {
		if pos := c.ecs.Positions[id]; pos != nil {
			pos.X = ownerPos.X
			pos.Y = ownerPos.Y
		}
	}
	if r := c.ecs.Renderables[id]; r != nil {
		if proj.IsLaser {
			r.Color = config.LaserColor
		} else {
			r.Color = config.ProjectileColor
		}
	}

	proj.Active = true
	c.active[id] = struct{}{}
}

// acquire ищет свободный снаряд в пуле; если свободных нет, пул растёт.
// Пул никогда не сжимается.
func (c *WeaponController) acquire(t defs.WeaponType) types.EntityID {
	pool := c.pools[t]
	for _, id := range pool {
		if proj := c.ecs.Projectiles[id]; proj != nil && !proj.Active {
			return id
		}
	}
	id := c.newPooledProjectile()
	c.pools[t] = append(pool, id)
	return id
}

// Release возвращает снаряд в пул: деактивация, сброс набора поражённых
// целей, уведомление BulletDestroyed. Сущность не уничтожается.
func (c *WeaponController) Release(id types.EntityID) {
	proj := c.ecs.Projectiles[id]
	if proj == nil || !proj.Active {
		delete(c.active, id)
		return
	}
	hitCount := proj.HitCount
	weaponType := proj.WeaponType
	proj.ResetShot()
	delete(c.active, id)

	if c.dispatcher != nil {
		c.dispatcher.Dispatch(event.Event{
			Type: event.BulletDestroyed,
			Data: event.BulletDestroyedPayload{
				Projectile: id,
				WeaponType: string(weaponType),
				HitCount:   hitCount,
			},
		})
	}
}

// ReleaseAll возвращает в пул все летящие снаряды (снос владельца)
func (c *WeaponController) ReleaseAll() {
	for id := range c.active {
		c.Release(id)
	}
}

// SwitchWeapon меняет активный тип. Отказ (false) — тот же тип или нет
// шаблона. Энергия и кулдауны при смене не сбрасываются.
func (c *WeaponController) SwitchWeapon(t defs.WeaponType) bool {
	if t == c.current || !c.HasTemplate(t) {
		return false
	}
	old := c.current
	c.current = t
	if c.dispatcher != nil {
		c.dispatcher.Dispatch(event.Event{
			Type: event.WeaponSwitched,
			Data: event.WeaponSwitchedPayload{
				Owner:   c.ownerID,
				OldType: string(old),
				NewType: string(t),
			},
		})
	}
	return true
}

// WeaponSystem продвигает все оружейные контроллеры раз в тик.
type WeaponSystem struct {
	controllers map[types.EntityID]*WeaponController
}

func NewWeaponSystem() *WeaponSystem {
	return &WeaponSystem{
		controllers: make(map[types.EntityID]*WeaponController),
	}
}

// Attach регистрирует контроллер владельца
func (s *WeaponSystem) Attach(owner types.EntityID, c *WeaponController) {
	s.controllers[owner] = c
}

// Detach снимает контроллер, возвращая его снаряды в пул
func (s *WeaponSystem) Detach(owner types.EntityID) {
	if c, ok := s.controllers[owner]; ok {
		c.ReleaseAll()
		delete(s.controllers, owner)
	}
}

// Controller возвращает контроллер владельца либо nil
func (s *WeaponSystem) Controller(owner types.EntityID) *WeaponController {
	return s.controllers[owner]
}

func (s *WeaponSystem) Update(deltaTime float64) {
	for _, c := range s.controllers {
		c.Advance(deltaTime)
	}
}
