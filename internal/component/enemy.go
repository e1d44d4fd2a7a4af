package component

// Enemy представляет вражескую сущность.
type Enemy struct {
	DefID       string // ID из enemies.json
	Damage      int    // Урон базе при достижении цели
	Tag         string // Тег для фильтра целей снарядов
	ReachedGoal bool   // Достиг ли враг конца пути
}
