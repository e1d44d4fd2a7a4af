package component

import "lawn-defense/internal/defs"

// Plant — посаженная турель, занимающая клетку решётки.
type Plant struct {
	Row, Col   int
	WeaponType defs.WeaponType
	Tag        string // Тег владельца: снаряды растения не бьют по своим
}
