// internal/types/types.go
package types

// EntityID — уникальный идентификатор сущности. 0 зарезервирован как "пусто".
type EntityID uint64
