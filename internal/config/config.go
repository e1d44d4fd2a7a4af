// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1200
	ScreenHeight = 900
	MaxDeltaTime = 0.06

	// Сетка газона по умолчанию (переопределяется уровнем)
	GridRows      = 5
	GridCols      = 9
	CellWidth     = 80.0
	CellHeight    = 100.0
	GridStartX    = 120.0 // левый край сетки в мировых координатах
	GridStartY    = 650.0 // верхний край сетки (мировая ось Y направлена вверх)
	GridScreenTop = 150.0 // экранная Y верхнего края сетки

	// Энергия оружейного контроллера
	MaxEnergy       = 100.0
	EnergyRegenRate = 10.0 // единиц в секунду

	// Пул снарядов
	ProjectilePoolSize = 30
	ProjectileRadius   = 5.0

	// Урон взрыва как доля прямого урона (пушечный снаряд)
	ExplosionDamageFactor = 0.7

	PlantRadius = 26.0

	BaseHealth = 10

	ClickDebounceTime = 100 // миллисекунды

	// Пауза между волнами после зачистки поля
	WaveBreakDuration = 4.0

	IndicatorOffsetX = 30
	IndicatorRadius  = 10.0

	SpeedButtonOffsetX = 80
	SpeedButtonY       = 30
	SpeedButtonSize    = 18.0
)

var (
	BackgroundColor = color.RGBA{24, 28, 20, 255}

	// Цвета клеток по типу
	EmptyCellColor     = color.RGBA{46, 52, 40, 255}
	PlantZoneColor     = color.RGBA{58, 86, 44, 255}
	PathCellColor      = color.RGBA{108, 96, 70, 255}
	SpawnCellColor     = color.RGBA{120, 54, 48, 255}
	GoalCellColor      = color.RGBA{52, 76, 110, 255}
	ObstacleCellColor  = color.RGBA{34, 34, 36, 255}
	SpecialCellColor   = color.RGBA{86, 64, 110, 255}
	CellStrokeColor    = color.RGBA{20, 22, 18, 255}
	PlantColor         = color.RGBA{104, 180, 74, 255}
	PlantStrokeColor   = color.RGBA{230, 240, 220, 255}
	ProjectileColor    = color.RGBA{240, 224, 120, 255}
	LaserColor         = color.RGBA{150, 220, 255, 255}
	ExplosionColor     = color.RGBA{255, 140, 60, 160}
	UIColorBlue        = color.RGBA{90, 150, 230, 255}
	UIColorRed         = color.RGBA{220, 70, 70, 255}
	UIColorGreen       = color.RGBA{110, 200, 110, 255}
	TextLightColor     = color.RGBA{230, 230, 230, 255}
	PauseOverlayColor  = color.RGBA{0, 0, 0, 128}
	EnergyBarBackColor = color.RGBA{40, 40, 40, 200}
)
