// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 600
	ScreenHeight = 800
	MaxDeltaTime = 0.06

	PlayerSpeed       = 320.0 // пикселей в секунду
	PlayerRadius      = 14.0
	PlayerStartHealth = 100.0
	MuzzleOffset      = 18.0 // вылет снаряда перед кораблём

	ProjectileRadius = 4.0

	// Угол боковых выстрелов веерного оружия (в градусах).
	SpreadShotAngle = 10.0

	// Тайминги непрерывного луча.
	BeamVisualPersist  = 0.06 // минимальное время видимости луча
	BeamFlickerEpsilon = 0.02 // запас против мерцания на границе тика
	BeamRange          = 900.0
	BeamWidth          = 3.0

	DamageFlashDuration = 0.15

	EnemyRadius        = 12.0
	EnemySpeed         = 70.0
	EnemyHealth        = 50.0
	EnemyContactDamage = 15.0

	InitialSpawnInterval    = 1.6 // секунд между врагами в первой волне
	MinSpawnInterval        = 0.4
	SpawnIntervalDecrement  = 0.15
	EnemiesPerWave          = 6
	EnemiesIncrementPerWave = 2

	PowerUpRadius        = 9.0
	PowerUpFallSpeed     = 90.0
	PowerUpDropChance    = 0.18
	RapidFireMultiplier  = 0.5
	RapidFireDuration    = 6.0
	SpeedBoostMultiplier = 1.5
	SpeedBoostDuration   = 6.0

	IndicatorOffsetX = 16
	IndicatorOffsetY = 16
)

var (
	BackgroundColor = color.RGBA{12, 12, 24, 255}
	PlayerColor     = color.RGBA{90, 200, 250, 255}
	EnemyColor      = color.RGBA{220, 80, 80, 255}
	PowerUpColor    = color.RGBA{255, 215, 0, 255}
	TextColor       = color.RGBA{240, 240, 240, 255}
	HealthBarColor  = color.RGBA{50, 205, 50, 255}
	HealthBarEmpty  = color.RGBA{60, 60, 70, 255}
	DamageFlashTint = color.RGBA{255, 255, 255, 255}
)
