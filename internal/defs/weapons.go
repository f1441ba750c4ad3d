// internal/defs/weapons.go
package defs

import "image/color"

// WeaponDefinition holds all the static data for a specific weapon variant.
type WeaponDefinition struct {
	Variant            WeaponVariant `json:"variant"`
	Name               string        `json:"name"`
	DamageOnHit        float64       `json:"damage_on_hit"`
	DamagePerSecond    float64       `json:"damage_per_second"`
	DelayBetweenShots  float64       `json:"delay_between_shots"` // seconds
	ProjectileVelocity float64       `json:"projectile_velocity"` // pixels per second
	Visuals            Visuals       `json:"visuals"`
	ProjectileVisuals  Visuals       `json:"projectile_visuals"`
}

// Visuals contains parameters for rendering a weapon or its projectile.
type Visuals struct {
	Color        color.RGBA `json:"color"`
	RadiusFactor float64    `json:"radius_factor"`
}

// defaultWeaponDefinitions повторяет assets/weapons.json и используется,
// когда файл определений недоступен (например, в тестах).
var defaultWeaponDefinitions = []WeaponDefinition{
	{
		Variant:            WeaponBlaster,
		Name:               "Blaster",
		DamageOnHit:        25,
		DelayBetweenShots:  0.22,
		ProjectileVelocity: 520,
		Visuals:            Visuals{Color: color.RGBA{90, 200, 250, 255}, RadiusFactor: 1.0},
		ProjectileVisuals:  Visuals{Color: color.RGBA{120, 220, 255, 255}, RadiusFactor: 1.0},
	},
	{
		Variant:            WeaponSpread,
		Name:               "Spread",
		DamageOnHit:        18,
		DelayBetweenShots:  0.34,
		ProjectileVelocity: 460,
		Visuals:            Visuals{Color: color.RGBA{120, 250, 140, 255}, RadiusFactor: 1.0},
		ProjectileVisuals:  Visuals{Color: color.RGBA{150, 255, 170, 255}, RadiusFactor: 0.9},
	},
	{
		Variant:            WeaponPhaser,
		Name:               "Phaser",
		DamageOnHit:        30,
		DelayBetweenShots:  0.3,
		ProjectileVelocity: 600,
		Visuals:            Visuals{Color: color.RGBA{200, 120, 255, 255}, RadiusFactor: 1.0},
		ProjectileVisuals:  Visuals{Color: color.RGBA{220, 150, 255, 255}, RadiusFactor: 1.1},
	},
	{
		Variant:            WeaponMissile,
		Name:               "Missile",
		DamageOnHit:        60,
		DelayBetweenShots:  0.8,
		ProjectileVelocity: 260,
		Visuals:            Visuals{Color: color.RGBA{255, 160, 90, 255}, RadiusFactor: 1.0},
		ProjectileVisuals:  Visuals{Color: color.RGBA{255, 190, 120, 255}, RadiusFactor: 1.4},
	},
	{
		Variant:            WeaponLaser,
		Name:               "Laser",
		DamagePerSecond:    90,
		DelayBetweenShots:  0.1,
		ProjectileVelocity: 1, // луч мгновенный, поле номинальное
		Visuals:            Visuals{Color: color.RGBA{255, 80, 80, 255}, RadiusFactor: 1.0},
		ProjectileVisuals:  Visuals{Color: color.RGBA{255, 110, 110, 255}, RadiusFactor: 1.0},
	},
	{
		Variant:            WeaponShield,
		Name:               "Shield",
		DelayBetweenShots:  1.0,
		ProjectileVelocity: 1,
		Visuals:            Visuals{Color: color.RGBA{110, 110, 255, 255}, RadiusFactor: 1.0},
	},
	{
		Variant:            WeaponRapid,
		Name:               "Rapid",
		DamageOnHit:        12,
		DelayBetweenShots:  0.08,
		ProjectileVelocity: 560,
		Visuals:            Visuals{Color: color.RGBA{255, 240, 120, 255}, RadiusFactor: 1.0},
		ProjectileVisuals:  Visuals{Color: color.RGBA{255, 250, 160, 255}, RadiusFactor: 0.8},
	},
	{
		Variant:            WeaponSpeed,
		Name:               "Speed",
		DelayBetweenShots:  1.0,
		ProjectileVelocity: 1,
		Visuals:            Visuals{Color: color.RGBA{140, 255, 230, 255}, RadiusFactor: 1.0},
	},
}
