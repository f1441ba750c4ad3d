// internal/defs/types.go
package defs

// WeaponVariant identifies one of the discrete weapon behaviors.
type WeaponVariant string

const (
	WeaponNone    WeaponVariant = "NONE"
	WeaponBlaster WeaponVariant = "BLASTER"
	WeaponSpread  WeaponVariant = "SPREAD"
	WeaponPhaser  WeaponVariant = "PHASER"
	WeaponMissile WeaponVariant = "MISSILE"
	WeaponLaser   WeaponVariant = "LASER"
	WeaponShield  WeaponVariant = "SHIELD"
	WeaponRapid   WeaponVariant = "RAPID"
	WeaponSpeed   WeaponVariant = "SPEED"
)

// AllVariants lists every variant a definition must exist for.
// WeaponNone is deliberately absent: selecting it deactivates the weapon
// and never reaches the registry.
var AllVariants = []WeaponVariant{
	WeaponBlaster,
	WeaponSpread,
	WeaponPhaser,
	WeaponMissile,
	WeaponLaser,
	WeaponShield,
	WeaponRapid,
	WeaponSpeed,
}
