package defs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-vertical-shooter/internal/defs"
)

func TestDefaultsCoverEveryVariant(t *testing.T) {
	defs.UseDefaultWeaponDefinitions()

	for _, variant := range defs.AllVariants {
		def, err := defs.GetWeaponDefinition(variant)
		require.NoError(t, err, "variant %s must have a definition", variant)
		assert.Equal(t, variant, def.Variant)
		assert.Greater(t, def.ProjectileVelocity, 0.0)
		assert.GreaterOrEqual(t, def.DamageOnHit, 0.0)
		assert.GreaterOrEqual(t, def.DamagePerSecond, 0.0)
		assert.GreaterOrEqual(t, def.DelayBetweenShots, 0.0)
	}
}

func TestGetWeaponDefinitionUnknownVariant(t *testing.T) {
	defs.UseDefaultWeaponDefinitions()

	_, err := defs.GetWeaponDefinition(defs.WeaponVariant("PLASMA"))
	assert.ErrorIs(t, err, defs.ErrWeaponNotFound)
}

func TestLoadWeaponDefinitions(t *testing.T) {
	data := `[
		{"variant": "BLASTER", "name": "Blaster", "damage_on_hit": 25, "delay_between_shots": 0.22, "projectile_velocity": 520},
		{"variant": "LASER", "name": "Laser", "damage_per_second": 90, "delay_between_shots": 0.1, "projectile_velocity": 1}
	]`
	path := filepath.Join(t.TempDir(), "weapons.json")
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	require.NoError(t, defs.LoadWeaponDefinitions(path))

	blaster, err := defs.GetWeaponDefinition(defs.WeaponBlaster)
	require.NoError(t, err)
	assert.Equal(t, 25.0, blaster.DamageOnHit)
	assert.Equal(t, 0.22, blaster.DelayBetweenShots)

	laser, err := defs.GetWeaponDefinition(defs.WeaponLaser)
	require.NoError(t, err)
	assert.Equal(t, 90.0, laser.DamagePerSecond)

	// Варианты, которых нет в файле, не подхватываются из дефолтов.
	_, err = defs.GetWeaponDefinition(defs.WeaponSpread)
	assert.ErrorIs(t, err, defs.ErrWeaponNotFound)
}

func TestLoadWeaponDefinitionsMissingFile(t *testing.T) {
	err := defs.LoadWeaponDefinitions(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
