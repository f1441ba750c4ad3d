package system_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-vertical-shooter/internal/component"
	"go-vertical-shooter/internal/defs"
	"go-vertical-shooter/internal/entity"
	"go-vertical-shooter/internal/event"
	"go-vertical-shooter/internal/system"
	"go-vertical-shooter/internal/types"
	"go-vertical-shooter/pkg/geom"
)

const testOwner = types.EntityID(1)

type weaponFixture struct {
	ecs          *entity.ECS
	clock        *fakeClock
	instantiator *recordingInstantiator
	raycaster    *fakeRayCaster
	directory    *fakeDirectory
	modifiers    *fakeModifiers
	dispatcher   *event.Dispatcher
	weapons      *system.WeaponSystem
}

func newWeaponFixture(t *testing.T, definitions ...defs.WeaponDefinition) *weaponFixture {
	t.Helper()

	f := &weaponFixture{
		ecs:          entity.NewECS(),
		clock:        &fakeClock{delta: 1.0 / 60.0},
		instantiator: newRecordingInstantiator(),
		raycaster:    &fakeRayCaster{},
		directory:    newFakeDirectory(),
		modifiers:    &fakeModifiers{},
		dispatcher:   event.NewDispatcher(),
	}
	f.weapons = system.NewWeaponSystem(f.ecs, newFakeRegistry(definitions...),
		f.instantiator, f.raycaster, f.directory, f.modifiers, f.clock, f.dispatcher)

	f.ecs.Positions[testOwner] = &component.Position{X: 300, Y: 700}
	return f
}

func blasterDef() defs.WeaponDefinition {
	return defs.WeaponDefinition{
		Variant:            defs.WeaponBlaster,
		DamageOnHit:        1,
		DelayBetweenShots:  0.2,
		ProjectileVelocity: 50,
	}
}

func spreadDef() defs.WeaponDefinition {
	return defs.WeaponDefinition{
		Variant:            defs.WeaponSpread,
		DamageOnHit:        1,
		DelayBetweenShots:  0.3,
		ProjectileVelocity: 60,
	}
}

func laserDef() defs.WeaponDefinition {
	return defs.WeaponDefinition{
		Variant:            defs.WeaponLaser,
		DamagePerSecond:    20,
		DelayBetweenShots:  0.1,
		ProjectileVelocity: 1,
	}
}

// Scenario from the blaster cadence contract: delay 0.2s, velocity 50.
func TestBlasterFireScenario(t *testing.T) {
	f := newWeaponFixture(t, blasterDef())
	require.NoError(t, f.weapons.SetVariant(testOwner, defs.WeaponBlaster))

	// t=0: eligible, one projectile straight along the barrel axis.
	f.weapons.Fire(testOwner)
	require.Len(t, f.instantiator.commands, 1)
	cmd := f.instantiator.commands[0]
	assert.InDelta(t, 0.0, cmd.Velocity.X, 1e-9)
	assert.InDelta(t, -50.0, cmd.Velocity.Y, 1e-9)
	assert.InDelta(t, 50.0, cmd.Velocity.Length(), 1e-9)
	assert.Zero(t, cmd.RelativeAngle)

	// t=0.1: gated, no side effects of any kind.
	f.clock.now = 0.1
	f.weapons.Fire(testOwner)
	assert.Len(t, f.instantiator.commands, 1)

	// t=0.25: cadence elapsed.
	f.clock.now = 0.25
	f.weapons.Fire(testOwner)
	assert.Len(t, f.instantiator.commands, 2)
}

func TestCadenceHonorsDelayMultiplier(t *testing.T) {
	f := newWeaponFixture(t, blasterDef())
	f.modifiers.multiplier = 0.5
	require.NoError(t, f.weapons.SetVariant(testOwner, defs.WeaponBlaster))

	f.weapons.Fire(testOwner)
	require.Len(t, f.instantiator.commands, 1)

	// d*m = 0.1: still gated just before, eligible right at the boundary.
	f.clock.now = 0.099
	f.weapons.Fire(testOwner)
	assert.Len(t, f.instantiator.commands, 1)

	f.clock.now = 0.1
	f.weapons.Fire(testOwner)
	assert.Len(t, f.instantiator.commands, 2)
}

func TestSpreadFiresThreeProjectiles(t *testing.T) {
	f := newWeaponFixture(t, spreadDef())
	require.NoError(t, f.weapons.SetVariant(testOwner, defs.WeaponSpread))

	f.weapons.Fire(testOwner)
	require.Len(t, f.instantiator.commands, 3)

	center := f.instantiator.commands[0]
	right := f.instantiator.commands[1]
	left := f.instantiator.commands[2]

	tenDeg := geom.DegToRad(10)
	assert.Zero(t, center.RelativeAngle)
	assert.InDelta(t, +tenDeg, right.RelativeAngle, 1e-9)
	assert.InDelta(t, -tenDeg, left.RelativeAngle, 1e-9)

	// Side velocities are the center velocity rotated by exactly ±10°.
	wantRight := center.Velocity.Rotate(tenDeg)
	wantLeft := center.Velocity.Rotate(-tenDeg)
	assert.InDelta(t, wantRight.X, right.Velocity.X, 1e-9)
	assert.InDelta(t, wantRight.Y, right.Velocity.Y, 1e-9)
	assert.InDelta(t, wantLeft.X, left.Velocity.X, 1e-9)
	assert.InDelta(t, wantLeft.Y, left.Velocity.Y, 1e-9)

	// All three keep the configured speed.
	for _, cmd := range f.instantiator.commands {
		assert.InDelta(t, 60.0, cmd.Velocity.Length(), 1e-9)
	}

	// One burst advances cadence past now + d*m.
	weapon := f.ecs.Weapons[testOwner]
	assert.GreaterOrEqual(t, weapon.Gate.NextFireTime, 0.3)

	// The whole burst counts as a single fire action.
	f.clock.now = 0.1
	f.weapons.Fire(testOwner)
	assert.Len(t, f.instantiator.commands, 3)
}

func TestSetVariantNoneDeactivates(t *testing.T) {
	f := newWeaponFixture(t, blasterDef())
	require.NoError(t, f.weapons.SetVariant(testOwner, defs.WeaponBlaster))
	require.NoError(t, f.weapons.SetVariant(testOwner, defs.WeaponNone))

	f.weapons.Fire(testOwner)
	f.clock.now = 10
	f.weapons.Fire(testOwner)

	assert.Empty(t, f.instantiator.commands)
	assert.False(t, f.ecs.Weapons[testOwner].Active)
}

func TestSetVariantResetsCadence(t *testing.T) {
	f := newWeaponFixture(t, blasterDef(), spreadDef())
	require.NoError(t, f.weapons.SetVariant(testOwner, defs.WeaponBlaster))

	f.weapons.Fire(testOwner)
	require.Len(t, f.instantiator.commands, 1)

	// Blaster cadence has not elapsed, but switching re-arms immediately.
	f.clock.now = 0.05
	require.NoError(t, f.weapons.SetVariant(testOwner, defs.WeaponSpread))
	f.weapons.Fire(testOwner)
	assert.Len(t, f.instantiator.commands, 4)
}

func TestSetVariantUnknownFails(t *testing.T) {
	f := newWeaponFixture(t, blasterDef())

	err := f.weapons.SetVariant(testOwner, defs.WeaponSpread)
	require.Error(t, err)
	assert.ErrorIs(t, err, defs.ErrWeaponNotFound)

	// Отказ не активирует оружие.
	f.weapons.Fire(testOwner)
	assert.Empty(t, f.instantiator.commands)
}

func TestReservedVariantsAreSilentNoops(t *testing.T) {
	reserved := []defs.WeaponVariant{
		defs.WeaponPhaser, defs.WeaponMissile, defs.WeaponShield,
		defs.WeaponRapid, defs.WeaponSpeed,
	}
	definitions := make([]defs.WeaponDefinition, 0, len(reserved))
	for _, variant := range reserved {
		definitions = append(definitions, defs.WeaponDefinition{
			Variant:            variant,
			DelayBetweenShots:  0.1,
			ProjectileVelocity: 1,
		})
	}

	for _, variant := range reserved {
		t.Run(string(variant), func(t *testing.T) {
			f := newWeaponFixture(t, definitions...)
			require.NoError(t, f.weapons.SetVariant(testOwner, variant))

			f.weapons.Fire(testOwner)

			assert.Empty(t, f.instantiator.commands)
			assert.Empty(t, f.instantiator.beamValues)
			assert.Zero(t, f.raycaster.queries)
		})
	}
}

func TestLaserFireActivatesBeam(t *testing.T) {
	f := newWeaponFixture(t, laserDef())
	require.NoError(t, f.weapons.SetVariant(testOwner, defs.WeaponLaser))

	f.weapons.Fire(testOwner)

	assert.Empty(t, f.instantiator.commands, "laser must not spawn projectiles")
	require.Len(t, f.instantiator.beamValues, 1)
	require.Contains(t, f.ecs.Beams, testOwner)
	assert.True(t, f.ecs.Beams[testOwner].Active)

	// Beam advanced the gate itself.
	assert.InDelta(t, 0.1, f.ecs.Weapons[testOwner].Gate.NextFireTime, 1e-9)
}

func TestSwitchingAwayFromLaserReleasesBeam(t *testing.T) {
	f := newWeaponFixture(t, laserDef(), blasterDef())
	require.NoError(t, f.weapons.SetVariant(testOwner, defs.WeaponLaser))
	f.weapons.Fire(testOwner)
	visualID := f.ecs.Beams[testOwner].VisualID

	require.NoError(t, f.weapons.SetVariant(testOwner, defs.WeaponBlaster))

	assert.NotContains(t, f.ecs.Beams, testOwner)
	assert.Contains(t, f.instantiator.destroyed, visualID)
}

func TestFireRequestedEventTriggersFire(t *testing.T) {
	f := newWeaponFixture(t, blasterDef())
	require.NoError(t, f.weapons.SetVariant(testOwner, defs.WeaponBlaster))

	f.dispatcher.Dispatch(event.Event{Type: event.FireRequested, Data: testOwner})

	assert.Len(t, f.instantiator.commands, 1)
}

func TestConsecutiveFiresRespectMinimumSeparation(t *testing.T) {
	f := newWeaponFixture(t, blasterDef())
	require.NoError(t, f.weapons.SetVariant(testOwner, defs.WeaponBlaster))

	// Hammer the trigger at 120 Hz for one second; delay 0.2 allows at
	// most six shots (t=0, 0.2, 0.4, 0.6, 0.8, 1.0 — минус дрожание шага).
	var fireTimes []float64
	for step := 0; step <= 120; step++ {
		f.clock.now = float64(step) / 120.0
		before := len(f.instantiator.commands)
		f.weapons.Fire(testOwner)
		if len(f.instantiator.commands) > before {
			fireTimes = append(fireTimes, f.clock.now)
		}
	}

	for i := 1; i < len(fireTimes); i++ {
		gap := fireTimes[i] - fireTimes[i-1]
		assert.GreaterOrEqual(t, gap, 0.2-1e-9, "fires %d and %d too close", i-1, i)
	}
	assert.InDelta(t, 6, len(fireTimes), 1)
}

func TestSpreadVelocityComponents(t *testing.T) {
	f := newWeaponFixture(t, spreadDef())
	require.NoError(t, f.weapons.SetVariant(testOwner, defs.WeaponSpread))

	f.weapons.Fire(testOwner)
	require.Len(t, f.instantiator.commands, 3)

	right := f.instantiator.commands[1]
	sin10, cos10 := math.Sin(geom.DegToRad(10)), math.Cos(geom.DegToRad(10))
	assert.InDelta(t, 60*sin10, right.Velocity.X, 1e-9)
	assert.InDelta(t, -60*cos10, right.Velocity.Y, 1e-9)
}
