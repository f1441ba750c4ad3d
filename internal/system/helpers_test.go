package system_test

import (
	"fmt"

	"go-vertical-shooter/internal/component"
	"go-vertical-shooter/internal/defs"
	"go-vertical-shooter/internal/event"
	"go-vertical-shooter/internal/interfaces"
	"go-vertical-shooter/internal/types"
	"go-vertical-shooter/pkg/geom"
)

// fakeClock is a hand-driven time source.
type fakeClock struct {
	now   float64
	delta float64
}

func (c *fakeClock) Now() float64        { return c.now }
func (c *fakeClock) FrameDelta() float64 { return c.delta }

// fakeRegistry serves definitions from an in-memory map.
type fakeRegistry struct {
	defs map[defs.WeaponVariant]defs.WeaponDefinition
}

func newFakeRegistry(definitions ...defs.WeaponDefinition) *fakeRegistry {
	r := &fakeRegistry{defs: make(map[defs.WeaponVariant]defs.WeaponDefinition)}
	for _, def := range definitions {
		r.defs[def.Variant] = def
	}
	return r
}

func (r *fakeRegistry) Lookup(variant defs.WeaponVariant) (defs.WeaponDefinition, error) {
	def, ok := r.defs[variant]
	if !ok {
		return defs.WeaponDefinition{}, fmt.Errorf("%w: %s", defs.ErrWeaponNotFound, variant)
	}
	return def, nil
}

// recordingInstantiator captures every spawn command instead of building
// real entities. Beam visuals get ids from 9000 up so tests can tell
// them apart from projectiles.
type recordingInstantiator struct {
	commands   []interfaces.SpawnCommand
	beamValues []defs.WeaponDefinition
	destroyed  []types.EntityID
	nextID     types.EntityID
	beamNextID types.EntityID
}

func newRecordingInstantiator() *recordingInstantiator {
	return &recordingInstantiator{nextID: 100, beamNextID: 9000}
}

func (i *recordingInstantiator) CreateProjectile(owner types.EntityID, def defs.WeaponDefinition, cmd interfaces.SpawnCommand) types.EntityID {
	i.commands = append(i.commands, cmd)
	i.nextID++
	return i.nextID
}

func (i *recordingInstantiator) CreateBeamVisual(owner types.EntityID, def defs.WeaponDefinition) types.EntityID {
	i.beamValues = append(i.beamValues, def)
	i.beamNextID++
	return i.beamNextID
}

func (i *recordingInstantiator) Destroy(id types.EntityID) {
	i.destroyed = append(i.destroyed, id)
}

// fakeRayCaster returns a preset list of hits for any query.
type fakeRayCaster struct {
	hits    []interfaces.HitRecord
	queries int
	origins []geom.Vec2
}

func (r *fakeRayCaster) CastRay(origin, direction geom.Vec2, maxLength float64) []interfaces.HitRecord {
	r.queries++
	r.origins = append(r.origins, origin)
	return r.hits
}

// fakeDirectory resolves entity health and counts destroyed notifications.
type fakeDirectory struct {
	healths   map[types.EntityID]*component.Health
	destroyed map[types.EntityID]int
}

func newFakeDirectory() *fakeDirectory {
	return &fakeDirectory{
		healths:   make(map[types.EntityID]*component.Health),
		destroyed: make(map[types.EntityID]int),
	}
}

func (d *fakeDirectory) addEntity(id types.EntityID, health float64) *component.Health {
	h := &component.Health{Value: health, Max: health}
	d.healths[id] = h
	return h
}

func (d *fakeDirectory) Health(id types.EntityID) (*component.Health, bool) {
	h, ok := d.healths[id]
	return h, ok
}

func (d *fakeDirectory) NotifyDestroyed(id types.EntityID) {
	d.destroyed[id]++
}

// listenerFunc adapts a function to the event.Listener interface.
type listenerFunc func(event.Event)

func (f listenerFunc) OnEvent(e event.Event) { f(e) }

func entityID(id uint64) types.EntityID { return types.EntityID(id) }

// fakeModifiers returns a fixed fire delay multiplier.
type fakeModifiers struct {
	multiplier float64
}

func (m *fakeModifiers) CurrentFireDelayMultiplier() float64 {
	if m.multiplier == 0 {
		return 1.0
	}
	return m.multiplier
}
