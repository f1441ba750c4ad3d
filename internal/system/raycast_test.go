package system_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-vertical-shooter/internal/component"
	"go-vertical-shooter/internal/entity"
	"go-vertical-shooter/internal/system"
	"go-vertical-shooter/internal/types"
	"go-vertical-shooter/pkg/geom"
)

func addEnemyCircle(ecs *entity.ECS, x, y float64, radius float32) types.EntityID {
	id := ecs.NewEntity()
	ecs.Enemies[id] = &component.Enemy{}
	ecs.Positions[id] = &component.Position{X: x, Y: y}
	ecs.Renderables[id] = &component.Renderable{Radius: radius}
	return id
}

func TestCastRayHitsEnemyOnAxis(t *testing.T) {
	ecs := entity.NewECS()
	caster := system.NewSceneRayCaster(ecs)
	id := addEnemyCircle(ecs, 300, 400, 14)

	hits := caster.CastRay(geom.Vec2{X: 300, Y: 700}, geom.Vec2{X: 0, Y: -1}, 900)

	require.Len(t, hits, 1)
	assert.Equal(t, id, hits[0].ID)
	assert.InDelta(t, 300.0, hits[0].Distance, 1e-9)
}

func TestCastRayMissesOffsetEnemy(t *testing.T) {
	ecs := entity.NewECS()
	caster := system.NewSceneRayCaster(ecs)
	addEnemyCircle(ecs, 330, 400, 14) // 30px от линии луча при радиусе 14

	hits := caster.CastRay(geom.Vec2{X: 300, Y: 700}, geom.Vec2{X: 0, Y: -1}, 900)

	assert.Empty(t, hits)
}

func TestCastRayGrazesEnemyEdge(t *testing.T) {
	ecs := entity.NewECS()
	caster := system.NewSceneRayCaster(ecs)
	addEnemyCircle(ecs, 310, 400, 14) // 10px от линии, радиус 14

	hits := caster.CastRay(geom.Vec2{X: 300, Y: 700}, geom.Vec2{X: 0, Y: -1}, 900)

	assert.Len(t, hits, 1)
}

func TestCastRayRespectsMaxLength(t *testing.T) {
	ecs := entity.NewECS()
	caster := system.NewSceneRayCaster(ecs)
	addEnemyCircle(ecs, 300, 100, 14)

	// До врага 600px, луч короче.
	hits := caster.CastRay(geom.Vec2{X: 300, Y: 700}, geom.Vec2{X: 0, Y: -1}, 500)
	assert.Empty(t, hits)

	hits = caster.CastRay(geom.Vec2{X: 300, Y: 700}, geom.Vec2{X: 0, Y: -1}, 700)
	assert.Len(t, hits, 1)
}

func TestCastRayIgnoresEnemiesBehindOrigin(t *testing.T) {
	ecs := entity.NewECS()
	caster := system.NewSceneRayCaster(ecs)
	addEnemyCircle(ecs, 300, 760, 14) // ниже дула, луч идёт вверх

	hits := caster.CastRay(geom.Vec2{X: 300, Y: 700}, geom.Vec2{X: 0, Y: -1}, 900)

	assert.Empty(t, hits)
}

func TestCastRayOriginInsideEnemyReportsZeroDistance(t *testing.T) {
	ecs := entity.NewECS()
	caster := system.NewSceneRayCaster(ecs)
	addEnemyCircle(ecs, 300, 705, 14)

	hits := caster.CastRay(geom.Vec2{X: 300, Y: 700}, geom.Vec2{X: 0, Y: -1}, 900)

	require.Len(t, hits, 1)
	assert.Zero(t, hits[0].Distance)
}

func TestCastRayCollectsAllEnemiesAlongLine(t *testing.T) {
	ecs := entity.NewECS()
	caster := system.NewSceneRayCaster(ecs)
	near := addEnemyCircle(ecs, 300, 500, 14)
	far := addEnemyCircle(ecs, 300, 200, 14)
	addEnemyCircle(ecs, 100, 400, 14) // в стороне

	hits := caster.CastRay(geom.Vec2{X: 300, Y: 700}, geom.Vec2{X: 0, Y: -1}, 900)

	require.Len(t, hits, 2)
	got := map[types.EntityID]float64{}
	for _, hit := range hits {
		got[hit.ID] = hit.Distance
	}
	assert.InDelta(t, 200.0, got[near], 1e-9)
	assert.InDelta(t, 500.0, got[far], 1e-9)
}

func TestCastRayNormalizesDirection(t *testing.T) {
	ecs := entity.NewECS()
	caster := system.NewSceneRayCaster(ecs)
	addEnemyCircle(ecs, 300, 400, 14)

	// Ненормированное направление даёт тот же результат.
	hits := caster.CastRay(geom.Vec2{X: 300, Y: 700}, geom.Vec2{X: 0, Y: -25}, 900)

	require.Len(t, hits, 1)
	assert.InDelta(t, 300.0, hits[0].Distance, 1e-9)
}

func TestCastRayDegenerateInputs(t *testing.T) {
	ecs := entity.NewECS()
	caster := system.NewSceneRayCaster(ecs)
	addEnemyCircle(ecs, 300, 400, 14)

	assert.Empty(t, caster.CastRay(geom.Vec2{X: 300, Y: 700}, geom.Vec2{}, 900))
	assert.Empty(t, caster.CastRay(geom.Vec2{X: 300, Y: 700}, geom.Vec2{X: 0, Y: -1}, 0))
}
