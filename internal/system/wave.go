// internal/system/wave.go
package system

import (
	"log"
	"math/rand"

	"go-vertical-shooter/internal/component"
	"go-vertical-shooter/internal/config"
	"go-vertical-shooter/internal/entity"
	"go-vertical-shooter/internal/event"
)

// WaveSystem спаунит волны врагов сверху экрана.
type WaveSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	activeEnemies   int
}

func NewWaveSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *WaveSystem {
	ws := &WaveSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
	}
	eventDispatcher.Subscribe(event.EnemyDestroyed, ws)
	eventDispatcher.Subscribe(event.EnemyBrokeThrough, ws)
	return ws
}

// OnEvent списывает врага из счётчика активных.
func (s *WaveSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyDestroyed, event.EnemyBrokeThrough:
		if s.activeEnemies > 0 {
			s.activeEnemies--
		}
	}
}

func (s *WaveSystem) Update(deltaTime float64) {
	wave := s.ecs.Wave
	if wave == nil {
		s.startWave(1)
		return
	}

	if wave.EnemiesToSpawn > 0 {
		wave.SpawnTimer += deltaTime
		if wave.SpawnTimer >= wave.SpawnInterval {
			s.spawnEnemy(wave)
			wave.EnemiesToSpawn--
			wave.SpawnTimer = 0
		}
	} else if s.activeEnemies == 0 {
		s.eventDispatcher.Dispatch(event.Event{Type: event.WaveEnded, Data: wave.Number})
		s.startWave(wave.Number + 1)
	}
}

func (s *WaveSystem) startWave(number int) {
	interval := config.InitialSpawnInterval - float64(number-1)*config.SpawnIntervalDecrement
	if interval < config.MinSpawnInterval {
		interval = config.MinSpawnInterval
	}
	s.ecs.Wave = &component.Wave{
		Number:         number,
		EnemiesToSpawn: config.EnemiesPerWave + (number-1)*config.EnemiesIncrementPerWave,
		SpawnInterval:  interval,
	}
	log.Printf("Wave %d: %d enemies, spawn interval %.2fs", number, s.ecs.Wave.EnemiesToSpawn, interval)
}

func (s *WaveSystem) spawnEnemy(wave *component.Wave) {
	id := s.ecs.NewEntity()
	x := config.EnemyRadius + rand.Float64()*(config.ScreenWidth-2*config.EnemyRadius)

	speed := config.EnemySpeed * (1 + 0.05*float64(wave.Number-1))
	health := config.EnemyHealth * (1 + 0.1*float64(wave.Number-1))

	s.ecs.Positions[id] = &component.Position{X: x, Y: -config.EnemyRadius}
	s.ecs.Velocities[id] = &component.Velocity{VX: 0, VY: speed}
	s.ecs.Healths[id] = &component.Health{Value: health, Max: health}
	s.ecs.Enemies[id] = &component.Enemy{
		ContactDamage: config.EnemyContactDamage,
		ScoreValue:    10 * wave.Number,
	}
	s.ecs.Renderables[id] = &component.Renderable{
		Color:     config.EnemyColor,
		Radius:    float32(config.EnemyRadius),
		HasStroke: true,
	}
	s.activeEnemies++
}
