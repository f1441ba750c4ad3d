// internal/app/game.go
package app

import (
	"fmt"
	"math/rand"

	"go-vertical-shooter/internal/component"
	"go-vertical-shooter/internal/config"
	"go-vertical-shooter/internal/defs"
	"go-vertical-shooter/internal/entity"
	"go-vertical-shooter/internal/event"
	"go-vertical-shooter/internal/system"
	"go-vertical-shooter/internal/types"

	"github.com/hajimehoshi/ebiten/v2"
)

// Game holds the main game state and logic.
type Game struct {
	ECS             *entity.ECS
	EventDispatcher *event.Dispatcher

	clock   *gameClock
	scene   *SceneContainer
	factory *EntityFactory

	weaponSystem       *system.WeaponSystem
	playerSystem       *system.PlayerSystem
	waveSystem         *system.WaveSystem
	movementSystem     *system.MovementSystem
	projectileSystem   *system.ProjectileSystem
	statusEffectSystem *system.StatusEffectSystem
	visualEffectSystem *system.VisualEffectSystem
	renderSystem       *system.RenderSystem

	PlayerID types.EntityID
	gameOver bool

	destroyedQueue []types.EntityID
}

// GameEventListener - прослойка для подписки Game на события.
type GameEventListener struct {
	game *Game
}

func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyDestroyed:
		id, ok := e.Data.(types.EntityID)
		if !ok {
			return
		}
		if enemy, exists := l.game.ECS.Enemies[id]; exists {
			if player, hasPlayer := l.game.ECS.Players[l.game.PlayerID]; hasPlayer {
				player.Score += enemy.ScoreValue
			}
			if pos := l.game.ECS.Positions[id]; pos != nil && rand.Float64() < config.PowerUpDropChance {
				l.game.factory.CreatePowerUp(pos.X, pos.Y)
			}
		}
		l.game.destroyedQueue = append(l.game.destroyedQueue, id)

	case event.EnemyBrokeThrough:
		if id, ok := e.Data.(types.EntityID); ok {
			l.game.destroyedQueue = append(l.game.destroyedQueue, id)
		}

	case event.PlayerDestroyed:
		l.game.gameOver = true
	}
}

// NewGame собирает ECS, системы и корабль игрока.
// Определения оружия должны быть загружены до вызова.
func NewGame() (*Game, error) {
	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()
	clock := &gameClock{frameDelta: 1.0 / 60.0}
	scene := NewSceneContainer()
	factory := NewEntityFactory(ecs, scene)

	statusEffectSystem := system.NewStatusEffectSystem(ecs, dispatcher)
	weaponSystem := system.NewWeaponSystem(
		ecs,
		weaponRegistry{},
		factory,
		system.NewSceneRayCaster(ecs),
		&entityDirectory{ecs: ecs, eventDispatcher: dispatcher},
		statusEffectSystem,
		clock,
		dispatcher,
	)

	g := &Game{
		ECS:                ecs,
		EventDispatcher:    dispatcher,
		clock:              clock,
		scene:              scene,
		factory:            factory,
		weaponSystem:       weaponSystem,
		playerSystem:       system.NewPlayerSystem(ecs, dispatcher, weaponSystem),
		waveSystem:         system.NewWaveSystem(ecs, dispatcher),
		movementSystem:     system.NewMovementSystem(ecs, dispatcher),
		projectileSystem:   system.NewProjectileSystem(ecs, dispatcher),
		statusEffectSystem: statusEffectSystem,
		visualEffectSystem: system.NewVisualEffectSystem(ecs),
	}
	g.renderSystem = system.NewRenderSystem(ecs)

	listener := &GameEventListener{game: g}
	dispatcher.Subscribe(event.EnemyDestroyed, listener)
	dispatcher.Subscribe(event.EnemyBrokeThrough, listener)
	dispatcher.Subscribe(event.PlayerDestroyed, listener)

	g.PlayerID = g.createPlayer()
	if err := g.weaponSystem.SetVariant(g.PlayerID, defs.WeaponBlaster); err != nil {
		return nil, fmt.Errorf("failed to arm the player: %w", err)
	}

	return g, nil
}

func (g *Game) createPlayer() types.EntityID {
	id := g.ECS.NewEntity()
	g.ECS.Positions[id] = &component.Position{
		X: config.ScreenWidth / 2,
		Y: config.ScreenHeight - 4*config.PlayerRadius,
	}
	g.ECS.Velocities[id] = &component.Velocity{}
	g.ECS.Healths[id] = &component.Health{Value: config.PlayerStartHealth, Max: config.PlayerStartHealth}
	g.ECS.Players[id] = &component.Player{SpeedMultiplier: 1.0}
	g.ECS.Renderables[id] = &component.Renderable{
		Color:     config.PlayerColor,
		Radius:    float32(config.PlayerRadius),
		HasStroke: true,
	}
	return id
}

func (g *Game) Update(deltaTime float64) {
	if g.gameOver {
		return
	}

	g.clock.Advance(deltaTime)
	g.ECS.GameTime = g.clock.Now()

	g.playerSystem.Update(deltaTime)
	g.waveSystem.Update(deltaTime)
	g.movementSystem.Update(deltaTime)
	g.projectileSystem.Update(deltaTime)
	g.weaponSystem.Update(deltaTime)
	g.statusEffectSystem.Update(deltaTime)
	g.visualEffectSystem.Update(deltaTime)

	g.cleanupDestroyedEntities()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderSystem.Draw(screen)
}

// RequestFire — внешний триггер выстрела (зажатая клавиша огня).
func (g *Game) RequestFire() {
	g.EventDispatcher.Dispatch(event.Event{Type: event.FireRequested, Data: g.PlayerID})
}

// SelectWeapon переключает оружие игрока (отладочные клавиши, бонусы).
func (g *Game) SelectWeapon(variant defs.WeaponVariant) error {
	return g.weaponSystem.SetVariant(g.PlayerID, variant)
}

// SetPlayerInput задаёт направление движения корабля (-1..1 по осям).
func (g *Game) SetPlayerInput(dx, dy float64) {
	if vel, ok := g.ECS.Velocities[g.PlayerID]; ok {
		vel.VX = dx * config.PlayerSpeed
		vel.VY = dy * config.PlayerSpeed
	}
}

// cleanupDestroyedEntities удаляет сущности, накопленные за кадр.
func (g *Game) cleanupDestroyedEntities() {
	for _, id := range g.destroyedQueue {
		g.ECS.RemoveEntity(id)
		g.scene.remove(id)
	}
	g.destroyedQueue = g.destroyedQueue[:0]
}

// ClearSpawned убирает со сцены все порождённые фабрикой сущности
// (снаряды, лучи, бонусы).
func (g *Game) ClearSpawned() {
	for id := range g.scene.spawned {
		g.ECS.RemoveEntity(id)
	}
	g.scene.spawned = make(map[types.EntityID]struct{})
}

// IsGameOver сообщает, уничтожен ли корабль игрока.
func (g *Game) IsGameOver() bool {
	return g.gameOver
}

// --- interfaces.GameContext ---

func (g *Game) PlayerHealth() (current, max float64) {
	if health, ok := g.ECS.Healths[g.PlayerID]; ok {
		return health.Value, health.Max
	}
	return 0, 0
}

func (g *Game) PlayerScore() int {
	if player, ok := g.ECS.Players[g.PlayerID]; ok {
		return player.Score
	}
	return 0
}

func (g *Game) CurrentWeapon() defs.WeaponVariant {
	if weapon, ok := g.ECS.Weapons[g.PlayerID]; ok && weapon.Active {
		return weapon.Variant
	}
	return defs.WeaponNone
}

func (g *Game) WaveNumber() int {
	if g.ECS.Wave != nil {
		return g.ECS.Wave.Number
	}
	return 0
}
