// internal/event/types.go
package event

const (
	FireRequested     EventType = "FireRequested"     // Игрок зажал огонь
	WeaponChanged     EventType = "WeaponChanged"     // Сменился вариант оружия
	EnemyDestroyed    EventType = "EnemyDestroyed"    // Враг уничтожен
	EnemyBrokeThrough EventType = "EnemyBrokeThrough" // Враг ушёл за нижний край
	PowerUpCollected  EventType = "PowerUpCollected"  // Подобран бонус
	PowerUpExpired    EventType = "PowerUpExpired"    // Действие бонуса закончилось
	WaveEnded         EventType = "WaveEnded"         // Волна закончилась
	PlayerDestroyed   EventType = "PlayerDestroyed"   // Корабль игрока уничтожен
)
