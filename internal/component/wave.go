// internal/component/wave.go
package component

// Wave — состояние текущей волны врагов.
type Wave struct {
	Number         int
	EnemiesToSpawn int
	SpawnInterval  float64
	SpawnTimer     float64
}
