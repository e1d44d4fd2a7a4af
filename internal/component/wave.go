package component

// Wave — состояние текущей волны
type Wave struct {
	Number         int
	EnemyID        string
	EnemiesToSpawn int
	SpawnInterval  float64
	SpawnTimer     float64
	Delay          float64 // Оставшаяся задержка до первого спавна
}
