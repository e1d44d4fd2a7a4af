package component

// GamePhase — фаза партии
type GamePhase int

const (
	PlayingPhase GamePhase = iota
	VictoryPhase
	DefeatPhase
)
