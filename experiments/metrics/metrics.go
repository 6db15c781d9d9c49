package metrics

import (
	"time"

	"mancala/searcher"
)

// AgentConfig describes one searcher configuration under test.
type AgentConfig struct {
	ID     int
	Kind   string // "minimax", "alphabeta", or "random"
	Depth  int
	Budget time.Duration
}

// MoveMetric records a single move of a game along with the search work
// that produced it.
type MoveMetric struct {
	Step      int
	Player    string
	Move      int
	ExtraTurn bool
	searcher.Metric
}

// GameMetric summarizes one finished game.
type GameMetric struct {
	StartingPlayer string
	Winner         string // "A", "B", or "Draw"
	ScoreA         int
	ScoreB         int
	TotalMoves     int
	Duration       time.Duration
}

// GameRecord ties a game outcome to the pair of configs that played it.
type GameRecord struct {
	ID     int
	Agent1 int // AgentConfig.ID playing side A
	Agent2 int // AgentConfig.ID playing side B
	GameMetric
}

// MoveRecord ties a move to its game.
type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}
