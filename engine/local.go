package engine

import (
	"time"

	"mancala/experiments/metrics"
	"mancala/game"

	"github.com/rs/zerolog/log"
)

// MaxMoves caps runaway games; a standard board finishes well under this.
const MaxMoves = 10000

// Local runs a complete game between two agents on a single board,
// honoring extra turns, until the endgame sweep or MaxMoves.
type Local struct {
	Board  *game.Board
	Agents map[game.Player]Agent

	// Starting is the side to move first. Zero value is PlayerA.
	Starting game.Player
}

func NewLocal(board *game.Board, agentA, agentB Agent) *Local {
	if agentA == nil || agentB == nil {
		panic("need an agent for each side")
	}
	return &Local{
		Board: board,
		Agents: map[game.Player]Agent{
			game.PlayerA: agentA,
			game.PlayerB: agentB,
		},
	}
}

// Run executes the game loop and returns the winner ("A", "B", or "Draw")
// with game and per-move metrics.
func (e *Local) Run() (string, metrics.GameMetric, []metrics.MoveMetric) {
	current := e.Starting
	start := time.Now()

	log.Info().Msgf("player %s is starting", current)

	var moveMetrics []metrics.MoveMetric
	endgame := false
	step := 1
	for ; !endgame && step <= MaxMoves; step++ {
		move, metric := e.Agents[current].FindMove(e.Board, current)

		var extraTurn bool
		var err error
		extraTurn, endgame, err = e.Board.Move(move, current)
		if err != nil {
			// An agent picked an illegal pocket. Fall back to the first
			// legal move rather than abort the game.
			log.Warn().Err(err).Msgf("agent for player %s returned illegal move %d", current, move)
			fallback := e.Board.PossibleMoves(current)
			if len(fallback) == 0 {
				panic("no legal moves at all")
			}
			move = fallback[0]
			extraTurn, endgame, err = e.Board.Move(move, current)
			if err != nil {
				panic(err)
			}
		}

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:      step,
			Player:    current.String(),
			Move:      move,
			ExtraTurn: extraTurn,
			Metric:    metric,
		})

		if !extraTurn {
			current = current.Opponent()
		}
	}

	winner := winnerByScore(e.Board)
	log.Info().Msgf("game over after %d moves: winner=%s score A=%d B=%d",
		len(moveMetrics), winner, e.Board.Score(game.PlayerA), e.Board.Score(game.PlayerB))

	gameMetric := metrics.GameMetric{
		StartingPlayer: e.Starting.String(),
		Winner:         winner,
		ScoreA:         e.Board.Score(game.PlayerA),
		ScoreB:         e.Board.Score(game.PlayerB),
		TotalMoves:     len(moveMetrics),
		Duration:       time.Since(start),
	}
	return winner, gameMetric, moveMetrics
}

func winnerByScore(b *game.Board) string {
	scoreA, scoreB := b.Score(game.PlayerA), b.Score(game.PlayerB)
	switch {
	case scoreA > scoreB:
		return game.PlayerA.String()
	case scoreB > scoreA:
		return game.PlayerB.String()
	default:
		return "Draw"
	}
}
