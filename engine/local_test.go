package engine

import (
	"testing"

	"mancala/game"
	"mancala/searcher"

	"github.com/stretchr/testify/require"
)

func TestLocalRunRandomAgents(t *testing.T) {
	board := game.NewStandardBoard()
	local := NewLocal(board, NewRandomAgent(1), NewRandomAgent(2))

	winner, metric, moves := local.Run()

	require.Contains(t, []string{"A", "B", "Draw"}, winner)
	require.Equal(t, metric.TotalMoves, len(moves))
	require.Greater(t, metric.TotalMoves, 0)

	// The finished board is fully swept and conserves every bead
	require.Equal(t, 48, board.Score(game.PlayerA)+board.Score(game.PlayerB))
	require.Empty(t, board.PossibleMoves(game.PlayerA))
	require.Empty(t, board.PossibleMoves(game.PlayerB))
}

func TestLocalRunSearchAgents(t *testing.T) {
	board := game.NewStandardBoard()
	local := NewLocal(board,
		searcher.NewAlphaBeta(searcher.WithDepth(3)),
		searcher.NewMinimax(searcher.WithDepth(2)),
	)

	winner, metric, moves := local.Run()

	require.Equal(t, metric.ScoreA, board.Score(game.PlayerA))
	require.Equal(t, metric.ScoreB, board.Score(game.PlayerB))
	switch {
	case metric.ScoreA > metric.ScoreB:
		require.Equal(t, "A", winner)
	case metric.ScoreB > metric.ScoreA:
		require.Equal(t, "B", winner)
	default:
		require.Equal(t, "Draw", winner)
	}

	// Search agent moves carry search work, and steps count up from 1
	require.Greater(t, moves[0].Nodes, 0)
	require.Equal(t, 1, moves[0].Step)
	require.Equal(t, metric.TotalMoves, moves[len(moves)-1].Step)
}

func TestLocalStartingPlayer(t *testing.T) {
	board := game.NewStandardBoard()
	local := NewLocal(board, NewRandomAgent(3), NewRandomAgent(4))
	local.Starting = game.PlayerB

	_, metric, moves := local.Run()

	require.Equal(t, "B", metric.StartingPlayer)
	require.Equal(t, "B", moves[0].Player)
}

func TestLocalExtraTurnKeepsPlayer(t *testing.T) {
	// Pocket 3 on a fresh board lands in A's store: the next recorded move
	// must belong to A again.
	board := game.NewStandardBoard()
	local := NewLocal(board, scripted{3, 1}, NewRandomAgent(5))

	_, _, moves := local.Run()

	require.True(t, moves[0].ExtraTurn)
	require.Equal(t, "A", moves[0].Player)
	require.Equal(t, "A", moves[1].Player)
}

// scripted replays a fixed move list, then falls back to the first legal
// move.
type scripted []int

func (s scripted) FindMove(b *game.Board, player game.Player) (int, searcher.Metric) {
	for _, move := range s {
		for _, legal := range b.PossibleMoves(player) {
			if legal == move {
				return move, searcher.Metric{}
			}
		}
	}
	return b.PossibleMoves(player)[0], searcher.Metric{}
}
