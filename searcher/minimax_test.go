package searcher

import (
	"testing"
	"time"

	"mancala/game"

	"github.com/stretchr/testify/require"
)

func TestMinimaxTerminal(t *testing.T) {
	t.Run("depth zero evaluates the board", func(t *testing.T) {
		b := game.NewStandardBoard()
		b.Pockets[b.Store(game.PlayerA)] = 5

		value, move := NewMinimax().Search(b, game.PlayerA, game.PlayerA, 0, false)

		require.Equal(t, 5.0, value, "Depth zero should return the evaluation")
		require.Zero(t, move, "Terminal nodes carry no move")
	})

	t.Run("game over evaluates the board regardless of depth", func(t *testing.T) {
		b := game.NewStandardBoard()

		value, move := NewMinimax().Search(b, game.PlayerA, game.PlayerA, 4, true)

		require.Equal(t, 0.0, value)
		require.Zero(t, move)
	})

	t.Run("empty move list is treated as terminal", func(t *testing.T) {
		b := game.NewStandardBoard()
		row := b.PocketValues(game.PlayerA)
		for i := range row {
			row[i] = 0
		}
		b.Pockets[b.Store(game.PlayerA)] = 24

		value, move := NewMinimax().Search(b, game.PlayerA, game.PlayerA, 3, false)

		require.Equal(t, 24.0, value, "A current player with no moves should evaluate in place")
		require.Zero(t, move)
	})
}

func TestMinimaxMaximizingTieBreak(t *testing.T) {
	// At depth 1 on a fresh board, moves 3..6 all bank exactly one bead.
	// The first of the tied moves must win.
	b := game.NewStandardBoard()

	value, move := NewMinimax().Search(b, game.PlayerA, game.PlayerA, 1, false)

	require.Equal(t, 1.0, value)
	require.Equal(t, 3, move, "Ties keep the earliest-enumerated move")
}

func TestMinimaxMinimizingTieBreak(t *testing.T) {
	// Same position from B's seat while maximizing for A: B's moves 3..6
	// all cost A one point, and the minimizing branch must also keep the
	// first tied move.
	b := game.NewStandardBoard()

	value, move := NewMinimax().Search(b, game.PlayerA, game.PlayerB, 1, false)

	require.Equal(t, -1.0, value)
	require.Equal(t, 3, move, "The minimizing branch tracks moves with the same stable tie-break")
}

func TestMinimaxExtraTurnKeepsTheTurn(t *testing.T) {
	// side=2, starting=1: playing pocket 2 banks a bead and grants an
	// extra turn, and the follow-up move captures B's opposite bead and
	// sweeps the board for a 3-1 finish. Playing pocket 1 instead hands B
	// a scoring reply. Depth 2 must see the difference.
	b := game.NewBoard(2, 1)

	value, move := NewMinimax().Search(b, game.PlayerA, game.PlayerA, 2, false)

	require.Equal(t, 2, move, "The extra-turn line should win")
	require.Equal(t, 2.0, value)
}

func TestMinimaxFindMove(t *testing.T) {
	b := game.NewStandardBoard()

	move, metric := NewMinimax(WithDepth(3)).FindMove(b, game.PlayerA)

	require.Contains(t, b.PossibleMoves(game.PlayerA), move)
	require.Equal(t, 3, metric.Depth)
	require.Greater(t, metric.Nodes, 1, "The search should have visited interior nodes")
	require.Equal(t, game.NewStandardBoard().Pockets, b.Pockets, "Search must not mutate the input board")
}

func TestMinimaxBudget(t *testing.T) {
	b := game.NewStandardBoard()

	start := time.Now()
	move, _ := NewMinimax(WithDepth(20), WithBudget(time.Millisecond)).FindMove(b, game.PlayerA)

	require.Less(t, time.Since(start), time.Second, "The budget should cut the search short")
	require.Contains(t, b.PossibleMoves(game.PlayerA), move, "A budgeted search still returns a legal move")
}
