package searcher

import (
	"math"
	"time"

	"mancala/game"
)

// Minimax is the plain, unpruned game-tree search. It explores every legal
// move at every level and is the semantic baseline the alpha-beta variant
// must agree with on value.
type Minimax struct {
	config
}

func NewMinimax(options ...Option) *Minimax {
	return &Minimax{config: newConfig(options...)}
}

// FindMove searches from player's perspective at the configured depth and
// returns the chosen 1-indexed pocket.
func (m *Minimax) FindMove(b *game.Board, player game.Player) (int, Metric) {
	var s search
	s.start(m.config)

	begin := time.Now()
	_, move := s.minimax(b, player, player, m.depth, false)
	if move == 0 {
		// The budget expired before the root expanded; any legal move is
		// as good as another at depth zero.
		move = firstMove(b, player)
	}
	return move, Metric{
		Depth:   m.depth,
		Nodes:   s.nodes,
		Elapsed: time.Since(begin),
	}
}

// Search runs one bare search without touching the configured depth. Move 0
// means none (terminal node).
func (m *Minimax) Search(b *game.Board, maximizing, current game.Player, depth int, gameOver bool) (float64, int) {
	var s search
	s.start(m.config)
	return s.minimax(b, maximizing, current, depth, gameOver)
}

func (s *search) minimax(b *game.Board, maximizing, current game.Player, depth int, gameOver bool) (float64, int) {
	s.nodes++
	if depth == 0 || gameOver || s.expired() {
		return s.evaluate(b, maximizing), 0
	}

	moves := b.PossibleMoves(current)
	if len(moves) == 0 {
		// Only reachable with a malformed depth/gameOver combination; an
		// exhausted row is swept into the stores by Move before the turn
		// ever passes. Treated as terminal.
		return s.evaluate(b, maximizing), 0
	}

	bestMove := moves[0]
	bestVal := math.Inf(1)
	if current == maximizing {
		bestVal = math.Inf(-1)
	}

	for _, move := range moves {
		child := b.Clone()
		extraTurn, endgame, err := child.Move(move, current)
		if err != nil {
			panic(err) // Moves come straight from PossibleMoves
		}

		value, _ := s.minimax(child, maximizing, nextPlayer(current, extraTurn), depth-1, endgame)

		// Strict inequality only: the first move seen wins ties, at every
		// level of the tree.
		if current == maximizing {
			if value > bestVal {
				bestVal = value
				bestMove = move
			}
		} else {
			if value < bestVal {
				bestVal = value
				bestMove = move
			}
		}
	}

	return bestVal, bestMove
}
