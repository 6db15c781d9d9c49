package searcher

import (
	"math"
	"time"

	"mancala/game"
)

// AlphaBeta is the pruned variant of Minimax. It returns the same value as
// the plain search for identical inputs; under ties it may pick a different
// move, because pruning can skip later tied candidates. Only the top-level
// call yields a move, recursive levels report value only.
type AlphaBeta struct {
	config
}

func NewAlphaBeta(options ...Option) *AlphaBeta {
	return &AlphaBeta{config: newConfig(options...)}
}

func (a *AlphaBeta) FindMove(b *game.Board, player game.Player) (int, Metric) {
	var s search
	s.start(a.config)

	begin := time.Now()
	_, move := s.alphabeta(b, player, player, a.depth, math.Inf(-1), math.Inf(1), false, true)
	if move == 0 {
		move = firstMove(b, player)
	}
	return move, Metric{
		Depth:   a.depth,
		Nodes:   s.nodes,
		Cutoffs: s.cutoffs,
		Elapsed: time.Since(begin),
	}
}

// Search runs one bare search with the given window. Move 0 means none:
// terminal node or non-top-level semantics.
func (a *AlphaBeta) Search(b *game.Board, maximizing, current game.Player, depth int, alpha, beta float64, gameOver bool) (float64, int) {
	var s search
	s.start(a.config)
	return s.alphabeta(b, maximizing, current, depth, alpha, beta, gameOver, true)
}

func (s *search) alphabeta(b *game.Board, maximizing, current game.Player, depth int, alpha, beta float64, gameOver, topLevel bool) (float64, int) {
	s.nodes++
	if depth == 0 || gameOver || s.expired() {
		return s.evaluate(b, maximizing), 0
	}

	moves := b.PossibleMoves(current)
	if len(moves) == 0 {
		// Same malformed-input guard as the plain variant.
		return s.evaluate(b, maximizing), 0
	}

	bestMove := 0
	if topLevel {
		bestMove = moves[0]
	}

	if current == maximizing {
		bestVal := math.Inf(-1)
		for _, move := range moves {
			child := b.Clone()
			extraTurn, endgame, err := child.Move(move, current)
			if err != nil {
				panic(err)
			}

			value, _ := s.alphabeta(child, maximizing, nextPlayer(current, extraTurn), depth-1, alpha, beta, endgame, false)
			if value > bestVal {
				bestVal = value
				if topLevel {
					bestMove = move
				}
			}
			alpha = math.Max(alpha, bestVal)
			if bestVal >= beta {
				s.cutoffs++
				break
			}
		}
		return bestVal, bestMove
	}

	bestVal := math.Inf(1)
	for _, move := range moves {
		child := b.Clone()
		extraTurn, endgame, err := child.Move(move, current)
		if err != nil {
			panic(err)
		}

		value, _ := s.alphabeta(child, maximizing, nextPlayer(current, extraTurn), depth-1, alpha, beta, endgame, false)
		if value < bestVal {
			bestVal = value
			if topLevel {
				bestMove = move
			}
		}
		beta = math.Min(beta, bestVal)
		if bestVal <= alpha {
			s.cutoffs++
			break
		}
	}
	return bestVal, bestMove
}
