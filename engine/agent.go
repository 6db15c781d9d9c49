package engine

import (
	"mancala/game"
	"mancala/searcher"

	"golang.org/x/exp/rand"
)

// Agent decides a move for a player on the given board. Both searchers
// satisfy it directly.
type Agent interface {
	FindMove(b *game.Board, player game.Player) (move int, metric searcher.Metric)
}

// RandomAgent samples uniformly from the legal moves. Useful as a baseline
// opponent and for exercising the rules in tests.
type RandomAgent struct {
	rng *rand.Rand
}

func NewRandomAgent(seed uint64) *RandomAgent {
	return &RandomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *RandomAgent) FindMove(b *game.Board, player game.Player) (int, searcher.Metric) {
	moves := b.PossibleMoves(player)
	if len(moves) == 0 {
		panic("no legal moves to sample from")
	}
	return moves[a.rng.Intn(len(moves))], searcher.Metric{}
}
