package searcher

import (
	"time"

	"mancala/game"
)

// DefaultDepth is a sensible strength for an automated opponent.
const DefaultDepth = 4

// Searcher finds the best move for a player on the given board.
type Searcher interface {
	FindMove(b *game.Board, player game.Player) (move int, metric Metric)
}

// Metric reports how much work a single FindMove call performed.
type Metric struct {
	Depth   int
	Nodes   int // Recursive entries, terminal leaves included
	Cutoffs int // Sibling enumerations abandoned by pruning
	Elapsed time.Duration
}

type config struct {
	depth    int
	evaluate game.Evaluate
	budget   time.Duration
}

type Option func(*config)

func WithDepth(depth int) Option {
	return func(c *config) {
		if depth > 0 {
			c.depth = depth
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(c *config) {
		if evaluate != nil {
			c.evaluate = evaluate
		}
	}
}

// WithBudget bounds the wall-clock time of a FindMove call. A search past
// its budget evaluates each remaining node as if its depth were exhausted,
// so a budgeted result is still well-formed, just shallower.
func WithBudget(budget time.Duration) Option {
	return func(c *config) {
		if budget > 0 {
			c.budget = budget
		}
	}
}

func newConfig(options ...Option) config {
	c := config{
		depth:    DefaultDepth,
		evaluate: game.ScoreDifference,
	}
	for _, option := range options {
		option(&c)
	}
	return c
}

// search carries the per-call state shared by the recursion: the evaluator,
// the optional deadline, and work counters.
type search struct {
	evaluate game.Evaluate
	deadline time.Time
	nodes    int
	cutoffs  int
}

func (s *search) expired() bool {
	return !s.deadline.IsZero() && time.Now().After(s.deadline)
}

func (s *search) start(c config) {
	s.evaluate = c.evaluate
	s.nodes = 0
	s.cutoffs = 0
	if c.budget > 0 {
		s.deadline = time.Now().Add(c.budget)
	} else {
		s.deadline = time.Time{}
	}
}

// firstMove picks the lowest legal pocket, or 0 when there is none.
func firstMove(b *game.Board, player game.Player) int {
	moves := b.PossibleMoves(player)
	if len(moves) == 0 {
		return 0
	}
	return moves[0]
}

// nextPlayer keeps the turn on an extra turn, otherwise passes it.
func nextPlayer(current game.Player, extraTurn bool) game.Player {
	if extraTurn {
		return current
	}
	return current.Opponent()
}
