// Package env adapts the game core into an episodic environment: the
// learner plays side A one action at a time while a search-driven opponent
// answers for side B, with shaped rewards on every step.
package env

import (
	"mancala/game"
	"mancala/searcher"

	"golang.org/x/exp/rand"
)

// Reward shaping constants, in points.
const (
	WinReward      = 30.0
	LossReward     = -10.0 // Smaller magnitude than WinReward to optimize for winning
	DrawReward     = -2.0
	InvalidReward  = -40.0 // Only needed when the caller does not mask actions
	ExtraTurnBonus = 0.25
)

type Env struct {
	Board *game.Board

	sideSize       int
	startingPieces int
	stochasticProb float64
	opponentDepth  int
	useAlphaBeta   bool
	opponent       searcher.Searcher
	rng            *rand.Rand
}

type Option func(*Env)

func WithBoardSize(sideSize, startingPieces int) Option {
	return func(e *Env) {
		if sideSize > 0 && startingPieces > 0 {
			e.sideSize = sideSize
			e.startingPieces = startingPieces
		}
	}
}

// WithStochasticOpponent makes the opponent pick a uniformly random move
// with the given probability, to add variety to play.
func WithStochasticOpponent(probability float64) Option {
	return func(e *Env) {
		if probability > 0 {
			e.stochasticProb = probability
		}
	}
}

func WithOpponentDepth(depth int) Option {
	return func(e *Env) {
		if depth > 0 {
			e.opponentDepth = depth
		}
	}
}

// WithAlphaBeta switches the opponent to the pruned searcher, which allows
// a deeper search for the same budget.
func WithAlphaBeta() Option {
	return func(e *Env) {
		e.useAlphaBeta = true
	}
}

func WithSeed(seed uint64) Option {
	return func(e *Env) {
		e.rng = rand.New(rand.NewSource(seed))
	}
}

func NewEnv(options ...Option) *Env {
	e := &Env{ // Default values
		sideSize:       6,
		startingPieces: 4,
		opponentDepth:  3,
		rng:            rand.New(rand.NewSource(rand.Uint64())),
	}
	for _, option := range options {
		option(e)
	}

	searchOptions := []searcher.Option{searcher.WithDepth(e.opponentDepth)}
	if e.useAlphaBeta {
		e.opponent = searcher.NewAlphaBeta(searchOptions...)
	} else {
		e.opponent = searcher.NewMinimax(searchOptions...)
	}

	e.Board = game.NewBoard(e.sideSize, e.startingPieces)
	return e
}

// StepResult is the outcome of one environment step.
type StepResult struct {
	Observation []int
	Reward      float64
	Done        bool
	Info        map[string]string
}

// Reset starts a fresh game and returns the initial observation.
func (e *Env) Reset() []int {
	e.Board = game.NewBoard(e.sideSize, e.startingPieces)
	return e.observation()
}

// Step plays the learner's 1-indexed pocket for side A, then lets the
// opponent take its whole turn (including extra turns) when A's move does
// not grant one. An invalid action ends the episode with a heavy penalty.
func (e *Env) Step(action int) StepResult {
	initialScore := e.Board.Score(game.PlayerA)
	playerBPoints := 0

	extraTurn, endgame, err := e.Board.Move(action, game.PlayerA)
	if err != nil {
		return StepResult{
			Observation: e.observation(),
			Reward:      InvalidReward,
			Done:        true,
			Info:        map[string]string{"winner": "B from invalid move"},
		}
	}

	if endgame {
		return e.outcome()
	}

	if !extraTurn {
		endgame, playerBPoints = e.opponentTurn()
		if endgame {
			return e.outcome()
		}
	}

	// Shaped reward: how much A scored over B this step, plus a bonus for
	// earning another turn.
	reward := float64(e.Board.Score(game.PlayerA) - initialScore - playerBPoints)
	if extraTurn {
		reward += ExtraTurnBonus
	}

	return StepResult{
		Observation: e.observation(),
		Reward:      reward,
		Info:        map[string]string{},
	}
}

// ActionMask reports which of A's pockets are currently playable, indexed
// by action-1. For callers that mask invalid actions externally.
func (e *Env) ActionMask() []bool {
	mask := make([]bool, e.sideSize)
	for _, move := range e.Board.PossibleMoves(game.PlayerA) {
		mask[move-1] = true
	}
	return mask
}

// opponentTurn plays side B until its turn ends or the game does, and
// returns how many points B scored.
func (e *Env) opponentTurn() (bool, int) {
	initialScore := e.Board.Score(game.PlayerB)

	endgame := false
	extraTurn := true
	for !endgame && extraTurn {
		var move int
		if e.stochasticProb > 0 && e.rng.Float64() < e.stochasticProb {
			moves := e.Board.PossibleMoves(game.PlayerB)
			move = moves[e.rng.Intn(len(moves))]
		} else {
			move, _ = e.opponent.FindMove(e.Board, game.PlayerB)
		}

		var err error
		extraTurn, endgame, err = e.Board.Move(move, game.PlayerB)
		if err != nil {
			panic(err) // Opponent moves come from search or PossibleMoves
		}
	}

	return endgame, e.Board.Score(game.PlayerB) - initialScore
}

func (e *Env) outcome() StepResult {
	scoreA, scoreB := e.Board.Score(game.PlayerA), e.Board.Score(game.PlayerB)
	result := StepResult{
		Observation: e.observation(),
		Done:        true,
	}
	switch {
	case scoreA > scoreB:
		result.Reward = WinReward
		result.Info = map[string]string{"winner": "A"}
	case scoreA < scoreB:
		result.Reward = LossReward
		result.Info = map[string]string{"winner": "B"}
	default:
		result.Reward = DrawReward
		result.Info = map[string]string{"winner": "Draw"}
	}
	return result
}

func (e *Env) observation() []int {
	obs := make([]int, len(e.Board.Pockets))
	copy(obs, e.Board.Pockets)
	return obs
}
