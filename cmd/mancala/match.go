package main

import (
	"fmt"
	"time"

	"mancala/engine"
	"mancala/game"
	"mancala/searcher"

	"github.com/rs/zerolog/log"
)

type MatchCmd struct {
	Games          int           `default:"10" help:"Number of games to play"`
	SideSize       int           `default:"6" help:"Pockets per side"`
	StartingPieces int           `default:"4" help:"Beads per pocket at the start"`
	AgentA         string        `default:"alphabeta" enum:"minimax,alphabeta,random" help:"Agent for side A"`
	AgentB         string        `default:"minimax" enum:"minimax,alphabeta,random" help:"Agent for side B"`
	DepthA         int           `default:"4" help:"Search depth for side A"`
	DepthB         int           `default:"4" help:"Search depth for side B"`
	Budget         time.Duration `help:"Optional per-move time budget for both sides"`
}

func (c *MatchCmd) Run() error {
	wins := map[string]int{}

	for i := 0; i < c.Games; i++ {
		board := game.NewBoard(c.SideSize, c.StartingPieces)
		local := engine.NewLocal(board, c.agent(c.AgentA, c.DepthA, uint64(i)), c.agent(c.AgentB, c.DepthB, uint64(i)+1))
		// Alternate the starting side
		if i%2 == 1 {
			local.Starting = game.PlayerB
		}

		log.Info().Msgf("starting game %d of %d...", i+1, c.Games)
		winner, metric, _ := local.Run()
		wins[winner]++

		log.Info().Msgf("game %d over in %d moves: %s wins %d-%d",
			i+1, metric.TotalMoves, winner, metric.ScoreA, metric.ScoreB)
	}

	fmt.Printf("A (%s depth %d): %d wins\n", c.AgentA, c.DepthA, wins["A"])
	fmt.Printf("B (%s depth %d): %d wins\n", c.AgentB, c.DepthB, wins["B"])
	fmt.Printf("Draws: %d\n", wins["Draw"])
	return nil
}

func (c *MatchCmd) agent(kind string, depth int, seed uint64) engine.Agent {
	options := []searcher.Option{searcher.WithDepth(depth)}
	if c.Budget > 0 {
		options = append(options, searcher.WithBudget(c.Budget))
	}

	switch kind {
	case "minimax":
		return searcher.NewMinimax(options...)
	case "alphabeta":
		return searcher.NewAlphaBeta(options...)
	default:
		return engine.NewRandomAgent(seed)
	}
}
