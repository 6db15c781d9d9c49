package experiments

import (
	"fmt"
	"runtime"
	"time"

	"mancala/engine"
	"mancala/experiments/metrics"
	"mancala/game"
	"mancala/searcher"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const NumGames = 20 // Per match up

// RunPruningExperiment pits the plain and pruned searchers against each
// other at equal depths. Both pick moves of the same value, so the move
// records (nodes, cutoffs, elapsed) are the interesting output.
func RunPruningExperiment() error {
	depths := []int{2, 3, 4, 5}
	configs := []metrics.AgentConfig{}
	matchUps := [][2]metrics.AgentConfig{}
	for i, depth := range depths {
		plain := metrics.AgentConfig{ID: 2*i + 1, Kind: "minimax", Depth: depth}
		pruned := metrics.AgentConfig{ID: 2*i + 2, Kind: "alphabeta", Depth: depth}
		configs = append(configs, plain, pruned)
		matchUps = append(matchUps, [2]metrics.AgentConfig{plain, pruned})
	}

	return runExperiment("pruning", configs, matchUps)
}

// RunDepthExperiment pairs a shallow baseline against deeper alpha-beta
// agents to measure how depth converts into playing strength.
func RunDepthExperiment() error {
	baseline := metrics.AgentConfig{ID: 0, Kind: "alphabeta", Depth: 2}
	configs := []metrics.AgentConfig{baseline}
	matchUps := [][2]metrics.AgentConfig{}
	for i, depth := range []int{3, 4, 5, 6} {
		config := metrics.AgentConfig{ID: i + 1, Kind: "alphabeta", Depth: depth}
		configs = append(configs, config)
		matchUps = append(matchUps, [2]metrics.AgentConfig{baseline, config})
	}

	return runExperiment("depth", configs, matchUps)
}

func runExperiment(name string, configs []metrics.AgentConfig, matchUps [][2]metrics.AgentConfig) error {
	writer, err := metrics.NewWriter(name)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}

	log.Info().Msgf("starting %s experiment...", name)

	gameRecords := make([]metrics.GameRecord, len(matchUps)*NumGames)
	moveRecords := make([][]metrics.MoveRecord, len(matchUps)*NumGames)

	var group errgroup.Group
	group.SetLimit(runtime.NumCPU())

	for mi, matchup := range matchUps {
		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...",
			mi+1, len(matchUps), matchup[0], matchup[1])

		for i := 0; i < NumGames; i++ {
			id := mi*NumGames + i
			config1, config2 := matchup[0], matchup[1]
			// Alternate the starting side so neither config always moves first
			starting := game.PlayerA
			if i%2 == 1 {
				starting = game.PlayerB
			}

			group.Go(func() error {
				record, moves := runGame(id, config1, config2, starting)
				gameRecords[id] = record
				moveRecords[id] = moves
				return nil
			})
		}
	}

	if err := group.Wait(); err != nil {
		return err
	}

	flattened := []metrics.MoveRecord{}
	for _, moves := range moveRecords {
		flattened = append(flattened, moves...)
	}

	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return fmt.Errorf("failed to store game records: %w", err)
	}
	if err := writer.WriteMoveRecords(flattened); err != nil {
		return fmt.Errorf("failed to store move records: %w", err)
	}

	log.Info().Msgf("finished %s experiment: %d games", name, len(gameRecords))
	return nil
}

func runGame(id int, config1, config2 metrics.AgentConfig, starting game.Player) (metrics.GameRecord, []metrics.MoveRecord) {
	local := engine.NewLocal(game.NewStandardBoard(), newAgent(config1), newAgent(config2))
	local.Starting = starting

	_, gameMetric, moveMetrics := local.Run()

	record := metrics.GameRecord{
		ID:         id,
		Agent1:     config1.ID,
		Agent2:     config2.ID,
		GameMetric: gameMetric,
	}
	moves := make([]metrics.MoveRecord, len(moveMetrics))
	for i, metric := range moveMetrics {
		moves[i] = metrics.MoveRecord{Game: id, MoveMetric: metric}
	}
	return record, moves
}

func newAgent(config metrics.AgentConfig) engine.Agent {
	options := []searcher.Option{}
	if config.Depth > 0 {
		options = append(options, searcher.WithDepth(config.Depth))
	}
	if config.Budget > 0 {
		options = append(options, searcher.WithBudget(config.Budget))
	}

	switch config.Kind {
	case "minimax":
		return searcher.NewMinimax(options...)
	case "alphabeta":
		return searcher.NewAlphaBeta(options...)
	case "random":
		return engine.NewRandomAgent(uint64(time.Now().UnixNano()))
	default:
		panic(fmt.Sprintf("unknown agent kind %q", config.Kind))
	}
}
