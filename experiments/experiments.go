package experiments

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"backgammon/engine"
	"backgammon/experiments/metrics"
	"backgammon/searcher"
)

const (
	// NumGames per matchup.
	NumGames = 20
)

// RunDepthExperiment pits a depth-1 baseline against deeper searches to
// measure what each extra ply buys.
func RunDepthExperiment(seed uint64) {
	baseline := metrics.AgentConfig{ID: 0, Depth: 1, Samples: searcher.DefaultSamples, Goroutines: searcher.DefaultGoroutines}
	configs := []metrics.AgentConfig{
		{ID: 1, Depth: 2, Samples: searcher.DefaultSamples, Goroutines: searcher.DefaultGoroutines},
		{ID: 2, Depth: 3, Samples: searcher.DefaultSamples, Goroutines: searcher.DefaultGoroutines},
	}

	matchUps := [][2]metrics.AgentConfig{}
	for _, config := range configs {
		matchUps = append(matchUps, [2]metrics.AgentConfig{baseline, config})
	}

	runExperiment("depth", append(configs, baseline), matchUps, seed)
}

// RunSamplingExperiment compares sample counts at the chance nodes against
// the exact full-width expectation.
func RunSamplingExperiment(seed uint64) {
	full := metrics.AgentConfig{ID: 0, Depth: 2, Goroutines: searcher.DefaultGoroutines, FullWidth: true}
	configs := []metrics.AgentConfig{
		{ID: 1, Depth: 2, Samples: 7, Goroutines: searcher.DefaultGoroutines},
		{ID: 2, Depth: 2, Samples: 14, Goroutines: searcher.DefaultGoroutines},
		{ID: 3, Depth: 2, Samples: 21, Goroutines: searcher.DefaultGoroutines},
	}

	matchUps := [][2]metrics.AgentConfig{}
	for _, config := range configs {
		matchUps = append(matchUps, [2]metrics.AgentConfig{full, config})
	}

	runExperiment("sampling", append(configs, full), matchUps, seed)
}

func runExperiment(name string, configs []metrics.AgentConfig, matchUps [][2]metrics.AgentConfig, seed uint64) {
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}
	count := 0

	for _, matchUp := range matchUps {
		for i := 0; i < NumGames; i++ {
			count++
			// Alternate which config plays white.
			white, black := matchUp[0], matchUp[1]
			if i%2 == 1 {
				white, black = black, white
			}

			start := time.Now()
			gameSeed := seed + uint64(count)
			winner, moves := engine.Run(context.Background(),
				newAgent(white, gameSeed),
				newAgent(black, gameSeed+1),
				rand.NewSource(gameSeed))

			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     white.ID,
				Agent2:     black.ID,
				Winner:     winner,
				TotalMoves: len(moves),
				Duration:   time.Since(start),
			})
			for j := range moves {
				moves[j].Game = count
			}
			moveRecords = append(moveRecords, moves...)

			log.Info().
				Int("game", count).
				Int("white", white.ID).
				Int("black", black.ID).
				Str("winner", winner).
				Msgf("finished game %d of matchup", i+1)
		}
	}

	writer, err := metrics.NewWriter(name)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create metrics writer")
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		log.Fatal().Err(err).Msg("failed to write agent configs")
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		log.Fatal().Err(err).Msg("failed to write game records")
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		log.Fatal().Err(err).Msg("failed to write move records")
	}
	log.Info().Str("experiment", name).Int("games", count).Msg("experiment complete")
}

func newAgent(config metrics.AgentConfig, seed uint64) engine.Player {
	options := []searcher.Option{
		searcher.WithMetrics(),
		searcher.WithSeed(seed),
	}
	if config.Depth > 0 {
		options = append(options, searcher.WithMaxDepth(config.Depth))
	}
	if config.Samples > 0 {
		options = append(options, searcher.WithSamples(config.Samples))
	}
	if config.Goroutines > 0 {
		options = append(options, searcher.WithGoroutines(config.Goroutines))
	}
	if config.FullWidth {
		options = append(options, searcher.WithFullWidth())
	}
	return engine.NewSearchPlayer(searcher.New(options...))
}
