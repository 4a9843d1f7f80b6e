package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"backgammon/engine"
	"backgammon/experiments"
	"backgammon/game"
	"backgammon/searcher"
)

func main() {
	mode := flag.String("mode", "play", "play | depth-experiment | sampling-experiment")
	humanSide := flag.String("side", "w", "Human plays white (w) or black (b)")
	depth := flag.Int("depth", searcher.DefaultMaxDepth, "Search depth in plies")
	samples := flag.Int("samples", searcher.DefaultSamples, "Dice samples per chance node")
	goroutines := flag.Int("goroutines", searcher.DefaultGoroutines, "Parallel root workers")
	seed := flag.Uint64("seed", 0, "Random seed (0 = time based)")
	think := flag.Duration("think", 0, "Optional AI time budget per move (0 = unbounded)")
	weightsFile := flag.String("weights", "", "YAML evaluation weights file")
	debug := flag.Bool("debug", false, "Verbose logging")
	flag.Parse()

	level := zerolog.InfoLevel
	if *debug {
		level = zerolog.DebugLevel
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).With().Timestamp().Logger()

	evaluate := game.EvaluateAdaptive
	if *weightsFile != "" {
		pw, err := game.LoadPhaseWeights(*weightsFile)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load weights")
		}
		evaluate = game.Evaluator(pw)
	}

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}

	switch *mode {
	case "depth-experiment":
		experiments.RunDepthExperiment(*seed)
	case "sampling-experiment":
		experiments.RunSamplingExperiment(*seed)
	case "play":
		human := game.White
		if *humanSide == "b" {
			human = game.Black
		}
		s := searcher.New(
			searcher.WithMaxDepth(*depth),
			searcher.WithSamples(*samples),
			searcher.WithGoroutines(*goroutines),
			searcher.WithSeed(*seed),
			searcher.WithEvaluate(evaluate),
		)
		play(human, s, *seed, *think)
	default:
		log.Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}

func play(human game.Side, s *searcher.Searcher, seed uint64, think time.Duration) {
	e := engine.New(rand.NewSource(seed))
	reader := bufio.NewScanner(os.Stdin)
	fmt.Printf("You are %s. Enter moves as src/dst (13/7, bar/20, 6/off).\n\n", human)

	for !e.Board.IsTerminal() && e.Turns < engine.MaxTurns {
		side := e.Turn
		roll := e.Roll()
		fmt.Println(renderBoard(e.Board))
		fmt.Printf("%s to play %s  (pips: you %d, ai %d, phase %s)\n",
			side, roll, e.Board.PipCount(human), e.Board.PipCount(human.Opponent()),
			game.CurrentPhase(e.Board))

		legal := e.LegalSequences(roll)
		if len(legal) == 1 && legal[0].IsPass() {
			fmt.Println("No legal moves; turn passes.")
			if err := e.Play(roll, legal[0]); err != nil {
				log.Fatal().Err(err).Msg("pass rejected")
			}
			continue
		}

		var seq game.Sequence
		if side == human {
			seq = promptSequence(reader, legal)
		} else {
			start := time.Now()
			seq = aiMove(s, e.Board, side, roll, think)
			fmt.Printf("AI plays %s (%.2fs)\n\n", seq, time.Since(start).Seconds())
		}

		if err := e.Play(roll, seq); err != nil {
			fmt.Printf("Rejected: %v\n", err)
		}
	}

	fmt.Println(renderBoard(e.Board))
	if winner, over := e.Winner(); over {
		if winner == human {
			fmt.Println("You win!")
		} else {
			fmt.Println("The AI wins.")
		}
	} else {
		fmt.Println("Game stopped without a winner.")
	}
}

func aiMove(s *searcher.Searcher, b game.Board, side game.Side, roll game.Roll, think time.Duration) game.Sequence {
	ctx := context.Background()
	if think > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, think)
		defer cancel()
	}
	seq, _ := s.ChooseBestSequence(ctx, b, side, roll)
	return seq
}

// promptSequence reads one move at a time, narrowing the legal sequences to
// those matching the entered prefix until a full play is fixed. The
// forced-usage rule means every legal play has the same length, so there is
// no early stop.
func promptSequence(reader *bufio.Scanner, legal []game.Sequence) game.Sequence {
	prefix := 0
	needed := len(legal[0].Moves)
	candidates := legal

	for prefix < needed {
		shown := map[string]bool{}
		fmt.Printf("Available move %d/%d:", prefix+1, needed)
		for _, cand := range candidates {
			m := cand.Moves[prefix].String()
			if !shown[m] {
				shown[m] = true
				fmt.Printf(" %s", m)
			}
		}
		fmt.Printf("\n> ")

		if !reader.Scan() {
			// Input closed; play the first remaining candidate.
			return candidates[0]
		}
		src, dst, err := parseMove(reader.Text())
		if err != nil {
			fmt.Printf("Bad input: %v\n", err)
			continue
		}

		var next []game.Sequence
		for _, cand := range candidates {
			m := cand.Moves[prefix]
			if m.Src == src && m.Dst == dst {
				next = append(next, cand)
			}
		}
		if len(next) == 0 {
			fmt.Printf("%d/%d is not playable here.\n", src, dst)
			continue
		}
		candidates = next
		prefix++
	}
	return candidates[0]
}
