package searcher

import (
	"context"
	"math"
	"sync"
	"time"

	"golang.org/x/exp/rand"

	"backgammon/experiments/metrics"
	"backgammon/game"
)

// Searcher picks move sequences by depth-bounded expectimax: decision nodes
// branch on legal sequences with alpha-beta pruning, chance nodes branch on
// sampled dice outcomes and average their children. Every call is a fresh,
// self-contained tree search; nothing persists between turns.
type Searcher struct {
	maxDepth   int
	samples    int
	goroutines int
	evaluate   game.Evaluate
	seed       uint64
	fullWidth  bool
	metrics    metrics.Collector
}

type Option func(*Searcher)

// WithMaxDepth bounds the search to the given number of plies.
func WithMaxDepth(depth int) Option {
	return func(s *Searcher) {
		if depth > 0 {
			s.maxDepth = depth
		}
	}
}

// WithSamples sets how many rolls each chance node draws.
func WithSamples(n int) Option {
	return func(s *Searcher) {
		if n > 0 {
			s.samples = n
		}
	}
}

// WithGoroutines sets the root-candidate worker pool size.
func WithGoroutines(n int) Option {
	return func(s *Searcher) {
		if n > 0 {
			s.goroutines = n
		}
	}
}

// WithEvaluate substitutes the leaf evaluator.
func WithEvaluate(evaluate game.Evaluate) Option {
	return func(s *Searcher) {
		if evaluate != nil {
			s.evaluate = evaluate
		}
	}
}

// WithSeed fixes the dice-sampling seed, making the search deterministic for
// a given board and roll.
func WithSeed(seed uint64) Option {
	return func(s *Searcher) {
		s.seed = seed
	}
}

// WithFullWidth replaces sampling with the exact weighted expectation over
// all 21 rolls at every chance node. Far slower; meant for calibration and
// tests.
func WithFullWidth() Option {
	return func(s *Searcher) {
		s.fullWidth = true
	}
}

// WithMetrics collects node and pruning counters for each search.
func WithMetrics() Option {
	return func(s *Searcher) {
		s.metrics = metrics.NewCollector()
	}
}

func New(options ...Option) *Searcher {
	s := &Searcher{ // Default values
		maxDepth:   DefaultMaxDepth,
		samples:    DefaultSamples,
		goroutines: DefaultGoroutines,
		evaluate:   game.EvaluateAdaptive,
		metrics:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	if s.seed == 0 {
		s.seed = uint64(time.Now().UnixNano())
	}
	return s
}

// ChooseBestSequence returns the best full play for the roll, with the
// metrics of the search that found it. Root candidates come from the move
// generator and are scored independently by a worker pool, each worker
// simulating the opponent's reply with its own dice stream. Ties go to the
// first candidate in generation order. If the context expires mid-search,
// the best fully scored candidate so far is returned.
func (s *Searcher) ChooseBestSequence(ctx context.Context, b game.Board, side game.Side, roll game.Roll) (game.Sequence, metrics.SearchMetric) {
	candidates := game.LegalSequences(b, side, roll)
	s.metrics.Start(s.maxDepth, s.samples, s.goroutines, len(candidates))

	// A forced pass or a single playable sequence needs no search.
	if len(candidates) == 1 {
		return candidates[0], s.metrics.Complete()
	}

	scores := make([]float64, len(candidates))
	scored := make([]bool, len(candidates))

	task := make(chan int, len(candidates))
	for i := range candidates {
		task <- i
	}
	close(task)

	var wg sync.WaitGroup
	for w := 0; w < s.goroutines; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range task {
				if ctx != nil && ctx.Err() != nil {
					return
				}
				// Seed per candidate, not per worker, so the result does not
				// depend on how candidates land on workers.
				sampler := game.NewSampler(rand.NewSource(s.seed + uint64(i)))
				scores[i] = s.chanceValue(candidates[i].Result, side.Opponent(), side,
					s.maxDepth-1, math.Inf(-1), math.Inf(1), sampler)
				scored[i] = true
			}
		}()
	}
	wg.Wait()

	best := -1
	bestScore := math.Inf(-1)
	for i := range candidates {
		if scored[i] && scores[i] > bestScore {
			bestScore = scores[i]
			best = i
		}
	}
	if best < 0 { // Deadline hit before any candidate finished
		best = 0
	}
	return candidates[best], s.metrics.Complete()
}
