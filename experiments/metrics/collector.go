package metrics

import (
	"sync/atomic"
	"time"
)

// SearchMetric summarizes one search invocation.
type SearchMetric struct {
	Depth       int
	Samples     int
	Goroutines  int
	Candidates  int // root-level move sequences considered
	Decisions   int // decision nodes expanded
	Chances     int // chance nodes expanded
	Evaluations int // leaf evaluator calls
	Prunes      int // alpha-beta cutoffs
	Duration    time.Duration
}

// MoveRecord ties a search metric to its place in a game.
type MoveRecord struct {
	Game int
	Step int
	Side string
	SearchMetric
}

// GameRecord summarizes one finished game of a matchup.
type GameRecord struct {
	ID         int
	Agent1     int // AgentConfig.ID
	Agent2     int // AgentConfig.ID
	Winner     string
	TotalMoves int
	Duration   time.Duration
}

// AgentConfig identifies one searcher configuration under measurement.
type AgentConfig struct {
	ID         int
	Depth      int
	Samples    int
	Goroutines int
	FullWidth  bool
}

// Collector accumulates search counters. Implementations must be safe for
// use from the search worker goroutines.
type Collector interface {
	Start(depth, samples, goroutines, candidates int)
	AddDecision()
	AddChance()
	AddEvaluation()
	AddPrune()
	Complete() SearchMetric
}

type collector struct {
	depth       int
	samples     int
	goroutines  int
	candidates  int
	startTime   time.Time
	decisions   atomic.Int64
	chances     atomic.Int64
	evaluations atomic.Int64
	prunes      atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start(depth, samples, goroutines, candidates int) {
	c.startTime = time.Now()
	c.depth = depth
	c.samples = samples
	c.goroutines = goroutines
	c.candidates = candidates
	c.decisions.Store(0)
	c.chances.Store(0)
	c.evaluations.Store(0)
	c.prunes.Store(0)
}

func (c *collector) AddDecision()   { c.decisions.Add(1) }
func (c *collector) AddChance()     { c.chances.Add(1) }
func (c *collector) AddEvaluation() { c.evaluations.Add(1) }
func (c *collector) AddPrune()      { c.prunes.Add(1) }

func (c *collector) Complete() SearchMetric {
	return SearchMetric{
		Depth:       c.depth,
		Samples:     c.samples,
		Goroutines:  c.goroutines,
		Candidates:  c.candidates,
		Decisions:   int(c.decisions.Load()),
		Chances:     int(c.chances.Load()),
		Evaluations: int(c.evaluations.Load()),
		Prunes:      int(c.prunes.Load()),
		Duration:    time.Since(c.startTime),
	}
}

type dummyCollector struct{}

// NewDummyCollector returns a collector that records nothing, for searches
// where metrics are not wanted.
func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (dummyCollector) Start(depth, samples, goroutines, candidates int) {}
func (dummyCollector) AddDecision()                                     {}
func (dummyCollector) AddChance()                                       {}
func (dummyCollector) AddEvaluation()                                   {}
func (dummyCollector) AddPrune()                                        {}
func (dummyCollector) Complete() SearchMetric                           { return SearchMetric{} }
