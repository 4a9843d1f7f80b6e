package searcher

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"backgammon/game"
)

// blockedEntryBoard puts White on the bar against a closed Black home board.
func blockedEntryBoard() game.Board {
	var b game.Board
	b.Bar[game.White] = 1
	b.Points[1] = 14
	for p := 19; p <= 24; p++ {
		b.Points[p] = -2
	}
	b.Points[12] = -3
	return b
}

func TestForcedPassNeedsNoSearch(t *testing.T) {
	b := blockedEntryBoard()
	s := New(WithSeed(1), WithMetrics())

	seq, metric := s.ChooseBestSequence(context.Background(), b, game.White, game.NewRoll(6, 3))

	require.True(t, seq.IsPass(), "No entry point is open, the play must be a pass")
	require.Equal(t, b, seq.Result, "A pass leaves the board unchanged")
	require.Equal(t, 1, metric.Candidates, "The pass is the only candidate")
	require.Zero(t, metric.Decisions, "A single candidate must not be searched")
}

func TestChoosesWinningBearOff(t *testing.T) {
	// White can win outright with 5/off 1/off, or waste the five on 5/4.
	var b game.Board
	b.Points[5] = 1
	b.Points[1] = 1
	b.Off[game.White] = 13
	b.Points[19] = -15

	roll := game.NewRoll(5, 1)
	candidates := game.LegalSequences(b, game.White, roll)
	require.Greater(t, len(candidates), 1, "The position must offer a real choice")

	s := New(WithMaxDepth(1), WithFullWidth(), WithSeed(1))
	seq, _ := s.ChooseBestSequence(context.Background(), b, game.White, roll)

	winner, over := seq.Result.Winner()
	require.True(t, over, "The chosen play must end the game")
	require.Equal(t, game.White, winner)
}

// exactChance and exactDecision mirror the search recursion without any
// pruning, as a reference for full-width results.
func exactChance(b game.Board, toMove, root game.Side, depth int) float64 {
	if winner, over := b.Winner(); over {
		if winner == root {
			return winScore
		}
		return -winScore
	}
	if depth <= 0 {
		return game.EvaluateAdaptive(b, root)
	}
	total := 0.0
	for _, wr := range game.AllRolls {
		total += wr.Weight * exactDecision(b, toMove, root, depth, wr.Roll)
	}
	return total
}

func exactDecision(b game.Board, toMove, root game.Side, depth int, roll game.Roll) float64 {
	outcomes := game.LegalSequences(b, toMove, roll)
	if len(outcomes) == 1 && outcomes[0].IsPass() {
		return exactChance(b, toMove.Opponent(), root, depth-1)
	}
	best := math.Inf(-1)
	worst := math.Inf(1)
	for _, o := range outcomes {
		v := exactChance(o.Result, toMove.Opponent(), root, depth-1)
		if v > best {
			best = v
		}
		if v < worst {
			worst = v
		}
	}
	if toMove == root {
		return best
	}
	return worst
}

func TestPruningPreservesFullWidthChoice(t *testing.T) {
	// A short bear-off race, small enough to score exhaustively.
	var b game.Board
	b.Points[3] = 1
	b.Points[5] = 1
	b.Off[game.White] = 13
	b.Points[20] = -1
	b.Points[22] = -1
	b.Off[game.Black] = 13

	roll := game.NewRoll(2, 1)
	candidates := game.LegalSequences(b, game.White, roll)
	require.Greater(t, len(candidates), 1, "The position must offer a real choice")

	best := -1
	bestScore := math.Inf(-1)
	for i, c := range candidates {
		score := exactChance(c.Result, game.Black, game.White, 1)
		if score > bestScore {
			bestScore = score
			best = i
		}
	}

	s := New(WithMaxDepth(2), WithFullWidth(), WithGoroutines(1), WithSeed(1))
	seq, _ := s.ChooseBestSequence(context.Background(), b, game.White, roll)

	require.Equal(t, candidates[best].Result, seq.Result,
		"Pruned search must pick the same play as the exhaustive reference")
}

func TestSeedMakesSearchDeterministic(t *testing.T) {
	b := game.Start()
	roll := game.NewRoll(3, 1)

	newSearcher := func() *Searcher {
		return New(WithSeed(99), WithMaxDepth(2), WithSamples(6), WithGoroutines(3))
	}

	first, _ := newSearcher().ChooseBestSequence(context.Background(), b, game.White, roll)
	second, _ := newSearcher().ChooseBestSequence(context.Background(), b, game.White, roll)

	require.Equal(t, first.Result, second.Result,
		"Same seed and position must give the same play, regardless of worker scheduling")
}

func TestCancelledContextStillReturnsALegalPlay(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	b := game.Start()
	roll := game.NewRoll(6, 5)
	s := New(WithSeed(5))

	seq, _ := s.ChooseBestSequence(ctx, b, game.White, roll)

	found := false
	for _, c := range game.LegalSequences(b, game.White, roll) {
		if c.Result == seq.Result {
			found = true
			break
		}
	}
	require.True(t, found, "An expired search must still return a legal play")
}

func TestMetricsCountSearchWork(t *testing.T) {
	s := New(WithMetrics(), WithMaxDepth(2), WithSamples(3), WithGoroutines(2), WithSeed(3))

	_, metric := s.ChooseBestSequence(context.Background(), game.Start(), game.White, game.NewRoll(3, 1))

	require.Equal(t, 2, metric.Depth)
	require.Equal(t, 3, metric.Samples)
	require.Greater(t, metric.Candidates, 1)
	require.Greater(t, metric.Chances, 0, "Each candidate opens at least one chance node")
	require.Greater(t, metric.Decisions, 0)
	require.Greater(t, metric.Evaluations, 0, "Depth exhaustion must reach the evaluator")
	require.Greater(t, metric.Duration, time.Duration(0))
}
