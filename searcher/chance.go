package searcher

import (
	"backgammon/game"
)

// chanceValue scores a position where the side to move has not rolled yet.
// Terminal boards and exhausted depth short-circuit to the dominant score or
// the evaluator; otherwise the value is the mean of per-roll decision values,
// sampled by default or the exact weighted mean over all 21 rolls in
// full-width mode.
func (s *Searcher) chanceValue(b game.Board, toMove, root game.Side, depth int, alpha, beta float64, sampler *game.Sampler) float64 {
	if winner, over := b.Winner(); over {
		if winner == root {
			return winScore
		}
		return -winScore
	}
	if depth <= 0 {
		s.metrics.AddEvaluation()
		return s.evaluate(b, root)
	}
	s.metrics.AddChance()

	if s.fullWidth {
		total := 0.0
		for _, wr := range game.AllRolls {
			total += wr.Weight * s.decisionValue(b, toMove, root, depth, alpha, beta, wr.Roll, sampler)
		}
		// AllRolls weights sum to 1.
		return total
	}

	// Fresh draw on every visit: the sample approximates this node's own
	// expectation and must not correlate with sibling nodes.
	rolls := sampler.Sample(s.samples)
	total := 0.0
	for _, roll := range rolls {
		total += s.decisionValue(b, toMove, root, depth, alpha, beta, roll, sampler)
	}
	return total / float64(len(rolls))
}
