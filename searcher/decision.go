package searcher

import (
	"math"

	"backgammon/game"
)

// decisionValue scores a position with a known roll: the side to move picks
// among its legal sequences, maximizing when it is the root side and
// minimizing otherwise, with alpha-beta cutoffs over the siblings. A forced
// pass hands the turn straight to the opponent's chance node.
func (s *Searcher) decisionValue(b game.Board, toMove, root game.Side, depth int, alpha, beta float64, roll game.Roll, sampler *game.Sampler) float64 {
	s.metrics.AddDecision()

	outcomes := game.LegalSequences(b, toMove, roll)
	if len(outcomes) == 1 && outcomes[0].IsPass() {
		return s.chanceValue(b, toMove.Opponent(), root, depth-1, alpha, beta, sampler)
	}

	if toMove == root {
		best := math.Inf(-1)
		for _, o := range outcomes {
			v := s.chanceValue(o.Result, toMove.Opponent(), root, depth-1, alpha, beta, sampler)
			if v > best {
				best = v
			}
			if best > alpha {
				alpha = best
			}
			if beta <= alpha {
				s.metrics.AddPrune()
				break
			}
		}
		return best
	}

	worst := math.Inf(1)
	for _, o := range outcomes {
		v := s.chanceValue(o.Result, toMove.Opponent(), root, depth-1, alpha, beta, sampler)
		if v < worst {
			worst = v
		}
		if worst < beta {
			beta = worst
		}
		if beta <= alpha {
			s.metrics.AddPrune()
			break
		}
	}
	return worst
}
