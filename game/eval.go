package game

// Evaluate scores a board from one side's perspective; higher is better for
// that side. Implementations must be pure so search scoring is reproducible.
type Evaluate func(b Board, perspective Side) float64

var defaultWeights = DefaultPhaseWeights()

// EvaluateAdaptive is the standard phase-adaptive evaluator with the default
// weight tables.
func EvaluateAdaptive(b Board, perspective Side) float64 {
	return evaluate(b, perspective, defaultWeights.For(CurrentPhase(b)))
}

// Evaluator builds a phase-adaptive evaluator over custom weight tables.
func Evaluator(pw PhaseWeights) Evaluate {
	return func(b Board, perspective Side) float64 {
		return evaluate(b, perspective, pw.For(CurrentPhase(b)))
	}
}

func evaluate(b Board, side Side, w Weights) float64 {
	opp := side.Opponent()
	pip := b.PipCount(side)
	oppPip := b.PipCount(opp)

	score := float64(oppPip-pip) * w.PipFactor
	score += float64(b.Off[side]-b.Off[opp]) * w.OffFactor
	score += float64(b.Bar[side]) * w.BarPenalty
	score += float64(b.Bar[opp]) * w.HitBonus

	homeMade := 0
	for p := 1; p <= NumPoints; p++ {
		if b.Checkers(side, p) < 2 {
			continue
		}
		score += w.PointBonus
		if side.InHome(p) {
			score += w.HomePointBonus
			homeMade++
			if side.Distance(p) <= 3 {
				score += w.InnerHomeBonus
			}
		}
		if opp.InHome(p) {
			// A made point in the opponent's home board is an anchor.
			score += w.AnchorBonus
		}
	}

	blotPenalty := 0.0
	for _, p := range b.Blots(side) {
		value := 1.0
		if side.InHome(p) {
			// A blot deep in our own board is hit at maximum cost.
			value = 1.5
		}
		blotPenalty += float64(ShotCount(b, side, p)) * w.ShotPenaltyFactor * value
	}
	if b.Bar[opp] > 0 {
		// The opponent must re-enter before hitting anything.
		blotPenalty *= w.BlotReliefOppOnBar
	}
	score += blotPenalty

	for _, pr := range b.Primes(side) {
		score += float64(pr.Len-3) * w.PrimeBaseBonus
		if pr.Len >= 5 {
			score += float64(b.TrappedBehind(pr, side)) * w.TrappedBonus
		}
	}

	if homeMade >= 3 && b.Bar[opp] > 0 {
		score += w.HomePrisonBonus * float64(b.Bar[opp])
	}

	// Far behind in the race, back checkers stop being assets: discount them
	// and lean on pure race value.
	if pip > 0 && oppPip > 0 && float64(pip) >= 1.5*float64(oppPip) {
		backPips := 0
		lo, hi := opp.HomeRange()
		for p := lo; p <= hi; p++ {
			backPips += b.Checkers(side, p) * side.Distance(p)
		}
		score -= float64(backPips) * w.FarBehindBackFactor
	}

	return score
}

// ShotCount counts the distinct dice rolls, out of the 21, with which the
// opponent hits the side's blot on the given point, through direct shots or
// combination shots whose intermediate landing points are open.
func ShotCount(b Board, side Side, blot int) int {
	attacker := side.Opponent()
	count := 0
	for _, wr := range AllRolls {
		if hitsBlot(b, attacker, wr.Roll, blot) {
			count++
		}
	}
	return count
}

func hitsBlot(b Board, attacker Side, r Roll, target int) bool {
	dir := attacker.direction()

	shooterAt := func(dist int) bool {
		q := target - dist*dir
		return q >= 1 && q <= NumPoints && b.Checkers(attacker, q) > 0
	}
	open := func(p int) bool {
		return p >= 1 && p <= NumPoints && !b.blocked(attacker, p)
	}

	// Direct shots, from a point or entering off the bar.
	for _, d := range []int{r.Hi, r.Lo} {
		if shooterAt(d) {
			return true
		}
		if b.Bar[attacker] > 0 && attacker.EntryPoint(d) == target {
			return true
		}
		if r.IsDouble() {
			break
		}
	}

	if r.IsDouble() {
		// Combination shots at 2d, 3d, 4d with every stop open.
		for k := 2; k <= 4; k++ {
			if shooterAt(k * r.Hi) {
				clear := true
				for j := 1; j < k; j++ {
					if !open(target - j*r.Hi*dir) {
						clear = false
						break
					}
				}
				if clear {
					return true
				}
			}
		}
		if b.Bar[attacker] > 0 {
			entry := attacker.EntryPoint(r.Hi)
			if open(entry) {
				for k := 1; k <= 3; k++ {
					if entry+k*r.Hi*dir == target {
						clear := true
						for j := 1; j < k; j++ {
							if !open(entry + j*r.Hi*dir) {
								clear = false
								break
							}
						}
						if clear {
							return true
						}
					}
				}
			}
		}
		return false
	}

	// Plain roll combination: the full distance with either die first.
	if shooterAt(r.Hi + r.Lo) {
		if open(target-r.Hi*dir) || open(target-r.Lo*dir) {
			return true
		}
	}
	if b.Bar[attacker] > 0 {
		for _, pair := range [2][2]int{{r.Hi, r.Lo}, {r.Lo, r.Hi}} {
			entry := attacker.EntryPoint(pair[0])
			if open(entry) && entry+pair[1]*dir == target {
				return true
			}
		}
	}
	return false
}
