package game

// Phase classifies the stage of the game for evaluation weighting. It is
// derived from the board on demand, never stored.
type Phase int8

const (
	Opening Phase = iota
	Midgame
	Endgame
)

func (p Phase) String() string {
	switch p {
	case Opening:
		return "opening"
	case Midgame:
		return "midgame"
	default:
		return "endgame"
	}
}

// openingPipThreshold is the combined pip count above which the game still
// counts as the opening. A tuning value, not a rule.
const openingPipThreshold = 280

// CurrentPhase derives the game phase: endgame once either side has borne
// off or both sides are fully home (the race is on), opening while most
// checkers remain undeveloped, midgame otherwise.
func CurrentPhase(b Board) Phase {
	if b.Off[White] > 0 || b.Off[Black] > 0 || (b.AllHome(White) && b.AllHome(Black)) {
		return Endgame
	}
	if b.PipCount(White)+b.PipCount(Black) > openingPipThreshold {
		return Opening
	}
	return Midgame
}
