package game

import "sort"

// movegen enumerates every maximal legal move sequence for one turn.
//
// The exploration is recursive: play each legal single-die move, recurse on
// the remaining dice, and record the positions where no die can be used.
// Both die orders are explored for a plain roll so that forced-usage cases
// (a die playable only after the other) are found. Outcomes are deduplicated
// by resulting board, and only sequences consuming the maximum achievable
// number of dice survive.

type generator struct {
	side     Side
	outcomes map[Board]Sequence
	visited  map[genKey]struct{}
}

type genKey struct {
	board Board
	left  int8 // dice remaining to play
	next  int8 // next die value in this ordering
}

// LegalSequences returns every distinct full play for the roll, one Sequence
// per reachable resulting board, in a deterministic order. If nothing is
// playable the single pass sequence is returned, with Result equal to the
// input board.
func LegalSequences(b Board, side Side, roll Roll) []Sequence {
	g := &generator{
		side:     side,
		outcomes: make(map[Board]Sequence),
		visited:  make(map[genKey]struct{}),
	}

	if roll.IsDouble() {
		g.explore(b, roll.Dice(), nil)
	} else {
		g.explore(b, []int{roll.Hi, roll.Lo}, nil)
		g.explore(b, []int{roll.Lo, roll.Hi}, nil)
	}

	maxUsed := 0
	for _, seq := range g.outcomes {
		if len(seq.Moves) > maxUsed {
			maxUsed = len(seq.Moves)
		}
	}

	var results []Sequence
	for _, seq := range g.outcomes {
		if len(seq.Moves) == maxUsed {
			results = append(results, seq)
		}
	}

	// When only one die of a plain roll can be played, the higher must be
	// preferred if any play with it exists.
	if maxUsed == 1 && !roll.IsDouble() {
		var higher []Sequence
		for _, seq := range results {
			if seq.Moves[0].Die == roll.Hi {
				higher = append(higher, seq)
			}
		}
		if len(higher) > 0 {
			results = higher
		}
	}

	if len(results) == 0 {
		return []Sequence{{Result: b}}
	}
	// Map iteration order is randomized; callers seed dice streams per
	// candidate index, so the order must be stable across runs.
	sort.Slice(results, func(i, j int) bool {
		return boardLess(results[i].Result, results[j].Result)
	})
	return results
}

func boardLess(a, b Board) bool {
	for i := range a.Points {
		if a.Points[i] != b.Points[i] {
			return a.Points[i] < b.Points[i]
		}
	}
	for i := range a.Bar {
		if a.Bar[i] != b.Bar[i] {
			return a.Bar[i] < b.Bar[i]
		}
	}
	for i := range a.Off {
		if a.Off[i] != b.Off[i] {
			return a.Off[i] < b.Off[i]
		}
	}
	return false
}

func (g *generator) explore(b Board, dice []int, moves []Move) {
	if len(dice) == 0 {
		g.record(b, moves)
		return
	}

	key := genKey{board: b, left: int8(len(dice)), next: int8(dice[0])}
	if _, ok := g.visited[key]; ok {
		return
	}
	g.visited[key] = struct{}{}

	singles := singleDieMoves(b, g.side, dice[0])
	if len(singles) == 0 {
		g.record(b, moves)
		return
	}
	for _, m := range singles {
		g.explore(b.Apply(m), dice[1:], append(moves, m))
	}
}

func (g *generator) record(b Board, moves []Move) {
	if old, ok := g.outcomes[b]; ok && len(old.Moves) >= len(moves) {
		return
	}
	seq := Sequence{Moves: append([]Move(nil), moves...), Result: b}
	g.outcomes[b] = seq
}

// singleDieMoves lists every legal placement of one die. A checker on the
// bar must re-enter before anything else may move.
func singleDieMoves(b Board, side Side, die int) []Move {
	if b.Bar[side] > 0 {
		entry := side.EntryPoint(die)
		if b.blocked(side, entry) {
			return nil
		}
		return []Move{{
			Side: side,
			Src:  BarPoint,
			Dst:  entry,
			Die:  die,
			Hit:  b.Checkers(side.Opponent(), entry) == 1,
		}}
	}

	allHome := b.AllHome(side)
	var moves []Move
	for p := 1; p <= NumPoints; p++ {
		if b.Checkers(side, p) == 0 {
			continue
		}
		dst := p + die*side.direction()
		if dst >= 1 && dst <= NumPoints {
			if b.blocked(side, dst) {
				continue
			}
			moves = append(moves, Move{
				Side: side,
				Src:  p,
				Dst:  dst,
				Die:  die,
				Hit:  b.Checkers(side.Opponent(), dst) == 1,
			})
		} else if allHome && b.canBearOff(side, p, die) {
			moves = append(moves, Move{Side: side, Src: p, Dst: OffPoint, Die: die})
		}
	}
	return moves
}
