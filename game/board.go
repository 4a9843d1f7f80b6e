package game

import "fmt"

const (
	// NumPoints is the number of playable points on the board.
	NumPoints = 24
	// CheckersPerSide is the number of checkers each side owns.
	CheckersPerSide = 15
	// barDistance is the pip distance charged for a checker on the bar.
	barDistance = 25
)

// Synthetic move locations. A move with Src == BarPoint re-enters from the
// bar; a move with Dst == OffPoint bears the checker off.
const (
	BarPoint = 0
	OffPoint = 25
)

// Side identifies one of the two players. White moves from point 24 toward
// point 1 and bears off past 1; Black moves the opposite way.
type Side int8

const (
	White Side = iota
	Black
)

func (s Side) Opponent() Side {
	if s == White {
		return Black
	}
	return White
}

func (s Side) String() string {
	if s == White {
		return "white"
	}
	return "black"
}

// sign is the board encoding for the side: positive counts are White
// checkers, negative counts are Black checkers.
func (s Side) sign() int8 {
	if s == White {
		return 1
	}
	return -1
}

// direction is the delta a die value applies to a point number.
func (s Side) direction() int {
	if s == White {
		return -1
	}
	return 1
}

// EntryPoint is the point a bar checker re-enters on for a given die.
func (s Side) EntryPoint(die int) int {
	if s == White {
		return barDistance - die
	}
	return die
}

// Distance is the pip distance from a point to the side's bear-off edge.
func (s Side) Distance(point int) int {
	if s == White {
		return point
	}
	return barDistance - point
}

// HomeRange bounds the side's home quadrant, inclusive.
func (s Side) HomeRange() (lo, hi int) {
	if s == White {
		return 1, 6
	}
	return 19, 24
}

// InHome reports whether a point lies in the side's home quadrant.
func (s Side) InHome(point int) bool {
	lo, hi := s.HomeRange()
	return point >= lo && point <= hi
}

// Board is the complete position: signed checker counts per point plus bar
// and borne-off tallies per side. It is a comparable value type; Apply and
// friends return new values and never mutate the receiver's backing state
// visibly to the caller.
type Board struct {
	Points [NumPoints + 1]int8 // 1-based; Points[0] is unused
	Bar    [2]int8
	Off    [2]int8
}

// Start is the standard backgammon starting position.
func Start() Board {
	var b Board
	// White: 24-point (2), 13-point (5), 8-point (3), 6-point (5).
	b.Points[24] = 2
	b.Points[13] = 5
	b.Points[8] = 3
	b.Points[6] = 5
	// Black mirrored.
	b.Points[1] = -2
	b.Points[12] = -5
	b.Points[17] = -3
	b.Points[19] = -5
	return b
}

// Checkers returns the side's checker count on a point, 0 if the opponent
// holds it.
func (b Board) Checkers(s Side, point int) int {
	c := int(b.Points[point]) * int(s.sign())
	if c < 0 {
		return 0
	}
	return c
}

// blocked reports whether the side may not land on a point because the
// opponent has made it.
func (b Board) blocked(s Side, point int) bool {
	return int(b.Points[point])*int(s.Opponent().sign()) >= 2
}

// Apply plays a single die move and returns the resulting board. The move
// must already be legal; applying an illegal move is a programming error,
// not a runtime condition this method detects.
func (b Board) Apply(m Move) Board {
	sign := m.Side.sign()
	if m.Src == BarPoint {
		b.Bar[m.Side]--
	} else {
		b.Points[m.Src] -= sign
	}
	if m.Dst == OffPoint {
		b.Off[m.Side]++
		return b
	}
	if b.Checkers(m.Side.Opponent(), m.Dst) == 1 {
		// Hit: the lone opposing checker goes to the opponent's bar.
		b.Bar[m.Side.Opponent()]++
		b.Points[m.Dst] = sign
		return b
	}
	b.Points[m.Dst] += sign
	return b
}

// PipCount sums distance-to-home over the side's checkers. Bar checkers
// count at the maximum distance.
func (b Board) PipCount(s Side) int {
	pip := int(b.Bar[s]) * barDistance
	for p := 1; p <= NumPoints; p++ {
		pip += b.Checkers(s, p) * s.Distance(p)
	}
	return pip
}

// Winner returns the side that has borne off all checkers, if any.
func (b Board) Winner() (Side, bool) {
	if b.Off[White] >= CheckersPerSide {
		return White, true
	}
	if b.Off[Black] >= CheckersPerSide {
		return Black, true
	}
	return White, false
}

// IsTerminal reports whether either side has borne off all 15 checkers.
func (b Board) IsTerminal() bool {
	_, over := b.Winner()
	return over
}

// AllHome reports whether every one of the side's checkers is in its home
// quadrant (or already borne off), the precondition for bearing off.
func (b Board) AllHome(s Side) bool {
	if b.Bar[s] > 0 {
		return false
	}
	for p := 1; p <= NumPoints; p++ {
		if !s.InHome(p) && b.Checkers(s, p) > 0 {
			return false
		}
	}
	return true
}

// canBearOff reports whether a checker on the given home point may bear off
// with the die. Assumes AllHome already holds.
func (b Board) canBearOff(s Side, point, die int) bool {
	dist := s.Distance(point)
	if die == dist {
		return true
	}
	if die < dist {
		return false
	}
	// Overshoot is legal only from the rearmost occupied point.
	lo, hi := s.HomeRange()
	if s == White {
		for p := point + 1; p <= hi; p++ {
			if b.Checkers(s, p) > 0 {
				return false
			}
		}
	} else {
		for p := lo; p < point; p++ {
			if b.Checkers(s, p) > 0 {
				return false
			}
		}
	}
	return true
}

// Blots lists the side's points holding exactly one checker.
func (b Board) Blots(s Side) []int {
	var blots []int
	for p := 1; p <= NumPoints; p++ {
		if b.Checkers(s, p) == 1 {
			blots = append(blots, p)
		}
	}
	return blots
}

// MadePoints lists the side's points holding two or more checkers.
func (b Board) MadePoints(s Side) []int {
	var made []int
	for p := 1; p <= NumPoints; p++ {
		if b.Checkers(s, p) >= 2 {
			made = append(made, p)
		}
	}
	return made
}

// Prime is a maximal run of contiguous made points forming a blocking wall.
type Prime struct {
	Start int // lowest point in the run
	End   int // highest point in the run
	Len   int
}

// Primes returns the side's maximal runs of made points with length >= 4.
func (b Board) Primes(s Side) []Prime {
	var primes []Prime
	run := 0
	for p := 1; p <= NumPoints+1; p++ {
		if p <= NumPoints && b.Checkers(s, p) >= 2 {
			run++
			continue
		}
		if run >= 4 {
			primes = append(primes, Prime{Start: p - run, End: p - 1, Len: run})
		}
		run = 0
	}
	return primes
}

// TrappedBehind counts the opposing checkers that still have to traverse the
// side's prime to reach their home board.
func (b Board) TrappedBehind(pr Prime, s Side) int {
	opp := s.Opponent()
	trapped := 0
	if s == White {
		// Black moves upward, so black checkers below the prime are trapped.
		for p := 1; p < pr.Start; p++ {
			trapped += b.Checkers(opp, p)
		}
	} else {
		for p := pr.End + 1; p <= NumPoints; p++ {
			trapped += b.Checkers(opp, p)
		}
	}
	return trapped
}

// CheckInvariant panics if the checker accounting is corrupt: each side must
// total exactly 15 checkers across points, bar, and off, and no point may be
// held by both sides (the encoding makes the latter structural, so only the
// totals can break). A violation is an internal defect, never user input.
func (b Board) CheckInvariant() {
	for _, s := range []Side{White, Black} {
		total := int(b.Bar[s]) + int(b.Off[s])
		for p := 1; p <= NumPoints; p++ {
			total += b.Checkers(s, p)
		}
		if total != CheckersPerSide {
			panic(fmt.Sprintf("corrupt board: %s has %d checkers", s, total))
		}
	}
}
