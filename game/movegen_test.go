package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func containsResult(seqs []Sequence, b Board) bool {
	for _, s := range seqs {
		if s.Result == b {
			return true
		}
	}
	return false
}

func TestLegalSequencesOpening(t *testing.T) {
	b := Start()
	seqs := LegalSequences(b, White, NewRoll(6, 5))

	// The classic lover's leap must be among the candidates.
	leap := b.
		Apply(Move{Side: White, Src: 24, Dst: 18, Die: 6}).
		Apply(Move{Side: White, Src: 13, Dst: 8, Die: 5})
	require.True(t, containsResult(seqs, leap), "6-5 must offer 24/18 13/8")

	for _, s := range seqs {
		require.Len(t, s.Moves, 2, "Both dice are playable from the start, so both must be used")
		require.NotPanics(t, s.Result.CheckInvariant)
	}
}

func TestLegalSequencesDeduplicated(t *testing.T) {
	seqs := LegalSequences(Start(), White, NewRoll(3, 1))

	seen := map[Board]bool{}
	for _, s := range seqs {
		require.False(t, seen[s.Result], "Each resulting board appears once")
		seen[s.Result] = true
	}
}

func TestBarReentryComesFirst(t *testing.T) {
	b := Start()
	b.Points[24] = 1 // one of White's back checkers was hit
	b.Bar[White] = 1

	seqs := LegalSequences(b, White, NewRoll(4, 2))

	for _, s := range seqs {
		require.NotEmpty(t, s.Moves)
		require.Equal(t, BarPoint, s.Moves[0].Src, "A bar checker must re-enter before anything else moves")
	}
}

func TestFullyBlockedEntryIsAPass(t *testing.T) {
	var b Board
	b.Bar[White] = 1
	b.Points[6] = 14
	b.Points[20] = -2 // blocks entry with the 5
	b.Points[22] = -2 // blocks entry with the 3
	b.Points[1] = -11

	seqs := LegalSequences(b, White, NewRoll(5, 3))

	require.Len(t, seqs, 1, "Only the pass is available")
	require.True(t, seqs[0].IsPass())
	require.Equal(t, b, seqs[0].Result, "A pass leaves the board unchanged")
}

func TestHigherDieForcedWhenOnlyOnePlayable(t *testing.T) {
	// White's only mobile checker sits on 24. The 5 is blocked both before
	// (24/19) and after the 6 (18/13), so only the 6 can ever be played.
	var b Board
	b.Points[24] = 1
	b.Points[1] = 14 // immobile: cannot bear off while 24 is occupied
	b.Points[19] = -2
	b.Points[13] = -2
	b.Points[12] = -11

	seqs := LegalSequences(b, White, NewRoll(6, 5))

	require.Len(t, seqs, 1)
	require.Len(t, seqs[0].Moves, 1, "Only one die is playable")
	require.Equal(t, 6, seqs[0].Moves[0].Die, "The higher die must be preferred")
	require.Equal(t, 18, seqs[0].Moves[0].Dst)
}

func TestDoubleBearOff(t *testing.T) {
	var b Board
	b.Points[6] = 5
	b.Points[5] = 5
	b.Points[4] = 5
	b.Off[Black] = 15

	seqs := LegalSequences(b, White, NewRoll(6, 6))

	require.NotEmpty(t, seqs)
	for _, s := range seqs {
		require.Len(t, s.Moves, 4, "A double grants four uses")
	}

	// Four checkers straight off the 6-point.
	want := b
	want.Points[6] = 1
	want.Off[White] = 4
	require.True(t, containsResult(seqs, want), "6-6 must bear four checkers off the 6-point")
}

func TestBearOffOvershoot(t *testing.T) {
	// Highest occupied point is the 3; a 6 bears it off.
	var b Board
	b.Points[3] = 2
	b.Points[1] = 13
	b.Off[Black] = 15

	seqs := LegalSequences(b, White, NewRoll(6, 2))

	found := false
	for _, s := range seqs {
		for _, m := range s.Moves {
			if m.Src == 3 && m.Dst == OffPoint && m.Die == 6 {
				found = true
			}
		}
	}
	require.True(t, found, "Overshoot bear-off from the highest point must be legal")
}

func TestMaximalUsageAcrossOrderings(t *testing.T) {
	// Playing the 6 first strands the 4; the generator must find the
	// ordering that uses both dice and discard the one-die line.
	var b Board
	b.Points[24] = 1
	b.Points[6] = 14
	b.Points[18] = -2
	b.Points[16] = -2
	b.Points[2] = -2
	b.Points[1] = -9

	// 24/20 with the 4 then 20/14 with the 6 works; 24/18 with the 6 is
	// blocked, and 6-point checkers cannot move either die (2 and 1 held
	// by Black, no bear-off while 24 is occupied).
	seqs := LegalSequences(b, White, NewRoll(6, 4))

	require.NotEmpty(t, seqs)
	for _, s := range seqs {
		require.Len(t, s.Moves, 2, "Two dice are usable via 24/20 20/14; one-die lines must be discarded")
	}
}
