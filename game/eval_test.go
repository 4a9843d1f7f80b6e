package game

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCurrentPhase(t *testing.T) {
	t.Run("opening", func(t *testing.T) {
		require.Equal(t, Opening, CurrentPhase(Start()), "334 combined pips is still the opening")
	})

	t.Run("midgame", func(t *testing.T) {
		var b Board
		b.Points[7] = 10
		b.Points[1] = 5
		b.Points[18] = -10
		b.Points[24] = -5

		require.Equal(t, Midgame, CurrentPhase(b))
	})

	t.Run("endgame by bear off", func(t *testing.T) {
		b := Start()
		b.Points[6] = 4
		b.Off[White] = 1

		require.Equal(t, Endgame, CurrentPhase(b))
	})

	t.Run("endgame by pure race", func(t *testing.T) {
		var b Board
		b.Points[6] = 15
		b.Points[19] = -15

		require.Equal(t, Endgame, CurrentPhase(b))
	})
}

func TestEvaluateDeterministic(t *testing.T) {
	b := Start()
	require.Equal(t, EvaluateAdaptive(b, White), EvaluateAdaptive(b, White),
		"Evaluation must be a pure function of the board")
}

func TestEvaluateSigns(t *testing.T) {
	t.Run("symmetric position scores equally", func(t *testing.T) {
		require.InDelta(t, EvaluateAdaptive(Start(), White), EvaluateAdaptive(Start(), Black), 1e-9,
			"The start mirrors both sides, so neither perspective is ahead")
	})

	t.Run("opponent on the bar is good", func(t *testing.T) {
		b := Start()
		withHit := b
		withHit.Points[1] = -1
		withHit.Bar[Black] = 1

		require.Greater(t, EvaluateAdaptive(withHit, White), EvaluateAdaptive(b, White))
	})

	t.Run("own checker on the bar is bad", func(t *testing.T) {
		b := Start()
		onBar := b
		onBar.Points[24] = 1
		onBar.Bar[White] = 1

		require.Less(t, EvaluateAdaptive(onBar, White), EvaluateAdaptive(b, White))
	})

	t.Run("borne off checkers count", func(t *testing.T) {
		var race Board
		race.Points[3] = 10
		race.Points[22] = -10
		race.Off[White] = 5
		race.Off[Black] = 5

		ahead := race
		ahead.Points[3] = 9
		ahead.Off[White] = 6

		require.Greater(t, EvaluateAdaptive(ahead, White), EvaluateAdaptive(race, White))
	})
}

func TestShotCount(t *testing.T) {
	t.Run("single shooter five pips away", func(t *testing.T) {
		var b Board
		b.Points[18] = 1  // white blot
		b.Points[13] = -1 // black shooter, distance 5

		// Direct: any roll containing a 5 (six rolls). Combination: 4-1 and
		// 3-2 through open intermediate points.
		require.Equal(t, 8, ShotCount(b, White, 18))
	})

	t.Run("blocked intermediate kills the combination shot", func(t *testing.T) {
		var b Board
		b.Points[18] = 1
		b.Points[13] = -1
		b.Points[14] = 2 // white owns 14: 4 first is blocked
		b.Points[17] = 2 // white owns 17: 1 first is blocked

		// 4-1 now fails both ways; 3-2 still works via 15 or 16.
		require.Equal(t, 7, ShotCount(b, White, 18))
	})

	t.Run("double hits through repeated steps", func(t *testing.T) {
		var b Board
		b.Points[16] = 1 // white blot
		b.Points[8] = -1 // black shooter, distance 8

		// 4-4 (two steps), 2-2 (four steps), 6-2, 5-3 combinations, plus no
		// direct shots at distance 8.
		count := ShotCount(b, White, 16)
		require.Equal(t, 4, count)
	})

	t.Run("entry shot from the bar", func(t *testing.T) {
		var b Board
		b.Points[3] = 1 // white blot; Black entering with a 3 lands on 3
		b.Bar[Black] = 1

		require.Greater(t, ShotCount(b, White, 3), 0, "Entering from the bar can hit")
	})
}

func TestWeights(t *testing.T) {
	t.Run("defaults differ by phase", func(t *testing.T) {
		pw := DefaultPhaseWeights()
		require.Greater(t, pw.Endgame.PipFactor, pw.Opening.PipFactor,
			"The race matters more in the endgame")
		require.Less(t, pw.Endgame.BarPenalty, pw.Opening.BarPenalty,
			"Being hit late is far worse")
	})

	t.Run("yaml overrides merge into defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "weights.yaml")
		err := os.WriteFile(path, []byte("midgame:\n  hit_bonus: 99\n"), 0644)
		require.NoError(t, err)

		pw, err := LoadPhaseWeights(path)
		require.NoError(t, err)
		require.Equal(t, 99.0, pw.Midgame.HitBonus)
		require.Equal(t, DefaultPhaseWeights().Midgame.PipFactor, pw.Midgame.PipFactor,
			"Unset fields keep their defaults")
		require.Equal(t, DefaultPhaseWeights().Opening, pw.Opening)
	})

	t.Run("missing file errors", func(t *testing.T) {
		_, err := LoadPhaseWeights(filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
	})

	t.Run("custom weights flow into the evaluator", func(t *testing.T) {
		b := Start()
		b.Points[1] = -1
		b.Bar[Black] = 1

		pw := DefaultPhaseWeights()
		pw.Opening.HitBonus += 100
		require.Greater(t, Evaluator(pw)(b, White), EvaluateAdaptive(b, White))
	})
}
