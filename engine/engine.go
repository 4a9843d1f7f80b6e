package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"backgammon/experiments/metrics"
	"backgammon/game"
)

// MaxTurns caps a driven game so a stalled matchup cannot spin forever.
const MaxTurns = 500

// ErrIllegalMove marks a rejected play. The wrapped message names the
// attempted moves so the caller can explain the rejection.
var ErrIllegalMove = errors.New("illegal move")

// Engine owns one game in progress: the board, whose turn it is, and the
// dice. It validates every play against the move generator before applying
// it, so a corrupted board can only come from an internal defect.
type Engine struct {
	Board   game.Board
	Turn    game.Side
	Turns   int
	sampler *game.Sampler
}

// New starts a game from the standard position. White moves first.
func New(src rand.Source) *Engine {
	return &Engine{
		Board:   game.Start(),
		Turn:    game.White,
		sampler: game.NewSampler(src),
	}
}

// Roll produces the current side's dice.
func (e *Engine) Roll() game.Roll {
	return e.sampler.Roll()
}

// LegalSequences lists the current side's full plays for a roll, for both
// AI search and offering choices to a human.
func (e *Engine) LegalSequences(roll game.Roll) []game.Sequence {
	return game.LegalSequences(e.Board, e.Turn, roll)
}

// Play applies a full sequence for the current side. The sequence must be
// one of the generator's outputs for the roll; anything else is rejected
// with ErrIllegalMove and the board is left untouched.
func (e *Engine) Play(roll game.Roll, seq game.Sequence) error {
	legal := false
	for _, cand := range e.LegalSequences(roll) {
		if cand.Result == seq.Result {
			legal = true
			break
		}
	}
	if !legal {
		return fmt.Errorf("%w: %s is not playable with %s", ErrIllegalMove, seq, roll)
	}

	e.Board = seq.Result
	e.Board.CheckInvariant()
	e.Turn = e.Turn.Opponent()
	e.Turns++
	return nil
}

// Winner reports the side that has borne off all checkers, if the game is
// over.
func (e *Engine) Winner() (game.Side, bool) {
	return e.Board.Winner()
}

// Run drives a full game between two players and returns the winner's name
// ("" if the turn cap was reached) with per-move search metrics.
func Run(ctx context.Context, white, black Player, src rand.Source) (string, []metrics.MoveRecord) {
	e := New(src)
	players := [2]Player{white, black}
	var records []metrics.MoveRecord

	for !e.Board.IsTerminal() && e.Turns < MaxTurns {
		side := e.Turn
		roll := e.Roll()
		seq, metric := players[side].ChooseSequence(ctx, e.Board, side, roll)
		if err := e.Play(roll, seq); err != nil {
			// A driven player must always return a generator sequence.
			panic(fmt.Sprintf("player %s broke the rules: %v", side, err))
		}
		records = append(records, metrics.MoveRecord{
			Step:         e.Turns,
			Side:         side.String(),
			SearchMetric: metric,
		})
		log.Debug().
			Str("side", side.String()).
			Str("roll", roll.String()).
			Str("play", seq.String()).
			Msg("turn played")
	}

	if winner, over := e.Winner(); over {
		log.Info().Str("winner", winner.String()).Int("turns", e.Turns).Msg("game over")
		return winner.String(), records
	}
	log.Warn().Int("turns", e.Turns).Msg("turn cap reached without a winner")
	return "", records
}
