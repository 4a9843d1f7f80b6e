package engine

import (
	"context"

	"backgammon/experiments/metrics"
	"backgammon/game"
	"backgammon/searcher"
)

// Player decides a full play given the board, the side to move, and the
// roll.
type Player interface {
	ChooseSequence(ctx context.Context, b game.Board, side game.Side, roll game.Roll) (game.Sequence, metrics.SearchMetric)
}

// SearchPlayer plays with the expectimax searcher.
type SearchPlayer struct {
	searcher *searcher.Searcher
}

func NewSearchPlayer(s *searcher.Searcher) *SearchPlayer {
	return &SearchPlayer{searcher: s}
}

func (p *SearchPlayer) ChooseSequence(ctx context.Context, b game.Board, side game.Side, roll game.Roll) (game.Sequence, metrics.SearchMetric) {
	return p.searcher.ChooseBestSequence(ctx, b, side, roll)
}
