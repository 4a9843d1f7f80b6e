package main

import (
	"fmt"
	"strconv"
	"strings"

	"backgammon/game"
)

// parseMove parses human "src/dst" notation: point numbers 1-24, "bar" for a
// re-entry source, "off" for a bear-off destination.
func parseMove(input string) (src, dst int, err error) {
	input = strings.TrimSpace(strings.ToLower(input))
	parts := strings.SplitN(input, "/", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("expected src/dst, got %q", input)
	}

	src, err = parseLocation(parts[0], "bar", game.BarPoint)
	if err != nil {
		return 0, 0, err
	}
	dst, err = parseLocation(parts[1], "off", game.OffPoint)
	if err != nil {
		return 0, 0, err
	}
	if src == game.BarPoint && dst == game.OffPoint {
		return 0, 0, fmt.Errorf("cannot move from the bar directly off")
	}
	return src, dst, nil
}

func parseLocation(s, keyword string, synthetic int) (int, error) {
	if s == keyword {
		return synthetic, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > game.NumPoints {
		return 0, fmt.Errorf("bad point %q: want 1-%d or %q", s, game.NumPoints, keyword)
	}
	return n, nil
}
