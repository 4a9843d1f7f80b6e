package main

import (
	"fmt"
	"strings"

	"backgammon/game"
)

const maxStack = 5

// renderBoard draws the position as text: White is O moving toward point 1,
// Black is X moving toward point 24.
func renderBoard(b game.Board) string {
	var sb strings.Builder

	sb.WriteString("  13 14 15 16 17 18 |BAR| 19 20 21 22 23 24\n")
	sb.WriteString("  +-----------------+---+-----------------+\n")
	for row := 0; row < maxStack; row++ {
		sb.WriteString("  |")
		for p := 13; p <= 18; p++ {
			sb.WriteString(cell(b, p, row))
		}
		sb.WriteString("|")
		sb.WriteString(barCell(b, game.White, row))
		sb.WriteString("|")
		for p := 19; p <= 24; p++ {
			sb.WriteString(cell(b, p, row))
		}
		sb.WriteString("|\n")
	}
	sb.WriteString("  +-----------------+---+-----------------+\n")
	for row := maxStack - 1; row >= 0; row-- {
		sb.WriteString("  |")
		for p := 12; p >= 7; p-- {
			sb.WriteString(cell(b, p, row))
		}
		sb.WriteString("|")
		sb.WriteString(barCell(b, game.Black, row))
		sb.WriteString("|")
		for p := 6; p >= 1; p-- {
			sb.WriteString(cell(b, p, row))
		}
		sb.WriteString("|\n")
	}
	sb.WriteString("  12 11 10 09 08 07 |BAR| 06 05 04 03 02 01\n")
	sb.WriteString(fmt.Sprintf("  off: O=%d X=%d   bar: O=%d X=%d\n",
		b.Off[game.White], b.Off[game.Black], b.Bar[game.White], b.Bar[game.Black]))
	return sb.String()
}

func cell(b game.Board, point, row int) string {
	count := int(b.Points[point])
	sym := "O"
	if count < 0 {
		sym = "X"
		count = -count
	}
	if row >= count {
		return "   "
	}
	if row == maxStack-1 && count > maxStack {
		return fmt.Sprintf("%2d ", count)
	}
	return " " + sym + " "
}

func barCell(b game.Board, s game.Side, row int) string {
	count := int(b.Bar[s])
	sym := "O"
	if s == game.Black {
		sym = "X"
	}
	if row >= count {
		return "   "
	}
	if row == maxStack-1 && count > maxStack {
		return fmt.Sprintf("%2d ", count)
	}
	return " " + sym + " "
}
