package game

import (
	"fmt"
	"strings"
)

// Move is a single checker relocation consuming one die.
type Move struct {
	Side Side
	Src  int // 1..24, or BarPoint for a re-entry
	Dst  int // 1..24, or OffPoint for a bear-off
	Die  int
	Hit  bool // an opposing blot on Dst goes to the bar
}

func (m Move) String() string {
	src := fmt.Sprintf("%d", m.Src)
	if m.Src == BarPoint {
		src = "bar"
	}
	dst := fmt.Sprintf("%d", m.Dst)
	if m.Dst == OffPoint {
		dst = "off"
	}
	if m.Hit {
		return src + "/" + dst + "*"
	}
	return src + "/" + dst
}

// Sequence is one full turn's ordered moves together with the board they
// produce. An empty Moves slice is a pass: the side had no legal play and
// Result equals the input board.
type Sequence struct {
	Moves  []Move
	Result Board
}

// IsPass reports whether the sequence plays no checkers.
func (s Sequence) IsPass() bool {
	return len(s.Moves) == 0
}

func (s Sequence) String() string {
	if s.IsPass() {
		return "(no play)"
	}
	parts := make([]string, len(s.Moves))
	for i, m := range s.Moves {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}

// Roll is an unordered pair of die values. Hi >= Lo always holds.
type Roll struct {
	Hi, Lo int
}

// NewRoll orders the two die values into a Roll.
func NewRoll(a, b int) Roll {
	if a < b {
		a, b = b, a
	}
	return Roll{Hi: a, Lo: b}
}

// IsDouble reports whether both dice show the same value, granting four uses.
func (r Roll) IsDouble() bool {
	return r.Hi == r.Lo
}

// Dice expands the roll into its usable die values: two for a plain roll,
// four for a double.
func (r Roll) Dice() []int {
	if r.IsDouble() {
		return []int{r.Hi, r.Hi, r.Hi, r.Hi}
	}
	return []int{r.Hi, r.Lo}
}

func (r Roll) String() string {
	return fmt.Sprintf("%d-%d", r.Hi, r.Lo)
}
