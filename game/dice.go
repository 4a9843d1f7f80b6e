package game

import "golang.org/x/exp/rand"

// WeightedRoll pairs a distinct roll with its occurrence probability.
type WeightedRoll struct {
	Roll   Roll
	Weight float64 // 1/36 for a double, 2/36 otherwise
}

// AllRolls is the 21 distinct unordered dice rolls. The six doubles carry
// weight 1/36 and the fifteen plain rolls 2/36, summing to 1.
var AllRolls = allRolls()

func allRolls() []WeightedRoll {
	rolls := make([]WeightedRoll, 0, 21)
	for hi := 1; hi <= 6; hi++ {
		for lo := 1; lo <= hi; lo++ {
			w := 2.0 / 36.0
			if hi == lo {
				w = 1.0 / 36.0
			}
			rolls = append(rolls, WeightedRoll{Roll: Roll{Hi: hi, Lo: lo}, Weight: w})
		}
	}
	return rolls
}

// Sampler draws dice rolls from an explicit random source so callers can fix
// the seed for reproducible searches and tests.
type Sampler struct {
	rng *rand.Rand
}

// NewSampler wraps a random source. The source must not be shared across
// goroutines; give each search worker its own sampler.
func NewSampler(src rand.Source) *Sampler {
	return &Sampler{rng: rand.New(src)}
}

// Roll produces one true dice roll.
func (s *Sampler) Roll() Roll {
	// Drawing an ordered pair out of 36 gives every double probability 1/36
	// and every plain roll 2/36 with no weight table.
	n := s.rng.Intn(36)
	return NewRoll(n/6+1, n%6+1)
}

// Sample draws n rolls with replacement, respecting true roll probabilities.
// Repeats are expected; the result approximates the full 21-outcome
// expectation at a chance node with a Monte Carlo mean.
func (s *Sampler) Sample(n int) []Roll {
	rolls := make([]Roll, n)
	for i := range rolls {
		rolls[i] = s.Roll()
	}
	return rolls
}
