package game

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Weights is the feature weight vector the evaluator applies for one phase.
// The numbers are calibration data, not rules: they can be overridden from a
// YAML file without touching code.
type Weights struct {
	PipFactor           float64 `yaml:"pip_factor"`
	OffFactor           float64 `yaml:"off_factor"`
	HitBonus            float64 `yaml:"hit_bonus"`
	BarPenalty          float64 `yaml:"bar_penalty"`
	PointBonus          float64 `yaml:"point_bonus"`
	HomePointBonus      float64 `yaml:"home_point_bonus"`
	InnerHomeBonus      float64 `yaml:"inner_home_bonus"`
	AnchorBonus         float64 `yaml:"anchor_bonus"`
	PrimeBaseBonus      float64 `yaml:"prime_base_bonus"`
	ShotPenaltyFactor   float64 `yaml:"shot_penalty_factor"`
	BlotReliefOppOnBar  float64 `yaml:"blot_relief_opp_on_bar"`
	HomePrisonBonus     float64 `yaml:"home_prison_bonus"`
	FarBehindBackFactor float64 `yaml:"far_behind_back_factor"`
	TrappedBonus        float64 `yaml:"trapped_bonus"`
}

// PhaseWeights holds one weight vector per game phase.
type PhaseWeights struct {
	Opening Weights `yaml:"opening"`
	Midgame Weights `yaml:"midgame"`
	Endgame Weights `yaml:"endgame"`
}

// For selects the vector for a phase by value, a plain lookup with no
// mutable state behind it.
func (pw PhaseWeights) For(p Phase) Weights {
	switch p {
	case Opening:
		return pw.Opening
	case Endgame:
		return pw.Endgame
	default:
		return pw.Midgame
	}
}

// DefaultPhaseWeights are the calibrated defaults. Opening favors making
// points and anchoring, midgame raises hitting and home-board value, endgame
// collapses to race terms.
func DefaultPhaseWeights() PhaseWeights {
	return PhaseWeights{
		Opening: Weights{
			PipFactor:           0.8,
			OffFactor:           5.0,
			HitBonus:            35.0,
			BarPenalty:          -25.0,
			PointBonus:          3.0,
			HomePointBonus:      2.0,
			InnerHomeBonus:      1.0,
			AnchorBonus:         8.0,
			PrimeBaseBonus:      5.0,
			ShotPenaltyFactor:   -1.0,
			BlotReliefOppOnBar:  0.6,
			HomePrisonBonus:     15.0,
			FarBehindBackFactor: 0.5,
			TrappedBonus:        6.0,
		},
		Midgame: Weights{
			PipFactor:           1.2,
			OffFactor:           15.0,
			HitBonus:            40.0,
			BarPenalty:          -25.0,
			PointBonus:          3.0,
			HomePointBonus:      5.0,
			InnerHomeBonus:      3.0,
			AnchorBonus:         3.0,
			PrimeBaseBonus:      5.0,
			ShotPenaltyFactor:   -1.5,
			BlotReliefOppOnBar:  0.5,
			HomePrisonBonus:     20.0,
			FarBehindBackFactor: 0.7,
			TrappedBonus:        8.0,
		},
		Endgame: Weights{
			PipFactor:           3.0,
			OffFactor:           30.0,
			HitBonus:            50.0,
			BarPenalty:          -50.0,
			PointBonus:          0.5,
			HomePointBonus:      0.5,
			InnerHomeBonus:      0.2,
			AnchorBonus:         1.0,
			PrimeBaseBonus:      1.0,
			ShotPenaltyFactor:   -2.5,
			BlotReliefOppOnBar:  0.2,
			HomePrisonBonus:     0.0,
			FarBehindBackFactor: 0.0,
			TrappedBonus:        2.0,
		},
	}
}

// LoadPhaseWeights reads a YAML weight file. Fields absent from the file
// keep the default values.
func LoadPhaseWeights(path string) (PhaseWeights, error) {
	pw := DefaultPhaseWeights()
	data, err := os.ReadFile(path)
	if err != nil {
		return pw, fmt.Errorf("read weights: %w", err)
	}
	if err := yaml.Unmarshal(data, &pw); err != nil {
		return pw, fmt.Errorf("parse weights: %w", err)
	}
	return pw, nil
}
