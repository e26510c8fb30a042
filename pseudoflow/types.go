package pseudoflow

import "errors"

// DefaultTolerance bounds both the negative-capacity clamp and every lambda
// comparison made by the parametric driver.
const DefaultTolerance = 1e-8

// ErrNegativeCapacity indicates that realizing capacities at some lambda
// produced a value at or below -Tolerance while RoundNegativeCapacity is
// off. The wrapped message names the lambda and the offending arc.
var ErrNegativeCapacity = errors.New("pseudoflow: negative capacity")

// Config carries the scalar knobs that capacity realization needs. A zero
// Tolerance is replaced by DefaultTolerance.
type Config struct {
	// RoundNegativeCapacity clamps any negative realized capacity to zero
	// instead of failing with ErrNegativeCapacity.
	RoundNegativeCapacity bool

	// Tolerance is the width of the band (-Tolerance, 0] inside which a
	// negative realized capacity is clamped to zero even when
	// RoundNegativeCapacity is off.
	Tolerance float64
}

func (c Config) tolerance() float64 {
	if c.Tolerance > 0 {
		return c.Tolerance
	}
	return DefaultTolerance
}

// Stats counts the elementary operations of the engine, accumulated across
// every Solve call that shares the struct. The parametric driver threads one
// Stats through a whole top-level solve so repeated invocations start from
// zero and stay reproducible.
type Stats struct {
	ArcScans uint64
	Mergers  uint64
	Pushes   uint64
	Relabels uint64
	Gaps     uint64
}

// excessSign classifies an excess as deficit (-1), balanced (0) or strict
// excess (+1). The reference compares by exact sign, not by tolerance.
func excessSign(excess float64) int {
	switch {
	case excess < 0:
		return -1
	case excess > 0:
		return 1
	default:
		return 0
	}
}
