package lighting

import (
	"math"
	"strconv"

	"github.com/KirkDiggler/rpg-lighting/internal/errors"
)

const (
	// brightnessSlowdown is how many rounds one point of brightening takes
	brightnessSlowdown = 10
)

// EyesAdaptation is how far the eyes adjusted to the current lighting.
// Negative while getting used to darkness, non-negative when getting used to light.
type EyesAdaptation struct {
	value int
}

var _ Quality = EyesAdaptation{}
var _ Quality = LightingQuality{}

// Value returns the adaptation
func (e EyesAdaptation) Value() int {
	return e.value
}

func (e EyesAdaptation) String() string {
	return strconv.Itoa(e.value)
}

// CalculateEyesAdaptation computes the adaptation after moving from previous to
// current lighting with the given number of rounds to get used to it.
func CalculateEyesAdaptation(
	previous, current LightingQuality,
	bounds SpeciesLightingBounds,
	rounds RoundsOfAdaptation,
) EyesAdaptation {
	previousLighting := bounds.Clamp(previous.Value())
	currentLighting := bounds.Clamp(current.Value())
	if previousLighting == currentLighting {
		return EyesAdaptation{value: currentLighting}
	}

	gap, brightening := distance(previousLighting, currentLighting)
	neededRounds := gap
	if brightening {
		neededRounds = saturatingMul(gap, brightnessSlowdown)
	}
	effectiveRounds := rounds.Value()
	if uint(effectiveRounds) > neededRounds {
		effectiveRounds = int(neededRounds)
	}

	if !brightening {
		// one round per point when it got darker
		return EyesAdaptation{value: -effectiveRounds}
	}

	// operands are non-negative so integer division floors
	return EyesAdaptation{value: effectiveRounds / brightnessSlowdown}
}

// ComputeEyesAdaptation is CalculateEyesAdaptation over plain integers
func ComputeEyesAdaptation(previous, current, minimalLighting, maximalLighting, rounds int) (int, error) {
	adaptationRounds, err := NewRoundsOfAdaptation(rounds)
	if err != nil {
		return 0, err
	}

	adaptation := CalculateEyesAdaptation(
		NewLightingQuality(previous),
		NewLightingQuality(current),
		NewSpeciesLightingBounds(minimalLighting, maximalLighting),
		adaptationRounds,
	)
	return adaptation.Value(), nil
}

func errInvalidRounds(rounds int) error {
	return errors.InvalidArgumentf("rounds of adaptation must be positive, got %d", rounds).
		WithMeta("rounds_of_adaptation", rounds)
}

// distance returns |to - from| without overflow and whether to is above from
func distance(from, to int) (uint, bool) {
	if to > from {
		return uint(to) - uint(from), true
	}
	return uint(from) - uint(to), false
}

func saturatingMul(v, factor uint) uint {
	if v > math.MaxUint/factor {
		return math.MaxUint
	}
	return v * factor
}
