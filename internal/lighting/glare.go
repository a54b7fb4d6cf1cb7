package lighting

const (
	// contrastDivisor converts a lighting difference into contrast levels
	contrastDivisor = 10

	// preparedBonus is added to the malus when the character expected the change
	preparedBonus = 6
)

// ContrastDirection tells which way the lighting jumped
type ContrastDirection bool

// Contrast directions
const (
	FromLightToDark ContrastDirection = false
	FromDarkToLight ContrastDirection = true
)

// Contrast is the magnitude and direction of a sudden lighting change
type Contrast struct {
	value     int
	direction ContrastDirection
}

// NewContrast creates a contrast of the given level
func NewContrast(value int, direction ContrastDirection) Contrast {
	return Contrast{value: value, direction: direction}
}

// NewContrastBetween derives the contrast of a jump from previous to current lighting
func NewContrastBetween(previous, current LightingQuality) Contrast {
	gap, brightening := distance(previous.Value(), current.Value())
	return Contrast{
		// fits an int for any pair of ints
		value:     int(gap / contrastDivisor),
		direction: ContrastDirection(brightening),
	}
}

// Value returns the contrast level
func (c Contrast) Value() int {
	return c.value
}

// IsFromDarkToLight reports whether the lighting got brighter
func (c Contrast) IsFromDarkToLight() bool {
	return bool(c.direction)
}

// IsFromLightToDark reports whether the lighting got darker
func (c Contrast) IsFromLightToDark() bool {
	return !c.IsFromDarkToLight()
}

// Glare is the sight penalty caused by a contrast
type Glare struct {
	malus  int
	shined bool
}

// CalculateGlare resolves a contrast against a perception check.
// Being prepared is a flat bonus; the malus never turns into a bonus.
func CalculateGlare(contrast Contrast, check PerceptionCheck, wasPrepared bool) Glare {
	var possibleMalus int
	if contrast.Value() <= check.Value() {
		possibleMalus = -(contrast.Value() - 1)
	} else {
		possibleMalus = -(contrast.Value() - 7)
	}
	if wasPrepared {
		possibleMalus += preparedBonus
	}

	return Glare{
		malus:  min(possibleMalus, 0),
		shined: contrast.IsFromDarkToLight(),
	}
}

// ComputeGlare is CalculateGlare over plain values
func ComputeGlare(contrastValue int, fromDarkToLight bool, perceptionCheck int, wasPrepared bool) (int, bool) {
	glare := CalculateGlare(
		NewContrast(contrastValue, ContrastDirection(fromDarkToLight)),
		NewPerceptionCheck(perceptionCheck),
		wasPrepared,
	)
	return glare.Malus(), glare.Shined()
}

// Malus is the penalty to activities requiring sight, never positive
func (g Glare) Malus() int {
	return g.malus
}

// Shined reports glare from a sudden light
func (g Glare) Shined() bool {
	return g.shined
}

// Blinded reports glare from a sudden darkness
func (g Glare) Blinded() bool {
	return !g.shined
}
