// Package lighting implements the sight rules for changing light: how far a
// character's eyes have adapted after a lighting change, and the glare caused
// by a sudden contrast.
package lighting

import "strconv"

// Quality is anything that reads as a lighting quality value
type Quality interface {
	Value() int
}

// LightingQuality measures ambient light, lower is darker.
// Values outside a species' bounds are allowed and clamped at calculation time.
type LightingQuality struct {
	value int
}

// NewLightingQuality wraps a raw lighting value
func NewLightingQuality(value int) LightingQuality {
	return LightingQuality{value: value}
}

// Value returns the lighting quality
func (q LightingQuality) Value() int {
	return q.value
}

func (q LightingQuality) String() string {
	return strconv.Itoa(q.value)
}

// SpeciesCode identifies a playable species
type SpeciesCode string

// Known species codes
const (
	SpeciesHuman  SpeciesCode = "human"
	SpeciesElf    SpeciesCode = "elf"
	SpeciesDwarf  SpeciesCode = "dwarf"
	SpeciesHobbit SpeciesCode = "hobbit"
	SpeciesKroll  SpeciesCode = "kroll"
	SpeciesOrc    SpeciesCode = "orc"
)

func (c SpeciesCode) String() string {
	return string(c)
}

// SpeciesLightingBounds is the range of lighting a species sees without penalty
type SpeciesLightingBounds struct {
	minimal int
	maximal int
}

// NewSpeciesLightingBounds creates bounds; minimal <= maximal is the caller's concern
func NewSpeciesLightingBounds(minimal, maximal int) SpeciesLightingBounds {
	return SpeciesLightingBounds{minimal: minimal, maximal: maximal}
}

// MinimalLighting returns the darkest lighting the species copes with
func (b SpeciesLightingBounds) MinimalLighting() int {
	return b.minimal
}

// MaximalLighting returns the brightest lighting the species copes with
func (b SpeciesLightingBounds) MaximalLighting() int {
	return b.maximal
}

// Clamp forces value into [minimal, maximal]
func (b SpeciesLightingBounds) Clamp(value int) int {
	if value < b.minimal {
		return b.minimal
	}
	if value > b.maximal {
		return b.maximal
	}
	return value
}

// RoundsOfAdaptation is the positive number of rounds the eyes had to adapt
type RoundsOfAdaptation struct {
	value int
}

// NewRoundsOfAdaptation fails with an invalid argument error unless rounds is positive
func NewRoundsOfAdaptation(rounds int) (RoundsOfAdaptation, error) {
	if rounds <= 0 {
		return RoundsOfAdaptation{}, errInvalidRounds(rounds)
	}
	return RoundsOfAdaptation{value: rounds}, nil
}

// Value returns the number of rounds
func (r RoundsOfAdaptation) Value() int {
	return r.value
}

// PerceptionCheck is the already rolled outcome of a senses check
type PerceptionCheck struct {
	value int
}

// NewPerceptionCheck wraps a check result
func NewPerceptionCheck(value int) PerceptionCheck {
	return PerceptionCheck{value: value}
}

// Value returns the check result
func (p PerceptionCheck) Value() int {
	return p.value
}
