package sight

import (
	"github.com/KirkDiggler/rpg-lighting/internal/engine/senses"
	"github.com/KirkDiggler/rpg-lighting/internal/lighting"
	speciesbounds "github.com/KirkDiggler/rpg-lighting/internal/repositories/species_bounds"
)

// CalculateEyesAdaptationInput defines the request for an eyes adaptation
type CalculateEyesAdaptationInput struct {
	// Optional, used as the event source
	CharacterID string

	Species            lighting.SpeciesCode
	PreviousLighting   int
	CurrentLighting    int
	RoundsOfAdaptation int
}

// CalculateEyesAdaptationOutput defines the response for an eyes adaptation
type CalculateEyesAdaptationOutput struct {
	CalculationID string
	Adaptation    lighting.EyesAdaptation
	Bounds        *speciesbounds.SpeciesBounds
}

// ContrastInput is an already known contrast
type ContrastInput struct {
	Value           int
	FromDarkToLight bool
}

// LightingChange is a jump between two lighting qualities
type LightingChange struct {
	Previous int
	Current  int
}

// CalculateGlareInput defines the request for a glare.
// Exactly one of Contrast and Lighting, and exactly one of PerceptionCheck and
// Senses must be set.
type CalculateGlareInput struct {
	CharacterID string

	Contrast *ContrastInput
	Lighting *LightingChange

	// An already rolled check
	PerceptionCheck *int
	// Senses value to roll a check with
	Senses *int

	WasPrepared bool
}

// CalculateGlareOutput defines the response for a glare
type CalculateGlareOutput struct {
	CalculationID   string
	Glare           lighting.Glare
	Contrast        lighting.Contrast
	PerceptionCheck lighting.PerceptionCheck

	// Nil when the check was supplied
	SensesRoll *senses.Roll
}

// ListSpeciesInput defines the request for listing species bounds
type ListSpeciesInput struct{}

// ListSpeciesOutput defines the response for listing species bounds
type ListSpeciesOutput struct {
	Species []*speciesbounds.SpeciesBounds
}
