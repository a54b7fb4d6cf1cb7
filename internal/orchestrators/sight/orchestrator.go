// Package sight implements the sight orchestrator for lighting calculations
package sight

//go:generate mockgen -destination=mock/mock_service.go -package=sightmock github.com/KirkDiggler/rpg-lighting/internal/orchestrators/sight Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-lighting/internal/engine/senses"
	"github.com/KirkDiggler/rpg-lighting/internal/errors"
	"github.com/KirkDiggler/rpg-lighting/internal/lighting"
	"github.com/KirkDiggler/rpg-lighting/internal/pkg/idgen"
	speciesbounds "github.com/KirkDiggler/rpg-lighting/internal/repositories/species_bounds"
)

// Service defines the interface for sight operations
type Service interface {
	CalculateEyesAdaptation(ctx context.Context, input *CalculateEyesAdaptationInput) (*CalculateEyesAdaptationOutput, error)
	CalculateGlare(ctx context.Context, input *CalculateGlareInput) (*CalculateGlareOutput, error)
	ListSpecies(ctx context.Context, input *ListSpeciesInput) (*ListSpeciesOutput, error)
}

// SensesRoller rolls senses checks
type SensesRoller interface {
	RollOnSenses(senses int) (*senses.Roll, error)
}

// Config holds the dependencies for the sight orchestrator
type Config struct {
	BoundsRepo   speciesbounds.Repository
	SensesRoller SensesRoller
	EventBus     events.EventBus
	IDGenerator  idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.BoundsRepo == nil {
		vb.RequiredField("BoundsRepo")
	}
	if c.SensesRoller == nil {
		vb.RequiredField("SensesRoller")
	}
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	boundsRepo   speciesbounds.Repository
	sensesRoller SensesRoller
	eventBus     events.EventBus
	idGen        idgen.Generator
}

// NewOrchestrator creates a new sight orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		boundsRepo:   cfg.BoundsRepo,
		sensesRoller: cfg.SensesRoller,
		eventBus:     cfg.EventBus,
		idGen:        cfg.IDGenerator,
	}, nil
}

// CalculateEyesAdaptation looks up the species bounds and computes how far the
// eyes adapted to the current lighting
func (o *orchestrator) CalculateEyesAdaptation(
	ctx context.Context,
	input *CalculateEyesAdaptationInput,
) (*CalculateEyesAdaptationOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Species == "" {
		return nil, errors.InvalidArgument("species is required")
	}

	rounds, err := lighting.NewRoundsOfAdaptation(input.RoundsOfAdaptation)
	if err != nil {
		return nil, err
	}

	boundsOutput, err := o.boundsRepo.Get(ctx, speciesbounds.GetInput{Species: input.Species})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get lighting bounds for species %s", input.Species)
	}

	adaptation := lighting.CalculateEyesAdaptation(
		lighting.NewLightingQuality(input.PreviousLighting),
		lighting.NewLightingQuality(input.CurrentLighting),
		boundsOutput.Bounds.Bounds(),
		rounds,
	)

	calculationID := o.idGen.Generate()

	slog.InfoContext(ctx, "Eyes adaptation calculated",
		"calculation_id", calculationID,
		"character_id", input.CharacterID,
		"species", input.Species,
		"previous_lighting", input.PreviousLighting,
		"current_lighting", input.CurrentLighting,
		"rounds", rounds.Value(),
		"adaptation", adaptation.Value(),
	)

	o.publish(ctx, EventEyesAdaptationCalculated, input.CharacterID, map[string]interface{}{
		ContextCalculationID: calculationID,
		ContextSpecies:       string(input.Species),
		ContextAdaptation:    adaptation.Value(),
	})

	return &CalculateEyesAdaptationOutput{
		CalculationID: calculationID,
		Adaptation:    adaptation,
		Bounds:        boundsOutput.Bounds,
	}, nil
}

// CalculateGlare resolves the contrast against a supplied or freshly rolled
// perception check
func (o *orchestrator) CalculateGlare(
	ctx context.Context,
	input *CalculateGlareInput,
) (*CalculateGlareOutput, error) {
	if err := validateGlareInput(input); err != nil {
		return nil, err
	}

	var contrast lighting.Contrast
	if input.Contrast != nil {
		contrast = lighting.NewContrast(input.Contrast.Value, lighting.ContrastDirection(input.Contrast.FromDarkToLight))
	} else {
		contrast = lighting.NewContrastBetween(
			lighting.NewLightingQuality(input.Lighting.Previous),
			lighting.NewLightingQuality(input.Lighting.Current),
		)
	}

	var (
		check      lighting.PerceptionCheck
		sensesRoll *senses.Roll
	)
	if input.PerceptionCheck != nil {
		check = lighting.NewPerceptionCheck(*input.PerceptionCheck)
	} else {
		roll, err := o.sensesRoller.RollOnSenses(*input.Senses)
		if err != nil {
			return nil, errors.Wrap(err, "failed to roll on senses")
		}
		sensesRoll = roll
		check = roll.Check()
	}

	glare := lighting.CalculateGlare(contrast, check, input.WasPrepared)
	calculationID := o.idGen.Generate()

	slog.InfoContext(ctx, "Glare calculated",
		"calculation_id", calculationID,
		"character_id", input.CharacterID,
		"contrast", contrast.Value(),
		"from_dark_to_light", contrast.IsFromDarkToLight(),
		"perception_check", check.Value(),
		"rolled", sensesRoll != nil,
		"was_prepared", input.WasPrepared,
		"malus", glare.Malus(),
	)

	o.publish(ctx, EventGlareCalculated, input.CharacterID, map[string]interface{}{
		ContextCalculationID:   calculationID,
		ContextContrast:        contrast.Value(),
		ContextFromDarkToLight: contrast.IsFromDarkToLight(),
		ContextPerceptionCheck: check.Value(),
		ContextMalus:           glare.Malus(),
		ContextShined:          glare.Shined(),
	})

	return &CalculateGlareOutput{
		CalculationID:   calculationID,
		Glare:           glare,
		Contrast:        contrast,
		PerceptionCheck: check,
		SensesRoll:      sensesRoll,
	}, nil
}

// ListSpecies returns every known species with its lighting bounds
func (o *orchestrator) ListSpecies(ctx context.Context, _ *ListSpeciesInput) (*ListSpeciesOutput, error) {
	listOutput, err := o.boundsRepo.List(ctx, speciesbounds.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list species")
	}

	return &ListSpeciesOutput{Species: listOutput.Bounds}, nil
}

func validateGlareInput(input *CalculateGlareInput) error {
	if input == nil {
		return errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	switch {
	case input.Contrast == nil && input.Lighting == nil:
		vb.Field("contrast", "either contrast or lighting change is required")
	case input.Contrast != nil && input.Lighting != nil:
		vb.Field("contrast", "contrast and lighting change are mutually exclusive")
	}
	switch {
	case input.PerceptionCheck == nil && input.Senses == nil:
		vb.Field("perception_check", "either perception check or senses is required")
	case input.PerceptionCheck != nil && input.Senses != nil:
		vb.Field("perception_check", "perception check and senses are mutually exclusive")
	}
	return vb.Build()
}
