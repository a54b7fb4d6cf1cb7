// Package v1alpha1 handles the lighting sight gRPC service interface
package v1alpha1

import (
	"context"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-lighting/internal/errors"
	"github.com/KirkDiggler/rpg-lighting/internal/lighting"
	"github.com/KirkDiggler/rpg-lighting/internal/orchestrators/sight"
)

// HandlerConfig holds dependencies for the sight handler
type HandlerConfig struct {
	SightService sight.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c.SightService == nil {
		return errors.InvalidArgument("sight service is required")
	}
	return nil
}

// Handler implements the sight gRPC service
type Handler struct {
	sightService sight.Service
}

var _ SightServiceServer = (*Handler)(nil)

// NewHandler creates a new sight handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		sightService: cfg.SightService,
	}, nil
}

// CalculateEyesAdaptation computes the eyes adaptation of a species after a lighting change
func (h *Handler) CalculateEyesAdaptation(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	r := newRequestReader(req)
	input := &sight.CalculateEyesAdaptationInput{
		CharacterID:        r.string(fieldCharacterID),
		Species:            lighting.SpeciesCode(r.requiredString(fieldSpecies)),
		PreviousLighting:   r.requiredInt(fieldPreviousLighting),
		CurrentLighting:    r.requiredInt(fieldCurrentLighting),
		RoundsOfAdaptation: r.requiredInt(fieldRoundsOfAdaptation),
	}
	if err := r.err(); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.sightService.CalculateEyesAdaptation(ctx, input)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return toResponse(map[string]interface{}{
		"calculation_id":   output.CalculationID,
		"eyes_adaptation":  output.Adaptation.Value(),
		"species":          string(output.Bounds.Species),
		"minimal_lighting": output.Bounds.MinimalLighting,
		"maximal_lighting": output.Bounds.MaximalLighting,
	})
}

// CalculateGlare computes the glare of a sudden contrast
func (h *Handler) CalculateGlare(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	r := newRequestReader(req)
	input := &sight.CalculateGlareInput{
		CharacterID:     r.string(fieldCharacterID),
		PerceptionCheck: r.optionalInt(fieldPerceptionCheck),
		Senses:          r.optionalInt(fieldSenses),
		WasPrepared:     r.bool(fieldWasPrepared),
	}

	switch {
	case r.has(fieldContrast):
		input.Contrast = &sight.ContrastInput{
			Value:           r.int(fieldContrast),
			FromDarkToLight: r.bool(fieldFromDarkToLight),
		}
		if r.has(fieldPreviousLighting) || r.has(fieldCurrentLighting) {
			input.Lighting = &sight.LightingChange{}
		}
	case r.has(fieldPreviousLighting) || r.has(fieldCurrentLighting):
		input.Lighting = &sight.LightingChange{
			Previous: r.requiredInt(fieldPreviousLighting),
			Current:  r.requiredInt(fieldCurrentLighting),
		}
	}
	if err := r.err(); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.sightService.CalculateGlare(ctx, input)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	resp := map[string]interface{}{
		"calculation_id":     output.CalculationID,
		"malus":              output.Glare.Malus(),
		"shined":             output.Glare.Shined(),
		"blinded":            output.Glare.Blinded(),
		"contrast":           output.Contrast.Value(),
		"from_dark_to_light": output.Contrast.IsFromDarkToLight(),
		"perception_check":   output.PerceptionCheck.Value(),
	}
	if output.SensesRoll != nil {
		resp["senses_roll"] = map[string]interface{}{
			"senses":     output.SensesRoll.Senses,
			"dice":       toList(output.SensesRoll.Dice),
			"bonus_dice": toList(output.SensesRoll.BonusDice),
			"bonus":      output.SensesRoll.Bonus,
			"malus_dice": toList(output.SensesRoll.MalusDice),
			"malus":      output.SensesRoll.Malus,
			"total":      output.SensesRoll.Total,
		}
	}

	return toResponse(resp)
}

// ListSpecies lists the lighting bounds of every known species
func (h *Handler) ListSpecies(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	output, err := h.sightService.ListSpecies(ctx, &sight.ListSpeciesInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	species := make([]interface{}, 0, len(output.Species))
	for _, bounds := range output.Species {
		species = append(species, map[string]interface{}{
			"species":          string(bounds.Species),
			"minimal_lighting": bounds.MinimalLighting,
			"maximal_lighting": bounds.MaximalLighting,
		})
	}

	return toResponse(map[string]interface{}{
		"species": species,
	})
}

func toResponse(values map[string]interface{}) (*structpb.Struct, error) {
	resp, err := structpb.NewStruct(values)
	if err != nil {
		return nil, errors.ToGRPCError(errors.Wrap(err, "failed to build response"))
	}
	return resp, nil
}

func toList(values []int) []interface{} {
	list := make([]interface{}, len(values))
	for i, v := range values {
		list[i] = v
	}
	return list
}
