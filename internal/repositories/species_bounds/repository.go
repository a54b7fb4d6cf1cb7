// Package speciesbounds stores the lighting range each species sees without penalty
package speciesbounds

import (
	"context"
	"time"

	"github.com/KirkDiggler/rpg-lighting/internal/errors"
	"github.com/KirkDiggler/rpg-lighting/internal/lighting"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=speciesboundsmock github.com/KirkDiggler/rpg-lighting/internal/repositories/species_bounds Repository

// SpeciesBounds is the stored lighting range of one species
type SpeciesBounds struct {
	Species         lighting.SpeciesCode `json:"species"`
	MinimalLighting int                  `json:"minimal_lighting"`
	MaximalLighting int                  `json:"maximal_lighting"`
	UpdatedAt       time.Time            `json:"updated_at"`
}

// Bounds converts the record into the value the calculators take
func (b *SpeciesBounds) Bounds() lighting.SpeciesLightingBounds {
	return lighting.NewSpeciesLightingBounds(b.MinimalLighting, b.MaximalLighting)
}

// GetInput contains parameters for retrieving one species
type GetInput struct {
	Species lighting.SpeciesCode
}

// GetOutput contains the stored bounds
type GetOutput struct {
	Bounds *SpeciesBounds
}

// ListInput contains parameters for listing species
type ListInput struct{}

// ListOutput contains every stored species ordered by code
type ListOutput struct {
	Bounds []*SpeciesBounds
}

// PutInput contains the bounds to store
type PutInput struct {
	Bounds *SpeciesBounds
}

// PutOutput contains the bounds as stored
type PutOutput struct {
	Bounds *SpeciesBounds
}

// Repository defines the interface for species bounds storage operations
type Repository interface {
	// Get returns NotFound for an unknown species
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// List returns all species ordered by code
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Put creates or replaces the bounds of a species
	Put(ctx context.Context, input PutInput) (*PutOutput, error)
}

func validateBounds(bounds *SpeciesBounds) error {
	if bounds == nil {
		return errors.InvalidArgument("bounds cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("species", string(bounds.Species), vb)
	if bounds.Species != "" && !validSpeciesCode(bounds.Species) {
		vb.Fieldf("species", "must be lowercase letters, digits or underscores starting with a letter, got %q", bounds.Species)
	}
	if bounds.MinimalLighting > bounds.MaximalLighting {
		vb.Fieldf("minimal_lighting", "must not exceed maximal lighting %d", bounds.MaximalLighting)
	}
	return vb.Build()
}

func validSpeciesCode(code lighting.SpeciesCode) bool {
	for i, c := range code {
		switch {
		case c >= 'a' && c <= 'z':
		case i > 0 && (c == '_' || (c >= '0' && c <= '9')):
		default:
			return false
		}
	}
	return true
}
