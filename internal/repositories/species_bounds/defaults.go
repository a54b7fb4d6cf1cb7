package speciesbounds

import (
	"context"

	"github.com/KirkDiggler/rpg-lighting/internal/errors"
	"github.com/KirkDiggler/rpg-lighting/internal/lighting"
)

// DefaultBounds returns the stock sight table
func DefaultBounds() []*SpeciesBounds {
	return []*SpeciesBounds{
		{Species: lighting.SpeciesDwarf, MinimalLighting: -70, MaximalLighting: 40},
		{Species: lighting.SpeciesElf, MinimalLighting: -50, MaximalLighting: 50},
		{Species: lighting.SpeciesHobbit, MinimalLighting: -40, MaximalLighting: 60},
		{Species: lighting.SpeciesHuman, MinimalLighting: -40, MaximalLighting: 60},
		{Species: lighting.SpeciesKroll, MinimalLighting: -60, MaximalLighting: 50},
		{Species: lighting.SpeciesOrc, MinimalLighting: -90, MaximalLighting: 40},
	}
}

// SeedDefaults writes every default species that the repository does not know yet
func SeedDefaults(ctx context.Context, repo Repository) (int, error) {
	seeded := 0
	for _, bounds := range DefaultBounds() {
		_, err := repo.Get(ctx, GetInput{Species: bounds.Species})
		if err == nil {
			continue
		}
		if !errors.IsNotFound(err) {
			return seeded, errors.Wrapf(err, "failed to check species %s", bounds.Species)
		}

		if _, err := repo.Put(ctx, PutInput{Bounds: bounds}); err != nil {
			return seeded, errors.Wrapf(err, "failed to seed species %s", bounds.Species)
		}
		seeded++
	}
	return seeded, nil
}
