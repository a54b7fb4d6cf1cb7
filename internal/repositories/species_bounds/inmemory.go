package speciesbounds

import (
	"context"
	"sort"
	"sync"

	"github.com/KirkDiggler/rpg-lighting/internal/errors"
	"github.com/KirkDiggler/rpg-lighting/internal/lighting"
	"github.com/KirkDiggler/rpg-lighting/internal/pkg/clock"
)

// InMemoryConfig holds the configuration for the in-memory repository
type InMemoryConfig struct {
	Clock clock.Clock

	// Initial records; nil means none
	Seed []*SpeciesBounds
}

type inMemoryRepository struct {
	clock  clock.Clock
	mu     sync.RWMutex
	bounds map[lighting.SpeciesCode]SpeciesBounds
}

// NewInMemory creates a repository that keeps bounds in process memory
func NewInMemory(cfg *InMemoryConfig) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Clock == nil {
		return nil, errors.InvalidArgument("clock is required")
	}

	repo := &inMemoryRepository{
		clock:  cfg.Clock,
		bounds: make(map[lighting.SpeciesCode]SpeciesBounds, len(cfg.Seed)),
	}
	for _, seed := range cfg.Seed {
		if _, err := repo.Put(context.Background(), PutInput{Bounds: seed}); err != nil {
			return nil, errors.Wrap(err, "invalid seed")
		}
	}

	return repo, nil
}

var _ Repository = (*inMemoryRepository)(nil)

func (r *inMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.Species == "" {
		return nil, errors.InvalidArgument("species cannot be empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	bounds, ok := r.bounds[input.Species]
	if !ok {
		return nil, errors.NotFoundf("species %s not found", input.Species).
			WithMeta("species", string(input.Species))
	}

	return &GetOutput{Bounds: &bounds}, nil
}

func (r *inMemoryRepository) List(_ context.Context, _ ListInput) (*ListOutput, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]*SpeciesBounds, 0, len(r.bounds))
	for _, bounds := range r.bounds {
		b := bounds
		list = append(list, &b)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Species < list[j].Species })

	return &ListOutput{Bounds: list}, nil
}

func (r *inMemoryRepository) Put(_ context.Context, input PutInput) (*PutOutput, error) {
	if err := validateBounds(input.Bounds); err != nil {
		return nil, err
	}

	stored := *input.Bounds
	stored.UpdatedAt = r.clock.Now()

	r.mu.Lock()
	r.bounds[stored.Species] = stored
	r.mu.Unlock()

	return &PutOutput{Bounds: &stored}, nil
}
