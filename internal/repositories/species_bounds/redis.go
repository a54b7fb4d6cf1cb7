package speciesbounds

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-lighting/internal/errors"
	"github.com/KirkDiggler/rpg-lighting/internal/lighting"
	"github.com/KirkDiggler/rpg-lighting/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/rpg-lighting/internal/redis"
)

const (
	// Key pattern: species_lighting:{species}
	boundsKeyPrefix = "species_lighting:"

	// Set of every stored species code, outside the record keyspace
	indexKey = "species_lighting_index"
)

// RedisConfig holds the configuration for the Redis repository
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *RedisConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	return vb.Build()
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// NewRedis creates a new Redis repository for species bounds
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

// Get retrieves the bounds of one species
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.Species == "" {
		return nil, errors.InvalidArgument("species cannot be empty")
	}

	data, err := r.client.Get(ctx, buildKey(input.Species)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("species %s not found", input.Species).
				WithMeta("species", string(input.Species))
		}
		return nil, errors.Wrapf(err, "failed to get species %s from Redis", input.Species)
	}

	var bounds SpeciesBounds
	if err := json.Unmarshal([]byte(data), &bounds); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal species %s", input.Species)
	}

	return &GetOutput{Bounds: &bounds}, nil
}

// List retrieves every indexed species
func (r *redisRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	codes, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read species index")
	}
	if len(codes) == 0 {
		return &ListOutput{Bounds: []*SpeciesBounds{}}, nil
	}
	sort.Strings(codes)

	keys := make([]string, len(codes))
	for i, code := range codes {
		keys[i] = buildKey(lighting.SpeciesCode(code))
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get species from Redis")
	}

	list := make([]*SpeciesBounds, 0, len(values))
	for i, value := range values {
		data, ok := value.(string)
		if !ok {
			// indexed but the record is gone
			slog.WarnContext(ctx, "species index entry without record", "species", codes[i])
			continue
		}

		var bounds SpeciesBounds
		if err := json.Unmarshal([]byte(data), &bounds); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal species %s", codes[i])
		}
		list = append(list, &bounds)
	}

	return &ListOutput{Bounds: list}, nil
}

// Put stores the record and indexes it in one transaction
func (r *redisRepository) Put(ctx context.Context, input PutInput) (*PutOutput, error) {
	if err := validateBounds(input.Bounds); err != nil {
		return nil, err
	}

	stored := *input.Bounds
	stored.UpdatedAt = r.clock.Now()

	data, err := json.Marshal(&stored)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal species %s", stored.Species)
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, buildKey(stored.Species), data, 0)
		pipe.SAdd(ctx, indexKey, string(stored.Species))
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to store species %s in Redis", stored.Species)
	}

	slog.DebugContext(ctx, "stored species bounds",
		"species", stored.Species,
		"minimal_lighting", stored.MinimalLighting,
		"maximal_lighting", stored.MaximalLighting,
	)

	return &PutOutput{Bounds: &stored}, nil
}

func buildKey(species lighting.SpeciesCode) string {
	return boundsKeyPrefix + string(species)
}
