package speciesbounds_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-lighting/internal/errors"
	"github.com/KirkDiggler/rpg-lighting/internal/lighting"
	"github.com/KirkDiggler/rpg-lighting/internal/pkg/clock"
	speciesbounds "github.com/KirkDiggler/rpg-lighting/internal/repositories/species_bounds"
	"github.com/KirkDiggler/rpg-lighting/internal/testutils"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// RepositoryTestSuite runs the same contract against every implementation
type RepositoryTestSuite struct {
	suite.Suite
	newRepo func(s *RepositoryTestSuite) speciesbounds.Repository
	repo    speciesbounds.Repository
	ctx     context.Context
}

func TestInMemoryRepository(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{
		newRepo: func(s *RepositoryTestSuite) speciesbounds.Repository {
			repo, err := speciesbounds.NewInMemory(&speciesbounds.InMemoryConfig{
				Clock: &clock.Fixed{At: testNow},
			})
			s.Require().NoError(err)
			return repo
		},
	})
}

func TestRedisRepository(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{
		newRepo: func(s *RepositoryTestSuite) speciesbounds.Repository {
			client, _ := testutils.CreateTestRedisClient(s.T())
			repo, err := speciesbounds.NewRedis(&speciesbounds.RedisConfig{
				Client: client,
				Clock:  &clock.Fixed{At: testNow},
			})
			s.Require().NoError(err)
			return repo
		},
	})
}

func (s *RepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.repo = s.newRepo(s)
}

func (s *RepositoryTestSuite) TestPutAndGet() {
	out, err := s.repo.Put(s.ctx, speciesbounds.PutInput{
		Bounds: &speciesbounds.SpeciesBounds{
			Species:         lighting.SpeciesElf,
			MinimalLighting: -50,
			MaximalLighting: 50,
		},
	})
	s.Require().NoError(err)
	s.Equal(testNow, out.Bounds.UpdatedAt)

	got, err := s.repo.Get(s.ctx, speciesbounds.GetInput{Species: lighting.SpeciesElf})
	s.Require().NoError(err)
	s.Equal(lighting.SpeciesElf, got.Bounds.Species)
	s.Equal(-50, got.Bounds.MinimalLighting)
	s.Equal(50, got.Bounds.MaximalLighting)
	s.True(testNow.Equal(got.Bounds.UpdatedAt))
	s.Equal(lighting.NewSpeciesLightingBounds(-50, 50), got.Bounds.Bounds())
}

func (s *RepositoryTestSuite) TestPutReplaces() {
	for _, maximal := range []int{10, 20} {
		_, err := s.repo.Put(s.ctx, speciesbounds.PutInput{
			Bounds: &speciesbounds.SpeciesBounds{Species: "goblin", MinimalLighting: -5, MaximalLighting: maximal},
		})
		s.Require().NoError(err)
	}

	got, err := s.repo.Get(s.ctx, speciesbounds.GetInput{Species: "goblin"})
	s.Require().NoError(err)
	s.Equal(20, got.Bounds.MaximalLighting)

	list, err := s.repo.List(s.ctx, speciesbounds.ListInput{})
	s.Require().NoError(err)
	s.Len(list.Bounds, 1)
}

func (s *RepositoryTestSuite) TestPutValidation() {
	testCases := []struct {
		name   string
		bounds *speciesbounds.SpeciesBounds
		errMsg string
	}{
		{name: "nil bounds", bounds: nil, errMsg: "bounds cannot be nil"},
		{name: "missing species", bounds: &speciesbounds.SpeciesBounds{MaximalLighting: 1}, errMsg: "species: is required"},
		{
			name:   "code with key separator",
			bounds: &speciesbounds.SpeciesBounds{Species: "elf:night", MaximalLighting: 1},
			errMsg: "must be lowercase letters",
		},
		{
			name:   "uppercase code",
			bounds: &speciesbounds.SpeciesBounds{Species: "Elf", MaximalLighting: 1},
			errMsg: "must be lowercase letters",
		},
		{
			name:   "inverted range",
			bounds: &speciesbounds.SpeciesBounds{Species: "elf", MinimalLighting: 5, MaximalLighting: 1},
			errMsg: "must not exceed maximal lighting 1",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.repo.Put(s.ctx, speciesbounds.PutInput{Bounds: tc.bounds})
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
			s.Contains(err.Error(), tc.errMsg)
		})
	}
}

func (s *RepositoryTestSuite) TestGetUnknownSpecies() {
	_, err := s.repo.Get(s.ctx, speciesbounds.GetInput{Species: "troll"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
	s.Equal("troll", errors.GetMeta(err)["species"])

	_, err = s.repo.Get(s.ctx, speciesbounds.GetInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RepositoryTestSuite) TestListEmpty() {
	list, err := s.repo.List(s.ctx, speciesbounds.ListInput{})
	s.Require().NoError(err)
	s.Empty(list.Bounds)
}

func (s *RepositoryTestSuite) TestSeedDefaults() {
	_, err := s.repo.Put(s.ctx, speciesbounds.PutInput{
		Bounds: &speciesbounds.SpeciesBounds{Species: lighting.SpeciesOrc, MinimalLighting: -1, MaximalLighting: 1},
	})
	s.Require().NoError(err)

	seeded, err := speciesbounds.SeedDefaults(s.ctx, s.repo)
	s.Require().NoError(err)
	s.Equal(len(speciesbounds.DefaultBounds())-1, seeded)

	list, err := s.repo.List(s.ctx, speciesbounds.ListInput{})
	s.Require().NoError(err)
	s.Require().Len(list.Bounds, len(speciesbounds.DefaultBounds()))

	codes := make([]lighting.SpeciesCode, len(list.Bounds))
	for i, b := range list.Bounds {
		codes[i] = b.Species
	}
	s.Equal([]lighting.SpeciesCode{
		lighting.SpeciesDwarf,
		lighting.SpeciesElf,
		lighting.SpeciesHobbit,
		lighting.SpeciesHuman,
		lighting.SpeciesKroll,
		lighting.SpeciesOrc,
	}, codes)

	// existing record is kept
	orc, err := s.repo.Get(s.ctx, speciesbounds.GetInput{Species: lighting.SpeciesOrc})
	s.Require().NoError(err)
	s.Equal(1, orc.Bounds.MaximalLighting)

	again, err := speciesbounds.SeedDefaults(s.ctx, s.repo)
	s.Require().NoError(err)
	s.Zero(again)
}

func TestDefaultBoundsAreOrdered(t *testing.T) {
	for _, b := range speciesbounds.DefaultBounds() {
		assert.LessOrEqual(t, b.MinimalLighting, b.MaximalLighting, "species %s", b.Species)
	}
}

func TestRedisRepositoryKeys(t *testing.T) {
	client, mr := testutils.CreateTestRedisClient(t)
	repo, err := speciesbounds.NewRedis(&speciesbounds.RedisConfig{
		Client: client,
		Clock:  &clock.Fixed{At: testNow},
	})
	require.NoError(t, err)

	_, err = repo.Put(context.Background(), speciesbounds.PutInput{
		Bounds: &speciesbounds.SpeciesBounds{Species: lighting.SpeciesDwarf, MinimalLighting: -70, MaximalLighting: 40},
	})
	require.NoError(t, err)

	mr.CheckGet(t, "species_lighting:dwarf",
		`{"species":"dwarf","minimal_lighting":-70,"maximal_lighting":40,"updated_at":"2026-03-01T12:00:00Z"}`)
	members, err := mr.SMembers("species_lighting_index")
	require.NoError(t, err)
	assert.Equal(t, []string{"dwarf"}, members)
}

func TestRedisRepositoryIndexSurvivesAnyValidCode(t *testing.T) {
	client, mr := testutils.CreateTestRedisClient(t)
	repo, err := speciesbounds.NewRedis(&speciesbounds.RedisConfig{
		Client: client,
		Clock:  &clock.Fixed{At: testNow},
	})
	require.NoError(t, err)
	ctx := context.Background()

	for _, code := range []lighting.SpeciesCode{lighting.SpeciesHuman, "index"} {
		_, err := repo.Put(ctx, speciesbounds.PutInput{
			Bounds: &speciesbounds.SpeciesBounds{Species: code, MinimalLighting: -1, MaximalLighting: 1},
		})
		require.NoError(t, err)
	}

	members, err := mr.SMembers("species_lighting_index")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"human", "index"}, members)

	list, err := repo.List(ctx, speciesbounds.ListInput{})
	require.NoError(t, err)
	require.Len(t, list.Bounds, 2)
	assert.Equal(t, lighting.SpeciesCode("index"), list.Bounds[0].Species)
	assert.Equal(t, lighting.SpeciesHuman, list.Bounds[1].Species)
}

func TestRedisRepositorySkipsDanglingIndex(t *testing.T) {
	client, mr := testutils.CreateTestRedisClient(t)
	repo, err := speciesbounds.NewRedis(&speciesbounds.RedisConfig{
		Client: client,
		Clock:  &clock.Fixed{At: testNow},
	})
	require.NoError(t, err)

	seedRedis(t, mr)

	list, err := repo.List(context.Background(), speciesbounds.ListInput{})
	require.NoError(t, err)
	require.Len(t, list.Bounds, 1)
	assert.Equal(t, lighting.SpeciesHuman, list.Bounds[0].Species)
}

func seedRedis(t *testing.T, mr *miniredis.Miniredis) {
	t.Helper()
	_, err := mr.SAdd("species_lighting_index", "human", "ghost")
	require.NoError(t, err)
	require.NoError(t, mr.Set("species_lighting:human", `{"species":"human","minimal_lighting":-40,"maximal_lighting":60}`))
}

func TestNewRedisValidation(t *testing.T) {
	_, err := speciesbounds.NewRedis(nil)
	assert.True(t, errors.IsInvalidArgument(err))

	_, err = speciesbounds.NewRedis(&speciesbounds.RedisConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Client: is required")
	assert.Contains(t, err.Error(), "Clock: is required")
}

func TestNewInMemoryValidation(t *testing.T) {
	_, err := speciesbounds.NewInMemory(&speciesbounds.InMemoryConfig{})
	assert.True(t, errors.IsInvalidArgument(err))

	_, err = speciesbounds.NewInMemory(&speciesbounds.InMemoryConfig{
		Clock: clock.New(),
		Seed:  []*speciesbounds.SpeciesBounds{{Species: "bad", MinimalLighting: 3, MaximalLighting: 1}},
	})
	assert.True(t, errors.IsInvalidArgument(err))
}
