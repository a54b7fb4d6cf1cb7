package v1alpha1_test

import (
	"context"
	"net"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-lighting/internal/engine/senses"
	"github.com/KirkDiggler/rpg-lighting/internal/errors"
	"github.com/KirkDiggler/rpg-lighting/internal/handlers/sight/v1alpha1"
	"github.com/KirkDiggler/rpg-lighting/internal/orchestrators/sight"
	"github.com/KirkDiggler/rpg-lighting/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-lighting/internal/pkg/idgen"
	speciesbounds "github.com/KirkDiggler/rpg-lighting/internal/repositories/species_bounds"
)

// SightServiceTestSuite drives the full stack through an in-process gRPC connection
type SightServiceTestSuite struct {
	suite.Suite
	server *grpc.Server
	conn   *grpc.ClientConn
	client v1alpha1.SightServiceClient
	ctx    context.Context
}

func TestSightServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SightServiceTestSuite))
}

func (s *SightServiceTestSuite) SetupTest() {
	s.ctx = context.Background()

	repo, err := speciesbounds.NewInMemory(&speciesbounds.InMemoryConfig{
		Clock: clock.New(),
		Seed:  speciesbounds.DefaultBounds(),
	})
	s.Require().NoError(err)

	roller, err := senses.NewRoller(&senses.Config{Roller: dice.DefaultRoller})
	s.Require().NoError(err)

	service, err := sight.NewOrchestrator(&sight.Config{
		BoundsRepo:   repo,
		SensesRoller: roller,
		EventBus:     events.NewBus(),
		IDGenerator:  idgen.NewSequential("calc"),
	})
	s.Require().NoError(err)

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{SightService: service})
	s.Require().NoError(err)

	listener := bufconn.Listen(1024 * 1024)
	s.server = grpc.NewServer()
	v1alpha1.RegisterSightServiceServer(s.server, handler)
	go func() {
		_ = s.server.Serve(listener)
	}()

	s.conn, err = grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return listener.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	s.Require().NoError(err)
	s.client = v1alpha1.NewSightServiceClient(s.conn)
}

func (s *SightServiceTestSuite) TearDownTest() {
	_ = s.conn.Close()
	s.server.Stop()
}

func (s *SightServiceTestSuite) request(values map[string]interface{}) *structpb.Struct {
	req, err := structpb.NewStruct(values)
	s.Require().NoError(err)
	return req
}

func (s *SightServiceTestSuite) TestCalculateEyesAdaptation() {
	resp, err := s.client.CalculateEyesAdaptation(s.ctx, s.request(map[string]interface{}{
		"species":              "human",
		"previous_lighting":    -40,
		"current_lighting":     60,
		"rounds_of_adaptation": 300,
	}))
	s.Require().NoError(err)

	fields := resp.AsMap()
	s.Equal("calc_1", fields["calculation_id"])
	s.Equal(float64(30), fields["eyes_adaptation"])
	s.Equal(float64(-40), fields["minimal_lighting"])
	s.Equal(float64(60), fields["maximal_lighting"])
}

func (s *SightServiceTestSuite) TestCalculateEyesAdaptation_UnknownSpecies() {
	_, err := s.client.CalculateEyesAdaptation(s.ctx, s.request(map[string]interface{}{
		"species":              "troll",
		"previous_lighting":    0,
		"current_lighting":     10,
		"rounds_of_adaptation": 3,
	}))
	s.Require().Error(err)
	s.Equal(codes.NotFound, status.Code(err))

	converted := errors.FromGRPCError(err)
	s.True(errors.IsNotFound(converted))
	s.Equal("troll", errors.GetMeta(converted)["species"])
}

func (s *SightServiceTestSuite) TestCalculateEyesAdaptation_InvalidRounds() {
	_, err := s.client.CalculateEyesAdaptation(s.ctx, s.request(map[string]interface{}{
		"species":              "elf",
		"previous_lighting":    10,
		"current_lighting":     0,
		"rounds_of_adaptation": 0,
	}))
	s.Require().Error(err)
	s.Equal(codes.InvalidArgument, status.Code(err))
}

func (s *SightServiceTestSuite) TestCalculateGlare() {
	resp, err := s.client.CalculateGlare(s.ctx, s.request(map[string]interface{}{
		"contrast":           20,
		"from_dark_to_light": true,
		"perception_check":   5,
	}))
	s.Require().NoError(err)

	fields := resp.AsMap()
	s.Equal(float64(-13), fields["malus"])
	s.Equal(true, fields["shined"])
	s.Equal(false, fields["blinded"])
}

func (s *SightServiceTestSuite) TestCalculateGlare_RollsSenses() {
	resp, err := s.client.CalculateGlare(s.ctx, s.request(map[string]interface{}{
		"previous_lighting": 60,
		"current_lighting":  -40,
		"senses":            2,
	}))
	s.Require().NoError(err)

	fields := resp.AsMap()
	s.Equal(float64(10), fields["contrast"])
	s.Equal(false, fields["from_dark_to_light"])
	s.Equal(true, fields["blinded"])
	s.LessOrEqual(fields["malus"].(float64), float64(0))

	roll, ok := fields["senses_roll"].(map[string]interface{})
	s.Require().True(ok)
	s.Len(roll["dice"], 2)
	s.Equal(fields["perception_check"], roll["total"])
}

func (s *SightServiceTestSuite) TestListSpecies() {
	resp, err := s.client.ListSpecies(s.ctx, &structpb.Struct{})
	s.Require().NoError(err)

	list, ok := resp.AsMap()["species"].([]interface{})
	s.Require().True(ok)
	s.Len(list, len(speciesbounds.DefaultBounds()))
}
