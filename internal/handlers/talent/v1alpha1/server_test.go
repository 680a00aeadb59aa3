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

	"github.com/foolchen/lifeRestart/internal/engine/rules"
	"github.com/foolchen/lifeRestart/internal/entities"
	"github.com/foolchen/lifeRestart/internal/errors"
	"github.com/foolchen/lifeRestart/internal/handlers/talent/v1alpha1"
	"github.com/foolchen/lifeRestart/internal/orchestrators/draw"
	"github.com/foolchen/lifeRestart/internal/orchestrators/replacement"
	"github.com/foolchen/lifeRestart/internal/pkg/idgen"
	"github.com/foolchen/lifeRestart/internal/services/talent"
	"github.com/foolchen/lifeRestart/internal/testutils"
)

// ServerTestSuite drives the real services through an in-memory gRPC connection
type ServerTestSuite struct {
	suite.Suite
	ctx    context.Context
	server *grpc.Server
	conn   *grpc.ClientConn
	client v1alpha1.TalentServiceClient
	config *v1alpha1.HandlerConfig
}

func TestServerTestSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}

func (s *ServerTestSuite) SetupTest() {
	s.ctx = context.Background()

	engine, err := rules.New(nil)
	s.Require().NoError(err)
	registry, err := talent.NewRegistry(&talent.Config{Engine: engine})
	s.Require().NoError(err)
	s.Require().NoError(registry.Initial(testutils.SampleCatalog()))

	bus := events.NewBus()
	drawService, err := draw.NewOrchestrator(&draw.Config{
		Registry:    registry,
		Engine:      engine,
		Roller:      dice.DefaultRoller,
		IDGenerator: idgen.NewSequential("draw"),
		EventBus:    bus,
	})
	s.Require().NoError(err)
	replacementService, err := replacement.NewOrchestrator(&replacement.Config{
		Registry: registry,
		Engine:   engine,
		EventBus: bus,
	})
	s.Require().NoError(err)

	s.config = &v1alpha1.HandlerConfig{
		DrawService:        drawService,
		ReplacementService: replacementService,
		TalentService:      registry,
	}
	handler, err := v1alpha1.NewHandler(s.config)
	s.Require().NoError(err)

	lis := bufconn.Listen(1 << 20)
	s.server = grpc.NewServer()
	v1alpha1.RegisterTalentServiceServer(s.server, handler)
	go func() {
		_ = s.server.Serve(lis)
	}()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	s.Require().NoError(err)
	s.conn = conn
	s.client = v1alpha1.NewTalentServiceClient(conn)
}

func (s *ServerTestSuite) TearDownTest() {
	_ = s.conn.Close()
	s.server.Stop()
}

func (s *ServerTestSuite) request(m map[string]any) *structpb.Struct {
	req, err := structpb.NewStruct(m)
	s.Require().NoError(err)
	return req
}

func (s *ServerTestSuite) TestDrawRoundTrip() {
	resp, err := s.client.DrawTalents(s.ctx, s.request(map[string]any{"include_id": 2001}))
	s.Require().NoError(err)

	fields := resp.AsMap()
	s.Equal("draw_1", fields["draw_id"])

	talents := fields["talents"].([]any)
	s.Len(talents, 10)
	s.Equal(float64(2001), talents[0].(map[string]any)["id"])

	seen := map[float64]bool{}
	for _, t := range talents {
		id := t.(map[string]any)["id"].(float64)
		s.False(seen[id], "duplicate talent %v", id)
		seen[id] = true
	}
}

func (s *ServerTestSuite) TestGetTalentRoundTrip() {
	resp, err := s.client.GetTalent(s.ctx, s.request(map[string]any{"talent_id": 1048}))
	s.Require().NoError(err)
	s.Equal("Mysterious Box", resp.AsMap()["name"])
	s.Equal(float64(3), resp.AsMap()["grade"])
}

func (s *ServerTestSuite) TestNotFoundCarriesDetails() {
	_, err := s.client.GetTalent(s.ctx, s.request(map[string]any{"talent_id": 9999}))
	s.Equal(codes.NotFound, status.Code(err))

	back := errors.FromGRPCError(err)
	s.True(errors.IsNotFound(back))
	s.Equal("9999", errors.GetMeta(back)["talent_id"])
}

func (s *ServerTestSuite) TestEvaluateRoundTrip() {
	resp, err := s.client.EvaluateTalents(s.ctx, s.request(map[string]any{
		"talent_ids": []any{2001, 2002},
		"property":   map[string]any{"AGE": 0},
	}))
	s.Require().NoError(err)
	s.Equal(float64(2), resp.AsMap()["allocation_addition"])
}

func (s *ServerTestSuite) TestReplaceWithoutRules() {
	resp, err := s.client.ReplaceTalents(s.ctx, s.request(map[string]any{
		"talent_ids": []any{2001, 2101},
	}))
	s.Require().NoError(err)
	s.Empty(resp.AsMap()["replacements"])
}

func (s *ServerTestSuite) TestDefaultVariantInjectsWithoutRequestField() {
	cfg := *s.config
	cfg.DefaultVariant = entities.VariantImmortals
	handler, err := v1alpha1.NewHandler(&cfg)
	s.Require().NoError(err)

	resp, err := handler.DrawTalents(s.ctx, s.request(map[string]any{}))
	s.Require().NoError(err)

	fields := resp.AsMap()
	s.Equal("immortals", fields["variant"])

	var ids []float64
	for _, t := range fields["talents"].([]any) {
		ids = append(ids, t.(map[string]any)["id"].(float64))
	}
	s.Contains(ids, float64(testutils.ImmortalsBoxID))
}
