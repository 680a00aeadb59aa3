package draw_test

import (
	"context"
	"slices"
	"strconv"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/foolchen/lifeRestart/internal/engine"
	enginemock "github.com/foolchen/lifeRestart/internal/engine/mock"
	"github.com/foolchen/lifeRestart/internal/engine/rules"
	"github.com/foolchen/lifeRestart/internal/entities"
	"github.com/foolchen/lifeRestart/internal/errors"
	"github.com/foolchen/lifeRestart/internal/orchestrators/draw"
	"github.com/foolchen/lifeRestart/internal/pkg/idgen"
	"github.com/foolchen/lifeRestart/internal/services/talent"
	"github.com/foolchen/lifeRestart/internal/testutils"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctx    context.Context
	engine *rules.Engine
	bus    events.EventBus
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctx = context.Background()

	e, err := rules.New(nil)
	s.Require().NoError(err)
	s.engine = e
	s.bus = events.NewBus()
}

func (s *OrchestratorTestSuite) registry(raw entities.RawCatalog) *talent.Registry {
	registry, err := talent.NewRegistry(&talent.Config{Engine: s.engine})
	s.Require().NoError(err)
	s.Require().NoError(registry.Initial(raw))
	return registry
}

func (s *OrchestratorTestSuite) orchestrator(raw entities.RawCatalog, roller dice.Roller) draw.Service {
	svc, err := draw.NewOrchestrator(&draw.Config{
		Registry:    s.registry(raw),
		Engine:      s.engine,
		Roller:      roller,
		IDGenerator: idgen.NewSequential("draw"),
		EventBus:    s.bus,
	})
	s.Require().NoError(err)
	return svc
}

// commonRolls scripts a hand where every slot samples grade 0 and takes the
// first talent of the pool
func commonRolls() []int {
	values := make([]int, 0, 2*entities.DrawSize)
	for range entities.DrawSize {
		values = append(values, 1000, 1)
	}
	return values
}

func commonCatalog(count int) entities.RawCatalog {
	raw := entities.RawCatalog{}
	for i := 1; i <= count; i++ {
		raw[strconv.Itoa(i)] = testutils.Talent(0, "common "+strconv.Itoa(i))
	}
	return raw
}

func intPtr(v int) *int {
	return &v
}

func (s *OrchestratorTestSuite) TestNewOrchestratorValidation() {
	_, err := draw.NewOrchestrator(nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = draw.NewOrchestrator(&draw.Config{})
	s.Require().Error(err)
	for _, field := range []string{"Registry", "Engine", "Roller", "IDGenerator", "EventBus"} {
		s.Contains(err.Error(), field+": is required")
	}
}

func (s *OrchestratorTestSuite) TestDrawReturnsTenUniqueRegisteredTalents() {
	raw := testutils.SampleCatalog()
	svc := s.orchestrator(raw, dice.DefaultRoller)

	for range 200 {
		out, err := svc.DrawTalents(s.ctx, &draw.DrawTalentsInput{})
		s.Require().NoError(err)
		s.Require().Len(out.Draw.Talents, entities.DrawSize)

		ids := out.Draw.IDs()
		seen := map[int]bool{}
		for _, id := range ids {
			s.False(seen[id], "duplicate talent %d in %v", id, ids)
			seen[id] = true
			s.Contains(raw, strconv.Itoa(id))
		}
	}
}

func (s *OrchestratorTestSuite) TestIncludeTakesSlotZero() {
	svc := s.orchestrator(testutils.SampleCatalog(), dice.DefaultRoller)

	for range 100 {
		out, err := svc.DrawTalents(s.ctx, &draw.DrawTalentsInput{IncludeID: intPtr(2301)})
		s.Require().NoError(err)

		ids := out.Draw.IDs()
		s.Equal(2301, ids[0])
		s.NotContains(ids[1:], 2301)
		s.Equal(entities.GradeLegendary, out.Draw.Talents[0].Grade)
		s.Equal(2301, *out.Draw.Included)
	}
}

func (s *OrchestratorTestSuite) TestIncludeUnregistered() {
	svc := s.orchestrator(testutils.SampleCatalog(), dice.DefaultRoller)

	_, err := svc.DrawTalents(s.ctx, &draw.DrawTalentsInput{IncludeID: intPtr(77)})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestSwapRemoveOrder() {
	roller := testutils.NewScriptedRoller(commonRolls()...)
	svc := s.orchestrator(commonCatalog(12), roller)

	out, err := svc.DrawTalents(s.ctx, &draw.DrawTalentsInput{})
	s.Require().NoError(err)

	s.Equal([]int{1, 12, 11, 10, 9, 8, 7, 6, 5, 4}, out.Draw.IDs())
	s.Equal([]int{1000, 12, 1000, 11, 1000, 10, 1000, 9, 1000, 8}, roller.Sizes[:10])
}

func (s *OrchestratorTestSuite) TestEmptyGradeWalksDown() {
	raw := commonCatalog(12)
	raw["500"] = testutils.Talent(1, "rare")

	// the first slot rolls legendary, finds no legendary or epic talent and
	// settles on the only rare one
	roller := testutils.NewScriptedRoller(append([]int{1, 1}, commonRolls()...)...)
	svc := s.orchestrator(raw, roller)

	out, err := svc.DrawTalents(s.ctx, &draw.DrawTalentsInput{})
	s.Require().NoError(err)
	s.Equal(500, out.Draw.Talents[0].ID)
	s.Equal(entities.GradeRare, out.Draw.Talents[0].Grade)
}

func (s *OrchestratorTestSuite) TestGradeZeroExhaustion() {
	svc := s.orchestrator(commonCatalog(5), dice.DefaultRoller)

	_, err := svc.DrawTalents(s.ctx, &draw.DrawTalentsInput{})
	s.Require().Error(err)
	s.True(errors.IsConfigurationHazard(err))
	s.Equal(5, errors.GetMeta(err)["slot"])
}

func (s *OrchestratorTestSuite) TestRateBonusesComeFromEngine() {
	ctrl := gomock.NewController(s.T())
	mockEngine := enginemock.NewMockEngine(ctrl)
	mockEngine.EXPECT().GetRate(engine.RateKindTimes, 7).
		Return(map[entities.Grade]float64{entities.GradeLegendary: 5})
	mockEngine.EXPECT().GetRate(engine.RateKindAchievement, 3).Return(nil)

	raw := commonCatalog(12)
	raw["900"] = testutils.Talent(3, "legend")

	// 450 is common at base odds but legendary with a 5x bonus
	rolls := append([]int{450, 1}, commonRolls()...)
	svc, err := draw.NewOrchestrator(&draw.Config{
		Registry:    s.registry(raw),
		Engine:      mockEngine,
		Roller:      testutils.NewScriptedRoller(rolls...),
		IDGenerator: idgen.NewSequential("draw"),
		EventBus:    s.bus,
	})
	s.Require().NoError(err)

	out, err := svc.DrawTalents(s.ctx, &draw.DrawTalentsInput{Times: 7, Achievement: 3})
	s.Require().NoError(err)
	s.Equal(900, out.Draw.Talents[0].ID)
}

func (s *OrchestratorTestSuite) TestImmortalsVariant() {
	svc := s.orchestrator(testutils.SampleCatalog(), testutils.NewScriptedRoller(commonRolls()...))

	out, err := svc.DrawTalents(s.ctx, &draw.DrawTalentsInput{Variant: entities.VariantImmortals})
	s.Require().NoError(err)

	ids := out.Draw.IDs()
	s.Equal(testutils.ImmortalsBoxID, ids[0])
	s.Equal(testutils.LegendaryIDStart, ids[1])
	s.Equal([]int{testutils.ImmortalsBoxID, testutils.LegendaryIDStart}, out.Injected)
	s.Len(ids, entities.DrawSize)
}

func (s *OrchestratorTestSuite) TestMagicVariant() {
	svc := s.orchestrator(testutils.SampleCatalog(), testutils.NewScriptedRoller(commonRolls()...))

	out, err := svc.DrawTalents(s.ctx, &draw.DrawTalentsInput{Variant: entities.VariantMagic})
	s.Require().NoError(err)

	s.Equal([]int{
		testutils.MagicWandID,
		testutils.AnimeMasterID,
		testutils.BornFemaleID,
		testutils.ImmortalsBoxID,
	}, out.Draw.IDs()[:4])
	s.Equal(entities.GradeEpic, out.Draw.Talents[0].Grade)
	s.Equal(entities.VariantMagic, out.Draw.Variant)
}

func (s *OrchestratorTestSuite) TestVariantSkipsTalentAlreadyInHand() {
	// slot 0 is forced, so only nine slots roll
	rolls := commonRolls()[:2*(entities.DrawSize-1)]
	svc := s.orchestrator(testutils.SampleCatalog(), testutils.NewScriptedRoller(rolls...))

	out, err := svc.DrawTalents(s.ctx, &draw.DrawTalentsInput{
		IncludeID: intPtr(testutils.BornFemaleID),
		Variant:   entities.VariantMagic,
	})
	s.Require().NoError(err)

	ids := out.Draw.IDs()
	s.Equal(testutils.BornFemaleID, ids[0])
	s.Equal(testutils.MagicWandID, ids[1])
	s.Equal(testutils.AnimeMasterID, ids[2])
	s.Equal(testutils.ImmortalsBoxID, ids[3])
	s.NotContains(out.Injected, testutils.BornFemaleID)
}

func (s *OrchestratorTestSuite) TestVariantDroppedWithoutLowGradeSlot() {
	raw := entities.RawCatalog{}
	for i := 1; i <= 12; i++ {
		raw[strconv.Itoa(i)] = testutils.Talent(2, "epic "+strconv.Itoa(i))
	}
	raw["1048"] = testutils.Talent(3, "box")
	raw["2000"] = testutils.Talent(3, "legend")

	values := make([]int, 0, 2*entities.DrawSize)
	for range entities.DrawSize {
		values = append(values, 101, 1)
	}
	svc := s.orchestrator(raw, testutils.NewScriptedRoller(values...))

	out, err := svc.DrawTalents(s.ctx, &draw.DrawTalentsInput{Variant: entities.VariantImmortals})
	s.Require().NoError(err)
	s.Empty(out.Injected)
	s.NotContains(out.Draw.IDs(), 1048)
	s.NotContains(out.Draw.IDs(), 2000)
}

func (s *OrchestratorTestSuite) TestVariantMissingSpecial() {
	raw := testutils.SampleCatalog()
	delete(raw, strconv.Itoa(testutils.ImmortalsBoxID))
	svc := s.orchestrator(raw, testutils.NewScriptedRoller(commonRolls()...))

	out, err := svc.DrawTalents(s.ctx, &draw.DrawTalentsInput{Variant: entities.VariantImmortals})
	s.Require().NoError(err)
	s.Equal([]int{testutils.LegendaryIDStart}, out.Injected)
	s.Equal(testutils.LegendaryIDStart, out.Draw.IDs()[0])
}

func (s *OrchestratorTestSuite) TestPublishesDrawEvent() {
	var published []int
	s.bus.SubscribeFunc(draw.EventTalentDrawn, 0, func(_ context.Context, event events.Event) error {
		ids, ok := event.Context().Get("talent_ids")
		s.Require().True(ok)
		published = ids.([]int)
		return nil
	})

	svc := s.orchestrator(testutils.SampleCatalog(), dice.DefaultRoller)
	out, err := svc.DrawTalents(s.ctx, &draw.DrawTalentsInput{})
	s.Require().NoError(err)

	s.Equal("draw_1", out.Draw.ID)
	s.Equal(out.Draw.IDs(), published)
}

func (s *OrchestratorTestSuite) TestCanceledContext() {
	svc := s.orchestrator(testutils.SampleCatalog(), dice.DefaultRoller)
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := svc.DrawTalents(ctx, &draw.DrawTalentsInput{})
	s.Equal(errors.CodeCanceled, errors.GetCode(err))
}

func (s *OrchestratorTestSuite) TestNilInput() {
	svc := s.orchestrator(testutils.SampleCatalog(), dice.DefaultRoller)

	_, err := svc.DrawTalents(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestDrawDoesNotMutateRegistry() {
	raw := testutils.SampleCatalog()
	registry := s.registry(raw)
	svc, err := draw.NewOrchestrator(&draw.Config{
		Registry:    registry,
		Engine:      s.engine,
		Roller:      dice.DefaultRoller,
		IDGenerator: idgen.NewSequential("draw"),
		EventBus:    s.bus,
	})
	s.Require().NoError(err)

	for range 20 {
		_, err := svc.DrawTalents(s.ctx, &draw.DrawTalentsInput{})
		s.Require().NoError(err)
	}

	var ids []int
	registry.ForEach(func(_ entities.Definition, id int) { ids = append(ids, id) })
	s.Len(ids, len(raw))
	s.True(slices.IsSorted(ids))
}
