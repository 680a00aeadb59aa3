package talent_test

import (
	"encoding/json"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	enginemock "github.com/foolchen/lifeRestart/internal/engine/mock"
	"github.com/foolchen/lifeRestart/internal/entities"
	"github.com/foolchen/lifeRestart/internal/errors"
	"github.com/foolchen/lifeRestart/internal/services/talent"
	"github.com/foolchen/lifeRestart/internal/testutils"
	"github.com/foolchen/lifeRestart/internal/testutils/mocks"
)

type RegistryTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockEngine *enginemock.MockEngine
	registry   *talent.Registry
}

func TestRegistrySuite(t *testing.T) {
	suite.Run(t, new(RegistryTestSuite))
}

func (s *RegistryTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockEngine = enginemock.NewMockEngine(s.ctrl)

	registry, err := talent.NewRegistry(&talent.Config{Engine: s.mockEngine})
	s.Require().NoError(err)
	s.registry = registry
}

func (s *RegistryTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *RegistryTestSuite) initial(raw entities.RawCatalog) {
	mocks.ExpectCatalogParsing(s.mockEngine)
	s.Require().NoError(s.registry.Initial(raw))
}

func (s *RegistryTestSuite) TestNewRegistryValidation() {
	_, err := talent.NewRegistry(nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = talent.NewRegistry(&talent.Config{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RegistryTestSuite) TestInitialNormalizes() {
	var raw entities.RawCatalog
	s.Require().NoError(json.Unmarshal([]byte(`{
		"1001": {
			"grade": "2",
			"name": "Lucky",
			"description": "lucky star",
			"condition": "within(AGE, {10, 20})",
			"exclusive": ["1002"],
			"replacement": {"talent": ["1003*4"]}
		},
		"1002": {"grade": 9, "name": "Clamped"},
		"1003": {"grade": 0, "name": "Plain"}
	}`), &raw))

	s.mockEngine.EXPECT().ExtractMaxTriggers("within(AGE, {10, 20})").Return(2)
	s.mockEngine.EXPECT().ExtractMaxTriggers("").Return(1).Times(2)

	s.Require().NoError(s.registry.Initial(raw))
	s.Equal(3, s.registry.Count())

	def, err := s.registry.Get(1001)
	s.Require().NoError(err)
	s.Equal(1001, def.ID)
	s.Equal(entities.GradeEpic, def.Grade)
	s.Equal(2, def.MaxTriggers)
	s.Equal([]int{1002}, def.Exclusive)
	s.Equal(entities.Candidates{1003: 4}, def.Replacement.Talent)

	clamped, err := s.registry.Get(1002)
	s.Require().NoError(err)
	s.Equal(entities.GradeLegendary, clamped.Grade)
}

func (s *RegistryTestSuite) TestInitialRejectsNonNumericID() {
	mocks.ExpectCatalogParsing(s.mockEngine)

	err := s.registry.Initial(entities.RawCatalog{"abc": testutils.Talent(0, "bad")})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Equal("abc", errors.GetMeta(err)["talent_id"])
}

func (s *RegistryTestSuite) TestInitialFailureKeepsPreviousCatalog() {
	s.initial(entities.RawCatalog{"1": testutils.Talent(0, "one")})

	err := s.registry.Initial(entities.RawCatalog{
		"2": testutils.Talent(0, "two"),
		"x": testutils.Talent(0, "bad"),
	})
	s.Require().Error(err)

	s.Equal(1, s.registry.Count())
	_, err = s.registry.Get(1)
	s.NoError(err)
}

func (s *RegistryTestSuite) TestInitialReplacesWholesale() {
	s.initial(entities.RawCatalog{"1": testutils.Talent(0, "one"), "2": testutils.Talent(1, "two")})
	s.Require().NoError(s.registry.Initial(entities.RawCatalog{"3": testutils.Talent(2, "three")}))

	s.Equal(1, s.registry.Count())
	_, err := s.registry.Get(1)
	s.True(errors.IsNotFound(err))
}

func (s *RegistryTestSuite) TestInitialRejectsDuplicateIDs() {
	mocks.ExpectCatalogParsing(s.mockEngine)

	err := s.registry.Initial(entities.RawCatalog{
		"7":  testutils.Talent(0, "seven"),
		"07": testutils.Talent(0, "also seven"),
	})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RegistryTestSuite) TestGetReturnsCopy() {
	raw := entities.RawCatalog{"1": testutils.Talent(0, "one")}
	t := raw["1"]
	t.Exclusive = []entities.FlexInt{entities.NewFlexInt(2)}
	raw["1"] = t
	s.initial(raw)

	def, err := s.registry.Get(1)
	s.Require().NoError(err)
	def.Exclusive[0] = 99
	def.Name = "changed"

	again, err := s.registry.Get(1)
	s.Require().NoError(err)
	s.Equal([]int{2}, again.Exclusive)
	s.Equal("one", again.Name)
}

func (s *RegistryTestSuite) TestGetUnknown() {
	s.initial(entities.RawCatalog{})

	_, err := s.registry.Get(42)
	s.True(errors.IsNotFound(err))
	s.Equal(42, errors.GetMeta(err)["talent_id"])

	_, err = s.registry.Information(42)
	s.True(errors.IsNotFound(err))
}

func (s *RegistryTestSuite) TestInformation() {
	s.initial(entities.RawCatalog{"5": testutils.Talent(3, "gold")})

	info, err := s.registry.Information(5)
	s.Require().NoError(err)
	s.Equal(&entities.Information{
		Grade:       entities.GradeLegendary,
		Name:        "gold",
		Description: "gold description",
	}, info)
}

func (s *RegistryTestSuite) TestForEachAscending() {
	s.initial(entities.RawCatalog{
		"30": testutils.Talent(0, "c"),
		"4":  testutils.Talent(0, "a"),
		"12": testutils.Talent(0, "b"),
	})

	var ids []int
	s.registry.ForEach(func(def entities.Definition, id int) {
		s.Equal(id, def.ID)
		ids = append(ids, id)
	})
	s.Equal([]int{4, 12, 30}, ids)

	s.NotPanics(func() { s.registry.ForEach(nil) })
}

func (s *RegistryTestSuite) TestCheck() {
	raw := entities.RawCatalog{"1": testutils.Talent(0, "cond")}
	t := raw["1"]
	t.Condition = "AGE > 10"
	raw["1"] = t
	s.initial(raw)

	property := entities.Property{"AGE": 11}
	s.mockEngine.EXPECT().CheckCondition(property, "AGE > 10").Return(true, nil)

	ok, err := s.registry.Check(1, property)
	s.Require().NoError(err)
	s.True(ok)

	s.mockEngine.EXPECT().CheckCondition(property, "AGE > 10").Return(false, errors.InvalidArgument("bad"))
	_, err = s.registry.Check(1, property)
	s.True(errors.IsInvalidArgument(err))
}

func (s *RegistryTestSuite) TestDo() {
	raw := entities.RawCatalog{
		"1": testutils.Talent(1, "conditional"),
		"2": testutils.Talent(2, "always"),
	}
	cond := raw["1"]
	cond.Condition = "AGE > 10"
	cond.Effect = json.RawMessage(`{"MNY":2}`)
	raw["1"] = cond
	always := raw["2"]
	always.Effect = json.RawMessage(`{"SPR":1}`)
	raw["2"] = always
	s.initial(raw)

	property := entities.Property{"AGE": 5}

	s.mockEngine.EXPECT().CheckCondition(property, "AGE > 10").Return(false, nil)
	outcome, err := s.registry.Do(1, property)
	s.Require().NoError(err)
	s.Nil(outcome)

	s.mockEngine.EXPECT().CheckCondition(property, "AGE > 10").Return(true, nil)
	outcome, err = s.registry.Do(1, property)
	s.Require().NoError(err)
	s.Require().NotNil(outcome)
	s.JSONEq(`{"MNY":2}`, string(outcome.Effect))
	s.Equal(entities.GradeRare, outcome.Grade)

	// no condition, the engine is not consulted
	outcome, err = s.registry.Do(2, property)
	s.Require().NoError(err)
	s.Equal("always", outcome.Name)
}

func (s *RegistryTestSuite) TestAllocationAddition() {
	raw := testutils.SampleCatalog()
	s.initial(raw)

	total, err := s.registry.AllocationAddition(2001, 2002)
	s.Require().NoError(err)
	s.Equal(2, total)

	total, err = s.registry.AllocationAddition()
	s.Require().NoError(err)
	s.Zero(total)

	_, err = s.registry.AllocationAddition(2001, 1)
	s.True(errors.IsNotFound(err))
}

func (s *RegistryTestSuite) TestExclusive() {
	raw := entities.RawCatalog{
		"10": testutils.Talent(0, "ten"),
		"11": testutils.Talent(0, "eleven"),
		"12": testutils.Talent(0, "twelve"),
	}
	eleven := raw["11"]
	eleven.Exclusive = []entities.FlexInt{entities.NewFlexInt(10)}
	raw["11"] = eleven
	twelve := raw["12"]
	twelve.Exclusive = []entities.FlexInt{entities.NewFlexInt(11), entities.NewFlexInt(10)}
	raw["12"] = twelve
	s.initial(raw)

	testCases := []struct {
		name      string
		held      []int
		candidate int
		conflict  int
		found     bool
	}{
		{name: "conflict with held talent", held: []int{10}, candidate: 11, conflict: 10, found: true},
		{name: "one sided", held: []int{11}, candidate: 10, found: false},
		{name: "no exclusion list", held: []int{11, 12}, candidate: 10, found: false},
		{name: "first held id wins", held: []int{10, 11}, candidate: 12, conflict: 10, found: true},
		{name: "held order matters", held: []int{11, 10}, candidate: 12, conflict: 11, found: true},
		{name: "empty held set", held: nil, candidate: 12, found: false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			conflict, found, err := s.registry.Exclusive(tc.held, tc.candidate)
			s.Require().NoError(err)
			s.Equal(tc.found, found)
			s.Equal(tc.conflict, conflict)
		})
	}

	_, _, err := s.registry.Exclusive([]int{10}, 99)
	s.True(errors.IsNotFound(err))
}

func (s *RegistryTestSuite) TestConcurrentReadsDuringReload() {
	s.initial(testutils.SampleCatalog())

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range 50 {
				if i == 0 && j%10 == 0 {
					_ = s.registry.Initial(testutils.SampleCatalog())
					continue
				}
				_, _ = s.registry.Get(testutils.CommonIDStart + j%testutils.CommonCount)
				s.registry.ForEach(func(entities.Definition, int) {})
			}
		}()
	}
	wg.Wait()

	s.Equal(len(testutils.SampleCatalog()), s.registry.Count())
	s.Equal(fmt.Sprintf("common %d", testutils.CommonIDStart), s.mustName(testutils.CommonIDStart))
}

func (s *RegistryTestSuite) mustName(id int) string {
	def, err := s.registry.Get(id)
	s.Require().NoError(err)
	return def.Name
}
