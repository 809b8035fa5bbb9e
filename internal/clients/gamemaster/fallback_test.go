package gamemaster_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/KirkDiggler/greed-island/internal/clients/gamemaster"
	gamemastermock "github.com/KirkDiggler/greed-island/internal/clients/gamemaster/mock"
	"github.com/KirkDiggler/greed-island/internal/entities/greedisland"
	"github.com/KirkDiggler/greed-island/internal/errors"
)

type FallbackTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockNext *gamemastermock.MockClient
	client   gamemaster.Client
	ctx      context.Context
}

func TestFallbackSuite(t *testing.T) {
	suite.Run(t, new(FallbackTestSuite))
}

func (s *FallbackTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockNext = gamemastermock.NewMockClient(s.ctrl)
	s.client = gamemaster.NewFallback(s.mockNext, zap.NewNop())
	s.ctx = context.Background()
}

func (s *FallbackTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *FallbackTestSuite) TestRequestScenario_PassesThrough() {
	input := &gamemaster.ScenarioInput{}
	expected := &greedisland.Scenario{Title: "Golem"}
	s.mockNext.EXPECT().RequestScenario(s.ctx, input).Return(expected, nil)

	scenario, err := s.client.RequestScenario(s.ctx, input)

	s.NoError(err)
	s.Same(expected, scenario)
}

func (s *FallbackTestSuite) TestRequestScenario_Fallback() {
	s.mockNext.EXPECT().RequestScenario(s.ctx, gomock.Any()).Return(nil, errors.Unavailable("down"))

	scenario, err := s.client.RequestScenario(s.ctx, &gamemaster.ScenarioInput{})

	s.Require().NoError(err)
	s.Equal(gamemaster.FallbackScenarioTitle, scenario.Title)
	s.Require().Len(scenario.Choices, 1)
	s.Equal(greedisland.Choice{
		ID:   gamemaster.FallbackChoiceID,
		Text: gamemaster.FallbackChoiceText,
		Type: greedisland.ChoiceNeutral,
	}, scenario.Choices[0])
}

func (s *FallbackTestSuite) TestRequestResolution_Fallback() {
	s.mockNext.EXPECT().RequestResolution(s.ctx, gomock.Any()).Return(nil, errors.DataLoss("garbage"))

	resolution, err := s.client.RequestResolution(s.ctx, &gamemaster.ResolutionInput{})

	s.Require().NoError(err)
	s.Equal(&greedisland.ActionResolution{Narrative: gamemaster.FallbackNarrative}, resolution)
}

func (s *FallbackTestSuite) TestConsultBook() {
	s.Run("answer", func() {
		s.mockNext.EXPECT().ConsultBook(s.ctx, "card 17").Return("It heals.", nil)
		answer, err := s.client.ConsultBook(s.ctx, "card 17")
		s.NoError(err)
		s.Equal("It heals.", answer)
	})

	s.Run("failure", func() {
		s.mockNext.EXPECT().ConsultBook(s.ctx, "card 17").Return("", errors.Unavailable("down"))
		answer, err := s.client.ConsultBook(s.ctx, "card 17")
		s.NoError(err)
		s.Equal(gamemaster.FallbackBookAnswer, answer)
	})

	s.Run("empty", func() {
		s.mockNext.EXPECT().ConsultBook(s.ctx, "card 17").Return("", nil)
		answer, err := s.client.ConsultBook(s.ctx, "card 17")
		s.NoError(err)
		s.Equal(gamemaster.NoDataAnswer, answer)
	})
}
