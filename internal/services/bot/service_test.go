package bot_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/tictactoe/internal/dependencies/mocks"
	"github.com/mcoot/tictactoe/internal/model"
	"github.com/mcoot/tictactoe/internal/services/bot"
	"github.com/mcoot/tictactoe/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	mockClock  *mocks.MockClock
	mockRandom *mocks.MockRandom
	botService *bot.Service
	player     *model.Player
	ctx        context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.mockClock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.mockRandom = mocks.NewMockRandom()
	s.ctx = context.Background()

	strategy := bot.NewRandomStrategy(s.mockRandom)
	s.botService = bot.NewService(strategy, s.mockClock, bot.DefaultThinkDelay, testutil.NopLogger())
	s.player = &model.Player{Name: model.ComputerName, Marker: model.MarkerO, Kind: model.PlayerKindComputer}
}

func (s *ServiceSuite) TestChooseMoveThinksThenPicks() {
	available := model.NewBoard().AvailableMoves()
	s.mockRandom.QueueIntn(8)

	pos, err := s.botService.ChooseMove(s.ctx, s.player, available)
	s.Require().NoError(err)

	s.Equal(model.Position{Row: 2, Col: 2}, pos)
	s.Equal([]time.Duration{bot.DefaultThinkDelay}, s.mockClock.Sleeps)
}

func (s *ServiceSuite) TestChooseMoveNoAvailable() {
	_, err := s.botService.ChooseMove(s.ctx, s.player, nil)
	s.ErrorIs(err, bot.ErrNoMoves)
	s.Empty(s.mockClock.Sleeps)
}

func (s *ServiceSuite) TestChooseMoveCancelled() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := s.botService.ChooseMove(ctx, s.player, model.NewBoard().AvailableMoves())
	s.ErrorIs(err, context.Canceled)
	s.Empty(s.mockRandom.Calls)
}

func (s *ServiceSuite) TestChooseMoveCustomDelay() {
	svc := bot.NewService(bot.NewRandomStrategy(s.mockRandom), s.mockClock, 0, testutil.NopLogger())

	_, err := svc.ChooseMove(s.ctx, s.player, model.NewBoard().AvailableMoves())
	s.Require().NoError(err)
	s.Equal([]time.Duration{0}, s.mockClock.Sleeps)
}
