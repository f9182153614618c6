package scoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/tictactoe/internal/model"
)

type ServiceSuite struct {
	suite.Suite
	service *Service
	session *model.Session
	now     time.Time
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.service = New()
	s.now = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	s.session = model.NewSession("session-1", s.now)
	s.session.Player1 = &model.Player{Name: "Alice", Marker: model.MarkerO, Color: model.ColorPlayer1}
	s.session.Player2 = &model.Player{Name: "Computer", Marker: model.MarkerX, Kind: model.PlayerKindComputer, Color: model.ColorPlayer2}
}

// Helper to create a board from rows, '.' meaning empty
func (s *ServiceSuite) createBoard(rows ...string) *model.Board {
	board := model.NewBoard()
	for row, cells := range rows {
		for col, c := range cells {
			if c != '.' {
				s.Require().NoError(board.Place(model.Position{Row: row, Col: col}, model.Marker(string(c))))
			}
		}
	}
	return board
}

// Evaluate tests

func (s *ServiceSuite) TestEvaluateInProgress() {
	outcome := s.service.Evaluate(s.createBoard("X..", ".O.", "..."))
	s.Equal(model.OutcomeNone, outcome.Kind)
	s.False(outcome.IsOver())
}

func (s *ServiceSuite) TestEvaluateWin() {
	outcome := s.service.Evaluate(s.createBoard("XXX", "OO.", "..."))
	s.Equal(model.Outcome{Kind: model.OutcomeWin, Winner: model.MarkerX}, outcome)
}

func (s *ServiceSuite) TestEvaluateDraw() {
	outcome := s.service.Evaluate(s.createBoard("XOX", "XOO", "OXX"))
	s.Equal(model.Outcome{Kind: model.OutcomeDraw}, outcome)
}

func (s *ServiceSuite) TestEvaluateWinOnLastCellIsNotDraw() {
	outcome := s.service.Evaluate(s.createBoard("XOX", "OXO", "OXX"))
	s.Equal(model.OutcomeWin, outcome.Kind)
	s.Equal(model.MarkerX, outcome.Winner)
}

// Record tests

func (s *ServiceSuite) TestRecordWinForPlayer2() {
	winner, err := s.service.Record(s.session, model.Outcome{Kind: model.OutcomeWin, Winner: model.MarkerX}, s.now)
	s.Require().NoError(err)

	s.Same(s.session.Player2, winner)
	s.Equal(model.Scoreboard{Player2Wins: 1}, s.session.Scores)
	s.Equal(model.MarkerX, s.session.LastWinner)
	s.Equal(model.GameStateRoundOver, s.session.State)
	s.Equal([]model.RoundSummary{{Round: 1, Outcome: model.OutcomeWin, Winner: "Computer", CompletedAt: s.now}}, s.session.History)
}

func (s *ServiceSuite) TestRecordWinForPlayer1() {
	winner, err := s.service.Record(s.session, model.Outcome{Kind: model.OutcomeWin, Winner: model.MarkerO}, s.now)
	s.Require().NoError(err)

	s.Same(s.session.Player1, winner)
	s.Equal(model.Scoreboard{Player1Wins: 1}, s.session.Scores)
}

func (s *ServiceSuite) TestRecordDraw() {
	s.session.LastWinner = model.MarkerO

	winner, err := s.service.Record(s.session, model.Outcome{Kind: model.OutcomeDraw}, s.now)
	s.Require().NoError(err)

	s.Nil(winner)
	s.Equal(model.Scoreboard{Draws: 1}, s.session.Scores)
	s.Equal(model.MarkerNone, s.session.LastWinner)
	s.Require().Len(s.session.History, 1)
	s.Empty(s.session.History[0].Winner)
}

func (s *ServiceSuite) TestRecordAccumulatesAcrossRounds() {
	_, _ = s.service.Record(s.session, model.Outcome{Kind: model.OutcomeWin, Winner: model.MarkerO}, s.now)
	s.session.NextRound()
	_, _ = s.service.Record(s.session, model.Outcome{Kind: model.OutcomeDraw}, s.now)
	s.session.NextRound()
	_, _ = s.service.Record(s.session, model.Outcome{Kind: model.OutcomeWin, Winner: model.MarkerO}, s.now)

	s.Equal(model.Scoreboard{Player1Wins: 2, Draws: 1}, s.session.Scores)
	s.Len(s.session.History, 3)
	s.Equal(3, s.session.History[2].Round)
}

func (s *ServiceSuite) TestRecordUnfinishedRoundIsNoop() {
	winner, err := s.service.Record(s.session, model.Outcome{Kind: model.OutcomeNone}, s.now)
	s.Require().NoError(err)
	s.Nil(winner)
	s.Equal(model.Scoreboard{}, s.session.Scores)
	s.Empty(s.session.History)
}

func (s *ServiceSuite) TestRecordWithoutPlayersFails() {
	session := model.NewSession("empty", s.now)
	_, err := s.service.Record(session, model.Outcome{Kind: model.OutcomeDraw}, s.now)
	s.ErrorIs(err, model.ErrPlayersNotSet)
}

func (s *ServiceSuite) TestRecordUnknownWinnerMarkerFails() {
	_, err := s.service.Record(s.session, model.Outcome{Kind: model.OutcomeWin, Winner: model.MarkerNone}, s.now)
	s.ErrorIs(err, model.ErrInvalidMarker)
	s.Equal(model.Scoreboard{}, s.session.Scores)
}
