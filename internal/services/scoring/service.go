package scoring

import (
	"time"

	"github.com/mcoot/tictactoe/internal/model"
)

// Service decides round outcomes and keeps the scoreboard
type Service struct{}

// New creates a new ScoringService
func New() *Service {
	return &Service{}
}

// Evaluate inspects a board after a move. A completed line always wins over
// a full board, so the last move of a round can never be both.
func (s *Service) Evaluate(board *model.Board) model.Outcome {
	if winner := board.Winner(); winner != model.MarkerNone {
		return model.Outcome{Kind: model.OutcomeWin, Winner: winner}
	}
	if board.IsFull() {
		return model.Outcome{Kind: model.OutcomeDraw}
	}
	return model.Outcome{Kind: model.OutcomeNone}
}

// Record applies a finished round to the session scoreboard and history.
// It returns the winning player, or nil for a draw.
func (s *Service) Record(session *model.Session, outcome model.Outcome, completedAt time.Time) (*model.Player, error) {
	if session.Player1 == nil || session.Player2 == nil {
		return nil, model.ErrPlayersNotSet
	}

	summary := model.RoundSummary{
		Round:       session.Round,
		Outcome:     outcome.Kind,
		CompletedAt: completedAt,
	}

	var winner *model.Player
	switch outcome.Kind {
	case model.OutcomeWin:
		winner = session.PlayerByMarker(outcome.Winner)
		if winner == nil {
			return nil, model.ErrInvalidMarker
		}
		if winner == session.Player1 {
			session.Scores.Player1Wins++
		} else {
			session.Scores.Player2Wins++
		}
		session.LastWinner = outcome.Winner
		summary.Winner = winner.Name
	case model.OutcomeDraw:
		session.Scores.Draws++
		session.LastWinner = model.MarkerNone
	default:
		// Round not finished, nothing to record
		return nil, nil
	}

	session.History = append(session.History, summary)
	session.State = model.GameStateRoundOver
	return winner, nil
}
