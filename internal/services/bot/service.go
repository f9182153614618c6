package bot

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/mcoot/tictactoe/internal/dependencies/clock"
	"github.com/mcoot/tictactoe/internal/model"
)

// DefaultThinkDelay is how long the computer pretends to think before moving
const DefaultThinkDelay = 500 * time.Millisecond

// ErrNoMoves is returned when asked to move on a full board
var ErrNoMoves = errors.New("no available moves")

// Service drives the computer player's turns
type Service struct {
	strategy   Strategy
	clock      clock.Clock
	thinkDelay time.Duration
	logger     *slog.Logger
}

// NewService creates a new bot Service
func NewService(strategy Strategy, clk clock.Clock, thinkDelay time.Duration, logger *slog.Logger) *Service {
	return &Service{
		strategy:   strategy,
		clock:      clk,
		thinkDelay: thinkDelay,
		logger:     logger.With(slog.String("component", "bot-service")),
	}
}

// ChooseMove waits out the think delay, then lets the strategy pick a cell
func (s *Service) ChooseMove(ctx context.Context, player *model.Player, available []model.Position) (model.Position, error) {
	if len(available) == 0 {
		return model.Position{}, ErrNoMoves
	}

	if err := s.clock.Sleep(ctx, s.thinkDelay); err != nil {
		return model.Position{}, err
	}

	pos := s.strategy.ChoosePosition(available)

	s.logger.Debug("bot chose move",
		slog.String("player", player.Name),
		slog.String("marker", string(player.Marker)),
		slog.String("position", pos.String()),
		slog.Int("candidates", len(available)),
	)

	return pos, nil
}
