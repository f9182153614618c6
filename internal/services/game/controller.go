package game

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/mcoot/tictactoe/internal/dependencies/clock"
	"github.com/mcoot/tictactoe/internal/dependencies/ids"
	"github.com/mcoot/tictactoe/internal/dependencies/random"
	"github.com/mcoot/tictactoe/internal/model"
	"github.com/mcoot/tictactoe/internal/services/scoring"
)

// DefaultCountdown is the pause between setup and the first round
const DefaultCountdown = 3 * time.Second

// Mover picks a cell for a player's turn
type Mover interface {
	ChooseMove(ctx context.Context, player *model.Player, available []model.Position) (model.Position, error)
}

// Prompter collects answers from the human at the terminal.
// It also moves for human players.
type Prompter interface {
	Mover
	AskPlayerName(ctx context.Context) (string, error)
	AskOpponentName(ctx context.Context, taken string) (string, error)
	AskMarker(ctx context.Context, player1Name string) (model.Marker, error)
	AskOpponent(ctx context.Context) (model.OpponentKind, error)
	AskAction(ctx context.Context) (model.Action, error)
}

// View draws the session
type View interface {
	Clear()
	Title()
	Repaint(session *model.Session)
	MarkerChosen(marker model.Marker)
	Matchup(session *model.Session)
	Countdown()
	Winner(player *model.Player)
	Draw()
	Farewell(history []model.RoundSummary)
}

// Config holds controller settings
type Config struct {
	// Countdown is the pause before the first round; zero skips it
	Countdown time.Duration
}

// Controller runs the session state machine: setup, rounds and the
// continue/reset/quit menu
type Controller struct {
	session        *model.Session
	movers         map[*model.Player]Mover
	prompter       Prompter
	view           View
	computer       Mover
	scoringService *scoring.Service
	clock          clock.Clock
	random         random.Random
	ids            ids.Generator
	cfg            Config
	logger         *slog.Logger
}

// NewController creates a new GameController with a fresh session
func NewController(
	prompter Prompter,
	view View,
	computer Mover,
	scoringService *scoring.Service,
	clock clock.Clock,
	random random.Random,
	ids ids.Generator,
	cfg Config,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		session:        model.NewSession(ids.NewSessionID(), clock.Now()),
		prompter:       prompter,
		view:           view,
		computer:       computer,
		scoringService: scoringService,
		clock:          clock,
		random:         random,
		ids:            ids,
		cfg:            cfg,
		logger:         logger.With(slog.String("component", "game-controller")),
	}
}

// Session returns the current session
func (c *Controller) Session() *model.Session {
	return c.session
}

// Run plays a whole session until the player quits.
// Closed input or a cancelled context end the session the same way.
func (c *Controller) Run(ctx context.Context) error {
	c.logger.Info("session started", slog.String("session_id", string(c.session.ID)))

	if err := c.start(ctx); err != nil {
		return c.finish(err)
	}

	for {
		if _, err := c.PlayRound(ctx); err != nil {
			return c.finish(err)
		}

		action, err := c.PromptNextAction(ctx)
		if err != nil {
			return c.finish(err)
		}
		if action == model.ActionQuit {
			return c.finish(nil)
		}
	}
}

// start shows the title, runs setup and counts down to the first round
func (c *Controller) start(ctx context.Context) error {
	c.view.Clear()
	c.view.Title()

	if err := c.Setup(ctx); err != nil {
		return err
	}

	if c.cfg.Countdown > 0 {
		c.view.Countdown()
		if err := c.clock.Sleep(ctx, c.cfg.Countdown); err != nil {
			return err
		}
	}
	return nil
}

// finish ends the session, treating an early end of input as a quit
func (c *Controller) finish(err error) error {
	if err != nil && !errors.Is(err, model.ErrInputClosed) && !errors.Is(err, context.Canceled) {
		c.logger.Error("session failed",
			slog.String("session_id", string(c.session.ID)),
			slog.String("error", err.Error()),
		)
		return err
	}

	if err != nil {
		c.logger.Warn("session ended early",
			slog.String("session_id", string(c.session.ID)),
			slog.String("reason", err.Error()),
		)
	}

	c.session.State = model.GameStateFinished
	c.view.Farewell(c.session.History)

	c.logger.Info("session finished",
		slog.String("session_id", string(c.session.ID)),
		slog.Int("rounds", len(c.session.History)),
		slog.Int("player1_wins", c.session.Scores.Player1Wins),
		slog.Int("player2_wins", c.session.Scores.Player2Wins),
		slog.Int("draws", c.session.Scores.Draws),
	)
	return nil
}

// Setup collects both players, assigns markers and picks who moves first
func (c *Controller) Setup(ctx context.Context) error {
	c.session.State = model.GameStateSetup

	name1, err := c.prompter.AskPlayerName(ctx)
	if err != nil {
		return err
	}

	marker1, err := c.prompter.AskMarker(ctx, name1)
	if err != nil {
		return err
	}
	c.view.MarkerChosen(marker1)

	opponent, err := c.prompter.AskOpponent(ctx)
	if err != nil {
		return err
	}

	name2 := model.ComputerName
	if opponent == model.OpponentHuman {
		name2, err = c.prompter.AskOpponentName(ctx, name1)
		if err != nil {
			return err
		}
	}

	player1First := random.Bool(c.random)

	player1 := &model.Player{
		Name:      name1,
		Marker:    marker1,
		GoesFirst: player1First,
		Kind:      model.PlayerKindHuman,
		Color:     model.ColorPlayer1,
	}
	player2 := &model.Player{
		Name:      name2,
		Marker:    marker1.Opposite(),
		GoesFirst: !player1First,
		Kind:      opponent.PlayerKind(),
		Color:     model.ColorPlayer2,
	}

	c.session.Player1 = player1
	c.session.Player2 = player2
	c.movers = map[*model.Player]Mover{
		player1: c.prompter,
		player2: c.moverFor(opponent),
	}
	c.session.State = model.GameStatePlaying

	c.view.Matchup(c.session)

	c.logger.Info("players set up",
		slog.String("session_id", string(c.session.ID)),
		slog.String("player1", player1.Name),
		slog.String("player1_marker", string(player1.Marker)),
		slog.String("player2", player2.Name),
		slog.String("opponent", model.OpponentDisplayName(opponent)),
		slog.String("first", c.session.FirstPlayer().Name),
	)

	return nil
}

// moverFor returns who chooses player 2's moves
func (c *Controller) moverFor(opponent model.OpponentKind) Mover {
	if opponent == model.OpponentComputer {
		return c.computer
	}
	return c.prompter
}

// PlayRound alternates turns from the first player until someone wins or
// the board fills. A winning last move counts as a win.
func (c *Controller) PlayRound(ctx context.Context) (model.Outcome, error) {
	if c.session.Player1 == nil || c.session.Player2 == nil {
		return model.Outcome{}, model.ErrPlayersNotSet
	}

	c.session.State = model.GameStatePlaying
	board := c.session.Board
	current := c.session.FirstPlayer()

	c.logger.Info("round started",
		slog.String("session_id", string(c.session.ID)),
		slog.Int("round", c.session.Round),
		slog.String("first", current.Name),
	)

	c.view.Repaint(c.session)

	for {
		pos, err := c.movers[current].ChooseMove(ctx, current, board.AvailableMoves())
		if err != nil {
			return model.Outcome{}, err
		}

		if err := board.Place(pos, current.Marker); err != nil {
			return model.Outcome{}, err
		}

		c.logger.Debug("move placed",
			slog.String("session_id", string(c.session.ID)),
			slog.String("player", current.Name),
			slog.String("marker", string(current.Marker)),
			slog.String("position", pos.String()),
		)

		c.view.Repaint(c.session)

		outcome := c.scoringService.Evaluate(board)
		if !outcome.IsOver() {
			current = c.session.Opponent(current)
			continue
		}

		winner, err := c.scoringService.Record(c.session, outcome, c.clock.Now())
		if err != nil {
			return model.Outcome{}, err
		}

		c.view.Repaint(c.session)
		if winner != nil {
			c.view.Winner(winner)
		} else {
			c.view.Draw()
		}

		c.logger.Info("round finished",
			slog.String("session_id", string(c.session.ID)),
			slog.Int("round", c.session.Round),
			slog.String("outcome", string(outcome.Kind)),
			slog.String("winner", string(outcome.Winner)),
			slog.Int("player1_wins", c.session.Scores.Player1Wins),
			slog.Int("player2_wins", c.session.Scores.Player2Wins),
			slog.Int("draws", c.session.Scores.Draws),
		)

		return outcome, nil
	}
}

// PromptNextAction asks continue/reset/quit and applies the choice.
// Reset runs setup again before returning.
func (c *Controller) PromptNextAction(ctx context.Context) (model.Action, error) {
	c.session.State = model.GameStateRoundOver

	action, err := c.prompter.AskAction(ctx)
	if err != nil {
		return "", err
	}

	switch action {
	case model.ActionContinue:
		c.session.NextRound()
		c.logger.Info("round continued",
			slog.String("session_id", string(c.session.ID)),
			slog.Int("round", c.session.Round),
		)
	case model.ActionReset:
		c.Reset()
		if err := c.start(ctx); err != nil {
			return action, err
		}
	case model.ActionQuit:
		c.session.State = model.GameStateFinished
	}

	return action, nil
}

// Reset discards players, scores and history and starts a new session
func (c *Controller) Reset() {
	oldID := c.session.ID
	c.session.Reset(c.ids.NewSessionID(), c.clock.Now())
	c.movers = nil

	c.logger.Info("session reset",
		slog.String("old_session_id", string(oldID)),
		slog.String("session_id", string(c.session.ID)),
	)
}
