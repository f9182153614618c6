package factory

import (
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/mcoot/tictactoe/internal/console"
	"github.com/mcoot/tictactoe/internal/dependencies/clock"
	"github.com/mcoot/tictactoe/internal/dependencies/ids"
	"github.com/mcoot/tictactoe/internal/dependencies/random"
	"github.com/mcoot/tictactoe/internal/services/bot"
	"github.com/mcoot/tictactoe/internal/services/game"
	"github.com/mcoot/tictactoe/internal/services/scoring"
)

// App contains all wired application components
type App struct {
	// External dependencies
	Clock  clock.Clock
	Random random.Random
	IDs    ids.Generator

	// Terminal
	Renderer *console.Renderer
	Prompter *console.Prompter

	// Services
	BotService     *bot.Service
	ScoringService *scoring.Service
	GameController *game.Controller
}

// Config holds configuration for the application factory
type Config struct {
	// In is where player answers are read from (required)
	In io.Reader
	// Out is where the game is drawn (required)
	Out io.Writer
	// ThinkDelay is the computer's pause before each move; zero skips it
	ThinkDelay time.Duration
	// Countdown is the pause before the first round; zero skips it
	Countdown time.Duration
	// Color enables ANSI colours
	Color bool
	// ClearScreen wipes the terminal before each repaint
	ClearScreen bool
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	if cfg.In == nil || cfg.Out == nil {
		return nil, errors.New("In and Out are required")
	}

	// Create external dependencies
	clk := clock.New()
	rnd := random.New()
	idGen := ids.New()

	return newWithDependencies(cfg, clk, rnd, idGen), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(cfg Config, clk clock.Clock, rnd random.Random, idGen ids.Generator) *App {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	renderer := console.NewRenderer(cfg.Out, console.Options{
		Color:       cfg.Color,
		ClearScreen: cfg.ClearScreen,
	})
	prompter := console.NewPrompter(cfg.In, renderer)

	// Create services
	botService := bot.NewService(bot.NewRandomStrategy(rnd), clk, cfg.ThinkDelay, logger)
	scoringService := scoring.New()
	gameController := game.NewController(
		prompter, renderer, botService, scoringService,
		clk, rnd, idGen,
		game.Config{Countdown: cfg.Countdown},
		logger,
	)

	return &App{
		Clock:          clk,
		Random:         rnd,
		IDs:            idGen,
		Renderer:       renderer,
		Prompter:       prompter,
		BotService:     botService,
		ScoringService: scoringService,
		GameController: gameController,
	}
}
