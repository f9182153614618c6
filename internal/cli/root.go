package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/mcoot/tictactoe/internal/factory"
)

// NewRootCmd creates the root command
func NewRootCmd(cfg *Config) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tictactoe",
		Short: "Play Tic-Tac-Toe in the terminal",
		Long: `tictactoe is a two-player Tic-Tac-Toe game for the terminal.

Play against the computer or another human on the same keyboard.
Scores carry over between rounds until you reset or quit.`,
		Args: cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return cfg.Validate()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return play(cmd, cfg)
		},
		SilenceUsage: true,
	}

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.DurationVar(&cfg.ThinkDelay, "think-delay", cfg.ThinkDelay, "Computer pause before each move (env: TICTACTOE_THINK_DELAY)")
	flags.DurationVar(&cfg.Countdown, "countdown", cfg.Countdown, "Pause before the first round, 0 to skip (env: TICTACTOE_COUNTDOWN)")
	flags.BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "Disable colours (env: TICTACTOE_NO_COLOR, NO_COLOR)")
	flags.BoolVar(&cfg.ClearScreen, "clear", cfg.ClearScreen, "Clear the screen between turns (env: TICTACTOE_CLEAR)")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error (env: TICTACTOE_LOG_LEVEL)")
	flags.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "Write JSON logs to this file (env: TICTACTOE_LOG_FILE)")

	return rootCmd
}

func play(cmd *cobra.Command, cfg *Config) error {
	logger, closeLog, err := cfg.NewLogger()
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	app, err := factory.New(factory.Config{
		In:          cmd.InOrStdin(),
		Out:         cmd.OutOrStdout(),
		ThinkDelay:  cfg.ThinkDelay,
		Countdown:   cfg.Countdown,
		Color:       !cfg.NoColor && !termenv.EnvNoColor(),
		ClearScreen: cfg.ClearScreen,
		Logger:      logger,
	})
	if err != nil {
		return err
	}

	return app.GameController.Run(cmd.Context())
}

// Execute runs the root command
func Execute() {
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := NewRootCmd(cfg).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
