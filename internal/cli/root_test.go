package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type RootSuite struct {
	suite.Suite
}

func TestRootSuite(t *testing.T) {
	suite.Run(t, new(RootSuite))
}

func (s *RootSuite) loadConfig() *Config {
	cfg, err := LoadConfig()
	s.Require().NoError(err)
	return cfg
}

// execute runs the root command with the given stdin and arguments
func (s *RootSuite) execute(cfg *Config, input string, args ...string) (string, error) {
	out := &bytes.Buffer{}
	cmd := NewRootCmd(cfg)
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func (s *RootSuite) TestDefaults() {
	cfg := s.loadConfig()

	s.Equal(500*time.Millisecond, cfg.ThinkDelay)
	s.Equal(3*time.Second, cfg.Countdown)
	s.False(cfg.NoColor)
	s.True(cfg.ClearScreen)
	s.Equal("info", cfg.LogLevel)
	s.Empty(cfg.LogFile)
	s.NoError(cfg.Validate())
}

func (s *RootSuite) TestEnvironmentOverridesDefaults() {
	s.T().Setenv("TICTACTOE_THINK_DELAY", "0s")
	s.T().Setenv("TICTACTOE_COUNTDOWN", "1s")
	s.T().Setenv("TICTACTOE_NO_COLOR", "true")
	s.T().Setenv("TICTACTOE_LOG_LEVEL", "debug")

	cfg := s.loadConfig()

	s.Equal(time.Duration(0), cfg.ThinkDelay)
	s.Equal(time.Second, cfg.Countdown)
	s.True(cfg.NoColor)
	s.Equal("debug", cfg.LogLevel)
}

func (s *RootSuite) TestValidateRejectsBadValues() {
	cfg := s.loadConfig()
	cfg.LogLevel = "loud"
	s.ErrorContains(cfg.Validate(), "LogLevel")

	cfg = s.loadConfig()
	cfg.Countdown = -time.Second
	s.ErrorContains(cfg.Validate(), "Countdown")
}

func (s *RootSuite) TestFlagOverridesEnvironment() {
	s.T().Setenv("TICTACTOE_LOG_LEVEL", "debug")
	cfg := s.loadConfig()

	_, err := s.execute(cfg, "", "--log-level", "warn", "--countdown", "0", "--clear=false")
	s.Require().NoError(err)

	s.Equal("warn", cfg.LogLevel)
	s.Equal(time.Duration(0), cfg.Countdown)
	s.False(cfg.ClearScreen)
}

func (s *RootSuite) TestInvalidFlagFails() {
	_, err := s.execute(s.loadConfig(), "", "--log-level", "loud")
	s.Error(err)
}

func (s *RootSuite) TestPlaysAGameOverStdin() {
	logFile := filepath.Join(s.T().TempDir(), "game.log")
	script := strings.Join([]string{
		"alice", "x", "h", "bob",
		"0,0", "1,0", "0,1", "1,1", "0,2",
		"q",
	}, "\n") + "\n"

	out, err := s.execute(s.loadConfig(), script,
		"--countdown", "0", "--no-color", "--clear=false",
		"--log-level", "debug", "--log-file", logFile,
	)
	s.Require().NoError(err)

	s.Contains(out, "!!! Alice WON !!!")
	s.Contains(out, "GAME OVER!")
	s.NotContains(out, "\x1b[")

	logs, err := os.ReadFile(logFile)
	s.Require().NoError(err)
	s.Contains(string(logs), `"component":"game-controller"`)
	s.Contains(string(logs), `"msg":"round finished"`)
	s.Contains(string(logs), `"msg":"move placed"`)
}

func (s *RootSuite) TestEmptyInputExitsCleanly() {
	out, err := s.execute(s.loadConfig(), "", "--countdown", "0", "--no-color")
	s.Require().NoError(err)
	s.Contains(out, "GAME OVER!")
}
