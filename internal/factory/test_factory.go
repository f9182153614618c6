package factory

import (
	"bytes"
	"strings"
	"time"

	"github.com/mcoot/tictactoe/internal/dependencies/mocks"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Output captures everything drawn to the terminal
	Output *bytes.Buffer

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
	MockIDs    *mocks.MockIDs
}

// NewTestApp creates an App configured for testing with mocked dependencies.
// Each line is fed to the game as one line of terminal input.
func NewTestApp(cfg Config, lines ...string) *TestApp {
	script := strings.Join(lines, "\n")
	if len(lines) > 0 {
		script += "\n"
	}

	output := &bytes.Buffer{}
	cfg.In = strings.NewReader(script)
	cfg.Out = output

	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()
	mockIDs := mocks.NewMockIDs()

	app := newWithDependencies(cfg, mockClock, mockRandom, mockIDs)

	return &TestApp{
		App:        app,
		Output:     output,
		MockClock:  mockClock,
		MockRandom: mockRandom,
		MockIDs:    mockIDs,
	}
}
