package model

import "time"

// SessionID uniquely identifies a play session in logs
type SessionID string

// GameState represents the current phase of a session
type GameState string

const (
	GameStateSetup     GameState = "setup"      // Collecting players
	GameStatePlaying   GameState = "playing"    // Round in progress
	GameStateRoundOver GameState = "round_over" // Waiting for continue/reset/quit
	GameStateFinished  GameState = "finished"   // Player quit
)

// Action is the post-round menu choice
type Action string

const (
	ActionContinue Action = "continue"
	ActionReset    Action = "reset"
	ActionQuit     Action = "quit"
)

// OutcomeKind describes how a round ended
type OutcomeKind string

const (
	OutcomeNone OutcomeKind = "none" // Round still in progress
	OutcomeWin  OutcomeKind = "win"
	OutcomeDraw OutcomeKind = "draw"
)

// Outcome is the result of evaluating a board
type Outcome struct {
	Kind   OutcomeKind
	Winner Marker // MarkerNone unless Kind is OutcomeWin
}

// IsOver returns true once a round has a winner or a draw
func (o Outcome) IsOver() bool {
	return o.Kind == OutcomeWin || o.Kind == OutcomeDraw
}

// Scoreboard counts results across rounds. Counters only grow until reset.
type Scoreboard struct {
	Player1Wins int
	Player2Wins int
	Draws       int
}

// RoundSummary is a lightweight record of a completed round
type RoundSummary struct {
	Round       int
	Outcome     OutcomeKind
	Winner      string // Winning player's name, empty for a draw
	CompletedAt time.Time
}

// Session aggregates everything that lives from setup until reset or quit
type Session struct {
	ID         SessionID
	State      GameState
	Board      *Board
	Player1    *Player
	Player2    *Player
	Scores     Scoreboard
	Round      int
	LastWinner Marker         // Winner of the most recent round, MarkerNone after a draw
	History    []RoundSummary // In-memory only, cleared on reset
	StartedAt  time.Time
}

// NewSession creates a session in the setup state with an empty board
func NewSession(id SessionID, now time.Time) *Session {
	return &Session{
		ID:        id,
		State:     GameStateSetup,
		Board:     NewBoard(),
		Round:     1,
		StartedAt: now,
	}
}

// FirstPlayer returns the player flagged to move first
func (s *Session) FirstPlayer() *Player {
	if s.Player1 != nil && s.Player1.GoesFirst {
		return s.Player1
	}
	return s.Player2
}

// Opponent returns the other player
func (s *Session) Opponent(p *Player) *Player {
	if p == s.Player1 {
		return s.Player2
	}
	return s.Player1
}

// PlayerByMarker returns the player holding the marker, or nil
func (s *Session) PlayerByMarker(m Marker) *Player {
	switch {
	case s.Player1 != nil && s.Player1.Marker == m:
		return s.Player1
	case s.Player2 != nil && s.Player2.Marker == m:
		return s.Player2
	default:
		return nil
	}
}

// NextRound clears the board and advances the round counter,
// keeping players and scores
func (s *Session) NextRound() {
	s.Board.Reset()
	s.Round++
	s.State = GameStatePlaying
}

// Reset reinitialises the session for a fresh setup
func (s *Session) Reset(id SessionID, now time.Time) {
	*s = *NewSession(id, now)
}
