package model

// PlayerKind distinguishes a human at the keyboard from the computer opponent
type PlayerKind string

const (
	PlayerKindHuman    PlayerKind = "human"
	PlayerKindComputer PlayerKind = "computer"
)

// Color tags an entity with its display colour
type Color string

const (
	ColorGame    Color = "game"
	ColorPlayer1 Color = "player1"
	ColorPlayer2 Color = "player2"
)

// ComputerName is the display name of the computer opponent
const ComputerName = "Computer"

// Player represents a game participant. Fields are fixed once setup completes.
type Player struct {
	Name      string
	Marker    Marker
	GoesFirst bool
	Kind      PlayerKind
	Color     Color
}

// IsComputer returns true for the computer opponent
func (p *Player) IsComputer() bool {
	return p.Kind == PlayerKindComputer
}
