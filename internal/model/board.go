package model

import "fmt"

// BoardSize is the dimension of the square grid
const BoardSize = 3

// Marker is the symbol a player places on the board
type Marker string

const (
	MarkerNone Marker = ""
	MarkerX    Marker = "X"
	MarkerO    Marker = "O"
)

// IsValid returns true for X and O
func (m Marker) IsValid() bool {
	return m == MarkerX || m == MarkerO
}

// Opposite returns the complementary marker, or MarkerNone for an invalid one
func (m Marker) Opposite() Marker {
	switch m {
	case MarkerX:
		return MarkerO
	case MarkerO:
		return MarkerX
	default:
		return MarkerNone
	}
}

// Position identifies a cell on the board
type Position struct {
	Row int // 0-indexed from top
	Col int // 0-indexed from left
}

func (p Position) String() string {
	return fmt.Sprintf("%d,%d", p.Row, p.Col)
}

// Board is the 3x3 playing grid
type Board struct {
	Cells [BoardSize][BoardSize]Marker // Row-major: Cells[row][col]
}

// NewBoard creates an empty board
func NewBoard() *Board {
	return &Board{}
}

// Reset clears every cell
func (b *Board) Reset() {
	b.Cells = [BoardSize][BoardSize]Marker{}
}

// Get returns the marker at the given position, or MarkerNone if empty or out of range
func (b *Board) Get(pos Position) Marker {
	if !b.IsValidPosition(pos) {
		return MarkerNone
	}
	return b.Cells[pos.Row][pos.Col]
}

// IsValidPosition returns true if the position is within bounds
func (b *Board) IsValidPosition(pos Position) bool {
	return pos.Row >= 0 && pos.Row < BoardSize && pos.Col >= 0 && pos.Col < BoardSize
}

// Place puts a marker on an empty cell
func (b *Board) Place(pos Position, marker Marker) error {
	if !b.IsValidPosition(pos) {
		return fmt.Errorf("%w: %w: %s", ErrInvalidMove, ErrInvalidPosition, pos)
	}
	if !marker.IsValid() {
		return fmt.Errorf("%w: %w: %q", ErrInvalidMove, ErrInvalidMarker, string(marker))
	}
	if b.Cells[pos.Row][pos.Col] != MarkerNone {
		return fmt.Errorf("%w: %w: %s", ErrInvalidMove, ErrCellOccupied, pos)
	}
	b.Cells[pos.Row][pos.Col] = marker
	return nil
}

// AvailableMoves returns the empty cells in row-major order
func (b *Board) AvailableMoves() []Position {
	moves := make([]Position, 0, BoardSize*BoardSize)
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b.Cells[row][col] == MarkerNone {
				moves = append(moves, Position{Row: row, Col: col})
			}
		}
	}
	return moves
}

// EmptyCount returns the number of empty cells
func (b *Board) EmptyCount() int {
	return len(b.AvailableMoves())
}

// IsFull returns true if all cells are filled
func (b *Board) IsFull() bool {
	return b.EmptyCount() == 0
}

// Winner returns the marker owning a complete line, or MarkerNone.
// Rows are checked first, then columns, then the two diagonals.
func (b *Board) Winner() Marker {
	c := &b.Cells

	for row := 0; row < BoardSize; row++ {
		if line(c[row][0], c[row][1], c[row][2]) {
			return c[row][0]
		}
	}

	for col := 0; col < BoardSize; col++ {
		if line(c[0][col], c[1][col], c[2][col]) {
			return c[0][col]
		}
	}

	if line(c[0][0], c[1][1], c[2][2]) {
		return c[0][0]
	}
	if line(c[0][2], c[1][1], c[2][0]) {
		return c[0][2]
	}

	return MarkerNone
}

func line(a, b, c Marker) bool {
	return a != MarkerNone && a == b && b == c
}
