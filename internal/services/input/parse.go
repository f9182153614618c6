// Package input turns raw terminal lines into validated game choices.
// Every parser returns an error wrapping model.ErrInvalidInput on rejection.
package input

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mcoot/tictactoe/internal/model"
)

// Validation rules
const (
	// MaxNameLength is the longest accepted player name, in characters
	MaxNameLength = 15
	// NameAllowedPunctuation lists the non-letter characters a name may contain
	NameAllowedPunctuation = "-'. "

	// MinCoordinate and MaxCoordinate bound each move coordinate
	MinCoordinate = 0
	MaxCoordinate = model.BoardSize - 1
	// MoveSeparator splits row from col in a move
	MoveSeparator = ","
)

func invalid(cause error, raw string) error {
	return fmt.Errorf("%w: %w: %q", model.ErrInvalidInput, cause, raw)
}

// ParseName validates a player name and returns it capitalised:
// first character upper case, the rest lower case.
func ParseName(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", invalid(model.ErrNameEmpty, raw)
	}
	if utf8.RuneCountInString(raw) > MaxNameLength {
		return "", invalid(model.ErrNameTooLong, raw)
	}
	for _, r := range raw {
		if !isNameRune(r) {
			return "", invalid(model.ErrNameCharset, raw)
		}
	}
	return capitalize(raw), nil
}

func isNameRune(r rune) bool {
	if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
		return true
	}
	return strings.ContainsRune(NameAllowedPunctuation, r)
}

func capitalize(s string) string {
	lower := strings.ToLower(s)
	first, size := utf8.DecodeRuneInString(lower)
	return string(unicode.ToUpper(first)) + lower[size:]
}

// ParseDistinctName validates a name that must differ from taken.
// Names are compared after capitalisation.
func ParseDistinctName(raw, taken string) (string, error) {
	name, err := ParseName(raw)
	if err != nil {
		return "", err
	}
	if name == taken {
		return "", invalid(model.ErrDuplicateName, raw)
	}
	return name, nil
}

// ParseMarker accepts X or O in either case
func ParseMarker(raw string) (model.Marker, error) {
	m := model.Marker(strings.ToUpper(strings.TrimSpace(raw)))
	if !m.IsValid() {
		return model.MarkerNone, invalid(model.ErrUnknownMarker, raw)
	}
	return m, nil
}

// ParseOpponent accepts C (computer) or H (human) in either case
func ParseOpponent(raw string) (model.OpponentKind, error) {
	kind := model.OpponentKind(strings.ToUpper(strings.TrimSpace(raw)))
	if !slices.Contains(model.ValidOpponentKinds(), kind) {
		return "", invalid(model.ErrUnknownOpponent, raw)
	}
	return kind, nil
}

// ParseMove parses "row,col" with each coordinate a single digit in range
func ParseMove(raw string) (model.Position, error) {
	rowText, colText, ok := strings.Cut(strings.TrimSpace(raw), MoveSeparator)
	if !ok {
		return model.Position{}, invalid(model.ErrMoveFormat, raw)
	}

	row, err := parseCoordinate(rowText)
	if err != nil {
		return model.Position{}, invalid(err, raw)
	}
	col, err := parseCoordinate(colText)
	if err != nil {
		return model.Position{}, invalid(err, raw)
	}

	return model.Position{Row: row, Col: col}, nil
}

func parseCoordinate(text string) (int, error) {
	if len(text) != 1 || text[0] < '0' || text[0] > '9' {
		return 0, model.ErrMoveFormat
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, model.ErrMoveFormat
	}
	if n < MinCoordinate || n > MaxCoordinate {
		return 0, model.ErrMoveOutOfRange
	}
	return n, nil
}

// ParseAvailableMove parses a move and checks it is one of the available cells
func ParseAvailableMove(raw string, available []model.Position) (model.Position, error) {
	pos, err := ParseMove(raw)
	if err != nil {
		return model.Position{}, err
	}
	if !slices.Contains(available, pos) {
		return model.Position{}, invalid(model.ErrMoveUnavailable, raw)
	}
	return pos, nil
}

// ParseAction accepts C (continue), R (reset) or Q (quit) in either case
func ParseAction(raw string) (model.Action, error) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "C":
		return model.ActionContinue, nil
	case "R":
		return model.ActionReset, nil
	case "Q":
		return model.ActionQuit, nil
	default:
		return "", invalid(model.ErrUnknownAction, raw)
	}
}
