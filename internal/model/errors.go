package model

import "errors"

// Common errors used across the application
var (
	// ErrInvalidInput is the parent of every user input rejection.
	// Prompts catch it and ask again.
	ErrInvalidInput = errors.New("invalid input")

	// Name errors
	ErrNameEmpty     = errors.New("name is empty")
	ErrNameTooLong   = errors.New("name is too long")
	ErrNameCharset   = errors.New("name contains characters that are not allowed")
	ErrDuplicateName = errors.New("name is already taken")

	// Choice errors
	ErrUnknownMarker   = errors.New("unknown marker")
	ErrUnknownOpponent = errors.New("unknown opponent kind")
	ErrUnknownAction   = errors.New("unknown action")

	// Move input errors
	ErrMoveFormat      = errors.New("move must be row,col")
	ErrMoveOutOfRange  = errors.New("move coordinate out of range")
	ErrMoveUnavailable = errors.New("cell is not available")

	// ErrInvalidMove is returned when a board placement breaks the board contract
	ErrInvalidMove = errors.New("invalid move")

	// Board errors
	ErrInvalidPosition = errors.New("invalid board position")
	ErrCellOccupied    = errors.New("cell is already occupied")
	ErrInvalidMarker   = errors.New("invalid marker")

	// Session errors
	ErrPlayersNotSet = errors.New("players have not been set up")

	// ErrInputClosed is returned when the input stream ends before a valid answer
	ErrInputClosed = errors.New("input closed")
)
