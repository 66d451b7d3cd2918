package bingo

import "errors"

var (
	// ErrInvalidDimension is returned for a card size (or card count) that can't be built.
	ErrInvalidDimension = errors.New("invalid dimension")

	// ErrInsufficientPool is returned when maxNumber doesn't provide enough
	// distinct values to fill every non-free cell of a card.
	ErrInsufficientPool = errors.New("insufficient number pool")

	// ErrPoolExhausted is returned by Draw when every number was already called.
	ErrPoolExhausted = errors.New("all numbers have been called")

	// ErrGameOver is returned by Session operations after the session was won.
	ErrGameOver = errors.New("game is over")

	// ErrOutOfBounds is returned when marking a coordinate outside the card.
	ErrOutOfBounds = errors.New("cell out of bounds")
)
