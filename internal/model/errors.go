package model

import "errors"

// Common errors used across the application
var (
	// Game errors
	ErrGameNotFound    = errors.New("game not found")
	ErrInvalidMode     = errors.New("invalid game mode")
	ErrInvalidStrategy = errors.New("unknown computer strategy")
	ErrInvalidName     = errors.New("invalid game name")
	ErrInvalidSquare   = errors.New("square is outside the board and its capture pools")
	ErrTooManyGames    = errors.New("too many games")
)
