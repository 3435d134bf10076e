package models

import (
	"time"
)

// GameStatus represents the current state of a game
type GameStatus string

const (
	// GameStatusActive indicates a game is accepting turns
	GameStatusActive GameStatus = "active"

	// GameStatusCompleted indicates a game has been ended and its winners decided
	GameStatusCompleted GameStatus = "completed"
)

// IsActive reports whether turns may still be recorded
func (s GameStatus) IsActive() bool {
	return s == GameStatusActive
}

// Game represents one game of Greed
type Game struct {
	// ID is the unique identifier for the game
	ID string

	// Round is the current round number, starting at 1
	Round int

	// Status is the current state of the game
	Status GameStatus

	// CreatedAt is when the game was created
	CreatedAt time.Time

	// UpdatedAt is when the game was last updated
	UpdatedAt time.Time
}
