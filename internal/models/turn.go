package models

import (
	"time"
)

// Turn is the result of scoring one player's roll
type Turn struct {
	// GameID is the ID of the game the turn belongs to
	GameID string

	// PlayerName is the player who rolled
	PlayerName string

	// Round is the round the turn was played in
	Round int

	// Dice are the faces that were rolled
	Dice []int

	// Points is what the roll was worth
	Points int

	// Total is the player's cumulative score after the turn
	Total int

	// Timestamp is when the turn was recorded
	Timestamp time.Time
}
