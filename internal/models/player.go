package models

// Player represents a participant on the roster of a game
type Player struct {
	// Name uniquely identifies the player; it is case-sensitive and never changes
	Name string

	// Score is the player's cumulative points for the current game
	Score int
}
