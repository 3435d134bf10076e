package models

import "fmt"

// Standing is a single row of a leaderboard
type Standing struct {
	// Rank is the 1-based position of the player on the leaderboard
	Rank int

	// Name is the player's name
	Name string

	// Score is the player's cumulative points
	Score int
}

// String renders the standing as "name (score)"
func (s Standing) String() string {
	return fmt.Sprintf("%s (%d)", s.Name, s.Score)
}
