package ledger

import (
	"github.com/KirkDiggler/greed/internal/scoring"
)

// MinPlayers is the smallest roster a game can be played with
const MinPlayers = 2

// Config holds configuration for a ledger
type Config struct {
	// Players is the roster; duplicate names collapse into one player
	Players []string

	// Scorer converts rolls to points, defaults to the standard table
	Scorer scoring.Scorer
}
