package game

import (
	"github.com/KirkDiggler/greed/internal/ledger"
	"github.com/KirkDiggler/greed/internal/models"
)

// Record is a stored game together with the ledger holding its scores
type Record struct {
	Game   *models.Game
	Ledger *ledger.Ledger
}

type SaveGameInput struct {
	Game   *models.Game
	Ledger *ledger.Ledger
}

type GetGameInput struct {
	GameID string
}

type UpdateGameInput struct {
	GameID string

	// Update mutates the record. Record.Game is a copy; Record.Ledger is live,
	// so Update must change it only after every check that can fail.
	Update func(record *Record) error
}

type DeleteGameInput struct {
	GameID string
}

type GetActiveGamesInput struct {
}

type GetActiveGamesOutput struct {
	Games []*models.Game
}
