package game

import (
	"github.com/KirkDiggler/greed/internal/common/clock"
	"github.com/KirkDiggler/greed/internal/common/uuid"
	"github.com/KirkDiggler/greed/internal/dice"
	"github.com/KirkDiggler/greed/internal/models"
	gameRepo "github.com/KirkDiggler/greed/internal/repositories/game"
	"github.com/KirkDiggler/greed/internal/scoring"
	"github.com/charmbracelet/log"
)

// Config holds configuration for the game service
type Config struct {
	// Repository dependencies
	GameRepo gameRepo.Repository

	// Service dependencies
	DiceRoller    dice.Roller
	Clock         clock.Clock
	UUIDGenerator uuid.UUID

	// Scorer overrides the standard scoring table (optional)
	Scorer scoring.Scorer

	// Logger receives game events (optional)
	Logger *log.Logger
}

// CreateGameInput contains parameters for creating a new game
type CreateGameInput struct {
	// PlayerNames is the roster; at least two distinct names
	PlayerNames []string
}

// CreateGameOutput contains the result of creating a new game
type CreateGameOutput struct {
	// Game is the newly created game
	Game *models.Game

	// PlayerNames is the roster in turn order
	PlayerNames []string
}

// RecordTurnInput contains parameters for recording dice rolled by hand
type RecordTurnInput struct {
	GameID     string
	PlayerName string
	Dice       []int
}

// RecordTurnOutput contains the scored turn
type RecordTurnOutput struct {
	Turn *models.Turn
}

// RollTurnInput contains parameters for rolling dice on a player's behalf
type RollTurnInput struct {
	GameID     string
	PlayerName string
}

// RollTurnOutput contains the scored turn
type RollTurnOutput struct {
	Turn *models.Turn
}

// EndRoundInput contains parameters for ending a round
type EndRoundInput struct {
	GameID string
}

// EndRoundOutput contains the standings at the end of a round
type EndRoundOutput struct {
	// CompletedRound is the round that just finished
	CompletedRound int

	// Round is the round now being played
	Round int

	// Leaderboard is the standings after the completed round
	Leaderboard []models.Standing
}

// GetScoreInput contains parameters for retrieving a player's score
type GetScoreInput struct {
	GameID     string
	PlayerName string
}

// GetScoreOutput contains a player's score
type GetScoreOutput struct {
	Score int
}

// GetPlayersInput contains parameters for retrieving a roster
type GetPlayersInput struct {
	GameID string
}

// GetPlayersOutput contains the roster of a game
type GetPlayersOutput struct {
	PlayerNames []string
	Count       int
}

// GetLeaderboardInput defines the input for retrieving a game's leaderboard
type GetLeaderboardInput struct {
	GameID string
}

// GetLeaderboardOutput defines the output for retrieving a game's leaderboard
type GetLeaderboardOutput struct {
	GameID  string
	Round   int
	Entries []models.Standing
}

// GetWinnersInput defines the input for retrieving a game's winners
type GetWinnersInput struct {
	GameID string
}

// GetWinnersOutput contains the players sharing the top score
type GetWinnersOutput struct {
	Winners []string
	Score   int
}

// ResetGameInput contains parameters for resetting a game
type ResetGameInput struct {
	GameID string
}

// ResetGameOutput contains the result of resetting a game
type ResetGameOutput struct {
	Success bool
	Game    *models.Game
}

// EndGameInput contains parameters for ending a game
type EndGameInput struct {
	GameID string
}

// EndGameOutput contains the result of ending a game
type EndGameOutput struct {
	// Game is the completed game
	Game *models.Game

	// FinalLeaderboard contains the final standings for the game
	FinalLeaderboard []models.Standing

	// Winners are the players tied for the highest score, sorted by name
	Winners []string
}

// DeleteGameInput contains parameters for deleting a game
type DeleteGameInput struct {
	GameID string
}

// DeleteGameOutput contains the result of deleting a game
type DeleteGameOutput struct {
	Success bool
}

// ListActiveGamesInput contains parameters for listing active games
type ListActiveGamesInput struct{}

// ListActiveGamesOutput contains the active games
type ListActiveGamesOutput struct {
	Games []*models.Game
}
