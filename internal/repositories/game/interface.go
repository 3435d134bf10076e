package game

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/greed/internal/repositories/game Repository

import (
	"context"
)

// Repository defines the interface for game storage
type Repository interface {
	// SaveGame stores a game and its ledger
	SaveGame(ctx context.Context, input *SaveGameInput) error

	// GetGame retrieves a game by ID
	GetGame(ctx context.Context, input *GetGameInput) (*Record, error)

	// UpdateGame applies input.Update to a stored game while no other update
	// can run. The game is only stored when Update returns nil, and once Update
	// has returned nil the call does not fail.
	UpdateGame(ctx context.Context, input *UpdateGameInput) (*Record, error)

	// DeleteGame removes a game
	DeleteGame(ctx context.Context, input *DeleteGameInput) error

	// GetActiveGames retrieves all games still accepting turns
	GetActiveGames(ctx context.Context, input *GetActiveGamesInput) (*GetActiveGamesOutput, error)
}
