package game

import "context"

// Service defines the interface for game operations
type Service interface {
	// CreateGame starts a new game for a roster of players
	CreateGame(ctx context.Context, input *CreateGameInput) (*CreateGameOutput, error)

	// RecordTurn scores dice a player rolled at the table
	RecordTurn(ctx context.Context, input *RecordTurnInput) (*RecordTurnOutput, error)

	// RollTurn rolls the dice for a player and scores them
	RollTurn(ctx context.Context, input *RollTurnInput) (*RollTurnOutput, error)

	// EndRound closes the current round and returns the standings
	EndRound(ctx context.Context, input *EndRoundInput) (*EndRoundOutput, error)

	// GetScore returns a single player's total
	GetScore(ctx context.Context, input *GetScoreInput) (*GetScoreOutput, error)

	// GetPlayers returns the roster
	GetPlayers(ctx context.Context, input *GetPlayersInput) (*GetPlayersOutput, error)

	// GetLeaderboard returns the current standings for a game
	GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error)

	// GetWinners returns the players tied at the top of the leaderboard
	GetWinners(ctx context.Context, input *GetWinnersInput) (*GetWinnersOutput, error)

	// ResetGame puts every score back to zero and restarts at round 1
	ResetGame(ctx context.Context, input *ResetGameInput) (*ResetGameOutput, error)

	// EndGame concludes a game and decides its winners
	EndGame(ctx context.Context, input *EndGameInput) (*EndGameOutput, error)

	// DeleteGame forgets a game
	DeleteGame(ctx context.Context, input *DeleteGameInput) (*DeleteGameOutput, error)

	// ListActiveGames returns the games still accepting turns, oldest first
	ListActiveGames(ctx context.Context, input *ListActiveGamesInput) (*ListActiveGamesOutput, error)
}
