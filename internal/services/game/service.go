package game

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/KirkDiggler/greed/internal/common/clock"
	"github.com/KirkDiggler/greed/internal/common/uuid"
	"github.com/KirkDiggler/greed/internal/dice"
	"github.com/KirkDiggler/greed/internal/ledger"
	"github.com/KirkDiggler/greed/internal/models"
	gameRepo "github.com/KirkDiggler/greed/internal/repositories/game"
	"github.com/KirkDiggler/greed/internal/scoring"
	"github.com/charmbracelet/log"
)

// service implements the Service interface
type service struct {
	gameRepo      gameRepo.Repository
	diceRoller    dice.Roller
	clock         clock.Clock
	uuidGenerator uuid.UUID
	scorer        scoring.Scorer
	logger        *log.Logger
}

// New creates a new game service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.GameRepo == nil {
		return nil, ErrNilGameRepo
	}

	if cfg.DiceRoller == nil {
		return nil, ErrNilDiceRoller
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &service{
		gameRepo:      cfg.GameRepo,
		diceRoller:    cfg.DiceRoller,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
		scorer:        cfg.Scorer,
		logger:        logger,
	}, nil
}

// CreateGame starts a new game for a roster of players
func (s *service) CreateGame(ctx context.Context, input *CreateGameInput) (*CreateGameOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	scores, err := ledger.New(&ledger.Config{
		Players: input.PlayerNames,
		Scorer:  s.scorer,
	})
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	game := &models.Game{
		ID:        s.uuidGenerator.NewUUID(),
		Round:     1,
		Status:    models.GameStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = s.gameRepo.SaveGame(ctx, &gameRepo.SaveGameInput{
		Game:   game,
		Ledger: scores,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save game: %w", err)
	}

	s.logger.Info("Game created", "game_id", game.ID, "players", scores.PlayerCount())

	return &CreateGameOutput{
		Game:        game,
		PlayerNames: scores.PlayerNames(),
	}, nil
}

// RecordTurn scores dice a player rolled at the table
func (s *service) RecordTurn(ctx context.Context, input *RecordTurnInput) (*RecordTurnOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	turn, err := s.recordTurn(ctx, input.GameID, input.PlayerName, input.Dice)
	if err != nil {
		return nil, err
	}

	return &RecordTurnOutput{
		Turn: turn,
	}, nil
}

// RollTurn rolls the dice for a player and scores them
func (s *service) RollTurn(ctx context.Context, input *RollTurnInput) (*RollTurnOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	record, err := s.getActiveGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	// Don't waste a roll on someone who isn't playing
	if !record.Ledger.IsValidPlayer(input.PlayerName) {
		return nil, fmt.Errorf("%w: %q", ledger.ErrUnknownPlayer, input.PlayerName)
	}

	faces := dice.RollN(s.diceRoller, scoring.DiceCount, scoring.Sides)

	turn, err := s.recordTurn(ctx, input.GameID, input.PlayerName, faces)
	if err != nil {
		return nil, err
	}

	return &RollTurnOutput{
		Turn: turn,
	}, nil
}

// EndRound closes the current round and returns the standings
func (s *service) EndRound(ctx context.Context, input *EndRoundInput) (*EndRoundOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	var completed int
	now := s.clock.Now()
	record, err := s.updateGame(ctx, input.GameID, func(record *gameRepo.Record) error {
		if !record.Game.Status.IsActive() {
			return ErrInvalidGameState
		}
		completed = record.Game.Round
		record.Game.Round++
		record.Game.UpdatedAt = now
		return nil
	})
	if err != nil {
		return nil, err
	}

	leaderboard := record.Ledger.Leaderboard()
	s.logger.Debug("Round finished", "game_id", record.Game.ID, "round", completed, "leader", leaderboard[0].Name)

	return &EndRoundOutput{
		CompletedRound: completed,
		Round:          record.Game.Round,
		Leaderboard:    leaderboard,
	}, nil
}

// GetScore returns a single player's total
func (s *service) GetScore(ctx context.Context, input *GetScoreInput) (*GetScoreOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	record, err := s.getGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	score, err := record.Ledger.Score(input.PlayerName)
	if err != nil {
		return nil, err
	}

	return &GetScoreOutput{
		Score: score,
	}, nil
}

// GetPlayers returns the roster
func (s *service) GetPlayers(ctx context.Context, input *GetPlayersInput) (*GetPlayersOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	record, err := s.getGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	return &GetPlayersOutput{
		PlayerNames: record.Ledger.PlayerNames(),
		Count:       record.Ledger.PlayerCount(),
	}, nil
}

// GetLeaderboard returns the current standings for a game
func (s *service) GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	record, err := s.getGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	return &GetLeaderboardOutput{
		GameID:  record.Game.ID,
		Round:   record.Game.Round,
		Entries: record.Ledger.Leaderboard(),
	}, nil
}

// GetWinners returns the players tied at the top of the leaderboard
func (s *service) GetWinners(ctx context.Context, input *GetWinnersInput) (*GetWinnersOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	record, err := s.getGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	winners := record.Ledger.Winners()
	score, err := record.Ledger.Score(winners[0])
	if err != nil {
		return nil, err
	}

	return &GetWinnersOutput{
		Winners: winners,
		Score:   score,
	}, nil
}

// ResetGame puts every score back to zero and restarts at round 1.
// A completed game becomes active again.
func (s *service) ResetGame(ctx context.Context, input *ResetGameInput) (*ResetGameOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	now := s.clock.Now()
	record, err := s.updateGame(ctx, input.GameID, func(record *gameRepo.Record) error {
		record.Game.Round = 1
		record.Game.Status = models.GameStatusActive
		record.Game.UpdatedAt = now
		record.Ledger.Reset()
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Game reset", "game_id", record.Game.ID)

	return &ResetGameOutput{
		Success: true,
		Game:    record.Game,
	}, nil
}

// EndGame concludes a game and decides its winners
func (s *service) EndGame(ctx context.Context, input *EndGameInput) (*EndGameOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	now := s.clock.Now()
	record, err := s.updateGame(ctx, input.GameID, func(record *gameRepo.Record) error {
		if !record.Game.Status.IsActive() {
			return ErrInvalidGameState
		}
		record.Game.Status = models.GameStatusCompleted
		record.Game.UpdatedAt = now
		return nil
	})
	if err != nil {
		return nil, err
	}

	winners := record.Ledger.Winners()
	s.logger.Info("Game ended", "game_id", record.Game.ID, "rounds", record.Game.Round, "winners", winners)

	return &EndGameOutput{
		Game:             record.Game,
		FinalLeaderboard: record.Ledger.Leaderboard(),
		Winners:          winners,
	}, nil
}

// DeleteGame forgets a game. Completed and active games can both be deleted.
func (s *service) DeleteGame(ctx context.Context, input *DeleteGameInput) (*DeleteGameOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	err := s.gameRepo.DeleteGame(ctx, &gameRepo.DeleteGameInput{
		GameID: input.GameID,
	})
	if err != nil {
		if errors.Is(err, gameRepo.ErrGameNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to delete game: %w", err)
	}

	s.logger.Info("Game deleted", "game_id", input.GameID)

	return &DeleteGameOutput{
		Success: true,
	}, nil
}

// ListActiveGames returns the games still accepting turns
func (s *service) ListActiveGames(ctx context.Context, input *ListActiveGamesInput) (*ListActiveGamesOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	output, err := s.gameRepo.GetActiveGames(ctx, &gameRepo.GetActiveGamesInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to get active games: %w", err)
	}

	return &ListActiveGamesOutput{
		Games: output.Games,
	}, nil
}

// recordTurn applies a roll to the ledger of an active game. A completed
// game or a rejected roll leaves the game and every score untouched.
func (s *service) recordTurn(ctx context.Context, gameID, playerName string, faces []int) (*models.Turn, error) {
	var turn *models.Turn
	now := s.clock.Now()
	_, err := s.updateGame(ctx, gameID, func(record *gameRepo.Record) error {
		if !record.Game.Status.IsActive() {
			return ErrInvalidGameState
		}

		points, total, err := record.Ledger.RecordTurnPoints(playerName, faces)
		if err != nil {
			return err
		}

		record.Game.UpdatedAt = now
		turn = &models.Turn{
			GameID:     record.Game.ID,
			PlayerName: playerName,
			Round:      record.Game.Round,
			Dice:       slices.Clone(faces),
			Points:     points,
			Total:      total,
			Timestamp:  now,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debug("Turn recorded", "game_id", gameID, "player", playerName, "dice", turn.Dice, "points", turn.Points, "total", turn.Total)

	return turn, nil
}

// updateGame runs update under the repository's lock. Errors from update are
// returned as they are.
func (s *service) updateGame(ctx context.Context, gameID string, update func(*gameRepo.Record) error) (*gameRepo.Record, error) {
	var rejected error
	record, err := s.gameRepo.UpdateGame(ctx, &gameRepo.UpdateGameInput{
		GameID: gameID,
		Update: func(record *gameRepo.Record) error {
			rejected = update(record)
			return rejected
		},
	})
	if err != nil {
		if rejected != nil {
			return nil, rejected
		}
		if errors.Is(err, gameRepo.ErrGameNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	return record, nil
}

// getGame loads a game, translating the repository's not-found error
func (s *service) getGame(ctx context.Context, gameID string) (*gameRepo.Record, error) {
	record, err := s.gameRepo.GetGame(ctx, &gameRepo.GetGameInput{
		GameID: gameID,
	})
	if err != nil {
		if errors.Is(err, gameRepo.ErrGameNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return record, nil
}

// getActiveGame loads a game that is still accepting turns
func (s *service) getActiveGame(ctx context.Context, gameID string) (*gameRepo.Record, error) {
	record, err := s.getGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if !record.Game.Status.IsActive() {
		return nil, ErrInvalidGameState
	}

	return record, nil
}
