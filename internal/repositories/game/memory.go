package game

import (
	"context"
	"errors"
	"slices"
	"strings"
	"sync"

	"github.com/KirkDiggler/greed/internal/ledger"
	"github.com/KirkDiggler/greed/internal/models"
)

// ErrGameNotFound is returned when a game is not found
var ErrGameNotFound = errors.New("game not found")

// Config holds configuration for the in-memory game repository
type Config struct {
	// Capacity preallocates room for this many games
	Capacity int
}

type entry struct {
	game   models.Game
	ledger *ledger.Ledger
}

// memoryRepository implements the Repository interface with a map.
// Games are copied on the way in and out; ledgers are shared.
type memoryRepository struct {
	mu    sync.RWMutex
	games map[string]*entry
}

// NewMemory creates a new in-memory game repository
func NewMemory(cfg *Config) (*memoryRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	return &memoryRepository{
		games: make(map[string]*entry, cfg.Capacity),
	}, nil
}

// SaveGame stores a game, replacing any game with the same ID
func (r *memoryRepository) SaveGame(ctx context.Context, input *SaveGameInput) error {
	if input == nil || input.Game == nil {
		return errors.New("input and game cannot be nil")
	}

	if input.Game.ID == "" {
		return errors.New("game ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.games[input.Game.ID]
	scores := input.Ledger
	if scores == nil {
		if !ok {
			return errors.New("ledger cannot be nil for a new game")
		}
		scores = existing.ledger
	}

	r.games[input.Game.ID] = &entry{
		game:   *input.Game,
		ledger: scores,
	}

	return nil
}

// GetGame retrieves a game by ID
func (r *memoryRepository) GetGame(ctx context.Context, input *GetGameInput) (*Record, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.games[input.GameID]
	if !ok {
		return nil, ErrGameNotFound
	}

	game := e.game
	return &Record{
		Game:   &game,
		Ledger: e.ledger,
	}, nil
}

// UpdateGame runs input.Update on a copy of the game under the write lock
// and stores the copy if Update succeeds. The game ID cannot be changed.
func (r *memoryRepository) UpdateGame(ctx context.Context, input *UpdateGameInput) (*Record, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	if input.Update == nil {
		return nil, errors.New("update cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.games[input.GameID]
	if !ok {
		return nil, ErrGameNotFound
	}

	game := e.game
	if err := input.Update(&Record{Game: &game, Ledger: e.ledger}); err != nil {
		return nil, err
	}
	game.ID = e.game.ID
	e.game = game

	stored := game
	return &Record{
		Game:   &stored,
		Ledger: e.ledger,
	}, nil
}

// DeleteGame removes a game
func (r *memoryRepository) DeleteGame(ctx context.Context, input *DeleteGameInput) error {
	if input == nil || input.GameID == "" {
		return errors.New("input and game ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.games[input.GameID]; !ok {
		return ErrGameNotFound
	}
	delete(r.games, input.GameID)

	return nil
}

// GetActiveGames retrieves all active games, oldest first
func (r *memoryRepository) GetActiveGames(ctx context.Context, input *GetActiveGamesInput) (*GetActiveGamesOutput, error) {
	r.mu.RLock()
	games := make([]*models.Game, 0, len(r.games))
	for _, e := range r.games {
		if !e.game.Status.IsActive() {
			continue
		}
		game := e.game
		games = append(games, &game)
	}
	r.mu.RUnlock()

	slices.SortFunc(games, func(a, b *models.Game) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})

	return &GetActiveGamesOutput{
		Games: games,
	}, nil
}
