package ledger

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/KirkDiggler/greed/internal/models"
	"github.com/KirkDiggler/greed/internal/scoring"
)

// Ledger tracks the cumulative score of every player on a fixed roster.
//
// The roster is built once in New and never changes shape afterwards, so
// membership checks need no lock. Scores are guarded by mu.
type Ledger struct {
	mu      sync.RWMutex
	scorer  scoring.Scorer
	players map[string]*models.Player
	roster  []string
}

// New creates a ledger with every player on the roster at zero points
func New(cfg *Config) (*Ledger, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	players := make(map[string]*models.Player, len(cfg.Players))
	roster := make([]string, 0, len(cfg.Players))
	for _, name := range cfg.Players {
		if _, ok := players[name]; ok {
			continue
		}
		players[name] = &models.Player{Name: name}
		roster = append(roster, name)
	}

	if len(players) < MinPlayers {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidRoster, len(players))
	}

	scorer := cfg.Scorer
	if scorer == nil {
		scorer = scoring.Standard()
	}

	return &Ledger{
		scorer:  scorer,
		players: players,
		roster:  roster,
	}, nil
}

// RecordTurn scores a roll and adds it to the player's total
func (l *Ledger) RecordTurn(name string, roll []int) error {
	_, _, err := l.RecordTurnPoints(name, roll)
	return err
}

// RecordTurnPoints is RecordTurn that also returns the points scored and the
// player's new total. A rejected turn leaves every score untouched.
func (l *Ledger) RecordTurnPoints(name string, roll []int) (points int, total int, err error) {
	player, ok := l.players[name]
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrUnknownPlayer, name)
	}

	points, err = l.scorer.Score(roll)
	if err != nil {
		return 0, 0, err
	}
	if points < 0 {
		return 0, 0, fmt.Errorf("%w: %d", ErrNegativePoints, points)
	}

	l.mu.Lock()
	player.Score += points
	total = player.Score
	l.mu.Unlock()

	return points, total, nil
}

// Score returns the player's current total
func (l *Ledger) Score(name string) (int, error) {
	player, ok := l.players[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownPlayer, name)
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	return player.Score, nil
}

// PlayerNames returns a copy of the roster in the order players joined
func (l *Ledger) PlayerNames() []string {
	return slices.Clone(l.roster)
}

// PlayerCount returns the size of the roster
func (l *Ledger) PlayerCount() int {
	return len(l.players)
}

// IsValidPlayer reports whether name is on the roster
func (l *Ledger) IsValidPlayer(name string) bool {
	_, ok := l.players[name]
	return ok
}

// Leaderboard returns every player ordered by score descending, then name ascending
func (l *Ledger) Leaderboard() []models.Standing {
	l.mu.RLock()
	standings := make([]models.Standing, 0, len(l.players))
	for _, player := range l.players {
		standings = append(standings, models.Standing{
			Name:  player.Name,
			Score: player.Score,
		})
	}
	l.mu.RUnlock()

	slices.SortFunc(standings, compareStandings)
	for i := range standings {
		standings[i].Rank = i + 1
	}

	return standings
}

// Winners returns the names of every player tied at the highest score, sorted by name
func (l *Ledger) Winners() []string {
	standings := l.Leaderboard()

	winners := make([]string, 0, 1)
	for _, standing := range standings {
		if standing.Score != standings[0].Score {
			break
		}
		winners = append(winners, standing.Name)
	}

	return winners
}

// Reset puts every player back to zero points; the roster is unchanged
func (l *Ledger) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, player := range l.players {
		player.Score = 0
	}
}

// String renders the leaderboard as "[name (score), name (score)]"
func (l *Ledger) String() string {
	standings := l.Leaderboard()

	parts := make([]string, len(standings))
	for i, standing := range standings {
		parts[i] = standing.String()
	}

	return "[" + strings.Join(parts, ", ") + "]"
}

// compareStandings orders by score descending, then name ascending
func compareStandings(a, b models.Standing) int {
	if c := cmp.Compare(b.Score, a.Score); c != 0 {
		return c
	}
	return strings.Compare(a.Name, b.Name)
}
