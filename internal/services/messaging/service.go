package messaging

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/KirkDiggler/greed/internal/dice"
)

var (
	ErrNilConfig = errors.New("config cannot be nil")
	ErrNilRoller = errors.New("roller cannot be nil")
	ErrNilInput  = errors.New("input cannot be nil")
)

// service implements the Service interface
type service struct {
	roller dice.Roller
}

// New creates a new messaging service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Roller == nil {
		return nil, ErrNilRoller
	}

	return &service{
		roller: cfg.Roller,
	}, nil
}

// GetRollResultMessage returns a line reacting to a scored roll
func (s *service) GetRollResultMessage(ctx context.Context, input *GetRollResultMessageInput) (*GetRollResultMessageOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	quality := ClassifyRoll(input.Points)

	var messages []string
	switch quality {
	case RollQualityBust:
		messages = []string{
			fmt.Sprintf("Not a single scoring die. Tough luck, %s.", input.PlayerName),
			"Nothing! The dice giveth and the dice taketh away.",
			fmt.Sprintf("%s stays at %d. Maybe blow on them next time?", input.PlayerName, input.Total),
		}
	case RollQualityModest:
		messages = []string{
			"Every point counts.",
			fmt.Sprintf("A little something for %s.", input.PlayerName),
			"Small steps. Greed is a long game.",
		}
	case RollQualityStrong:
		messages = []string{
			fmt.Sprintf("Now we're talking, %s!", input.PlayerName),
			"That's a triple's worth right there.",
			fmt.Sprintf("%s climbs to %d.", input.PlayerName, input.Total),
		}
	case RollQualityJackpot:
		messages = []string{
			fmt.Sprintf("JACKPOT! %s is on fire!", input.PlayerName),
			"Three ones! The table goes quiet.",
			fmt.Sprintf("A thousand points in one throw. Watch out for %s.", input.PlayerName),
		}
	}

	return &GetRollResultMessageOutput{
		Quality: quality,
		Message: s.pick(messages),
	}, nil
}

// GetRoundMessage returns a line about the standings after a round
func (s *service) GetRoundMessage(ctx context.Context, input *GetRoundMessageInput) (*GetRoundMessageOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if len(input.Leaderboard) == 0 {
		return &GetRoundMessageOutput{
			Message: fmt.Sprintf("Round %d is in the books.", input.Round),
		}, nil
	}

	leader := input.Leaderboard[0]

	var messages []string
	switch {
	case leader.Score == 0:
		messages = []string{
			"Nobody has scored yet. Anyone's game!",
			fmt.Sprintf("%d round(s) and the board is still empty.", input.Round),
		}
	case len(input.Leaderboard) > 1 && input.Leaderboard[1].Score == leader.Score:
		messages = []string{
			fmt.Sprintf("Dead heat at the top on %d points!", leader.Score),
			"It's neck and neck. Somebody break the tie!",
		}
	default:
		lead := leader.Score
		if len(input.Leaderboard) > 1 {
			lead -= input.Leaderboard[1].Score
		}
		messages = []string{
			fmt.Sprintf("%s leads by %d after round %d.", leader.Name, lead, input.Round),
			fmt.Sprintf("Everyone is chasing %s now.", leader.Name),
		}
	}

	return &GetRoundMessageOutput{
		Message: s.pick(messages),
	}, nil
}

// GetGameOverMessage returns a line congratulating the winners
func (s *service) GetGameOverMessage(ctx context.Context, input *GetGameOverMessageInput) (*GetGameOverMessageOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	var messages []string
	switch len(input.Winners) {
	case 0:
		messages = []string{"Nobody played. Nobody wins."}
	case 1:
		messages = []string{
			fmt.Sprintf("Congratulations %s, greed is good! (%d points)", input.Winners[0], input.Score),
			fmt.Sprintf("%s takes it with %d points.", input.Winners[0], input.Score),
		}
	default:
		names := strings.Join(input.Winners, " and ")
		messages = []string{
			fmt.Sprintf("A %d-way tie at %d points! Glory is shared by %s.", len(input.Winners), input.Score, names),
			fmt.Sprintf("%s split the spoils on %d points.", names, input.Score),
		}
	}

	return &GetGameOverMessageOutput{
		Message: s.pick(messages),
	}, nil
}

// pick chooses a line with the roller so a seeded game reads the same every time
func (s *service) pick(messages []string) string {
	if len(messages) == 1 {
		return messages[0]
	}
	face := s.roller.Roll(len(messages))
	if face < 1 || face > len(messages) {
		face = 1
	}
	return messages[face-1]
}
