package messaging

import (
	"github.com/KirkDiggler/greed/internal/dice"
	"github.com/KirkDiggler/greed/internal/models"
)

// RollQuality buckets a roll by how many points it earned
type RollQuality string

const (
	// RollQualityBust scored nothing
	RollQualityBust RollQuality = "bust"

	// RollQualityModest scored less than a triple would
	RollQualityModest RollQuality = "modest"

	// RollQualityStrong scored a few hundred
	RollQualityStrong RollQuality = "strong"

	// RollQualityJackpot scored a thousand or more
	RollQualityJackpot RollQuality = "jackpot"
)

// Point thresholds for RollQuality
const (
	StrongPoints  = 200
	JackpotPoints = 1000
)

// ClassifyRoll returns the quality of a roll worth points
func ClassifyRoll(points int) RollQuality {
	switch {
	case points <= 0:
		return RollQualityBust
	case points >= JackpotPoints:
		return RollQualityJackpot
	case points >= StrongPoints:
		return RollQualityStrong
	default:
		return RollQualityModest
	}
}

// Config holds the configuration for the messaging service
type Config struct {
	// Roller picks between equivalent lines
	Roller dice.Roller
}

// GetRollResultMessageInput contains the input for GetRollResultMessage
type GetRollResultMessageInput struct {
	PlayerName string
	Points     int
	Total      int
}

// GetRollResultMessageOutput contains the output for GetRollResultMessage
type GetRollResultMessageOutput struct {
	Quality RollQuality
	Message string
}

// GetRoundMessageInput contains the input for GetRoundMessage
type GetRoundMessageInput struct {
	Round       int
	Leaderboard []models.Standing
}

// GetRoundMessageOutput contains the output for GetRoundMessage
type GetRoundMessageOutput struct {
	Message string
}

// GetGameOverMessageInput contains the input for GetGameOverMessage
type GetGameOverMessageInput struct {
	Winners []string
	Score   int
}

// GetGameOverMessageOutput contains the output for GetGameOverMessage
type GetGameOverMessageOutput struct {
	Message string
}
