package cli

import (
	"context"

	"github.com/KirkDiggler/greed/internal/models"
	"github.com/KirkDiggler/greed/internal/services/messaging"
)

// Commentary is decoration; failures are logged and the game carries on.

func (t *Table) commentOnTurn(ctx context.Context, turn *models.Turn) {
	if t.messaging == nil {
		return
	}

	output, err := t.messaging.GetRollResultMessage(ctx, &messaging.GetRollResultMessageInput{
		PlayerName: turn.PlayerName,
		Points:     turn.Points,
		Total:      turn.Total,
	})
	if err != nil {
		t.logger.Warn("Failed to get roll commentary", "player", turn.PlayerName, "error", err)
		return
	}
	t.renderCommentary(output.Message)
}

func (t *Table) commentOnRound(ctx context.Context, round int, leaderboard []models.Standing) {
	if t.messaging == nil {
		return
	}

	output, err := t.messaging.GetRoundMessage(ctx, &messaging.GetRoundMessageInput{
		Round:       round,
		Leaderboard: leaderboard,
	})
	if err != nil {
		t.logger.Warn("Failed to get round commentary", "round", round, "error", err)
		return
	}
	t.renderCommentary(output.Message)
}

func (t *Table) commentOnGameOver(ctx context.Context, winners []string, leaderboard []models.Standing) {
	if t.messaging == nil {
		return
	}

	var score int
	if len(leaderboard) > 0 {
		score = leaderboard[0].Score
	}

	output, err := t.messaging.GetGameOverMessage(ctx, &messaging.GetGameOverMessageInput{
		Winners: winners,
		Score:   score,
	})
	if err != nil {
		t.logger.Warn("Failed to get game over commentary", "error", err)
		return
	}
	t.renderCommentary(output.Message)
}
