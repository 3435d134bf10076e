package messaging

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/greed/internal/services/messaging Service

// Service is the interface for the table commentary
type Service interface {
	// GetRollResultMessage returns a line reacting to a scored roll
	GetRollResultMessage(ctx context.Context, input *GetRollResultMessageInput) (*GetRollResultMessageOutput, error)

	// GetRoundMessage returns a line about the standings after a round
	GetRoundMessage(ctx context.Context, input *GetRoundMessageInput) (*GetRoundMessageOutput, error)

	// GetGameOverMessage returns a line congratulating the winners
	GetGameOverMessage(ctx context.Context, input *GetGameOverMessageInput) (*GetGameOverMessageOutput, error)
}
