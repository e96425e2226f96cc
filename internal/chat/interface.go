package chat

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// SendMessage stores the user turn, asks the agent for a reply and stores it.
	// When the agent fails the user turn is removed again and ErrGenerationFailed is returned.
	SendMessage(ctx context.Context, input SendMessageInput) (SendMessageOutput, error)
	History(ctx context.Context, input HistoryInput) ([]Message, error)
}
