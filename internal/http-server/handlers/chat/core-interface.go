package chat

import (
	"context"

	"AtsAssistant/entity"
)

type Core interface {
	SendMessage(ctx context.Context, sessionID, text string) (*entity.ChatReply, error)
	History(ctx context.Context, sessionID string, limit, offset int) ([]entity.ChatMessage, error)
	ResetConversation(ctx context.Context, sessionID string) entity.ChatMessage
	ClearCache(ctx context.Context, sessionID string) entity.ChatMessage
}
