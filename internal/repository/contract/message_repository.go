package contract

import (
	"context"

	"ai-study-tutor-be/internal/entity"
)

type MessageRepository interface {
	// Create assigns Id and CreatedAt and moves the owning conversation's
	// UpdatedAt to CreatedAt in the same step. Fails with a NotFoundError when
	// the conversation does not exist.
	Create(ctx context.Context, message *entity.Message) error
	// FindAllByConversationId returns messages oldest first. Unknown
	// conversations yield an empty slice.
	FindAllByConversationId(ctx context.Context, conversationId string) ([]*entity.Message, error)
}
