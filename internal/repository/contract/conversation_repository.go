package contract

import (
	"context"

	"ai-study-tutor-be/internal/entity"
)

type ConversationRepository interface {
	// Create assigns Id and sets CreatedAt and UpdatedAt to the same instant.
	Create(ctx context.Context, conversation *entity.Conversation) error
	FindById(ctx context.Context, id string) (*entity.Conversation, error)
	// FindAllByUserId returns the user's conversations, most recently updated first.
	FindAllByUserId(ctx context.Context, userId string) ([]*entity.Conversation, error)
}
