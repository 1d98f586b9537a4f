package memory

import (
	"context"

	"ai-study-tutor-be/internal/entity"
	"ai-study-tutor-be/internal/pkg/apperror"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

type messageRepository struct {
	store *Store
}

func (r *messageRepository) Create(ctx context.Context, message *entity.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	x, found := s.conversations.Get(message.ConversationId)
	if !found {
		return apperror.NotFound("conversation not found")
	}

	message.Id = uuid.NewString()
	message.CreatedAt = s.clock.Now()

	stored := cloneMessage(message)
	s.messages.Set(stored.Id, stored, cache.NoExpiration)
	s.messageIdsByThread[stored.ConversationId] = append(s.messageIdsByThread[stored.ConversationId], stored.Id)

	conversation := *x.(*entity.Conversation)
	conversation.UpdatedAt = stored.CreatedAt
	s.conversations.Set(conversation.Id, &conversation, cache.NoExpiration)
	return nil
}

func (r *messageRepository) FindAllByConversationId(ctx context.Context, conversationId string) ([]*entity.Message, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	// Ids are appended under mu with increasing CreatedAt, so this order is
	// already oldest first.
	ids := r.store.messageIdsByThread[conversationId]
	result := make([]*entity.Message, 0, len(ids))
	for _, id := range ids {
		x, found := r.store.messages.Get(id)
		if !found {
			continue
		}
		result = append(result, cloneMessage(x.(*entity.Message)))
	}
	return result, nil
}

func cloneMessage(m *entity.Message) *entity.Message {
	c := *m
	if m.ImageUrl != nil {
		url := *m.ImageUrl
		c.ImageUrl = &url
	}
	return &c
}
