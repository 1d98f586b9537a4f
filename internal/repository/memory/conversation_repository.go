package memory

import (
	"context"
	"sort"

	"ai-study-tutor-be/internal/entity"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

type conversationRepository struct {
	store *Store
}

func (r *conversationRepository) Create(ctx context.Context, conversation *entity.Conversation) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	conversation.Id = uuid.NewString()
	conversation.CreatedAt = now
	conversation.UpdatedAt = now

	stored := *conversation
	s.conversations.Set(stored.Id, &stored, cache.NoExpiration)
	s.conversationIdsByUser[stored.UserId] = append(s.conversationIdsByUser[stored.UserId], stored.Id)
	return nil
}

func (r *conversationRepository) FindById(ctx context.Context, id string) (*entity.Conversation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.store.conversation(id), nil
}

func (r *conversationRepository) FindAllByUserId(ctx context.Context, userId string) ([]*entity.Conversation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	ids := r.store.conversationIdsByUser[userId]
	result := make([]*entity.Conversation, 0, len(ids))
	for _, id := range ids {
		if c := r.store.conversation(id); c != nil {
			result = append(result, c)
		}
	}
	r.store.mu.RUnlock()

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].UpdatedAt.After(result[j].UpdatedAt)
	})
	return result, nil
}

// conversation returns a copy of the stored record. Callers hold mu.
func (s *Store) conversation(id string) *entity.Conversation {
	x, found := s.conversations.Get(id)
	if !found {
		return nil
	}
	c := *x.(*entity.Conversation)
	return &c
}
