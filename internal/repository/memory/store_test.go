package memory

import (
	"context"
	"testing"

	"ai-study-tutor-be/internal/entity"
	"ai-study-tutor-be/internal/repository/contract"
	"ai-study-tutor-be/internal/repository/repotest"

	"github.com/stretchr/testify/assert"
)

func TestStoreContract(t *testing.T) {
	repotest.Run(t, func(t *testing.T) contract.Store {
		return NewStore()
	})
}

func TestCancelledContext(t *testing.T) {
	s := NewStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.ConversationRepository().Create(ctx, &entity.Conversation{UserId: "u1"})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, Driver, s.Driver())
}
