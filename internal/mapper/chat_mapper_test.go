package mapper

import (
	"testing"
	"time"

	"ai-study-tutor-be/internal/entity"

	"github.com/stretchr/testify/assert"
)

func TestMessageRoundTripKeepsNilImage(t *testing.T) {
	m := NewChatMapper()
	created := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	msg := &entity.Message{Id: "m1", ConversationId: "c1", Content: "hi", IsUser: true, CreatedAt: created}

	back := m.MessageToEntity(m.MessageToModel(msg))

	assert.Equal(t, msg, back)
	assert.Nil(t, back.ImageUrl)
}

func TestConversationToEntityNormalisesToUTC(t *testing.T) {
	m := NewChatMapper()
	loc := time.FixedZone("WIB", 7*60*60)
	local := time.Date(2024, 3, 1, 17, 0, 0, 0, loc)

	c := &entity.Conversation{Id: "c1", UserId: "u1", Title: "Algebra", CreatedAt: local, UpdatedAt: local}
	back := m.ConversationToEntity(m.ConversationToModel(c))

	assert.Equal(t, time.UTC, back.CreatedAt.Location())
	assert.True(t, back.CreatedAt.Equal(local))
	assert.Nil(t, m.ConversationToEntity(nil))
}
