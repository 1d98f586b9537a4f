package service

import (
	"context"
	"errors"
	"testing"

	"ai-study-tutor-be/internal/dto"
	"ai-study-tutor-be/internal/entity"
	"ai-study-tutor-be/internal/repository/memory"
	"ai-study-tutor-be/pkg/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConversationCreate(t *testing.T) {
	tests := []struct {
		name      string
		title     string
		wantTitle string
	}{
		{name: "keeps title", title: "Algebra", wantTitle: "Algebra"},
		{name: "trims title", title: "  Calculus  ", wantTitle: "Calculus"},
		{name: "empty becomes untitled", title: "", wantTitle: entity.DefaultConversationTitle},
		{name: "blank becomes untitled", title: "   ", wantTitle: entity.DefaultConversationTitle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			publisher := &fakePublisher{}
			svc := NewConversationService(memory.NewStore(), publisher, &recordingLogger{})

			res, err := svc.Create(context.Background(), &dto.CreateConversationRequest{UserId: "demo-user", Title: tt.title})
			require.NoError(t, err)
			assert.NotEmpty(t, res.Id)
			assert.Equal(t, tt.wantTitle, res.Title)
			assert.Equal(t, "demo-user", res.UserId)
			assert.True(t, res.CreatedAt.Equal(res.UpdatedAt))
			assert.Equal(t, []string{events.TypeConversationCreated}, publisher.types())
		})
	}
}

func TestConversationCreateSurvivesBusFailure(t *testing.T) {
	log := &recordingLogger{}
	svc := NewConversationService(memory.NewStore(), &fakePublisher{err: errors.New("bus closed")}, log)

	_, err := svc.Create(context.Background(), &dto.CreateConversationRequest{UserId: "u1", Title: "T"})
	require.NoError(t, err)

	entries := log.snapshot()
	require.Len(t, entries, 1)
	assert.Equal(t, "warn", entries[0].Level)
}

func TestConversationListings(t *testing.T) {
	store := memory.NewStore()
	svc := NewConversationService(store, nil, &recordingLogger{})
	ctx := context.Background()

	first, err := svc.Create(ctx, &dto.CreateConversationRequest{UserId: "demo-user", Title: "First"})
	require.NoError(t, err)
	second, err := svc.Create(ctx, &dto.CreateConversationRequest{UserId: "demo-user", Title: "Second"})
	require.NoError(t, err)

	list, err := svc.ListByUser(ctx, "demo-user")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.Id, list[0].Id)
	assert.Equal(t, first.Id, list[1].Id)

	empty, err := svc.ListByUser(ctx, "nobody")
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	require.NoError(t, store.MessageRepository().Create(ctx, &entity.Message{ConversationId: first.Id, Content: "hi", IsUser: true}))
	msgs, err := svc.ListMessages(ctx, first.Id)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "hi", msgs[0].Content)

	none, err := svc.ListMessages(ctx, "missing")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}
