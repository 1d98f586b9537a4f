// Package repotest is the behavioural suite every storage backend must pass.
package repotest

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"ai-study-tutor-be/internal/entity"
	"ai-study-tutor-be/internal/pkg/apperror"
	"ai-study-tutor-be/internal/repository/contract"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Run executes the suite; newStore must return an empty store on each call.
func Run(t *testing.T, newStore func(t *testing.T) contract.Store) {
	tests := []struct {
		name string
		fn   func(t *testing.T, s contract.Store)
	}{
		{"users create and lookup", testUsers},
		{"duplicate username rejected", testDuplicateUsername},
		{"conversation ids unique and timestamps equal", testConversationCreate},
		{"messages listed in submission order", testMessageOrder},
		{"conversations listed most recently active first", testConversationOrder},
		{"message listing is idempotent", testListIdempotent},
		{"message on unknown conversation is not found", testMessageUnknownConversation},
		{"unknown ids yield empty results", testAbsent},
		{"returned records are copies", testCopies},
		{"concurrent sends are serialized", testConcurrentMessages},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newStore(t)
			t.Cleanup(func() { _ = s.Close() })
			tt.fn(t, s)
		})
	}
}

func createConversation(t *testing.T, s contract.Store, userId, title string) *entity.Conversation {
	t.Helper()
	c := &entity.Conversation{UserId: userId, Title: title}
	require.NoError(t, s.ConversationRepository().Create(context.Background(), c))
	return c
}

func createMessage(t *testing.T, s contract.Store, conversationId, content string, isUser bool) *entity.Message {
	t.Helper()
	m := &entity.Message{ConversationId: conversationId, Content: content, IsUser: isUser}
	require.NoError(t, s.MessageRepository().Create(context.Background(), m))
	return m
}

func testUsers(t *testing.T, s contract.Store) {
	ctx := context.Background()
	u := &entity.User{Username: "ada", PasswordHash: "hash"}
	require.NoError(t, s.UserRepository().Create(ctx, u))
	assert.NotEmpty(t, u.Id)
	assert.False(t, u.CreatedAt.IsZero())

	byId, err := s.UserRepository().FindById(ctx, u.Id)
	require.NoError(t, err)
	require.NotNil(t, byId)
	assert.Equal(t, "ada", byId.Username)

	byName, err := s.UserRepository().FindByUsername(ctx, "ada")
	require.NoError(t, err)
	require.NotNil(t, byName)
	assert.Equal(t, u.Id, byName.Id)
}

func testDuplicateUsername(t *testing.T, s contract.Store) {
	ctx := context.Background()
	require.NoError(t, s.UserRepository().Create(ctx, &entity.User{Username: "ada", PasswordHash: "a"}))

	err := s.UserRepository().Create(ctx, &entity.User{Username: "ada", PasswordHash: "b"})
	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.KindValidation))
}

func testConversationCreate(t *testing.T, s contract.Store) {
	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		c := createConversation(t, s, "u1", fmt.Sprintf("Topic %d", i))
		assert.NotEmpty(t, c.Id)
		assert.False(t, seen[c.Id], "duplicate id %s", c.Id)
		seen[c.Id] = true
		assert.True(t, c.CreatedAt.Equal(c.UpdatedAt))

		stored, err := s.ConversationRepository().FindById(context.Background(), c.Id)
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.True(t, stored.CreatedAt.Equal(stored.UpdatedAt))
		assert.Equal(t, "u1", stored.UserId)
	}
}

func testMessageOrder(t *testing.T, s contract.Store) {
	c := createConversation(t, s, "u1", "Algebra")

	want := make([]string, 0, 10)
	for i := 0; i < 10; i++ {
		m := createMessage(t, s, c.Id, fmt.Sprintf("turn %d", i), i%2 == 0)
		want = append(want, m.Id)
	}

	got, err := s.MessageRepository().FindAllByConversationId(context.Background(), c.Id)
	require.NoError(t, err)
	require.Len(t, got, len(want))
	for i, m := range got {
		assert.Equal(t, want[i], m.Id)
		assert.Equal(t, fmt.Sprintf("turn %d", i), m.Content)
		if i > 0 {
			assert.True(t, m.CreatedAt.After(got[i-1].CreatedAt))
		}
	}

	stored, err := s.ConversationRepository().FindById(context.Background(), c.Id)
	require.NoError(t, err)
	assert.True(t, stored.UpdatedAt.Equal(got[len(got)-1].CreatedAt))
}

func testConversationOrder(t *testing.T, s contract.Store) {
	first := createConversation(t, s, "u1", "First")
	second := createConversation(t, s, "u1", "Second")
	createConversation(t, s, "u2", "Someone else")

	list, err := s.ConversationRepository().FindAllByUserId(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.Id, list[0].Id)
	assert.Equal(t, first.Id, list[1].Id)

	createMessage(t, s, first.Id, "bump", true)

	list, err = s.ConversationRepository().FindAllByUserId(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, first.Id, list[0].Id)
	assert.Equal(t, second.Id, list[1].Id)
}

func testListIdempotent(t *testing.T, s contract.Store) {
	c := createConversation(t, s, "u1", "Physics")
	createMessage(t, s, c.Id, "What is momentum?", true)
	createMessage(t, s, c.Id, "Momentum is $p = mv$.", false)

	a, err := s.MessageRepository().FindAllByConversationId(context.Background(), c.Id)
	require.NoError(t, err)
	b, err := s.MessageRepository().FindAllByConversationId(context.Background(), c.Id)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func testMessageUnknownConversation(t *testing.T, s contract.Store) {
	err := s.MessageRepository().Create(context.Background(), &entity.Message{ConversationId: "missing", Content: "hi", IsUser: true})
	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.KindNotFound))

	list, err := s.MessageRepository().FindAllByConversationId(context.Background(), "missing")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func testAbsent(t *testing.T, s contract.Store) {
	ctx := context.Background()

	u, err := s.UserRepository().FindById(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, u)

	u, err = s.UserRepository().FindByUsername(ctx, "nobody")
	require.NoError(t, err)
	assert.Nil(t, u)

	c, err := s.ConversationRepository().FindById(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, c)

	list, err := s.ConversationRepository().FindAllByUserId(ctx, "nobody")
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func testCopies(t *testing.T, s contract.Store) {
	ctx := context.Background()
	c := createConversation(t, s, "u1", "Original")
	url := "/api/uploads/a.png"
	m := &entity.Message{ConversationId: c.Id, Content: "look", IsUser: true, ImageUrl: &url}
	require.NoError(t, s.MessageRepository().Create(ctx, m))

	fetched, err := s.ConversationRepository().FindById(ctx, c.Id)
	require.NoError(t, err)
	fetched.Title = "Changed"

	msgs, err := s.MessageRepository().FindAllByConversationId(ctx, c.Id)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	require.NotNil(t, msgs[0].ImageUrl)
	assert.Equal(t, url, *msgs[0].ImageUrl)
	*msgs[0].ImageUrl = "/tampered"

	again, err := s.ConversationRepository().FindById(ctx, c.Id)
	require.NoError(t, err)
	assert.Equal(t, "Original", again.Title)

	msgs, err = s.MessageRepository().FindAllByConversationId(ctx, c.Id)
	require.NoError(t, err)
	assert.Equal(t, url, *msgs[0].ImageUrl)
}

func testConcurrentMessages(t *testing.T, s contract.Store) {
	c := createConversation(t, s, "u1", "Race")
	const n = 40

	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs <- s.MessageRepository().Create(context.Background(), &entity.Message{
				ConversationId: c.Id,
				Content:        fmt.Sprintf("msg %d", i),
				IsUser:         true,
			})
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	msgs, err := s.MessageRepository().FindAllByConversationId(context.Background(), c.Id)
	require.NoError(t, err)
	require.Len(t, msgs, n)
	for i := 1; i < len(msgs); i++ {
		assert.True(t, msgs[i].CreatedAt.After(msgs[i-1].CreatedAt))
	}

	stored, err := s.ConversationRepository().FindById(context.Background(), c.Id)
	require.NoError(t, err)
	assert.True(t, stored.UpdatedAt.Equal(msgs[n-1].CreatedAt))
}
