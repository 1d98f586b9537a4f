package memory

import (
	"sync"

	"ai-study-tutor-be/internal/pkg/clock"
	"ai-study-tutor-be/internal/repository/contract"

	"github.com/patrickmn/go-cache"
)

const Driver = "memory"

// Store keeps every entity in process memory. The go-cache tables never
// expire; mu serializes writes that touch more than one table so a message
// insert and its conversation's UpdatedAt bump happen as one step.
type Store struct {
	mu    sync.RWMutex
	clock *clock.Monotonic

	users         *cache.Cache
	conversations *cache.Cache
	messages      *cache.Cache

	userIdByUsername      map[string]string
	conversationIdsByUser map[string][]string
	messageIdsByThread    map[string][]string
}

var _ contract.Store = (*Store)(nil)

func NewStore() *Store {
	return NewStoreWithClock(clock.New())
}

func NewStoreWithClock(c *clock.Monotonic) *Store {
	return &Store{
		clock:                 c,
		users:                 cache.New(cache.NoExpiration, 0),
		conversations:         cache.New(cache.NoExpiration, 0),
		messages:              cache.New(cache.NoExpiration, 0),
		userIdByUsername:      make(map[string]string),
		conversationIdsByUser: make(map[string][]string),
		messageIdsByThread:    make(map[string][]string),
	}
}

func (s *Store) UserRepository() contract.UserRepository {
	return &userRepository{store: s}
}

func (s *Store) ConversationRepository() contract.ConversationRepository {
	return &conversationRepository{store: s}
}

func (s *Store) MessageRepository() contract.MessageRepository {
	return &messageRepository{store: s}
}

func (s *Store) Driver() string {
	return Driver
}

func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users.Flush()
	s.conversations.Flush()
	s.messages.Flush()
	return nil
}
