package contract

// Store groups the repositories of one storage backend.
type Store interface {
	UserRepository() UserRepository
	ConversationRepository() ConversationRepository
	MessageRepository() MessageRepository
	Driver() string
	Close() error
}
