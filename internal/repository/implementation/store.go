package implementation

import (
	"ai-study-tutor-be/internal/model"
	"ai-study-tutor-be/internal/pkg/clock"
	"ai-study-tutor-be/internal/repository/contract"
	"ai-study-tutor-be/internal/repository/specification"
	"ai-study-tutor-be/pkg/database"

	"gorm.io/gorm"
)

const Driver = "sqlite"

// Store is the GORM-backed storage. Multi-row writes run in a transaction.
type Store struct {
	db    *gorm.DB
	clock *clock.Monotonic

	users         contract.UserRepository
	conversations contract.ConversationRepository
	messages      contract.MessageRepository
}

var _ contract.Store = (*Store)(nil)

// NewInMemoryStore opens a private in-memory SQLite database and migrates it.
func NewInMemoryStore(verbose bool) (*Store, error) {
	db, err := database.NewSQLiteDB(database.InMemoryDSN, verbose, model.All()...)
	if err != nil {
		return nil, err
	}
	return NewStore(db, clock.New()), nil
}

func NewStore(db *gorm.DB, c *clock.Monotonic) *Store {
	return &Store{
		db:            db,
		clock:         c,
		users:         NewUserRepository(db, c),
		conversations: NewConversationRepository(db, c),
		messages:      NewMessageRepository(db, c),
	}
}

func (s *Store) UserRepository() contract.UserRepository {
	return s.users
}

func (s *Store) ConversationRepository() contract.ConversationRepository {
	return s.conversations
}

func (s *Store) MessageRepository() contract.MessageRepository {
	return s.messages
}

func (s *Store) Driver() string {
	return Driver
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}
