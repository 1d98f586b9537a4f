package implementation

import (
	"context"
	"errors"

	"ai-study-tutor-be/internal/entity"
	"ai-study-tutor-be/internal/mapper"
	"ai-study-tutor-be/internal/model"
	"ai-study-tutor-be/internal/pkg/clock"
	"ai-study-tutor-be/internal/repository/contract"
	"ai-study-tutor-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ConversationRepositoryImpl struct {
	db     *gorm.DB
	clock  *clock.Monotonic
	mapper *mapper.ChatMapper
}

func NewConversationRepository(db *gorm.DB, c *clock.Monotonic) contract.ConversationRepository {
	return &ConversationRepositoryImpl{
		db:     db,
		clock:  c,
		mapper: mapper.NewChatMapper(),
	}
}

func (r *ConversationRepositoryImpl) Create(ctx context.Context, conversation *entity.Conversation) error {
	m := r.mapper.ConversationToModel(conversation)
	now := r.clock.Now()
	m.Id = uuid.NewString()
	m.CreatedAt = now
	m.UpdatedAt = now

	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*conversation = *r.mapper.ConversationToEntity(m)
	return nil
}

func (r *ConversationRepositoryImpl) FindById(ctx context.Context, id string) (*entity.Conversation, error) {
	var m model.Conversation
	query := specification.ByID{ID: id}.Apply(r.db.WithContext(ctx))
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ConversationToEntity(&m), nil
}

func (r *ConversationRepositoryImpl) FindAllByUserId(ctx context.Context, userId string) ([]*entity.Conversation, error) {
	var models []*model.Conversation
	query := applySpecifications(r.db.WithContext(ctx),
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "updated_at", Desc: true},
	)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ConversationsToEntities(models), nil
}
