package implementation

import (
	"context"
	"errors"

	"ai-study-tutor-be/internal/entity"
	"ai-study-tutor-be/internal/mapper"
	"ai-study-tutor-be/internal/model"
	"ai-study-tutor-be/internal/pkg/apperror"
	"ai-study-tutor-be/internal/pkg/clock"
	"ai-study-tutor-be/internal/repository/contract"
	"ai-study-tutor-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MessageRepositoryImpl struct {
	db     *gorm.DB
	clock  *clock.Monotonic
	mapper *mapper.ChatMapper
}

func NewMessageRepository(db *gorm.DB, c *clock.Monotonic) contract.MessageRepository {
	return &MessageRepositoryImpl{
		db:     db,
		clock:  c,
		mapper: mapper.NewChatMapper(),
	}
}

func (r *MessageRepositoryImpl) Create(ctx context.Context, message *entity.Message) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var conversation model.Conversation
		if err := (specification.ByID{ID: message.ConversationId}).Apply(tx).First(&conversation).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.NotFound("conversation not found")
			}
			return err
		}

		m := r.mapper.MessageToModel(message)
		m.Id = uuid.NewString()
		m.CreatedAt = r.clock.Now()
		if err := tx.Create(m).Error; err != nil {
			return err
		}

		// UpdateColumn skips hooks and auto timestamps.
		if err := tx.Model(&conversation).UpdateColumn("updated_at", m.CreatedAt).Error; err != nil {
			return err
		}

		*message = *r.mapper.MessageToEntity(m)
		return nil
	})
}

func (r *MessageRepositoryImpl) FindAllByConversationId(ctx context.Context, conversationId string) ([]*entity.Message, error) {
	var models []*model.Message
	query := applySpecifications(r.db.WithContext(ctx),
		specification.ByConversationID{ConversationID: conversationId},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.MessagesToEntities(models), nil
}
