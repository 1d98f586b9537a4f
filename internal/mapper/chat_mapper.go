package mapper

import (
	"ai-study-tutor-be/internal/entity"
	"ai-study-tutor-be/internal/model"
)

type ChatMapper struct{}

func NewChatMapper() *ChatMapper {
	return &ChatMapper{}
}

// Conversation Mappers

func (m *ChatMapper) ConversationToEntity(c *model.Conversation) *entity.Conversation {
	if c == nil {
		return nil
	}
	return &entity.Conversation{
		Id:        c.Id,
		UserId:    c.UserId,
		Title:     c.Title,
		CreatedAt: c.CreatedAt.UTC(),
		UpdatedAt: c.UpdatedAt.UTC(),
	}
}

func (m *ChatMapper) ConversationToModel(c *entity.Conversation) *model.Conversation {
	if c == nil {
		return nil
	}
	return &model.Conversation{
		Id:        c.Id,
		UserId:    c.UserId,
		Title:     c.Title,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func (m *ChatMapper) ConversationsToEntities(models []*model.Conversation) []*entity.Conversation {
	entities := make([]*entity.Conversation, len(models))
	for i, c := range models {
		entities[i] = m.ConversationToEntity(c)
	}
	return entities
}

// Message Mappers

func (m *ChatMapper) MessageToEntity(msg *model.Message) *entity.Message {
	if msg == nil {
		return nil
	}
	return &entity.Message{
		Id:             msg.Id,
		ConversationId: msg.ConversationId,
		Content:        msg.Content,
		IsUser:         msg.IsUser,
		ImageUrl:       msg.ImageUrl,
		CreatedAt:      msg.CreatedAt.UTC(),
	}
}

func (m *ChatMapper) MessageToModel(msg *entity.Message) *model.Message {
	if msg == nil {
		return nil
	}
	return &model.Message{
		Id:             msg.Id,
		ConversationId: msg.ConversationId,
		Content:        msg.Content,
		IsUser:         msg.IsUser,
		ImageUrl:       msg.ImageUrl,
		CreatedAt:      msg.CreatedAt,
	}
}

func (m *ChatMapper) MessagesToEntities(models []*model.Message) []*entity.Message {
	entities := make([]*entity.Message, len(models))
	for i, msg := range models {
		entities[i] = m.MessageToEntity(msg)
	}
	return entities
}
