package service

import (
	"context"
	"strings"

	"ai-study-tutor-be/internal/dto"
	"ai-study-tutor-be/internal/entity"
	"ai-study-tutor-be/internal/pkg/logger"
	"ai-study-tutor-be/internal/repository/contract"
	"ai-study-tutor-be/pkg/events"
)

type IConversationService interface {
	Create(ctx context.Context, req *dto.CreateConversationRequest) (*dto.ConversationResponse, error)
	ListByUser(ctx context.Context, userId string) ([]*dto.ConversationResponse, error)
	ListMessages(ctx context.Context, conversationId string) ([]*dto.MessageResponse, error)
}

type conversationService struct {
	store     contract.Store
	publisher IPublisherService
	logger    logger.ILogger
}

func NewConversationService(store contract.Store, publisher IPublisherService, log logger.ILogger) IConversationService {
	return &conversationService{
		store:     store,
		publisher: publisher,
		logger:    log,
	}
}

func (s *conversationService) Create(ctx context.Context, req *dto.CreateConversationRequest) (*dto.ConversationResponse, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = entity.DefaultConversationTitle
	}

	conversation := &entity.Conversation{
		UserId: req.UserId,
		Title:  title,
	}
	if err := s.store.ConversationRepository().Create(ctx, conversation); err != nil {
		return nil, err
	}

	publish(ctx, s.publisher, s.logger, events.New(events.TypeConversationCreated, map[string]interface{}{
		"conversation_id": conversation.Id,
		"user_id":         conversation.UserId,
		"title":           conversation.Title,
	}))

	return toConversationResponse(conversation), nil
}

func (s *conversationService) ListByUser(ctx context.Context, userId string) ([]*dto.ConversationResponse, error) {
	conversations, err := s.store.ConversationRepository().FindAllByUserId(ctx, userId)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.ConversationResponse, 0, len(conversations))
	for _, c := range conversations {
		res = append(res, toConversationResponse(c))
	}
	return res, nil
}

func (s *conversationService) ListMessages(ctx context.Context, conversationId string) ([]*dto.MessageResponse, error) {
	messages, err := s.store.MessageRepository().FindAllByConversationId(ctx, conversationId)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.MessageResponse, 0, len(messages))
	for _, m := range messages {
		res = append(res, toMessageResponse(m))
	}
	return res, nil
}

func toConversationResponse(c *entity.Conversation) *dto.ConversationResponse {
	return &dto.ConversationResponse{
		Id:        c.Id,
		UserId:    c.UserId,
		Title:     c.Title,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func toMessageResponse(m *entity.Message) *dto.MessageResponse {
	return &dto.MessageResponse{
		Id:             m.Id,
		ConversationId: m.ConversationId,
		Content:        m.Content,
		IsUser:         m.IsUser,
		ImageUrl:       m.ImageUrl,
		CreatedAt:      m.CreatedAt,
	}
}

// publish is fire-and-forget: a bus failure never fails the request.
func publish(ctx context.Context, publisher IPublisherService, log logger.ILogger, evt events.Event) {
	if publisher == nil {
		return
	}
	if err := publisher.Publish(ctx, evt); err != nil {
		log.Warn("EVENTS", "Failed to publish "+evt.EventType()+" event", map[string]interface{}{
			"error": err.Error(),
		})
	}
}
