package service

import (
	"context"
	"strings"

	"ai-study-tutor-be/internal/constant"
	"ai-study-tutor-be/internal/dto"
	"ai-study-tutor-be/internal/entity"
	"ai-study-tutor-be/internal/pkg/apperror"
	"ai-study-tutor-be/internal/pkg/logger"
	"ai-study-tutor-be/internal/repository/contract"
	"ai-study-tutor-be/pkg/events"
)

type IMessageService interface {
	// Send stores the user's turn, asks the tutor for a reply and stores that
	// too. A failed completion still yields an assistant message carrying a
	// fixed apology.
	Send(ctx context.Context, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error)
}

type messageService struct {
	store      contract.Store
	completion ICompletionService
	publisher  IPublisherService
	logger     logger.ILogger
}

func NewMessageService(
	store contract.Store,
	completion ICompletionService,
	publisher IPublisherService,
	log logger.ILogger,
) IMessageService {
	return &messageService{
		store:      store,
		completion: completion,
		publisher:  publisher,
		logger:     log,
	}
}

func (s *messageService) Send(ctx context.Context, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error) {
	if req.ConversationId == "" {
		return nil, apperror.Validation("conversationId is required")
	}
	content := strings.TrimSpace(req.Content)
	if content == "" && req.ImageUrl == "" {
		return nil, apperror.Validation("content is required when imageUrl is empty")
	}

	// 1. User turn
	userMessage := &entity.Message{
		ConversationId: req.ConversationId,
		Content:        content,
		IsUser:         true,
	}
	if req.ImageUrl != "" {
		imageUrl := req.ImageUrl
		userMessage.ImageUrl = &imageUrl
	}
	if err := s.store.MessageRepository().Create(ctx, userMessage); err != nil {
		return nil, err
	}

	// 2. Completion
	fallback := false
	reply, err := s.completion.Generate(ctx, content, req.ImageUrl)
	if err != nil {
		s.logger.Warn("MESSAGE", "Replying with apology after completion failure", map[string]interface{}{
			"conversation_id": req.ConversationId,
			"error":           err.Error(),
		})
		reply = constant.GenerationFailedReply
		fallback = true
	}

	// 3. Assistant turn
	aiMessage := &entity.Message{
		ConversationId: req.ConversationId,
		Content:        reply,
		IsUser:         false,
	}
	if err := s.store.MessageRepository().Create(ctx, aiMessage); err != nil {
		return nil, err
	}

	publish(ctx, s.publisher, s.logger, events.New(events.TypeMessageExchanged, map[string]interface{}{
		"conversation_id": req.ConversationId,
		"user_message_id": userMessage.Id,
		"ai_message_id":   aiMessage.Id,
		"has_image":       req.ImageUrl != "",
		"fallback":        fallback,
		"reply_length":    len(strings.TrimSpace(reply)),
	}))

	return &dto.SendMessageResponse{
		UserMessage: toMessageResponse(userMessage),
		AiMessage:   toMessageResponse(aiMessage),
	}, nil
}
