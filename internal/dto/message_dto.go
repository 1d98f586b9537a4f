package dto

import "time"

// SendMessageRequest mirrors what the web client posts. IsUser is accepted for
// compatibility but the stored user turn is always marked as the user's.
type SendMessageRequest struct {
	ConversationId string `json:"conversationId" validate:"required"`
	Content        string `json:"content" validate:"required_without=ImageUrl"`
	IsUser         *bool  `json:"isUser"`
	ImageUrl       string `json:"imageUrl"`
}

type MessageResponse struct {
	Id             string    `json:"id"`
	ConversationId string    `json:"conversationId"`
	Content        string    `json:"content"`
	IsUser         bool      `json:"isUser"`
	ImageUrl       *string   `json:"imageUrl"`
	CreatedAt      time.Time `json:"createdAt"`
}

type SendMessageResponse struct {
	UserMessage *MessageResponse `json:"userMessage"`
	AiMessage   *MessageResponse `json:"aiMessage"`
}
