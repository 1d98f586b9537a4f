package dto

import "time"

type CreateConversationRequest struct {
	UserId string `json:"userId" validate:"required,max=128"`
	Title  string `json:"title" validate:"max=200"`
}

type ConversationResponse struct {
	Id        string    `json:"id"`
	UserId    string    `json:"userId"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
