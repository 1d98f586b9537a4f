package entity

import "time"

type Message struct {
	Id             string
	ConversationId string
	Content        string
	IsUser         bool
	ImageUrl       *string
	CreatedAt      time.Time
}
