package entity

import "time"

const DefaultConversationTitle = "Untitled"

type Conversation struct {
	Id        string
	UserId    string
	Title     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
