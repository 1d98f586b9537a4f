package model

import "time"

type Message struct {
	Id             string    `gorm:"type:text;primaryKey"`
	ConversationId string    `gorm:"type:text;not null;index:idx_messages_thread,priority:1"`
	Content        string    `gorm:"type:text;not null"`
	IsUser         bool      `gorm:"not null"`
	ImageUrl       *string   `gorm:"type:text"`
	CreatedAt      time.Time `gorm:"not null;index:idx_messages_thread,priority:2;autoCreateTime:false"`
}

func (Message) TableName() string {
	return "messages"
}
