package model

import "time"

type Conversation struct {
	Id        string    `gorm:"type:text;primaryKey"`
	UserId    string    `gorm:"type:text;not null;index"`
	Title     string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime:false"`
	UpdatedAt time.Time `gorm:"not null;index;autoUpdateTime:false"`
}

func (Conversation) TableName() string {
	return "conversations"
}
