package model

import "time"

type User struct {
	Id           string    `gorm:"type:text;primaryKey"`
	Username     string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time `gorm:"not null;autoCreateTime:false"`
}

func (User) TableName() string {
	return "users"
}

// All lists every model for AutoMigrate.
func All() []interface{} {
	return []interface{}{&User{}, &Conversation{}, &Message{}}
}
