package entity

import "time"

type User struct {
	Id           string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
