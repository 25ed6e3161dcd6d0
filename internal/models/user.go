package models

import "time"

type User struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	UUID string `gorm:"size:36;uniqueIndex;not null" json:"uuid"`

	Mobile string `gorm:"size:20;uniqueIndex;not null" json:"mobile"`
	Email  string `gorm:"size:100" json:"email"`
	Name   string `gorm:"size:100" json:"name"`

	AvatarURL string `gorm:"size:255" json:"avatar_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
