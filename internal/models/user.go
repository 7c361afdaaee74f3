package models

import "time"

type User struct {
	ID              uint `gorm:"primarykey"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
	Email           string `gorm:"uniqueIndex;not null"`
	Password        string `gorm:"not null"`
	Nickname        string `gorm:"not null"`
	Bio             string `gorm:"size:200"`
	ProfileImageURL string
	Role            string `gorm:"not null;default:'user'"`
	Enabled         bool   `gorm:"not null;default:true"`
	Version         int    `gorm:"default:1"`
}

func (u *User) IsAdmin() bool {
	return u.Role == "admin"
}
