package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	Password     string `gorm:"not null" json:"-"`
	Name         string `json:"name"`
	Role         string `gorm:"default:'user'" json:"role"`
	Status       string `gorm:"default:'active'" json:"status"`
	TransferPIN  string `json:"-"` // bcrypt hash, empty until the user sets one
	TokenVersion int    `gorm:"default:1" json:"-"`
}
