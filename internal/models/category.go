package models

import "gorm.io/gorm"

type Category struct {
	gorm.Model
	UserID uint   `gorm:"uniqueIndex:idx_user_category;not null"`
	Name   string `gorm:"uniqueIndex:idx_user_category;not null"`
	Type   string `gorm:"uniqueIndex:idx_user_category;not null"` // income | expense
}
