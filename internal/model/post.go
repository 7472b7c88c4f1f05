package model

import (
	"time"
)

type Post struct {
	ID        uint64    `gorm:"primaryKey"`
	UserID    uint64    `gorm:"not null;index:idx_user_id"`
	Title     string    `gorm:"type:varchar(80);not null"`
	Body      string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"type:datetime(6)"`
}

func (Post) TableName() string {
	return "posts"
}
