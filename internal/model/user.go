package model

import (
	"time"
)

type User struct {
	ID           uint64     `gorm:"primaryKey"`
	Username     string     `gorm:"type:varchar(150);not null;uniqueIndex:idx_username"`
	Email        string     `gorm:"type:varchar(254);not null;default:''"`
	PasswordHash string     `gorm:"type:varchar(255);not null"`
	LastLogin    *time.Time `gorm:"type:datetime(6)"`
	LastRequest  *time.Time `gorm:"type:datetime(6)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (User) TableName() string {
	return "users"
}
