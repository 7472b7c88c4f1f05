package model

import (
	"time"
)

// Like 行存在即表示已点赞
type Like struct {
	ID        uint64    `gorm:"primaryKey"`
	UserID    uint64    `gorm:"not null;uniqueIndex:idx_user_post,priority:1"`
	PostID    uint64    `gorm:"not null;uniqueIndex:idx_user_post,priority:2;index:idx_post_id"`
	CreatedAt time.Time `gorm:"type:datetime(6);index:idx_created_at"`
}

func (Like) TableName() string {
	return "likes"
}

// DailyLikes 按 UTC 日聚合的点赞数
type DailyLikes struct {
	Day   time.Time
	Count int64
}
