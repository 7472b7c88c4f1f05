package dto

import "time"

// CreatePostDTO 发帖
type CreatePostDTO struct {
	Title string `json:"title" validate:"required,max=80"`
	Body  string `json:"body" validate:"required"`
}

// PostDTO 帖子
type PostDTO struct {
	ID        uint64    `json:"id"`
	UserID    uint64    `json:"user_id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
	Likes     *int64    `json:"likes,omitempty"`
}

// ListPostsQuery 帖子列表查询参数
type ListPostsQuery struct {
	Page     int `form:"page" validate:"omitempty,min=1"`
	PageSize int `form:"page_size" validate:"omitempty,min=1,max=100"`
}
