package dto

// PostActionDTO 点赞/取消点赞结果
type PostActionDTO struct {
	Post *PostDTO `json:"post"`
	User *UserDTO `json:"user"`
}
