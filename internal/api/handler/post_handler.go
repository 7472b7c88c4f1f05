package handler

import (
	"SocialNetwork/internal/api/dto"
	"SocialNetwork/internal/api/middleware"
	"SocialNetwork/internal/pkg/consts"
	"SocialNetwork/internal/pkg/response"
	"SocialNetwork/internal/pkg/util"
	"SocialNetwork/internal/service"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postService service.PostService
}

func NewPostHandler(postService service.PostService) *PostHandler {
	return &PostHandler{
		postService: postService,
	}
}

// CreatePost 发帖
func (s *PostHandler) CreatePost(c *gin.Context) {
	var postDTO dto.CreatePostDTO
	if !bindJSON(c, &postDTO) {
		return
	}

	post, err := s.postService.CreatePost(c.Request.Context(), middleware.CurrentUserID(c), &postDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, consts.StatusPostCreated, post)
}

// GetPost 帖子详情
func (s *PostHandler) GetPost(c *gin.Context) {
	postID, ok := pathID(c, "post_id")
	if !ok {
		return
	}

	post, err := s.postService.GetPost(c.Request.Context(), postID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, consts.StatusOK, post)
}

// ListPosts 最新帖子分页
func (s *PostHandler) ListPosts(c *gin.Context) {
	var query dto.ListPostsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, util.NewValidationError("page", "page and page_size must be integers"))
		return
	}
	if err := util.ValidateDTO(&query); err != nil {
		response.Error(c, err)
		return
	}

	page, err := s.postService.ListPosts(c.Request.Context(), query.Page, query.PageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, consts.StatusOK, page)
}
