package handler

import (
	"SocialNetwork/internal/api/dto"
	"SocialNetwork/internal/api/middleware"
	"SocialNetwork/internal/pkg/consts"
	"SocialNetwork/internal/pkg/response"
	"SocialNetwork/internal/service"

	"github.com/gin-gonic/gin"
)

type PostActionHandler struct {
	actionSvc service.PostActionService
	postSvc   service.PostService
	userSvc   service.UserService
}

func NewPostActionHandler(actionSvc service.PostActionService, postSvc service.PostService, userSvc service.UserService) *PostActionHandler {
	return &PostActionHandler{
		actionSvc: actionSvc,
		postSvc:   postSvc,
		userSvc:   userSvc,
	}
}

// LikePost 点赞
func (s *PostActionHandler) LikePost(c *gin.Context) {
	postID, ok := pathID(c, "post_id")
	if !ok {
		return
	}
	userID := middleware.CurrentUserID(c)

	res, err := s.actionSvc.LikePost(c.Request.Context(), userID, postID)
	if err != nil {
		response.Error(c, err)
		return
	}
	if res == service.LikeAlreadyExists {
		response.Error(c, service.ErrAlreadyLiked)
		return
	}
	s.respond(c, consts.StatusLiked, userID, postID)
}

// UnlikePost 取消点赞
func (s *PostActionHandler) UnlikePost(c *gin.Context) {
	postID, ok := pathID(c, "post_id")
	if !ok {
		return
	}
	userID := middleware.CurrentUserID(c)

	res, err := s.actionSvc.UnlikePost(c.Request.Context(), userID, postID)
	if err != nil {
		response.Error(c, err)
		return
	}
	if res == service.UnlikeNotFound {
		response.Error(c, service.ErrNotLiked)
		return
	}
	s.respond(c, consts.StatusUnliked, userID, postID)
}

func (s *PostActionHandler) respond(c *gin.Context, status string, userID, postID uint64) {
	ctx := c.Request.Context()

	post, err := s.postSvc.GetPost(ctx, postID)
	if err != nil {
		response.Error(c, err)
		return
	}
	user, err := s.userSvc.GetUser(ctx, userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, status, dto.PostActionDTO{Post: post, User: user})
}
