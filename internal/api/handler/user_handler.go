package handler

import (
	"SocialNetwork/internal/api/dto"
	"SocialNetwork/internal/api/middleware"
	"SocialNetwork/internal/pkg/consts"
	"SocialNetwork/internal/pkg/response"
	"SocialNetwork/internal/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// Register 注册
func (s *UserHandler) Register(c *gin.Context) {
	var regDTO dto.RegisterDTO
	if !bindJSON(c, &regDTO) {
		return
	}

	user, err := s.userService.Register(c.Request.Context(), &regDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, consts.StatusUserCreated, user)
}

// Login 登录，返回 access 与 refresh token
func (s *UserHandler) Login(c *gin.Context) {
	var credDTO dto.CredentialDTO
	if !bindJSON(c, &credDTO) {
		return
	}

	res, err := s.userService.Login(c.Request.Context(), &credDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, consts.StatusLoggedIn, res)
}

// RefreshToken 刷新 access token
func (s *UserHandler) RefreshToken(c *gin.Context) {
	var refreshDTO dto.RefreshDTO
	if !bindJSON(c, &refreshDTO) {
		return
	}

	access, err := s.userService.Refresh(c.Request.Context(), refreshDTO.Refresh)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, consts.StatusTokenRefreshed, dto.AccessDTO{Access: access})
}

// Activity 当前用户最近登录与请求时间
func (s *UserHandler) Activity(c *gin.Context) {
	res, err := s.userService.Activity(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, consts.StatusOK, res)
}
